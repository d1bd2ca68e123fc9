package markup

import "strings"

// htmlWhitespace is the set of characters HTML treats as inter-element
// whitespace.
const htmlWhitespace = " \t\n\r\f"

// Annotate computes the whitespace-sensitivity flags the printer depends
// on. It strips whitespace-only text nodes outside verbatim contexts,
// folds the surrounding whitespace into the neighbor flags, and derives
// the per-node sensitivity from default CSS display. The tree is final
// after this pass; printing never mutates it.
func Annotate(root *Node) {
	trimWhitespace(root, false)
	annotateFlags(root)
	root.ForceBreak = rootForcesBreak(root)
}

func trimWhitespace(n *Node, verbatim bool) {
	// Pre-like content is significant byte for byte; script-like content
	// must reach the sub-formatter with its indentation intact.
	if n.Kind == KindTag && (IsPreLike(n) || IsScriptLike(n)) {
		verbatim = true
	}

	if verbatim {
		for _, c := range n.Children {
			if c.Kind == KindText {
				c.IsWhiteSpaceSensitive = true
				c.IsIndentationSensitive = true
				c.HasLeadingSpaces = strings.TrimLeft(c.Data, htmlWhitespace) != c.Data
				c.HasTrailingSpaces = strings.TrimRight(c.Data, htmlWhitespace) != c.Data
				continue
			}
			trimWhitespace(c, verbatim)
		}
		return
	}

	children := append([]*Node(nil), n.Children...)
	for _, c := range children {
		if c.Kind != KindText {
			trimWhitespace(c, verbatim)
			continue
		}
		core := strings.Trim(c.Data, htmlWhitespace)
		if core == "" {
			if c.Prev != nil {
				c.Prev.HasTrailingSpaces = true
			}
			if c.Next != nil {
				c.Next.HasLeadingSpaces = true
			}
			if c.Prev == nil && c.Next == nil {
				n.HasDanglingSpaces = true
			}
			n.RemoveChild(c)
			continue
		}
		leading := c.Data[:len(c.Data)-len(strings.TrimLeft(c.Data, htmlWhitespace))]
		trailing := c.Data[len(strings.TrimRight(c.Data, htmlWhitespace)):]
		c.HasLeadingSpaces = leading != ""
		c.HasTrailingSpaces = trailing != ""
		// Keep positions honest for blank-line detection after the trim.
		c.Start = advance(c.Start, leading)
		c.End.Line -= strings.Count(trailing, "\n")
		c.Data = core
	}
}

func annotateFlags(n *Node) {
	for _, c := range n.Children {
		computeFlags(c)
		annotateFlags(c)
	}
}

func computeFlags(n *Node) {
	n.IsLeadingSpaceSensitive = leadingSpaceSensitive(n)
	n.IsTrailingSpaceSensitive = trailingSpaceSensitive(n)
	if n.Kind == KindTag || n.Kind == KindConditionalComment {
		if IsPreLike(n) {
			n.IsWhiteSpaceSensitive = true
			n.IsIndentationSensitive = true
		}
		n.IsDanglingSpaceSensitive = danglingSpaceSensitive(n)
	}
}

func leadingSpaceSensitive(n *Node) bool {
	if n.Kind == KindYaml || n.Kind == KindToml {
		return false
	}
	if n.Kind == KindText && n.Prev != nil && IsTextLike(n.Prev) {
		return true
	}
	if n.Parent == nil || display(n.Parent) == "none" {
		return false
	}
	if IsPreLike(n.Parent) {
		return true
	}
	if n.Prev == nil {
		d := display(n.Parent)
		if n.Parent.Kind == KindRoot || IsPreLike(n) || IsScriptLike(n.Parent) ||
			isBlockLikeDisplay(d) || d == "inline-block" {
			return false
		}
	} else if isBlockLikeDisplay(display(n.Prev)) {
		return false
	}
	return true
}

func trailingSpaceSensitive(n *Node) bool {
	if n.Kind == KindYaml || n.Kind == KindToml {
		return false
	}
	if n.Kind == KindText && n.Next != nil && IsTextLike(n.Next) {
		return true
	}
	if n.Parent == nil || display(n.Parent) == "none" {
		return false
	}
	if IsPreLike(n.Parent) {
		return true
	}
	if n.Next == nil {
		d := display(n.Parent)
		if n.Parent.Kind == KindRoot || IsPreLike(n) || IsScriptLike(n.Parent) ||
			isBlockLikeDisplay(d) || d == "inline-block" {
			return false
		}
	} else if isBlockLikeDisplay(display(n.Next)) {
		return false
	}
	return true
}

func danglingSpaceSensitive(n *Node) bool {
	d := display(n)
	return !isBlockLikeDisplay(d) && d != "inline-block" && !IsScriptLike(n)
}

func rootForcesBreak(root *Node) bool {
	for _, c := range root.Children {
		switch c.Kind {
		case KindDirective, KindYaml, KindToml:
			return true
		case KindTag, KindConditionalComment:
			if isBlockLikeDisplay(display(c)) {
				return true
			}
		}
	}
	return false
}
