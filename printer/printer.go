// Package printer assembles an annotated markup tree into a document
// value. The layout engine in package doc turns that value into final
// text; this package only decides structure: which markers go where, what
// separates siblings, and which regions may reflow.
package printer

import (
	"fmt"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// EmbedFunc renders embedded foreign source (script bodies, binding
// expressions, frontmatter payloads) as a document. It is treated as an
// opaque synchronous function; the printer post-processes the result but
// never inspects it.
type EmbedFunc func(source, lang string, opts Options) (doc.Doc, error)

// Options configures a print pass.
type Options struct {
	// Width is the target line width. Zero means 80.
	Width int
	// TabWidth is the number of columns per indentation level. Zero means 2.
	TabWidth int
	// UseTabs selects tab characters for indentation.
	UseTabs bool
	// Embed resolves sub-language formatting. Nil disables delegation;
	// embedded content is then preserved verbatim.
	Embed EmbedFunc
}

func (o Options) docOptions() doc.Options {
	return doc.Options{Width: o.Width, TabWidth: o.TabWidth, UseTabs: o.UseTabs}
}

// InternalError reports an internal-consistency failure: the tree handed
// to the printer violated the schema contract. It is a bug in the
// producing stage, not a data error, and is never retryable.
type InternalError struct {
	Kind     markup.Kind
	Position markup.Position
	Message  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("printer: %s (%s node at %d:%d)",
		e.Message, e.Kind, e.Position.Line, e.Position.Column)
}

func internalf(n *markup.Node, format string, args ...any) {
	panic(&InternalError{
		Kind:     n.Kind,
		Position: n.Start,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Build converts the tree into a single document value.
func Build(root *markup.Node, opts Options) (d doc.Doc, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InternalError)
			if !ok {
				panic(r)
			}
			d, err = nil, ie
		}
	}()
	p := &printer{opts: opts}
	return p.print(root), nil
}

// Print formats the tree to text.
func Print(root *markup.Node, opts Options) (string, error) {
	d, err := Build(root, opts)
	if err != nil {
		return "", err
	}
	return doc.Print(d, opts.docOptions()), nil
}

type printer struct {
	opts Options
}

func (p *printer) print(n *markup.Node) doc.Doc {
	if d, ok := p.embed(n); ok {
		return d
	}
	switch n.Kind {
	case markup.KindRoot:
		g := &doc.Group{Contents: doc.Concat(p.children(n)), Break: n.ForceBreak}
		return doc.Concat{g, doc.Hardline}
	case markup.KindTag, markup.KindConditionalComment:
		return p.element(n)
	case markup.KindText:
		return p.text(n)
	case markup.KindComment:
		return p.comment(n)
	case markup.KindDirective:
		return p.directive(n)
	case markup.KindAttribute:
		return p.attribute(n)
	case markup.KindToml:
		// No TOML sub-formatter; the block is reproduced verbatim. Yaml
		// never reaches this switch, the embedding dispatcher claims it.
		return doc.LiteralLines(n.Raw)
	}
	internalf(n, "unexpected node kind")
	return nil
}

// element prints a tag or conditional comment: opening tag, child region,
// closing tag.
func (p *printer) element(n *markup.Node) doc.Doc {
	opening := doc.GroupOf(p.openingTag(n))

	if n.FirstChild() == nil {
		var dangling doc.Doc = doc.Text("")
		if n.HasDanglingSpaces && n.IsDanglingSpaceSensitive {
			dangling = doc.Line
		}
		return doc.GroupOf(opening, dangling, p.closingTag(n))
	}

	inner := make([]doc.Doc, 0, len(n.Children)*2+1)
	inner = append(inner, p.childLeadingSeparator(n))
	inner = append(inner, p.children(n)...)

	lc := n.LastChild()
	if needsToBorrowParentClosingTagStartMarker(lc) {
		// The last child already printed our closing-tag start marker, so
		// the region between it and the final ">" is inside the closing
		// tag and whitespace there is insignificant. Keep that join in its
		// own group so a break does not force the whole element open.
		g := &doc.Group{
			Contents: doc.Concat{opening, doc.Indent{Contents: doc.Concat(inner)}},
			Break:    forceBreakContent(n),
		}
		return doc.Concat{g, doc.GroupOf(p.childTrailingSeparator(n), p.closingTag(n))}
	}

	return &doc.Group{
		Contents: doc.Concat{
			opening,
			doc.Indent{Contents: doc.Concat(inner)},
			p.childTrailingSeparator(n),
			p.closingTag(n),
		},
		Break: forceBreakContent(n),
	}
}

func (p *printer) childLeadingSeparator(n *markup.Node) doc.Doc {
	fc := n.FirstChild()
	switch {
	case fc.Kind == markup.KindText && n.IsWhiteSpaceSensitive && n.IsIndentationSensitive:
		// Verbatim content supplies its own line structure; the break before
		// it must not add indentation.
		return doc.Root{Contents: doc.Softline}
	case markup.IsScriptLike(n):
		// Embedded bodies print on their own indentation baseline, so the
		// break before them starts that baseline too.
		return doc.Root{Contents: doc.Softline}
	case fc.HasLeadingSpaces && fc.IsLeadingSpaceSensitive:
		return doc.Line
	default:
		return doc.Softline
	}
}

func (p *printer) childTrailingSeparator(n *markup.Node) doc.Doc {
	lc := n.LastChild()
	borrowed := false
	if n.Next != nil {
		borrowed = needsToBorrowPrevClosingTagEndMarker(n.Next)
	} else if n.Parent != nil && n.Parent.Kind != markup.KindRoot {
		borrowed = needsToBorrowLastChildClosingTagEndMarker(n.Parent)
	}
	if borrowed {
		if lc.HasTrailingSpaces && lc.IsTrailingSpaceSensitive {
			return doc.Text(" ")
		}
		return doc.Text("")
	}
	switch {
	case lc.HasTrailingSpaces && lc.IsTrailingSpaceSensitive:
		return doc.Line
	case lc.Kind == markup.KindComment,
		lc.Kind == markup.KindText && n.IsWhiteSpaceSensitive:
		return doc.Text("")
	default:
		return doc.Softline
	}
}

// forceBreakContent decides whether an element's child region must lay
// out broken regardless of width.
func forceBreakContent(n *markup.Node) bool {
	if n.Kind == markup.KindTag && n.FirstChild() != nil {
		switch n.Name {
		case "html", "head", "body", "ul", "ol", "select":
			return true
		}
		for _, c := range n.Children {
			for _, gc := range c.Children {
				if gc.Kind != markup.KindText {
					return true
				}
			}
		}
	}
	// A lone non-text child surrounded by line breaks in source keeps
	// the broken shape.
	if fc := n.FirstChild(); fc != nil && fc == n.LastChild() && fc.Kind != markup.KindText {
		if fc.Start.Line > n.Start.Line && (!fc.IsTrailingSpaceSensitive || fc.End.Line < n.End.Line) {
			return true
		}
	}
	return false
}
