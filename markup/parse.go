package markup

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// conditionalCommentRe matches downlevel-hidden conditional comments,
// e.g. <!--[if lt IE 9]> ... <![endif]-->.
var conditionalCommentRe = regexp.MustCompile(`(?s)^\[if\s+([^\]]+)\]>(.*)<!\[endif\]\s*$`)

// Parse builds an unannotated tree from raw markup. Frontmatter fenced by
// --- (YAML) or +++ (TOML) at the very start of the input becomes the first
// child of the root. Run Annotate on the result before printing.
func Parse(src string) (*Node, error) {
	root := &Node{Kind: KindRoot, Start: Position{Line: 1, Column: 1}}
	body := src
	at := Position{Line: 1, Column: 1}
	if fm, rest, consumedLines := splitFrontmatter(src); fm != nil {
		root.AppendChild(fm)
		body = rest
		at = Position{Line: consumedLines + 1, Column: 1}
	}
	end, err := parseInto(root, body, at)
	if err != nil {
		return nil, err
	}
	root.End = end
	return root, nil
}

// parseInto tokenizes src and appends the resulting nodes to parent,
// tracking source positions from the raw token bytes. It returns the
// position just past the last token.
func parseInto(parent *Node, src string, at Position) (Position, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	stack := []*Node{parent}
	pos := at

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return pos, fmt.Errorf("tokenize markup: %w", err)
			}
			break
		}
		raw := string(z.Raw())
		start := pos
		pos = advance(pos, raw)
		top := stack[len(stack)-1]

		switch tt {
		case html.TextToken:
			// The tokenizer may deliver character data in chunks; keep
			// adjacent runs as a single node. Raw bytes preserve entities.
			if last := top.LastChild(); last != nil && last.Kind == KindText {
				last.Data += raw
				last.End = pos
				continue
			}
			top.AppendChild(&Node{Kind: KindText, Data: raw, Start: start, End: pos})

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n := &Node{Kind: KindTag, Name: tok.Data, Start: start, End: pos}
			n.IsSelfClosing = tt == html.SelfClosingTagToken || voidElements[tok.Data]
			for _, a := range tok.Attr {
				attr := &Node{
					Kind:  KindAttribute,
					Key:   a.Key,
					Value: a.Val,
					Start: start,
					End:   pos,
				}
				// The tokenizer reports valueless attributes as empty
				// strings; recover key="" by looking for the = in the raw
				// tag text.
				attr.HasValue = a.Val != "" || strings.Contains(raw, a.Key+"=")
				attr.Parent = n
				n.Attrs = append(n.Attrs, attr)
			}
			top.AppendChild(n)
			if !n.IsSelfClosing {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Name == tok.Data {
					for j := len(stack) - 1; j >= i; j-- {
						stack[j].End = pos
					}
					stack = stack[:i]
					break
				}
			}
			// An end tag with no matching open tag is dropped, the same
			// recovery browsers apply.

		case html.CommentToken:
			data := z.Token().Data
			if m := conditionalCommentRe.FindStringSubmatch(data); m != nil {
				cc := &Node{
					Kind:      KindConditionalComment,
					Condition: strings.TrimSpace(m[1]),
					Start:     start,
					End:       pos,
				}
				prefix := raw[:len(raw)-len(m[2])-len("<![endif]-->")]
				if _, err := parseInto(cc, m[2], advance(start, prefix)); err != nil {
					return pos, err
				}
				top.AppendChild(cc)
			} else {
				top.AppendChild(&Node{Kind: KindComment, Data: data, Start: start, End: pos})
			}

		case html.DoctypeToken:
			data := strings.TrimSuffix(strings.TrimPrefix(raw, "<!"), ">")
			top.AppendChild(&Node{Kind: KindDirective, Data: data, Start: start, End: pos})
		}
	}

	// Close anything the source left open.
	for j := len(stack) - 1; j >= 1; j-- {
		stack[j].End = pos
	}
	return pos, nil
}

// advance walks s from p, counting lines and columns byte-wise.
func advance(p Position, s string) Position {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// splitFrontmatter detaches a leading fenced frontmatter block. It returns
// the frontmatter node (or nil), the remaining source, and the number of
// consumed lines.
func splitFrontmatter(src string) (*Node, string, int) {
	var kind Kind
	var fence string
	switch {
	case strings.HasPrefix(src, "---\n"):
		kind, fence = KindYaml, "---"
	case strings.HasPrefix(src, "+++\n"):
		kind, fence = KindToml, "+++"
	default:
		return nil, src, 0
	}

	rest := src[len(fence)+1:]
	end := -1 // offset in rest of the closing fence line
	if closesAt(rest, 0, fence) {
		end = 0
	} else {
		from := 0
		for {
			i := strings.Index(rest[from:], "\n"+fence)
			if i < 0 {
				break
			}
			candidate := from + i + 1
			if closesAt(rest, candidate, fence) {
				end = candidate
				break
			}
			from = candidate
		}
	}
	if end < 0 {
		return nil, src, 0
	}

	payload := rest[:end]
	remainder := rest[end+len(fence):]
	remainder = strings.TrimPrefix(remainder, "\n")
	consumed := src[:len(src)-len(remainder)]
	lines := strings.Count(consumed, "\n")

	node := &Node{
		Kind:  kind,
		Data:  strings.TrimSpace(payload),
		Raw:   strings.TrimSuffix(consumed, "\n"),
		Start: Position{Line: 1, Column: 1},
		End:   Position{Line: lines, Column: len(fence) + 1},
	}
	return node, remainder, lines
}

// closesAt reports whether rest[at:] starts a line that is exactly the
// closing fence.
func closesAt(rest string, at int, fence string) bool {
	if !strings.HasPrefix(rest[at:], fence) {
		return false
	}
	after := at + len(fence)
	return after == len(rest) || rest[after] == '\n'
}
