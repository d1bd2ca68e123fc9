package printer

import (
	"strings"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// text prints a character-data leaf. Insensitive text reflows as a fill
// of words; whitespace-sensitive text reproduces the source, either
// verbatim (indentation-sensitive) or re-indented to the current level.
// Borrowed markers from the neighbors wrap the content as prefix/suffix.
func (p *printer) text(n *markup.Node) doc.Doc {
	var body doc.Doc
	switch {
	case n.IsWhiteSpaceSensitive && n.IsIndentationSensitive:
		body = doc.LiteralLines(trimSurroundingBlankLine(n.Data))
	case n.IsWhiteSpaceSensitive:
		body = doc.HardLines(dedent(trimSurroundingBlankLine(n.Data)))
	default:
		body = fillWords(n.Data)
	}
	return doc.Concat{p.openingTagPrefix(n), body, p.closingTagSuffix(n)}
}

// fillWords collapses whitespace runs into independently breakable
// spaces: the classic word-wrap shape.
func fillWords(s string) doc.Doc {
	words := strings.Fields(s)
	parts := make(doc.Fill, 0, len(words)*2)
	for i, w := range words {
		if i > 0 {
			parts = append(parts, doc.Line)
		}
		parts = append(parts, doc.Text(w))
	}
	return parts
}

// comment prints <!-- ... -->. The payload sits in an indented breakable
// region; the break is forced hard when a marker was borrowed from a
// preceding sibling, because collapsing would fuse the borrowed marker
// with the comment body.
func (p *printer) comment(n *markup.Node) doc.Doc {
	prefix := p.openingTagPrefix(n)
	suffix := p.closingTagSuffix(n)
	content := dedent(trimSurroundingBlankLine(strings.Trim(n.Data, " \t\n\r")))
	if content == "" {
		return doc.Concat{prefix, doc.Text("<!---->"), suffix}
	}
	sep := doc.Line
	if needsToBorrowPrevClosingTagEndMarker(n) || needsToBorrowParentOpeningTagEndMarker(n) {
		sep = doc.Hardline
	}
	return doc.Concat{
		prefix,
		doc.GroupOf(
			doc.Text(openingTagStartMarker(n)),
			doc.Indent{Contents: doc.Concat{sep, doc.HardLines(content)}},
			sep,
			doc.Text(closingTagEndMarker(n)),
		),
		suffix,
	}
}

// directive prints <!...>, wrapping its space-separated fields.
func (p *printer) directive(n *markup.Node) doc.Doc {
	fields := strings.Fields(n.Data)
	parts := make([]doc.Doc, len(fields))
	for i, f := range fields {
		parts[i] = doc.Text(f)
	}
	return doc.GroupOf(
		doc.Text("<!"),
		doc.Indent{Contents: doc.Join(doc.Line, parts)},
		doc.Text(">"),
	)
}

// attribute prints key, or key="value" with a quote chosen to avoid
// escaping. Dynamic-binding attributes may be delegated to the expression
// sub-formatter first.
func (p *printer) attribute(n *markup.Node) doc.Doc {
	if !n.HasValue {
		return doc.Text(n.Key)
	}
	if d, ok := p.embedAttribute(n); ok {
		return d
	}
	quote, value := quoteValue(n.Value)
	return doc.Text(n.Key + "=" + quote + value + quote)
}

func quoteValue(value string) (quote, escaped string) {
	if strings.Contains(value, `"`) && !strings.Contains(value, "'") {
		return "'", value
	}
	if strings.Contains(value, `"`) {
		return `"`, strings.ReplaceAll(value, `"`, "&quot;")
	}
	return `"`, value
}

// trimSurroundingBlankLine strips exactly one fully-whitespace line from
// each end of s, mirroring the line break the printer re-inserts around
// verbatim regions.
func trimSurroundingBlankLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 && strings.Trim(s[:i], " \t\r") == "" {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 && strings.Trim(s[i+1:], " \t\r") == "" {
		s = s[:i]
	}
	return s
}

// dedent removes the longest common leading whitespace from every
// non-blank line of s.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(l) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return s
	}
	for i, l := range lines {
		if len(l) >= margin {
			lines[i] = l[margin:]
		} else {
			lines[i] = strings.TrimLeft(l, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
