package printer

import (
	"strings"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// Opening tag: start marker (unless a previous sibling borrowed it),
// attribute block, end marker (unless self-closing or borrowed by the
// first child). A borrowed marker is contributed to the borrowing node's
// region as a prefix or suffix, so each marker is printed exactly once
// while its width still counts inside the group that owns it.

func (p *printer) openingTag(n *markup.Node) doc.Doc {
	return doc.Concat{p.openingTagStart(n), p.attributes(n), p.openingTagEnd(n)}
}

func (p *printer) openingTagStart(n *markup.Node) doc.Doc {
	if n.Prev != nil && needsToBorrowNextOpeningTagStartMarker(n.Prev) {
		return doc.Text("")
	}
	return doc.Concat{p.openingTagPrefix(n), doc.Text(openingTagStartMarker(n))}
}

func (p *printer) openingTagPrefix(n *markup.Node) doc.Doc {
	switch {
	case needsToBorrowParentOpeningTagEndMarker(n):
		return doc.Text(openingTagEndMarker(n.Parent))
	case needsToBorrowPrevClosingTagEndMarker(n):
		return doc.Text(closingTagEndMarker(n.Prev))
	}
	return doc.Text("")
}

func (p *printer) openingTagEnd(n *markup.Node) doc.Doc {
	if n.IsSelfClosing {
		return doc.Text("")
	}
	if fc := n.FirstChild(); fc != nil && needsToBorrowParentOpeningTagEndMarker(fc) {
		return doc.Text("")
	}
	return doc.Text(openingTagEndMarker(n))
}

func (p *printer) attributes(n *markup.Node) doc.Doc {
	if len(n.Attrs) == 0 {
		if n.IsSelfClosing {
			// <br />
			return doc.Text(" ")
		}
		return doc.Text("")
	}

	printed := make([]doc.Doc, len(n.Attrs))
	for i, a := range n.Attrs {
		printed[i] = p.print(a)
	}

	var parts doc.Concat
	if len(n.Attrs) == 1 && !strings.Contains(n.Attrs[0].Value, "\n") {
		parts = doc.Concat{doc.Text(" "), printed[0]}
	} else {
		parts = doc.Concat{doc.Indent{Contents: doc.Concat{doc.Line, doc.Join(doc.Line, printed)}}}
	}

	firstChildBorrows := n.FirstChild() != nil && needsToBorrowParentOpeningTagEndMarker(n.FirstChild())
	parentBorrows := n.IsSelfClosing && n.Parent != nil &&
		n.Parent.LastChild() == n && needsToBorrowLastChildClosingTagEndMarker(n.Parent)
	switch {
	case firstChildBorrows || parentBorrows:
		if n.IsSelfClosing {
			parts = append(parts, doc.Text(" "))
		}
	case n.IsSelfClosing:
		parts = append(parts, doc.Line)
	default:
		parts = append(parts, doc.Softline)
	}
	return parts
}

// Closing tag: start marker (unless the last child borrowed it), end
// marker (unless the next sibling or the parent borrowed it).

func (p *printer) closingTag(n *markup.Node) doc.Doc {
	var start doc.Doc = doc.Text("")
	if !n.IsSelfClosing {
		start = p.closingTagStart(n)
	}
	return doc.Concat{start, p.closingTagEnd(n)}
}

func (p *printer) closingTagStart(n *markup.Node) doc.Doc {
	if lc := n.LastChild(); lc != nil && needsToBorrowParentClosingTagStartMarker(lc) {
		return doc.Text("")
	}
	return doc.Concat{p.closingTagPrefix(n), doc.Text(closingTagStartMarker(n))}
}

func (p *printer) closingTagPrefix(n *markup.Node) doc.Doc {
	if needsToBorrowLastChildClosingTagEndMarker(n) {
		return doc.Text(closingTagEndMarker(n.LastChild()))
	}
	return doc.Text("")
}

func (p *printer) closingTagEnd(n *markup.Node) doc.Doc {
	borrowed := false
	if n.Next != nil {
		borrowed = needsToBorrowPrevClosingTagEndMarker(n.Next)
	} else if n.Parent != nil && n.Parent.Kind != markup.KindRoot {
		borrowed = needsToBorrowLastChildClosingTagEndMarker(n.Parent)
	}
	if borrowed {
		return doc.Text("")
	}
	return doc.Concat{doc.Text(closingTagEndMarker(n)), p.closingTagSuffix(n)}
}

func (p *printer) closingTagSuffix(n *markup.Node) doc.Doc {
	switch {
	case needsToBorrowParentClosingTagStartMarker(n):
		return doc.Text(closingTagStartMarker(n.Parent))
	case needsToBorrowNextOpeningTagStartMarker(n):
		return doc.Text(openingTagStartMarker(n.Next))
	}
	return doc.Text("")
}
