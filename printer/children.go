package printer

import (
	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// children prints a sibling sequence with the separator document between
// each adjacent pair.
func (p *printer) children(n *markup.Node) []doc.Doc {
	parts := make([]doc.Doc, 0, len(n.Children)*2)
	for _, c := range n.Children {
		if c.Prev != nil {
			if sep := betweenLine(c.Prev, c); sep != nil {
				if forceBlankLineBetween(c.Prev, c) {
					// At most one blank line survives no matter how many
					// the source had; the layout engine caps deeper runs.
					parts = append(parts, doc.Hardline, doc.Hardline)
				} else {
					parts = append(parts, sep)
				}
			}
		}
		parts = append(parts, p.print(c))
	}
	return parts
}

// betweenLine computes the separator between two adjacent siblings. Nil
// means the pair must stay glued: one of the two is printing a marker
// borrowed across the join and any separator would inject whitespace
// into it.
func betweenLine(prev, next *markup.Node) doc.Doc {
	switch {
	case markup.IsTextLike(prev) && markup.IsTextLike(next) &&
		prev.IsTrailingSpaceSensitive && !prev.HasTrailingSpaces:
		return nil
	case needsToBorrowNextOpeningTagStartMarker(prev) &&
		(next.FirstChild() != nil || next.IsSelfClosing ||
			(next.Kind == markup.KindTag && len(next.Attrs) > 0)):
		// prev's trailing region already holds next's start marker and
		// next immediately continues with its own output.
		return nil
	case needsToBorrowPrevClosingTagEndMarker(next) && !prev.IsSelfClosing:
		// next's leading region already holds prev's closing ">".
		return nil
	case !next.IsLeadingSpaceSensitive:
		return doc.Hardline
	case next.HasLeadingSpaces:
		return doc.Line
	default:
		return doc.Softline
	}
}

// forceBlankLineBetween reports whether the pair gets a forced blank
// line: either the source separated them by at least one blank line, or
// preprocessing flagged the left node.
func forceBlankLineBetween(prev, next *markup.Node) bool {
	return prev.ForceBlankLineAfter || next.Start.Line-prev.End.Line > 1
}
