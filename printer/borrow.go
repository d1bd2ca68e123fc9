package printer

import "github.com/rivethealth/prettier/markup"

// Marker borrowing decides, for each join point between adjacent nodes,
// which side owns the boundary marker characters. When whitespace at a
// join is significant, printing the marker as a separate token would let
// the layout engine slip a line break (and therefore a space) into the
// gap; instead the marker is emitted inside the neighbor's own region.
//
// Exactly one side ever prints a given marker. The predicates below are
// pure functions of structure and precomputed sensitivity flags; no
// layout decision happens here.

// needsToBorrowNextOpeningTagStartMarker reports that n's following
// sibling must not be separated from n by any whitespace, so the
// sibling's start marker is printed as part of n's trailing region.
// A text-like next sibling prints its own marker; such pairs are glued
// by the child sequencer instead.
//
//	<p>a<span>b</span></p>
//	     ^ printed by the text node "a"
func needsToBorrowNextOpeningTagStartMarker(n *markup.Node) bool {
	return markup.IsTextLike(n) &&
		n.IsTrailingSpaceSensitive &&
		!n.HasTrailingSpaces &&
		n.Next != nil &&
		!markup.IsTextLike(n.Next)
}

// needsToBorrowParentOpeningTagEndMarker reports that the parent's
// opening-tag end marker is pulled inward to sit against n.
//
//	<span
//	  >first child</span>
//	  ^ printed by the first child
func needsToBorrowParentOpeningTagEndMarker(n *markup.Node) bool {
	return n.Prev == nil &&
		n.IsLeadingSpaceSensitive &&
		!n.HasLeadingSpaces
}

// needsToBorrowPrevClosingTagEndMarker reports that the previous
// sibling's closing-tag end marker is pulled forward against n.
//
//	<span>a</span
//	>next sibling
//	^ printed by n
func needsToBorrowPrevClosingTagEndMarker(n *markup.Node) bool {
	return n.Prev != nil &&
		(n.Prev.Kind == markup.KindTag || n.Prev.Kind == markup.KindConditionalComment) &&
		n.IsLeadingSpaceSensitive &&
		!n.HasLeadingSpaces
}

// needsToBorrowLastChildClosingTagEndMarker reports that n's own
// closing-tag start must sit directly against its last child's closing
// marker, so the child's closing-tag end marker moves into n's closing
// region.
//
//	<p><span>a</span
//	></p>
//	^ printed as part of p's closing tag
func needsToBorrowLastChildClosingTagEndMarker(n *markup.Node) bool {
	lc := n.LastChild()
	return lc != nil &&
		lc.IsTrailingSpaceSensitive &&
		!lc.HasTrailingSpaces &&
		!markup.IsTextLike(lc.LastDescendant()) &&
		!markup.IsPreLike(n)
}

// needsToBorrowParentClosingTagStartMarker reports that the parent's
// closing-tag start marker is pulled backward against n, whose deepest
// last descendant is text.
//
//	<p>text</p
//	>
//	       ^ "</p" printed by the text node
func needsToBorrowParentClosingTagStartMarker(n *markup.Node) bool {
	return n.Next == nil &&
		n.IsTrailingSpaceSensitive &&
		!n.HasTrailingSpaces &&
		markup.IsTextLike(n.LastDescendant())
}
