package printer

import "github.com/rivethealth/prettier/markup"

// Marker templates keyed on node kind. These are the only places the
// literal tag delimiters are spelled out.

func openingTagStartMarker(n *markup.Node) string {
	switch n.Kind {
	case markup.KindComment:
		return "<!--"
	case markup.KindConditionalComment:
		return "<!--[if " + n.Condition
	default:
		return "<" + n.Name
	}
}

func openingTagEndMarker(n *markup.Node) string {
	assertNotSelfClosing(n, "opening-tag end marker")
	if n.Kind == markup.KindConditionalComment {
		return "]>"
	}
	return ">"
}

func closingTagStartMarker(n *markup.Node) string {
	assertNotSelfClosing(n, "closing-tag start marker")
	if n.Kind == markup.KindConditionalComment {
		return "<!"
	}
	return "</" + n.Name
}

func closingTagEndMarker(n *markup.Node) string {
	switch {
	case n.IsSelfClosing:
		return "/>"
	case n.Kind == markup.KindComment:
		return "-->"
	case n.Kind == markup.KindConditionalComment:
		return "[endif]-->"
	default:
		return ">"
	}
}

func assertNotSelfClosing(n *markup.Node, what string) {
	if n.IsSelfClosing {
		internalf(n, "%s requested for self-closing <%s>", what, n.Name)
	}
}
