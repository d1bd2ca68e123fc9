package markup

import "strings"

// voidElements have no closing tag and print in the combined self-closing
// form.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// defaultDisplay maps element names to their user-agent default CSS display.
// Anything absent is treated as inline.
var defaultDisplay = map[string]string{
	"html": "block", "body": "block", "head": "none", "title": "none",
	"meta": "none", "link": "none", "base": "none", "script": "block",
	"style": "none", "template": "inline",

	"address": "block", "article": "block", "aside": "block",
	"blockquote": "block", "center": "block", "details": "block",
	"dialog": "block", "dd": "block", "div": "block", "dl": "block",
	"dt": "block", "fieldset": "block", "figcaption": "block",
	"figure": "block", "footer": "block", "form": "block", "h1": "block",
	"h2": "block", "h3": "block", "h4": "block", "h5": "block",
	"h6": "block", "header": "block", "hgroup": "block", "hr": "block",
	"legend": "block", "listing": "block", "main": "block", "nav": "block",
	"ol": "block", "p": "block", "plaintext": "block", "pre": "block",
	"section": "block", "summary": "block", "ul": "block", "xmp": "block",

	"li": "list-item",

	"table": "table", "caption": "table-caption",
	"colgroup": "table-column-group", "col": "table-column",
	"thead": "table-header-group", "tbody": "table-row-group",
	"tfoot": "table-footer-group", "tr": "table-row",
	"td": "table-cell", "th": "table-cell",

	"button": "inline-block", "input": "inline-block",
	"select": "inline-block", "textarea": "inline-block",
	"video": "inline-block", "audio": "inline-block",
	"img": "inline-block",
}

// defaultWhitespace maps element names to their default white-space
// behavior; anything that starts with "pre" preserves content verbatim.
var defaultWhitespace = map[string]string{
	"pre": "pre", "listing": "pre", "plaintext": "pre", "xmp": "pre",
	"textarea": "pre-wrap",
}

// display returns the effective CSS display used by the sensitivity rules.
func display(n *Node) string {
	switch n.Kind {
	case KindTag:
		if d, ok := defaultDisplay[n.Name]; ok {
			return d
		}
		return "inline"
	case KindText:
		return "inline"
	default:
		return "block"
	}
}

func isBlockLikeDisplay(d string) bool {
	return d == "block" || d == "list-item" || strings.HasPrefix(d, "table")
}

// IsPreLike reports whether n preserves its content verbatim.
func IsPreLike(n *Node) bool {
	if n.Kind != KindTag {
		return false
	}
	return strings.HasPrefix(defaultWhitespace[n.Name], "pre")
}

// IsScriptLike reports whether n embeds a foreign sub-language as raw text.
func IsScriptLike(n *Node) bool {
	return n.Kind == KindTag && (n.Name == "script" || n.Name == "style")
}

// IsTextLike reports whether n renders as bare character data.
func IsTextLike(n *Node) bool {
	return n.Kind == KindText || n.Kind == KindComment
}
