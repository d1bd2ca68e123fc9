package printer

import (
	"regexp"
	"strings"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// embed routes a node to an external sub-formatter when it carries
// foreign content: script/style bodies and frontmatter blocks here,
// binding expressions via embedAttribute. Everything else falls through
// to the generic per-kind rendering.
func (p *printer) embed(n *markup.Node) (doc.Doc, bool) {
	switch n.Kind {
	case markup.KindText:
		if n.Parent == nil || !markup.IsScriptLike(n.Parent) {
			return nil, false
		}
		return p.embedScript(n), true
	case markup.KindYaml:
		return p.frontmatter(n), true
	}
	return nil, false
}

// embedScript renders the body of a script or style element. The result
// always forces the parent element open and gets an independent
// indentation baseline: breaks inside it are not subject to the
// enclosing element's indent.
func (p *printer) embedScript(n *markup.Node) doc.Doc {
	source := trimSurroundingBlankLine(n.Data)
	body := p.subformat(source, embedLanguage(n.Parent))
	return doc.Concat{
		doc.BreakParent,
		p.openingTagPrefix(n),
		doc.Root{Contents: body},
		p.closingTagSuffix(n),
	}
}

// frontmatter prints a YAML block between fixed --- fences. A blank
// payload collapses to the two fences with no content line; otherwise
// the payload is re-rendered by the sub-formatter with every internal
// break forced literal.
func (p *printer) frontmatter(n *markup.Node) doc.Doc {
	if n.Data == "" {
		return doc.Concat{doc.Text("---"), doc.Hardline, doc.Text("---")}
	}
	body := doc.Literalize(p.subformat(n.Data, "yaml"))
	return doc.Concat{
		doc.Text("---"), doc.Hardline,
		doc.Root{Contents: body},
		doc.Hardline, doc.Text("---"),
	}
}

// subformat invokes the embedding callback, falling back to a dedented
// line-for-line rendering when no formatter resolves or the formatter
// rejects the source.
func (p *printer) subformat(source, lang string) doc.Doc {
	if p.opts.Embed != nil && lang != "" {
		if d, err := p.opts.Embed(source, lang, p.opts); err == nil && d != nil {
			return doc.StripTrailingHardline(d)
		}
	}
	return doc.HardLines(dedent(source))
}

// embedLanguage resolves the sub-language of a script-like element, or
// "" when the content is opaque.
func embedLanguage(tag *markup.Node) string {
	if tag.Name == "style" {
		return "css"
	}
	if lang, ok := tag.Attr("lang"); ok {
		return lang
	}
	if typ, ok := tag.Attr("type"); ok {
		switch typ {
		case "", "text/javascript", "application/javascript", "module":
			return "js"
		}
		if strings.Contains(typ, "json") {
			return "json"
		}
		return ""
	}
	return "js"
}

// bareIdentifierRe matches values that are a single identifier; those
// never benefit from expression formatting.
var bareIdentifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsDynamicBinding reports whether an attribute name follows the
// dynamic-binding conventions of the common template dialects:
// event-handler shorthands (@click, (click)), directive prefixes (v-if,
// x-on), property bindings ([value]) and colon-qualified names (:src,
// v-bind:href). This is a naming heuristic, not a grammar; unusual
// attribute names may misclassify and that is accepted behavior.
func IsDynamicBinding(key string) bool {
	switch {
	case strings.HasPrefix(key, "@"),
		strings.HasPrefix(key, ":"),
		strings.HasPrefix(key, "v-"),
		strings.HasPrefix(key, "x-"),
		strings.HasPrefix(key, "(") && strings.HasSuffix(key, ")"),
		strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]"),
		strings.Contains(key, ":"):
		return true
	}
	return false
}

// embedAttribute delegates a dynamic-binding value to the expression
// sub-formatter. A value with no source line break keeps a single-line
// shape: the sub-formatter result is flattened before splicing between
// the quotes.
func (p *printer) embedAttribute(n *markup.Node) (doc.Doc, bool) {
	if p.opts.Embed == nil || !IsDynamicBinding(n.Key) || bareIdentifierRe.MatchString(n.Value) {
		return nil, false
	}
	sub, err := p.opts.Embed(n.Value, "expression", p.opts)
	if err != nil || sub == nil {
		return nil, false
	}
	sub = doc.StripTrailingHardline(sub)
	if strings.Contains(n.Value, "\n") {
		sub = doc.GroupOf(doc.Indent{Contents: sub})
	} else {
		sub = doc.Flatten(sub)
	}
	quote := `"`
	if strings.Contains(n.Value, `"`) {
		quote = "'"
	}
	return doc.Concat{doc.Text(n.Key + "=" + quote), sub, doc.Text(quote)}, true
}
