// Package subfmt supplies the default sub-formatters the printer
// delegates embedded content to: YAML frontmatter payloads, CSS style
// bodies, and binding expressions. Each formatter is a pure function
// from source text to a document value.
package subfmt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"gopkg.in/yaml.v3"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/printer"
)

// Embed returns the embedding callback backed by the default registry.
// Languages without a formatter report an error, which makes the printer
// preserve the content verbatim instead.
func Embed() printer.EmbedFunc {
	return func(source, lang string, _ printer.Options) (doc.Doc, error) {
		switch lang {
		case "yaml":
			return Yaml(source)
		case "css":
			return CSS(source)
		case "expression":
			return Expression(source)
		}
		return nil, fmt.Errorf("subfmt: no formatter for %q", lang)
	}
}

// Yaml re-renders a YAML document at two-space indentation.
func Yaml(source string) (doc.Doc, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(source), &node); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return doc.HardLines(strings.TrimRight(buf.String(), "\n")), nil
}

// CSS re-prints a stylesheet one declaration per line.
func CSS(source string) (doc.Doc, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse css: %w", err)
	}
	parts := make([]doc.Doc, 0, len(sheet.Rules)*2)
	for i, rule := range sheet.Rules {
		if i > 0 {
			parts = append(parts, doc.Hardline)
		}
		parts = append(parts, ruleDoc(rule))
	}
	return doc.Concat(parts), nil
}

func ruleDoc(r *css.Rule) doc.Doc {
	var header string
	if r.Kind == css.QualifiedRule {
		header = strings.Join(r.Selectors, ", ")
	} else {
		header = r.Name
		if p := strings.Join(strings.Fields(r.Prelude), " "); p != "" {
			header += " " + p
		}
	}
	if r.Kind == css.AtRule && len(r.Declarations) == 0 && len(r.Rules) == 0 {
		return doc.Text(header + ";")
	}
	body := make([]doc.Doc, 0, (len(r.Declarations)+len(r.Rules))*2)
	for _, d := range r.Declarations {
		line := d.Property + ": " + d.Value
		if d.Important {
			line += " !important"
		}
		body = append(body, doc.Hardline, doc.Text(line+";"))
	}
	for _, sub := range r.Rules {
		body = append(body, doc.Hardline, ruleDoc(sub))
	}
	return doc.Concat{
		doc.Text(header + " {"),
		doc.Indent{Contents: doc.Concat(body)},
		doc.Hardline,
		doc.Text("}"),
	}
}

// Expression lays out a binding expression as breakable words. The
// printer flattens the result when the source value had no line break.
func Expression(source string) (doc.Doc, error) {
	words := strings.Fields(source)
	if len(words) == 0 {
		return doc.Text(""), nil
	}
	parts := make([]doc.Doc, len(words))
	for i, w := range words {
		parts[i] = doc.Text(w)
	}
	return doc.Join(doc.Line, parts), nil
}
