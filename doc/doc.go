// Package doc implements the intermediate document representation consumed
// by the printer and the layout engine that turns a document into text.
//
// A Doc is an abstract description of output: literal text plus structural
// hints (groups that prefer a single line, places where a line may or must
// break, indentation regions). The layout engine decides which optional
// breaks to take based on a target width.
package doc

import "strings"

// Doc is a node of the abstract document. The set of implementations is
// closed; the layout engine fails loudly on anything else.
type Doc interface {
	isDoc()
}

// Text is literal output. It must not contain newline characters; line
// structure is expressed with the line docs below.
type Text string

func (Text) isDoc() {}

// Concat concatenates sub-documents with no reflow of its own.
type Concat []Doc

func (Concat) isDoc() {}

// Group tries to lay out its contents on a single line. If the flat layout
// does not fit the remaining width, or a break was forced inside it, every
// line doc within lays out broken.
type Group struct {
	Contents Doc
	// Break forces the broken layout regardless of fit.
	Break bool
}

func (*Group) isDoc() {}

// Fill greedily alternates content and separator parts: each separator is
// independently rendered flat or broken depending on whether the following
// content still fits on the current line.
type Fill []Doc

func (Fill) isDoc() {}

// Indent increases the indentation applied to breaks inside.
type Indent struct {
	Contents Doc
}

func (Indent) isDoc() {}

// Root resets the indentation baseline for its subtree. Frontmatter blocks
// and embedded sub-language output are printed under a Root so that their
// internal breaks do not inherit the surrounding markup indentation.
type Root struct {
	Contents Doc
}

func (Root) isDoc() {}

type lineKind int

const (
	lineSpace   lineKind = iota // space when flat, newline when broken
	lineSoft                    // empty when flat, newline when broken
	lineHard                    // always a newline
	lineLiteral                 // always a newline, no indentation
)

// line is one of the four break primitives.
type line struct {
	kind lineKind
}

func (line) isDoc() {}

// Line is a single space when flat and a line break when broken.
var Line Doc = line{lineSpace}

// Softline is empty when flat and a line break when broken.
var Softline Doc = line{lineSoft}

// Hardline always breaks. It forces every enclosing group to lay out broken.
var Hardline Doc = line{lineHard}

// LiteralLine always breaks and suppresses indentation on the new line,
// for verbatim regions that carry their own leading whitespace.
var LiteralLine Doc = line{lineLiteral}

// breakParent propagates a forced-break requirement to every enclosing
// group without emitting anything itself.
type breakParent struct{}

func (breakParent) isDoc() {}

// BreakParent forces every enclosing group to lay out broken.
var BreakParent Doc = breakParent{}

// Join interleaves sep between the given docs.
func Join(sep Doc, docs []Doc) Doc {
	out := make(Concat, 0, len(docs)*2)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return out
}

// GroupOf wraps docs in an unforced group.
func GroupOf(docs ...Doc) *Group {
	return &Group{Contents: Concat(docs)}
}

// LiteralLines splits s on newlines and joins the lines with LiteralLine,
// reproducing the text byte for byte.
func LiteralLines(s string) Doc {
	return joinLines(s, LiteralLine)
}

// HardLines splits s on newlines and joins the lines with Hardline, so each
// line is re-indented to the current level.
func HardLines(s string) Doc {
	return joinLines(s, Hardline)
}

func joinLines(s string, br Doc) Doc {
	lines := strings.Split(s, "\n")
	docs := make([]Doc, len(lines))
	for i, l := range lines {
		docs[i] = Text(l)
	}
	return Join(br, docs)
}

// Flatten collapses every break in d to its flat form: breakable spaces
// become spaces, soft breaks disappear, hard breaks become spaces and
// forced-break markers are dropped. Used to compress sub-formatter output
// onto a single line.
func Flatten(d Doc) Doc {
	switch t := d.(type) {
	case nil:
		return nil
	case Text:
		return t
	case Concat:
		out := make(Concat, len(t))
		for i, c := range t {
			out[i] = Flatten(c)
		}
		return out
	case *Group:
		return Flatten(t.Contents)
	case Fill:
		out := make(Concat, len(t))
		for i, c := range t {
			out[i] = Flatten(c)
		}
		return out
	case Indent:
		return Flatten(t.Contents)
	case Root:
		return Flatten(t.Contents)
	case line:
		switch t.kind {
		case lineSoft:
			return Text("")
		default:
			return Text(" ")
		}
	case breakParent:
		return Text("")
	}
	return d
}

// Literalize replaces every break in d with a literal line break, so the
// sub-document keeps its exact line structure with no reflow and no
// inherited indentation. Used on frontmatter payloads.
func Literalize(d Doc) Doc {
	switch t := d.(type) {
	case nil:
		return nil
	case Concat:
		out := make(Concat, len(t))
		for i, c := range t {
			out[i] = Literalize(c)
		}
		return out
	case *Group:
		return Literalize(t.Contents)
	case Fill:
		out := make(Concat, len(t))
		for i, c := range t {
			out[i] = Literalize(c)
		}
		return out
	case Indent:
		return Literalize(t.Contents)
	case Root:
		return Literalize(t.Contents)
	case line:
		return LiteralLine
	case breakParent:
		return Text("")
	}
	return d
}

// StripTrailingHardline removes one trailing hard break (and any empty text
// after it) from d, if present. Sub-formatters conventionally terminate
// their output with a newline which must not survive splicing.
func StripTrailingHardline(d Doc) Doc {
	stripped, _ := stripTrailing(d)
	return stripped
}

func stripTrailing(d Doc) (Doc, bool) {
	switch t := d.(type) {
	case Concat:
		for i := len(t) - 1; i >= 0; i-- {
			if txt, ok := t[i].(Text); ok && txt == "" {
				continue
			}
			if s, ok := stripTrailing(t[i]); ok {
				out := make(Concat, i+1)
				copy(out, t[:i])
				out[i] = s
				return out, true
			}
			return t, false
		}
		return t, false
	case *Group:
		if s, ok := stripTrailing(t.Contents); ok {
			return &Group{Contents: s, Break: t.Break}, true
		}
		return t, false
	case Indent:
		if s, ok := stripTrailing(t.Contents); ok {
			return Indent{Contents: s}, true
		}
		return t, false
	case Root:
		if s, ok := stripTrailing(t.Contents); ok {
			return Root{Contents: s}, true
		}
		return t, false
	case line:
		if t.kind == lineHard || t.kind == lineLiteral {
			return Text(""), true
		}
		return t, false
	}
	return d, false
}
