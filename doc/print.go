package doc

import (
	"fmt"
	"strings"
)

// Options controls the layout pass.
type Options struct {
	// Width is the target line width. Zero means 80.
	Width int
	// TabWidth is the number of columns per indentation level. Zero means 2.
	TabWidth int
	// UseTabs selects tab characters for indentation.
	UseTabs bool
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 80
	}
	return o.Width
}

func (o Options) tabWidth() int {
	if o.TabWidth <= 0 {
		return 2
	}
	return o.TabWidth
}

func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.tabWidth())
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type command struct {
	indent string
	mode   mode
	doc    Doc
}

// Print lays out d against the target width and returns the final text.
func Print(d Doc, opts Options) string {
	propagate(d)
	p := &printer{opts: opts, width: opts.width()}
	p.run(command{indent: "", mode: modeBreak, doc: d})
	return string(p.out)
}

// propagate walks d bottom-up and marks every group that transitively
// contains a forced break. The layout pass never has to re-discover hard
// breaks while measuring a group flat. Returns whether d forces its
// enclosing groups to break.
func propagate(d Doc) bool {
	switch t := d.(type) {
	case Concat:
		forced := false
		for _, c := range t {
			if propagate(c) {
				forced = true
			}
		}
		return forced
	case Fill:
		forced := false
		for _, c := range t {
			if propagate(c) {
				forced = true
			}
		}
		return forced
	case *Group:
		if propagate(t.Contents) {
			t.Break = true
		}
		return t.Break
	case Indent:
		return propagate(t.Contents)
	case Root:
		return propagate(t.Contents)
	case line:
		return t.kind == lineHard || t.kind == lineLiteral
	case breakParent:
		return true
	}
	return false
}

type printer struct {
	opts  Options
	width int
	out   []byte
	pos   int
	stack []command
}

func (p *printer) run(root command) {
	p.stack = []command{root}
	for len(p.stack) > 0 {
		cmd := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		switch t := cmd.doc.(type) {
		case nil:
			// nothing
		case Text:
			p.text(string(t))
		case Concat:
			for i := len(t) - 1; i >= 0; i-- {
				p.push(command{cmd.indent, cmd.mode, t[i]})
			}
		case Indent:
			p.push(command{cmd.indent + p.opts.indentUnit(), cmd.mode, t.Contents})
		case Root:
			p.push(command{"", cmd.mode, t.Contents})
		case *Group:
			switch {
			case cmd.mode == modeFlat && !t.Break:
				p.push(command{cmd.indent, modeFlat, t.Contents})
			case t.Break:
				p.push(command{cmd.indent, modeBreak, t.Contents})
			default:
				next := command{cmd.indent, modeFlat, t.Contents}
				if p.fits(next) {
					p.push(next)
				} else {
					p.push(command{cmd.indent, modeBreak, t.Contents})
				}
			}
		case Fill:
			p.fill(cmd, t)
		case line:
			switch t.kind {
			case lineHard:
				p.newline(cmd.indent, false)
			case lineLiteral:
				p.newline("", true)
			case lineSpace:
				if cmd.mode == modeFlat {
					p.text(" ")
				} else {
					p.newline(cmd.indent, false)
				}
			case lineSoft:
				if cmd.mode != modeFlat {
					p.newline(cmd.indent, false)
				}
			}
		case breakParent:
			// handled during propagation
		default:
			panic(fmt.Sprintf("doc: unknown document node %T", cmd.doc))
		}
	}
}

func (p *printer) push(c command) {
	p.stack = append(p.stack, c)
}

func (p *printer) text(s string) {
	p.out = append(p.out, s...)
	p.pos += stringWidth(s, p.opts.tabWidth())
}

// newline trims trailing spaces on the current line and starts a new one
// with the given indentation. Runs of hard breaks are capped so that at
// most one blank line survives, regardless of how many were emitted back
// to back. Literal breaks skip both the trim and the cap: verbatim
// content keeps its trailing bytes and its blank lines.
func (p *printer) newline(indent string, literal bool) {
	if !literal {
		for len(p.out) > 0 && (p.out[len(p.out)-1] == ' ' || p.out[len(p.out)-1] == '\t') {
			p.out = p.out[:len(p.out)-1]
		}
	}
	trailing := 0
	for i := len(p.out) - 1; i >= 0 && p.out[i] == '\n'; i-- {
		trailing++
	}
	if literal || trailing < 2 {
		p.out = append(p.out, '\n')
	}
	p.out = append(p.out, indent...)
	p.pos = stringWidth(indent, p.opts.tabWidth())
}

// fits reports whether next, followed by the remaining queued commands,
// stays within the target width up to the first line break.
func (p *printer) fits(next command) bool {
	remaining := p.width - p.pos
	cmds := []command{next}
	rest := len(p.stack)

	for remaining >= 0 {
		var cmd command
		if len(cmds) > 0 {
			cmd = cmds[len(cmds)-1]
			cmds = cmds[:len(cmds)-1]
		} else {
			if rest == 0 {
				return true
			}
			rest--
			cmd = p.stack[rest]
		}

		switch t := cmd.doc.(type) {
		case nil:
		case Text:
			remaining -= stringWidth(string(t), p.opts.tabWidth())
		case Concat:
			for i := len(t) - 1; i >= 0; i-- {
				cmds = append(cmds, command{cmd.indent, cmd.mode, t[i]})
			}
		case Fill:
			for i := len(t) - 1; i >= 0; i-- {
				cmds = append(cmds, command{cmd.indent, cmd.mode, t[i]})
			}
		case Indent:
			cmds = append(cmds, command{cmd.indent, cmd.mode, t.Contents})
		case Root:
			cmds = append(cmds, command{"", cmd.mode, t.Contents})
		case *Group:
			m := modeFlat
			if t.Break {
				m = modeBreak
			}
			cmds = append(cmds, command{cmd.indent, m, t.Contents})
		case line:
			switch t.kind {
			case lineHard, lineLiteral:
				return true
			case lineSpace:
				if cmd.mode == modeBreak {
					return true
				}
				remaining--
			case lineSoft:
				if cmd.mode == modeBreak {
					return true
				}
			}
		case breakParent:
		}
	}
	return false
}

// fill implements the greedy content/separator layout: each separator
// breaks independently based on whether the content after it still fits.
func (p *printer) fill(cmd command, parts Fill) {
	if len(parts) == 0 {
		return
	}
	content := command{cmd.indent, modeFlat, parts[0]}
	contentFits := p.fits(content)

	if len(parts) == 1 {
		if contentFits {
			p.push(content)
		} else {
			p.push(command{cmd.indent, modeBreak, parts[0]})
		}
		return
	}

	sep := parts[1]
	if len(parts) == 2 {
		if contentFits {
			p.push(command{cmd.indent, modeFlat, sep})
			p.push(content)
		} else {
			p.push(command{cmd.indent, modeBreak, sep})
			p.push(command{cmd.indent, modeBreak, parts[0]})
		}
		return
	}

	remainder := command{cmd.indent, cmd.mode, parts[2:]}
	pair := command{cmd.indent, modeFlat, Concat{parts[0], parts[1], parts[2]}}
	switch {
	case p.fits(pair):
		p.push(remainder)
		p.push(command{cmd.indent, modeFlat, sep})
		p.push(content)
	case contentFits:
		p.push(remainder)
		p.push(command{cmd.indent, modeBreak, sep})
		p.push(content)
	default:
		p.push(remainder)
		p.push(command{cmd.indent, modeBreak, sep})
		p.push(command{cmd.indent, modeBreak, parts[0]})
	}
}

func stringWidth(s string, tabWidth int) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
		} else {
			w++
		}
	}
	return w
}
