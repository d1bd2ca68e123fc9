package printer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rivethealth/prettier/doc"
	"github.com/rivethealth/prettier/markup"
)

// testEmbed formats "expression" sources as breakable word sequences and
// rejects everything else, standing in for the real sub-formatter registry.
func testEmbed(source, lang string, _ Options) (doc.Doc, error) {
	if lang != "expression" {
		return nil, fmt.Errorf("no formatter for %q", lang)
	}
	words := strings.Fields(source)
	parts := make([]doc.Doc, len(words))
	for i, w := range words {
		parts[i] = doc.Text(w)
	}
	return doc.Join(doc.Line, parts), nil
}

func format(t *testing.T, src string, opts Options) string {
	t.Helper()
	root, err := markup.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	markup.Annotate(root)
	out, err := Print(root, opts)
	if err != nil {
		t.Fatalf("Print(%q): %v", src, err)
	}
	return out
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{
			name: "inline boundaries stay glued",
			src:  `<div>a<span>b</span>c</div>`,
			want: "<div>a<span>b</span>c</div>\n",
		},
		{
			name: "void element",
			src:  `<br>`,
			want: "<br />\n",
		},
		{
			name: "void element with attributes",
			src:  `<img src="x.png" alt="x">`,
			want: "<img src=\"x.png\" alt=\"x\" />\n",
		},
		{
			name: "inline element alone",
			src:  `<span>a</span>`,
			want: "<span>a</span>\n",
		},
		{
			name: "block with text child",
			src:  `<p>  hello   world  </p>`,
			want: "<p>hello world</p>\n",
		},
		{
			name: "dangling space in inline element",
			src:  `<span> </span>`,
			want: "<span> </span>\n",
		},
		{
			name: "empty block element",
			src:  `<div></div>`,
			want: "<div></div>\n",
		},
		{
			name: "comment",
			src:  `<!--   note   -->`,
			want: "<!-- note -->\n",
		},
		{
			name: "empty comment",
			src:  `<!-- -->`,
			want: "<!---->\n",
		},
		{
			name: "comment glued to sensitive text",
			src:  `<span>a<!--c--></span>`,
			want: "<span>a<!-- c --></span>\n",
		},
		{
			name: "conditional comment",
			src:  `<!--[if lt IE 9]><p>x</p><![endif]-->`,
			want: "<!--[if lt IE 9]><p>x</p><![endif]-->\n",
		},
		{
			name: "blank lines collapse to one",
			src:  "<p>a</p>\n\n\n\n<p>b</p>",
			want: "<p>a</p>\n\n<p>b</p>\n",
		},
		{
			name: "adjacent blocks get their own lines",
			src:  "<p>a</p><p>b</p>",
			want: "<p>a</p>\n<p>b</p>\n",
		},
		{
			name: "pre keeps bytes",
			src:  "<pre>\n  keep   this\n    exact\n</pre>",
			want: "<pre>\n  keep   this\n    exact\n</pre>\n",
		},
		{
			name: "pre keeps interior blank lines",
			src:  "<pre>a\n\n\n\nb</pre>",
			want: "<pre\n>a\n\n\n\nb</pre>\n",
		},
		{
			name: "single line pre",
			src:  "<pre>x</pre>",
			want: "<pre>x</pre>\n",
		},
		{
			name: "attributes wrap one per line",
			src:  `<div id="a" class="b c d" data-x="y">x</div>`,
			opts: Options{Width: 20},
			want: "<div\n  id=\"a\"\n  class=\"b c d\"\n  data-x=\"y\"\n>\n  x\n</div>\n",
		},
		{
			name: "text reflows as words",
			src:  `<p>one two three four five six seven eight nine ten</p>`,
			opts: Options{Width: 20},
			want: "<p>\n  one two three four\n  five six seven\n  eight nine ten\n</p>\n",
		},
		{
			name: "attribute value with double quotes",
			src:  `<div title='say "hi"'></div>`,
			want: "<div title='say \"hi\"'></div>\n",
		},
		{
			name: "empty frontmatter",
			src:  "---\n---\n<p>hi</p>",
			want: "---\n---\n<p>hi</p>\n",
		},
		{
			name: "script body without a formatter is kept",
			src:  "<script>\n  var x = 1;\n  use(x);\n</script>",
			want: "<script>\nvar x = 1;\nuse(x);\n</script>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(t, tt.src, tt.opts)
			if got != tt.want {
				t.Errorf("format(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestPrintBorrowedMarkersAppearOnce(t *testing.T) {
	srcs := []string{
		`<div>a<span>b</span>c</div>`,
		`<span>a</span>`,
		`<p><span>a</span></p>`,
		`<span>a<!--c--></span>`,
	}
	for _, src := range srcs {
		out := format(t, src, Options{Width: 10})
		for _, marker := range []string{"<span", "</span", "<p", "</p", "<div", "</div", "<!--", "-->"} {
			base := strings.Count(src, marker)
			if got := strings.Count(out, marker); got != base {
				t.Errorf("format(%q): marker %q appears %d times, want %d\noutput: %q",
					src, marker, got, base, out)
			}
		}
	}
}

func TestPrintIdempotent(t *testing.T) {
	srcs := []string{
		`<div>a<span>b</span>c</div>`,
		"<p>a</p>\n\n\n<p>b</p>",
		"<pre>\n  keep   this\n    exact\n</pre>",
		"<pre>a\n\n\n\nb</pre>",
		`<span>a</span>`,
		`<span>a<!--c--></span>`,
		"<ul><li>one</li><li>two</li></ul>",
		"<!--[if lt IE 9]><p>x</p><![endif]-->",
	}
	for _, src := range srcs {
		for _, width := range []int{80, 20} {
			opts := Options{Width: width, Embed: testEmbed}
			once := format(t, src, opts)
			twice := format(t, once, opts)
			if once != twice {
				t.Errorf("format not idempotent for %q at width %d:\nfirst:  %q\nsecond: %q",
					src, width, once, twice)
			}
		}
	}
}

func TestPrintForcedBreaks(t *testing.T) {
	got := format(t, "<ul><li>a</li><li>b</li></ul>", Options{})
	want := "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>\n"
	if got != want {
		t.Errorf("list layout = %q, want %q", got, want)
	}
}

func TestPrintBindingAttribute(t *testing.T) {
	t.Run("flattened when single line", func(t *testing.T) {
		got := format(t, `<div :key="a  &&  b"></div>`, Options{Embed: testEmbed})
		want := "<div :key=\"a && b\"></div>\n"
		if got != want {
			t.Errorf("format = %q, want %q", got, want)
		}
	})
	t.Run("bare identifier is left alone", func(t *testing.T) {
		got := format(t, `<div :key="item"></div>`, Options{Embed: testEmbed})
		want := "<div :key=\"item\"></div>\n"
		if got != want {
			t.Errorf("format = %q, want %q", got, want)
		}
	})
	t.Run("static attribute is left alone", func(t *testing.T) {
		got := format(t, `<div data-k="a  &&  b"></div>`, Options{Embed: testEmbed})
		want := "<div data-k=\"a  &&  b\"></div>\n"
		if got != want {
			t.Errorf("format = %q, want %q", got, want)
		}
	})
}

func TestIsDynamicBinding(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"@click", true},
		{":src", true},
		{"v-if", true},
		{"x-on", true},
		{"(click)", true},
		{"[value]", true},
		{"v-bind:href", true},
		{"class", false},
		{"data-x", false},
	}
	for _, tt := range tests {
		if got := IsDynamicBinding(tt.key); got != tt.want {
			t.Errorf("IsDynamicBinding(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestBuildInternalError(t *testing.T) {
	bogus := &markup.Node{Kind: markup.Kind(99), Start: markup.Position{Line: 3, Column: 7}}
	root := &markup.Node{Kind: markup.KindRoot}
	root.AppendChild(bogus)

	_, err := Build(root, Options{})
	var ie *InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("Build() error = %v, want *InternalError", err)
	}
	if ie.Position.Line != 3 || ie.Position.Column != 7 {
		t.Errorf("InternalError position = %v, want 3:7", ie.Position)
	}
}
