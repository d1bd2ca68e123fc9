package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAnnotate(t *testing.T, src string) *Node {
	t.Helper()
	root, err := Parse(src)
	require.NoError(t, err)
	Annotate(root)
	return root
}

func TestAnnotateRemovesWhitespaceText(t *testing.T) {
	root := mustAnnotate(t, "<div>\n  <p>a</p>\n  <p>b</p>\n</div>")
	div := root.Children[0]
	require.Len(t, div.Children, 2, "whitespace-only text nodes are removed")

	p1, p2 := div.Children[0], div.Children[1]
	require.True(t, p1.HasLeadingSpaces)
	require.True(t, p1.HasTrailingSpaces)
	require.True(t, p2.HasLeadingSpaces)
	require.True(t, p2.HasTrailingSpaces)
}

func TestAnnotateTrimsText(t *testing.T) {
	root := mustAnnotate(t, "<div>  hello  </div>")
	text := root.Children[0].Children[0]
	require.Equal(t, "hello", text.Data)
	require.True(t, text.HasLeadingSpaces)
	require.True(t, text.HasTrailingSpaces)
	require.False(t, text.IsLeadingSpaceSensitive, "first child of a block is insensitive")
	require.False(t, text.IsTrailingSpaceSensitive, "last child of a block is insensitive")
}

func TestAnnotateInlineSensitivity(t *testing.T) {
	root := mustAnnotate(t, "<span>a</span>")
	text := root.Children[0].Children[0]
	require.True(t, text.IsLeadingSpaceSensitive)
	require.True(t, text.IsTrailingSpaceSensitive)
}

func TestAnnotateBlockNeighbor(t *testing.T) {
	root := mustAnnotate(t, "<span>a<div>b</div>c</span>")
	span := root.Children[0]
	a, c := span.Children[0], span.Children[2]
	require.False(t, a.IsTrailingSpaceSensitive, "space before a block is insignificant")
	require.False(t, c.IsLeadingSpaceSensitive, "space after a block is insignificant")
}

func TestAnnotateDanglingSpaces(t *testing.T) {
	root := mustAnnotate(t, "<span> </span>")
	span := root.Children[0]
	require.Empty(t, span.Children)
	require.True(t, span.HasDanglingSpaces)
	require.True(t, span.IsDanglingSpaceSensitive)

	root = mustAnnotate(t, "<div> </div>")
	div := root.Children[0]
	require.True(t, div.HasDanglingSpaces)
	require.False(t, div.IsDanglingSpaceSensitive)
}

func TestAnnotatePre(t *testing.T) {
	root := mustAnnotate(t, "<pre>\n  keep   this\n</pre>")
	pre := root.Children[0]
	require.True(t, pre.IsWhiteSpaceSensitive)
	require.True(t, pre.IsIndentationSensitive)

	text := pre.Children[0]
	require.Equal(t, "\n  keep   this\n", text.Data, "verbatim content is untouched")
	require.True(t, text.IsWhiteSpaceSensitive)
	require.True(t, text.IsIndentationSensitive)
	require.True(t, text.HasLeadingSpaces)
	require.True(t, text.HasTrailingSpaces)
}

func TestAnnotateTextarea(t *testing.T) {
	root := mustAnnotate(t, "<textarea>  raw  </textarea>")
	text := root.Children[0].Children[0]
	require.Equal(t, "  raw  ", text.Data)
	require.True(t, text.IsWhiteSpaceSensitive)
}

func TestAnnotateRootForceBreak(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"<!DOCTYPE html><p>x</p>", true},
		{"---\na: 1\n---\n", true},
		{"<div>x</div>", true},
		{"<span>x</span>", false},
		{"<!-- note -->", false},
	}
	for _, tt := range tests {
		root := mustAnnotate(t, tt.src)
		require.Equal(t, tt.want, root.ForceBreak, "source %q", tt.src)
	}
}

func TestDisplayHelpers(t *testing.T) {
	require.True(t, IsPreLike(&Node{Kind: KindTag, Name: "pre"}))
	require.True(t, IsPreLike(&Node{Kind: KindTag, Name: "textarea"}))
	require.False(t, IsPreLike(&Node{Kind: KindTag, Name: "div"}))
	require.True(t, IsScriptLike(&Node{Kind: KindTag, Name: "style"}))
	require.True(t, IsTextLike(&Node{Kind: KindComment}))
	require.False(t, IsTextLike(&Node{Kind: KindTag, Name: "p"}))
}
