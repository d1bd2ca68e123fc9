// Package markup holds the annotated markup tree consumed by the printer:
// the node model, the HTML parser that builds it, and the preprocessing
// pass that computes per-node whitespace sensitivity.
package markup

// Kind identifies the variant of a Node.
type Kind int

const (
	KindRoot Kind = iota
	KindTag
	KindConditionalComment
	KindText
	KindComment
	KindDirective
	KindAttribute
	KindYaml
	KindToml
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindTag:
		return "tag"
	case KindConditionalComment:
		return "conditionalComment"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindDirective:
		return "directive"
	case KindAttribute:
		return "attribute"
	case KindYaml:
		return "yaml"
	case KindToml:
		return "toml"
	}
	return "unknown"
}

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

// Node is one node of the annotated tree. The parser builds it, Annotate
// fills in the sensitivity flags, and the printer reads it without ever
// mutating it.
type Node struct {
	Kind Kind

	Parent *Node
	Prev   *Node
	Next   *Node

	Children []*Node

	// Tag and conditional comment.
	Name          string
	Condition     string
	IsSelfClosing bool
	Attrs         []*Node

	// Attribute.
	Key      string
	Value    string
	HasValue bool

	// Text, comment and directive payload.
	Data string

	// Frontmatter: Data holds the trimmed payload, Raw the verbatim block
	// including fences.
	Raw string

	// Sensitivity flags, fixed for the lifetime of a print pass.
	IsLeadingSpaceSensitive  bool
	IsTrailingSpaceSensitive bool
	HasLeadingSpaces         bool
	HasTrailingSpaces        bool
	IsWhiteSpaceSensitive    bool
	IsIndentationSensitive   bool
	IsDanglingSpaceSensitive bool
	HasDanglingSpaces        bool

	// Layout hints attached by preprocessing. ForceBlankLineAfter requests
	// one blank line after this node even if the source had none.
	// ForceBlankLineAfter is opaque to this package: it is consumed, never
	// derived, here.
	ForceBlankLineAfter bool
	// ForceBreak, on the root, forces the top-level group to lay out broken.
	ForceBreak bool

	Start Position
	End   Position
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// AppendChild links c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	if last := n.LastChild(); last != nil {
		last.Next = c
		c.Prev = last
	}
	n.Children = append(n.Children, c)
}

// RemoveChild unlinks c from n, stitching its siblings together.
func (n *Node) RemoveChild(c *Node) {
	for i, child := range n.Children {
		if child == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			break
		}
	}
	if c.Prev != nil {
		c.Prev.Next = c.Next
	}
	if c.Next != nil {
		c.Next.Prev = c.Prev
	}
	c.Parent, c.Prev, c.Next = nil, nil, nil
}

// LastDescendant returns the deepest node reachable by following last
// children, or n itself if it has none.
func (n *Node) LastDescendant() *Node {
	d := n
	for d.LastChild() != nil {
		d = d.LastChild()
	}
	return d
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
