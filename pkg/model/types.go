package model

// Tag names used by figure fragments.
const (
	TagFigure  = "figure"
	TagImage   = "img"
	TagCaption = "figcaption"
)

// Attribute names used by figure fragments.
const (
	AttrClass = "class"
	AttrSrc   = "src"
	AttrAlt   = "alt"
)

// FigureInput carries the values for a single captioned image. Src is opaque
// and never validated. Caption doubles as the image's alternative text.
// StyleClass is optional; the empty string means no presentation hook.
type FigureInput struct {
	Src        string `json:"src" yaml:"src"`
	Caption    string `json:"caption" yaml:"caption"`
	StyleClass string `json:"class,omitempty" yaml:"class,omitempty"`
}

// HasStyleClass reports whether a presentation hook was supplied.
func (in FigureInput) HasStyleClass() bool {
	return in.StyleClass != ""
}

// Attr is a single name/value attribute on a Node. Attributes keep insertion
// order so serialised output is stable.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one element of a structural fragment. Text holds the element's text
// content; figure fragments never mix Text and Children on the same node.
type Node struct {
	Tag      string `json:"tag"`
	Attrs    []Attr `json:"attrs,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child carrying the given tag.
func (n Node) Child(tag string) (Node, bool) {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child, true
		}
	}
	return Node{}, false
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := Node{Tag: n.Tag, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = append([]Attr(nil), n.Attrs...)
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
