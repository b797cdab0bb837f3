package model

// Builder converts figure inputs into structural fragments.
type Builder interface {
	Build(input FigureInput) Node
}

// BuilderFunc adapts a function into a Builder.
type BuilderFunc func(FigureInput) Node

// Build calls the underlying function.
func (fn BuilderFunc) Build(input FigureInput) Node {
	return fn(input)
}

// NewBuilder returns the default Builder.
func NewBuilder() Builder {
	return BuilderFunc(Build)
}

// Build composes the figure fragment for input. The image alt text and the
// caption text both come from input.Caption so they cannot diverge. Build
// never fails and never mutates its input.
func Build(input FigureInput) Node {
	figure := Node{Tag: TagFigure}
	if input.HasStyleClass() {
		figure.Attrs = []Attr{{Name: AttrClass, Value: input.StyleClass}}
	}
	figure.Children = []Node{
		{
			Tag: TagImage,
			Attrs: []Attr{
				{Name: AttrSrc, Value: input.Src},
				{Name: AttrAlt, Value: input.Caption},
			},
		},
		{Tag: TagCaption, Text: input.Caption},
	}
	return figure
}
