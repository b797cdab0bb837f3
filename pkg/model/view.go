package model

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFragment reports a node tree that does not have the figure
// shape expected by template based renderers.
var ErrUnsupportedFragment = errors.New("model: unsupported fragment")

// FigureView flattens a figure fragment into the values templates need.
type FigureView struct {
	Class    string `json:"class"`
	HasClass bool   `json:"hasClass"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption"`
}

// FigureOf validates the fragment shape (figure > img + figcaption) and
// returns its flattened view.
func FigureOf(node Node) (FigureView, error) {
	if node.Tag != TagFigure {
		return FigureView{}, fmt.Errorf("%w: root tag %q", ErrUnsupportedFragment, node.Tag)
	}
	if len(node.Children) != 2 {
		return FigureView{}, fmt.Errorf("%w: expected 2 children, got %d", ErrUnsupportedFragment, len(node.Children))
	}
	image, caption := node.Children[0], node.Children[1]
	if image.Tag != TagImage || caption.Tag != TagCaption {
		return FigureView{}, fmt.Errorf("%w: children %q, %q", ErrUnsupportedFragment, image.Tag, caption.Tag)
	}

	view := FigureView{Caption: caption.Text}
	view.Class, view.HasClass = node.Attr(AttrClass)
	view.Src, _ = image.Attr(AttrSrc)
	view.Alt, _ = image.Attr(AttrAlt)
	return view, nil
}
