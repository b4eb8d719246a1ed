package datatable

import "fmt"

// ShapeKind distinguishes the two resource claim shapes.
type ShapeKind int

const (
	// ShapeAudio claims an audio-codec-compatible file.
	ShapeAudio ShapeKind = iota
	// ShapeImage claims an image of at least MinWidth by MinHeight pixels.
	ShapeImage
)

// Shape is the expected shape of an external resource.
type Shape struct {
	Kind      ShapeKind
	MinWidth  int
	MinHeight int
}

// AudioShape claims an audio file.
func AudioShape() Shape { return Shape{Kind: ShapeAudio} }

// ImageShape claims an image of at least w by h pixels.
func ImageShape(w, h int) Shape {
	return Shape{Kind: ShapeImage, MinWidth: w, MinHeight: h}
}

func (s Shape) String() string {
	if s.Kind == ShapeAudio {
		return "audio"
	}
	return fmt.Sprintf("image >= %dx%d", s.MinWidth, s.MinHeight)
}

// ResourceRecord is a pure claim that an external asset exists and matches a
// shape. It carries no ownership of filesystem state; checking is delegated
// to a ResourceValidator.
type ResourceRecord struct {
	Path  string
	Shape Shape
}

// ResourceValidator is the host-supplied collaborator that checks resource
// claims. The host decides how, and whether, to touch the filesystem.
type ResourceValidator interface {
	Validate(records []ResourceRecord) error
}

// ResourceValidatorFunc adapts a function to the ResourceValidator interface.
type ResourceValidatorFunc func(records []ResourceRecord) error

func (f ResourceValidatorFunc) Validate(records []ResourceRecord) error { return f(records) }

// RegisterResource files one resource claim. Claims are appended
// unconditionally; duplicate paths are harmless.
func (t *Table) RegisterResource(path string, shape Shape) {
	t.resources = append(t.resources, ResourceRecord{Path: path, Shape: shape})
}

// Resources returns the accumulated claims in filing order.
func (t *Table) Resources() []ResourceRecord { return t.resources }

// ValidateResources hands the accumulated claims, in filing order, to the
// given validator and relays its verdict.
func (t *Table) ValidateResources(v ResourceValidator) error {
	return v.Validate(t.resources)
}
