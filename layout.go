package guidraw

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// VertexAttribute names the meaning of one vertex layout element.
type VertexAttribute int

const (
	AttributePosition VertexAttribute = iota
	AttributeTexCoord
	AttributeColor
)

func (a VertexAttribute) String() string {
	switch a {
	case AttributePosition:
		return "position"
	case AttributeTexCoord:
		return "texcoord"
	case AttributeColor:
		return "color"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

// VertexLayoutElement tells the GUI library where and how to pack one
// attribute inside a vertex.
type VertexLayoutElement struct {
	Attribute VertexAttribute
	Format    gputypes.VertexFormat
	Offset    int
}

// VertexLayout is an ordered description of a vertex.
type VertexLayout []VertexLayoutElement

// DefaultVertexLayout returns the layout of Vertex:
// position Float32x2 at 0, texcoord Float32x2 at 8, color Unorm8x4 at 16.
func DefaultVertexLayout() VertexLayout {
	return VertexLayout{
		{Attribute: AttributePosition, Format: gputypes.VertexFormatFloat32x2, Offset: 0},
		{Attribute: AttributeTexCoord, Format: gputypes.VertexFormatFloat32x2, Offset: 8},
		{Attribute: AttributeColor, Format: gputypes.VertexFormatUnorm8x4, Offset: 16},
	}
}

// Find returns the element describing attr.
func (l VertexLayout) Find(attr VertexAttribute) (VertexLayoutElement, bool) {
	for _, e := range l {
		if e.Attribute == attr {
			return e, true
		}
	}
	return VertexLayoutElement{}, false
}

// Validate checks that every element has a known format, fits inside
// stride and does not overlap another element.
func (l VertexLayout) Validate(stride int) error {
	if stride <= 0 {
		return fmt.Errorf("stride %d: %w", stride, ErrInvalidLayout)
	}
	for i, e := range l {
		size := int(e.Format.Size())
		if size == 0 {
			return fmt.Errorf("%s: unsupported format %s: %w", e.Attribute, e.Format, ErrInvalidLayout)
		}
		if e.Offset < 0 || e.Offset+size > stride {
			return fmt.Errorf("%s: bytes [%d,%d) outside stride %d: %w", e.Attribute, e.Offset, e.Offset+size, stride, ErrInvalidLayout)
		}
		for _, other := range l[:i] {
			if other.Attribute == e.Attribute {
				return fmt.Errorf("%s: declared twice: %w", e.Attribute, ErrInvalidLayout)
			}
			otherEnd := other.Offset + int(other.Format.Size())
			if e.Offset < otherEnd && other.Offset < e.Offset+size {
				return fmt.Errorf("%s overlaps %s: %w", e.Attribute, other.Attribute, ErrInvalidLayout)
			}
		}
	}
	return nil
}

// BufferLayout returns the layout as a gputypes vertex buffer layout. Shader
// locations follow the attribute order: position 0, texcoord 1, color 2.
func (l VertexLayout) BufferLayout(stride int) gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, len(l))
	for _, e := range l {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         e.Format,
			Offset:         uint64(e.Offset),
			ShaderLocation: uint32(e.Attribute),
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}
