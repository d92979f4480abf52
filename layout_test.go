package guidraw_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
)

func TestDefaultLayoutMatchesVertex(t *testing.T) {
	var v guidraw.Vertex
	layout := guidraw.DefaultVertexLayout()

	want := map[guidraw.VertexAttribute]uintptr{
		guidraw.AttributePosition: unsafe.Offsetof(v.Pos),
		guidraw.AttributeTexCoord: unsafe.Offsetof(v.TexCoord),
		guidraw.AttributeColor:    unsafe.Offsetof(v.Color),
	}
	sizes := map[guidraw.VertexAttribute]uintptr{
		guidraw.AttributePosition: unsafe.Sizeof(v.Pos),
		guidraw.AttributeTexCoord: unsafe.Sizeof(v.TexCoord),
		guidraw.AttributeColor:    unsafe.Sizeof(v.Color),
	}

	for attr, off := range want {
		e, ok := layout.Find(attr)
		if !ok {
			t.Fatalf("%s missing from layout", attr)
		}
		if uintptr(e.Offset) != off {
			t.Errorf("%s: layout offset %d, struct offset %d", attr, e.Offset, off)
		}
		if uintptr(e.Format.Size()) != sizes[attr] {
			t.Errorf("%s: format size %d, field size %d", attr, e.Format.Size(), sizes[attr])
		}
	}

	if guidraw.VertexSize != 20 {
		t.Errorf("expected 20 byte vertices, got %d", guidraw.VertexSize)
	}
	if err := layout.Validate(guidraw.VertexSize); err != nil {
		t.Errorf("default layout invalid: %v", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout guidraw.VertexLayout
		stride int
	}{
		{"overlap", guidraw.VertexLayout{
			{Attribute: guidraw.AttributePosition, Format: gputypes.VertexFormatFloat32x2, Offset: 0},
			{Attribute: guidraw.AttributeTexCoord, Format: gputypes.VertexFormatFloat32x2, Offset: 4},
		}, 20},
		{"past stride", guidraw.VertexLayout{
			{Attribute: guidraw.AttributeColor, Format: gputypes.VertexFormatUnorm8x4, Offset: 18},
		}, 20},
		{"duplicate", guidraw.VertexLayout{
			{Attribute: guidraw.AttributePosition, Format: gputypes.VertexFormatFloat32x2, Offset: 0},
			{Attribute: guidraw.AttributePosition, Format: gputypes.VertexFormatFloat32x2, Offset: 8},
		}, 20},
		{"unknown format", guidraw.VertexLayout{
			{Attribute: guidraw.AttributePosition, Format: gputypes.VertexFormatUndefined, Offset: 0},
		}, 20},
		{"zero stride", guidraw.DefaultVertexLayout(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Validate(tt.stride); !errors.Is(err, guidraw.ErrInvalidLayout) {
				t.Errorf("expected ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestBufferLayout(t *testing.T) {
	bl := guidraw.DefaultVertexLayout().BufferLayout(guidraw.VertexSize)

	if bl.ArrayStride != 20 {
		t.Errorf("expected stride 20, got %d", bl.ArrayStride)
	}
	if bl.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("expected per-vertex stepping, got %v", bl.StepMode)
	}
	for i, a := range bl.Attributes {
		if a.ShaderLocation != uint32(i) {
			t.Errorf("attribute %d at location %d", i, a.ShaderLocation)
		}
	}
	if bl.Attributes[2].Format != gputypes.VertexFormatUnorm8x4 || bl.Attributes[2].Offset != 16 {
		t.Errorf("unexpected color attribute %+v", bl.Attributes[2])
	}
}
