package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
)

func TestDefaultLayoutAttribFormats(t *testing.T) {
	layout := guidraw.DefaultVertexLayout().BufferLayout(guidraw.VertexSize)

	want := map[uint32]attribFormat{
		0: {2, gl.FLOAT, false},
		1: {2, gl.FLOAT, false},
		2: {4, gl.UNSIGNED_BYTE, true},
	}
	if len(layout.Attributes) != len(want) {
		t.Fatalf("expected %d attributes, got %d", len(want), len(layout.Attributes))
	}
	for _, attr := range layout.Attributes {
		got, err := glAttribFormat(attr.Format)
		if err != nil {
			t.Fatalf("location %d: %v", attr.ShaderLocation, err)
		}
		if got != want[attr.ShaderLocation] {
			t.Errorf("location %d: got %+v, want %+v", attr.ShaderLocation, got, want[attr.ShaderLocation])
		}
	}
}

func TestUnsupportedAttribFormat(t *testing.T) {
	if _, err := glAttribFormat(gputypes.VertexFormatSint32x4); err == nil {
		t.Error("expected error for Sint32x4")
	}
}

func TestAlphaBlendMapping(t *testing.T) {
	blend := gputypes.BlendStateAlpha()

	if got := glBlendFactor(blend.Color.SrcFactor); got != gl.SRC_ALPHA {
		t.Errorf("color src: got 0x%X, want SRC_ALPHA", got)
	}
	if got := glBlendFactor(blend.Color.DstFactor); got != gl.ONE_MINUS_SRC_ALPHA {
		t.Errorf("color dst: got 0x%X, want ONE_MINUS_SRC_ALPHA", got)
	}
	if got := glBlendEquation(blend.Color.Operation); got != gl.FUNC_ADD {
		t.Errorf("color op: got 0x%X, want FUNC_ADD", got)
	}
}

func TestSamplerMapping(t *testing.T) {
	p := guidraw.DefaultSampler()

	if got := glFilter(p.MagFilter); got != gl.LINEAR {
		t.Errorf("mag filter: got 0x%X, want LINEAR", got)
	}
	if got := glFilter(p.MinFilter); got != gl.NEAREST {
		t.Errorf("min filter: got 0x%X, want NEAREST", got)
	}

	tests := []struct {
		mode gputypes.AddressMode
		want int32
	}{
		{gputypes.AddressModeClampToEdge, gl.CLAMP_TO_EDGE},
		{gputypes.AddressModeRepeat, gl.REPEAT},
		{gputypes.AddressModeMirrorRepeat, gl.MIRRORED_REPEAT},
		{gputypes.AddressModeUndefined, gl.CLAMP_TO_EDGE},
	}
	for _, tt := range tests {
		if got := glWrap(tt.mode); got != tt.want {
			t.Errorf("wrap %s: got 0x%X, want 0x%X", tt.mode, got, tt.want)
		}
	}
}

func TestCullAndIndexMapping(t *testing.T) {
	if _, cull := glCullFace(gputypes.CullModeNone); cull {
		t.Error("CullModeNone should disable culling")
	}
	if face, cull := glCullFace(gputypes.CullModeBack); !cull || face != gl.BACK {
		t.Errorf("CullModeBack: got (0x%X, %v)", face, cull)
	}

	xtype, size := glIndexType(gputypes.IndexFormatUint16)
	if xtype != gl.UNSIGNED_SHORT || size != 2 {
		t.Errorf("Uint16: got (0x%X, %d)", xtype, size)
	}
}
