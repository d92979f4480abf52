package guidraw

import "iter"

// NullTexture is the texture and UV the GUI library uses for untextured
// geometry (fills, lines). It usually points at a white texel.
type NullTexture struct {
	Texture Handle
	UV      Vec2
}

// ConvertConfig is the set of conversion settings handed to the GUI
// library. The renderer overwrites VertexLayout and VertexSize before every
// conversion; the remaining fields belong to the caller.
type ConvertConfig struct {
	VertexLayout VertexLayout
	VertexSize   int

	GlobalAlpha        float32 // Multiplies every vertex alpha
	ShapeAA            bool
	LineAA             bool
	CircleSegmentCount int
	ArcSegmentCount    int
	CurveSegmentCount  int
	Null               NullTexture
}

// DefaultConvertConfig returns a config with full opacity and the default
// vertex layout.
func DefaultConvertConfig() *ConvertConfig {
	return &ConvertConfig{
		VertexLayout:       DefaultVertexLayout(),
		VertexSize:         VertexSize,
		GlobalAlpha:        1,
		ShapeAA:            true,
		LineAA:             true,
		CircleSegmentCount: 22,
		ArcSegmentCount:    22,
		CurveSegmentCount:  22,
	}
}

// SetVertexLayout sets the layout the library packs vertices with.
func (c *ConvertConfig) SetVertexLayout(l VertexLayout) {
	c.VertexLayout = l
}

// SetVertexSize sets the vertex stride in bytes.
func (c *ConvertConfig) SetVertexSize(n int) {
	c.VertexSize = n
}

// DrawCommand is one clipped, single-texture batch of triangles.
type DrawCommand struct {
	ElemCount uint32 // Number of indices
	ClipRect  Rect   // Logical (unscaled) clip rectangle
	Texture   Handle
}

// Context is the GUI library side of a frame.
//
// Convert serializes the library's pending draw commands: geometry goes into
// vertices and elements (fixed buffers that must not be overrun), and the
// resulting command list goes into cmds, which the renderer owns but does not
// interpret. DrawCommands yields the commands written by the last Convert in
// emission order.
type Context interface {
	Convert(cmds, vertices, elements *Buffer, cfg *ConvertConfig) error
	DrawCommands(cmds *Buffer) iter.Seq[DrawCommand]
}
