package guidraw

import "unsafe"

// Vec2 represents a 2D vector for positions, sizes and scale factors.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size in logical units.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Scale returns the rectangle with X/W multiplied by s.X and Y/H by s.Y.
func (r Rect) Scale(s Vec2) Rect {
	return Rect{X: r.X * s.X, Y: r.Y * s.Y, W: r.W * s.X, H: r.H * s.Y}
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := maxf(r.X, other.X)
	y0 := maxf(r.Y, other.Y)
	x1 := minf(r.X+r.W, other.X+other.W)
	y1 := minf(r.Y+r.H, other.Y+other.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Color is an RGBA8 color, one byte per channel.
type Color [4]uint8

// Color presets.
var (
	ColorWhite       = Color{0xFF, 0xFF, 0xFF, 0xFF}
	ColorBlack       = Color{0x00, 0x00, 0x00, 0xFF}
	ColorRed         = Color{0xFF, 0x00, 0x00, 0xFF}
	ColorGreen       = Color{0x00, 0xFF, 0x00, 0xFF}
	ColorBlue        = Color{0x00, 0x00, 0xFF, 0xFF}
	ColorYellow      = Color{0xFF, 0xFF, 0x00, 0xFF}
	ColorGray        = Color{0x80, 0x80, 0x80, 0xFF}
	ColorDarkGray    = Color{0x40, 0x40, 0x40, 0xFF}
	ColorTransparent = Color{}
)

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGBAf creates a color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// Vertex is the only vertex format understood by the renderer.
// Memory layout must match DefaultVertexLayout: Pos at 0, TexCoord at 8,
// Color at 16.
type Vertex struct {
	Pos      [2]float32 // Position (x, y) in logical units
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    Color      // RGBA8, normalized by the vertex stage
}

// VertexSize is the byte stride of one Vertex.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// IndexSize is the byte size of one element index (uint16).
const IndexSize = 2

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
