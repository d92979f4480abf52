package guidraw

import "github.com/go-gl/mathgl/mgl32"

// Scissor is a pixel rectangle with a bottom-left origin, as GPU scissor
// tests expect.
type Scissor struct {
	X, Y int32 // Left, bottom
	W, H int32
}

// Empty reports whether the rectangle covers no pixels.
func (s Scissor) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// ScissorRect converts a logical top-left-origin clip rectangle into a
// bottom-left-origin pixel scissor for a framebuffer fbHeight pixels tall.
//
// The rectangle is multiplied by scale first. A negative x clamps the left
// edge to 0 and shrinks the width by |x|; a negative y does the same to the
// top edge and height, so a rectangle hanging off the top stays at the top
// edge of the framebuffer. A rectangle reaching below the framebuffer has its
// bottom clamped to 0 and its height shrunk by the overflow. Sizes never go
// negative.
func ScissorRect(clip Rect, scale Vec2, fbHeight int) Scissor {
	r := clip.Scale(scale)
	x, y, w, h := r.X, r.Y, r.W, r.H

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}

	w, h = max(w, 0), max(h, 0)

	bottom := float32(fbHeight) - y - h
	if bottom < 0 {
		h = max(h+bottom, 0)
		bottom = 0
	}
	return Scissor{X: int32(x), Y: int32(bottom), W: int32(w), H: int32(h)}
}

// Ortho returns the projection mapping logical (0,0)-(width,height) to clip
// space with Y flipped: (0,0) lands on (-1,1) and (width,height) on (1,-1).
// Depth range is [-1,1].
func Ortho(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}
