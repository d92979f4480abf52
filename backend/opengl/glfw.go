package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guidraw"
)

var _ guidraw.Target = (*Surface)(nil)

// Surface adapts a GLFW window to guidraw.Target.
type Surface struct {
	window *glfw.Window
}

// NewSurface wraps window. The window's GL context is the one the backend
// draws with.
func NewSurface(window *glfw.Window) *Surface {
	return &Surface{window: window}
}

// Size returns the framebuffer size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.window.GetFramebufferSize()
}
