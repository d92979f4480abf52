package guidraw_test

import (
	"testing"

	"github.com/go-theft-auto/guidraw"
)

func TestScissorRect(t *testing.T) {
	one := guidraw.Vec2{X: 1, Y: 1}

	tests := []struct {
		name  string
		clip  guidraw.Rect
		scale guidraw.Vec2
		fbH   int
		want  guidraw.Scissor
	}{
		{"inside", guidraw.Rect{X: 10, Y: 20, W: 30, H: 40}, one, 100,
			guidraw.Scissor{X: 10, Y: 40, W: 30, H: 40}},
		{"negative x", guidraw.Rect{X: -10, Y: 5, W: 50, H: 20}, one, 100,
			guidraw.Scissor{X: 0, Y: 75, W: 40, H: 20}},
		{"negative y", guidraw.Rect{X: 0, Y: -5, W: 10, H: 20}, one, 100,
			guidraw.Scissor{X: 0, Y: 85, W: 10, H: 15}},
		{"below framebuffer", guidraw.Rect{X: 0, Y: 90, W: 10, H: 20}, one, 100,
			guidraw.Scissor{X: 0, Y: 0, W: 10, H: 10}},
		{"scaled", guidraw.Rect{X: 5, Y: 5, W: 10, H: 10}, guidraw.Vec2{X: 2, Y: 3}, 200,
			guidraw.Scissor{X: 10, Y: 155, W: 20, H: 30}},
		{"fully left", guidraw.Rect{X: -30, Y: 0, W: 20, H: 20}, one, 100,
			guidraw.Scissor{X: 0, Y: 80, W: 0, H: 20}},
		{"fully above", guidraw.Rect{X: 0, Y: -30, W: 20, H: 20}, one, 100,
			guidraw.Scissor{X: 0, Y: 100, W: 20, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guidraw.ScissorRect(tt.clip, tt.scale, tt.fbH)
			if got != tt.want {
				t.Errorf("ScissorRect(%+v) = %+v, want %+v", tt.clip, got, tt.want)
			}
		})
	}
}

func TestScissorEmpty(t *testing.T) {
	if !(guidraw.Scissor{W: 0, H: 10}).Empty() {
		t.Error("zero width should be empty")
	}
	if (guidraw.Scissor{W: 1, H: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
}

func TestOrthoDepth(t *testing.T) {
	m := guidraw.Ortho(100, 50)
	// Column-major: [10] is the z scale, [14] the z translation.
	if m[10] != -1 || m[14] != 0 {
		t.Errorf("expected depth range [-1,1], got scale %v translation %v", m[10], m[14])
	}
}
