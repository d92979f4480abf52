// Package demo holds the canvas scenes shared by the example and the
// screenshot generator.
package demo

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/canvas"
)

// Assets are the textures a scene may draw with.
type Assets struct {
	Font    canvas.Font
	Checker guidraw.Handle
}

// Scene draws one frame into q. size is the window size in logical units,
// t the time in seconds.
type Scene struct {
	Name string
	Draw func(q *canvas.Queue, a *Assets, size guidraw.Vec2, t float32)
}

// Scenes lists every demo scene.
var Scenes = []Scene{
	{Name: "shapes", Draw: Shapes},
	{Name: "clipping", Draw: Clipping},
	{Name: "text", Draw: Text},
}

var (
	panelBg     = guidraw.RGBA(0x1E, 0x1E, 0x24, 0xF0)
	panelBorder = guidraw.RGBA(0x5A, 0x5A, 0x6E, 0xFF)
	accent      = guidraw.RGBA(0xE8, 0xA3, 0x3D, 0xFF)
)

// CheckerSampler keeps checkerboard cells sharp and tiles them.
var CheckerSampler = guidraw.SamplerPolicy{
	MagFilter: gputypes.FilterModeNearest,
	MinFilter: gputypes.FilterModeNearest,
	WrapU:     gputypes.AddressModeRepeat,
	WrapV:     gputypes.AddressModeRepeat,
}

// Checkerboard returns an RGBA8 image of size x size pixels with square
// cells of the given size.
func Checkerboard(size, cell int) []byte {
	pix := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			v := byte(0x30)
			if (x/cell+y/cell)%2 == 0 {
				v = 0xD0
			}
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xFF
		}
	}
	return pix
}

func panel(q *canvas.Queue, a *Assets, r guidraw.Rect, title string) {
	q.FillRect(r, panelBg)
	q.StrokeRect(r, panelBorder, 1)
	q.FillRect(guidraw.Rect{X: r.X, Y: r.Y, W: r.W, H: 18}, panelBorder)
	if a.Font != nil {
		q.Text(a.Font, guidraw.Vec2{X: r.X + 6, Y: r.Y + 3}, title, guidraw.ColorWhite)
	}
}

// Shapes draws every primitive the canvas supports.
func Shapes(q *canvas.Queue, a *Assets, size guidraw.Vec2, t float32) {
	r := guidraw.Rect{X: 20, Y: 20, W: size.X - 40, H: size.Y - 40}
	panel(q, a, r, "Shapes")

	q.FillRect(guidraw.Rect{X: 40, Y: 60, W: 80, H: 50}, guidraw.ColorRed)
	q.StrokeRect(guidraw.Rect{X: 140, Y: 60, W: 80, H: 50}, guidraw.ColorGreen, 3)
	q.FillTriangle(guidraw.Vec2{X: 280, Y: 60}, guidraw.Vec2{X: 320, Y: 110}, guidraw.Vec2{X: 240, Y: 110}, guidraw.ColorBlue)
	q.FillCircle(guidraw.Vec2{X: 380, Y: 85}, 25, guidraw.ColorYellow)

	sweep := float32(math.Pi) * (1 + float32(math.Sin(float64(t))))
	q.FillArc(guidraw.Vec2{X: 460, Y: 85}, 25, -math.Pi/2, -math.Pi/2+sweep, accent)

	q.Line(guidraw.Vec2{X: 40, Y: 140}, guidraw.Vec2{X: 220, Y: 190}, guidraw.ColorWhite, 2)
	q.Curve(
		guidraw.Vec2{X: 240, Y: 190},
		guidraw.Vec2{X: 290, Y: 120},
		guidraw.Vec2{X: 370, Y: 220},
		guidraw.Vec2{X: 440, Y: 140},
		accent, 3,
	)

	if a.Checker != guidraw.NoTexture {
		q.Image(a.Checker, guidraw.Rect{X: 40, Y: 220, W: 96, H: 96}, guidraw.ColorWhite)
		q.ImageRegion(a.Checker, guidraw.Rect{X: 150, Y: 220, W: 96, H: 96},
			guidraw.Vec2{}, guidraw.Vec2{X: 0.25, Y: 0.25}, guidraw.RGBA(0xFF, 0xC0, 0xC0, 0xFF))
	}
}

// Clipping draws content that overflows nested clip rectangles, including
// one that hangs off the top-left of the window.
func Clipping(q *canvas.Queue, a *Assets, size guidraw.Vec2, t float32) {
	outer := guidraw.Rect{X: -40, Y: -30, W: size.X/2 + 40, H: size.Y/2 + 30}
	panel(q, a, outer, "Off-screen panel")

	q.PushClip(outer)
	offset := 40 * float32(math.Sin(float64(t)))
	for i := range 12 {
		y := float32(i)*24 + offset
		c := guidraw.ColorGray
		if i%2 == 0 {
			c = guidraw.ColorDarkGray
		}
		q.FillRect(guidraw.Rect{X: 0, Y: y, W: size.X, H: 24}, c)
	}

	inner := guidraw.Rect{X: 60, Y: 60, W: 120, H: 80}
	q.PushClip(inner)
	q.FillCircle(guidraw.Vec2{X: 120, Y: 100}, 70, accent)
	q.PopClip()
	q.StrokeRect(inner, guidraw.ColorWhite, 1)
	q.PopClip()

	right := guidraw.Rect{X: size.X/2 + 20, Y: size.Y/2 + 20, W: size.X/2 + 60, H: size.Y/2 + 60}
	panel(q, a, right, "Off the bottom right")
}

// Text draws a few lines with the scene font.
func Text(q *canvas.Queue, a *Assets, size guidraw.Vec2, t float32) {
	r := guidraw.Rect{X: 20, Y: 20, W: size.X - 40, H: size.Y - 40}
	panel(q, a, r, "Text")
	if a.Font == nil {
		return
	}

	lines := []string{
		"The quick brown fox jumps over the lazy dog.",
		"0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
		"Arrows: → ← ↑ ↓  Bullets: • ● ◆",
		fmt.Sprintf("t = %.2fs", t),
	}
	y := r.Y + 30
	for i, line := range lines {
		c := guidraw.ColorWhite
		if i == len(lines)-1 {
			c = accent
		}
		q.Text(a.Font, guidraw.Vec2{X: r.X + 12, Y: y}, line, c)
		y += a.Font.LineHeight() + 4
	}

	box := a.Font.Measure("Measured")
	at := guidraw.Vec2{X: r.X + 12, Y: y + 10}
	q.FillRect(guidraw.Rect{X: at.X - 2, Y: at.Y - 2, W: box.X + 4, H: box.Y + 4}, panelBorder)
	q.Text(a.Font, at, "Measured", guidraw.ColorWhite)
}
