// Command gen renders the demo canvas scenes in a hidden window, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/backend/opengl"
	"github.com/go-theft-auto/guidraw/canvas"
	"github.com/go-theft-auto/guidraw/fontatlas"
	"github.com/go-theft-auto/guidraw/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	name   string  // filename without extension
	width  int     // viewport width
	height int     // viewport height
	time   float32 // scene time in seconds
	draw   func(q *canvas.Queue, a *demo.Assets, size guidraw.Vec2, t float32)
	frames int // frames to render before capture (0 = default 2)
}

// viewport is the part of the hidden window a screenshot covers.
type viewport struct{ w, h int }

func (v viewport) Size() (int, int) { return v.w, v.h }

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	backend, err := opengl.NewBackend()
	if err != nil {
		return fmt.Errorf("opengl backend: %w", err)
	}
	defer backend.Delete()

	r, err := guidraw.New(backend)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Release()

	atlas, err := fontatlas.Default()
	if err != nil {
		return err
	}
	if _, err := atlas.Register(r); err != nil {
		return err
	}
	checker, err := r.AddTexture(demo.Checkerboard(64, 8), 64, 64, &demo.CheckerSampler)
	if err != nil {
		return fmt.Errorf("checkerboard: %w", err)
	}
	assets := &demo.Assets{Font: atlas, Checker: checker}

	cfg := guidraw.DefaultConvertConfig()
	cfg.Null = atlas.NullTexture()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(r, cfg, assets, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		st := r.LastFrame()
		fmt.Printf("  %s.jpg (%dx%d, %d draws, %d clipped)\n", s.name, s.width, s.height, st.DrawCalls, st.Clipped)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(r *guidraw.Renderer, cfg *guidraw.ConvertConfig, a *demo.Assets, s screenshot, outDir string) error {
	// The hidden window stays at 800x600 (larger than every screenshot);
	// only the viewport and projection change per shot.
	target := viewport{s.width, s.height}
	size := guidraw.Vec2{X: float32(s.width), Y: float32(s.height)}

	q := canvas.Acquire()
	defer canvas.Release(q)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		q.Reset()
		s.draw(q, a, size, s.time)
		if err := r.Render(q, cfg, target, guidraw.Vec2{X: 1, Y: 1}); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := range s.height / 2 {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns every demo scene plus a few primitive close-ups.
func buildScreenshots() []screenshot {
	shots := make([]screenshot, 0, len(demo.Scenes)+3)
	for _, sc := range demo.Scenes {
		shots = append(shots, screenshot{name: "scene_" + sc.Name, width: 640, height: 400, time: 1, draw: sc.Draw})
	}

	return append(shots,
		screenshot{
			name: "circles", width: 300, height: 120,
			draw: func(q *canvas.Queue, _ *demo.Assets, _ guidraw.Vec2, _ float32) {
				for i := range 5 {
					x := 30 + float32(i)*60
					q.FillCircle(guidraw.Vec2{X: x, Y: 40}, 4+float32(i)*5, guidraw.ColorYellow)
					q.FillArc(guidraw.Vec2{X: x, Y: 95}, 20, 0, float32(i+1)*1.2, guidraw.ColorGreen)
				}
			},
		},
		screenshot{
			name: "clip_edges", width: 300, height: 200,
			draw: func(q *canvas.Queue, _ *demo.Assets, size guidraw.Vec2, _ float32) {
				// Clip rectangles hanging off each edge of the viewport.
				clips := []guidraw.Rect{
					{X: -50, Y: 20, W: 120, H: 60},
					{X: 200, Y: -40, W: 80, H: 100},
					{X: 40, Y: 150, W: 100, H: 120},
					{X: 230, Y: 120, W: 200, H: 40},
				}
				for _, c := range clips {
					q.PushClip(c)
					q.FillRect(guidraw.Rect{W: size.X, H: size.Y}, guidraw.ColorBlue)
					q.PopClip()
				}
			},
		},
		screenshot{
			name: "text_atlas", width: 400, height: 120,
			draw: func(q *canvas.Queue, a *demo.Assets, _ guidraw.Vec2, _ float32) {
				q.Text(a.Font, guidraw.Vec2{X: 10, Y: 10}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ\nabcdefghijklmnopqrstuvwxyz\n0123456789", guidraw.ColorWhite)
				q.Text(a.Font, guidraw.Vec2{X: 10, Y: 70}, "Fallback: – — “quotes” …", guidraw.ColorGray)
			},
		},
	)
}
