// Example opens a window and renders the demo canvas scenes through guidraw.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Space cycles through the scenes. Pass -config to load renderer capacities
// and the default sampler from a TOML or YAML file, -v for debug logging.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/backend/opengl"
	"github.com/go-theft-auto/guidraw/canvas"
	"github.com/go-theft-auto/guidraw/fontatlas"
	"github.com/go-theft-auto/guidraw/internal/demo"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "guidraw example"
)

var (
	configPath = flag.String("config", "", "renderer config file (.toml, .yaml)")
	verbose    = flag.Bool("v", false, "log renderer activity")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	guidraw.SetVerbose(*verbose)

	cfg := guidraw.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = guidraw.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	backend, err := opengl.NewBackend()
	if err != nil {
		return fmt.Errorf("opengl backend: %w", err)
	}
	defer backend.Delete()

	r, err := guidraw.New(backend, guidraw.WithConfig(cfg))
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

	convCfg := guidraw.DefaultConvertConfig()
	convCfg.Null = atlas.NullTexture()

	scene := 0
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeySpace && action == glfw.Press {
			scene = (scene + 1) % len(demo.Scenes)
			window.SetTitle(windowTitle + " - " + demo.Scenes[scene].Name)
		}
	})
	window.SetTitle(windowTitle + " - " + demo.Scenes[scene].Name)

	surface := opengl.NewSurface(window)
	q := canvas.New()
	start := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := surface.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// The projection spans the framebuffer, so scenes are laid out in
		// framebuffer pixels and clip rectangles need no scaling.
		size := guidraw.Vec2{X: float32(w), Y: float32(h)}
		q.Reset()
		demo.Scenes[scene].Draw(q, assets, size, float32(time.Since(start).Seconds()))

		if err := r.Render(q, convCfg, surface, guidraw.Vec2{X: 1, Y: 1}); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
