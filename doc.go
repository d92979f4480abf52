/*
Package guidraw renders the draw lists of an immediate-mode GUI on the GPU.

# Overview

The GUI library produces, every frame, a command list plus vertex and index
data. guidraw owns everything between that and the pixels: fixed-size
staging buffers the GUI converts into, a registry of uploaded textures
addressed by small integer handles, and a frame loop that uploads the
staged geometry once and issues one scissored, alpha-blended indexed draw
per command.

The GUI side is abstracted by [Context]; the canvas package provides an
implementation. The GPU side is abstracted by [Backend]; backend/opengl
implements it on OpenGL 4.1 core.

# Quick Start

	// Setup
	backend, _ := opengl.NewBackend()
	r, _ := guidraw.New(backend, guidraw.WithCapacity(16*1024, 64*1024))
	defer r.Release()

	atlas, _ := fontatlas.Default()
	atlas.Register(r)

	cfg := guidraw.DefaultConvertConfig()
	cfg.Null = atlas.NullTexture()

	// Game loop
	q := canvas.New()
	surface := opengl.NewSurface(window)
	for !window.ShouldClose() {
	    q.Reset()
	    q.FillRect(guidraw.Rect{X: 10, Y: 10, W: 200, H: 40}, guidraw.ColorDarkGray)
	    q.Text(atlas, guidraw.Vec2{X: 16, Y: 20}, "Hello World", guidraw.ColorWhite)

	    if err := r.Render(q, cfg, surface, guidraw.Vec2{X: 1, Y: 1}); err != nil {
	        log.Print(err)
	    }
	    window.SwapBuffers()
	}

# Frames

[Renderer.Render] runs these steps in order:

 1. Build the projection for the target's framebuffer size.
 2. Point the convert config at the renderer's vertex layout.
 3. Invalidate the GPU buffers and have the context convert into staging.
 4. Upload the full staging buffers.
 5. Walk the draw commands, issuing one draw per command with a non-empty
    clip, advancing the index cursor by each command's element count.

A command with zero elements is skipped without moving the cursor. A
command whose clip is entirely off-screen is skipped but still advances it.

# Errors

Every failure is returned wrapped around one of the sentinel errors, so
callers test with errors.Is:

	ErrResourceCreation  GPU buffer, shader or texture creation failed
	ErrInvalidImage      pixel data does not match the stated size
	ErrTextureNotFound   a command referenced an unknown handle
	ErrCapacityOverflow  the frame did not fit the staging buffers
	ErrDrawFailed        the backend rejected a draw call
	ErrInvalidLayout     a vertex layout is malformed
	ErrBufferFull        a fixed Buffer ran out of room

A failed frame may have drawn some commands already. The next frame starts
over from a clean state.

# Logging

The package logs through log/slog and is silent by default. Install a
handler with [SetLogger] or enable debug output on stderr with
[SetVerbose].

# Configuration

Capacities and the default sampler can be loaded from TOML or YAML with
[LoadConfig]:

	vertex_capacity = 16384
	index_capacity = 65536
	texture_capacity = 64

	[sampler]
	mag = "linear"
	min = "nearest"
	wrap = "clamp"
*/
package guidraw
