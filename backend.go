package guidraw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Texture is a GPU texture owned by the texture registry.
type Texture interface {
	// Release frees the GPU resource. The texture must not be used after.
	Release()
}

// TextureCreator uploads RGBA8 pixel data as a new GPU texture.
type TextureCreator interface {
	CreateTexture(pixels []byte, width, height int) (Texture, error)
}

// Backend is the GPU side of the renderer.
//
// AllocateBuffers is called once by New; the GPU buffers mirror the staging
// capacities and are never reallocated. Every frame the renderer calls
// InvalidateBuffers, then UploadBuffers with the full staging regions, then
// Draw once per visible command. All calls happen on one goroutine.
type Backend interface {
	TextureCreator

	AllocateBuffers(layout VertexLayout, stride, vertexBytes, indexBytes int) error
	InvalidateBuffers() error
	UploadBuffers(vertices, indices []byte) error
	Draw(call *DrawCall) error
	ReleaseBuffers()
}

// FrameScoper is implemented by backends that need to prepare and restore
// device state around a frame. Render calls BeginFrame before the first
// backend call of a frame and EndFrame after the last one, also when the
// frame is aborted.
type FrameScoper interface {
	BeginFrame()
	EndFrame()
}

// Target is the surface a frame is drawn to.
type Target interface {
	// Size returns the framebuffer size in pixels.
	Size() (width, height int)
}

// DrawCall is one indexed draw over the shared vertex buffer.
type DrawCall struct {
	Projection mgl32.Mat4
	Texture    Texture
	Sampler    SamplerPolicy
	Scissor    Scissor

	// Indices [IndexStart, IndexStart+IndexCount) of the shared index buffer.
	IndexStart  int
	IndexCount  int
	IndexFormat gputypes.IndexFormat

	Blend    gputypes.BlendState
	CullMode gputypes.CullMode
}

// IndexEnd returns the exclusive end of the call's index range.
func (c *DrawCall) IndexEnd() int {
	return c.IndexStart + c.IndexCount
}
