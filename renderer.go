package guidraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
)

// FrameStats describes the last rendered frame.
type FrameStats struct {
	Commands  int // Commands yielded by the GUI library
	DrawCalls int // Draw calls issued
	Skipped   int // Commands with zero elements
	Clipped   int // Commands whose scissor covered no pixels
	Indices   int // Indices consumed by the cursor
}

// Renderer draws a GUI library's command list through a Backend.
//
// It owns the texture registry, the staging buffers and the command log.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	backend  Backend
	textures *TextureRegistry
	staging  *Staging
	cmds     *Buffer
	layout   VertexLayout
	logger   *slog.Logger
	last     FrameStats

	cfg Config
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig sets capacities and the default sampler policy from cfg.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) { r.cfg = cfg }
}

// WithCapacity sets the staging capacities in vertices and indices.
func WithCapacity(vertices, indices int) Option {
	return func(r *Renderer) {
		r.cfg.VertexCapacity = vertices
		r.cfg.IndexCapacity = indices
	}
}

// WithTextureCapacity sets the expected number of textures.
func WithTextureCapacity(n int) Option {
	return func(r *Renderer) { r.cfg.TextureCapacity = n }
}

// WithCommandBuffer sets the buffer used for the GUI library's command log.
func WithCommandBuffer(buf *Buffer) Option {
	return func(r *Renderer) { r.cmds = buf }
}

// WithLogger sets the renderer's logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a renderer and allocates its GPU buffers.
func New(backend Backend, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		backend: backend,
		layout:  DefaultVertexLayout(),
		cfg:     DefaultConfig(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = Logger()
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("renderer config: %w", err)
	}
	sampler, err := r.cfg.Sampler.Policy()
	if err != nil {
		return nil, fmt.Errorf("renderer config: %w", err)
	}

	if err := r.layout.Validate(VertexSize); err != nil {
		return nil, err
	}
	if r.cmds == nil {
		r.cmds = NewBuffer(4 * 1024)
	}

	r.staging = NewStaging(r.cfg.VertexCapacity, r.cfg.IndexCapacity)
	r.textures = NewTextureRegistry(backend, r.cfg.TextureCapacity+1)
	r.textures.SetDefaultSampler(sampler)

	vertexBytes := r.cfg.VertexCapacity * VertexSize
	indexBytes := r.cfg.IndexCapacity * IndexSize
	if err := backend.AllocateBuffers(r.layout, VertexSize, vertexBytes, indexBytes); err != nil {
		return nil, fmt.Errorf("allocate gpu buffers (%d+%d bytes): %w: %w", vertexBytes, indexBytes, ErrResourceCreation, err)
	}

	r.logger.Debug("renderer created",
		"vertices", r.cfg.VertexCapacity,
		"indices", r.cfg.IndexCapacity,
		"vertex_bytes", vertexBytes,
		"index_bytes", indexBytes)

	return r, nil
}

// AddTexture registers an RGBA8 image and returns its handle. A nil sampler
// selects the renderer's default policy at draw time.
func (r *Renderer) AddTexture(pixels []byte, width, height int, sampler *SamplerPolicy) (Handle, error) {
	h, err := r.textures.Add(pixels, width, height, sampler)
	if err != nil {
		return NoTexture, err
	}
	r.logger.Debug("texture registered", "handle", h, "width", width, "height", height, "sampler", sampler != nil)
	return h, nil
}

// Textures returns the texture registry.
func (r *Renderer) Textures() *TextureRegistry {
	return r.textures
}

// Staging returns the staging buffers.
func (r *Renderer) Staging() *Staging {
	return r.staging
}

// DefaultSampler returns the policy used for textures registered without one.
func (r *Renderer) DefaultSampler() SamplerPolicy {
	return r.textures.DefaultSampler()
}

// LastFrame returns statistics of the last completed frame.
func (r *Renderer) LastFrame() FrameStats {
	return r.last
}

// Render draws one frame.
//
// The GUI library converts its pending commands into the staging buffers
// using the renderer's vertex layout (cfg's layout and stride are
// overwritten), the staging regions are uploaded whole, and every command
// with elements becomes one draw over its slice of the index buffer, in
// emission order. scale converts logical clip rectangles to framebuffer
// pixels.
//
// Any failure aborts the frame and is returned; the next frame starts from
// invalidated buffers again.
func (r *Renderer) Render(ctx Context, cfg *ConvertConfig, target Target, scale Vec2) error {
	err := r.render(ctx, cfg, target, scale)
	if err != nil {
		r.logger.Warn("frame aborted", "error", err)
	}
	return err
}

func (r *Renderer) render(ctx Context, cfg *ConvertConfig, target Target, scale Vec2) error {
	if fs, ok := r.backend.(FrameScoper); ok {
		fs.BeginFrame()
		defer fs.EndFrame()
	}

	ww, hh := target.Size()
	proj := Ortho(ww, hh)

	cfg.SetVertexLayout(r.layout)
	cfg.SetVertexSize(VertexSize)

	if err := r.backend.InvalidateBuffers(); err != nil {
		return fmt.Errorf("invalidate buffers: %w", err)
	}

	r.cmds.Reset()
	vbuf := r.staging.VertexView()
	ebuf := r.staging.IndexView()
	if err := ctx.Convert(r.cmds, vbuf, ebuf, cfg); err != nil {
		return fmt.Errorf("convert: %w: %w", ErrCapacityOverflow, err)
	}

	if err := r.backend.UploadBuffers(r.staging.VertexBytes(), r.staging.IndexBytes()); err != nil {
		return fmt.Errorf("upload buffers: %w", err)
	}

	var stats FrameStats
	idxStart := 0
	for cmd := range ctx.DrawCommands(r.cmds) {
		stats.Commands++
		if cmd.ElemCount < 1 {
			stats.Skipped++
			continue
		}

		idxEnd := idxStart + int(cmd.ElemCount)
		if idxEnd > r.staging.IndexCapacity() {
			return fmt.Errorf("command %d: indices [%d,%d) past capacity %d: %w",
				stats.Commands-1, idxStart, idxEnd, r.staging.IndexCapacity(), ErrCapacityOverflow)
		}

		entry, err := r.textures.Lookup(cmd.Texture)
		if err != nil {
			return fmt.Errorf("command %d: %w", stats.Commands-1, err)
		}

		scissor := ScissorRect(cmd.ClipRect, scale, hh)
		if scissor.Empty() {
			stats.Clipped++
			r.logger.Debug("command clipped", "index", stats.Commands-1, "clip", cmd.ClipRect)
			idxStart = idxEnd
			continue
		}

		call := DrawCall{
			Projection:  proj,
			Texture:     entry.Texture,
			Sampler:     entry.Policy(),
			Scissor:     scissor,
			IndexStart:  idxStart,
			IndexCount:  int(cmd.ElemCount),
			IndexFormat: gputypes.IndexFormatUint16,
			Blend:       gputypes.BlendStateAlpha(),
			CullMode:    gputypes.CullModeNone,
		}
		if err := r.backend.Draw(&call); err != nil {
			return fmt.Errorf("command %d: %w: %w", stats.Commands-1, ErrDrawFailed, err)
		}
		stats.DrawCalls++
		idxStart = idxEnd
	}
	stats.Indices = idxStart

	r.last = stats
	r.logger.Debug("frame rendered",
		"commands", stats.Commands,
		"draws", stats.DrawCalls,
		"skipped", stats.Skipped,
		"clipped", stats.Clipped,
		"indices", stats.Indices,
		"command_bytes", r.cmds.Len())
	return nil
}

// Release frees every texture and the GPU buffers.
func (r *Renderer) Release() {
	r.textures.Release()
	r.backend.ReleaseBuffers()
}
