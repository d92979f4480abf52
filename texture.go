package guidraw

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Handle identifies a registered texture. Handles are 1-based and dense;
// NoTexture (0) is never issued.
type Handle int32

// NoTexture is the reserved invalid handle.
const NoTexture Handle = 0

// SamplerPolicy configures how a texture is filtered and wrapped.
type SamplerPolicy struct {
	MagFilter gputypes.FilterMode
	MinFilter gputypes.FilterMode
	WrapU     gputypes.AddressMode
	WrapV     gputypes.AddressMode
}

// DefaultSampler is used for textures registered without a policy:
// linear magnification, nearest minification, clamped coordinates.
func DefaultSampler() SamplerPolicy {
	return SamplerPolicy{
		MagFilter: gputypes.FilterModeLinear,
		MinFilter: gputypes.FilterModeNearest,
		WrapU:     gputypes.AddressModeClampToEdge,
		WrapV:     gputypes.AddressModeClampToEdge,
	}
}

// TextureEntry is one registered texture.
type TextureEntry struct {
	Texture Texture
	Sampler *SamplerPolicy // nil means the registry default
	Width   int
	Height  int

	fallback SamplerPolicy
}

// Policy returns the entry's sampler policy, or the registry default when
// none was given at registration.
func (e *TextureEntry) Policy() SamplerPolicy {
	if e.Sampler != nil {
		return *e.Sampler
	}
	return e.fallback
}

// TextureRegistry maps handles to GPU textures. It is append-only and has a
// single writer; it does no locking.
type TextureRegistry struct {
	creator  TextureCreator
	entries  []TextureEntry
	fallback SamplerPolicy
}

// NewTextureRegistry creates a registry that uploads through creator.
// capacity is a size hint. Entries registered without a sampler use
// DefaultSampler until SetDefaultSampler says otherwise.
func NewTextureRegistry(creator TextureCreator, capacity int) *TextureRegistry {
	return &TextureRegistry{
		creator:  creator,
		entries:  make([]TextureEntry, 0, capacity),
		fallback: DefaultSampler(),
	}
}

// SetDefaultSampler sets the policy of entries registered without one,
// including those already registered.
func (r *TextureRegistry) SetDefaultSampler(p SamplerPolicy) {
	r.fallback = p
	for i := range r.entries {
		r.entries[i].fallback = p
	}
}

// DefaultSampler returns the policy of entries registered without one.
func (r *TextureRegistry) DefaultSampler() SamplerPolicy {
	return r.fallback
}

// Add uploads an RGBA8 image and returns its handle, which is always the
// previous Len()+1. pixels must hold exactly width*height*4 bytes.
// The sampler policy is copied.
func (r *TextureRegistry) Add(pixels []byte, width, height int, sampler *SamplerPolicy) (Handle, error) {
	if width <= 0 || height <= 0 {
		return NoTexture, fmt.Errorf("texture %dx%d: %w", width, height, ErrInvalidImage)
	}
	if want := width * height * 4; len(pixels) != want {
		return NoTexture, fmt.Errorf("texture %dx%d: got %d bytes, want %d: %w", width, height, len(pixels), want, ErrInvalidImage)
	}

	tex, err := r.creator.CreateTexture(pixels, width, height)
	if err != nil {
		return NoTexture, fmt.Errorf("create texture %dx%d: %w: %w", width, height, ErrResourceCreation, err)
	}

	entry := TextureEntry{Texture: tex, Width: width, Height: height, fallback: r.fallback}
	if sampler != nil {
		s := *sampler
		entry.Sampler = &s
	}
	r.entries = append(r.entries, entry)
	return Handle(len(r.entries)), nil
}

// Lookup resolves a handle. Only 1 <= h <= Len() is valid.
func (r *TextureRegistry) Lookup(h Handle) (*TextureEntry, error) {
	if h < 1 || int(h) > len(r.entries) {
		return nil, fmt.Errorf("handle %d (registered: %d): %w", h, len(r.entries), ErrTextureNotFound)
	}
	return &r.entries[h-1], nil
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Release frees every texture and empties the registry.
func (r *TextureRegistry) Release() {
	for i := range r.entries {
		if r.entries[i].Texture != nil {
			r.entries[i].Texture.Release()
		}
	}
	r.entries = r.entries[:0]
}
