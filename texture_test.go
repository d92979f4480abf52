package guidraw_test

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
)

func TestRegistryLookup(t *testing.T) {
	reg := guidraw.NewTextureRegistry(&fakeBackend{}, 0)

	for i := range 3 {
		h, err := reg.Add(rgba(i+1, 1), i+1, 1, nil)
		if err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
		e, err := reg.Lookup(h)
		if err != nil {
			t.Fatalf("Lookup(%d) returned error: %v", h, err)
		}
		if e.Width != i+1 {
			t.Errorf("Lookup(%d) returned entry of width %d", h, e.Width)
		}
	}

	for _, h := range []guidraw.Handle{guidraw.NoTexture, -1, 4} {
		if _, err := reg.Lookup(h); !errors.Is(err, guidraw.ErrTextureNotFound) {
			t.Errorf("Lookup(%d): expected ErrTextureNotFound, got %v", h, err)
		}
	}
}

func TestRegistryRejectsBadImages(t *testing.T) {
	b := &fakeBackend{}
	reg := guidraw.NewTextureRegistry(b, 0)

	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short", make([]byte, 15), 2, 2},
		{"long", make([]byte, 17), 2, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reg.Add(tt.pixels, tt.w, tt.h, nil); !errors.Is(err, guidraw.ErrInvalidImage) {
				t.Errorf("expected ErrInvalidImage, got %v", err)
			}
		})
	}
	if len(b.textures) != 0 {
		t.Errorf("backend received %d textures for invalid images", len(b.textures))
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}
}

func TestRegistryCreateFailure(t *testing.T) {
	cause := errors.New("no texture units")
	reg := guidraw.NewTextureRegistry(&fakeBackend{createErr: cause}, 0)

	_, err := reg.Add(rgba(1, 1), 1, 1, nil)
	if !errors.Is(err, guidraw.ErrResourceCreation) || !errors.Is(err, cause) {
		t.Fatalf("expected ErrResourceCreation wrapping the cause, got %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("failed Add must not register, got %d", reg.Len())
	}
}

func TestEntryPolicy(t *testing.T) {
	reg := guidraw.NewTextureRegistry(&fakeBackend{}, 0)
	nearest := guidraw.SamplerPolicy{
		MagFilter: gputypes.FilterModeNearest,
		MinFilter: gputypes.FilterModeNearest,
	}

	a, _ := reg.Add(rgba(1, 1), 1, 1, nil)
	b, _ := reg.Add(rgba(1, 1), 1, 1, &nearest)

	ea, _ := reg.Lookup(a)
	eb, _ := reg.Lookup(b)
	if ea.Policy() != guidraw.DefaultSampler() {
		t.Errorf("expected default policy, got %+v", ea.Policy())
	}
	if eb.Policy() != nearest {
		t.Errorf("expected nearest policy, got %+v", eb.Policy())
	}

	def := guidraw.DefaultSampler()
	if def.MagFilter != gputypes.FilterModeLinear || def.MinFilter != gputypes.FilterModeNearest {
		t.Errorf("default sampler must magnify linearly and minify nearest, got %+v", def)
	}
}

func TestSetDefaultSampler(t *testing.T) {
	reg := guidraw.NewTextureRegistry(&fakeBackend{}, 0)
	repeat := guidraw.SamplerPolicy{
		MagFilter: gputypes.FilterModeNearest,
		MinFilter: gputypes.FilterModeNearest,
		WrapU:     gputypes.AddressModeRepeat,
		WrapV:     gputypes.AddressModeRepeat,
	}

	before, _ := reg.Add(rgba(1, 1), 1, 1, nil)
	reg.SetDefaultSampler(repeat)
	after, _ := reg.Add(rgba(1, 1), 1, 1, nil)

	for _, h := range []guidraw.Handle{before, after} {
		e, err := reg.Lookup(h)
		if err != nil {
			t.Fatalf("Lookup(%d) returned error: %v", h, err)
		}
		if e.Policy() != repeat {
			t.Errorf("handle %d: got %+v, want %+v", h, e.Policy(), repeat)
		}
	}
	if reg.DefaultSampler() != repeat {
		t.Errorf("DefaultSampler() = %+v", reg.DefaultSampler())
	}
}
