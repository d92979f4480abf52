package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/guidraw"
)

// Texture is an RGBA8 2D texture. Filtering and wrapping come from sampler
// objects bound at draw time.
type Texture struct {
	id     uint32
	width  int
	height int
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Release deletes the GL texture.
func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// CreateTexture uploads RGBA8 pixels as a new texture.
func (b *Backend) CreateTexture(pixels []byte, width, height int) (guidraw.Texture, error) {
	if len(pixels) < width*height*4 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture %dx%d with %d bytes: %w", width, height, len(pixels), guidraw.ErrInvalidImage)
	}

	var prev int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &prev)
	defer gl.BindTexture(gl.TEXTURE_2D, uint32(prev))

	t := &Texture{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))

	if err := checkError("upload texture"); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}
