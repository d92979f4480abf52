package guidraw_test

import (
	"errors"
	"iter"

	"github.com/go-theft-auto/guidraw"
)

// fakeTexture is a texture that only remembers whether it was released.
type fakeTexture struct {
	id       int
	released bool
}

func (t *fakeTexture) Release() { t.released = true }

// fakeBackend records every call the renderer makes.
type fakeBackend struct {
	textures    []*fakeTexture
	draws       []guidraw.DrawCall
	uploads     [][2]int
	invalidates int
	begins      int
	ends        int
	released    bool

	vertexBytes int
	indexBytes  int

	allocErr   error
	createErr  error
	drawErr    error
	failDrawAt int // 1-based draw that fails with drawErr; 0 means every draw
}

func (b *fakeBackend) CreateTexture(pixels []byte, width, height int) (guidraw.Texture, error) {
	if b.createErr != nil {
		return nil, b.createErr
	}
	t := &fakeTexture{id: len(b.textures) + 1}
	b.textures = append(b.textures, t)
	return t, nil
}

func (b *fakeBackend) AllocateBuffers(layout guidraw.VertexLayout, stride, vertexBytes, indexBytes int) error {
	if b.allocErr != nil {
		return b.allocErr
	}
	b.vertexBytes, b.indexBytes = vertexBytes, indexBytes
	return nil
}

func (b *fakeBackend) InvalidateBuffers() error {
	b.invalidates++
	return nil
}

func (b *fakeBackend) UploadBuffers(vertices, indices []byte) error {
	b.uploads = append(b.uploads, [2]int{len(vertices), len(indices)})
	return nil
}

func (b *fakeBackend) Draw(call *guidraw.DrawCall) error {
	if b.drawErr != nil && (b.failDrawAt == 0 || b.failDrawAt == len(b.draws)+1) {
		return b.drawErr
	}
	b.draws = append(b.draws, *call)
	return nil
}

func (b *fakeBackend) ReleaseBuffers() { b.released = true }

func (b *fakeBackend) BeginFrame() { b.begins++ }
func (b *fakeBackend) EndFrame()   { b.ends++ }

// fakeTarget is a framebuffer of fixed size.
type fakeTarget struct{ w, h int }

func (t fakeTarget) Size() (int, int) { return t.w, t.h }

// fakeContext yields a fixed command list and writes the given number of
// vertex and index bytes during Convert.
type fakeContext struct {
	cmds        []guidraw.DrawCommand
	vertexBytes int
	indexBytes  int
	convertErr  error

	converts int
	lastCfg  guidraw.ConvertConfig
}

var errFakeConvert = errors.New("fake convert failure")

func (c *fakeContext) Convert(cmds, vertices, elements *guidraw.Buffer, cfg *guidraw.ConvertConfig) error {
	c.converts++
	c.lastCfg = *cfg
	if c.convertErr != nil {
		return c.convertErr
	}
	if _, err := vertices.Alloc(c.vertexBytes); err != nil {
		return err
	}
	if _, err := elements.Alloc(c.indexBytes); err != nil {
		return err
	}
	_, err := cmds.Write(make([]byte, len(c.cmds)))
	return err
}

func (c *fakeContext) DrawCommands(cmds *guidraw.Buffer) iter.Seq[guidraw.DrawCommand] {
	return func(yield func(guidraw.DrawCommand) bool) {
		for i := range cmds.Len() {
			if !yield(c.cmds[i]) {
				return
			}
		}
	}
}

// rgba returns w*h opaque white pixels.
func rgba(w, h int) []byte {
	p := make([]byte, w*h*4)
	for i := range p {
		p[i] = 0xFF
	}
	return p
}
