// Package opengl provides an OpenGL 4.1 backend for guidraw.
//
// All methods must be called on the thread that owns the current GL
// context.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/guidraw"
)

// Backend implements guidraw.Backend with a single shader program, one
// vertex array and a pair of streamed buffers.
type Backend struct {
	program uint32
	projLoc int32
	texLoc  int32

	vao, vbo, ebo uint32
	vboSize       int
	eboSize       int

	samplers map[guidraw.SamplerPolicy]uint32
	saved    glState
}

// NewBackend compiles the shader program. A GL 4.1 context must be current.
func NewBackend() (*Backend, error) {
	program, err := createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w: %w", guidraw.ErrResourceCreation, err)
	}

	b := &Backend{
		program:  program,
		projLoc:  gl.GetUniformLocation(program, gl.Str("ProjMtx\x00")),
		texLoc:   gl.GetUniformLocation(program, gl.Str("Texture\x00")),
		samplers: make(map[guidraw.SamplerPolicy]uint32),
	}
	return b, nil
}

// AllocateBuffers creates the vertex array and the vertex and index buffers
// with their final sizes.
func (b *Backend) AllocateBuffers(layout guidraw.VertexLayout, stride, vertexBytes, indexBytes int) error {
	if b.vao != 0 {
		return fmt.Errorf("buffers already allocated")
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertexBytes, nil, gl.STREAM_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes, nil, gl.STREAM_DRAW)

	for _, attr := range layout.BufferLayout(stride).Attributes {
		f, err := glAttribFormat(attr.Format)
		if err != nil {
			b.ReleaseBuffers()
			return fmt.Errorf("attribute %d: %w", attr.ShaderLocation, err)
		}
		gl.VertexAttribPointerWithOffset(attr.ShaderLocation, f.size, f.xtype, f.normalized, int32(stride), uintptr(attr.Offset))
		gl.EnableVertexAttribArray(attr.ShaderLocation)
	}

	if err := checkError("allocate buffers"); err != nil {
		b.ReleaseBuffers()
		return err
	}
	b.vboSize = vertexBytes
	b.eboSize = indexBytes
	return nil
}

// InvalidateBuffers orphans both buffers so the driver can hand out fresh
// storage instead of waiting for draws still reading the old contents.
func (b *Backend) InvalidateBuffers() error {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, b.vboSize, nil, gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, b.eboSize, nil, gl.STREAM_DRAW)
	return checkError("invalidate buffers")
}

// UploadBuffers writes vertices and indices at the start of the buffers.
func (b *Backend) UploadBuffers(vertices, indices []byte) error {
	if len(vertices) > b.vboSize || len(indices) > b.eboSize {
		return fmt.Errorf("upload %d+%d bytes into %d+%d byte buffers: %w",
			len(vertices), len(indices), b.vboSize, b.eboSize, guidraw.ErrCapacityOverflow)
	}

	gl.BindVertexArray(b.vao)
	if len(vertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices), unsafe.Pointer(&vertices[0]))
	}
	if len(indices) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices), unsafe.Pointer(&indices[0]))
	}
	return checkError("upload buffers")
}

// Draw issues one indexed triangle draw.
func (b *Backend) Draw(call *guidraw.DrawCall) error {
	tex, ok := call.Texture.(*Texture)
	if !ok || tex.id == 0 {
		return fmt.Errorf("texture %T is not an OpenGL texture", call.Texture)
	}
	xtype, size := glIndexType(call.IndexFormat)
	if call.IndexStart < 0 || call.IndexEnd()*size > b.eboSize {
		return fmt.Errorf("indices [%d,%d) outside %d byte index buffer", call.IndexStart, call.IndexEnd(), b.eboSize)
	}

	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.projLoc, 1, false, &call.Projection[0])
	gl.Uniform1i(b.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	sampler, err := b.sampler(call.Sampler)
	if err != nil {
		return err
	}
	gl.BindSampler(0, sampler)

	blend := call.Blend
	gl.Enable(gl.BLEND)
	gl.BlendEquationSeparate(glBlendEquation(blend.Color.Operation), glBlendEquation(blend.Alpha.Operation))
	gl.BlendFuncSeparate(
		glBlendFactor(blend.Color.SrcFactor), glBlendFactor(blend.Color.DstFactor),
		glBlendFactor(blend.Alpha.SrcFactor), glBlendFactor(blend.Alpha.DstFactor),
	)
	if face, cull := glCullFace(call.CullMode); cull {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(face)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(call.Scissor.X, call.Scissor.Y, call.Scissor.W, call.Scissor.H)

	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(call.IndexCount), xtype, uintptr(call.IndexStart*size))
	return checkError("draw elements")
}

// sampler returns the cached sampler object for p, creating it on first use.
func (b *Backend) sampler(p guidraw.SamplerPolicy) (uint32, error) {
	if s, ok := b.samplers[p]; ok {
		return s, nil
	}
	var s uint32
	gl.GenSamplers(1, &s)
	gl.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, glFilter(p.MagFilter))
	gl.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, glFilter(p.MinFilter))
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_S, glWrap(p.WrapU))
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_T, glWrap(p.WrapV))
	if err := checkError("create sampler"); err != nil {
		gl.DeleteSamplers(1, &s)
		return 0, err
	}
	b.samplers[p] = s
	return s, nil
}

// ReleaseBuffers deletes the vertex array and buffers.
func (b *Backend) ReleaseBuffers() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	b.vboSize, b.eboSize = 0, 0
}

// Delete releases the shader program, samplers and buffers.
func (b *Backend) Delete() {
	b.ReleaseBuffers()
	for p, s := range b.samplers {
		gl.DeleteSamplers(1, &s)
		delete(b.samplers, p)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: %s", op, glErrorString(code))
	}
	return nil
}
