package canvas

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
)

// ErrIndexOverflow is returned by Convert when a frame needs more vertices
// than 16-bit indices can address.
var ErrIndexOverflow = errors.New("canvas: more than 65536 vertices in one frame")

// MaxVertices is the number of vertices addressable by uint16 indices.
const MaxVertices = 1 << 16

const fullTurn = 2 * math.Pi

// recordSize is the size of one command log record: element count, clip
// rectangle (x, y, w, h) and texture handle, 4 bytes each.
const recordSize = 24

// Convert tessellates the recorded primitives.
//
// Vertices are packed by cfg's vertex layout and stride into vertices,
// absolute uint16 indices go into elements, and one record per command is
// appended to cmds. Untextured commands use cfg.Null. Every vertex alpha is
// multiplied by cfg.GlobalAlpha.
//
// Convert fails with guidraw.ErrBufferFull when the geometry does not fit
// the buffers and with ErrIndexOverflow when it needs more than MaxVertices
// vertices. The queue is left intact either way.
func (q *Queue) Convert(cmds, vertices, elements *guidraw.Buffer, cfg *guidraw.ConvertConfig) error {
	enc, err := newVertexEncoder(cfg)
	if err != nil {
		return err
	}

	q.vtx = q.vtx[:0]
	q.idx = q.idx[:0]
	counts := make([]uint32, len(q.cmds))
	for i, cmd := range q.cmds {
		start := len(q.idx)
		uv := cfg.Null.UV
		textured := cmd.texture != guidraw.NoTexture
		for _, o := range q.ops[cmd.first:cmd.last] {
			q.tessellate(&o, textured, uv, cfg)
		}
		counts[i] = uint32(len(q.idx) - start)
	}
	if len(q.vtx) > MaxVertices {
		return fmt.Errorf("convert %d vertices: %w", len(q.vtx), ErrIndexOverflow)
	}

	vbuf, err := vertices.Alloc(len(q.vtx) * enc.stride)
	if err != nil {
		return fmt.Errorf("convert %d vertices: %w", len(q.vtx), err)
	}
	ebuf, err := elements.Alloc(len(q.idx) * guidraw.IndexSize)
	if err != nil {
		return fmt.Errorf("convert %d indices: %w", len(q.idx), err)
	}

	for i := range q.vtx {
		enc.encode(vbuf[i*enc.stride:(i+1)*enc.stride], &q.vtx[i])
	}
	for i, ix := range q.idx {
		binary.NativeEndian.PutUint16(ebuf[i*guidraw.IndexSize:], ix)
	}

	for i, cmd := range q.cmds {
		tex := cmd.texture
		if tex == guidraw.NoTexture {
			tex = cfg.Null.Texture
		}
		rec, err := cmds.Alloc(recordSize)
		if err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		putRecord(rec, guidraw.DrawCommand{ElemCount: counts[i], ClipRect: cmd.clip, Texture: tex})
	}
	return nil
}

// DrawCommands yields the commands written to cmds by Convert, in order.
func (q *Queue) DrawCommands(cmds *guidraw.Buffer) iter.Seq[guidraw.DrawCommand] {
	return func(yield func(guidraw.DrawCommand) bool) {
		b := cmds.Bytes()
		for len(b) >= recordSize {
			if !yield(readRecord(b[:recordSize])) {
				return
			}
			b = b[recordSize:]
		}
	}
}

func putRecord(b []byte, cmd guidraw.DrawCommand) {
	ne := binary.NativeEndian
	ne.PutUint32(b[0:], cmd.ElemCount)
	ne.PutUint32(b[4:], math.Float32bits(cmd.ClipRect.X))
	ne.PutUint32(b[8:], math.Float32bits(cmd.ClipRect.Y))
	ne.PutUint32(b[12:], math.Float32bits(cmd.ClipRect.W))
	ne.PutUint32(b[16:], math.Float32bits(cmd.ClipRect.H))
	ne.PutUint32(b[20:], uint32(cmd.Texture))
}

func readRecord(b []byte) guidraw.DrawCommand {
	ne := binary.NativeEndian
	return guidraw.DrawCommand{
		ElemCount: ne.Uint32(b[0:]),
		ClipRect: guidraw.Rect{
			X: math.Float32frombits(ne.Uint32(b[4:])),
			Y: math.Float32frombits(ne.Uint32(b[8:])),
			W: math.Float32frombits(ne.Uint32(b[12:])),
			H: math.Float32frombits(ne.Uint32(b[16:])),
		},
		Texture: guidraw.Handle(int32(ne.Uint32(b[20:]))),
	}
}

// vertexEncoder packs vertices by a validated layout.
type vertexEncoder struct {
	elems  guidraw.VertexLayout
	stride int
	alpha  float32
}

func newVertexEncoder(cfg *guidraw.ConvertConfig) (*vertexEncoder, error) {
	if err := cfg.VertexLayout.Validate(cfg.VertexSize); err != nil {
		return nil, err
	}
	for _, e := range cfg.VertexLayout {
		if !encodable(e) {
			return nil, fmt.Errorf("%s as %s: %w", e.Attribute, e.Format, guidraw.ErrInvalidLayout)
		}
	}
	alpha := cfg.GlobalAlpha
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return &vertexEncoder{elems: cfg.VertexLayout, stride: cfg.VertexSize, alpha: alpha}, nil
}

func encodable(e guidraw.VertexLayoutElement) bool {
	switch e.Attribute {
	case guidraw.AttributePosition, guidraw.AttributeTexCoord:
		return e.Format == gputypes.VertexFormatFloat32x2
	case guidraw.AttributeColor:
		switch e.Format {
		case gputypes.VertexFormatUnorm8x4, gputypes.VertexFormatUint8x4, gputypes.VertexFormatFloat32x4:
			return true
		}
	}
	return false
}

func (e *vertexEncoder) encode(dst []byte, v *guidraw.Vertex) {
	ne := binary.NativeEndian
	for _, el := range e.elems {
		b := dst[el.Offset:]
		switch el.Attribute {
		case guidraw.AttributePosition:
			ne.PutUint32(b[0:], math.Float32bits(v.Pos[0]))
			ne.PutUint32(b[4:], math.Float32bits(v.Pos[1]))
		case guidraw.AttributeTexCoord:
			ne.PutUint32(b[0:], math.Float32bits(v.TexCoord[0]))
			ne.PutUint32(b[4:], math.Float32bits(v.TexCoord[1]))
		case guidraw.AttributeColor:
			c := v.Color
			c[3] = uint8(float32(c[3])*e.alpha + 0.5)
			if el.Format == gputypes.VertexFormatFloat32x4 {
				for i := range 4 {
					ne.PutUint32(b[i*4:], math.Float32bits(float32(c[i])/255))
				}
			} else {
				copy(b, c[:])
			}
		}
	}
}

// tessellate appends the triangles of o to the scratch geometry.
func (q *Queue) tessellate(o *op, textured bool, nullUV guidraw.Vec2, cfg *guidraw.ConvertConfig) {
	switch o.kind {
	case opRect:
		q.quad(o.p[0], o.p[0].Add(o.p[1]), nullUV, nullUV, o.color)
	case opStrokeRect:
		x, y, w, h, t := o.p[0].X, o.p[0].Y, o.p[1].X, o.p[1].Y, o.thickness
		q.quad(guidraw.Vec2{X: x, Y: y}, guidraw.Vec2{X: x + w, Y: y + t}, nullUV, nullUV, o.color)
		q.quad(guidraw.Vec2{X: x, Y: y + h - t}, guidraw.Vec2{X: x + w, Y: y + h}, nullUV, nullUV, o.color)
		q.quad(guidraw.Vec2{X: x, Y: y + t}, guidraw.Vec2{X: x + t, Y: y + h - t}, nullUV, nullUV, o.color)
		q.quad(guidraw.Vec2{X: x + w - t, Y: y + t}, guidraw.Vec2{X: x + w, Y: y + h - t}, nullUV, nullUV, o.color)
	case opLine:
		q.line(o.p[0], o.p[1], o.thickness, nullUV, o.color)
	case opTriangle:
		base := uint16(len(q.vtx))
		for _, p := range o.p[:3] {
			q.vtx = append(q.vtx, vertex(p, nullUV, o.color))
		}
		q.idx = append(q.idx, base, base+1, base+2)
	case opArc:
		n := cfg.ArcSegmentCount
		if o.circle {
			n = max(cfg.CircleSegmentCount, 3)
		}
		q.arc(o.p[0], o.radius, o.a0, o.a1, max(n, 1), nullUV, o.color)
	case opCurve:
		n := max(cfg.CurveSegmentCount, 1)
		prev := o.p[0]
		for i := 1; i <= n; i++ {
			next := bezier(o.p, float32(i)/float32(n))
			q.line(prev, next, o.thickness, nullUV, o.color)
			prev = next
		}
	case opQuad:
		uv0, uv1 := o.uv[0], o.uv[1]
		if !textured {
			uv0, uv1 = nullUV, nullUV
		}
		q.quad(o.p[0], o.p[1], uv0, uv1, o.color)
	}
}

func vertex(p, uv guidraw.Vec2, c guidraw.Color) guidraw.Vertex {
	return guidraw.Vertex{Pos: [2]float32{p.X, p.Y}, TexCoord: [2]float32{uv.X, uv.Y}, Color: c}
}

// quad adds an axis-aligned rectangle from top-left a to bottom-right b.
func (q *Queue) quad(a, b, uv0, uv1 guidraw.Vec2, c guidraw.Color) {
	base := uint16(len(q.vtx))
	q.vtx = append(q.vtx,
		vertex(a, uv0, c),
		vertex(guidraw.Vec2{X: b.X, Y: a.Y}, guidraw.Vec2{X: uv1.X, Y: uv0.Y}, c),
		vertex(b, uv1, c),
		vertex(guidraw.Vec2{X: a.X, Y: b.Y}, guidraw.Vec2{X: uv0.X, Y: uv1.Y}, c),
	)
	q.idx = append(q.idx, base, base+1, base+2, base, base+2, base+3)
}

// line adds a segment as a quad extruded along its normal.
func (q *Queue) line(a, b guidraw.Vec2, thickness float32, uv guidraw.Vec2, c guidraw.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	inv := float32(1)
	if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
		inv = 1 / l
	}
	n := guidraw.Vec2{X: -dy * inv * thickness / 2, Y: dx * inv * thickness / 2}

	base := uint16(len(q.vtx))
	q.vtx = append(q.vtx,
		vertex(a.Add(n), uv, c),
		vertex(b.Add(n), uv, c),
		vertex(b.Add(n.Mul(-1)), uv, c),
		vertex(a.Add(n.Mul(-1)), uv, c),
	)
	q.idx = append(q.idx, base, base+1, base+2, base, base+2, base+3)
}

// arc adds a triangle fan around center from angle a0 to a1.
func (q *Queue) arc(center guidraw.Vec2, r, a0, a1 float32, segments int, uv guidraw.Vec2, c guidraw.Color) {
	base := uint16(len(q.vtx))
	q.vtx = append(q.vtx, vertex(center, uv, c))
	step := (a1 - a0) / float32(segments)
	for i := 0; i <= segments; i++ {
		a := float64(a0 + step*float32(i))
		p := guidraw.Vec2{X: center.X + r*float32(math.Cos(a)), Y: center.Y + r*float32(math.Sin(a))}
		q.vtx = append(q.vtx, vertex(p, uv, c))
	}
	for i := range uint16(segments) {
		q.idx = append(q.idx, base, base+1+i, base+2+i)
	}
}

func bezier(p [4]guidraw.Vec2, t float32) guidraw.Vec2 {
	u := 1 - t
	w0, w1, w2, w3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return guidraw.Vec2{
		X: w0*p[0].X + w1*p[1].X + w2*p[2].X + w3*p[3].X,
		Y: w0*p[0].Y + w1*p[1].Y + w2*p[2].Y + w3*p[3].Y,
	}
}
