// Package canvas is a small immediate-mode draw queue that speaks the
// guidraw.Context protocol.
//
// Primitives are recorded during the frame and batched by clip rectangle and
// texture. Geometry is only produced in Convert, using the vertex layout and
// segment counts of the convert config, the same way a GUI library converts
// its command buffer for a rendering backend.
package canvas

import (
	"sync"

	"github.com/go-theft-auto/guidraw"
)

// NoClip is the clip rectangle of a queue with an empty clip stack.
var NoClip = guidraw.Rect{X: -8192, Y: -8192, W: 16384, H: 16384}

var queuePool = sync.Pool{
	New: func() any {
		return &Queue{
			cmds:  make([]command, 0, 16),
			ops:   make([]op, 0, 256),
			clips: make([]guidraw.Rect, 0, 8),
		}
	},
}

// Acquire gets a cleared Queue from the pool.
// Call Release when done to return it.
func Acquire() *Queue {
	q := queuePool.Get().(*Queue)
	q.Reset()
	return q
}

// Release returns a Queue to the pool.
func Release(q *Queue) {
	if q != nil {
		queuePool.Put(q)
	}
}

type opKind uint8

const (
	opRect opKind = iota
	opStrokeRect
	opLine
	opTriangle
	opArc
	opCurve
	opQuad
)

// op is one recorded primitive. The meaning of p depends on kind.
type op struct {
	kind      opKind
	p         [4]guidraw.Vec2
	uv        [2]guidraw.Vec2
	color     guidraw.Color
	thickness float32
	radius    float32
	a0, a1    float32
	circle    bool // Segment count from CircleSegmentCount instead of ArcSegmentCount
}

// command is a run of ops sharing a clip rectangle and texture.
type command struct {
	clip    guidraw.Rect
	texture guidraw.Handle // NoTexture means the config's null texture
	first   int
	last    int // Exclusive
}

// Queue records one frame of primitives. A Queue is not safe for concurrent
// use.
type Queue struct {
	cmds    []command
	ops     []op
	clips   []guidraw.Rect
	clip    guidraw.Rect

	// Scratch geometry reused by Convert.
	vtx []guidraw.Vertex
	idx []uint16
}

// New creates an empty queue.
func New() *Queue {
	q := &Queue{}
	q.Reset()
	return q
}

// Reset clears the queue for a new frame, keeping allocated memory.
func (q *Queue) Reset() {
	q.cmds = q.cmds[:0]
	q.ops = q.ops[:0]
	q.clips = q.clips[:0]
	q.clip = NoClip
}

// Len returns the number of batched commands recorded so far.
func (q *Queue) Len() int {
	return len(q.cmds)
}

// Clip returns the current clip rectangle.
func (q *Queue) Clip() guidraw.Rect {
	return q.clip
}

// PushClip narrows the clip rectangle to its intersection with r.
func (q *Queue) PushClip(r guidraw.Rect) {
	q.clips = append(q.clips, q.clip)
	q.clip = q.clip.Intersect(r)
}

// PopClip restores the previous clip rectangle.
func (q *Queue) PopClip() {
	n := len(q.clips)
	if n > 0 {
		q.clip = q.clips[n-1]
		q.clips = q.clips[:n-1]
	}
}

// push records o under the current clip. Untextured primitives pass
// NoTexture and batch under the config's null texture.
func (q *Queue) push(tex guidraw.Handle, o op) {
	n := len(q.cmds)
	if n == 0 || q.cmds[n-1].clip != q.clip || q.cmds[n-1].texture != tex {
		q.cmds = append(q.cmds, command{clip: q.clip, texture: tex, first: len(q.ops)})
		n++
	}
	q.ops = append(q.ops, o)
	q.cmds[n-1].last = len(q.ops)
}

// FillRect draws a filled rectangle.
func (q *Queue) FillRect(r guidraw.Rect, c guidraw.Color) {
	if c[3] == 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opRect, p: [4]guidraw.Vec2{{X: r.X, Y: r.Y}, {X: r.W, Y: r.H}}, color: c})
}

// StrokeRect draws a rectangle outline of the given thickness inside r.
func (q *Queue) StrokeRect(r guidraw.Rect, c guidraw.Color, thickness float32) {
	if c[3] == 0 || thickness <= 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opStrokeRect, p: [4]guidraw.Vec2{{X: r.X, Y: r.Y}, {X: r.W, Y: r.H}}, color: c, thickness: thickness})
}

// Line draws a line segment of the given thickness.
func (q *Queue) Line(from, to guidraw.Vec2, c guidraw.Color, thickness float32) {
	if c[3] == 0 || thickness <= 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opLine, p: [4]guidraw.Vec2{from, to}, color: c, thickness: thickness})
}

// FillTriangle draws a filled triangle.
func (q *Queue) FillTriangle(a, b, c guidraw.Vec2, col guidraw.Color) {
	if col[3] == 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opTriangle, p: [4]guidraw.Vec2{a, b, c}, color: col})
}

// FillCircle draws a filled circle with the config's circle segment count.
func (q *Queue) FillCircle(center guidraw.Vec2, radius float32, c guidraw.Color) {
	if c[3] == 0 || radius <= 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opArc, p: [4]guidraw.Vec2{center}, radius: radius, a0: 0, a1: fullTurn, color: c, circle: true})
}

// FillArc draws a pie slice from angle a0 to a1 (radians, clockwise on
// screen) with the config's arc segment count.
func (q *Queue) FillArc(center guidraw.Vec2, radius, a0, a1 float32, c guidraw.Color) {
	if c[3] == 0 || radius <= 0 || a0 == a1 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opArc, p: [4]guidraw.Vec2{center}, radius: radius, a0: a0, a1: a1, color: c})
}

// Curve draws a cubic Bezier curve from p0 to p3 with the config's curve
// segment count.
func (q *Queue) Curve(p0, c0, c1, p3 guidraw.Vec2, c guidraw.Color, thickness float32) {
	if c[3] == 0 || thickness <= 0 {
		return
	}
	q.push(guidraw.NoTexture, op{kind: opCurve, p: [4]guidraw.Vec2{p0, c0, c1, p3}, color: c, thickness: thickness})
}

// Image draws the texture h stretched over r, tinted by c.
func (q *Queue) Image(h guidraw.Handle, r guidraw.Rect, c guidraw.Color) {
	q.ImageRegion(h, r, guidraw.Vec2{}, guidraw.Vec2{X: 1, Y: 1}, c)
}

// ImageRegion draws the part of texture h between uv0 and uv1 over r.
func (q *Queue) ImageRegion(h guidraw.Handle, r guidraw.Rect, uv0, uv1 guidraw.Vec2, c guidraw.Color) {
	if c[3] == 0 {
		return
	}
	q.push(h, op{kind: opQuad, p: [4]guidraw.Vec2{{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y + r.H}}, uv: [2]guidraw.Vec2{uv0, uv1}, color: c})
}
