package canvas_test

import (
	"testing"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/canvas"
)

type nopTexture struct{}

func (nopTexture) Release() {}

// recordingBackend keeps the uploaded index bytes and the issued draws.
type recordingBackend struct {
	indices []byte
	draws   []guidraw.DrawCall
}

func (b *recordingBackend) CreateTexture([]byte, int, int) (guidraw.Texture, error) {
	return nopTexture{}, nil
}
func (b *recordingBackend) AllocateBuffers(guidraw.VertexLayout, int, int, int) error { return nil }
func (b *recordingBackend) InvalidateBuffers() error                                { return nil }
func (b *recordingBackend) UploadBuffers(_, indices []byte) error {
	b.indices = append(b.indices[:0], indices...)
	return nil
}
func (b *recordingBackend) Draw(call *guidraw.DrawCall) error {
	b.draws = append(b.draws, *call)
	return nil
}
func (b *recordingBackend) ReleaseBuffers() {}

type size struct{ w, h int }

func (s size) Size() (int, int) { return s.w, s.h }

func TestRenderQueue(t *testing.T) {
	b := &recordingBackend{}
	r, err := guidraw.New(b, guidraw.WithCapacity(256, 512))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	white, _ := r.AddTexture([]byte{255, 255, 255, 255}, 1, 1, nil)
	img, _ := r.AddTexture(make([]byte, 2*2*4), 2, 2, nil)

	cfg := guidraw.DefaultConvertConfig()
	cfg.Null = guidraw.NullTexture{Texture: white}

	q := canvas.Acquire()
	defer canvas.Release(q)

	for frame := range 2 {
		q.Reset()
		q.FillRect(guidraw.Rect{X: 0, Y: 0, W: 100, H: 20}, guidraw.ColorDarkGray)
		q.PushClip(guidraw.Rect{X: 10, Y: 10, W: 50, H: 50})
		q.Image(img, guidraw.Rect{X: 10, Y: 10, W: 32, H: 32}, guidraw.ColorWhite)
		q.PopClip()
		q.Line(guidraw.Vec2{X: 0, Y: 0}, guidraw.Vec2{X: 100, Y: 100}, guidraw.ColorYellow, 2)

		b.draws = b.draws[:0]
		if err := r.Render(q, cfg, size{200, 100}, guidraw.Vec2{X: 1, Y: 1}); err != nil {
			t.Fatalf("frame %d: Render() returned error: %v", frame, err)
		}

		if len(b.draws) != 3 {
			t.Fatalf("frame %d: expected 3 draws, got %d", frame, len(b.draws))
		}
		starts := []int{0, 6, 12}
		for i, d := range b.draws {
			if d.IndexStart != starts[i] || d.IndexCount != 6 {
				t.Errorf("frame %d draw %d: got [%d,+%d)", frame, i, d.IndexStart, d.IndexCount)
			}
		}
		want := guidraw.Scissor{X: 10, Y: 40, W: 50, H: 50}
		if b.draws[1].Scissor != want {
			t.Errorf("frame %d: image scissor %+v, want %+v", frame, b.draws[1].Scissor, want)
		}
		if len(b.indices) != 512*guidraw.IndexSize {
			t.Errorf("frame %d: uploaded %d index bytes, want full capacity", frame, len(b.indices))
		}

		v := r.Staging().Vertices()
		if v[0].Pos != [2]float32{0, 0} || v[2].Pos != [2]float32{100, 20} || v[0].Color != guidraw.ColorDarkGray {
			t.Errorf("frame %d: background quad staged as %+v .. %+v", frame, v[0], v[2])
		}
		if v[4].TexCoord != [2]float32{0, 0} || v[6].TexCoord != [2]float32{1, 1} {
			t.Errorf("frame %d: image UVs staged as %v .. %v", frame, v[4].TexCoord, v[6].TexCoord)
		}
		if idx := r.Staging().Indices()[6:12]; idx[0] != 4 || idx[5] != 7 {
			t.Errorf("frame %d: image indices %v", frame, idx)
		}
	}
}
