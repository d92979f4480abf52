package demo_test

import (
	"testing"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/canvas"
	"github.com/go-theft-auto/guidraw/fontatlas"
	"github.com/go-theft-auto/guidraw/internal/demo"
)

func TestCheckerboard(t *testing.T) {
	pix := demo.Checkerboard(16, 4)
	if len(pix) != 16*16*4 {
		t.Fatalf("expected %d bytes, got %d", 16*16*4, len(pix))
	}
	at := func(x, y int) byte { return pix[(y*16+x)*4] }
	if at(0, 0) == at(4, 0) || at(0, 0) != at(4, 4) {
		t.Errorf("cells do not alternate: %d %d %d", at(0, 0), at(4, 0), at(4, 4))
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xFF {
			t.Fatalf("texel %d not opaque", i/4)
		}
	}
}

func TestScenesConvert(t *testing.T) {
	atlas, err := fontatlas.Default()
	if err != nil {
		t.Fatal(err)
	}
	assets := &demo.Assets{Font: atlas, Checker: 2}

	cfg := guidraw.DefaultConvertConfig()
	cfg.Null = guidraw.NullTexture{Texture: 1}

	for _, sc := range demo.Scenes {
		t.Run(sc.Name, func(t *testing.T) {
			q := canvas.New()
			sc.Draw(q, assets, guidraw.Vec2{X: 640, Y: 400}, 1)
			if q.Len() == 0 {
				t.Fatal("scene recorded nothing")
			}

			s := guidraw.NewStaging(canvas.MaxVertices, 4*canvas.MaxVertices)
			cmds := guidraw.NewBuffer(0)
			if err := q.Convert(cmds, s.VertexView(), s.IndexView(), cfg); err != nil {
				t.Fatalf("Convert() returned error: %v", err)
			}
			for cmd := range q.DrawCommands(cmds) {
				if cmd.Texture == guidraw.NoTexture {
					t.Errorf("command without texture: %+v", cmd)
				}
			}
		})
	}
}
