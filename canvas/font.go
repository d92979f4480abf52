package canvas

import "github.com/go-theft-auto/guidraw"

// Font provides glyph quads from a texture atlas.
//
// The canvas does not depend on a concrete font implementation; see the
// fontatlas package for one built on golang.org/x/image/font.
type Font interface {
	// Texture returns the handle of the registered atlas texture.
	Texture() guidraw.Handle

	// Glyphs appends one quad per drawable rune of s, laid out with the top
	// left of the first line at origin, and returns the extended slice.
	Glyphs(dst []Glyph, s string, origin guidraw.Vec2) []Glyph

	// Measure returns the size of s in logical units.
	Measure(s string) guidraw.Vec2

	// LineHeight returns the distance between baselines.
	LineHeight() float32
}

// Glyph is a single character's quad.
type Glyph struct {
	Dst      guidraw.Rect // Screen rectangle
	UV0, UV1 guidraw.Vec2 // Atlas coordinates (top-left, bottom-right)
}

// Text draws s with font f, the top left of the first line at pos.
func (q *Queue) Text(f Font, pos guidraw.Vec2, s string, c guidraw.Color) {
	if f == nil || c[3] == 0 || s == "" {
		return
	}
	var buf [64]Glyph
	glyphs := f.Glyphs(buf[:0], s, pos)
	if len(glyphs) == 0 {
		return
	}

	tex := f.Texture()
	for _, g := range glyphs {
		q.push(tex, op{
			kind:  opQuad,
			p:     [4]guidraw.Vec2{{X: g.Dst.X, Y: g.Dst.Y}, {X: g.Dst.X + g.Dst.W, Y: g.Dst.Y + g.Dst.H}},
			uv:    [2]guidraw.Vec2{g.UV0, g.UV1},
			color: c,
		})
	}
}
