// Package fontatlas rasterizes a font face into an RGBA8 texture atlas that
// can be registered with a guidraw.Renderer and drawn with canvas.Text.
package fontatlas

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gputypes"

	"github.com/go-theft-auto/guidraw"
	"github.com/go-theft-auto/guidraw/canvas"
)

const (
	firstRune = ' '
	lastRune  = '~'
	numRunes  = lastRune - firstRune + 1
	columns   = 16
	pad       = 1
)

// ErrNoGlyphs is returned when a face has no glyph for any printable ASCII
// character.
var ErrNoGlyphs = errors.New("fontatlas: face has no printable ASCII glyphs")

// TextureAdder registers RGBA8 textures. *guidraw.Renderer implements it.
type TextureAdder interface {
	AddTexture(pixels []byte, width, height int, sampler *guidraw.SamplerPolicy) (guidraw.Handle, error)
}

type glyph struct {
	cell    image.Rectangle // Atlas pixels, padding included
	advance float32
	ok      bool
}

// Atlas holds printable ASCII glyphs of one face in a grid of equal cells,
// plus a white block used as the null texture for untextured geometry.
// Glyphs are white; coverage is in the alpha channel.
type Atlas struct {
	face   font.Face
	pixels []byte
	width  int
	height int

	glyphs  [numRunes]glyph
	cellW   int
	cellH   int
	ascent  float32
	descent float32
	line    float32
	white   guidraw.Vec2

	handle guidraw.Handle
}

// Default returns an atlas of the 7x13 fixed-width face from basicfont.
func Default() (*Atlas, error) {
	return New(basicfont.Face7x13)
}

// New rasterizes the printable ASCII range of face.
func New(face font.Face) (*Atlas, error) {
	m := face.Metrics()
	a := &Atlas{
		face:    face,
		ascent:  fixedToFloat(m.Ascent),
		descent: fixedToFloat(m.Descent),
		line:    fixedToFloat(m.Height),
	}
	if a.line <= 0 {
		a.line = a.ascent + a.descent
	}

	maxAdvance := 0
	found := 0
	for r := rune(firstRune); r <= lastRune; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		found++
		maxAdvance = max(maxAdvance, adv.Ceil())
		a.glyphs[r-firstRune] = glyph{advance: fixedToFloat(adv), ok: true}
	}
	if found == 0 {
		return nil, ErrNoGlyphs
	}

	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	a.cellW = maxAdvance + 2*pad
	a.cellH = ascent + descent + 2*pad
	rows := int(numRunes+1+columns-1) / columns // One extra cell for white
	a.width = columns * a.cellW
	a.height = rows * a.cellH

	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for i := range a.glyphs {
		cell := a.cellRect(i)
		a.glyphs[i].cell = cell
		if !a.glyphs[i].ok {
			continue
		}
		d.Dot = fixed.P(cell.Min.X+pad, cell.Min.Y+pad+ascent)
		d.DrawString(string(rune(firstRune + i)))
	}

	// White block in the cell after the last glyph.
	wc := a.cellRect(numRunes)
	xdraw.Draw(img, image.Rect(wc.Min.X, wc.Min.Y, wc.Min.X+2, wc.Min.Y+2), image.White, image.Point{}, xdraw.Src)
	a.white = guidraw.Vec2{
		X: float32(wc.Min.X+1) / float32(a.width),
		Y: float32(wc.Min.Y+1) / float32(a.height),
	}

	a.pixels = straightWhite(img.Pix)
	return a, nil
}

func (a *Atlas) cellRect(i int) image.Rectangle {
	x := (i % columns) * a.cellW
	y := (i / columns) * a.cellH
	return image.Rect(x, y, x+a.cellW, y+a.cellH)
}

// straightWhite turns premultiplied white coverage into straight-alpha white.
func straightWhite(pix []byte) []byte {
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] != 0 {
			pix[i], pix[i+1], pix[i+2] = 0xFF, 0xFF, 0xFF
		}
	}
	return pix
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Pixels returns the RGBA8 atlas image.
func (a *Atlas) Pixels() []byte { return a.pixels }

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() (width, height int) { return a.width, a.height }

// Register uploads the atlas with nearest filtering and remembers the
// handle for Texture and NullTexture.
func (a *Atlas) Register(r TextureAdder) (guidraw.Handle, error) {
	sampler := guidraw.SamplerPolicy{
		MagFilter: gputypes.FilterModeNearest,
		MinFilter: gputypes.FilterModeNearest,
		WrapU:     gputypes.AddressModeClampToEdge,
		WrapV:     gputypes.AddressModeClampToEdge,
	}
	h, err := r.AddTexture(a.pixels, a.width, a.height, &sampler)
	if err != nil {
		return guidraw.NoTexture, fmt.Errorf("register font atlas: %w", err)
	}
	a.handle = h
	return h, nil
}

// Texture returns the handle given by Register, or NoTexture before it.
func (a *Atlas) Texture() guidraw.Handle { return a.handle }

// NullTexture returns the atlas' white texel for ConvertConfig.Null.
func (a *Atlas) NullTexture() guidraw.NullTexture {
	return guidraw.NullTexture{Texture: a.handle, UV: a.white}
}

// LineHeight returns the distance between baselines.
func (a *Atlas) LineHeight() float32 { return a.line }

func (a *Atlas) lookup(r rune) (*glyph, bool) {
	r = fallback(r)
	if r < firstRune || r > lastRune || !a.glyphs[r-firstRune].ok {
		r = '?'
	}
	g := &a.glyphs[r-firstRune]
	return g, g.ok
}

// Glyphs lays s out from origin and appends a quad for every visible rune.
// Newlines start a new line; runes outside the atlas draw as '?'.
func (a *Atlas) Glyphs(dst []canvas.Glyph, s string, origin guidraw.Vec2) []canvas.Glyph {
	x, top := origin.X, origin.Y
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			x = origin.X
			top += a.line
			prev = -1
			continue
		}
		g, ok := a.lookup(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			x += fixedToFloat(a.face.Kern(prev, r))
		}
		prev = r
		if g != &a.glyphs[' '-firstRune] {
			dst = append(dst, canvas.Glyph{
				Dst: guidraw.Rect{X: x - pad, Y: top - pad, W: float32(a.cellW), H: float32(a.cellH)},
				UV0: guidraw.Vec2{X: float32(g.cell.Min.X) / float32(a.width), Y: float32(g.cell.Min.Y) / float32(a.height)},
				UV1: guidraw.Vec2{X: float32(g.cell.Max.X) / float32(a.width), Y: float32(g.cell.Max.Y) / float32(a.height)},
			})
		}
		x += g.advance
	}
	return dst
}

// Measure returns the width of the widest line and the height of all lines.
func (a *Atlas) Measure(s string) guidraw.Vec2 {
	if s == "" {
		return guidraw.Vec2{}
	}
	var width, x float32
	lines := 1
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, x)
			x = 0
			lines++
			prev = -1
			continue
		}
		g, ok := a.lookup(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			x += fixedToFloat(a.face.Kern(prev, r))
		}
		prev = r
		x += g.advance
	}
	return guidraw.Vec2{X: max(width, x), Y: float32(lines) * a.line}
}

// fallback maps common symbols to ASCII look-alikes.
func fallback(r rune) rune {
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	case '\t':
		return ' '
	}
	return r
}
