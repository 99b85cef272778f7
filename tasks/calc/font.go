package calc

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// symbolFont wraps a bitmap font and draws '×', '÷' and '²', which the freemono fonts lack.
// The glyphs use the metrics of the base font's '0' so they line up with digits.
type symbolFont struct {
	base tinyfont.Fonter
	ref  tinyfont.GlyphInfo
	g    symbolGlyph
}

func withSymbols(base tinyfont.Fonter) *symbolFont {
	return &symbolFont{base: base, ref: base.GetGlyph('0').Info()}
}

func (f *symbolFont) GetYAdvance() uint8 { return f.base.GetYAdvance() }

func (f *symbolFont) GetGlyph(r rune) tinyfont.Glypher {
	switch r {
	case '×', '÷', '²':
		f.g = symbolGlyph{r: r, ref: f.ref}
		return &f.g
	}
	return f.base.GetGlyph(r)
}

// digitHeight is the pixel height of a digit, used to center labels vertically.
func (f *symbolFont) digitHeight() int16 { return int16(f.ref.Height) }

type symbolGlyph struct {
	r   rune
	ref tinyfont.GlyphInfo
}

func (g *symbolGlyph) Info() tinyfont.GlyphInfo {
	info := g.ref
	info.Rune = g.r
	return info
}

// superscriptTwo is a 3x5 bitmap of '2'.
var superscriptTwo = [5]uint8{0b111, 0b001, 0b111, 0b100, 0b111}

func (g *symbolGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	adv := int16(g.ref.XAdvance)
	h := int16(g.ref.Height)
	if adv <= 2 || h <= 2 {
		return
	}

	switch g.r {
	case '²':
		k := h / 10
		if k < 1 {
			k = 1
		}
		top := y - h
		for row := int16(0); row < 5; row++ {
			bits := superscriptTwo[row]
			for col := int16(0); col < 3; col++ {
				if bits&(0b100>>col) == 0 {
					continue
				}
				fillBlock(display, x+1+col*k, top+row*k, k, c)
			}
		}
		return
	}

	s := adv - 2
	if lim := h * 2 / 3; s > lim {
		s = lim
	}
	x0 := x + (adv-s)/2
	cy := y - h/2
	y0 := cy - s/2
	thick := int16(1)
	if s >= 8 {
		thick = 2
	}

	switch g.r {
	case '×':
		for i := int16(0); i < s; i++ {
			fillBlock(display, x0+i, y0+i, thick, c)
			fillBlock(display, x0+s-1-i, y0+i, thick, c)
		}
	case '÷':
		for i := int16(0); i < s; i++ {
			fillBlock(display, x0+i, cy, thick, c)
		}
		mid := x0 + s/2 - thick/2
		fillBlock(display, mid, y0, thick, c)
		fillBlock(display, mid, y0+s-thick, thick, c)
	}
}

func fillBlock(display drivers.Displayer, x, y, size int16, c color.RGBA) {
	for dy := int16(0); dy < size; dy++ {
		for dx := int16(0); dx < size; dx++ {
			display.SetPixel(x+dx, y+dy, c)
		}
	}
}
