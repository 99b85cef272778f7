package calc

// This file contains the framebuffer adapter and the calculator renderer.

import (
	"image/color"

	"calcpad/editor"
	"calcpad/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	colorBG       = color.RGBA{R: 0x1B, G: 0x1B, B: 0x1B, A: 0xFF}
	colorField    = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}
	colorFG       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDim      = color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	colorSep      = color.RGBA{R: 0x3C, G: 0x3C, B: 0x3C, A: 0xFF}
	colorKey      = color.RGBA{R: 0x3C, G: 0x3C, B: 0x3C, A: 0xFF}
	colorClear    = color.RGBA{R: 220, G: 0, B: 0, A: 0xFF}
	colorEquals   = color.RGBA{R: 0, G: 150, B: 0, A: 0xFF}
	colorOperator = color.RGBA{R: 255, G: 165, B: 0, A: 0xFF}
)

type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type fonts struct {
	label  *symbolFont
	expr   *symbolFont
	result []*symbolFont // largest first
}

func loadFonts() fonts {
	return fonts{
		label: withSymbols(&freemono.Bold9pt7b),
		expr:  withSymbols(&freemono.Regular12pt7b),
		result: []*symbolFont{
			withSymbols(&freemono.Bold18pt7b),
			withSymbols(&freemono.Bold12pt7b),
			withSymbols(&freemono.Bold9pt7b),
		},
	}
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// fitTail drops leading runes from s until it is at most maxW pixels wide.
func fitTail(f tinyfont.Fonter, s string, maxW int) string {
	rs := []rune(s)
	for len(rs) > 0 && textWidth(f, string(rs)) > maxW {
		rs = rs[1:]
	}
	return string(rs)
}

func (t *Task) render() {
	if t.d == nil {
		return
	}
	w := int16(t.fb.Width())
	h := int16(t.fb.Height())
	_ = t.d.FillRectangle(0, 0, w, h, colorBG)

	t.renderExpression()
	t.renderResult()

	_ = t.d.FillRectangle(pad, int16(t.lay.sepY), w-2*pad, 1, colorSep)

	for i, b := range t.lay.buttons {
		t.renderButton(b, i == t.flash && t.flashTicks > 0)
	}
	_ = t.d.Display()
}

func (t *Task) renderExpression() {
	r := t.lay.expr
	_ = t.d.FillRectangle(int16(r.x), int16(r.y), int16(r.w), int16(r.h), colorField)
	_ = t.d.FillRectangle(int16(r.x), int16(r.y+r.h-1), int16(r.w), 1, colorSep)

	f := t.fonts.expr
	s := fitTail(f, t.st.Expression, r.w-2*pad)
	y := int16(r.y) + (int16(r.h)+f.digitHeight())/2
	tinyfont.WriteLine(t.d, f, int16(r.x+pad), y, s, colorDim)
}

func (t *Task) renderResult() {
	r := t.lay.result
	s := t.st.Result
	if s == "" {
		return
	}

	f := t.fonts.result[len(t.fonts.result)-1]
	for _, cand := range t.fonts.result {
		if textWidth(cand, s) <= r.w {
			f = cand
			break
		}
	}
	s = fitTail(f, s, r.w)
	x := int16(r.x) + int16(r.w-textWidth(f, s))/2
	y := int16(r.y) + (int16(r.h)+f.digitHeight())/2
	tinyfont.WriteLine(t.d, f, x, y, s, colorFG)
}

func (t *Task) renderButton(b button, lit bool) {
	bg := buttonColor(b.label)
	if lit {
		bg = lighten(bg)
	}
	_ = t.d.FillRectangle(int16(b.r.x), int16(b.r.y), int16(b.r.w), int16(b.r.h), bg)

	f := t.fonts.label
	x := int16(b.r.x) + int16(b.r.w-textWidth(f, b.label))/2
	y := int16(b.r.y) + (int16(b.r.h)+f.digitHeight())/2
	tinyfont.WriteLine(t.d, f, x, y, b.label, colorFG)
}

func buttonColor(label string) color.RGBA {
	switch label {
	case editor.LabelClear:
		return colorClear
	case editor.LabelEquals:
		return colorEquals
	case editor.LabelAdd, editor.LabelSub, editor.LabelMul, editor.LabelDiv:
		return colorOperator
	default:
		return colorKey
	}
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return v + (0xFF-v)/3 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
