package calc

import "calcpad/editor"

// keypad is the button grid, top to bottom.
var keypad = [][]string{
	{editor.LabelClear, editor.LabelToggleSign, editor.LabelPercent, editor.LabelDiv},
	{"7", "8", "9", editor.LabelMul},
	{"4", "5", "6", editor.LabelSub},
	{"1", "2", "3", editor.LabelAdd},
	{editor.LabelSquare, "0", editor.LabelDecimal, editor.LabelEquals},
}

const (
	pad          = 6
	exprHeight   = 28
	resultHeight = 48
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type button struct {
	label string
	r     rect
}

type layout struct {
	expr     rect
	result   rect
	sepY     int
	buttons  []button
	viewable bool
}

func newLayout(width, height int) layout {
	var l layout
	l.expr = rect{x: pad, y: pad, w: width - 2*pad, h: exprHeight}
	l.result = rect{x: pad, y: l.expr.y + exprHeight, w: width - 2*pad, h: resultHeight}
	l.sepY = l.result.y + resultHeight + pad/2

	rows := len(keypad)
	cols := len(keypad[0])
	top := l.sepY + pad/2 + 1
	cellW := (width - pad*(cols+1)) / cols
	cellH := (height - top - pad*rows) / rows
	if cellW <= 0 || cellH <= 0 {
		return l
	}
	l.viewable = true

	for row, labels := range keypad {
		for col, label := range labels {
			l.buttons = append(l.buttons, button{
				label: label,
				r: rect{
					x: pad + col*(cellW+pad),
					y: top + row*(cellH+pad),
					w: cellW,
					h: cellH,
				},
			})
		}
	}
	return l
}

// hit returns the index of the button under (x, y).
func (l layout) hit(x, y int) (int, bool) {
	for i, b := range l.buttons {
		if b.r.contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

func (l layout) index(label string) int {
	for i, b := range l.buttons {
		if b.label == label {
			return i
		}
	}
	return -1
}
