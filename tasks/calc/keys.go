package calc

import (
	"calcpad/editor"
	"calcpad/hal"
)

// keyLabel maps a keyboard event to the button it stands for.
func keyLabel(ev hal.KeyEvent) (string, bool) {
	if !ev.Press {
		return "", false
	}
	switch ev.Code {
	case hal.KeyEnter:
		return editor.LabelEquals, true
	case hal.KeyEscape:
		return editor.LabelClear, true
	case hal.KeyBackspace, hal.KeyDelete:
		return editor.LabelBackspace, true
	}

	r := ev.Rune
	if r >= '0' && r <= '9' {
		return string(r), true
	}
	switch r {
	case '.', ',':
		return editor.LabelDecimal, true
	case '+':
		return editor.LabelAdd, true
	case '-':
		return editor.LabelSub, true
	case '*', 'x', 'X', '×':
		return editor.LabelMul, true
	case '/', '÷':
		return editor.LabelDiv, true
	case '=':
		return editor.LabelEquals, true
	case '%':
		return editor.LabelPercent, true
	case 'c', 'C':
		return editor.LabelClear, true
	case 's', 'S', '^', '²':
		return editor.LabelSquare, true
	case 'n', 'N', '_':
		return editor.LabelToggleSign, true
	}
	return "", false
}
