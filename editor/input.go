package editor

import "calcpad/expr"

// Key identifies a calculator button.
type Key uint8

const (
	KeyClear Key = iota + 1
	KeyToggleSign
	KeyPercent
	KeySquare
	KeyDecimal
	KeyOperator
	KeyDigit
	KeyEquals
	KeyBackspace
)

// Input is one decoded button press. Op is set for KeyOperator, Digit for KeyDigit.
type Input struct {
	Key   Key
	Op    expr.Op
	Digit byte
}

var (
	Clear      = Input{Key: KeyClear}
	ToggleSign = Input{Key: KeyToggleSign}
	Percent    = Input{Key: KeyPercent}
	Square     = Input{Key: KeySquare}
	Decimal    = Input{Key: KeyDecimal}
	Equals     = Input{Key: KeyEquals}
	Backspace  = Input{Key: KeyBackspace}
)

// Digit returns the input for a digit button. d must be '0'..'9'.
func Digit(d byte) Input { return Input{Key: KeyDigit, Digit: d} }

// Operator returns the input for an operator button.
func Operator(op expr.Op) Input { return Input{Key: KeyOperator, Op: op} }

// Button labels as printed on the keypad.
const (
	LabelClear      = "C"
	LabelToggleSign = "+/-"
	LabelPercent    = "%"
	LabelSquare     = "x²"
	LabelDecimal    = "."
	LabelEquals     = "="
	LabelBackspace  = "⌫"
	LabelAdd        = "+"
	LabelSub        = "-"
	LabelMul        = "×"
	LabelDiv        = "÷"
)

// Glyph returns the display glyph stored in the expression buffer for op.
func Glyph(op expr.Op) string {
	switch op {
	case expr.OpAdd:
		return LabelAdd
	case expr.OpSub:
		return LabelSub
	case expr.OpMul:
		return LabelMul
	case expr.OpDiv:
		return LabelDiv
	default:
		return ""
	}
}

// Parse decodes a button label. ASCII '*' and '/' are accepted as operator aliases.
func Parse(label string) (Input, bool) {
	switch label {
	case LabelClear:
		return Clear, true
	case LabelToggleSign:
		return ToggleSign, true
	case LabelPercent:
		return Percent, true
	case LabelSquare:
		return Square, true
	case LabelDecimal:
		return Decimal, true
	case LabelEquals:
		return Equals, true
	case LabelBackspace:
		return Backspace, true
	case LabelAdd:
		return Operator(expr.OpAdd), true
	case LabelSub:
		return Operator(expr.OpSub), true
	case LabelMul, "*":
		return Operator(expr.OpMul), true
	case LabelDiv, "/":
		return Operator(expr.OpDiv), true
	}
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Digit(label[0]), true
	}
	return Input{}, false
}

// String returns the label of the button that produces in.
func (in Input) String() string {
	switch in.Key {
	case KeyClear:
		return LabelClear
	case KeyToggleSign:
		return LabelToggleSign
	case KeyPercent:
		return LabelPercent
	case KeySquare:
		return LabelSquare
	case KeyDecimal:
		return LabelDecimal
	case KeyEquals:
		return LabelEquals
	case KeyBackspace:
		return LabelBackspace
	case KeyOperator:
		return Glyph(in.Op)
	case KeyDigit:
		return string(rune(in.Digit))
	default:
		return "?"
	}
}
