package expr

import "fmt"

// Op is a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

// String returns the ASCII form of the operator.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

func (op Op) precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

const (
	negPrecedence    = 3
	atomicPrecedence = 4
)

// Node is an immutable expression tree.
type Node interface {
	// Eval computes the value of the subtree.
	Eval() (float64, error)

	// String returns the expression with the minimal parentheses needed to reparse it.
	String() string

	precedence() int
}

// Literal is a numeric constant.
type Literal float64

func (n Literal) Eval() (float64, error) { return float64(n), nil }

func (n Literal) String() string { return Format(float64(n)) }

func (n Literal) precedence() int {
	if n < 0 {
		return negPrecedence
	}
	return atomicPrecedence
}

// Negate is unary minus.
type Negate struct {
	X Node
}

func (n Negate) Eval() (float64, error) {
	v, err := n.X.Eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n Negate) String() string {
	if n.X.precedence() < negPrecedence {
		return "-(" + n.X.String() + ")"
	}
	return "-" + n.X.String()
}

func (n Negate) precedence() int { return negPrecedence }

// Binary applies Op to two operands.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (n Binary) Eval() (float64, error) {
	a, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	b, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, fmt.Errorf("%w: %w", ErrEval, ErrDivisionByZero)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %d", ErrEval, n.Op)
	}
}

func (n Binary) String() string {
	prec := n.Op.precedence()
	left := n.Left.String()
	if n.Left.precedence() < prec {
		left = "(" + left + ")"
	}
	// Operators are left-associative, so an equal-precedence right operand needs parentheses.
	right := n.Right.String()
	if n.Right.precedence() <= prec {
		right = "(" + right + ")"
	}
	return left + n.Op.String() + right
}

func (n Binary) precedence() int { return n.Op.precedence() }
