package rpn

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// EvaluateRPNBig is like EvaluateRPN, but it computes with big.Float values
// at prec bits of precision. If prec is 0, the precision is 64.
//
// Because big.Float has no NaN, operations which would produce NaN in
// IEEE-754 arithmetic, such as a negative number to a fractional power or the
// difference of two infinities, fail with a DomainError.
func EvaluateRPNBig(tokens []string, prec uint) (*big.Float, error) {
	return evalBig(classifyAll(tokens), prec)
}

// EvalBig computes the value of the expression at prec bits of precision. If
// prec is 0, the precision is 64.
func (e *Expr) EvalBig(prec uint) (*big.Float, error) {
	return evalBig(e.rpn, prec)
}

func evalBig(prog []lexToken, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = 64
	}
	var (
		stack []*big.Float
		// cur and lhs are the operator being applied and its left operand,
		// for reporting NaN panics.
		cur lexToken
		lhs *big.Float
	)
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		if _, ok := x.(big.ErrNaN); !ok {
			panic(x)
		}
		r, err = nil, DomainError{X: lhs, Func: cur.text, Col: cur.pos}
	}()
	for _, tok := range prog {
		cur = tok
		switch tok.kind {
		case tokenNum:
			v, _, perr := new(big.Float).SetPrec(prec).Parse(tok.text, 10)
			if perr != nil {
				return nil, &TokenError{Col: tok.pos, Token: tok.text}
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return nil, &OperandError{Col: tok.pos, Op: tok.text, Have: len(stack)}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			lhs = a
			v := new(big.Float).SetPrec(prec)
			switch tok.text {
			case "+":
				v.Add(a, b)
			case "-":
				v.Sub(a, b)
			case "*":
				v.Mul(a, b)
			case "/":
				if b.Sign() == 0 {
					return nil, &DivisionByZeroError{Col: tok.pos}
				}
				v.Quo(a, b)
			case "^":
				if err := powBig(v, a, b); err != nil {
					err.Col = tok.pos
					return nil, *err
				}
			default:
				panic("rpn: invalid operator " + tok.text)
			}
			stack = append(stack, v)
		default:
			return nil, &TokenError{Col: tok.pos, Token: tok.text}
		}
	}
	if len(stack) != 1 {
		return nil, &StackError{Col: lastPos(prog), Len: len(stack)}
	}
	return stack[0], nil
}

// powBig sets z to x^y, rounded to z's precision. bigfloat.Pow only handles
// positive bases, so zero and negative bases are handled here.
func powBig(z, x, y *big.Float) *DomainError {
	switch {
	case x.IsInf():
		return &DomainError{X: x, Func: "^"}
	case y.IsInf():
		return &DomainError{X: y, Func: "^"}
	case y.Sign() == 0:
		z.SetInt64(1)
	case x.Sign() == 0:
		if y.Sign() > 0 {
			z.SetInt64(0)
		} else {
			z.SetInf(false)
		}
	case x.Sign() < 0:
		if !y.IsInt() {
			return &DomainError{X: x, Func: "^"}
		}
		n, _ := y.Int(nil)
		z.Set(powPos(z.Prec(), new(big.Float).Neg(x), y))
		if n.Bit(0) != 0 {
			z.Neg(z)
		}
	default:
		z.Set(powPos(z.Prec(), x, y))
	}
	return nil
}

// powPos computes x^y for x > 0. bigfloat.Pow does not always store its result
// in its first argument, and it may leave that argument at a higher
// precision, so only the returned value is meaningful.
func powPos(prec uint, x, y *big.Float) *big.Float {
	return bigfloat.Pow(new(big.Float).SetPrec(prec), x, y)
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain. DomainError unwraps to big.ErrNaN. It implements
// InputError.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Func is the operator.
	Func string
	// Col is the position of the operator.
	Col int
}

func (err DomainError) Error() string {
	r := "operand"
	if err.X != nil {
		r = err.X.String()
	}
	r += " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err DomainError) Pos() int {
	return err.Col
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}
