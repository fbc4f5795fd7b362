package rpn

import "strconv"

// EvaluateRPN computes the value of a program in reverse Polish notation, as
// produced by ShuntingYard. Error positions are 1-based indices into tokens.
//
// Arithmetic is IEEE-754 double precision. Division by exactly zero is an
// error, but other operations producing NaN or infinity, such as a negative
// number to a fractional power, are not.
func EvaluateRPN(tokens []string) (float64, error) {
	return evalRPN(classifyAll(tokens))
}

// Eval computes the value of the expression.
func (e *Expr) Eval() (float64, error) {
	return evalRPN(e.rpn)
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

func evalRPN(prog []lexToken) (float64, error) {
	stack := make([]float64, 0, len(prog)/2+1)
	for _, tok := range prog {
		switch tok.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return 0, &TokenError{Col: tok.pos, Token: tok.text}
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Op: tok.text, Have: len(stack)}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if tok.text == "/" && b == 0 {
				return 0, &DivisionByZeroError{Col: tok.pos}
			}
			stack = append(stack, apply(tok.text, a, b))
		default:
			// Parens never reach a program from shunt, but callers of
			// EvaluateRPN may supply anything.
			return 0, &TokenError{Col: tok.pos, Token: tok.text}
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Col: lastPos(prog), Len: len(stack)}
	}
	return stack[0], nil
}

// lastPos returns the position of the last token in prog, or 0 if it is
// empty.
func lastPos(prog []lexToken) int {
	if len(prog) == 0 {
		return 0
	}
	return prog[len(prog)-1].pos
}
