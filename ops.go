package rpn

import "math"

// Operators contains the binary operators understood in expressions. Each is
// a single byte.
const Operators = "+-*/^"

// precedence maps each operator to its binding strength. Higher binds tighter.
// It is never modified after initialization.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"^": 3,
}

// Precedence returns the binding strength of an operator: 1 for + and -, 2 for
// * and /, and 3 for ^. The result is 0 if op is not an operator.
func Precedence(op string) int {
	return precedence[op]
}

// apply computes a op b. The operator must already be known to be valid, and
// division by zero must already have been rejected.
func apply(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case "^":
		return math.Pow(a, b)
	default:
		panic("rpn: invalid operator " + op)
	}
}
