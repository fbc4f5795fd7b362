package rpn

import "strings"

// Infix formats the expression in infix notation with every operation
// parenthesized, e.g. "(1 + (2 * 3))" for "1 + 2 * 3". This shows how
// precedence and associativity grouped the operands. A malformed program,
// which Parse never produces, has its leftover parts marked with $.
func (e *Expr) Infix() string {
	return infix(e.rpn)
}

func infix(prog []lexToken) string {
	var stack []string
	for _, tok := range prog {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, tok.text)
		case tokenOp:
			if len(stack) < 2 {
				stack = append(stack, "$"+tok.text+"$")
				continue
			}
			var b strings.Builder
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			b.WriteByte('(')
			b.WriteString(l)
			b.WriteByte(' ')
			b.WriteString(tok.text)
			b.WriteByte(' ')
			b.WriteString(r)
			b.WriteByte(')')
			stack = append(stack, b.String())
		default:
			stack = append(stack, "$"+tok.text+"$")
		}
	}
	if len(stack) == 1 {
		return stack[0]
	}
	return "$" + strings.Join(stack, "#") + "$"
}
