package rpn

import "strings"

// Expr is an expression converted to reverse Polish notation. An Expr is
// never modified after Parse returns it, so it is safe to evaluate
// concurrently.
type Expr struct {
	// toks is the infix token sequence.
	toks []lexToken
	// rpn is the program in evaluation order.
	rpn []lexToken
}

// Parse tokenizes an expression and converts it to reverse Polish notation.
// The given options are applied in order. Error positions are rune columns in
// src.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks, err := scanAll(src, p.strict)
	if err != nil {
		return nil, err
	}
	rpn, err := shunt(toks, p.rightpow)
	if err != nil {
		return nil, err
	}
	return &Expr{toks: toks, rpn: rpn}, nil
}

// Tokens returns the infix tokens of the expression.
func (e *Expr) Tokens() []string {
	return texts(e.toks)
}

// RPN returns the tokens of the expression in reverse Polish notation.
func (e *Expr) RPN() []string {
	return texts(e.rpn)
}

// String formats the expression in reverse Polish notation with tokens
// separated by spaces.
func (e *Expr) String() string {
	return strings.Join(e.RPN(), " ")
}

// ShuntingYard converts a sequence of infix tokens, as produced by Tokenize, to
// reverse Polish notation. Operators of equal precedence associate to the
// left; this includes ^. Error positions are 1-based indices into tokens.
//
// The result is a *TokenError if a token is not a number, operator, or
// parenthesis, or a *BracketError if the parentheses are unbalanced.
func ShuntingYard(tokens []string) ([]string, error) {
	rpn, err := shunt(classifyAll(tokens), false)
	if err != nil {
		return nil, err
	}
	return texts(rpn), nil
}

func classifyAll(tokens []string) []lexToken {
	toks := make([]lexToken, len(tokens))
	for i, s := range tokens {
		toks[i] = classify(s, i+1)
	}
	return toks
}

// shunt reorders infix tokens into evaluation order. If rightpow is true, ^
// associates to the right.
func shunt(toks []lexToken, rightpow bool) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	// ops holds pending operators and open parens. The top is the end.
	var ops []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || !popsFor(top.text, tok.text, rightpow) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Paren: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &TokenError{Col: tok.pos, Token: tok.text}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Paren: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// popsFor returns whether the stacked operator top is emitted before op is
// pushed.
func popsFor(top, op string, rightpow bool) bool {
	pt, po := precedence[top], precedence[op]
	if rightpow && op == "^" {
		return pt > po
	}
	return pt >= po
}
