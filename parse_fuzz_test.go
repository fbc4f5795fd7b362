package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzShuntingYard(f *testing.F) {
	f.Add("-3 + 5 * (2 - 8)")
	f.Add("1 +* 2")
	f.Add(")(")
	f.Fuzz(func(t *testing.T, s string) {
		toks := rpn.Tokenize(s)
		prog, err := rpn.ShuntingYard(toks)
		if err != nil {
			return
		}
		// Conversion only reorders tokens and removes parentheses.
		n := 0
		for _, tok := range toks {
			if tok != "(" && tok != ")" {
				n++
			}
		}
		if len(prog) != n {
			t.Errorf("%q: %d non-paren tokens became %d: %q", s, n, len(prog), prog)
		}
		for _, tok := range prog {
			if tok == "(" || tok == ")" {
				t.Errorf("%q: paren in output %q", s, prog)
			}
		}
	})
}
