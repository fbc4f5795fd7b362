package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEvalString(f *testing.F) {
	f.Add("-3 + 5 * (2 - 8)")
	f.Add("1 / 0")
	f.Add("((2")
	f.Add("2 ^ 0.5 ^ -1")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := rpn.Parse(s)
		if err != nil {
			return
		}
		e.Eval()
		e.EvalBig(32)
		e.Infix()
	})
}
