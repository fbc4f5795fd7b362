package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/zephyrtronium/rpn"
)

type options struct {
	prec       uint
	format     string
	strict     bool
	rightAssoc bool
	quiet      bool
	echo       bool
	dump       bool
	file       string
}

func (o *options) parseOpts() []rpn.ParseOption {
	var opts []rpn.ParseOption
	if o.strict {
		opts = append(opts, rpn.Strict())
	}
	if o.rightAssoc {
		opts = append(opts, rpn.RightAssocPow())
	}
	return opts
}

// runAll evaluates the batch file, if any, and then each expression in args.
// A failing expression is reported to errw and does not stop the others.
func (o *options) runAll(out, errw io.Writer, args []string) error {
	failed := false
	if o.file != "" {
		cases, err := loadBatch(o.file)
		if err != nil {
			return err
		}
		for _, c := range cases {
			if !o.check(out, c) {
				failed = true
			}
		}
	}
	if len(args) == 0 && o.file == "" {
		args = []string{sample}
	}
	for _, src := range args {
		if err := o.run(out, src); err != nil {
			fmt.Fprintln(errw, color.RedString("An error occurred:"), err)
			failed = true
		}
		if !o.quiet {
			fmt.Fprintln(out)
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// run evaluates one expression, printing each stage.
func (o *options) run(out io.Writer, src string) error {
	if !o.quiet {
		fmt.Fprintln(out, "Expression:", src)
		toks := rpn.Tokenize(src)
		if o.strict {
			var err error
			if toks, err = rpn.Scan(src); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Tokens: %q\n", toks)
	}
	e, err := rpn.Parse(src, o.parseOpts()...)
	if err != nil {
		return err
	}
	if !o.quiet {
		fmt.Fprintf(out, "RPN: %q\n", e.RPN())
	}
	if o.echo {
		fmt.Fprintln(out, "Infix:", e.Infix())
	}
	if o.dump {
		spew.Fdump(out, e)
	}
	r, err := o.eval(e)
	if err != nil {
		return err
	}
	if !o.quiet {
		fmt.Fprint(out, "Output: ")
	}
	fmt.Fprintf(out, o.format+"\n", r)
	return nil
}

// eval evaluates e with float64 or at the configured precision. The result
// is a float64 or a *big.Float.
func (o *options) eval(e *rpn.Expr) (interface{}, error) {
	if o.prec == 0 {
		return e.Eval()
	}
	return e.EvalBig(o.prec)
}

// evalFloat is like eval but always produces a float64.
func (o *options) evalFloat(e *rpn.Expr) (float64, error) {
	r, err := o.eval(e)
	if err != nil {
		return 0, err
	}
	switch r := r.(type) {
	case float64:
		return r, nil
	case *big.Float:
		f, _ := r.Float64()
		return f, nil
	default:
		panic(fmt.Sprintf("unexpected result type %T", r))
	}
}
