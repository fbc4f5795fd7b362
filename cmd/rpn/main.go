package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// sample is evaluated when no expressions are given.
const sample = "-3 + 5 * (2 - 8)"

// errFailed is returned from the command when any expression failed after
// its error has already been shown.
var errFailed = errors.New("some expressions failed")

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "rpn [expression...]",
		Short: "Evaluate arithmetic expressions through reverse Polish notation",
		Long: `rpn evaluates arithmetic expressions with + - * / ^ and parentheses.

Each expression is tokenized, converted to reverse Polish notation with the
shunting-yard algorithm, and evaluated on a stack. Every stage is printed.
A minus sign directly before a digit belongs to the number, so write
"5 - 3" rather than "5-3" to subtract.

With no expressions and no batch file, rpn evaluates the sample
"` + sample + `".

Examples:
  rpn "3 + 5 * 2"
  rpn -q -p 256 "1 / 3"
  rpn --right-assoc --echo "2 ^ 3 ^ 2"
  rpn -f cases.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runAll(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	f := cmd.Flags()
	f.UintVarP(&o.prec, "prec", "p", 0, "bits of precision; 0 evaluates with float64")
	f.StringVar(&o.format, "fmt", "%g", "result formatting verb")
	f.BoolVar(&o.strict, "strict", false, "reject characters that are not part of any token")
	f.BoolVar(&o.rightAssoc, "right-assoc", false, "make ^ right-associative")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "print only results")
	f.BoolVar(&o.echo, "echo", false, "print the fully parenthesized expression")
	f.BoolVar(&o.dump, "dump", false, "dump the parsed expression for debugging")
	f.StringVarP(&o.file, "file", "f", "", "YAML file of expressions with expected results")
	return cmd
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if errors.Cause(err) != errFailed {
			log.Print(err)
		}
		os.Exit(1)
	}
}
