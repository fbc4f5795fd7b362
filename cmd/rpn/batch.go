package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/rpn"
)

// batchYaml is the layout of a batch file:
//
//	cases:
//	  - expr: 3 + 5 * 2
//	    want: 13
//	  - expr: 1 / (2 - 2)
//	    error: division by zero
type batchYaml struct {
	Cases []batchCase
}

// batchCase is one expression and what it should produce. If Error is set,
// evaluation must fail with a message containing it. Otherwise, if Want is
// set, the result must be within a relative 1e-9 of it.
type batchCase struct {
	Expr  string
	Want  *float64
	Error string
}

func loadBatch(path string) ([]batchCase, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading batch file %s", path)
	}
	var f batchYaml
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing batch file %s", path)
	}
	for i, c := range f.Cases {
		if c.Want != nil && c.Error != "" {
			return nil, errors.Errorf("batch file %s: case %d (%q) has both want and error", path, i+1, c.Expr)
		}
	}
	return f.Cases, nil
}

// check evaluates a batch case and reports whether it met its expectation.
func (o *options) check(out io.Writer, c batchCase) bool {
	r, err := o.evalString(c.Expr)
	var ok bool
	var msg string
	switch {
	case c.Error != "" && err == nil:
		msg = fmt.Sprintf("want error %q, got %g", c.Error, r)
	case c.Error != "":
		ok = strings.Contains(err.Error(), c.Error)
		msg = err.Error()
		if !ok {
			msg = fmt.Sprintf("want error %q, got %q", c.Error, msg)
		}
	case err != nil:
		msg = err.Error()
	case c.Want != nil:
		ok = near(r, *c.Want)
		msg = fmt.Sprintf(o.format, r)
		if !ok {
			msg = fmt.Sprintf("want %g, got %s", *c.Want, msg)
		}
	default:
		ok = true
		msg = fmt.Sprintf(o.format, r)
	}
	status := color.GreenString("PASS")
	if !ok {
		status = color.RedString("FAIL")
	}
	fmt.Fprintf(out, "%s  %s: %s\n", status, c.Expr, msg)
	return ok
}

func (o *options) evalString(src string) (float64, error) {
	e, err := rpn.Parse(src, o.parseOpts()...)
	if err != nil {
		return 0, err
	}
	return o.evalFloat(e)
}

// near reports whether got is within a relative 1e-9 of want. NaN is near
// only NaN.
func near(got, want float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	}
	return math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want))
}
