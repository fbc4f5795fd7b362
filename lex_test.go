package rpn

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-1", kind: tokenNum, pos: 1}}, 0},
		{"-1.25", []lexToken{{text: "-1.25", kind: tokenNum, pos: 1}}, 0},
		{"1.", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}}, 1},
		{".5", []lexToken{{pos: 1}, {text: "5", kind: tokenNum, pos: 2}}, 1},
		{"1.2.3", []lexToken{{text: "1.2", kind: tokenNum, pos: 1}, {pos: 4}, {text: "3", kind: tokenNum, pos: 5}}, 1},
		{"- 1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 3}}, 0},
		{strings.Repeat("9", 400), []lexToken{{text: strings.Repeat("9", 400), pos: 1}}, 0},
		{"1-1", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "-1", kind: tokenNum, pos: 2}}, 0},
		{"1--1", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-1", kind: tokenNum, pos: 3}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"*/^", []lexToken{{text: "*", kind: tokenOp, pos: 1}, {text: "/", kind: tokenOp, pos: 2}, {text: "^", kind: tokenOp, pos: 3}}, 0},
		// parens
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"-(1)", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}, {text: "1", kind: tokenNum, pos: 3}, {text: ")", kind: tokenClose, pos: 4}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"1$", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}}, 1},
		{"$1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 1},
		{"π1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
		{"x y", []lexToken{{pos: 1}, {pos: 3}}, 2},
	}

	for _, c := range cases {
		scan := lex(c.src)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			if c.errs > 0 {
				c.errs--
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"spaces", "   ", nil},
		{"sum", "3 + 5", []string{"3", "+", "5"}},
		{"sample", "-3 + 5 * (2 - 8)", []string{"-3", "+", "5", "*", "(", "2", "-", "8", ")"}},
		{"neg-operand", "3 * -4", []string{"3", "*", "-4"}},
		{"unspaced-minus", "5-3", []string{"5", "-3"}},
		{"decimal", "1.5^2", []string{"1.5", "^", "2"}},
		{"dropped", "2 $ 3 # 4", []string{"2", "3", "4"}},
		{"letters", "2x", []string{"2"}},
		{"tabs", "1\t*\n2", []string{"1", "*", "2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			if len(got) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wrong tokens for %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestScan(t *testing.T) {
	got, err := Scan("-3 + 5 * (2 - 8)")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-3", "+", "5", "*", "(", "2", "-", "8", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}

	cases := []struct {
		src  string
		col  int
		char rune
	}{
		{"2 $ 3", 3, '$'},
		{"x", 1, 'x'},
		{"1 + 2 π", 7, 'π'},
		{"1.", 2, '.'},
	}
	for _, c := range cases {
		got, err := Scan(c.src)
		if got != nil {
			t.Errorf("%q: non-nil tokens %q with error", c.src, got)
		}
		var ce *CharError
		if !errors.As(err, &ce) {
			t.Errorf("%q: wrong error type: want *CharError, got %T (%v)", c.src, err, err)
			continue
		}
		if ce.Col != c.col || ce.Char != c.char {
			t.Errorf("%q: want error at %d for %q, got %d for %q", c.src, c.col, c.char, ce.Col, ce.Char)
		}
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("%q: %v does not unwrap to ErrInvalidCharacter", c.src, err)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		kind tokenKind
	}{
		{"0", tokenNum},
		{"-0", tokenNum},
		{"12.50", tokenNum},
		{"-12.50", tokenNum},
		{"1" + strings.Repeat("0", 308), tokenNum},
		{"1" + strings.Repeat("0", 309), tokenNone},
		{"-1" + strings.Repeat("0", 309), tokenNone},
		{"0." + strings.Repeat("0", 400) + "1", tokenNum},
		{"+", tokenOp},
		{"-", tokenOp},
		{"*", tokenOp},
		{"/", tokenOp},
		{"^", tokenOp},
		{"(", tokenOpen},
		{")", tokenClose},
		{"", tokenNone},
		{"1.", tokenNone},
		{".5", tokenNone},
		{"--1", tokenNone},
		{"1e3", tokenNone},
		{"inf", tokenNone},
		{"NaN", tokenNone},
		{"0x10", tokenNone},
		{"++", tokenNone},
		{"%", tokenNone},
		{" 1", tokenNone},
	}
	for _, c := range cases {
		if got := classify(c.text, 1); got.kind != c.kind {
			t.Errorf("classify(%q): want %v, got %v", c.text, c.kind, got.kind)
		}
	}
}
