package rpn

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	// tokenNone is text that is not a number, operator, or parenthesis.
	tokenNone tokenKind = iota
	// tokenNum is a decimal literal, possibly negative.
	tokenNum
	// tokenOp is one of Operators.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// classify determines the kind of a token supplied as text. pos is recorded
// for error messages.
func classify(text string, pos int) lexToken {
	tok := lexToken{text: text, pos: pos}
	switch {
	case text == "(":
		tok.kind = tokenOpen
	case text == ")":
		tok.kind = tokenClose
	case len(text) == 1 && strings.Contains(Operators, text):
		tok.kind = tokenOp
	case isNumber(text):
		tok.kind = tokenNum
	}
	return tok
}

// isNumber reports whether s is a numeric literal with a finite value.
func isNumber(s string) bool {
	return isLiteral(s) && finite(s)
}

// isLiteral reports whether s is exactly a numeric literal as the lexer would
// produce it: an optional minus, digits, and an optional fraction.
func isLiteral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	n := digits(s)
	if n == 0 {
		return false
	}
	s = s[n:]
	if s == "" {
		return true
	}
	if s[0] != '.' {
		return false
	}
	s = s[1:]
	n = digits(s)
	return n > 0 && n == len(s)
}

// finite reports whether the literal s is within the range of float64.
// Literals that overflow are not numbers.
func finite(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(v, 0)
}

// digits returns the length of the run of ASCII digits at the start of s.
func digits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return len(s)
}

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the number of runes consumed.
	col int
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// peek returns the byte at off+k, or 0 if that is past the end of the input.
func (l *lexer) peek(k int) byte {
	if l.off+k >= len(l.src) {
		return 0
	}
	return l.src[l.off+k]
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF. An unrecognized rune is consumed and
// returned as a tokenNone with a *CharError, so that callers may skip it and
// continue scanning.
func (l *lexer) next() (lexToken, error) {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		tok := lexToken{pos: l.col + 1}
		switch {
		case unicode.IsSpace(r):
			l.off += sz
			l.col++
			continue
		case r == '-' && isDigit(l.peek(1)), r < utf8.RuneSelf && isDigit(byte(r)):
			tok.text = l.scanNum()
			// A literal too large for float64 is still one token, but it
			// is not a number.
			if finite(tok.text) {
				tok.kind = tokenNum
			}
			return tok, nil
		case r == '(':
			tok.kind = tokenOpen
		case r == ')':
			tok.kind = tokenClose
		case r < utf8.RuneSelf && strings.IndexByte(Operators, byte(r)) >= 0:
			tok.kind = tokenOp
		default:
			l.off += sz
			l.col++
			return tok, &CharError{Col: tok.pos, Char: r}
		}
		tok.text = l.src[l.off : l.off+sz]
		l.off += sz
		l.col++
		return tok, nil
	}
	return lexToken{}, io.EOF
}

// scanNum consumes a number starting at the current offset. The caller has
// checked that the number has at least one digit.
func (l *lexer) scanNum() string {
	start := l.off
	if l.src[l.off] == '-' {
		l.off++
	}
	l.off += digits(l.src[l.off:])
	// A dot only belongs to the number if a digit follows it.
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.off++
		l.off += digits(l.src[l.off:])
	}
	// Numbers are all ASCII, so bytes and runes coincide.
	l.col += l.off - start
	return l.src[start:l.off]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Tokenize splits an expression into number, operator, and parenthesis tokens
// in order. Whitespace separates tokens and is discarded. Any other character
// is silently dropped; use Scan to reject such input instead.
//
// A minus sign immediately followed by a digit always begins a negative
// number, even where it could be read as subtraction. "3 * -4" tokenizes as
// ["3" "*" "-4"], and "5-3" tokenizes as ["5" "-3"]. Write "5 - 3" to
// subtract.
func Tokenize(expr string) []string {
	// Permissive scanning never fails.
	toks, _ := scanAll(expr, false)
	return texts(toks)
}

// Scan is like Tokenize, but it returns a *CharError for the first character
// that is not part of any token or whitespace.
func Scan(expr string) ([]string, error) {
	toks, err := scanAll(expr, true)
	if err != nil {
		return nil, err
	}
	return texts(toks), nil
}

// scanAll lexes all of src. If strict is false, unrecognized characters are
// dropped.
func scanAll(src string, strict bool) ([]lexToken, error) {
	var r []lexToken
	l := lex(src)
	for {
		tok, err := l.next()
		switch {
		case err == io.EOF:
			return r, nil
		case err != nil && strict:
			return nil, err
		case err != nil:
			continue
		}
		r = append(r, tok)
	}
}

func texts(toks []lexToken) []string {
	if toks == nil {
		return nil
	}
	r := make([]string, len(toks))
	for i, tok := range toks {
		r[i] = tok.text
	}
	return r
}
