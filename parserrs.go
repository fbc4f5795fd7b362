package rpn

import (
	"errors"
	"strconv"
)

// Sentinel errors for use with errors.Is. Each error type in this package
// unwraps to one of them.
var (
	ErrMismatchedParens     = errors.New("mismatched parentheses")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInsufficientOperands = errors.New("not enough operands")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrMalformedResult      = errors.New("unexpected stack state")
	ErrInvalidCharacter     = errors.New("invalid character")
)

// CharError is an error indicating a character which cannot begin any token.
// Only strict scanning reports it. It implements InputError.
type CharError struct {
	// Col is the 1-based rune column of the character.
	Col int
	// Char is the invalid character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

func (err *CharError) Unwrap() error {
	return ErrInvalidCharacter
}

// BracketError is an error indicating a parenthesis with no partner. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Paren is the unmatched parenthesis, either ( or ).
	Paren string
}

func (err *BracketError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "open paren with no close paren")
	}
	return errpos(err.Col, "close paren with no open paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParens
}

// TokenError is an error indicating a token that is not a number, an
// operator, or a parenthesis. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token text.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// OperandError is an error indicating an operator evaluated with fewer than
// two values available. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+err.Op+" (have "+strconv.Itoa(err.Have)+", need 2)")
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrInsufficientOperands
}

// DivisionByZeroError is an error indicating a division whose right operand
// is zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// StackError is an error indicating that evaluation finished with other than
// exactly one value, e.g. because the program was empty or had too few
// operators. It implements InputError.
type StackError struct {
	// Col is the position of the last token in the program, or 0 if the
	// program was empty.
	Col int
	// Len is the number of values left after evaluation.
	Len int
}

func (err *StackError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "unexpected stack state: "+strconv.Itoa(err.Len)+" values left")
}

func (err *StackError) Pos() int {
	return err.Col
}

func (err *StackError) Unwrap() error {
	return ErrMalformedResult
}

// errpos is a shortcut to create an error message with a position. A
// position of zero is omitted.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the token that caused the error. For an
	// expression given as a string, it is the 1-based rune column of the
	// start of the token. For an explicit token sequence, it is the 1-based
	// index of the token.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = DomainError{}
)
