package rpn

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for one call to Parse.
type parsectx struct {
	// strict causes characters outside any token to be errors instead of
	// being dropped.
	strict bool
	// rightpow makes ^ right-associative.
	rightpow bool
}

type (
	strictopt   struct{}
	rightpowopt struct{}
)

// Strict causes Parse to fail with a *CharError on any character that is not
// part of a token or whitespace, as Scan does. By default, such characters
// are dropped, as Tokenize does.
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// RightAssocPow makes ^ right-associative, so that "2 ^ 3 ^ 2" is
// "2 ^ (3 ^ 2)". By default, all operators including ^ are left-associative
// and the same expression is "(2 ^ 3) ^ 2".
func RightAssocPow() ParseOption {
	return rightpowopt{}
}

func (rightpowopt) parseOption(p parsectx) parsectx {
	p.rightpow = true
	return p
}
