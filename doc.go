// Package rpn evaluates arithmetic expressions by converting them to reverse
// Polish notation.
//
// Evaluation is three steps, each available on its own. Tokenize splits a
// string like "-3 + 5 * (2 - 8)" into numbers, the operators + - * / ^, and
// parentheses. ShuntingYard reorders those tokens so that each operator
// follows its operands, giving "-3 5 2 8 - * +". EvaluateRPN runs that
// program on a stack of float64 values. Parse performs the first two steps
// at once and returns an Expr that can be evaluated any number of times.
//
// A minus sign directly before a digit is part of the number, so "3 * -4" is
// a product of 3 and -4. The same rule means that "5-3" is two numbers
// rather than a subtraction; put spaces around binary minus.
//
// ^ binds tightest, then * and /, then + and -. Operators of equal precedence
// associate to the left, including ^, so "2 ^ 3 ^ 2" is 64. The RightAssocPow
// option gives the conventional "2 ^ (3 ^ 2)" instead.
//
// Nothing in this package holds state between calls, so all functions are
// safe for concurrent use.
package rpn
