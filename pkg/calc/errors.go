package calc

import "errors"

// Errors reported by the expression engine. They are wrapped with position
// details, so compare with errors.Is.
var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrIntegerOverflow     = errors.New("integer overflow")
	ErrMismatchedBracket   = errors.New("mismatched bracket")
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrTrailingOperands    = errors.New("trailing operands")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrEmptyExpression     = errors.New("empty expression")
)
