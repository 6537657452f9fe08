// Package calc evaluates single-line integer arithmetic expressions.
//
// A line goes through three stages: Tokenize turns text into tokens and
// resolves sign runs such as "--3", ToPostfix reorders the tokens with the
// shunting-yard algorithm, and EvalPostfix reduces the postfix stream on an
// operand stack. Evaluate chains the three. Nothing is shared between calls.
package calc

import "math/big"

// Evaluate computes the value of one line of expression text using the
// default Options. The result always fits in a signed 128-bit integer.
func Evaluate(line string) (*big.Int, error) {
	return EvaluateOptions(line, Options{})
}

// EvaluateOptions computes the value of one line of expression text.
func EvaluateOptions(line string, opts Options) (*big.Int, error) {
	tokens, err := Tokenize(line, opts)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return EvalPostfix(postfix)
}
