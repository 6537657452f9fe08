package calc

import (
	"fmt"
	"math/big"
)

// EvalPostfix reduces a postfix token stream to a single integer using an
// operand stack. Exactly one value must remain once every token is consumed.
func EvalPostfix(postfix []Token) (*big.Int, error) {
	if len(postfix) == 0 {
		return nil, ErrEmptyExpression
	}

	var operands stack[*big.Int]
	for _, tok := range postfix {
		switch {
		case tok.Type == NUMBER:
			operands.Push(tok.Value)

		case tok.Type.IsOperator():
			// Right operand is on top.
			right, ok := operands.Pop()
			if !ok {
				return nil, fmt.Errorf("%w: %q at column %d has no right operand", ErrStackUnderflow, tok.Lexeme, tok.Pos+1)
			}
			left, ok := operands.Pop()
			if !ok {
				return nil, fmt.Errorf("%w: %q at column %d has no left operand", ErrStackUnderflow, tok.Lexeme, tok.Pos+1)
			}
			v, err := apply(tok.Type, left, right)
			if err != nil {
				return nil, fmt.Errorf("%w at column %d", err, tok.Pos+1)
			}
			operands.Push(v)

		default:
			return nil, fmt.Errorf("%w: %q at column %d in postfix input", ErrMismatchedBracket, tok.Lexeme, tok.Pos+1)
		}
	}

	if operands.Len() > 1 {
		return nil, fmt.Errorf("%w: %d values left on the stack", ErrTrailingOperands, operands.Len())
	}
	v, _ := operands.Pop()
	return v, nil
}

// apply computes left op right into a fresh value, reporting overflow of the
// 128-bit range instead of wrapping. The operands are never modified.
func apply(op TokenType, left, right *big.Int) (*big.Int, error) {
	v := new(big.Int)
	switch op {
	case ADD:
		v.Add(left, right)
	case SUB:
		v.Sub(left, right)
	case MUL:
		v.Mul(left, right)
	case DIV:
		if right.Sign() == 0 {
			return nil, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, left)
		}
		// Quo truncates toward zero; Div would round toward negative infinity.
		v.Quo(left, right)
	default:
		return nil, fmt.Errorf("unknown operator %s", op)
	}
	if !inRange(v) {
		return nil, fmt.Errorf("%w: %d %s %d", ErrIntegerOverflow, left, lexemes[op], right)
	}
	return v, nil
}
