package calc

import (
	"fmt"
	"strings"
)

// ToPostfix reorders an infix token stream into postfix (reverse Polish)
// order with the shunting-yard algorithm. Brackets are consumed as structure
// and never appear in the result. An incoming operator pops every stacked
// operator of equal or higher precedence, stopping at a bracket.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var work stack[Token]

	for _, tok := range tokens {
		switch {
		case tok.Type == NUMBER:
			out = append(out, tok)

		case tok.Type.IsOperator():
			// Pop while the top binds at least as tightly. A bracket on top
			// stops the popping.
			for {
				top, ok := work.Peek()
				if !ok || !top.Type.IsOperator() || top.Type.Precedence() < tok.Type.Precedence() {
					break
				}
				work.Pop()
				out = append(out, top)
			}
			work.Push(tok)

		case tok.Type == LPAREN:
			work.Push(tok)

		case tok.Type == RPAREN:
			for {
				top, ok := work.Pop()
				if !ok {
					return out, fmt.Errorf("%w: ')' at column %d has no matching '('", ErrMismatchedBracket, tok.Pos+1)
				}
				if top.Type == LPAREN {
					break
				}
				out = append(out, top)
			}

		default:
			return out, fmt.Errorf("unknown token %s at column %d", tok.Type, tok.Pos+1)
		}
	}

	for {
		top, ok := work.Pop()
		if !ok {
			break
		}
		if top.Type == LPAREN {
			return out, fmt.Errorf("%w: '(' at column %d is never closed", ErrMismatchedBracket, top.Pos+1)
		}
		out = append(out, top)
	}
	return out, nil
}

// FormatTokens renders tokens as their lexemes separated by single spaces,
// e.g. "1 2 3 * +" for a postfix stream.
func FormatTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Lexeme
	}
	return strings.Join(parts, " ")
}
