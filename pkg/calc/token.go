package calc

import (
	"fmt"
	"math/big"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	NUMBER TokenType = iota // integer literal, sign already applied

	// Binary operators
	ADD // +
	SUB // -
	MUL // *
	DIV // /

	// Grouping
	LPAREN // (
	RPAREN // )
)

var tokenNames = [...]string{
	NUMBER: "NUMBER",
	ADD:    "ADD",
	SUB:    "SUB",
	MUL:    "MUL",
	DIV:    "DIV",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsOperator reports whether tt is one of the four binary operators.
func (tt TokenType) IsOperator() bool {
	return tt == ADD || tt == SUB || tt == MUL || tt == DIV
}

// IsBracket reports whether tt is a grouping delimiter.
func (tt TokenType) IsBracket() bool {
	return tt == LPAREN || tt == RPAREN
}

// bracketPrecedence is above every operator. It only stops the converter from
// popping past a bracket; operators are never reordered by it.
const bracketPrecedence = 6

// Precedence ranks how tightly an operator binds. Multiplication and division
// bind tighter than addition and subtraction.
func (tt TokenType) Precedence() int {
	switch tt {
	case MUL, DIV:
		return 3
	case ADD, SUB:
		return 2
	case LPAREN, RPAREN:
		return bracketPrecedence
	}
	return 0
}

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Type   TokenType
	Lexeme string   // source text; signed for numbers ("-3")
	Value  *big.Int // set only for NUMBER
	Pos    int      // 0-based rune column where the token starts
}

func (t Token) String() string {
	if t.Type == NUMBER {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return t.Type.String()
}

func numberToken(v *big.Int, pos int) Token {
	return Token{Type: NUMBER, Lexeme: v.String(), Value: v, Pos: pos}
}

var lexemes = map[TokenType]string{
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	LPAREN: "(",
	RPAREN: ")",
}

func symbolToken(tt TokenType, pos int) Token {
	return Token{Type: tt, Lexeme: lexemes[tt], Pos: pos}
}
