package calc

import (
	"fmt"
	"math/big"
	"unicode"
)

// Options configures how a line is tokenized.
type Options struct {
	// IgnoreUnknown drops runes outside the expression alphabet instead of
	// rejecting them with ErrUnexpectedCharacter.
	IgnoreUnknown bool
}

// Lexer holds all mutable state for a single scanning pass over one line.
type Lexer struct {
	src  []rune
	pos  int // index of the rune being scanned
	opts Options

	digits  []rune // digit run of the number being scanned
	start   int    // column of the first rune in digits
	sign    Sign   // sign carried into the next number
	signPos int    // column where the pending sign run began, -1 if none

	// negated has one entry per open group, true when the group was opened
	// with a pending negative sign and must be closed twice.
	negated []bool

	tokens []Token
}

func newLexer(src string, opts Options) *Lexer {
	return &Lexer{src: []rune(src), opts: opts, signPos: -1}
}

func (l *Lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

func (l *Lexer) resetSign() {
	l.sign = Positive
	l.signPos = -1
}

// followsOperand reports whether the last emitted token can be the left
// operand of a binary operator.
func (l *Lexer) followsOperand() bool {
	if len(l.tokens) == 0 {
		return false
	}
	last := l.tokens[len(l.tokens)-1].Type
	return last == NUMBER || last == RPAREN
}

// flush emits the pending digit run as a signed NUMBER and resets the sign
// carry. It is a no-op when no digits are pending.
func (l *Lexer) flush() error {
	if len(l.digits) == 0 {
		return nil
	}
	lexeme := l.sign.prefix() + string(l.digits)
	v, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return fmt.Errorf("%w: %q at column %d", ErrMalformedNumber, lexeme, l.start+1)
	}
	// The sign is applied before the range check so the most negative
	// value is accepted.
	if !inRange(v) {
		return fmt.Errorf("%w: %s at column %d", ErrIntegerOverflow, lexeme, l.start+1)
	}
	l.emit(Token{Type: NUMBER, Lexeme: lexeme, Value: v, Pos: l.start})
	l.digits = l.digits[:0]
	l.resetSign()
	return nil
}

// checkDanglingSign fails if a sign run is waiting for a number that will
// never come.
func (l *Lexer) checkDanglingSign() error {
	if l.signPos < 0 {
		return nil
	}
	return fmt.Errorf("%w: sign at column %d has no operand", ErrStackUnderflow, l.signPos+1)
}

// scanSign handles '+' and '-'. They are binary operators after an operand
// and fold into the sign carry everywhere else.
func (l *Lexer) scanSign(r rune) error {
	tt := ADD
	if r == '-' {
		tt = SUB
	}
	if len(l.digits) > 0 {
		if err := l.flush(); err != nil {
			return err
		}
		l.emit(symbolToken(tt, l.pos))
		return nil
	}
	if l.followsOperand() {
		l.emit(symbolToken(tt, l.pos))
		return nil
	}
	if l.signPos < 0 {
		l.signPos = l.pos
	}
	l.sign = l.sign.Compose(SignOf(r))
	return nil
}

// openGroup handles '('. A pending negative sign turns -( x ) into
// ( -1 * ( x ) ).
func (l *Lexer) openGroup() error {
	if err := l.flush(); err != nil {
		return err
	}
	negate := l.sign == Negative
	signCol := l.signPos
	l.resetSign()

	l.emit(symbolToken(LPAREN, l.pos))
	if negate {
		l.emit(numberToken(big.NewInt(-1), signCol))
		l.emit(symbolToken(MUL, signCol))
		l.emit(symbolToken(LPAREN, l.pos))
	}
	l.negated = append(l.negated, negate)
	return nil
}

func (l *Lexer) closeGroup() error {
	if err := l.flush(); err != nil {
		return err
	}
	if err := l.checkDanglingSign(); err != nil {
		return err
	}
	l.emit(symbolToken(RPAREN, l.pos))
	// Unmatched ')' is left for the converter to report.
	if n := len(l.negated); n > 0 {
		if l.negated[n-1] {
			l.emit(symbolToken(RPAREN, l.pos))
		}
		l.negated = l.negated[:n-1]
	}
	return nil
}

func (l *Lexer) step(r rune) error {
	switch {
	case r >= '0' && r <= '9':
		if len(l.digits) == 0 {
			l.start = l.pos
		}
		l.digits = append(l.digits, r)
		return nil
	case unicode.IsSpace(r):
		return l.flush()
	}

	switch r {
	case '+', '-':
		return l.scanSign(r)
	case '*', '/':
		if err := l.flush(); err != nil {
			return err
		}
		if err := l.checkDanglingSign(); err != nil {
			return err
		}
		tt := MUL
		if r == '/' {
			tt = DIV
		}
		l.emit(symbolToken(tt, l.pos))
		return nil
	case '(':
		return l.openGroup()
	case ')':
		return l.closeGroup()
	}

	if l.opts.IgnoreUnknown {
		return nil
	}
	return fmt.Errorf("%w %q at column %d", ErrUnexpectedCharacter, r, l.pos+1)
}

// Tokenize scans one line of expression text into tokens, resolving runs of
// leading '+'/'-' into the sign of the number that follows them.
// On error it returns the tokens scanned so far.
func Tokenize(line string, opts Options) ([]Token, error) {
	l := newLexer(line, opts)
	for l.pos < len(l.src) {
		if err := l.step(l.src[l.pos]); err != nil {
			return l.tokens, err
		}
		l.pos++
	}
	if err := l.flush(); err != nil {
		return l.tokens, err
	}
	if err := l.checkDanglingSign(); err != nil {
		return l.tokens, err
	}
	return l.tokens, nil
}
