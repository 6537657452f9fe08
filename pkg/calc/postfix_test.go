package calc

import (
	"errors"
	"testing"
)

func TestToPostfix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"1+2*3", "1 2 3 * +"},
		{"2*3+4", "2 3 * 4 +"},
		{"(1+2)*3", "1 2 + 3 *"},
		{"8-3-2", "8 3 - 2 -"},
		{"20/4/5", "20 4 / 5 /"},
		{"1-2*3+4", "1 2 3 * - 4 +"},
		{"((1+2)*(3+4))", "1 2 + 3 4 + *"},
		{"-(2+3)", "-1 2 3 + *"},
		{"2--3", "2 -3 -"},
		{"1 + 2 * 3 - 4 / 2", "1 2 3 * + 4 2 / -"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input, Options{})
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.input, err)
		}
		postfix, err := ToPostfix(tokens)
		if err != nil {
			t.Fatalf("ToPostfix(%q): %v", tt.input, err)
		}
		if got := FormatTokens(postfix); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.input, tt.want, got)
		}
		for _, tok := range postfix {
			if tok.Type.IsBracket() {
				t.Errorf("%s: bracket %v leaked into postfix output", tt.input, tok)
			}
		}
	}
}

func TestToPostfixMismatchedBrackets(t *testing.T) {
	inputs := []string{"(1+2", "1+2)", ")(", "(()", "((1)", "1)+(2"}
	for _, in := range inputs {
		tokens, err := Tokenize(in, Options{})
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", in, err)
		}
		_, err = ToPostfix(tokens)
		if !errors.Is(err, ErrMismatchedBracket) {
			t.Errorf("ToPostfix(%q): expected ErrMismatchedBracket, got %v", in, err)
		}
	}
}

func TestPrecedence(t *testing.T) {
	if MUL.Precedence() <= ADD.Precedence() || DIV.Precedence() <= SUB.Precedence() {
		t.Errorf("multiplicative operators must bind tighter than additive ones")
	}
	if MUL.Precedence() != DIV.Precedence() || ADD.Precedence() != SUB.Precedence() {
		t.Errorf("operators of the same family must share a precedence")
	}
	for _, tt := range []TokenType{ADD, SUB, MUL, DIV} {
		if LPAREN.Precedence() <= tt.Precedence() {
			t.Errorf("bracket sentinel must rank above %s", tt)
		}
	}
}
