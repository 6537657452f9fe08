package calc

import "testing"

// simpleExpr exercises the fast path: a handful of tokens, no grouping.
const simpleExpr = "1 + 2 * 3"

// complexExpr nests groups, sign runs and every operator.
const complexExpr = "((12 + -3) * (4 - --5)) / -(7 - 2) + 100 * (3 + (8 / (2 + 2))) - 15 / 4"

func BenchmarkEvaluate_Simple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(simpleExpr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate_Complex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(complexExpr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenize_Complex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(complexExpr, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToPostfix_Complex(b *testing.B) {
	tokens, err := Tokenize(complexExpr, Options{})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToPostfix(tokens); err != nil {
			b.Fatal(err)
		}
	}
}
