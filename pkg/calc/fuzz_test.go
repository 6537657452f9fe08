package calc

import (
	"errors"
	"math/rand"
	"testing"
)

var knownErrors = []error{
	ErrMalformedNumber,
	ErrIntegerOverflow,
	ErrMismatchedBracket,
	ErrStackUnderflow,
	ErrDivisionByZero,
	ErrTrailingOperands,
	ErrUnexpectedCharacter,
	ErrEmptyExpression,
}

func isKnownError(err error) bool {
	for _, k := range knownErrors {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}

// TestEvaluateAlwaysTerminates feeds random strings over the expression
// alphabet and checks that each one yields a value or a known error.
func TestEvaluateAlwaysTerminates(t *testing.T) {
	const alphabet = "0123456789+-*/() "
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		n := rng.Intn(24)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		line := string(buf)
		_, err := Evaluate(line)
		if err != nil && !isKnownError(err) {
			t.Fatalf("%q: unclassified error %v", line, err)
		}
	}
}

func FuzzEvaluate(f *testing.F) {
	seeds := []string{"1+2*3", "(1+2)*3", "--3", "2+-3", "-(2+3)", "5/0", "(1+2", "1+2)", "", "170141183460469231731687303715884105727+1"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, line string) {
		for _, opts := range []Options{{}, {IgnoreUnknown: true}} {
			_, err := EvaluateOptions(line, opts)
			if err != nil && !isKnownError(err) {
				t.Fatalf("%q: unclassified error %v", line, err)
			}
		}
	})
}
