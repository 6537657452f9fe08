package calc_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/require"

	"gocalc/pkg/calc"
)

// randomExpr builds an expression over + - * with small literals so that the
// float64 reference stays exact.
func randomExpr(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.Intn(4) == 0 {
		return strconv.Itoa(rng.Intn(20))
	}
	ops := []string{"+", "-", "*"}
	s := randomExpr(rng, depth-1) + " " + ops[rng.Intn(len(ops))] + " " + randomExpr(rng, depth-1)
	if rng.Intn(2) == 0 {
		s = "(" + s + ")"
	}
	return s
}

func reference(t *testing.T, expr string) int64 {
	t.Helper()
	parsed, err := govaluate.NewEvaluableExpression(expr)
	require.NoError(t, err, expr)
	res, err := parsed.Evaluate(nil)
	require.NoError(t, err, expr)
	f, ok := res.(float64)
	require.True(t, ok, "%s evaluated to %T", expr, res)
	return int64(f)
}

func TestEvaluateMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		expr := randomExpr(rng, 3)
		got, err := calc.Evaluate(expr)
		require.NoError(t, err, expr)
		require.True(t, got.IsInt64(), expr)
		require.Equal(t, reference(t, expr), got.Int64(), expr)
	}
}

func TestEvaluateMatchesReferenceOnExactDivision(t *testing.T) {
	// Division is only compared where it is exact, since the reference
	// divides in floating point.
	exprs := []string{
		"100 / 4 / 5",
		"(6 + 2) * 3 / 4",
		"48 / (2 * 3) - 1",
		"7 - 12 / 3 * 2",
		"((9 - 3) * (2 + 2)) / 8",
	}
	for _, expr := range exprs {
		got, err := calc.Evaluate(expr)
		require.NoError(t, err, expr)
		require.True(t, got.IsInt64(), expr)
		require.Equal(t, reference(t, expr), got.Int64(), expr)
	}
}
