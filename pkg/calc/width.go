package calc

import "math/big"

// Every literal and every intermediate result must fit in a signed 128-bit
// integer: [-2^127, 2^127-1].
var (
	maxValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minValue = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func inRange(v *big.Int) bool {
	return v.Cmp(minValue) >= 0 && v.Cmp(maxValue) <= 0
}
