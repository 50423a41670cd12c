package xtest

import (
	"math/rand"
)

// Ints returns n random values in [0, limit).
func Ints(r *rand.Rand, n, limit int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(limit)
	}

	return values
}
