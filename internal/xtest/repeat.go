package xtest

import (
	"math/rand"
	"testing"
	"time"
)

// Repeat runs test as subtest name for about a second, and at least once.
// Every iteration gets its own seeded source; the seed of a failed iteration
// is logged so the run can be replayed with rand.NewSource.
func Repeat(t *testing.T, name string, test func(t testing.TB, r *rand.Rand)) {
	t.Helper()

	const budget = time.Second

	t.Run(name, func(t *testing.T) {
		start := time.Now()
		for i := 0; ; i++ {
			if !iterate(t, time.Now().UnixNano()+int64(i), test) {
				return
			}
			if time.Since(start) > budget {
				return
			}
		}
	})
}

// iterate reports false once t has failed, stopping further iterations.
func iterate(t testing.TB, seed int64, test func(t testing.TB, r *rand.Rand)) bool {
	t.Helper()

	defer func() {
		if t.Failed() {
			t.Logf("failed with seed %d", seed)
		}
	}()

	test(t, rand.New(rand.NewSource(seed))) //nolint:gosec

	return !t.Failed()
}
