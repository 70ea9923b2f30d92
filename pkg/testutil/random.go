package testutil

import (
	"math/rand"

	"github.com/thanhpk/randstr"
)

// RandomInts returns n values in [0, limit) drawn from rand.
func RandomInts(rand *rand.Rand, n, limit int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rand.Intn(limit)
	}
	return out
}

// RandomString returns a random alphanumeric string of n bytes.
func RandomString(n int) string {
	return randstr.String(n)
}

// RandomSizes returns count sizes in [0, limit], always including the empty
// and single element cases.
func RandomSizes(rand *rand.Rand, count, limit int) []int {
	sizes := []int{0, 1}
	for len(sizes) < count {
		sizes = append(sizes, rand.Intn(limit+1))
	}
	return sizes
}
