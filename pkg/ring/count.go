package ring

import (
	"fmt"
	"strconv"
)

// Count is the number of passes a ring makes over its source.
type Count int

// Unbounded repeats the source until the consumer stops pulling.
const Unbounded Count = -1

// Bounded returns a count of n passes. Bounded(0) is an always empty ring.
func Bounded(n int) Count {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCount, n))
	}
	return Count(n)
}

func (c Count) IsBounded() bool {
	return c >= 0
}

func (c Count) String() string {
	if !c.IsBounded() {
		return "unbounded"
	}
	return strconv.Itoa(int(c))
}

// more reports whether another pass follows pass number cycle.
func (c Count) more(cycle int) bool {
	return c < 0 || cycle+1 < int(c)
}

// last is the cycle index of the terminal position.
func (c Count) last() int {
	return max(int(c)-1, 0)
}
