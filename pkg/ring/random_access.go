package ring

import (
	"fmt"

	"github.com/treeverse/ringview/pkg/seq"
)

// RandomAccessView repeats a random access, sized source with a common end.
// A position collapses to the global index Cycle*passLen + offset, which
// makes jumps and distances O(1) across pass boundaries.
type RandomAccessView[T any, P comparable] struct {
	BidirectionalView[T, P]
	ra seq.RandomAccess[T, P]
}

func NewRandomAccess[T any, P comparable](s seq.RandomAccess[T, P], count Count) RandomAccessView[T, P] {
	if c := seq.Classify[T, P](s); c.Repeatable() < seq.TierRandomAccess {
		err := ErrNotCommon
		if !c.Sized {
			err = ErrNotSized
		}
		panic(fmt.Errorf("random access ring over %s source: %w", c, err))
	}
	v := RandomAccessView[T, P]{
		BidirectionalView: BidirectionalView[T, P]{ForwardView: newForward[T, P](s, count), bidi: s},
		ra:                s,
	}
	viewsCreated.WithLabelValues(seq.TierRandomAccess.String()).Inc()
	return v
}

func (v RandomAccessView[T, P]) Capability() seq.Capability {
	return v.capability(seq.TierRandomAccess)
}

// Index returns the global index of p.
func (v RandomAccessView[T, P]) Index(p Pos[P]) int {
	return p.Cycle*v.passLen + v.ra.Distance(v.ra.Begin(), p.At)
}

// Advance jumps n elements from p. The target global index must not be
// negative and, for bounded rings, must not exceed Len; the index Len maps to
// the terminal position.
func (v RandomAccessView[T, P]) Advance(p Pos[P], n int) Pos[P] {
	if n == 0 {
		return p
	}
	g := v.Index(p) + n
	if g < 0 {
		panic(fmt.Errorf("%w: global index %d", ErrOutOfRange, g))
	}
	if v.count.IsBounded() {
		size := v.passLen * int(v.count)
		if g > size {
			panic(fmt.Errorf("%w: global index %d past size %d", ErrOutOfRange, g, size))
		}
		if g == size {
			return v.terminal()
		}
	}
	if v.passLen == 0 {
		panic(fmt.Errorf("%w: jump on empty ring", ErrOutOfRange))
	}
	return Pos[P]{
		Cycle: g / v.passLen,
		At:    v.ra.Advance(v.ra.Begin(), g%v.passLen),
	}
}

// Distance is the signed number of elements from one position to another.
func (v RandomAccessView[T, P]) Distance(from, to Pos[P]) int {
	return v.Index(to) - v.Index(from)
}
