package ring

import (
	"iter"

	"github.com/treeverse/ringview/pkg/seq"
)

// Pos is a position in a ring: the pass number and the source position
// within that pass. Positions are equal iff both parts are equal.
type Pos[P comparable] struct {
	Cycle int
	At    P
}

// ForwardView repeats a multi-pass source supporting successor and equality.
type ForwardView[T any, P comparable] struct {
	src   seq.Forward[T, P]
	count Count
	caps  seq.Capability
	// source end and pass length, valid when caps says so
	end     P
	passLen int
}

func NewForward[T any, P comparable](s seq.Forward[T, P], count Count) ForwardView[T, P] {
	v := newForward(s, count)
	viewsCreated.WithLabelValues(seq.TierForward.String()).Inc()
	return v
}

func newForward[T any, P comparable](s seq.Forward[T, P], count Count) ForwardView[T, P] {
	v := ForwardView[T, P]{src: s, count: count, caps: seq.Classify(s)}
	if v.caps.Common {
		v.end = s.(seq.Common[P]).End()
	}
	if v.caps.Sized {
		v.passLen = s.(seq.Sized).Len()
	}
	return v
}

func (v ForwardView[T, P]) Count() Count {
	return v.count
}

func (v ForwardView[T, P]) Capability() seq.Capability {
	return v.capability(seq.TierForward)
}

func (v ForwardView[T, P]) capability(tier seq.Tier) seq.Capability {
	return seq.Capability{
		Tier:   tier,
		Sized:  v.caps.Sized && v.count.IsBounded(),
		Common: v.caps.Common && v.count.IsBounded(),
	}
}

// Begin returns the first position, or the terminal position when the source
// is empty or the count is zero. Repeating nothing forever is still nothing.
func (v ForwardView[T, P]) Begin() Pos[P] {
	b := v.src.Begin()
	if (v.count == 0 || v.src.Done(b)) && v.count.IsBounded() && v.caps.Common {
		return v.terminal()
	}
	return Pos[P]{At: b}
}

// Done is the sentinel relation. An unbounded ring is only ever done when
// its source is empty.
func (v ForwardView[T, P]) Done(p Pos[P]) bool {
	return v.count == 0 || v.src.Done(p.At)
}

// Next advances within the pass and wraps to the next pass at the pass end.
// Advancing a terminal position is a precondition violation.
func (v ForwardView[T, P]) Next(p Pos[P]) Pos[P] {
	next := v.src.Next(p.At)
	if !v.src.Done(next) || !v.count.more(p.Cycle) {
		return Pos[P]{Cycle: p.Cycle, At: next}
	}
	return Pos[P]{Cycle: p.Cycle + 1, At: v.src.Begin()}
}

func (v ForwardView[T, P]) At(p Pos[P]) T {
	return v.src.At(p.At)
}

// End returns the terminal position of a bounded ring over a common source.
func (v ForwardView[T, P]) End() Pos[P] {
	if !v.Capability().Common {
		panic(ErrNotCommon)
	}
	return v.terminal()
}

// terminal is the position past the last element. A zero-count ring ends
// where it begins, so its terminal global index is 0.
func (v ForwardView[T, P]) terminal() Pos[P] {
	if v.count == 0 {
		return Pos[P]{At: v.src.Begin()}
	}
	return Pos[P]{Cycle: v.count.last(), At: v.end}
}

// Len is the pass length times the count. It is only defined for bounded
// rings over sized sources.
func (v ForwardView[T, P]) Len() int {
	if !v.Capability().Sized {
		panic(ErrNotSized)
	}
	return v.passLen * int(v.count)
}

func (v ForwardView[T, P]) All() iter.Seq[T] {
	return seq.All[T, Pos[P]](v)
}
