package seq

import "fmt"

// ReverseView traverses a bidirectional, common source backwards. A
// position p denotes the source element just before p, so the source end
// is the reversed begin and the source begin is the reversed end.
type ReverseView[T any, P comparable] struct {
	ops[T, P]
}

// Reverse panics unless s is at least bidirectional and has a common end.
func Reverse[T any, P comparable](s Forward[T, P]) *ReverseView[T, P] {
	o := resolve(s)
	if o.caps.Tier < TierBidirectional || o.bidi == nil {
		panic(fmt.Errorf("reverse: %w", ErrNotBidirectional))
	}
	if o.common == nil {
		panic(fmt.Errorf("reverse: %w", ErrNotCommon))
	}
	return &ReverseView[T, P]{ops: o}
}

// ReverseAdaptor is the pipe form of Reverse.
func ReverseAdaptor[T any, P comparable]() Adaptor[T, P, P] {
	return func(s Forward[T, P]) Forward[T, P] {
		return Reverse(s)
	}
}

func (v *ReverseView[T, P]) Capability() Capability {
	return v.caps
}

func (v *ReverseView[T, P]) Begin() P {
	return v.common.End()
}

func (v *ReverseView[T, P]) End() P {
	return v.src.Begin()
}

func (v *ReverseView[T, P]) Done(p P) bool {
	return p == v.src.Begin()
}

func (v *ReverseView[T, P]) Next(p P) P {
	return v.bidi.Prev(p)
}

func (v *ReverseView[T, P]) Prev(p P) P {
	return v.src.Next(p)
}

func (v *ReverseView[T, P]) At(p P) T {
	return v.src.At(v.bidi.Prev(p))
}

func (v *ReverseView[T, P]) Advance(p P, n int) P {
	return v.advance(p, -n)
}

func (v *ReverseView[T, P]) Distance(from, to P) int {
	return v.distance(to, from)
}

func (v *ReverseView[T, P]) Len() int {
	return v.length()
}
