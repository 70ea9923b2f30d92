package seq

// TakePos is a position within a Take view: the source position and the
// number of steps taken from Begin.
type TakePos[P comparable] struct {
	At P
	N  int
}

// TakeView yields at most k elements of its source. Positions count their
// own offset, so every operation is delegated to the source without
// stepping: jumps stay O(1) over random access sources.
type TakeView[T any, P comparable] struct {
	ops[T, P]
	k int
}

func Take[T any, P comparable](s Forward[T, P], k int) *TakeView[T, P] {
	if k < 0 {
		k = 0
	}
	return &TakeView[T, P]{ops: resolve(s), k: k}
}

// TakeAdaptor is the pipe form of Take.
func TakeAdaptor[T any, P comparable](k int) Adaptor[T, P, TakePos[P]] {
	return func(s Forward[T, P]) Forward[T, TakePos[P]] {
		return Take(s, k)
	}
}

func (v *TakeView[T, P]) Capability() Capability {
	return Capability{
		Tier:   v.caps.Tier,
		Sized:  v.caps.Sized,
		Common: v.caps.Sized && v.caps.Tier >= TierRandomAccess,
	}
}

func (v *TakeView[T, P]) Begin() TakePos[P] {
	return TakePos[P]{At: v.src.Begin()}
}

func (v *TakeView[T, P]) Done(p TakePos[P]) bool {
	return p.N >= v.k || v.src.Done(p.At)
}

func (v *TakeView[T, P]) Next(p TakePos[P]) TakePos[P] {
	return TakePos[P]{At: v.src.Next(p.At), N: p.N + 1}
}

func (v *TakeView[T, P]) Prev(p TakePos[P]) TakePos[P] {
	return TakePos[P]{At: v.prev(p.At), N: p.N - 1}
}

func (v *TakeView[T, P]) Advance(p TakePos[P], n int) TakePos[P] {
	return TakePos[P]{At: v.advance(p.At, n), N: p.N + n}
}

func (v *TakeView[T, P]) Distance(from, to TakePos[P]) int {
	return to.N - from.N
}

func (v *TakeView[T, P]) At(p TakePos[P]) T {
	return v.src.At(p.At)
}

func (v *TakeView[T, P]) Len() int {
	return min(v.k, v.length())
}

// End is available when the source is sized and random access, which lets
// the end position be computed with a single jump.
func (v *TakeView[T, P]) End() TakePos[P] {
	if !v.Capability().Common {
		panic(ErrNotCommon)
	}
	n := v.Len()
	return TakePos[P]{At: v.advance(v.src.Begin(), n), N: n}
}
