package seq

// MapView applies f to every element of its source. The capability is the
// source's; f is called once per At and may keep state.
type MapView[T, U any, P comparable] struct {
	passthrough[T, P]
	f func(T) U
}

func Map[T, U any, P comparable](s Forward[T, P], f func(T) U) *MapView[T, U, P] {
	return &MapView[T, U, P]{passthrough: passthrough[T, P]{resolve(s)}, f: f}
}

func (v *MapView[T, U, P]) At(p P) U {
	return v.f(v.src.At(p))
}

// FilterView yields the elements of its source matching pred. It is at most
// bidirectional and never sized.
type FilterView[T any, P comparable] struct {
	ops[T, P]
	pred   func(T) bool
	first  P
	cached bool
}

func Filter[T any, P comparable](s Forward[T, P], pred func(T) bool) *FilterView[T, P] {
	return &FilterView[T, P]{ops: resolve(s), pred: pred}
}

// FilterAdaptor is the pipe form of Filter.
func FilterAdaptor[T any, P comparable](pred func(T) bool) Adaptor[T, P, P] {
	return func(s Forward[T, P]) Forward[T, P] {
		return Filter(s, pred)
	}
}

func (v *FilterView[T, P]) Capability() Capability {
	return Capability{
		Tier:   min(v.caps.Tier, TierBidirectional),
		Common: v.caps.Common,
	}
}

func (v *FilterView[T, P]) Begin() P {
	if !v.cached {
		v.first = v.satisfy(v.src.Begin())
		v.cached = true
	}
	return v.first
}

func (v *FilterView[T, P]) satisfy(p P) P {
	for !v.src.Done(p) && !v.pred(v.src.At(p)) {
		p = v.src.Next(p)
	}
	return p
}

func (v *FilterView[T, P]) Done(p P) bool {
	return v.src.Done(p)
}

func (v *FilterView[T, P]) Next(p P) P {
	return v.satisfy(v.src.Next(p))
}

// Prev steps back to the previous matching element. Stepping back from the
// first match is a precondition violation, as for the source.
func (v *FilterView[T, P]) Prev(p P) P {
	p = v.prev(p)
	for !v.pred(v.src.At(p)) {
		p = v.prev(p)
	}
	return p
}

func (v *FilterView[T, P]) At(p P) T {
	return v.src.At(p)
}

func (v *FilterView[T, P]) End() P {
	return v.end()
}
