package seq

// ops holds a source together with its optional operations, resolved once at
// construction so that adaptors never switch on the tier while traversing.
type ops[T any, P comparable] struct {
	src    Forward[T, P]
	caps   Capability
	bidi   Bidirectional[T, P]
	ra     RandomAccess[T, P]
	sized  Sized
	common Common[P]
}

func resolve[T any, P comparable](s Forward[T, P]) ops[T, P] {
	o := ops[T, P]{src: s, caps: Classify(s)}
	if o.caps.Tier >= TierBidirectional {
		o.bidi, _ = s.(Bidirectional[T, P])
	}
	if o.caps.Tier >= TierRandomAccess {
		o.ra, _ = s.(RandomAccess[T, P])
	}
	if o.caps.Sized {
		o.sized, _ = s.(Sized)
	}
	if o.caps.Common {
		o.common, _ = s.(Common[P])
	}
	return o
}

func (o ops[T, P]) prev(p P) P {
	if o.bidi == nil {
		panic(ErrNotBidirectional)
	}
	return o.bidi.Prev(p)
}

func (o ops[T, P]) advance(p P, n int) P {
	if o.ra == nil {
		panic(ErrNotRandomAccess)
	}
	return o.ra.Advance(p, n)
}

func (o ops[T, P]) distance(from, to P) int {
	if o.ra == nil {
		panic(ErrNotRandomAccess)
	}
	return o.ra.Distance(from, to)
}

func (o ops[T, P]) length() int {
	if o.sized == nil {
		panic(ErrNotSized)
	}
	return o.sized.Len()
}

func (o ops[T, P]) end() P {
	if o.common == nil {
		panic(ErrNotCommon)
	}
	return o.common.End()
}

// passthrough forwards every positional operation except At to the source.
type passthrough[T any, P comparable] struct {
	ops[T, P]
}

func (p passthrough[T, P]) Capability() Capability  { return p.caps }
func (p passthrough[T, P]) Begin() P                { return p.src.Begin() }
func (p passthrough[T, P]) Done(pos P) bool         { return p.src.Done(pos) }
func (p passthrough[T, P]) Next(pos P) P            { return p.src.Next(pos) }
func (p passthrough[T, P]) Prev(pos P) P            { return p.prev(pos) }
func (p passthrough[T, P]) Advance(pos P, n int) P  { return p.advance(pos, n) }
func (p passthrough[T, P]) Distance(from, to P) int { return p.distance(from, to) }
func (p passthrough[T, P]) End() P                  { return p.end() }
func (p passthrough[T, P]) Len() int                { return p.length() }
