package seq

// DropView skips the first k elements of its source. The first position is
// computed on first use and cached.
type DropView[T any, P comparable] struct {
	passthrough[T, P]
	k      int
	first  P
	cached bool
}

func Drop[T any, P comparable](s Forward[T, P], k int) *DropView[T, P] {
	if k < 0 {
		k = 0
	}
	return &DropView[T, P]{passthrough: passthrough[T, P]{resolve(s)}, k: k}
}

// DropAdaptor is the pipe form of Drop.
func DropAdaptor[T any, P comparable](k int) Adaptor[T, P, P] {
	return func(s Forward[T, P]) Forward[T, P] {
		return Drop(s, k)
	}
}

func (v *DropView[T, P]) Begin() P {
	if !v.cached {
		v.first = v.skip()
		v.cached = true
	}
	return v.first
}

func (v *DropView[T, P]) skip() P {
	p := v.src.Begin()
	if v.caps.Tier >= TierRandomAccess {
		n := v.k
		if v.caps.Sized {
			n = min(n, v.length())
		}
		return v.advance(p, n)
	}
	for i := 0; i < v.k && !v.src.Done(p); i++ {
		p = v.src.Next(p)
	}
	return p
}

func (v *DropView[T, P]) At(p P) T {
	return v.src.At(p)
}

func (v *DropView[T, P]) Len() int {
	return max(v.length()-v.k, 0)
}
