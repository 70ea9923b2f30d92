package ring

import "github.com/treeverse/ringview/pkg/seq"

// Adaptor returns a pipeable constructor binding count. The produced value's
// dynamic type is the strongest view for the source it is applied to, so
// adaptors further down a pipe classify it correctly.
func Adaptor[T any, P comparable](count Count) seq.Adaptor[T, P, Pos[P]] {
	return func(s seq.Forward[T, P]) seq.Forward[T, Pos[P]] {
		return New(s, count)
	}
}

// Cycle repeats its source indefinitely.
func Cycle[T any, P comparable]() seq.Adaptor[T, P, Pos[P]] {
	return Adaptor[T, P](Unbounded)
}

// Times repeats its source n times.
func Times[T any, P comparable](n int) seq.Adaptor[T, P, Pos[P]] {
	return Adaptor[T, P](Bounded(n))
}
