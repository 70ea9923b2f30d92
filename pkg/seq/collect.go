package seq

import "iter"

// Adaptor transforms a sequence into another one over a different position
// type. Adaptors are composed with Pipe.
type Adaptor[T any, P, Q comparable] func(Forward[T, P]) Forward[T, Q]

// Pipe applies a to s.
func Pipe[T any, P, Q comparable](s Forward[T, P], a Adaptor[T, P, Q]) Forward[T, Q] {
	return a(s)
}

// All yields the elements of s from Begin until Done.
func All[T any, P comparable](s Forward[T, P]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := s.Begin(); !s.Done(p); p = s.Next(p) {
			if !yield(s.At(p)) {
				return
			}
		}
	}
}

// Collect returns every element of s. It does not terminate on unbounded
// sequences.
func Collect[T any, P comparable](s Forward[T, P]) []T {
	var out []T
	if c := Classify(s); c.Sized {
		out = make([]T, 0, s.(Sized).Len())
	}
	for v := range All(s) {
		out = append(out, v)
	}
	return out
}

// CollectN returns at most n elements of s.
func CollectN[T any, P comparable](s Forward[T, P], n int) []T {
	out := make([]T, 0, n)
	for p := s.Begin(); len(out) < n && !s.Done(p); p = s.Next(p) {
		out = append(out, s.At(p))
	}
	return out
}

// Count walks s and returns its number of elements, using Len when the
// sequence is sized.
func Count[T any, P comparable](s Forward[T, P]) int {
	if c := Classify(s); c.Sized {
		return s.(Sized).Len()
	}
	n := 0
	for p := s.Begin(); !s.Done(p); p = s.Next(p) {
		n++
	}
	return n
}
