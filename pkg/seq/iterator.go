package seq

import "iter"

// SliceIterator is a single-pass Iterator over a slice. Unlike SliceSeq it
// keeps its cursor internally, so values can only be visited once.
type SliceIterator[T any] struct {
	s     []T
	pos   int
	value T
}

func NewSliceIterator[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s}
}

func (it *SliceIterator[T]) Next() bool {
	if it.pos >= len(it.s) {
		var zero T
		it.value = zero
		return false
	}
	it.value = it.s[it.pos]
	it.pos++
	return true
}

func (it *SliceIterator[T]) Value() T {
	return it.value
}

func (it *SliceIterator[T]) Err() error {
	return nil
}

func (it *SliceIterator[T]) Close() {
	it.pos = len(it.s)
}

// PullIterator adapts a push style iter.Seq into an Iterator.
type PullIterator[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
	done  bool
}

func Values[T any](s iter.Seq[T]) *PullIterator[T] {
	next, stop := iter.Pull(s)
	return &PullIterator[T]{next: next, stop: stop}
}

func (it *PullIterator[T]) Next() bool {
	if it.done {
		return false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return false
	}
	it.value = v
	return true
}

func (it *PullIterator[T]) Value() T {
	return it.value
}

func (it *PullIterator[T]) Err() error {
	return nil
}

func (it *PullIterator[T]) Close() {
	it.done = true
	it.stop()
}

// Drain consumes it to completion and closes it.
func Drain[T any](it Iterator[T]) ([]T, error) {
	defer it.Close()
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return out, err
	}
	return out, nil
}
