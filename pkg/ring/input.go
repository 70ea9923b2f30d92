package ring

import (
	"github.com/treeverse/ringview/pkg/seq"
)

// InputView wraps a single-pass source. Consumed state is never re-derived,
// so the source's elements are produced exactly once, whatever the count;
// the only effect of the count is that Bounded(0) produces nothing.
type InputView[T any] struct {
	it    seq.Iterator[T]
	count Count
}

func NewInput[T any](it seq.Iterator[T], count Count) *InputView[T] {
	viewsCreated.WithLabelValues(seq.TierInput.String()).Inc()
	return &InputView[T]{it: it, count: count}
}

func (v *InputView[T]) Capability() seq.Capability {
	return seq.Capability{Tier: seq.TierInput}
}

func (v *InputView[T]) Count() Count {
	return v.count
}

func (v *InputView[T]) Next() bool {
	if v.count == 0 {
		return false
	}
	return v.it.Next()
}

func (v *InputView[T]) Value() T {
	return v.it.Value()
}

func (v *InputView[T]) Err() error {
	return v.it.Err()
}

func (v *InputView[T]) Close() {
	v.it.Close()
}
