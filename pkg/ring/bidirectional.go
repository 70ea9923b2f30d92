package ring

import (
	"fmt"

	"github.com/treeverse/ringview/pkg/seq"
)

// BidirectionalView repeats a bidirectional source with a common end. The
// end is needed to step backward over a pass boundary.
type BidirectionalView[T any, P comparable] struct {
	ForwardView[T, P]
	bidi seq.Bidirectional[T, P]
}

func NewBidirectional[T any, P comparable](s seq.Bidirectional[T, P], count Count) BidirectionalView[T, P] {
	if c := seq.Classify[T, P](s); c.Repeatable() < seq.TierBidirectional {
		panic(fmt.Errorf("bidirectional ring over %s source: %w", c, ErrNotCommon))
	}
	v := BidirectionalView[T, P]{ForwardView: newForward[T, P](s, count), bidi: s}
	viewsCreated.WithLabelValues(seq.TierBidirectional.String()).Inc()
	return v
}

func (v BidirectionalView[T, P]) Capability() seq.Capability {
	return v.capability(seq.TierBidirectional)
}

// Prev steps back within the pass; from the first element of a pass it
// yields the last element of the previous pass. Stepping back from the first
// element of the first pass panics.
func (v BidirectionalView[T, P]) Prev(p Pos[P]) Pos[P] {
	if p.At != v.bidi.Begin() {
		return Pos[P]{Cycle: p.Cycle, At: v.bidi.Prev(p.At)}
	}
	if p.Cycle == 0 {
		panic(ErrBeforeBegin)
	}
	return Pos[P]{Cycle: p.Cycle - 1, At: v.bidi.Prev(v.end)}
}
