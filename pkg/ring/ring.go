// Package ring provides cyclic views that repeat a sequence a fixed number of
// times or indefinitely, while keeping the strongest traversal the source
// supports.
//
// The view type is chosen once at construction: RandomAccessView for random
// access sources with a known length and a common end, BidirectionalView
// for bidirectional sources with a common end, ForwardView otherwise, and
// InputView for single-pass iterators.
package ring

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/seq"
)

var (
	ErrNegativeCount = errors.New("negative repeat count")
	ErrOutOfRange    = errors.New("ring position out of range")
	ErrBeforeBegin   = errors.New("step before the first element")
	ErrNotSized      = errors.New("ring is not sized")
	ErrNotCommon     = errors.New("ring has no common end")
)

var viewsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ring_views_created_total",
		Help: "Ring views created, by traversal tier.",
	},
	[]string{"tier"},
)

// View is the surface shared by every multi-pass ring view.
type View[T any, P comparable] interface {
	seq.Forward[T, Pos[P]]
	seq.Capable
	Count() Count
}

// New classifies s and returns the strongest ring view over it. The static
// type is the forward contract; seq.Classify recovers the tier, and a type
// assertion recovers the concrete view.
func New[T any, P comparable](s seq.Forward[T, P], count Count) View[T, P] {
	caps := seq.Classify(s)
	var v View[T, P]
	switch caps.Repeatable() {
	case seq.TierRandomAccess:
		v = NewRandomAccess(s.(seq.RandomAccess[T, P]), count)
	case seq.TierBidirectional:
		v = NewBidirectional(s.(seq.Bidirectional[T, P]), count)
	default:
		v = NewForward(s, count)
	}
	if log := logging.Default(); log.IsTracing() {
		log.WithFields(logging.Fields{
			logging.SourceFieldKey: caps.String(),
			logging.TierFieldKey:   v.Capability().String(),
			logging.CountFieldKey:  count.String(),
		}).Trace("ring view created")
	}
	return v
}
