// Package bench measures traversal cost of ring views of every tier.
package bench

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"github.com/schollz/progressbar/v3"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
)

var ErrBadParams = errors.New("bad bench parameters")

type Params struct {
	Iterations int
	// PassSize is the number of elements in the source.
	PassSize int
	// Times is the ring repeat count.
	Times int
	// SampleRatio is the share of iterations kept for latency statistics.
	SampleRatio float64
	Tiers       []seq.Tier
	// Progress receives a progress bar when set.
	Progress io.Writer
}

type Result struct {
	Tier seq.Tier
	// Elements visited by every iteration.
	Elements int
	Metrics  *tachymeter.Metrics
}

type Runner struct {
	params   Params
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	elements *prometheus.CounterVec
}

func NewRunner(p Params) (*Runner, error) {
	if p.Iterations <= 0 || p.PassSize < 0 || p.Times < 0 {
		return nil, fmt.Errorf("%w: iterations %d pass size %d times %d", ErrBadParams, p.Iterations, p.PassSize, p.Times)
	}
	if p.SampleRatio <= 0 || p.SampleRatio > 1 {
		return nil, fmt.Errorf("%w: sample ratio %g", ErrBadParams, p.SampleRatio)
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Runner{
		params:   p,
		registry: reg,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ring_bench_traversal_seconds",
			Help:    "Time to traverse a ring once, by tier.",
			Buckets: prometheus.ExponentialBuckets(0.000_001, 4, 12),
		}, []string{"tier"}),
		elements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ring_bench_elements_total",
			Help: "Elements visited while benchmarking, by tier.",
		}, []string{"tier"}),
	}, nil
}

// Run traverses a ring of every requested tier Iterations times.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	values := make([]int, r.params.PassSize)
	for i := range values {
		values[i] = i
	}
	count := ring.Bounded(r.params.Times)

	var bar *progressbar.ProgressBar
	if r.params.Progress != nil {
		bar = progressbar.NewOptions(r.params.Iterations*len(r.params.Tiers),
			progressbar.OptionSetWriter(r.params.Progress),
			progressbar.OptionSetDescription("traversing"),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]Result, 0, len(r.params.Tiers))
	for _, tier := range r.params.Tiers {
		traverse, err := traversal(tier, values, count)
		if err != nil {
			return nil, err
		}
		res, err := r.runTier(ctx, tier, traverse, bar)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

func (r *Runner) runTier(ctx context.Context, tier seq.Tier, traverse func() int, bar *progressbar.ProgressBar) (Result, error) {
	log := logging.FromContext(ctx).WithField(logging.TierFieldKey, tier.String())
	t := tachymeter.New(&tachymeter.Config{Size: max(1, int(float64(r.params.Iterations)*r.params.SampleRatio))})
	duration := r.duration.WithLabelValues(tier.String())
	elements := r.elements.WithLabelValues(tier.String())

	var visited int
	wallTimeStart := time.Now()
	for i := 0; i < r.params.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := time.Now()
		visited = traverse()
		took := time.Since(start)
		t.AddTime(took)
		duration.Observe(took.Seconds())
		elements.Add(float64(visited))
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	t.SetWallTime(time.Since(wallTimeStart))
	metrics := t.Calc()
	log.WithFields(logging.Fields{
		logging.IterationsFieldKey: r.params.Iterations,
		"elements":                 visited,
		"p99":                      metrics.Time.P99,
	}).Debug("Tier traversal done")
	return Result{Tier: tier, Elements: visited, Metrics: metrics}, nil
}

// traversal returns a function walking a fresh ring of the given tier and
// returning the number of elements visited.
func traversal(tier seq.Tier, values []int, count ring.Count) (func() int, error) {
	switch tier {
	case seq.TierRandomAccess:
		return walker[int, int](ring.New[int, int](seq.Slice(values), count)), nil
	case seq.TierBidirectional:
		return walker[int, *list.Element](ring.New[int, *list.Element](seq.NewList(values...), count)), nil
	case seq.TierForward:
		return walker[int, *seq.Node[int]](ring.New[int, *seq.Node[int]](seq.NewLinked(values...), count)), nil
	case seq.TierInput:
		return func() int {
			it := ring.NewInput[int](seq.NewSliceIterator(values), count)
			defer it.Close()
			n := 0
			for it.Next() {
				n++
			}
			return n
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", seq.ErrUnknownTier, tier)
	}
}

func walker[T any, P comparable](v ring.View[T, P]) func() int {
	return func() int {
		n := 0
		for range seq.All[T, ring.Pos[P]](v) {
			n++
		}
		return n
	}
}

func (r *Runner) Registry() *prometheus.Registry {
	return r.registry
}

// WriteMetrics writes the bench metrics in the prometheus text format.
func (r *Runner) WriteMetrics(w io.Writer) error {
	mfs, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
