package seq_test

import (
	"container/list"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeverse/ringview/pkg/seq"
)

// noEnd has every random access operation but no End.
type noEnd struct {
	n int
}

func (s noEnd) Begin() int                { return 0 }
func (s noEnd) Done(p int) bool           { return p >= s.n }
func (s noEnd) Next(p int) int            { return p + 1 }
func (s noEnd) Prev(p int) int            { return p - 1 }
func (s noEnd) At(p int) int              { return p }
func (s noEnd) Advance(p, n int) int      { return p + n }
func (s noEnd) Distance(from, to int) int { return to - from }
func (s noEnd) Len() int                  { return s.n }

// reported overrides the method set with a fixed capability.
type reported struct {
	seq.SliceSeq[int]
	caps seq.Capability
}

func (r reported) Capability() seq.Capability { return r.caps }

func TestClassify(t *testing.T) {
	cases := []struct {
		Name     string
		Classify func() seq.Capability
		Expected seq.Capability
	}{
		{
			Name:     "slice",
			Classify: func() seq.Capability { return seq.Classify[int, int](seq.Slice([]int{1})) },
			Expected: seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true},
		}, {
			Name:     "string",
			Classify: func() seq.Capability { return seq.Classify[byte, int](seq.String("abc")) },
			Expected: seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true},
		}, {
			Name:     "queue",
			Classify: func() seq.Capability { return seq.Classify[int, int](seq.NewQueue(1, 2)) },
			Expected: seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true},
		}, {
			Name:     "list",
			Classify: func() seq.Capability { return seq.Classify[int, *list.Element](seq.NewList(1, 2)) },
			Expected: seq.Capability{Tier: seq.TierBidirectional, Sized: true, Common: true},
		}, {
			Name:     "linked",
			Classify: func() seq.Capability { return seq.Classify[int, *seq.Node[int]](seq.NewLinked(1, 2)) },
			Expected: seq.Capability{Tier: seq.TierForward, Common: true},
		}, {
			Name:     "random access without end",
			Classify: func() seq.Capability { return seq.Classify[int, int](noEnd{n: 3}) },
			Expected: seq.Capability{Tier: seq.TierForward, Sized: true},
		}, {
			Name: "reported capability wins",
			Classify: func() seq.Capability {
				return seq.Classify[int, int](reported{
					SliceSeq: seq.Slice([]int{1}),
					caps:     seq.Capability{Tier: seq.TierForward},
				})
			},
			Expected: seq.Capability{Tier: seq.TierForward},
		}, {
			Name:     "iterator",
			Classify: func() seq.Capability { return seq.ClassifyIterator[int](seq.NewSliceIterator([]int{1})) },
			Expected: seq.Capability{Tier: seq.TierInput},
		},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			require.Equal(t, c.Expected, c.Classify())
		})
	}
}

func TestCapabilityRepeatable(t *testing.T) {
	cases := []struct {
		Caps     seq.Capability
		Expected seq.Tier
	}{
		{Caps: seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}, Expected: seq.TierRandomAccess},
		{Caps: seq.Capability{Tier: seq.TierRandomAccess, Common: true}, Expected: seq.TierBidirectional},
		{Caps: seq.Capability{Tier: seq.TierRandomAccess, Sized: true}, Expected: seq.TierForward},
		{Caps: seq.Capability{Tier: seq.TierBidirectional, Sized: true, Common: true}, Expected: seq.TierBidirectional},
		{Caps: seq.Capability{Tier: seq.TierBidirectional}, Expected: seq.TierForward},
		{Caps: seq.Capability{Tier: seq.TierForward, Sized: true, Common: true}, Expected: seq.TierForward},
		{Caps: seq.Capability{Tier: seq.TierInput}, Expected: seq.TierInput},
	}
	for _, c := range cases {
		t.Run(c.Caps.String(), func(t *testing.T) {
			require.Equal(t, c.Expected, c.Caps.Repeatable())
		})
	}
}

func TestCapabilityString(t *testing.T) {
	require.Equal(t, "random-access,sized,common", seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}.String())
	require.Equal(t, "forward,common", seq.Capability{Tier: seq.TierForward, Common: true}.String())
	require.Equal(t, "input", seq.Capability{}.String())
	require.Equal(t, "tier(9)", seq.Tier(9).String())
}

func TestParseTier(t *testing.T) {
	for _, tier := range []seq.Tier{seq.TierInput, seq.TierForward, seq.TierBidirectional, seq.TierRandomAccess} {
		parsed, err := seq.ParseTier(tier.String())
		require.NoError(t, err)
		require.Equal(t, tier, parsed)
	}
	parsed, err := seq.ParseTier("Random-Access")
	require.NoError(t, err)
	require.Equal(t, seq.TierRandomAccess, parsed)

	_, err = seq.ParseTier("sideways")
	require.True(t, errors.Is(err, seq.ErrUnknownTier), "err=%v", err)
}
