package seq_test

import (
	"container/list"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
	"github.com/treeverse/ringview/pkg/seq"
	"github.com/treeverse/ringview/pkg/testutil"
)

var values = []int{0, 11, 23, 24, 27}

func TestTake(t *testing.T) {
	cases := []struct {
		Name     string
		K        int
		Expected []int
	}{
		{Name: "none", K: 0, Expected: []int{}},
		{Name: "negative", K: -3, Expected: []int{}},
		{Name: "some", K: 3, Expected: []int{0, 11, 23}},
		{Name: "all", K: 5, Expected: values},
		{Name: "more", K: 9, Expected: values},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			v := seq.Take[int, int](seq.Slice(values), c.K)
			got := seq.Collect[int, seq.TakePos[int]](v)
			if diff := deep.Equal(append([]int{}, got...), c.Expected); diff != nil {
				t.Fatal("Take()", diff)
			}
			require.Equal(t, len(c.Expected), v.Len())
			require.Equal(t, len(c.Expected), v.Distance(v.Begin(), v.End()))
			require.True(t, v.Done(v.End()))
		})
	}
}

func TestTakeCapability(t *testing.T) {
	slice := seq.Take[int, int](seq.Slice(values), 2)
	require.Equal(t, seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}, slice.Capability())

	lst := seq.Take[int, *list.Element](seq.NewList(values...), 2)
	require.Equal(t, seq.Capability{Tier: seq.TierBidirectional, Sized: true}, lst.Capability())
	testutil.RequirePanicIs(t, seq.ErrNotCommon, func() { lst.End() })

	linked := seq.Take[int, *seq.Node[int]](seq.NewLinked(values...), 2)
	require.Equal(t, seq.Capability{Tier: seq.TierForward}, linked.Capability())
	testutil.RequirePanicIs(t, seq.ErrNotSized, func() { linked.Len() })
	testutil.RequirePanicIs(t, seq.ErrNotBidirectional, func() { linked.Prev(linked.Begin()) })
}

func TestDrop(t *testing.T) {
	cases := []struct {
		Name     string
		K        int
		Expected []int
	}{
		{Name: "none", K: 0, Expected: values},
		{Name: "some", K: 2, Expected: []int{23, 24, 27}},
		{Name: "all", K: 5, Expected: []int{}},
		{Name: "more", K: 8, Expected: []int{}},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			ra := seq.Drop[int, int](seq.Slice(values), c.K)
			if diff := deep.Equal(append([]int{}, seq.Collect[int, int](ra)...), c.Expected); diff != nil {
				t.Fatal("Drop(slice)", diff)
			}
			require.Equal(t, len(c.Expected), ra.Len())

			fwd := seq.Drop[int, *seq.Node[int]](seq.NewLinked(values...), c.K)
			if diff := deep.Equal(append([]int{}, seq.Collect[int, *seq.Node[int]](fwd)...), c.Expected); diff != nil {
				t.Fatal("Drop(linked)", diff)
			}
		})
	}
}

func TestMap(t *testing.T) {
	v := seq.Map[int, string, int](seq.Slice([]int{1, 2, 3}), func(i int) string {
		return string(rune('a' + i - 1))
	})
	require.Equal(t, []string{"a", "b", "c"}, seq.Collect[string, int](v))
	require.Equal(t, seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}, v.Capability())
	require.Equal(t, "c", v.At(v.Advance(v.Begin(), 2)))
}

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	v := seq.Filter[int, int](seq.Slice([]int{1, 2, 3, 4, 5, 6, 7}), even)
	require.Equal(t, []int{2, 4, 6}, seq.Collect[int, int](v))
	require.Equal(t, seq.Capability{Tier: seq.TierBidirectional, Common: true}, v.Capability())
	require.Equal(t, 6, v.At(v.Prev(v.End())))
	require.Equal(t, 4, v.At(v.Prev(v.Prev(v.End()))))

	none := seq.Filter[int, int](seq.Slice([]int{1, 3}), even)
	require.Empty(t, seq.Collect[int, int](none))
}

func TestReverse(t *testing.T) {
	v := seq.Reverse[int, int](seq.Slice(values))
	require.Equal(t, []int{27, 24, 23, 11, 0}, seq.Collect[int, int](v))
	require.Equal(t, 5, v.Len())
	require.Equal(t, 5, v.Distance(v.Begin(), v.End()))
	require.Equal(t, 23, v.At(v.Advance(v.Begin(), 2)))
	require.Equal(t, 0, v.At(v.Prev(v.End())))
	require.Equal(t, seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}, v.Capability())

	lst := seq.Reverse[int, *list.Element](seq.NewList(values...))
	require.Equal(t, []int{27, 24, 23, 11, 0}, seq.Collect[int, *list.Element](lst))

	testutil.RequirePanicIs(t, seq.ErrNotBidirectional, func() {
		seq.Reverse[int, *seq.Node[int]](seq.NewLinked(values...))
	})
}

func TestPipe(t *testing.T) {
	s := seq.Pipe(seq.Forward[int, int](seq.Slice(values)), seq.ReverseAdaptor[int, int]())
	s = seq.Pipe(s, seq.DropAdaptor[int, int](1))
	taken := seq.Pipe(s, seq.TakeAdaptor[int, int](2))
	require.Equal(t, []int{24, 23}, seq.Collect(taken))
	require.Equal(t, seq.Capability{Tier: seq.TierRandomAccess, Sized: true, Common: true}, seq.Classify(taken))
}

func TestMemoize(t *testing.T) {
	cases := []struct {
		Name  string
		Size  int
		Calls int
	}{
		{Name: "cached", Size: 8, Calls: 3},
		{Name: "disabled", Size: 0, Calls: 6},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			calls := 0
			mapped := seq.Map[int, int, int](seq.Slice([]int{1, 2, 3}), func(i int) int {
				calls++
				return i * 10
			})
			v := seq.Memoize[int, int](mapped, c.Size)
			require.Equal(t, []int{10, 20, 30}, seq.Collect[int, int](v))
			require.Equal(t, []int{10, 20, 30}, seq.Collect[int, int](v))
			require.Equal(t, c.Calls, calls)
		})
	}
}
