package ring_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
	"github.com/treeverse/ringview/pkg/seq/mock"
)

func TestInputProducesOnce(t *testing.T) {
	for _, count := range []ring.Count{ring.Unbounded, ring.Bounded(1), ring.Bounded(4)} {
		t.Run(count.String(), func(t *testing.T) {
			v := ring.NewInput[int](seq.NewSliceIterator([]int{1, 2, 3}), count)
			require.Equal(t, seq.Capability{Tier: seq.TierInput}, seq.ClassifyIterator[int](v))
			got, err := seq.Drain[int](v)
			require.NoError(t, err)
			require.Equal(t, []int{1, 2, 3}, got)
			require.False(t, v.Next())
		})
	}
}

func TestInputZeroCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	it := mock.NewMockIterator[string](ctrl)
	it.EXPECT().Err().Return(nil)
	it.EXPECT().Close()

	v := ring.NewInput[string](it, ring.Bounded(0))
	got, err := seq.Drain[string](v)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestInputSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errSomeError := errors.New("some error")
	it := mock.NewMockIterator[string](ctrl)
	gomock.InOrder(
		it.EXPECT().Next().Return(true),
		it.EXPECT().Value().Return("a"),
		it.EXPECT().Next().Return(false),
	)
	it.EXPECT().Err().Return(errSomeError)
	it.EXPECT().Close()

	v := ring.NewInput[string](it, ring.Unbounded)
	got, err := seq.Drain[string](v)
	require.ErrorIs(t, err, errSomeError)
	require.Equal(t, []string{"a"}, got)
}
