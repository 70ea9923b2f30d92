package seq_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/treeverse/ringview/pkg/seq"
	"github.com/treeverse/ringview/pkg/seq/mock"
)

func TestSliceIterator(t *testing.T) {
	it := seq.NewSliceIterator([]string{"a", "b"})
	got, err := seq.Drain[string](it)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
	require.False(t, it.Next())
	require.Equal(t, "", it.Value())
}

func TestSliceIteratorClose(t *testing.T) {
	it := seq.NewSliceIterator([]int{1, 2, 3})
	require.True(t, it.Next())
	it.Close()
	require.False(t, it.Next())
}

func TestPullIterator(t *testing.T) {
	it := seq.Values(slices.Values([]int{4, 5, 6}))
	got, err := seq.Drain[int](it)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, got)
	require.False(t, it.Next())
}

func TestPullIteratorCloseEarly(t *testing.T) {
	it := seq.Values(slices.Values([]int{4, 5, 6}))
	require.True(t, it.Next())
	require.Equal(t, 4, it.Value())
	it.Close()
	require.False(t, it.Next())
}

func TestDrainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errSomeError := errors.New("some error")
	it := mock.NewMockIterator[int](ctrl)
	gomock.InOrder(
		it.EXPECT().Next().Return(true),
		it.EXPECT().Value().Return(7),
		it.EXPECT().Next().Return(false),
	)
	it.EXPECT().Err().Return(errSomeError)
	it.EXPECT().Close()

	got, err := seq.Drain[int](it)
	require.ErrorIs(t, err, errSomeError)
	require.Equal(t, []int{7}, got)
}
