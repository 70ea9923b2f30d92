package seq

import (
	"container/list"

	"github.com/eapache/queue"
)

// SliceSeq is a random access view over a slice. Positions are indexes.
type SliceSeq[T any] struct {
	s []T
}

func Slice[T any](s []T) SliceSeq[T] {
	return SliceSeq[T]{s: s}
}

// Empty returns a sequence with no elements.
func Empty[T any]() SliceSeq[T] {
	return SliceSeq[T]{}
}

// Single returns a sequence holding only v.
func Single[T any](v T) SliceSeq[T] {
	return SliceSeq[T]{s: []T{v}}
}

func (s SliceSeq[T]) Begin() int                { return 0 }
func (s SliceSeq[T]) End() int                  { return len(s.s) }
func (s SliceSeq[T]) Done(p int) bool           { return p >= len(s.s) }
func (s SliceSeq[T]) Next(p int) int            { return p + 1 }
func (s SliceSeq[T]) Prev(p int) int            { return p - 1 }
func (s SliceSeq[T]) At(p int) T                { return s.s[p] }
func (s SliceSeq[T]) Advance(p int, n int) int  { return p + n }
func (s SliceSeq[T]) Distance(from, to int) int { return to - from }
func (s SliceSeq[T]) Len() int                  { return len(s.s) }

// StringSeq is a random access view over the bytes of a string.
type StringSeq struct {
	s string
}

func String(s string) StringSeq {
	return StringSeq{s: s}
}

func (s StringSeq) Begin() int                { return 0 }
func (s StringSeq) End() int                  { return len(s.s) }
func (s StringSeq) Done(p int) bool           { return p >= len(s.s) }
func (s StringSeq) Next(p int) int            { return p + 1 }
func (s StringSeq) Prev(p int) int            { return p - 1 }
func (s StringSeq) At(p int) byte             { return s.s[p] }
func (s StringSeq) Advance(p int, n int) int  { return p + n }
func (s StringSeq) Distance(from, to int) int { return to - from }
func (s StringSeq) Len() int                  { return len(s.s) }

// ListSeq is a bidirectional view over a container/list holding values of
// type T. The nil element is the end position.
type ListSeq[T any] struct {
	l *list.List
}

func List[T any](l *list.List) ListSeq[T] {
	return ListSeq[T]{l: l}
}

// NewList builds a list holding values and returns a view over it.
func NewList[T any](values ...T) ListSeq[T] {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return ListSeq[T]{l: l}
}

func (s ListSeq[T]) Begin() *list.Element               { return s.l.Front() }
func (s ListSeq[T]) End() *list.Element                 { return nil }
func (s ListSeq[T]) Done(e *list.Element) bool          { return e == nil }
func (s ListSeq[T]) Next(e *list.Element) *list.Element { return e.Next() }
func (s ListSeq[T]) At(e *list.Element) T               { return e.Value.(T) }
func (s ListSeq[T]) Len() int                           { return s.l.Len() }

// Prev steps back from e; stepping back from the end yields the last element.
func (s ListSeq[T]) Prev(e *list.Element) *list.Element {
	if e == nil {
		return s.l.Back()
	}
	return e.Prev()
}

// Node is an element of a singly linked list.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// LinkedSeq is a forward-only singly linked list. Its length is not known
// without traversal.
type LinkedSeq[T any] struct {
	head *Node[T]
}

func NewLinked[T any](values ...T) LinkedSeq[T] {
	var head *Node[T]
	for i := len(values) - 1; i >= 0; i-- {
		head = &Node[T]{Value: values[i], next: head}
	}
	return LinkedSeq[T]{head: head}
}

func (s LinkedSeq[T]) Begin() *Node[T]          { return s.head }
func (s LinkedSeq[T]) End() *Node[T]            { return nil }
func (s LinkedSeq[T]) Done(n *Node[T]) bool     { return n == nil }
func (s LinkedSeq[T]) Next(n *Node[T]) *Node[T] { return n.next }
func (s LinkedSeq[T]) At(n *Node[T]) T          { return n.Value }

// QueueSeq is a random access view over an eapache/queue ring buffer. The
// queue stores values of type T; positions are indexes from the head.
type QueueSeq[T any] struct {
	q *queue.Queue
}

func Queue[T any](q *queue.Queue) QueueSeq[T] {
	return QueueSeq[T]{q: q}
}

// NewQueue builds a queue holding values and returns a view over it.
func NewQueue[T any](values ...T) QueueSeq[T] {
	q := queue.New()
	for _, v := range values {
		q.Add(v)
	}
	return QueueSeq[T]{q: q}
}

func (s QueueSeq[T]) Begin() int                { return 0 }
func (s QueueSeq[T]) End() int                  { return s.q.Length() }
func (s QueueSeq[T]) Done(p int) bool           { return p >= s.q.Length() }
func (s QueueSeq[T]) Next(p int) int            { return p + 1 }
func (s QueueSeq[T]) Prev(p int) int            { return p - 1 }
func (s QueueSeq[T]) At(p int) T                { return s.q.Get(p).(T) }
func (s QueueSeq[T]) Advance(p int, n int) int  { return p + n }
func (s QueueSeq[T]) Distance(from, to int) int { return to - from }
func (s QueueSeq[T]) Len() int                  { return s.q.Length() }
