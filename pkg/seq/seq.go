// Package seq defines traversal contracts for sequences, grades a sequence
// by the strongest traversal it supports, and provides sources and
// tier-preserving adaptors built on those contracts.
//
// A multi-pass sequence is expressed positionally: the sequence owns the
// traversal logic and hands out comparable position values. Copying a
// position copies the whole traversal state, and two positions are equal
// iff they denote the same place in the sequence.
package seq

//go:generate mockgen -package=mock -destination=mock/iterator.go github.com/treeverse/ringview/pkg/seq Iterator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotBidirectional = errors.New("sequence is not bidirectional")
	ErrNotRandomAccess  = errors.New("sequence is not random access")
	ErrNotSized         = errors.New("sequence is not sized")
	ErrNotCommon        = errors.New("sequence has no common end")
	ErrUnknownTier      = errors.New("unknown tier")
)

// Iterator is a single-pass pull source. Values are consumed by Next and can
// not be visited again.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Err() error
	Close()
}

// Forward is a multi-pass sequence supporting successor and equality.
// Done is the sentinel relation: it reports whether p is past the last
// element.
type Forward[T any, P comparable] interface {
	Begin() P
	Done(p P) bool
	Next(p P) P
	At(p P) T
}

// Bidirectional adds the predecessor operation.
type Bidirectional[T any, P comparable] interface {
	Forward[T, P]
	Prev(p P) P
}

// RandomAccess adds constant time jumps and distances.
type RandomAccess[T any, P comparable] interface {
	Bidirectional[T, P]
	Advance(p P, n int) P
	Distance(from, to P) int
}

// Sized reports the number of elements in O(1).
type Sized interface {
	Len() int
}

// Common is implemented by sequences whose end is a reusable position of the
// same type as Begin.
type Common[P comparable] interface {
	End() P
}

// Capable is implemented by sequences whose capability depends on runtime
// state (adaptors, ring views). Classify trusts the report over the method
// set.
type Capable interface {
	Capability() Capability
}

// Tier is the strongest traversal a sequence offers.
type Tier int

const (
	TierInput Tier = iota
	TierForward
	TierBidirectional
	TierRandomAccess
)

var tierNames = map[Tier]string{
	TierInput:         "input",
	TierForward:       "forward",
	TierBidirectional: "bidirectional",
	TierRandomAccess:  "random-access",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// ParseTier parses the output of Tier.String.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return TierInput, fmt.Errorf("%w: %s", ErrUnknownTier, s)
}

// Capability describes what a sequence supports.
type Capability struct {
	Tier Tier
	// Sized is true when Len is available in O(1).
	Sized bool
	// Common is true when End is available.
	Common bool
}

func (c Capability) String() string {
	var b strings.Builder
	b.WriteString(c.Tier.String())
	if c.Sized {
		b.WriteString(",sized")
	}
	if c.Common {
		b.WriteString(",common")
	}
	return b.String()
}

// Repeatable reports the tier a cyclic view over a sequence with this
// capability can offer. Random access wraparound needs the pass length and
// a concrete end; stepping backward over a pass boundary needs the end.
func (c Capability) Repeatable() Tier {
	switch {
	case c.Tier >= TierRandomAccess && c.Sized && c.Common:
		return TierRandomAccess
	case c.Tier >= TierBidirectional && c.Common:
		return TierBidirectional
	case c.Tier >= TierForward:
		return TierForward
	default:
		return TierInput
	}
}

// Classify resolves the capability of s once. Sources without a Capability
// method are graded by their method set: random access requires Sized and
// Common, bidirectional requires Common.
func Classify[T any, P comparable](s Forward[T, P]) Capability {
	if c, ok := s.(Capable); ok {
		return c.Capability()
	}
	var c Capability
	_, c.Sized = s.(Sized)
	_, c.Common = s.(Common[P])
	c.Tier = TierForward
	if _, ok := s.(Bidirectional[T, P]); ok && c.Common {
		c.Tier = TierBidirectional
		if _, ok := s.(RandomAccess[T, P]); ok && c.Sized {
			c.Tier = TierRandomAccess
		}
	}
	return c
}

// ClassifyIterator reports the capability of a single-pass source.
func ClassifyIterator[T any](it Iterator[T]) Capability {
	if c, ok := it.(Capable); ok {
		return c.Capability()
	}
	return Capability{Tier: TierInput}
}
