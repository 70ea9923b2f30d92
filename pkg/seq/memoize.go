package seq

import (
	"github.com/treeverse/ringview/pkg/cache"
)

// MemoView caches elements of its source by position. A cyclic view visits
// the same source positions on every pass, so an expensive Map under a ring
// is computed once per position while the cache holds it.
type MemoView[T any, P comparable] struct {
	passthrough[T, P]
	cache cache.Cache[P, T]
}

// Memoize caches up to size elements of s. A non-positive size disables
// caching.
func Memoize[T any, P comparable](s Forward[T, P], size int) *MemoView[T, P] {
	var c cache.Cache[P, T]
	if size > 0 {
		c = cache.NewCacheByParams[P, T](&cache.Params{Name: "memoize", Size: size})
	} else {
		c = cache.NoCache[P, T]()
	}
	return &MemoView[T, P]{passthrough: passthrough[T, P]{resolve(s)}, cache: c}
}

func (v *MemoView[T, P]) At(p P) T {
	// setFn never fails
	val, _ := v.cache.GetOrSet(p, func() (T, error) {
		return v.src.At(p), nil
	})
	return val
}
