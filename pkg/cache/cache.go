package cache

import (
	"math/rand"
	"time"

	lru "github.com/hnlq715/golang-lru"
)

type JitterFn func() time.Duration
type SetFn[V any] func() (V, error)
type EvictionCallback func(key interface{}, value interface{})

// Params controls a Cache.
type Params struct {
	// User-visible name to give this cache.
	Name string
	// Size is the maximal number of elements to hold.
	Size int
	// Expiry is an extra time to keep elements in cache before eviction.
	// Zero keeps elements until they are evicted by size.
	Expiry time.Duration
	// Jitter is the interval to jitter around expiry.
	JitterFn JitterFn
	// OnEvict is called after an element has been evicted from the cache.
	OnEvict EvictionCallback
}

type Cache[K comparable, V any] interface {
	Name() string
	GetOrSet(k K, setFn SetFn[V]) (v V, err error)
}

type GetSetCache[K comparable, V any] struct {
	p   *Params
	lru *lru.Cache
}

func NewCache[K comparable, V any](size int, expiry time.Duration, jitterFn JitterFn) *GetSetCache[K, V] {
	return NewCacheByParams[K, V](&Params{Size: size, Expiry: expiry, JitterFn: jitterFn})
}

func NewCacheByParams[K comparable, V any](p *Params) *GetSetCache[K, V] {
	c, err := lru.NewWithEvict(p.Size, p.OnEvict)
	if err != nil {
		panic(err)
	}
	return &GetSetCache[K, V]{
		lru: c,
		p:   p,
	}
}

func (c *GetSetCache[K, V]) GetOrSet(k K, setFn SetFn[V]) (v V, err error) {
	if cached, ok := c.lru.Get(k); ok {
		return cached.(V), nil
	}
	v, err = setFn()
	if err != nil {
		return v, err
	}
	if c.p.Expiry > 0 {
		expiry := c.p.Expiry
		if c.p.JitterFn != nil {
			expiry += c.p.JitterFn()
		}
		c.lru.AddEx(k, v, expiry)
	} else {
		c.lru.Add(k, v)
	}
	return v, nil
}

func (c *GetSetCache[K, V]) Name() string { return c.p.Name }

func NewJitterFn(jitter time.Duration) JitterFn {
	return func() time.Duration {
		n := rand.Intn(int(jitter)) //nolint:gosec
		return time.Duration(n)
	}
}
