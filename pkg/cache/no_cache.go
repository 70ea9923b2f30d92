package cache

// NoCache returns a Cache that calls setFn on every lookup.
func NoCache[K comparable, V any]() Cache[K, V] {
	return noCache[K, V]{}
}

type noCache[K comparable, V any] struct{}

func (noCache[K, V]) Name() string { return "none" }

func (noCache[K, V]) GetOrSet(_ K, setFn SetFn[V]) (v V, err error) {
	return setFn()
}
