package vecmap

import "iter"

// Iteration is non-allocating and yields elements in ascending key order
// (descending for Backward). Iterators are freshly re-iterable but not
// resumable across mutation: mutating a container while ranging over it is
// undefined.

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.entries) - 1; i >= 0; i-- {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// All returns an iterator over the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.elems) - 1; i >= 0; i-- {
			if !yield(s.elems[i]) {
				return
			}
		}
	}
}

// All returns an iterator over the entries in ascending key order.
func (m *SplitMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *SplitMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.keys) - 1; i >= 0; i-- {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}
