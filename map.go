package vecmap

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hupe1980/vecmap/internal/merge"
)

// Entry is a single key/value pair of a Map or SplitMap.
type Entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Map is a key/value mapping stored as one contiguous slice of entries
// sorted strictly ascending by key. Lookup is O(log n) binary search;
// insert and delete shift the tail (O(n) worst case); bulk merge and
// range trimming run in a single linear pass.
//
// A Map must be created with New, NewFunc, From or FromFunc. It is not
// safe for concurrent mutation.
type Map[K, V any] struct {
	compare func(K, K) int
	entries []Entry[K, V]
}

// New creates an empty Map ordered by the standard Go ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty Map ordered by an arbitrary comparator.
// compare must define a total order over keys.
func NewFunc[K, V any](compare func(K, K) int) *Map[K, V] {
	return &Map[K, V]{compare: compare}
}

// From builds a Map from an arbitrary entry slice: the input may be
// unsorted and contain duplicate keys. Entries are sorted by key and
// deduplicated keeping the last occurrence of each key, O(n log n).
// From takes ownership of entries.
func From[K cmp.Ordered, V any](entries []Entry[K, V]) *Map[K, V] {
	return FromFunc(cmp.Compare[K], entries)
}

// FromFunc is From with an arbitrary comparator.
func FromFunc[K, V any](compare func(K, K) int, entries []Entry[K, V]) *Map[K, V] {
	m := NewFunc[K, V](compare)
	m.entries = merge.SortDedup(entries, m.compareEntries)
	return m
}

func (m *Map[K, V]) compareEntries(a, b Entry[K, V]) int {
	return m.compare(a.Key, b.Key)
}

// search returns the position of key and whether it is present.
func (m *Map[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e Entry[K, V], k K) int {
		return m.compare(e.Key, k)
	})
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].Value, true
}

// GetPtr returns a pointer to the value stored under key, or nil if the
// key is absent. The pointer aims into the backing array and is
// invalidated by any subsequent mutation of the map.
func (m *Map[K, V]) GetPtr(key K) *V {
	i, ok := m.search(key)
	if !ok {
		return nil
	}
	return &m.entries[i].Value
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.search(key)
	return ok
}

// Find looks up an entry by a probe of a different type: order reports the
// ordering of a stored key relative to the probe and must be consistent
// with the map's comparator.
func (m *Map[K, V]) Find(order func(K) int) (K, V, bool) {
	i := sort.Search(len(m.entries), func(i int) bool { return order(m.entries[i].Key) >= 0 })
	if i < len(m.entries) && order(m.entries[i].Key) == 0 {
		return m.entries[i].Key, m.entries[i].Value, true
	}
	var k K
	var v V
	return k, v, false
}

// Set stores value under key, returning the previously stored value if the
// key was already present. When the new key orders after the current
// maximum the entry is appended without searching, so ascending bulk loads
// run in amortized O(1) per insert.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	var prev V

	// An empty map behaves like a new maximum.
	c := 1
	if n := len(m.entries); n > 0 {
		c = m.compare(key, m.entries[n-1].Key)
	}
	switch {
	case c > 0:
		m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
		return prev, false
	case c == 0:
		n := len(m.entries)
		prev = m.entries[n-1].Value
		m.entries[n-1].Value = value
		return prev, true
	}

	i, ok := m.search(key)
	if ok {
		prev = m.entries[i].Value
		m.entries[i].Value = value
		return prev, true
	}
	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})
	return prev, false
}

// Delete removes key, returning the removed value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	i, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	v := m.entries[i].Value
	m.entries = slices.Delete(m.entries, i, i+1)
	return v, true
}

// Max returns the entry with the greatest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	if len(m.entries) == 0 {
		var k K
		var v V
		return k, v, false
	}
	e := m.entries[len(m.entries)-1]
	return e.Key, e.Value, true
}

// PopMax removes and returns the entry with the greatest key, O(1).
func (m *Map[K, V]) PopMax() (K, V, bool) {
	n := len(m.entries)
	if n == 0 {
		var k K
		var v V
		return k, v, false
	}
	e := m.entries[n-1]
	m.entries = slices.Delete(m.entries, n-1, n)
	return e.Key, e.Value, true
}

// Merge folds every entry of other into m in one linear pass over both
// maps. Keys present only in other are inserted; on a shared key the
// stored value becomes combine(existing, incoming). Intended for
// idempotent accumulation such as running maxima or sums per key.
//
// Both maps must use the same ordering. If combine panics, m is left
// unchanged: the partial result lives past the live range and the length
// was never updated.
func (m *Map[K, V]) Merge(other *Map[K, V], combine func(existing, incoming V) V) {
	m.entries = merge.UnionFuncInPlace(m.entries, other.entries, m.compareEntries,
		func(a, b Entry[K, V]) Entry[K, V] {
			return Entry[K, V]{Key: a.Key, Value: combine(a.Value, b.Value)}
		})
}

// RemoveLessThan evicts every entry whose key orders strictly before key:
// one binary search and one block move, O(n) time, O(1) extra space.
// Useful for trimming stale entries under monotonically increasing keys.
func (m *Map[K, V]) RemoveLessThan(key K) {
	m.entries = merge.TrimLess(m.entries, func(e Entry[K, V]) int {
		return m.compare(e.Key, key)
	})
}

// Apply invokes visit with the value of every entry whose key is present
// in keys, in ascending key order, without materializing the intersection.
// keys must use the same ordering as the map.
func (m *Map[K, V]) Apply(keys *Set[K], visit func(V)) {
	merge.Common(m.entries, keys.elems, func(e Entry[K, V], k K) int {
		return m.compare(e.Key, k)
	}, func(e Entry[K, V]) {
		visit(e.Value)
	})
}

// Entries returns a copy of the entries in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(m.entries)
}

// Clone returns a deep copy of the map structure. Keys and values are
// copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{compare: m.compare, entries: slices.Clone(m.entries)}
}
