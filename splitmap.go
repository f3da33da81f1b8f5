package vecmap

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hupe1980/vecmap/internal/merge"
)

// SplitMap is a key/value mapping stored as two parallel slices: all keys
// in one contiguous ascending slice, all values in another, with
// len(keys) == len(values) at every externally observable point. Compared
// to Map it scans keys with better locality (values never pollute the key
// cache lines) and exposes zero-copy parallel views, at the cost of a
// repair discipline for edits that must touch both slices.
//
// Every structural edit runs inside a guarded window: the container parks
// an empty state while the edit works on local handles, and reclaims the
// edited slices only on success. If a caller-supplied comparator or value
// constructor panics mid-edit, the edit is lost but the container remains
// a valid empty map, never one with mismatched lengths. Callers wanting
// stronger guarantees can Clone before editing.
//
// A SplitMap must be created with NewSplit, NewSplitFunc, SplitFrom or
// SplitFromFunc. It is not safe for concurrent mutation.
type SplitMap[K, V any] struct {
	compare func(K, K) int
	keys    []K
	values  []V
}

// NewSplit creates an empty SplitMap ordered by the standard Go ordering
// of K.
func NewSplit[K cmp.Ordered, V any]() *SplitMap[K, V] {
	return NewSplitFunc[K, V](cmp.Compare[K])
}

// NewSplitFunc creates an empty SplitMap ordered by an arbitrary
// comparator. compare must define a total order over keys.
func NewSplitFunc[K, V any](compare func(K, K) int) *SplitMap[K, V] {
	return &SplitMap[K, V]{compare: compare}
}

// SplitFrom builds a SplitMap from an arbitrary entry slice: the input may
// be unsorted and contain duplicate keys. Entries are sorted by key and
// deduplicated keeping the last occurrence of each key, then unzipped into
// the parallel slices. SplitFrom takes ownership of entries.
func SplitFrom[K cmp.Ordered, V any](entries []Entry[K, V]) *SplitMap[K, V] {
	return SplitFromFunc(cmp.Compare[K], entries)
}

// SplitFromFunc is SplitFrom with an arbitrary comparator.
func SplitFromFunc[K, V any](compare func(K, K) int, entries []Entry[K, V]) *SplitMap[K, V] {
	entries = merge.SortDedup(entries, func(a, b Entry[K, V]) int { return compare(a.Key, b.Key) })
	m := &SplitMap[K, V]{
		compare: compare,
		keys:    make([]K, len(entries)),
		values:  make([]V, len(entries)),
	}
	for i, e := range entries {
		m.keys[i] = e.Key
		m.values[i] = e.Value
	}
	return m
}

// searchIn returns the position of key and whether it is present in keys.
func (m *SplitMap[K, V]) searchIn(keys []K, key K) (int, bool) {
	return slices.BinarySearchFunc(keys, key, m.compare)
}

// Len returns the number of entries.
func (m *SplitMap[K, V]) Len() int { return len(m.keys) }

// Get returns the value stored under key.
func (m *SplitMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.searchIn(m.keys, key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

// GetPtr returns a pointer to the value stored under key, or nil if the
// key is absent. The pointer aims into the backing array and is
// invalidated by any subsequent mutation of the map.
func (m *SplitMap[K, V]) GetPtr(key K) *V {
	i, ok := m.searchIn(m.keys, key)
	if !ok {
		return nil
	}
	return &m.values[i]
}

// Contains reports whether key is present.
func (m *SplitMap[K, V]) Contains(key K) bool {
	_, ok := m.searchIn(m.keys, key)
	return ok
}

// Find looks up an entry by a probe of a different type: order reports the
// ordering of a stored key relative to the probe and must be consistent
// with the map's comparator.
func (m *SplitMap[K, V]) Find(order func(K) int) (K, V, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return order(m.keys[i]) >= 0 })
	if i < len(m.keys) && order(m.keys[i]) == 0 {
		return m.keys[i], m.values[i], true
	}
	var k K
	var v V
	return k, v, false
}

// Set stores value under key, returning the previously stored value if the
// key was already present. Like Map.Set, a key ordering after the current
// maximum is appended without searching.
func (m *SplitMap[K, V]) Set(key K, value V) (V, bool) {
	return m.SetFunc(key, func() V { return value })
}

// SetFunc is Set with a lazily constructed value: construct runs only once
// the slot is determined, inside the guarded window. If construct (or the
// comparator) panics, the map is left valid and empty and the panic
// propagates.
func (m *SplitMap[K, V]) SetFunc(key K, construct func() V) (V, bool) {
	var prev V
	var replaced bool

	// Guarded window: park an empty state so that a panicking comparator
	// or constructor cannot leave keys and values length-mismatched.
	keys, values := m.keys, m.values
	m.keys, m.values = nil, nil

	// An empty map behaves like a new maximum.
	c := 1
	if n := len(keys); n > 0 {
		c = m.compare(key, keys[n-1])
	}
	switch {
	case c > 0:
		keys = append(keys, key)
		values = append(values, construct())
	case c == 0:
		n := len(keys)
		prev, replaced = values[n-1], true
		values[n-1] = construct()
	default:
		i, ok := m.searchIn(keys, key)
		if ok {
			prev, replaced = values[i], true
			values[i] = construct()
		} else {
			keys = slices.Insert(keys, i, key)
			values = slices.Insert(values, i, construct())
		}
	}

	m.keys, m.values = keys, values
	return prev, replaced
}

// Delete removes key, returning the removed value. The edit runs inside
// the same guarded window as Set.
func (m *SplitMap[K, V]) Delete(key K) (V, bool) {
	var prev V
	var found bool

	keys, values := m.keys, m.values
	m.keys, m.values = nil, nil

	i, ok := m.searchIn(keys, key)
	if ok {
		prev, found = values[i], true
		keys = slices.Delete(keys, i, i+1)
		values = slices.Delete(values, i, i+1)
	}

	m.keys, m.values = keys, values
	return prev, found
}

// RemoveLessThan evicts every entry whose key orders strictly before key,
// trimming both parallel slices inside the guarded window.
func (m *SplitMap[K, V]) RemoveLessThan(key K) {
	keys, values := m.keys, m.values
	m.keys, m.values = nil, nil

	n := len(keys)
	keys = merge.TrimLess(keys, func(k K) int { return m.compare(k, key) })
	cut := n - len(keys)
	if cut > 0 {
		remain := copy(values, values[cut:])
		clear(values[remain:])
		values = values[:remain]
	}

	m.keys, m.values = keys, values
}

// Keys returns the keys in ascending order as a view of the backing array.
// The returned slice must not be modified and is invalidated by any
// mutation of the map.
func (m *SplitMap[K, V]) Keys() []K { return m.keys }

// Values returns the values, parallel to Keys, as a view of the backing
// array. The returned slice must not be modified and is invalidated by any
// mutation of the map.
func (m *SplitMap[K, V]) Values() []V { return m.values }

// Entries returns a copy of the entries in ascending key order.
func (m *SplitMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(m.keys))
	for i, k := range m.keys {
		entries[i] = Entry[K, V]{Key: k, Value: m.values[i]}
	}
	return entries
}

// Clone returns a deep copy of the map structure. Keys and values are
// copied by assignment.
func (m *SplitMap[K, V]) Clone() *SplitMap[K, V] {
	return &SplitMap[K, V]{
		compare: m.compare,
		keys:    slices.Clone(m.keys),
		values:  slices.Clone(m.values),
	}
}
