package vecmap

import "slices"

// Slot is a single-key capability obtained from Map.Entry. It remembers the
// position found by one binary search so that a read-then-write sequence
// (inspect, then insert or update) does not search twice.
//
// A Slot is invalidated by any other mutation of the map; use it
// immediately after Entry returns it.
type Slot[K, V any] struct {
	m     *Map[K, V]
	key   K
	idx   int
	found bool
}

// Entry locates key with one binary search and returns a Slot for it,
// vacant or occupied.
func (m *Map[K, V]) Entry(key K) Slot[K, V] {
	idx, found := m.search(key)
	return Slot[K, V]{m: m, key: key, idx: idx, found: found}
}

// Key returns the key this slot addresses.
func (s Slot[K, V]) Key() K { return s.key }

// Occupied reports whether the key is present.
func (s Slot[K, V]) Occupied() bool { return s.found }

// Get returns the stored value of an occupied slot.
func (s Slot[K, V]) Get() (V, bool) {
	if !s.found {
		var zero V
		return zero, false
	}
	return s.m.entries[s.idx].Value, true
}

// AndModify applies f to the stored value if the slot is occupied, then
// returns the slot for chaining:
//
//	m.Entry(k).AndModify(func(v *int) { *v++ }).OrInsert(1)
func (s Slot[K, V]) AndModify(f func(*V)) Slot[K, V] {
	if s.found {
		f(&s.m.entries[s.idx].Value)
	}
	return s
}

// OrInsert inserts value if the slot is vacant and returns a pointer to
// the stored value. The pointer is invalidated by any subsequent mutation
// of the map.
func (s Slot[K, V]) OrInsert(value V) *V {
	if !s.found {
		s.insert(value)
	}
	return &s.m.entries[s.idx].Value
}

// OrInsertWith is OrInsert with a lazily constructed value: construct runs
// only when the slot is vacant.
func (s Slot[K, V]) OrInsertWith(construct func() V) *V {
	if !s.found {
		s.insert(construct())
	}
	return &s.m.entries[s.idx].Value
}

// OrDefault inserts the zero value if the slot is vacant and returns a
// pointer to the stored value.
func (s Slot[K, V]) OrDefault() *V {
	if !s.found {
		var zero V
		s.insert(zero)
	}
	return &s.m.entries[s.idx].Value
}

// Set stores value at the slot, inserting or replacing as needed, and
// returns the previously stored value if the slot was occupied.
func (s Slot[K, V]) Set(value V) (V, bool) {
	var prev V
	if s.found {
		prev = s.m.entries[s.idx].Value
		s.m.entries[s.idx].Value = value
		return prev, true
	}
	s.insert(value)
	return prev, false
}

// Delete removes the entry of an occupied slot and returns its value.
func (s Slot[K, V]) Delete() (V, bool) {
	if !s.found {
		var zero V
		return zero, false
	}
	v := s.m.entries[s.idx].Value
	s.m.entries = slices.Delete(s.m.entries, s.idx, s.idx+1)
	return v, true
}

func (s Slot[K, V]) insert(value V) {
	s.m.entries = slices.Insert(s.m.entries, s.idx, Entry[K, V]{Key: s.key, Value: value})
}
