package vecmap

import (
	"encoding/json"
	"errors"

	"github.com/hupe1980/vecmap/internal/merge"
)

// JSON round-trips every container through its plain ascending sequence.
// Decoding re-runs the bulk sort-and-deduplicate step, so an adversarial
// encoding (unsorted, duplicate keys) decodes into a valid container with
// the usual last-wins tie-break instead of violating the invariant.

// errNoComparator is returned when decoding into a container that was not
// created with a constructor and therefore has no comparator.
var errNoComparator = errors.New("vecmap: unmarshal into container without comparator (use a constructor)")

// MarshalJSON encodes the map as an array of {"key","value"} objects in
// ascending key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.entries)
}

// UnmarshalJSON decodes an array of {"key","value"} objects, sorting and
// deduplicating it. The map must have been created with New, NewFunc, From
// or FromFunc so a comparator is present.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.compare == nil {
		return errNoComparator
	}
	var entries []Entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.entries = merge.SortDedup(entries, m.compareEntries)
	return nil
}

// MarshalJSON encodes the set as an array of elements in ascending order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	if s.elems == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.elems)
}

// UnmarshalJSON decodes an array of elements, sorting and deduplicating
// it. The set must have been created with NewSet, NewSetFunc, SetFrom or
// SetFromFunc so a comparator is present.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	if s.compare == nil {
		return errNoComparator
	}
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	s.elems = merge.SortDedup(elems, s.compare)
	return nil
}

// MarshalJSON encodes the map as an array of {"key","value"} objects in
// ascending key order, the same shape Map produces.
func (m *SplitMap[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// UnmarshalJSON decodes an array of {"key","value"} objects, sorting,
// deduplicating and unzipping it into the parallel slices. The map must
// have been created with NewSplit, NewSplitFunc, SplitFrom or
// SplitFromFunc so a comparator is present.
func (m *SplitMap[K, V]) UnmarshalJSON(data []byte) error {
	if m.compare == nil {
		return errNoComparator
	}
	var entries []Entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	decoded := SplitFromFunc(m.compare, entries)
	m.keys, m.values = decoded.keys, decoded.values
	return nil
}
