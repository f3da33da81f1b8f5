package vecmap

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hupe1980/vecmap/internal/merge"
)

// Set is a collection of distinct elements stored in one contiguous slice,
// strictly ascending under a total-order comparator. Membership tests are
// O(log n) binary search; union, intersection and difference against
// another Set run in one linear pass over both.
//
// A Set must be created with NewSet, NewSetFunc, SetFrom or SetFromFunc.
// It is not safe for concurrent mutation. Set algebra requires both
// operands to use the same ordering.
type Set[T any] struct {
	compare func(T, T) int
	elems   []T
}

// NewSet creates an empty Set ordered by the standard Go ordering of T.
func NewSet[T cmp.Ordered]() *Set[T] {
	return NewSetFunc(cmp.Compare[T])
}

// NewSetFunc creates an empty Set ordered by an arbitrary comparator.
// compare must define a total order over elements.
func NewSetFunc[T any](compare func(T, T) int) *Set[T] {
	return &Set[T]{compare: compare}
}

// SetFrom builds a Set from an arbitrary element slice: the input may be
// unsorted and contain duplicates. Elements are sorted and deduplicated
// keeping the last occurrence of each, O(n log n). SetFrom takes ownership
// of elems.
func SetFrom[T cmp.Ordered](elems []T) *Set[T] {
	return SetFromFunc(cmp.Compare[T], elems)
}

// SetFromFunc is SetFrom with an arbitrary comparator.
func SetFromFunc[T any](compare func(T, T) int, elems []T) *Set[T] {
	return &Set[T]{compare: compare, elems: merge.SortDedup(elems, compare)}
}

// search returns the position of v and whether it is present.
func (s *Set[T]) search(v T) (int, bool) {
	return slices.BinarySearchFunc(s.elems, v, s.compare)
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.elems) }

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.search(v)
	return ok
}

// Find looks up an element by a probe of a different type: order reports
// the ordering of a stored element relative to the probe and must be
// consistent with the set's comparator.
func (s *Set[T]) Find(order func(T) int) (T, bool) {
	i := sort.Search(len(s.elems), func(i int) bool { return order(s.elems[i]) >= 0 })
	if i < len(s.elems) && order(s.elems[i]) == 0 {
		return s.elems[i], true
	}
	var zero T
	return zero, false
}

// Add inserts v, returning the previously stored equal element if one was
// present. The distinction matters when the comparator considers distinct
// values equal: the stored element is replaced by v and handed back.
func (s *Set[T]) Add(v T) (T, bool) {
	var prev T
	i, ok := s.search(v)
	if ok {
		prev = s.elems[i]
		s.elems[i] = v
		return prev, true
	}
	s.elems = slices.Insert(s.elems, i, v)
	return prev, false
}

// Delete removes v, returning the removed element.
func (s *Set[T]) Delete(v T) (T, bool) {
	i, ok := s.search(v)
	if !ok {
		var zero T
		return zero, false
	}
	e := s.elems[i]
	s.elems = slices.Delete(s.elems, i, i+1)
	return e, true
}

// Union returns a new Set holding every element present in s or other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	dst := make([]T, 0, len(s.elems)+len(other.elems))
	return &Set[T]{compare: s.compare, elems: merge.Union(dst, s.elems, other.elems, s.compare)}
}

// UnionInPlace folds every element of other into s without allocating a
// second result buffer.
func (s *Set[T]) UnionInPlace(other *Set[T]) {
	s.elems = merge.UnionInPlace(s.elems, other.elems, s.compare)
}

// Intersect returns a new Set holding every element present in both s and
// other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	dst := make([]T, 0, min(len(s.elems), len(other.elems)))
	return &Set[T]{compare: s.compare, elems: merge.Intersect(dst, s.elems, other.elems, s.compare)}
}

// IntersectInPlace keeps in s only the elements also present in other.
func (s *Set[T]) IntersectInPlace(other *Set[T]) {
	s.elems = merge.IntersectInPlace(s.elems, other.elems, s.compare)
}

// Difference returns a new Set holding every element of s absent from
// other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	dst := make([]T, 0, len(s.elems))
	return &Set[T]{compare: s.compare, elems: merge.Diff(dst, s.elems, other.elems, s.compare)}
}

// DifferenceInPlace removes from s every element present in other.
func (s *Set[T]) DifferenceInPlace(other *Set[T]) {
	s.elems = merge.DiffInPlace(s.elems, other.elems, s.compare)
}

// Apply invokes visit with every element also present in other, in
// ascending order, without materializing the intersection. Both sets must
// use the same ordering.
func (s *Set[T]) Apply(other *Set[T], visit func(T)) {
	merge.Common(s.elems, other.elems, s.compare, visit)
}

// Slice returns the elements in ascending order as a view of the backing
// array. The returned slice must not be modified and is invalidated by any
// mutation of the set.
func (s *Set[T]) Slice() []T { return s.elems }

// Clone returns a deep copy of the set structure. Elements are copied by
// assignment.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{compare: s.compare, elems: slices.Clone(s.elems)}
}
