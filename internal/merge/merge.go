// Package merge implements the linear-scan primitives shared by the sorted
// containers: single-pass union, intersection and difference over two
// ascending deduplicated slices, their in-place variants, prefix trimming,
// and bulk sort+dedup construction.
//
// All primitives assume their inputs are strictly ascending under the given
// comparator with no duplicate keys. They do not re-verify this: a violated
// precondition yields an under- or over-counted result, never a fault.
package merge

import (
	"slices"
	"sort"
)

// Union appends every element present in a or b to dst, in ascending order.
// On a shared key the element from a survives.
//
// dst must not alias a or b unless it is a zero-length slice positioned past
// the live range of a with capacity for the worst case (see UnionInPlace).
func Union[T any](dst, a, b []T, cmp func(T, T) int) []T {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}

// UnionFunc is Union with a caller-supplied combiner: on a shared key the
// emitted element is combine(fromA, fromB).
func UnionFunc[T any](dst, a, b []T, cmp func(T, T) int, combine func(T, T) T) []T {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, combine(a[i], b[j]))
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}

// Intersect appends every element of a whose key is also present in b.
func Intersect[T any](dst, a, b []T, cmp func(T, T) int) []T {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	return dst
}

// Diff appends every element of a whose key is absent from b.
func Diff[T any](dst, a, b []T, cmp func(T, T) int) []T {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return dst
}

// UnionInPlace merges b into a, returning the merged slice over a's backing
// array. The result is written past a's live range first, then compacted to
// the front with one overlap-safe block move, so no second buffer is
// allocated beyond the one capacity growth.
func UnionInPlace[T any](a, b []T, cmp func(T, T) int) []T {
	if len(b) == 0 {
		return a
	}
	n := len(a)
	a = slices.Grow(a, n+len(b))
	// Appends below stay within the grown capacity, so the scratch region
	// keeps aliasing a's tail and never reallocates.
	out := Union(a[n:n], a[:n], b, cmp)
	return compact(a, n, len(out))
}

// UnionFuncInPlace is UnionInPlace with a caller-supplied combiner. If the
// combiner panics, a's live range is untouched: the partial result lives
// past it and the logical length never changed.
func UnionFuncInPlace[T any](a, b []T, cmp func(T, T) int, combine func(T, T) T) []T {
	if len(b) == 0 {
		return a
	}
	n := len(a)
	a = slices.Grow(a, n+len(b))
	out := UnionFunc(a[n:n], a[:n], b, cmp, combine)
	return compact(a, n, len(out))
}

// DiffInPlace removes from a every element whose key is present in b,
// using the same write-ahead-then-compact strategy as UnionInPlace.
func DiffInPlace[T any](a, b []T, cmp func(T, T) int) []T {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	n := len(a)
	a = slices.Grow(a, n)
	out := Diff(a[n:n], a[:n], b, cmp)
	return compact(a, n, len(out))
}

// IntersectInPlace keeps in a only the elements whose key is present in b.
// The write position never passes the read position, so the result is
// emitted directly at the front without scratch space.
func IntersectInPlace[T any](a, b []T, cmp func(T, T) int) []T {
	i, j, w := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			a[w] = a[i]
			w++
			i++
			j++
		}
	}
	clear(a[w:])
	return a[:w]
}

// compact moves the produced range [n, n+produced) down to the front of a,
// clears the vacated region so dropped references are collectable, and
// truncates the logical length.
func compact[T any](a []T, n, produced int) []T {
	res := a[:produced]
	copy(res, a[n:n+produced])
	clear(a[produced : n+produced])
	return res
}

// TrimLess removes the prefix of a whose elements order strictly before the
// probe. order reports the ordering of an element relative to the probe.
// One binary search, one left block move, O(1) extra space.
func TrimLess[T any](a []T, order func(T) int) []T {
	cut := sort.Search(len(a), func(i int) bool { return order(a[i]) >= 0 })
	if cut == 0 {
		return a
	}
	remain := copy(a, a[cut:])
	clear(a[remain:])
	return a[:remain]
}

// Common invokes visit once per element of a whose key is also present in
// b, in ascending order, without materializing the intersection.
func Common[A, B any](a []A, b []B, cmp func(A, B) int, visit func(A)) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			visit(a[i])
			i++
			j++
		}
	}
}

// SortDedup sorts s by the comparator and removes duplicate keys, keeping
// the last occurrence of each run of equals. The sort is stable, so "last"
// means last in input order; the containers rely on this last-wins
// tie-break as observable behavior.
func SortDedup[T any](s []T, cmp func(T, T) int) []T {
	slices.SortStableFunc(s, cmp)
	if len(s) < 2 {
		return s
	}
	w := 0
	for r := 1; r < len(s); r++ {
		if cmp(s[w], s[r]) != 0 {
			w++
		}
		s[w] = s[r]
	}
	n := w + 1
	clear(s[n:])
	return s[:n]
}
