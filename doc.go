// Package vecmap provides ordered, array-backed associative containers:
// Map (sorted key/value entries in one contiguous slice), SplitMap (parallel
// key and value slices for key-scan locality), and Set (sorted deduplicated
// elements).
//
// All three keep their elements strictly ascending under a total-order
// comparator, giving O(log n) lookup by binary search, cache-friendly
// sequential scans, and O(n+m) set algebra (union, intersection, difference,
// keyed merge) against another sorted container. Choose them over trees or
// hash maps when compactness and scan speed matter more than O(1)
// single-element mutation.
//
// # Quick start
//
//	m := vecmap.New[int, string]()
//	m.Set(2, "b")
//	m.Set(4, "a")
//	v, ok := m.Get(2) // "b", true
//
//	a := vecmap.SetFrom([]uint64{1, 2, 3, 5})
//	b := vecmap.SetFrom([]uint64{2, 4, 5, 6})
//	u := a.Union(b) // {1, 2, 3, 4, 5, 6}
//
// Bulk construction sorts an arbitrary unsorted, duplicate-laden input and
// deduplicates keeping the last occurrence of each key:
//
//	m := vecmap.From([]vecmap.Entry[int, string]{
//		{4, "a"}, {2, "b"}, {5, "c"}, {2, "d"},
//	}) // [(2,"d") (4,"a") (5,"c")]
//
// # Concurrency
//
// Containers are plain value types with no internal locking. Any number of
// goroutines may read a container that no goroutine is mutating; concurrent
// mutation requires external synchronization.
//
// # Serialization
//
// Map, SplitMap and Set implement json.Marshaler and json.Unmarshaler,
// round-tripping through a plain entry sequence. Decoding runs the same
// sort-and-deduplicate step as bulk construction, so untrusted encodings
// cannot violate the ordering invariant. The codec subpackage provides
// pluggable encodings with optional zstd/lz4 compression.
package vecmap
