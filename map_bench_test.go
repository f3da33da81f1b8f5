package vecmap

import (
	"fmt"
	"slices"
	"testing"

	"github.com/hupe1980/vecmap/testutil"
)

// Benchmarks against the built-in map, mirroring the sizes where the
// array layout is expected to win (small), break even, and lose (large)
// on point lookups.

var benchSizes = []int{16, 1024, 16384}

func benchEntries(n int) []Entry[int, int] {
	rng := testutil.NewRNG(int64(n))
	entries := make([]Entry[int, int], 0, n)
	for _, k := range rng.DupInts(n, n*4) {
		entries = append(entries, Entry[int, int]{Key: k, Value: k})
	}
	return entries
}

func BenchmarkMapGet(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := From(benchEntries(n))
			keys := m.Entries()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = m.Get(keys[i%len(keys)].Key)
			}
		})
	}
}

func BenchmarkBuiltinMapGet(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := make(map[int]int, n)
			var keys []int
			for _, e := range benchEntries(n) {
				m[e.Key] = e.Value
				keys = append(keys, e.Key)
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = m[keys[i%len(keys)]]
			}
		})
	}
}

// Ascending insertion hits the append fast path.
func BenchmarkMapSet_Ascending(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := New[int, int]()
				for k := range n {
					m.Set(k, k)
				}
			}
		})
	}
}

// Random insertion pays for the memmove on every miss.
func BenchmarkMapSet_Random(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			entries := benchEntries(n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := New[int, int]()
				for _, e := range entries {
					m.Set(e.Key, e.Value)
				}
			}
		})
	}
}

// Bulk construction sorts once instead of inserting one by one. From takes
// ownership of its input, so each iteration gets a fresh copy.
func BenchmarkMapFrom(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			entries := benchEntries(n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = From(slices.Clone(entries))
			}
		})
	}
}

func BenchmarkMapMerge(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base := From(benchEntries(n))
			other := From(benchEntries(n))

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m := base.Clone()
				m.Merge(other, func(existing, incoming int) int { return max(existing, incoming) })
			}
		})
	}
}

func BenchmarkMapIterate(b *testing.B) {
	m := From(benchEntries(16384))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var sum int
		for _, v := range m.All() {
			sum += v
		}
		_ = sum
	}
}
