// Package codec provides pluggable serialization for the vecmap
// containers. Every container round-trips through its plain ascending
// sequence (via json.Marshaler/json.Unmarshaler), so any codec here
// restores the ordering invariant on decode even from adversarial input:
// the container itself re-sorts and deduplicates.
//
// Codec selection is a compatibility boundary: bytes written by one codec
// decode only with the same codec. Persisting callers should store
// Codec.Name alongside the payload and reopen via ByName.
package codec

import "fmt"

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name. Compressed variants
// compose as "<compression>+<inner>", e.g. "zstd+go-json".
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "zstd+json":
		return Zstd(JSON{}), true
	case "zstd+go-json":
		return Zstd(GoJSON{}), true
	case "lz4+json":
		return LZ4(JSON{}), true
	case "lz4+go-json":
		return LZ4(GoJSON{}), true
	default:
		return nil, false
	}
}

// Default is the codec used when callers do not pick one.
var Default Codec = GoJSON{}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
