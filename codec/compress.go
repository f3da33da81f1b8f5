package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressed codecs wrap an inner codec and block-compress its output.
// Frame: [UncompressedSize uint32][CompressedSize uint32][Data...], little
// endian. CompressedSize == 0 means the block is stored uncompressed
// (compression did not help).

const blockHeaderSize = 8

// ErrFrameCorrupt is returned when a compressed frame fails validation.
var ErrFrameCorrupt = errors.New("codec: compressed frame corrupt")

// zstd encoder/decoder pools; building them is expensive.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
	lz4Pool         sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	// SpeedDefault balances ratio vs speed for in-memory payloads.
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func getLZ4Compressor() *lz4.Compressor {
	if v := lz4Pool.Get(); v != nil {
		return v.(*lz4.Compressor)
	}
	return &lz4.Compressor{}
}

// Zstd wraps inner with zstd block compression (better ratio, good for
// cold or large payloads).
func Zstd(inner Codec) Codec {
	return compressed{
		inner: inner,
		kind:  "zstd",
		compress: func(src []byte) []byte {
			enc := getZstdEncoder()
			defer zstdEncoderPool.Put(enc)
			return enc.EncodeAll(src, nil)
		},
		decompress: func(src []byte, size uint32) ([]byte, error) {
			dec := getZstdDecoder()
			defer zstdDecoderPool.Put(dec)
			return dec.DecodeAll(src, make([]byte, 0, size))
		},
	}
}

// LZ4 wraps inner with lz4 block compression (fast, good for hot
// payloads).
func LZ4(inner Codec) Codec {
	return compressed{
		inner: inner,
		kind:  "lz4",
		compress: func(src []byte) []byte {
			c := getLZ4Compressor()
			defer lz4Pool.Put(c)
			dst := make([]byte, lz4.CompressBlockBound(len(src)))
			n, err := c.CompressBlock(src, dst)
			if err != nil || n == 0 || n >= len(src) {
				return nil // incompressible, store raw
			}
			return dst[:n]
		},
		decompress: func(src []byte, size uint32) ([]byte, error) {
			dst := make([]byte, size)
			n, err := lz4.UncompressBlock(src, dst)
			if err != nil {
				return nil, err
			}
			return dst[:n], nil
		},
	}
}

type compressed struct {
	inner      Codec
	kind       string
	compress   func(src []byte) []byte // nil result means store raw
	decompress func(src []byte, size uint32) ([]byte, error)
}

// Marshal encodes v with the inner codec and frames the compressed block.
func (c compressed) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	block := c.compress(raw)
	if block == nil || len(block) >= len(raw) {
		out := make([]byte, blockHeaderSize+len(raw))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(raw)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[blockHeaderSize:], raw)
		return out, nil
	}

	out := make([]byte, blockHeaderSize+len(block))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(block)))
	copy(out[blockHeaderSize:], block)
	return out, nil
}

// Unmarshal unframes and decompresses the block, then decodes it with the
// inner codec.
func (c compressed) Unmarshal(data []byte, v any) error {
	if len(data) < blockHeaderSize {
		return fmt.Errorf("%w: short frame (%d bytes)", ErrFrameCorrupt, len(data))
	}
	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if compressedSize == 0 {
		if uint32(len(body)) != uncompressedSize {
			return fmt.Errorf("%w: raw size mismatch", ErrFrameCorrupt)
		}
		return c.inner.Unmarshal(body, v)
	}

	if uint32(len(body)) != compressedSize {
		return fmt.Errorf("%w: block size mismatch", ErrFrameCorrupt)
	}
	raw, err := c.decompress(body, uncompressedSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFrameCorrupt, err)
	}
	if uint32(len(raw)) != uncompressedSize {
		return fmt.Errorf("%w: decompressed size mismatch", ErrFrameCorrupt)
	}
	return c.inner.Unmarshal(raw, v)
}

// Name returns "<compression>+<inner>", e.g. "zstd+go-json".
func (c compressed) Name() string { return c.kind + "+" + c.inner.Name() }
