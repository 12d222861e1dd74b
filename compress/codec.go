package compress

import "fmt"

// Compressor compresses an opaque byte stream.
//
// charconv's codecs never compress anything themselves (§5: the core never
// allocates beyond the caller's buffer); this interface exists for the
// demonstration boundary, where a UNI-CODEC transcoding result is handed
// off to a general-purpose compressor before being written or sent.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (NoOpCompressor returns the
	//     input slice itself; the other codecs return a new allocation)
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses data produced by the matching Compressor.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	original, err := decompressor.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: implementations must be safe for concurrent use or
// document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with an incompatible algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a compression algorithm.
type Type uint8

const (
	None Type = 0x1 // None applies no compression.
	Zstd Type = 0x2 // Zstd applies Zstandard compression.
	S2   Type = 0x3 // S2 applies S2 (Snappy-family) compression.
	LZ4  Type = 0x4 // LZ4 applies LZ4 compression.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Stats reports the outcome of a compression operation, useful when a
// caller wants to compare algorithms over the same payload.
type Stats struct {
	Algorithm           Type
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// Ratio returns compressed size / original size. Values below 1.0 indicate
// successful compression.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec builds a Codec for the specified algorithm.
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %s", t)
	}
}
