package intdelta

import "github.com/pierrec/lz4/v4"

// ByteStreamCompressor is the pluggable stage-2 collaborator: a
// general-purpose byte-stream compressor satisfying this three-function
// interface can stand in for the default LZ4 backend without any change to
// the stage-1 wire format.
type ByteStreamCompressor interface {
	// BoundFor returns an upper bound on the compressed size of a source
	// buffer of srcSize bytes.
	BoundFor(srcSize int) int

	// CompressToBuffer compresses src into dst and returns the number of
	// bytes written. dst must be at least BoundFor(len(src)) bytes.
	CompressToBuffer(src []byte, dst []byte) (int, error)

	// DecompressFromBuffer decompresses src (all of len(src) compressed
	// bytes) into dst and returns the number of bytes written, or ok=false
	// if the compressed stream is corrupt or truncated.
	DecompressFromBuffer(src []byte, dst []byte) (n int, ok bool)
}

// defaultCompressor is the package-wide LZ4 backend used by the facade
// functions. It carries no state of its own (each CompressToBuffer call uses
// a fresh zero-value lz4.Compressor), so sharing it across goroutines is safe as long as
// callers do not share src/dst buffers (the same rule the package applies
// to every other operation).
var defaultCompressor ByteStreamCompressor = lz4Compressor{}

// lz4Compressor adapts github.com/pierrec/lz4/v4's block-level API (as
// opposed to its streaming frame API, which carries framing overhead this
// codec's own header/count-out-of-band design already makes redundant) to
// the ByteStreamCompressor interface.
//
// LZ4's block API declines to produce output when the source would not
// shrink, so one leading tag byte distinguishes an LZ4 block from a raw
// passthrough copy. This tag is an internal implementation detail of this
// adapter, not part of the stage-1 wire format described in the data model.
type lz4Compressor struct{}

const (
	lz4TagRaw   = 0
	lz4TagBlock = 1
)

func (lz4Compressor) BoundFor(srcSize int) int {
	if srcSize <= 0 {
		return 0
	}
	return 1 + lz4BoundFor(srcSize)
}

func (lz4Compressor) CompressToBuffer(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	var c lz4.Compressor
	n, err := c.CompressBlock(src, dst[1:])
	if err != nil {
		return 0, err
	}
	if n == 0 || n >= len(src) {
		// Incompressible input: CompressBlock declines to emit a block
		// that wouldn't shrink the data. Fall back to storing it raw; dst
		// is sized via BoundFor, which always leaves room for the tag plus
		// src verbatim.
		dst[0] = lz4TagRaw
		copy(dst[1:], src)
		return 1 + len(src), nil
	}
	dst[0] = lz4TagBlock
	return 1 + n, nil
}

func (lz4Compressor) DecompressFromBuffer(src, dst []byte) (int, bool) {
	if len(src) == 0 {
		return 0, true
	}
	tag, body := src[0], src[1:]
	switch tag {
	case lz4TagRaw:
		copy(dst, body)
		return len(body), true
	case lz4TagBlock:
		n, err := lz4.UncompressBlock(body, dst)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
