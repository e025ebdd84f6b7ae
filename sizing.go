package intdelta

import "github.com/pierrec/lz4/v4"

// headerBytes is the width of the encoded C header (a little-endian signed32).
const headerBytes = 4

// codesPerByte is the number of 2-bit mode codes packed into one code byte.
const codesPerByte = 4

// EncodedBufferSize returns the number of bytes a caller must allocate to
// hold the stage-1 (delta/mode) encoding of a sequence of n elements: the
// worst-case bound where every element needs the full four-byte mode. The
// actual number of bytes encodeInt32 writes for a given n is data-dependent
// and is always <= EncodedBufferSize(n) (see the round-trip tests for
// worked examples where the two differ). n must be >= 0.
//
//	EncodedBufferSize(0) == 0
//	EncodedBufferSize(n) == 4 + ceil(n*2/8) + 4*n   for n > 0
func EncodedBufferSize(n int) int {
	if n <= 0 {
		return 0
	}
	return headerBytes + codeBytes(n) + 4*n
}

// codeBytes returns ceil(n/codesPerByte), the number of packed mode-code
// bytes needed for n elements.
func codeBytes(n int) int {
	return (n + codesPerByte - 1) / codesPerByte
}

// GetCompressedBufferSize returns the byte-stream compressor's upper bound
// on the compressed size of the stage-1 encoding of n elements.
func GetCompressedBufferSize(n int) int {
	return defaultCompressor.BoundFor(EncodedBufferSize(n))
}

// GetDecompressionWorkingSpaceSize returns the number of scratch bytes
// DecompressFromBuffer needs to hold the decompressed (but still stage-1
// encoded) intermediate buffer for n elements.
func GetDecompressionWorkingSpaceSize(n int) int {
	return EncodedBufferSize(n)
}

// lz4BoundFor is the standalone function form of lz4.CompressBlockBound,
// used by lz4Compressor.BoundFor; defined here so sizing.go documents the
// whole size-contract surface in one place.
func lz4BoundFor(n int) int {
	if n <= 0 {
		return 0
	}
	return lz4.CompressBlockBound(n)
}
