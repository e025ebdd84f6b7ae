package intdelta

import "errors"

// ErrDecompressionFailed is returned when the byte-stream compressor's
// decompressor reports failure (corrupt or truncated compressed input).
// The caller receives a count of 0 alongside this error.
var ErrDecompressionFailed = errors.New("intdelta: decompression failed")

// ErrBufferTooSmall is returned when a caller-supplied output or working
// space buffer is smaller than the size contract (EncodedBufferSize,
// GetCompressedBufferSize, GetDecompressionWorkingSpaceSize) requires.
var ErrBufferTooSmall = errors.New("intdelta: buffer too small")

// ErrCountMismatch is returned when the element count N passed to a decode
// operation does not agree with the length of the output slice, when a
// Reader is loaded with a negative count, or when Reader.Get is given an
// index outside [0, Len()).
var ErrCountMismatch = errors.New("intdelta: element count does not match buffer")
