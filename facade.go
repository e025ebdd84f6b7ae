package intdelta

// CompressInt32ToBuffer stage-1-encodes values, then stage-2-compresses the
// resulting intermediate prefix into out, returning the final compressed
// size. out must be at least GetCompressedBufferSize(len(values)) bytes.
func CompressInt32ToBuffer(values []int32, out []byte) (int, error) {
	n := len(values)
	bound := GetCompressedBufferSize(n)
	if len(out) < bound {
		return 0, ErrBufferTooSmall
	}
	if n == 0 {
		return 0, nil
	}

	scratch := make([]byte, EncodedBufferSize(n))
	encodedLen := encodeInt32(scratch, values)

	written, err := defaultCompressor.CompressToBuffer(scratch[:encodedLen], out)
	if err != nil {
		return 0, err
	}
	return written, nil
}

// CompressUint32ToBuffer is the unsigned-input twin of CompressInt32ToBuffer.
// Unsigned values are reinterpreted via signed32 before delta coding; the
// resulting intermediate bytes are identical to what CompressInt32ToBuffer
// would produce for the same bit patterns.
func CompressUint32ToBuffer(values []uint32, out []byte) (int, error) {
	signed := make([]int32, len(values))
	for i, v := range values {
		signed[i] = signed32(v)
	}
	return CompressInt32ToBuffer(signed, out)
}

// DecompressInt32FromBuffer reverses CompressInt32ToBuffer: it decompresses
// compressed (exactly compressedSize == len(compressed) bytes) into
// workingSpace (allocated internally if nil, and sized to the worst-case
// GetDecompressionWorkingSpaceSize bound), then stage-1-decodes n values
// into out. The decompressed intermediate is data-dependent and generally
// shorter than that worst-case bound; only the header-plus-mode-code prefix
// is required to be present. out must have length n. Returns (0,
// ErrDecompressionFailed) if the byte-stream decompressor reports
// corruption or truncation.
func DecompressInt32FromBuffer(compressed []byte, n int, out []int32, workingSpace []byte) (int, error) {
	if len(out) != n {
		return 0, ErrCountMismatch
	}
	if n == 0 {
		return 0, nil
	}

	needed := GetDecompressionWorkingSpaceSize(n)
	if workingSpace == nil {
		workingSpace = make([]byte, needed)
	} else if len(workingSpace) < needed {
		return 0, ErrBufferTooSmall
	}

	minDecoded := headerBytes + codeBytes(n)
	written, ok := defaultCompressor.DecompressFromBuffer(compressed, workingSpace[:needed])
	if !ok || written < minDecoded {
		return 0, ErrDecompressionFailed
	}

	decodeInt32(out, workingSpace[:written], n)
	return n, nil
}

// DecompressUint32FromBuffer is the unsigned-output twin of
// DecompressInt32FromBuffer: it decodes into a signed scratch slice and
// reinterprets each result via unsigned32.
func DecompressUint32FromBuffer(compressed []byte, n int, out []uint32, workingSpace []byte) (int, error) {
	if len(out) != n {
		return 0, ErrCountMismatch
	}
	signed := make([]int32, n)
	written, err := DecompressInt32FromBuffer(compressed, n, signed, workingSpace)
	if err != nil {
		return 0, err
	}
	for i, v := range signed {
		out[i] = unsigned32(v)
	}
	return written, nil
}
