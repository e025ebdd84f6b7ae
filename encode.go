package intdelta

import "encoding/binary"

// mode is the 2-bit per-element tag selecting payload width.
type mode byte

const (
	modeCommon mode = 0 // delta == C; no payload
	modeOne    mode = 1 // fits signed 8 bits; 1 payload byte
	modeTwo    mode = 2 // fits signed 16 bits; 2 payload bytes
	modeFour   mode = 3 // needs signed 32 bits; 4 payload bytes
)

// classify picks the tightest mode for delta given the chosen common value c.
// A Common code always wins over a width-based code when delta == c, even
// when a narrower width would also fit, because decode relies on that
// equivalence.
func classify(delta, c int32) mode {
	if delta == c {
		return modeCommon
	}
	switch {
	case delta >= -1<<7 && delta < 1<<7:
		return modeOne
	case delta >= -1<<15 && delta < 1<<15:
		return modeTwo
	default:
		return modeFour
	}
}

// encodeInt32 writes the stage-1 intermediate encoding of values into dst
// and returns the number of bytes written. dst must be at least
// EncodedBufferSize(len(values)) bytes long.
func encodeInt32(dst []byte, values []int32) int {
	n := len(values)
	if n == 0 {
		return 0
	}

	deltas := make([]int32, n)
	var prev int32
	for i, v := range values {
		deltas[i] = v - prev
		prev = v
	}

	c := mostCommon(deltas)

	codesLen := codeBytes(n)
	binary.LittleEndian.PutUint32(dst[0:headerBytes], uint32(c))
	codes := dst[headerBytes : headerBytes+codesLen]
	for i := range codes {
		codes[i] = 0
	}
	payload := dst[headerBytes+codesLen:]

	pos := 0
	for i, d := range deltas {
		m := classify(d, c)
		codes[i/codesPerByte] |= byte(m) << (2 * (i % codesPerByte))
		switch m {
		case modeOne:
			payload[pos] = byte(int8(d))
			pos++
		case modeTwo:
			binary.LittleEndian.PutUint16(payload[pos:], uint16(int16(d)))
			pos += 2
		case modeFour:
			binary.LittleEndian.PutUint32(payload[pos:], uint32(d))
			pos += 4
		}
	}

	return headerBytes + codesLen + pos
}

// mostCommon returns the most frequent value in deltas, breaking ties by
// preferring whichever value the histogram scan reaches first. The tie-break
// is implementation-defined but deterministic for a fixed input, which is
// all correctness requires: decodability never depends on which value wins.
func mostCommon(deltas []int32) int32 {
	counts := make(map[int32]int, len(deltas))
	var best int32
	var bestCount int
	for _, d := range deltas {
		counts[d]++
		if counts[d] > bestCount {
			bestCount = counts[d]
			best = d
		}
	}
	return best
}
