package intdelta

import "encoding/binary"

// decodeInt32 reconstructs n int32 values from an intermediate buffer
// produced by encodeInt32, writing them into dst (which must have length
// n). buf must be at least the encoded size implied by n; unused high bits
// in the final code byte are ignored.
func decodeInt32(dst []int32, buf []byte, n int) {
	if n == 0 {
		return
	}

	c := int32(binary.LittleEndian.Uint32(buf[0:headerBytes]))
	codesLen := codeBytes(n)
	codes := buf[headerBytes : headerBytes+codesLen]
	payload := buf[headerBytes+codesLen:]

	pos := 0
	var prev int32
	for i := 0; i < n; i++ {
		m := mode((codes[i/codesPerByte] >> (2 * (i % codesPerByte))) & 0x3)
		var d int32
		switch m {
		case modeCommon:
			d = c
		case modeOne:
			d = int32(int8(payload[pos]))
			pos++
		case modeTwo:
			d = int32(int16(binary.LittleEndian.Uint16(payload[pos:])))
			pos += 2
		case modeFour:
			d = int32(binary.LittleEndian.Uint32(payload[pos:]))
			pos += 4
		}
		prev += d
		dst[i] = prev
	}
}
