package intdelta

import "encoding/binary"

// Reader provides read-only random access to an *encoded* (pre-compression)
// intermediate buffer, the kind produced by encodeInt32 or returned by
// decompressing a CompressInt32ToBuffer output into working space. It is
// modeled on fastpfor.Reader/fastpfor.SlimReader from the FastPFOR codec
// this package's sibling borrows from, adapted to this format's variable
// per-element payload width in place of FastPFOR's uniform bit-packed
// lanes.
//
// A Reader is not safe for concurrent use; create one Reader per goroutine
// over a shared buffer if concurrent access is needed.
type Reader struct {
	buf   []byte
	n     int
	c     int32
	codes []byte

	pos        int // next index Next() will return
	prevVal    int32
	payloadPos int // byte offset into the payload region for element `pos`
}

// Load loads buf (an encodeInt32-produced buffer holding n elements) into
// the reader, resetting all iteration state. buf is retained, not copied:
// it must remain valid for the lifetime of the Reader.
func (r *Reader) Load(buf []byte, n int) error {
	if n < 0 {
		return ErrCountMismatch
	}
	if n == 0 {
		r.buf, r.n, r.codes = buf, 0, nil
		r.c = 0
		r.Reset()
		return nil
	}
	need := headerBytes + codeBytes(n)
	if len(buf) < need {
		return ErrBufferTooSmall
	}
	r.buf = buf
	r.n = n
	r.c = int32(binary.LittleEndian.Uint32(buf[0:headerBytes]))
	r.codes = buf[headerBytes : headerBytes+codeBytes(n)]
	r.Reset()
	return nil
}

// Len returns the number of elements in the loaded buffer.
func (r *Reader) Len() int {
	return r.n
}

// Reset rewinds sequential iteration to the beginning.
func (r *Reader) Reset() {
	r.pos = 0
	r.prevVal = 0
	r.payloadPos = 0
}

// Next returns the next value in sequence and its index, or ok=false once
// every element has been returned. Each call is O(1): the payload cursor
// advances incrementally, exactly as the decoder's own forward pass does.
func (r *Reader) Next() (value int32, index int, ok bool) {
	if r.pos >= r.n {
		return 0, 0, false
	}
	i := r.pos
	m := r.modeAt(i)
	d := r.deltaAt(m, r.payloadPos)
	r.payloadPos += payloadWidth(m)
	r.prevVal += d
	r.pos++
	return r.prevVal, i, true
}

// Get returns the value at index i. Unlike FastPFOR's uniform bit-packed
// lanes, this format's per-element payload width varies, so there is no
// constant stride to exploit: Get must walk every code and payload byte up
// to i, making it O(i). Callers that need every value should prefer
// Decode or sequential Next() calls.
func (r *Reader) Get(i int) (int32, error) {
	if i < 0 || i >= r.n {
		return 0, ErrCountMismatch
	}
	var prev int32
	offset := 0
	for j := 0; j <= i; j++ {
		m := r.modeAt(j)
		d := r.deltaAt(m, offset)
		offset += payloadWidth(m)
		prev += d
	}
	return prev, nil
}

// Decode writes every value into dst, which must have length Len().
func (r *Reader) Decode(dst []int32) {
	decodeInt32(dst, r.buf, r.n)
}

func (r *Reader) modeAt(i int) mode {
	return mode((r.codes[i/codesPerByte] >> (2 * (i % codesPerByte))) & 0x3)
}

func (r *Reader) deltaAt(m mode, payloadOffset int) int32 {
	if m == modeCommon {
		return r.c
	}
	payload := r.buf[headerBytes+codeBytes(r.n)+payloadOffset:]
	switch m {
	case modeOne:
		return int32(int8(payload[0]))
	case modeTwo:
		return int32(int16(binary.LittleEndian.Uint16(payload)))
	default:
		return int32(binary.LittleEndian.Uint32(payload))
	}
}

func payloadWidth(m mode) int {
	switch m {
	case modeOne:
		return 1
	case modeTwo:
		return 2
	case modeFour:
		return 4
	default:
		return 0
	}
}
