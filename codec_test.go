package intdelta

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripInt32 encodes values into a scratch buffer sized via the
// EncodedBufferSize allocation contract, decodes the result back, and
// returns both the decoded values and the actual number of bytes the
// encoder wrote. The actual written length is data-dependent and only ever
// <= EncodedBufferSize(len(values)) — the two coincide only when every
// delta needs the full four-byte mode.
func roundTripInt32(t *testing.T, values []int32) (got []int32, written int) {
	t.Helper()
	n := len(values)
	buf := make([]byte, EncodedBufferSize(n))
	written = encodeInt32(buf, values)
	require.LessOrEqual(t, written, EncodedBufferSize(n))

	got = make([]int32, n)
	decodeInt32(got, buf, n)
	return got, written
}

func TestCodecRoundTripMonotoneSmallSteps(t *testing.T) {
	// Deltas [123,1,1,100000,0,1,0], C=1, modes
	// [One, Common, Common, Four, One, Common, One]. Values are the
	// cumulative sum of that delta sequence.
	values := []int32{123, 124, 125, 100125, 100125, 100126, 100126}
	got, written := roundTripInt32(t, values)
	assert.Equal(t, values, got)
	assert.Equal(t, 13, written)
}

func TestCodecRoundTripAllCommon(t *testing.T) {
	// Scenario 2: deltas [0,5,5,5,5], C=5.
	values := []int32{0, 5, 10, 15, 20}
	got, written := roundTripInt32(t, values)
	assert.Equal(t, values, got)
	assert.Equal(t, 7, written)
}

func TestCodecRoundTripSingleElement(t *testing.T) {
	// Scenario 3.
	values := []int32{0x7FFFFFFF}
	got, written := roundTripInt32(t, values)
	assert.Equal(t, values, got)
	assert.Equal(t, 5, written)
}

func TestCodecRoundTripFullWidthDeltasUnsigned(t *testing.T) {
	// Scenario 4, reinterpreted through the signed bridge. Signed deltas are
	// [0, 0x40000000, 0x40000000, 0x40000000], so C = 0x40000000 and the
	// first delta (0 != C) takes a one-byte payload: 4 + 1 + 1 = 6 bytes.
	raw := []uint32{0, 0x40000000, 0x80000000, 0xC0000000}
	values := make([]int32, len(raw))
	for i, v := range raw {
		values[i] = signed32(v)
	}
	got, written := roundTripInt32(t, values)

	outRaw := make([]uint32, len(got))
	for i, v := range got {
		outRaw[i] = unsigned32(v)
	}
	assert.Equal(t, raw, outRaw)
	assert.Equal(t, 6, written)
}

func TestCodecRoundTripEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, EncodedBufferSize(0))
	got, written := roundTripInt32(t, nil)
	assert.Empty(got)
	assert.Equal(0, written)
}

func TestCodecTailHandling(t *testing.T) {
	for _, n := range []int{5, 7} {
		t.Run("", func(t *testing.T) {
			values := make([]int32, n)
			for i := range values {
				values[i] = int32(i * 3)
			}
			assert.Equal(t, 2, codeBytes(n))

			got, _ := roundTripInt32(t, values)
			assert.Equal(t, values, got)
		})
	}
}

func TestCodecRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 17, 100, 257} {
		values := make([]int32, n)
		for i := range values {
			switch rng.Intn(4) {
			case 0:
				values[i] = int32(rng.Intn(200) - 100)
			case 1:
				values[i] = int32(rng.Intn(1 << 20))
			case 2:
				values[i] = rng.Int31()
			default:
				values[i] = -rng.Int31()
			}
		}
		got, _ := roundTripInt32(t, values)
		assert.Equal(t, values, got, "n=%d", n)
	}
}

func TestClassify(t *testing.T) {
	assert := assert.New(t)
	const c = int32(7)

	assert.Equal(modeCommon, classify(7, c))
	assert.Equal(modeOne, classify(0, c))
	assert.Equal(modeOne, classify(127, c))
	assert.Equal(modeOne, classify(-128, c))
	assert.Equal(modeTwo, classify(128, c))
	assert.Equal(modeTwo, classify(-129, c))
	assert.Equal(modeTwo, classify(32767, c))
	assert.Equal(modeFour, classify(32768, c))
	assert.Equal(modeFour, classify(-32769, c))

	// A Common code wins over a narrower width whenever delta == C, even
	// though C itself may be small enough to fit modeOne.
	assert.Equal(modeCommon, classify(7, 7))
}

func TestMostCommonDeterministic(t *testing.T) {
	deltas := []int32{1, 2, 2, 3, 3, 3, 1, 1}
	// 1 and 3 both occur 3 times; the scan-order tie-break must be stable
	// across repeated calls on the same input.
	first := mostCommon(deltas)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, mostCommon(deltas))
	}
}
