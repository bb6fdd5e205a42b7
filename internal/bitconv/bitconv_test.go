package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	in := []byte{0x00, 0xff, 0x48, 0x69}
	bits := BytesToBools(in)
	assert.Len(t, bits, 32)
	assert.Equal(t, in, BoolsToBytes(bits))
}

func TestMSBFirst(t *testing.T) {
	bits := BytesToBools([]byte{0b1000_0001})
	assert.True(t, bits[0])
	assert.False(t, bits[1])
	assert.True(t, bits[7])
}

func TestPartialByte(t *testing.T) {
	// Trailing bits pad with zeros.
	assert.Equal(t, []byte{0b1100_0000}, BoolsToBytes([]bool{true, true}))
	assert.Empty(t, BoolsToBytes(nil))
}
