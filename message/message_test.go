package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadEncodeDecode(t *testing.T) {
	test := []struct {
		name   string
		new    func(...Option) *Payload
		assert func(*testing.T, Decoded)
	}{
		{"string_1",
			func(o ...Option) *Payload {
				return NewString("TEST_PAYLOAD", o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, "TEST_PAYLOAD", d.String())
				assert.Equal(t, []byte("TEST_PAYLOAD"), d.Bytes())
			}},
		{"string_2",
			func(o ...Option) *Payload {
				return NewString("a", o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, "a", d.String())
			}},
		{"string_multibyte",
			func(o ...Option) *Payload {
				return NewString("こんにちはHello", o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, "こんにちはHello", d.String())
			}},
		{"bytes_1",
			func(o ...Option) *Payload {
				return NewBytes([]byte{0x01, 0xff, 0x00}, o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, []byte{0x01, 0xff, 0x00}, d.Bytes())
			}},
		{"bools_1",
			func(o ...Option) *Payload {
				return NewBools([]bool{true}, o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, []bool{true}, d.Bools())
			}},
		{"bools_2",
			func(o ...Option) *Payload {
				return NewBools([]bool{
					false, true, false, true,
					false, false, true, true,
					false, false, false, true, true, true,
				}, o...)
			},
			func(t *testing.T, d Decoded) {
				assert.Equal(t, []byte{0b01_010_011, 0b00_011_100}, d.Bytes())
			}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			for _, opt := range []Option{
				WithoutECC(),
				WithGolay(DefaultShuffleSeed),
			} {
				payload := tt.new(opt)
				assert.NotZero(t, payload.Len())
				assert.NotZero(t, payload.Size())

				// Feed the payload's own bit stream to the decoder,
				// simulating a lossless embed/extract round trip.
				bits := make([]bool, payload.Len())
				for i := range bits {
					bits[i] = payload.Bit(i)
				}

				dec := payload.Decoder()
				assert.Equal(t, payload.Len(), dec.Len())
				tt.assert(t, dec.Decode(bits))

				// A decoder built from scratch must behave the same.
				fresh := NewDecoder(payload.Size(), opt)
				assert.Equal(t, payload.Len(), fresh.Len())
				tt.assert(t, fresh.Decode(bits))
			}
		})
	}
}

func TestGolayCorrectsBitErrors(t *testing.T) {
	payload := NewString("Hi", WithGolay(DefaultShuffleSeed))

	bits := make([]bool, payload.Len())
	for i := range bits {
		bits[i] = payload.Bit(i)
	}
	// Flip a couple of bits; Golay(24,12) corrects up to three per codeword
	// and the shuffle spreads them out.
	bits[0] = !bits[0]
	bits[payload.Len()/2] = !bits[payload.Len()/2]

	got := payload.Decoder().Decode(bits)
	assert.Equal(t, "Hi", got.String())
}

func TestEmptyPayload(t *testing.T) {
	for _, opt := range []Option{WithoutECC(), WithGolay(DefaultShuffleSeed)} {
		payload := NewString("", opt)
		assert.Zero(t, payload.Len())
		assert.Zero(t, payload.Size())
		assert.NotPanics(t, func() { payload.Bit(0) })
		assert.False(t, payload.Bit(0))

		got := payload.Decoder().Decode(nil)
		assert.Empty(t, got.String())
	}
}

func TestGolayExpandsLength(t *testing.T) {
	without := NewString("Hi")
	with := NewString("Hi", WithGolay(DefaultShuffleSeed))
	assert.Equal(t, 16, without.Len())
	assert.Greater(t, with.Len(), without.Len())
}
