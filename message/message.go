// Package message builds embeddable bit payloads from strings, bytes or raw
// bits, optionally protected by a Golay error correction code with a seeded
// deterministic shuffle. The bit layout is MSB-first, eight bits per byte.
package message

import (
	"github.com/yyyoichi/bitstream-go"

	"github.com/vizprobe/vizprobe/internal/bitconv"
)

// Payload is a prepared bit sequence ready for embedding.
type Payload struct {
	// size is the bit length of the raw payload before encoding.
	size   int
	reader *bitstream.BitReader[uint64]
	enc    encoder
}

// NewString builds a payload from the bytes of s.
func NewString(s string, opts ...Option) *Payload {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range []byte(s) {
		w.Write8(0, 8, v)
	}
	return newPayload(w.Data(), w.Bits(), opts...)
}

// NewBytes builds a payload from raw bytes.
func NewBytes(b []byte, opts ...Option) *Payload {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range b {
		w.Write8(0, 8, v)
	}
	return newPayload(w.Data(), w.Bits(), opts...)
}

// NewBools builds a payload from an explicit bit sequence.
func NewBools(bits []bool, opts ...Option) *Payload {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return newPayload(w.Data(), w.Bits(), opts...)
}

func newPayload(data []uint64, size int, opts ...Option) *Payload {
	enc := apply(opts)
	encoded, n := enc.encode(data, size)
	reader := bitstream.NewBitReader(encoded, 0, 0)
	reader.SetBits(n)
	return &Payload{
		size:   size,
		reader: reader,
		enc:    enc,
	}
}

// Len returns the number of bits to embed, after any encoding.
func (p *Payload) Len() int {
	return p.reader.Bits()
}

// Size returns the raw payload bit length before encoding.
func (p *Payload) Size() int {
	return p.size
}

// Bit reports the bit at position at. Positions wrap around the encoded
// length so a payload can tile a larger capacity.
func (p *Payload) Bit(at int) bool {
	if p.reader.Bits() == 0 {
		return false
	}
	v, _ := p.reader.ReadBitAt(at % p.reader.Bits())
	return v
}

// Decoder turns recovered bit sequences back into payload data. It must be
// constructed with the same size and options the payload was built with.
type Decoder struct {
	size int
	enc  encoder
}

// NewDecoder prepares a decoder for a payload of sizeBits raw bits.
func NewDecoder(sizeBits int, opts ...Option) *Decoder {
	return &Decoder{size: sizeBits, enc: apply(opts)}
}

// Decoder returns the decoder matching this payload's size and encoding.
func (p *Payload) Decoder() *Decoder {
	return &Decoder{size: p.size, enc: p.enc}
}

// Len returns the number of bits the decoder expects to receive.
func (d *Decoder) Len() int {
	return d.enc.encodedLen(d.size)
}

// Decode converts recovered bits into payload data, correcting errors when
// the payload was built with an error correction code.
func (d *Decoder) Decode(bits []bool) Decoded {
	return Decoded{size: d.size, reader: d.enc.decode(bits, d.size)}
}

// Decoded is a recovered payload.
type Decoded struct {
	size   int
	reader *bitstream.BitReader[uint64]
}

func (d Decoded) Bools() []bool {
	bits := make([]bool, d.size)
	for i := range bits {
		bits[i], _ = d.reader.ReadBitAt(i)
	}
	return bits
}

func (d Decoded) Bytes() []byte {
	b := bitconv.BoolsToBytes(d.Bools())
	if d.size%8 == 0 {
		return b[:d.size/8]
	}
	return b
}

func (d Decoded) String() string {
	return string(d.Bytes())
}
