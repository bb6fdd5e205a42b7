package message

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

type encoder interface {
	encode(data []uint64, size int) ([]uint64, int)
	decode(bits []bool, size int) *bitstream.BitReader[uint64]
	encodedLen(size int) int
}

var _ encoder = (*plain)(nil)

type plain struct{}

func (plain) encode(data []uint64, size int) ([]uint64, int) {
	return data, size
}

func (plain) decode(bits []bool, size int) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	reader := bitstream.NewBitReader(w.Data(), 0, 0)
	reader.SetBits(size)
	return reader
}

func (plain) encodedLen(size int) int {
	return size
}

var _ encoder = (*shuffledGolay)(nil)

type shuffledGolay int64

func (sg shuffledGolay) encode(data []uint64, size int) ([]uint64, int) {
	if size == 0 {
		return nil, 0
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, size)
	encodedLen := enc.Bits()

	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range encodedLen {
		bit, _ := r.ReadBitAt(index[i])
		w.WriteBitAt(i, bit)
	}
	return w.Data(), encodedLen
}

func (sg shuffledGolay) decode(bits []bool, size int) *bitstream.BitReader[uint64] {
	// Same permutation as encode, applied in reverse.
	index := sg.generatePermutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	reader := bitstream.NewBitReader(decoded, 0, 0)
	reader.SetBits(size)
	return reader
}

func (sg shuffledGolay) encodedLen(size int) int {
	return golay.EncodedBits(size)
}

func (sg shuffledGolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
