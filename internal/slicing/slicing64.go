package slicing

import "github.com/awslabs/aws-checksums/internal/refimpl"

// Table64 is the 64-bit counterpart of Table32. Because a 64-bit register is
// exactly eight bytes wide, one XOR of the whole next 8-byte little-endian
// word into reg takes the place of Table32's "crc word, next word" pair.
type Table64 struct {
	Slice [8][256]uint64
}

// BuildTable64 mirrors BuildTable32: Slice[0] is the ordinary single-byte
// table, Slice[j] for j>0 is that byte advanced through j extra zero bytes.
func BuildTable64(polyRefl uint64) *Table64 {
	var t Table64
	for b := 0; b < 256; b++ {
		t.Slice[0][b] = refimpl.UpdateRaw64(0, polyRefl, []byte{byte(b)})
	}
	for j := 1; j < 8; j++ {
		for b := 0; b < 256; b++ {
			prev := t.Slice[j-1][b]
			t.Slice[j][b] = (prev >> 8) ^ t.Slice[0][byte(prev)]
		}
	}
	return &t
}

// UpdateRaw64 advances the raw register reg by data, eight bytes per table
// round with a byte-at-a-time tail.
func UpdateRaw64(reg uint64, t *Table64, data []byte) uint64 {
	for len(data) >= 8 {
		w := reg
		for k := 0; k < 8; k++ {
			w ^= uint64(data[k]) << (8 * uint(k))
		}
		reg = 0
		for k := 0; k < 8; k++ {
			reg ^= t.Slice[7-k][byte(w>>(8*uint(k)))]
		}
		data = data[8:]
	}
	for _, b := range data {
		reg = t.Slice[0][byte(reg)^b] ^ (reg >> 8)
	}
	return reg
}
