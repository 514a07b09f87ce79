// Package slicing implements the slicing-by-8 table-driven CRC algorithm:
// the default, portable fast path used whenever no hardware-accelerated
// engine (internal/hwcrc, internal/fold) is applicable. The fold engines
// also use it for each block and for the tail they do not fold.
package slicing

import "github.com/awslabs/aws-checksums/internal/refimpl"

// Table32 holds the eight 256-entry slices slicing-by-8 needs for a 32-bit
// CRC: Slice[0] is the ordinary single-byte table (crc of byte b, read
// through the reflected register), and Slice[j] for j>0 is the table for a
// byte followed by j zero bytes, letting the algorithm consume eight input
// bytes per table lookup round instead of one.
type Table32 struct {
	Slice [8][256]uint32
}

// BuildTable32 derives a Table32 for the given reflected polynomial by
// running the bit-serial reference (internal/refimpl) over every possible
// byte value and, for subsequent slices, over that byte followed by the
// right number of zero bytes — exactly the same relationship Table[0] has
// to refimpl.UpdateRaw32 one byte at a time, generalized.
func BuildTable32(polyRefl uint32) *Table32 {
	var t Table32
	for b := 0; b < 256; b++ {
		t.Slice[0][b] = refimpl.UpdateRaw32(0, polyRefl, []byte{byte(b)})
	}
	for j := 1; j < 8; j++ {
		for b := 0; b < 256; b++ {
			prev := t.Slice[j-1][b]
			t.Slice[j][b] = (prev >> 8) ^ t.Slice[0][byte(prev)]
		}
	}
	return &t
}

// UpdateRaw32 advances the raw (uninverted) register reg by data, using
// table t, eight bytes at a time with a byte-at-a-time tail for the
// remainder. It produces bit-identical results to
// refimpl.UpdateRaw32(reg, polyRefl, data), for the polyRefl t was built
// from by BuildTable32, for any input, at roughly 8x the
// throughput since each inner loop iteration does one table lookup per
// input byte instead of one full 8-bit LFSR unrolling.
func UpdateRaw32(reg uint32, t *Table32, data []byte) uint32 {
	for len(data) >= 8 {
		reg ^= uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		hi := uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24
		reg = t.Slice[7][byte(reg)] ^
			t.Slice[6][byte(reg>>8)] ^
			t.Slice[5][byte(reg>>16)] ^
			t.Slice[4][byte(reg>>24)] ^
			t.Slice[3][byte(hi)] ^
			t.Slice[2][byte(hi>>8)] ^
			t.Slice[1][byte(hi>>16)] ^
			t.Slice[0][byte(hi>>24)]
		data = data[8:]
	}
	for _, b := range data {
		reg = t.Slice[0][byte(reg)^b] ^ (reg >> 8)
	}
	return reg
}
