package checksums

import "hash"

// Hash32 is a hash.Hash32 whose running value advances by the seed-chaining
// contract above: Write(p) is exactly sum = crcFn(p, sum). It exists for
// callers that want io.Writer interop (hash/crc32's own streaming shape);
// the Crc32/Crc32C functions remain the primitive this is built from, not
// the other way around.
type Hash32 interface {
	hash.Hash32
}

type digest32 struct {
	sum    uint32
	update func(data []byte, seed uint32) uint32
}

// NewCrc32 returns a Hash32 computing CRC-32 (ISO-3309).
func NewCrc32() Hash32 { return &digest32{update: Crc32} }

// NewCrc32C returns a Hash32 computing CRC-32C (Castagnoli).
func NewCrc32C() Hash32 { return &digest32{update: Crc32C} }

func (d *digest32) Write(p []byte) (int, error) {
	d.sum = d.update(p, d.sum)
	return len(p), nil
}

func (d *digest32) Sum32() uint32 { return d.sum }

func (d *digest32) Sum(in []byte) []byte {
	s := d.sum
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest32) Reset()         { d.sum = 0 }
func (d *digest32) Size() int      { return 4 }
func (d *digest32) BlockSize() int { return 1 }

// Hash64 is the 64-bit counterpart of Hash32, for Crc64XZ/Crc64NVMe.
type Hash64 interface {
	hash.Hash64
}

type digest64 struct {
	sum    uint64
	update func(data []byte, seed uint64) uint64
}

// NewCrc64XZ returns a Hash64 computing CRC-64/XZ.
func NewCrc64XZ() Hash64 { return &digest64{update: Crc64XZ} }

// NewCrc64NVMe returns a Hash64 computing CRC-64/NVMe.
func NewCrc64NVMe() Hash64 { return &digest64{update: Crc64NVMe} }

func (d *digest64) Write(p []byte) (int, error) {
	d.sum = d.update(p, d.sum)
	return len(p), nil
}

func (d *digest64) Sum64() uint64 { return d.sum }

func (d *digest64) Sum(in []byte) []byte {
	s := d.sum
	return append(in,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest64) Reset()         { d.sum = 0 }
func (d *digest64) Size() int      { return 8 }
func (d *digest64) BlockSize() int { return 1 }
