package refimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	crc32PolyRefl   = 0xedb88320
	crc32cPolyRefl  = 0x82f63b78
	crc64xzPolyRefl = 0xc96c5795d7870f42
	crc64nvmePolyRefl = 0x9a6c9329ac4bc9b5
)

func crc32(data []byte, seed uint32) uint32 {
	return ^UpdateRaw32(^seed, crc32PolyRefl, data)
}

func crc32c(data []byte, seed uint32) uint32 {
	return ^UpdateRaw32(^seed, crc32cPolyRefl, data)
}

func crc64xz(data []byte, seed uint64) uint64 {
	return ^UpdateRaw64(^seed, crc64xzPolyRefl, data)
}

func crc64nvme(data []byte, seed uint64) uint64 {
	return ^UpdateRaw64(^seed, crc64nvmePolyRefl, data)
}

func TestCheckVectors(t *testing.T) {
	check := []byte("123456789")
	assert.Equal(t, uint32(0xcbf43926), crc32(check, 0))
	assert.Equal(t, uint32(0xe3069283), crc32c(check, 0))
	assert.Equal(t, uint64(0x995dc9bbdf1939fa), crc64xz(check, 0))
	assert.Equal(t, uint64(0xae8b14860a799888), crc64nvme(check, 0))
}

func TestCRC64NVMeZeroBytes(t *testing.T) {
	assert.Equal(t, uint64(0xcf3473434d4ecf3b), crc64nvme(make([]byte, 32), 0))
}

func TestEmptyInputIsSeed(t *testing.T) {
	assert.Equal(t, uint32(0), crc32(nil, 0))
	assert.Equal(t, uint32(0x12345678), crc32(nil, 0x12345678))
	assert.Equal(t, uint64(0xdeadbeefcafebabe), crc64xz(nil, 0xdeadbeefcafebabe))
}

func TestSeedChaining(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	whole := crc32(data, 0)
	for split := 0; split <= len(data); split++ {
		got := crc32(data[split:], crc32(data[:split], 0))
		assert.Equal(t, whole, got, "split at %d", split)
	}
}

func TestResidue(t *testing.T) {
	// Appending a variant's own CRC to the message it was computed over
	// drives the register to the fixed residue constant for that variant.
	data := []byte("residue check")
	sum := crc32(data, 0)
	appended := append(append([]byte{}, data...),
		byte(sum), byte(sum >> 8), byte(sum >> 16), byte(sum >> 24))
	got := crc32(appended, 0)
	assert.Equal(t, uint32(0x2144df1c), got)
}

func TestCRC64NVMeSeedChaining(t *testing.T) {
	data := []byte("nvme residue and chaining test vector data")
	whole := crc64nvme(data, 0)
	got := crc64nvme(data[20:], crc64nvme(data[:20], 0))
	assert.Equal(t, whole, got)
}
