//go:build amd64

package hwcrc

// crc32cUpdateAsm is implemented in hwcrc_amd64.s: it issues the SSE4.2
// CRC32 instruction once per input byte, folding it into reg. Callers must
// not invoke this unless cpufeat has confirmed SSE4.2 is present.
func crc32cUpdateAsm(reg uint32, data []byte) uint32

// UpdateRawCRC32C advances the raw register reg by data using the hardware
// CRC32 instruction for the Castagnoli polynomial.
func UpdateRawCRC32C(reg uint32, data []byte) uint32 {
	return crc32cUpdateAsm(reg, data)
}
