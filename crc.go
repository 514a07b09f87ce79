// Package checksums computes CRC-32 (ISO-3309/gzip), CRC-32C
// (Castagnoli/iSCSI), CRC-64/XZ and CRC-64/NVMe checksums over a byte slice
// and a previous-CRC seed, selecting the fastest engine the running CPU
// supports (table-driven, hardware-instruction, or multi-lane folding)
// without the caller ever being aware of the choice.
//
// Every function here has the same contract: feeding the whole buffer
// through in one call produces the same result as feeding it through in any
// sequence of slices, each call seeded with the previous call's result —
// crc(a+b, seed) == crc(b, crc(a, seed)) — so callers needing to checksum
// data that arrives in pieces never need a separate streaming object; they
// just thread the returned value back in as the next call's seed. Hash32
// and Hash64 below package exactly that pattern behind the standard
// library's hash.Hash interface for callers that want an io.Writer instead.
package checksums

// Crc32 computes the CRC-32 (ISO-3309, the polynomial gzip/zip/PNG use) of
// data, continuing from seed.
func Crc32(data []byte, seed uint32) uint32 {
	return dispatch32(&crc32Slot, buildCRC32, data, seed)
}

// Crc32C computes the CRC-32C (Castagnoli, the polynomial iSCSI/ext4/SCTP
// use) of data, continuing from seed.
func Crc32C(data []byte, seed uint32) uint32 {
	return dispatch32(&crc32cSlot, buildCRC32C, data, seed)
}

// Crc64XZ computes the CRC-64/XZ checksum (polynomial 0xC96C5795D7870F42 in
// reflected form, as used by the XZ container format) of data, continuing
// from seed.
func Crc64XZ(data []byte, seed uint64) uint64 {
	return dispatch64(&crc64xzSlot, buildCRC64XZ, data, seed)
}

// Crc64NVMe computes the CRC-64/NVMe checksum (polynomial
// 0xAD93D23594C93659, reflected form 0x9A6C9329AC4BC9B5, as used by the NVM
// Express block-integrity field) of data, continuing from seed.
func Crc64NVMe(data []byte, seed uint64) uint64 {
	return dispatch64(&crc64nvmeSlot, buildCRC64NVMe, data, seed)
}
