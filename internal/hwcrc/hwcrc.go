// Package hwcrc implements the scalar hardware path: folding a single CRC
// instruction, one byte at a time, into the running register, instead of a
// table lookup. It exists only where the ISA actually offers such an
// instruction for the polynomial in question — the dispatcher (component I,
// in the root package) never calls UpdateRawCRC32C unless internal/cpufeat
// has already confirmed the instruction is present, since executing it on a
// CPU that lacks it is an illegal-instruction fault, not a wrong answer.
// UpdateRawCRC32ISO uses no hardware instruction and is the dispatcher's
// CRC-32 fallback.
//
// x86's SSE4.2 CRC32 instruction is hardwired to the Castagnoli polynomial:
// there is no hardware path for plain (ISO) CRC-32 on amd64, matching
// the real aws-checksums dispatcher, which also falls back to software for
// that case. See hwcrc_amd64.s for the accelerated Castagnoli path and
// DESIGN.md for why the arm64 build (which has separate CRC32/CRC32C
// instruction families and so could in principle accelerate both) instead
// delegates to the verified software engine here.
package hwcrc

import "github.com/awslabs/aws-checksums/internal/slicing"

// UpdateRawCRC32ISO advances the raw register reg by data for the plain
// (ISO) CRC-32 polynomial. No amd64 or arm64 build of this package
// implements this with a hardware instruction; it is provided so the
// dispatcher's selection table has a uniform shape across variants, and
// always delegates to the slicing-by-8 table (component D).
func UpdateRawCRC32ISO(reg uint32, tbl *slicing.Table32, data []byte) uint32 {
	return slicing.UpdateRaw32(reg, tbl, data)
}
