// Package tables holds the frozen, read-only constant data every CRC engine
// in this module consumes: the slicing-by-8 byte tables (component D's
// dependency) and the polynomial-ring constants the fold engines use to
// advance and recombine lanes (components F, G, H). Everything here is
// computed once (the slicing tables by internal/slicing, the fold constants
// by internal/polymath), the moment this package is
// imported — there is no offline generator step and no lazy
// recomputation; once a table exists it is never written to again.
package tables

import (
	"github.com/awslabs/aws-checksums/internal/polymath"
	"github.com/awslabs/aws-checksums/internal/slicing"
)

// Variant names one of the four supported CRCs by its reflected polynomial
// and register width.
type Variant struct {
	Name     string
	Width    uint
	PolyRefl uint64
}

var (
	CRC32     = Variant{Name: "CRC-32", Width: 32, PolyRefl: 0xedb88320}
	CRC32C    = Variant{Name: "CRC-32C", Width: 32, PolyRefl: 0x82f63b78}
	CRC64XZ   = Variant{Name: "CRC-64/XZ", Width: 64, PolyRefl: 0xc96c5795d7870f42}
	CRC64NVMe = Variant{Name: "CRC-64/NVMe", Width: 64, PolyRefl: 0x9a6c9329ac4bc9b5}
)

// Slicing tables, one per variant, built at package init from the reflected
// polynomial via internal/slicing.
var (
	SlicingCRC32     = slicing.BuildTable32(uint32(CRC32.PolyRefl))
	SlicingCRC32C    = slicing.BuildTable32(uint32(CRC32C.PolyRefl))
	SlicingCRC64XZ   = slicing.BuildTable64(CRC64XZ.PolyRefl)
	SlicingCRC64NVMe = slicing.BuildTable64(CRC64NVMe.PolyRefl)
)

// FoldConstants are the per-variant, per-lane-count constants a multi-lane
// fold engine (internal/fold) needs to advance every lane past a full
// super-block of lanes*blockBytes input bytes and, at the end, realign each
// lane to its proper position in the byte stream before combining them.
type FoldConstants struct {
	Variant    Variant
	Lanes      int
	BlockBytes int
	// XStride is x^(lanes*blockBytes*8) mod P, reflected: multiplying a
	// lane's running remainder by this is "skip forward one full
	// super-block", the fold step every iteration after the first applies.
	XStride uint64
	// XCatchup[i] re-aligns lane i, which is blockBytes*(lanes-1-i) bytes
	// behind the stream's tail end relative to lane (lanes-1), to its
	// correct position before the lanes are XORed together.
	XCatchup []uint64
}

// BuildFoldConstants derives the fold constants for v using lanes
// interleaved blockBytes-sized blocks, via repeated ring squaring
// (internal/polymath.PowX) — the same offline derivation
// github.com/abursavich/crc's Combine uses for its single-lane case,
// generalized to an arbitrary lane count.
func BuildFoldConstants(v Variant, lanes, blockBytes int) FoldConstants {
	strideBits := uint64(lanes * blockBytes * 8)
	fc := FoldConstants{
		Variant:    v,
		Lanes:      lanes,
		BlockBytes: blockBytes,
		XStride:    polymath.PowX(v.PolyRefl, strideBits, v.Width),
		XCatchup:   make([]uint64, lanes),
	}
	for i := 0; i < lanes; i++ {
		catchupBits := uint64((lanes - 1 - i) * blockBytes * 8)
		fc.XCatchup[i] = polymath.PowX(v.PolyRefl, catchupBits, v.Width)
	}
	return fc
}

// Fold constants for the 128-bit (1-lane-of-16-bytes-is-degenerate, so the
// smallest real fold width is 4 lanes of 16 bytes = 64 bytes per
// super-block) and wide (16 lanes of 16 bytes = 256 bytes per super-block)
// engines, for all four variants. 4-lane constants back component G
// (512-bit fold); 16-lane constants back component H (wide fold).
var (
	FoldCRC32Lanes4      = BuildFoldConstants(CRC32, 4, 16)
	FoldCRC32CLanes4     = BuildFoldConstants(CRC32C, 4, 16)
	FoldCRC64XZLanes4    = BuildFoldConstants(CRC64XZ, 4, 16)
	FoldCRC64NVMeLanes4  = BuildFoldConstants(CRC64NVMe, 4, 16)

	FoldCRC32Lanes16     = BuildFoldConstants(CRC32, 16, 16)
	FoldCRC32CLanes16    = BuildFoldConstants(CRC32C, 16, 16)
	FoldCRC64XZLanes16   = BuildFoldConstants(CRC64XZ, 16, 16)
	FoldCRC64NVMeLanes16 = BuildFoldConstants(CRC64NVMe, 16, 16)
)
