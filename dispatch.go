package checksums

import (
	"sync"

	"github.com/awslabs/aws-checksums/internal/cpufeat"
	"github.com/awslabs/aws-checksums/internal/fold"
	"github.com/awslabs/aws-checksums/internal/hwcrc"
	"github.com/awslabs/aws-checksums/internal/slicing"
	"github.com/awslabs/aws-checksums/internal/tables"
)

// chunkSize bounds how much of a buffer any single engine call processes at
// once. Buffers are chained across chunks by feeding each chunk's raw
// output register in as the next chunk's raw input register — exactly the
// seed-chaining identity every engine already satisfies for any split — so
// a multi-gigabyte buffer never hands an engine (or, on 32-bit platforms, a
// length variable) a size it was not built to hold in one piece.
const chunkSize = 1 << 30

// updateRaw32 is the shape every 32-bit engine in the selection table below
// has: advance a raw (uninverted) register across data.
type updateRaw32 func(reg uint32, data []byte) uint32
type updateRaw64 func(reg uint64, data []byte) uint64

type slot32 struct {
	once sync.Once
	fn   updateRaw32
}

type slot64 struct {
	once sync.Once
	fn   updateRaw64
}

var (
	crc32Slot     slot32
	crc32cSlot    slot32
	crc64xzSlot   slot64
	crc64nvmeSlot slot64
)

// pick resolves and caches, via sync.Once, the fastest engine this CPU
// supports for a 32-bit variant, following the selection matrix: the widest
// available fold engine wins, then the scalar hardware tier (CRC-32C only;
// on arm64 that tier runs the slicing table — see internal/hwcrc), then the
// portable slicing-by-8 table.
func (s *slot32) pick(build func(feat cpufeat.Set) updateRaw32) updateRaw32 {
	s.once.Do(func() {
		s.fn = build(cpufeat.Current())
	})
	return s.fn
}

func (s *slot64) pick(build func(feat cpufeat.Set) updateRaw64) updateRaw64 {
	s.once.Do(func() {
		s.fn = build(cpufeat.Current())
	})
	return s.fn
}

// buildCRC32 follows the x86 branch of the selection matrix: wide fold (H)
// needs AVX-512 on top of CLMUL, plain 512-bit fold (G) needs only CLMUL and
// AVX2, and ARM's PMULL always takes the 4-lane engine since this module
// does not track an ARM wide-vector tier.
func buildCRC32(feat cpufeat.Set) updateRaw32 {
	switch {
	case feat.AVX512F && feat.CLMUL:
		eng := fold.NewEngine32(tables.FoldCRC32Lanes16, tables.SlicingCRC32)
		return eng.UpdateRaw
	case feat.CLMUL && feat.AVX2:
		eng := fold.NewEngine32(tables.FoldCRC32Lanes4, tables.SlicingCRC32)
		return eng.UpdateRaw
	case feat.ARMPMULL:
		eng := fold.NewEngine32(tables.FoldCRC32Lanes4, tables.SlicingCRC32)
		return eng.UpdateRaw
	default:
		return func(reg uint32, data []byte) uint32 {
			return hwcrc.UpdateRawCRC32ISO(reg, tables.SlicingCRC32, data)
		}
	}
}

// buildCRC32C mirrors buildCRC32, except the 512-bit fold tier keys off
// SSE4.2 and CLMUL rather than AVX2 and CRC32C's scalar hardware tier
// (CRC32C instruction / ARM CRC32) sits between the fold tiers and the
// table-driven fallback.
func buildCRC32C(feat cpufeat.Set) updateRaw32 {
	switch {
	case feat.AVX512F && feat.CLMUL:
		eng := fold.NewEngine32(tables.FoldCRC32CLanes16, tables.SlicingCRC32C)
		return eng.UpdateRaw
	case feat.SSE42 && feat.CLMUL:
		eng := fold.NewEngine32(tables.FoldCRC32CLanes4, tables.SlicingCRC32C)
		return eng.UpdateRaw
	case feat.ARMPMULL:
		eng := fold.NewEngine32(tables.FoldCRC32CLanes4, tables.SlicingCRC32C)
		return eng.UpdateRaw
	case feat.SSE42, feat.ARMCRC32:
		return hwcrc.UpdateRawCRC32C
	default:
		return func(reg uint32, data []byte) uint32 {
			return slicing.UpdateRaw32(reg, tables.SlicingCRC32C, data)
		}
	}
}

// buildCRC64 has no wide-fold tier: the matrix only grants CRC-32/CRC-32C
// the AVX-512 path, so both CRC-64 variants top out at the 4-lane engine,
// gated on CLMUL (x86) or PMULL (ARM).
func buildCRC64(feat cpufeat.Set, fc4 tables.FoldConstants, tbl *slicing.Table64) updateRaw64 {
	switch {
	case feat.CLMUL, feat.ARMPMULL:
		eng := fold.NewEngine64(fc4, tbl)
		return eng.UpdateRaw
	default:
		return func(reg uint64, data []byte) uint64 {
			return slicing.UpdateRaw64(reg, tbl, data)
		}
	}
}

func buildCRC64XZ(feat cpufeat.Set) updateRaw64 {
	return buildCRC64(feat, tables.FoldCRC64XZLanes4, tables.SlicingCRC64XZ)
}

func buildCRC64NVMe(feat cpufeat.Set) updateRaw64 {
	return buildCRC64(feat, tables.FoldCRC64NVMeLanes4, tables.SlicingCRC64NVMe)
}

// dispatch32 implements the public seed-chaining contract for a 32-bit
// variant: complement the seed once, run the chosen engine across data in
// chunkSize-sized pieces (chaining the raw register between chunks), then
// complement the result once.
func dispatch32(slot *slot32, build func(cpufeat.Set) updateRaw32, data []byte, seed uint32) uint32 {
	fn := slot.pick(build)
	reg := ^seed
	for len(data) > 0 {
		n := len(data)
		if n > chunkSize {
			n = chunkSize
		}
		reg = fn(reg, data[:n])
		data = data[n:]
	}
	return ^reg
}

func dispatch64(slot *slot64, build func(cpufeat.Set) updateRaw64, data []byte, seed uint64) uint64 {
	fn := slot.pick(build)
	reg := ^seed
	for len(data) > 0 {
		n := len(data)
		if n > chunkSize {
			n = chunkSize
		}
		reg = fn(reg, data[:n])
		data = data[n:]
	}
	return ^reg
}
