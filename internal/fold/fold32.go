// Package fold implements the multi-lane "folding" reduction that backs the
// high-throughput engines (components F, G, H): interleave the input across
// several lanes, advance each lane across an entire super-block at once via
// a single ring multiplication instead of per-byte iteration, then
// recombine the lanes once at the end.
//
// A real PCLMULQDQ/VPCLMULQDQ fold multiplies two wide SIMD registers and
// reduces the 256/512-bit product back into the CRC's native width every
// step. This package realizes the identical mathematical structure — advance
// a lane by x^(stride) mod P, catch up each lane's phase before combining —
// using the ring-multiplication primitives in internal/polymath instead of
// an inline carryless-multiply-and-reduce on register-sized data; see
// DESIGN.md for why that substitution is made and how it was checked.
package fold

import (
	"github.com/awslabs/aws-checksums/internal/polymath"
	"github.com/awslabs/aws-checksums/internal/slicing"
	"github.com/awslabs/aws-checksums/internal/tables"
)

// Engine32 is a configured multi-lane fold engine for a 32-bit CRC variant.
type Engine32 struct {
	fc  tables.FoldConstants
	tbl *slicing.Table32
}

// NewEngine32 builds an Engine32 from fold constants and the matching
// slicing table, both owned by internal/tables — Engine32 holds no state of
// its own beyond these two pointers, so a single instance is safe to reuse
// (and share across goroutines) for the lifetime of the process.
func NewEngine32(fc tables.FoldConstants, tbl *slicing.Table32) *Engine32 {
	return &Engine32{fc: fc, tbl: tbl}
}

// UpdateRaw advances the raw (uninverted) register reg by data. Like
// internal/slicing.UpdateRaw32, it produces bit-identical results to the
// scalar reference for any input and any split of that input across calls;
// the only difference is throughput on inputs at least lanes*blockBytes
// long.
func (e *Engine32) UpdateRaw(reg uint32, data []byte) uint32 {
	lanes := e.fc.Lanes
	blockBytes := e.fc.BlockBytes
	superBlock := lanes * blockBytes
	poly := uint32(e.fc.Variant.PolyRefl)

	pos := 0
	if nSuper := len(data) / superBlock; nSuper > 0 {
		var laneBuf [16]uint32
		var laneReg []uint32
		if lanes <= len(laneBuf) {
			laneReg = laneBuf[:lanes]
		} else {
			laneReg = make([]uint32, lanes)
		}
		for i := 0; i < lanes; i++ {
			block := data[pos : pos+blockBytes]
			pos += blockBytes
			seed := uint32(0)
			if i == 0 {
				seed = reg
			}
			laneReg[i] = slicing.UpdateRaw32(seed, e.tbl, block)
		}
		for sb := 1; sb < nSuper; sb++ {
			for i := 0; i < lanes; i++ {
				block := data[pos : pos+blockBytes]
				pos += blockBytes
				advanced := polymath.MulModP(uint64(poly), uint64(laneReg[i]), e.fc.XStride, 32)
				laneReg[i] = uint32(advanced) ^ slicing.UpdateRaw32(0, e.tbl, block)
			}
		}
		var combined uint32
		for i := 0; i < lanes; i++ {
			combined ^= uint32(polymath.MulModP(uint64(poly), uint64(laneReg[i]), e.fc.XCatchup[i], 32))
		}
		reg = combined
	}
	return slicing.UpdateRaw32(reg, e.tbl, data[pos:])
}

// MinLen is the smallest input length for which this engine actually folds
// anything; shorter inputs fall straight through to the scalar tail loop,
// which is exactly correct (just not accelerated) for them.
func (e *Engine32) MinLen() int {
	return e.fc.Lanes * e.fc.BlockBytes
}
