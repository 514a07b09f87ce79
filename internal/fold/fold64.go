package fold

import (
	"github.com/awslabs/aws-checksums/internal/polymath"
	"github.com/awslabs/aws-checksums/internal/slicing"
	"github.com/awslabs/aws-checksums/internal/tables"
)

// Engine64 is the 64-bit counterpart of Engine32, used by both CRC-64
// variants.
type Engine64 struct {
	fc  tables.FoldConstants
	tbl *slicing.Table64
}

func NewEngine64(fc tables.FoldConstants, tbl *slicing.Table64) *Engine64 {
	return &Engine64{fc: fc, tbl: tbl}
}

func (e *Engine64) UpdateRaw(reg uint64, data []byte) uint64 {
	lanes := e.fc.Lanes
	blockBytes := e.fc.BlockBytes
	superBlock := lanes * blockBytes
	poly := e.fc.Variant.PolyRefl

	pos := 0
	if nSuper := len(data) / superBlock; nSuper > 0 {
		var laneBuf [16]uint64
		var laneReg []uint64
		if lanes <= len(laneBuf) {
			laneReg = laneBuf[:lanes]
		} else {
			laneReg = make([]uint64, lanes)
		}
		for i := 0; i < lanes; i++ {
			block := data[pos : pos+blockBytes]
			pos += blockBytes
			seed := uint64(0)
			if i == 0 {
				seed = reg
			}
			laneReg[i] = slicing.UpdateRaw64(seed, e.tbl, block)
		}
		for sb := 1; sb < nSuper; sb++ {
			for i := 0; i < lanes; i++ {
				block := data[pos : pos+blockBytes]
				pos += blockBytes
				advanced := polymath.MulModP(poly, laneReg[i], e.fc.XStride, 64)
				laneReg[i] = advanced ^ slicing.UpdateRaw64(0, e.tbl, block)
			}
		}
		var combined uint64
		for i := 0; i < lanes; i++ {
			combined ^= polymath.MulModP(poly, laneReg[i], e.fc.XCatchup[i], 64)
		}
		reg = combined
	}
	return slicing.UpdateRaw64(reg, e.tbl, data[pos:])
}

func (e *Engine64) MinLen() int {
	return e.fc.Lanes * e.fc.BlockBytes
}
