package fold

import (
	"math/rand"
	"testing"

	"github.com/awslabs/aws-checksums/internal/refimpl"
	"github.com/awslabs/aws-checksums/internal/tables"
	"github.com/stretchr/testify/require"
)

func TestEngine32MatchesReferenceAcrossLengths(t *testing.T) {
	for _, fc := range []tables.FoldConstants{tables.FoldCRC32Lanes4, tables.FoldCRC32Lanes16, tables.FoldCRC32CLanes4} {
		fc := fc
		eng := NewEngine32(fc, tables.SlicingCRC32)
		if fc.Variant == tables.CRC32C {
			eng = NewEngine32(fc, tables.SlicingCRC32C)
		}
		poly := uint32(fc.Variant.PolyRefl)
		rng := rand.New(rand.NewSource(int64(fc.Lanes) + 7))
		lengths := []int{0, 1, 15, 16, 17, 31, 32, 33,
			fc.Lanes*fc.BlockBytes - 1, fc.Lanes * fc.BlockBytes, fc.Lanes*fc.BlockBytes + 1,
			2 * fc.Lanes * fc.BlockBytes, 2*fc.Lanes*fc.BlockBytes + 5,
			3*fc.Lanes*fc.BlockBytes + 13, 10 * fc.Lanes * fc.BlockBytes,
		}
		for _, n := range lengths {
			if n < 0 {
				continue
			}
			data := make([]byte, n)
			rng.Read(data)
			seed := rng.Uint32()

			want := refimpl.UpdateRaw32(seed, poly, data)
			got := eng.UpdateRaw(seed, data)
			require.Equal(t, want, got, "variant=%s lanes=%d n=%d seed=%#x", fc.Variant.Name, fc.Lanes, n, seed)
		}
	}
}

func TestEngine32ChainsAcrossCallBoundaries(t *testing.T) {
	fc := tables.FoldCRC32Lanes4
	eng := NewEngine32(fc, tables.SlicingCRC32)
	rng := rand.New(rand.NewSource(99))
	data := make([]byte, 401)
	rng.Read(data)

	whole := eng.UpdateRaw(0, data)
	for _, split := range []int{0, 1, 63, 64, 65, 200, 400, 401} {
		got := eng.UpdateRaw(eng.UpdateRaw(0, data[:split]), data[split:])
		require.Equal(t, whole, got, "split=%d", split)
	}
}

func TestEngine64MatchesReferenceAcrossLengths(t *testing.T) {
	for _, fc := range []tables.FoldConstants{tables.FoldCRC64XZLanes4, tables.FoldCRC64XZLanes16, tables.FoldCRC64NVMeLanes4} {
		tbl := tables.SlicingCRC64XZ
		if fc.Variant == tables.CRC64NVMe {
			tbl = tables.SlicingCRC64NVMe
		}
		eng := NewEngine64(fc, tbl)
		rng := rand.New(rand.NewSource(int64(fc.Lanes) + 31))
		lengths := []int{0, 1, 15, 16, 17,
			fc.Lanes*fc.BlockBytes - 1, fc.Lanes * fc.BlockBytes, fc.Lanes*fc.BlockBytes + 1,
			2 * fc.Lanes * fc.BlockBytes, 5*fc.Lanes*fc.BlockBytes + 9,
		}
		for _, n := range lengths {
			data := make([]byte, n)
			rng.Read(data)
			seed := rng.Uint64()

			want := refimpl.UpdateRaw64(seed, fc.Variant.PolyRefl, data)
			got := eng.UpdateRaw(seed, data)
			require.Equal(t, want, got, "variant=%s lanes=%d n=%d seed=%#x", fc.Variant.Name, fc.Lanes, n, seed)
		}
	}
}
