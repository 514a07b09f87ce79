//go:build !amd64

package hwcrc

import (
	"github.com/awslabs/aws-checksums/internal/slicing"
	"github.com/awslabs/aws-checksums/internal/tables"
)

// UpdateRawCRC32C on non-amd64 builds has no hardware instruction wired up
// in this package (see DESIGN.md for the arm64 scoping decision) and
// delegates to the slicing table; cpufeat still reports the true hardware
// capability so the dispatcher's selection table stays exercised, it just
// never routes here when that capability is absent.
func UpdateRawCRC32C(reg uint32, data []byte) uint32 {
	return slicing.UpdateRaw32(reg, tables.SlicingCRC32C, data)
}
