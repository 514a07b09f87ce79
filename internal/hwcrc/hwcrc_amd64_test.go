//go:build amd64

package hwcrc

import (
	"math/rand"
	"testing"

	"github.com/awslabs/aws-checksums/internal/refimpl"
	"github.com/stretchr/testify/require"
)

const crc32cPolyRefl = 0x82f63b78

func TestUpdateRawCRC32CMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(300)
		data := make([]byte, n)
		rng.Read(data)
		seed := rng.Uint32()

		want := refimpl.UpdateRaw32(seed, crc32cPolyRefl, data)
		got := UpdateRawCRC32C(seed, data)
		require.Equal(t, want, got, "len=%d seed=%#x", n, seed)
	}
}
