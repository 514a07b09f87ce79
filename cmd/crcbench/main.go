// Command crcbench exercises all four CRC variants across a range of
// buffer sizes and reports throughput. It is bookkeeping alongside the
// library, not part of it: it imports github.com/awslabs/aws-checksums, the
// library never imports it.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	checksums "github.com/awslabs/aws-checksums"
	"github.com/spf13/cobra"
)

var sizeFlag int

func main() {
	root := &cobra.Command{
		Use:   "crcbench",
		Short: "Measure CRC-32/CRC-32C/CRC-64 throughput",
	}
	root.PersistentFlags().IntVar(&sizeFlag, "size", 1<<20, "buffer size in bytes")

	root.AddCommand(
		variantCmd("crc32", func(data []byte) { checksums.Crc32(data, 0) }),
		variantCmd("crc32c", func(data []byte) { checksums.Crc32C(data, 0) }),
		variantCmd("crc64-xz", func(data []byte) { checksums.Crc64XZ(data, 0) }),
		variantCmd("crc64-nvme", func(data []byte) { checksums.Crc64NVMe(data, 0) }),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func variantCmd(name string, run func(data []byte)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Benchmark %s", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]byte, sizeFlag)
			rand.New(rand.NewSource(1)).Read(data)

			const iterations = 50
			start := time.Now()
			for i := 0; i < iterations; i++ {
				run(data)
			}
			elapsed := time.Since(start)

			mbps := float64(sizeFlag*iterations) / elapsed.Seconds() / (1 << 20)
			fmt.Printf("%s: %d bytes x%d in %s -> %.1f MB/s\n", name, sizeFlag, iterations, elapsed, mbps)
			return nil
		},
	}
}
