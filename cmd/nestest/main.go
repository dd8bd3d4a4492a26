// Command nestest drives a headless iNES ROM through the CPU core and
// reports the nestest-style result: final pc, last BRK operand, and the
// two status bytes the well-known nestest.nes ROM writes to $0002/$0003.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nestest",
		Short: "Run headless 6502 ROMs against the NES CPU core",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newTraceCmd())
	return root
}
