package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var startPC uint16
	var maxSteps int
	var cpuProfile string

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM and run it headlessly until halted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return errors.Wrapf(err, "creating cpu profile %s", cpuProfile)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return errors.Wrap(err, "starting cpu profile")
				}
				defer pprof.StopCPUProfile()
			}

			h, err := loadHarness(args[0], startPC)
			if err != nil {
				return err
			}

			errs := h.run(maxSteps)

			fmt.Printf("pc=$%04X sp=$%02X a=$%02X x=$%02X y=$%02X p=$%02X halted=%v last_brk=$%02X\n",
				h.cpu.PC, h.cpu.SP, h.cpu.A, h.cpu.X, h.cpu.Y, h.cpu.P, h.cpu.Halted, h.cpu.LastBRKOperand)

			if len(errs) > 0 {
				return errs
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&startPC, "pc", 0xC000, "override the program counter instead of reading the RESET vector (0 = use RESET vector)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", defaultMaxSteps, "abort after this many instructions without halting")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a runtime/pprof CPU profile to this path")

	return cmd
}
