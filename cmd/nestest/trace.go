package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/robertkrimen/otto"
	"github.com/spf13/cobra"

	"github.com/flga/nestest/nes"
)

// newTraceCmd runs a ROM one instruction at a time, printing a disassembly
// line per step, and stops early if a user-supplied JavaScript expression
// evaluates truthy against the current register file. This is the
// scripted-breakpoint workflow: "pc == 0xC66E" or "a == 0 && x > 10"
// without recompiling anything.
func newTraceCmd() *cobra.Command {
	var startPC uint16
	var maxSteps int
	var breakExpr string

	cmd := &cobra.Command{
		Use:   "trace <rom>",
		Short: "Disassemble and step a ROM, optionally breaking on a scripted condition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHarness(args[0], startPC)
			if err != nil {
				return err
			}

			vm := otto.New()
			for i := 0; i < maxSteps && !h.cpu.Halted; i++ {
				fmt.Println(nes.Disassemble(h.bus, h.cpu.PC))

				if breakExpr != "" && evalBreak(vm, h.cpu, breakExpr) {
					fmt.Printf("breakpoint hit at $%04X\n", h.cpu.PC)
					return nil
				}

				if _, err := h.cpu.Step(); err != nil {
					return errors.Wrapf(err, "step at pc=$%04X", h.cpu.PC)
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&startPC, "pc", 0, "override the program counter (0 = use RESET vector)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", defaultMaxSteps, "stop tracing after this many instructions")
	cmd.Flags().StringVar(&breakExpr, "break-when", "", "JavaScript expression over pc/sp/a/x/y/p evaluated before each step")

	return cmd
}

func evalBreak(vm *otto.Otto, c *nes.CPU, expr string) bool {
	vm.Set("pc", c.PC)
	vm.Set("sp", c.SP)
	vm.Set("a", c.A)
	vm.Set("x", c.X)
	vm.Set("y", c.Y)
	vm.Set("p", c.P)

	result, err := vm.Run(expr)
	if err != nil {
		fmt.Printf("break expression error: %v\n", err)
		return false
	}
	truthy, _ := result.ToBoolean()
	return truthy
}
