package main

import (
	"os"
	"strings"

	"github.com/flga/nestest/nes"
	"github.com/pkg/errors"
)

const defaultMaxSteps = 100000

// harness wraps a loaded cartridge, bus and CPU the way the test-harness
// surface in the core's design doc expects: load once, drive step in a
// loop, inspect state when it halts or aborts.
type harness struct {
	bus *nes.Bus
	cpu *nes.CPU
}

func loadHarness(path string, startPC uint16) (*harness, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	cart, err := nes.LoadINESReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	bus := nes.NewBus(cart)
	cpu := nes.NewCPU(bus)
	if startPC != 0 {
		cpu.PC = startPC
	}

	return &harness{bus: bus, cpu: cpu}, nil
}

// runErrors aggregates every problem found while driving a ROM to
// completion: a decode failure and the post-halt $0002/$0003 status byte
// checks are reported together instead of stopping at the first one.
type runErrors []error

func (e runErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// run drives step until halted, an error occurs, or maxSteps is exceeded.
// It returns every problem it found rather than stopping at the first, so
// a caller can see both a decode failure and the mismatched status bytes
// in one report.
func (h *harness) run(maxSteps int) runErrors {
	var errs runErrors
	steps := 0
	for !h.cpu.Halted {
		if steps >= maxSteps {
			errs = append(errs, errors.Errorf("exceeded %d steps without halting", maxSteps))
			break
		}
		if _, err := h.cpu.Step(); err != nil {
			errs = append(errs, errors.Wrapf(err, "step %d at pc=$%04X", steps, h.cpu.PC))
			break
		}
		steps++
	}

	if code := h.bus.Read8(0x0002); code != 0 {
		errs = append(errs, errors.Errorf("status byte $0002 = $%02X, want 0", code))
	}
	if code := h.bus.Read8(0x0003); code != 0 {
		errs = append(errs, errors.Errorf("status byte $0003 = $%02X, want 0", code))
	}

	return errs
}
