package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMapper is a fully writable 64 KiB backing store, standing in for a
// real cartridge so CPU tests can poke code, data and vectors anywhere
// without fighting NROM's read-only PRG space.
type testMapper struct {
	mem [0x10000]byte
}

func (m *testMapper) PRGRead(addr uint16) byte          { return m.mem[addr] }
func (m *testMapper) PRGWrite(addr uint16, v byte) error { m.mem[addr] = v; return nil }
func (m *testMapper) CHRRead(addr uint16) byte          { return 0 }
func (m *testMapper) CHRWrite(addr uint16, v byte)      {}

func newTestBus() *Bus {
	return NewBus(&Cartridge{mapper: &testMapper{}})
}

func load(b *Bus, addr uint16, data ...byte) {
	for i, v := range data {
		b.Write8(addr+uint16(i), v)
	}
}

func setResetVector(b *Bus, pc uint16) {
	b.Write16(0xFFFC, pc)
}

func TestCPUResetSeedsFromVector(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x1234)

	c := NewCPU(b)

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, byte(0x24), c.P)
	assert.False(t, c.Halted)
}

func TestCPULDAImmediateThenBRK(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0xA9, 0x42, 0x00, 0x00)
	b.Write16(0xFFFE, 0x9000)

	c := NewCPU(b)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(2), cycles)
	assert.Equal(t, byte(0x42), c.A)
	assert.False(t, c.flag(flagZ))
	assert.False(t, c.flag(flagN))

	cycles, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(7), cycles)
	assert.Equal(t, byte(0x00), c.LastBRKOperand)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.flag(flagI))
}

func TestCPUStackRoundTrip(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0xA9, 0x7E, 0x48, 0xA9, 0x00, 0x68)

	c := NewCPU(b)
	require.Equal(t, byte(0xFD), c.SP)

	for i := 0; i < 4; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, byte(0x7E), c.A)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.False(t, c.flag(flagZ))
	assert.False(t, c.flag(flagN))
}

func TestCPUIndirectJMPBug(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	b.Write8(0x02FF, 0x80)
	b.Write8(0x0200, 0x50)
	b.Write8(0x0300, 0x99)

	c := NewCPU(b)
	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x5080), c.PC)
}

func TestCPUJSRThenRTS(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0x20, 0x05, 0x80, 0xEA, 0xEA, 0x60) // JSR $8005; ...; $8005: RTS

	c := NewCPU(b)
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(6), cycles)
	assert.Equal(t, uint16(0x8005), c.PC)

	cycles, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(6), cycles)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestCPUBranchCycleAccounting(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)

	// BEQ +4 at $80FE: crosses from page $80 into page $81.
	load(b, 0x80FE, 0xF0, 0x04)
	c := NewCPU(b)
	c.PC = 0x80FE
	c.setFlag(flagZ, true)
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(4), cycles)
	assert.Equal(t, uint16(0x8104), c.PC)

	// Same instruction at $8000, staying within the page.
	load(b, 0x8000, 0xF0, 0x04)
	c.PC = 0x8000
	c.setFlag(flagZ, true)
	cycles, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(3), cycles)
	assert.Equal(t, uint16(0x8006), c.PC)

	// Branch not taken.
	load(b, 0x9000, 0xF0, 0x04)
	c.PC = 0x9000
	c.setFlag(flagZ, false)
	cycles, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(2), cycles)
	assert.Equal(t, uint16(0x9002), c.PC)
}

func TestCPUADCOverflow(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	c := NewCPU(b)
	c.A = 0x7F
	c.setFlag(flagC, false)
	c.adc(0x01)

	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.flag(flagN))
	assert.True(t, c.flag(flagV))
	assert.False(t, c.flag(flagZ))
	assert.False(t, c.flag(flagC))
}

func TestCPUSBCBorrow(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	c := NewCPU(b)
	c.A = 0x50
	c.setFlag(flagC, true)
	c.adc(^byte(0xB0))

	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.flag(flagV))
	assert.True(t, c.flag(flagN))
	assert.False(t, c.flag(flagZ))
	assert.False(t, c.flag(flagC))
}

func TestCPUUnofficialOpcodeIsFatal(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0x02) // KIL, unofficial
	c := NewCPU(b)

	_, err := c.Step()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnsupportedInstruction, kind)
}

func TestCPUSTPHalts(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0xDB)
	c := NewCPU(b)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.Halted)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0), cycles)
}

func TestCPUStatusUnusedBitAlwaysSet(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0x18) // CLC
	c := NewCPU(b)

	_, err := c.Step()
	require.NoError(t, err)
	assert.NotZero(t, c.P&flagU)
	assert.Zero(t, c.P&flagB)
}

func TestCPUFlagOpsRoundTrip(t *testing.T) {
	b := newTestBus()
	setResetVector(b, 0x8000)
	load(b, 0x8000, 0x38, 0x18) // SEC; CLC
	c := NewCPU(b)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.flag(flagC))

	_, err = c.Step()
	require.NoError(t, err)
	assert.False(t, c.flag(flagC))
}

func TestCPUPrgWriteRejectionPropagatesFromStore(t *testing.T) {
	// A genuine read-only NROM cartridge, with the opcode bytes baked
	// straight into its PRG image so STA's own store is what fails.
	prg := make([]byte, prgBankSize)
	prg[0] = 0x8D // STA $8000
	prg[1] = 0x00
	prg[2] = 0x80
	// RESET vector = $8000, baked into the image since PRG is read-only.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	cart := &Cartridge{mapper: newNROMMapper(prg, make([]byte, chrBankSize))}
	b := NewBus(cart)

	c := NewCPU(b)
	_, err := c.Step()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, PrgRomReadOnly, kind)
}
