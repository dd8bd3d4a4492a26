package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusRAMMirroring(t *testing.T) {
	b := NewBus(nil)
	for addr := uint16(0); addr <= 0x1FFF; addr += 0x0123 {
		b.Write8(addr, 0xAB)
		assert.Equal(t, byte(0xAB), b.Read8(addr^0x0800), "mirror of $%04X", addr)
	}
}

func TestBusPPURegMirroring(t *testing.T) {
	b := NewBus(nil)
	for addr := uint16(0x2000); addr <= 0x3FFF; addr += 0x0137 {
		b.Write8(addr, 0xCD)
		assert.Equal(t, byte(0xCD), b.Read8(0x2000|(addr&7)))
	}
}

func TestBusAPUIORegion(t *testing.T) {
	b := NewBus(nil)
	b.Write8(0x4015, 0x42)
	assert.Equal(t, byte(0x42), b.Read8(0x4015))
	// $4018-$401F behaves like plain storage too.
	b.Write8(0x401F, 0x99)
	assert.Equal(t, byte(0x99), b.Read8(0x401F))
}

func TestBusOpenBusBelowCartridge(t *testing.T) {
	b := NewBus(nil)
	assert.Equal(t, byte(0), b.Read8(0x5000))
}

func TestBusReadWrite16Wraparound(t *testing.T) {
	b := NewBus(nil)
	b.Write8(0xFFFF, 0x34)
	b.Write8(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), b.Read16(0xFFFF))
}

func TestBusPRGWriteRejectionPropagates(t *testing.T) {
	prg := make([]byte, prgBankSize)
	cart := &Cartridge{mapper: newNROMMapper(prg, make([]byte, chrBankSize))}
	b := NewBus(cart)

	b.Write8(0x8000, 0xFF)
	err := b.WriteErr()
	if assert.Error(t, err) {
		kind, ok := KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, PrgRomReadOnly, kind)
	}
}

func TestBusPRGWriteBelow8000IsSilentNoOp(t *testing.T) {
	prg := make([]byte, prgBankSize)
	cart := &Cartridge{mapper: newNROMMapper(prg, make([]byte, chrBankSize))}
	b := NewBus(cart)

	b.Write8(0x6000, 0xFF)
	assert.NoError(t, b.WriteErr())
	assert.Equal(t, byte(0), b.Read8(0x6000))
}
