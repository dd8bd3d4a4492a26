package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNROMReads32KiBDirectly(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	prg[0] = 0xAA
	prg[prgBankSize] = 0xBB
	m := newNROMMapper(prg, make([]byte, chrBankSize))

	assert.Equal(t, byte(0xAA), m.PRGRead(0x8000))
	assert.Equal(t, byte(0xBB), m.PRGRead(0xC000))
}

func TestNROMMirrors16KiBIntoUpperBank(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x77
	m := newNROMMapper(prg, make([]byte, chrBankSize))

	assert.Equal(t, byte(0x77), m.PRGRead(0x8000))
	assert.Equal(t, byte(0x77), m.PRGRead(0xC000))
}

func TestNROMPRGWriteAlwaysFails(t *testing.T) {
	m := newNROMMapper(make([]byte, prgBankSize), make([]byte, chrBankSize))
	err := m.PRGWrite(0xC000, 0x01)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, PrgRomReadOnly, kind)
}

func TestNROMCHRIsNotWritable(t *testing.T) {
	chr := make([]byte, chrBankSize)
	chr[0x10] = 0xAA
	m := newNROMMapper(make([]byte, prgBankSize), chr)
	m.CHRWrite(0x10, 0xFF)
	assert.Equal(t, byte(0xAA), m.CHRRead(0x10))
}
