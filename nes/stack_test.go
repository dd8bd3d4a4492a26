package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPush8Pop8RoundTrip(t *testing.T) {
	b := NewBus(nil)
	sp := byte(0xFD)
	push8(b, &sp, 0x7E)
	assert.Equal(t, byte(0xFC), sp)
	got := pop8(b, &sp)
	assert.Equal(t, byte(0xFD), sp)
	assert.Equal(t, byte(0x7E), got)
}

func TestPush16Pop16RoundTrip(t *testing.T) {
	b := NewBus(nil)
	sp := byte(0xFD)
	push16(b, &sp, 0xBEEF)
	got := pop16(b, &sp)
	assert.Equal(t, uint16(0xBEEF), got)
	assert.Equal(t, byte(0xFD), sp)
}

func TestPush8AtSPZeroWraps(t *testing.T) {
	b := NewBus(nil)
	sp := byte(0x00)
	push8(b, &sp, 0x11)
	assert.Equal(t, byte(0x11), b.Read8(stackBase|0x00))
	assert.Equal(t, byte(0xFF), sp)
}

func TestPop8AtSPFFWraps(t *testing.T) {
	b := NewBus(nil)
	b.Write8(stackBase|0x00, 0x22)
	sp := byte(0xFF)
	got := pop8(b, &sp)
	assert.Equal(t, byte(0x00), sp)
	assert.Equal(t, byte(0x22), got)
}

func TestPush16WritesHighByteFirst(t *testing.T) {
	b := NewBus(nil)
	sp := byte(0xFD)
	push16(b, &sp, 0x1234)
	// high byte ($12) goes in first, landing at the higher stack address.
	assert.Equal(t, byte(0x12), b.Read8(stackBase|0xFD))
	assert.Equal(t, byte(0x34), b.Read8(stackBase|0xFC))
}
