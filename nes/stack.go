package nes

// stackBase is the fixed page the 6502 stack lives in; only sp varies.
const stackBase = 0x0100

// push8 writes v to the current stack slot then decrements sp, matching
// the descending, pre-write convention of the real stack: the pointer
// always addresses the next free byte.
func push8(b *Bus, sp *byte, v byte) {
	b.Write8(stackBase|uint16(*sp), v)
	*sp--
}

// pop8 increments sp then reads the slot it now points at. Wraparound in
// either direction is silent, matching hardware: there is no overflow
// error, only whatever byte happens to live at the wrapped address.
func pop8(b *Bus, sp *byte) byte {
	*sp++
	return b.Read8(stackBase | uint16(*sp))
}

// push16 pushes the high byte first so the matching pop16 restores the
// value in the order it was written.
func push16(b *Bus, sp *byte, v uint16) {
	push8(b, sp, byte(v>>8))
	push8(b, sp, byte(v))
}

// pop16 pops low then high, the inverse of push16.
func pop16(b *Bus, sp *byte) uint16 {
	lo := pop8(b, sp)
	hi := pop8(b, sp)
	return uint16(hi)<<8 | uint16(lo)
}
