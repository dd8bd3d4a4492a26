package nes

// Bus is the CPU-side main memory: internal work RAM, mirrored PPU
// register storage, APU/IO storage, and delegation to the cartridge's
// mapper for everything at and above $4020. Every read and every write is
// a total function of the address — there is no way to address outside
// $0000-$FFFF since addr is a uint16.
type Bus struct {
	ram      [2048]byte
	ppuRegs  [8]byte
	apuIO    [24]byte // $4000-$4017
	testIO   [8]byte  // $4018-$401F, open/test region treated as plain storage
	Cartridge *Cartridge

	// lastWriteErr records the outcome of the most recent Write8 (nil
	// unless that write reached the mapper and was rejected), so CPU instructions that write through the bus
	// (STA/STX/STY et al.) can surface PrgRomReadOnly without changing
	// Write8's signature. See (*CPU).Step.
	lastWriteErr error
}

// NewBus constructs a Bus around the given cartridge. cart may be nil for
// bus-only unit tests that never touch $4020 and above.
func NewBus(cart *Cartridge) *Bus {
	return &Bus{Cartridge: cart}
}

// Read8 resolves addr against the CPU address-space range table. It never
// fails.
func (b *Bus) Read8(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr%0x0800]
	case addr <= 0x3FFF:
		return b.ppuRegs[addr%8]
	case addr <= 0x4017:
		return b.apuIO[addr-0x4000]
	case addr <= 0x401F:
		return b.testIO[addr-0x4018]
	default:
		if b.Cartridge == nil {
			return 0
		}
		return b.Cartridge.mapper.PRGRead(addr)
	}
}

// Write8 resolves addr the same way as Read8. It never fails itself, but
// when the mapper rejects a PRG write the rejection is recorded and
// returned by WriteErr so callers that need to propagate it (CPU store
// instructions) can.
func (b *Bus) Write8(addr uint16, v byte) {
	b.lastWriteErr = nil
	switch {
	case addr <= 0x1FFF:
		b.ram[addr%0x0800] = v
	case addr <= 0x3FFF:
		b.ppuRegs[addr%8] = v
	case addr <= 0x4017:
		b.apuIO[addr-0x4000] = v
	case addr <= 0x401F:
		b.testIO[addr-0x4018] = v
	default:
		if b.Cartridge != nil {
			b.lastWriteErr = b.Cartridge.mapper.PRGWrite(addr, v)
		}
	}
}

// WriteErr returns the error (if any) produced by the most recent Write8
// call. Every Write8 clears it first, so writes below $4020 leave it nil;
// reads never touch it. Callers should check it immediately after a
// Write8 they care about.
func (b *Bus) WriteErr() error {
	return b.lastWriteErr
}

// Read16 reads a little-endian word, with both the low and high byte
// fetches using the bus's own 16-bit address wraparound (addr+1 wraps via
// uint16 overflow, matching hardware).
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian word, low byte first, matching the order
// real 6502 bus traffic would produce for a 16-bit store.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, byte(v))
	b.Write8(addr+1, byte(v>>8))
}
