package nes

const (
	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagU byte = 1 << 5
	flagV byte = 1 << 6
	flagN byte = 1 << 7
)

// CPU is the 6502-variant register file plus the bus it executes against.
// Every field the harness needs to observe between steps is exported;
// there is nothing else to see — no microcode counter, no pending-cycle
// queue, because step() always runs an instruction to completion.
type CPU struct {
	PC uint16
	SP byte
	A  byte
	X  byte
	Y  byte
	P  byte

	Halted         bool
	LastBRKOperand byte

	bus *Bus
}

// NewCPU builds a CPU wired to bus and immediately resets it, so the
// returned value is ready for Step.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset runs the same vector load used for both power-on and a live reset:
// seed pc from the RESET vector, back sp off by three, force interrupts
// disabled, and clear halted. The "unused" status bit is kept set
// unconditionally rather than only when pushed, which is simpler to
// reason about and gives the same observable byte layout.
func (c *CPU) Reset() {
	c.PC = c.bus.Read16(0xFFFC)
	c.SP -= 3
	c.P = (c.P | flagI | flagU) &^ flagB
	c.Halted = false
}

// Step executes exactly one instruction and returns the number of cycles
// it consumed. A halted CPU is a no-op that returns 0. An unrecognized or
// deliberately unimplemented (illegal) opcode aborts with
// UnsupportedInstruction rather than guessing at its effect.
func (c *CPU) Step() (byte, error) {
	if c.Halted {
		return 0, nil
	}

	instrStart := c.PC
	op := c.fetch8()
	inst := instructions[op]
	if !inst.Official {
		return 0, newError(UnsupportedInstruction, "opcode $%02X (%s) at $%04X", op, inst.Name, instrStart)
	}

	cycles := inst.Cycles
	extra := byte(0)

	var writeErr error
	write := func(addr uint16, v byte) {
		c.bus.Write8(addr, v)
		if e := c.bus.WriteErr(); e != nil {
			writeErr = e
		}
	}

	switch op {
	case 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.A = c.bus.Read8(addr)
		c.setZN(c.A)
		if crossed {
			extra += inst.PageCycles
		}
	case 0xA2, 0xA6, 0xB6, 0xAE, 0xBE:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.X = c.bus.Read8(addr)
		c.setZN(c.X)
		if crossed {
			extra += inst.PageCycles
		}
	case 0xA0, 0xA4, 0xB4, 0xAC, 0xBC:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.Y = c.bus.Read8(addr)
		c.setZN(c.Y)
		if crossed {
			extra += inst.PageCycles
		}

	case 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.A)
	case 0x86, 0x96, 0x8E:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.X)
	case 0x84, 0x94, 0x8C:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.Y)

	case 0xAA:
		c.X = c.A
		c.setZN(c.X)
	case 0xA8:
		c.Y = c.A
		c.setZN(c.Y)
	case 0x8A:
		c.A = c.X
		c.setZN(c.A)
	case 0x98:
		c.A = c.Y
		c.setZN(c.A)
	case 0xBA:
		c.X = c.SP
		c.setZN(c.X)
	case 0x9A:
		c.SP = c.X

	case 0x48:
		push8(c.bus, &c.SP, c.A)
	case 0x08:
		push8(c.bus, &c.SP, c.P|flagB|flagU)
	case 0x68:
		c.A = pop8(c.bus, &c.SP)
		c.setZN(c.A)
	case 0x28:
		c.setP(pop8(c.bus, &c.SP))

	case 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.A &= c.bus.Read8(addr)
		c.setZN(c.A)
		if crossed {
			extra += inst.PageCycles
		}
	case 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.A |= c.bus.Read8(addr)
		c.setZN(c.A)
		if crossed {
			extra += inst.PageCycles
		}
	case 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.A ^= c.bus.Read8(addr)
		c.setZN(c.A)
		if crossed {
			extra += inst.PageCycles
		}
	case 0x24, 0x2C:
		addr, _ := c.resolveAddr(inst.Mode)
		m := c.bus.Read8(addr)
		c.setFlag(flagZ, c.A&m == 0)
		c.setFlag(flagN, m&0x80 != 0)
		c.setFlag(flagV, m&0x40 != 0)

	case 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.adc(c.bus.Read8(addr))
		if crossed {
			extra += inst.PageCycles
		}
	case 0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.adc(^c.bus.Read8(addr))
		if crossed {
			extra += inst.PageCycles
		}

	case 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1:
		addr, crossed := c.resolveAddr(inst.Mode)
		c.compare(c.A, c.bus.Read8(addr))
		if crossed {
			extra += inst.PageCycles
		}
	case 0xE0, 0xE4, 0xEC:
		addr, _ := c.resolveAddr(inst.Mode)
		c.compare(c.X, c.bus.Read8(addr))
	case 0xC0, 0xC4, 0xCC:
		addr, _ := c.resolveAddr(inst.Mode)
		c.compare(c.Y, c.bus.Read8(addr))

	case 0xE6, 0xF6, 0xEE, 0xFE:
		addr, _ := c.resolveAddr(inst.Mode)
		m := c.bus.Read8(addr) + 1
		write(addr, m)
		c.setZN(m)
	case 0xC6, 0xD6, 0xCE, 0xDE:
		addr, _ := c.resolveAddr(inst.Mode)
		m := c.bus.Read8(addr) - 1
		write(addr, m)
		c.setZN(m)
	case 0xE8:
		c.X++
		c.setZN(c.X)
	case 0xC8:
		c.Y++
		c.setZN(c.Y)
	case 0xCA:
		c.X--
		c.setZN(c.X)
	case 0x88:
		c.Y--
		c.setZN(c.Y)

	case 0x0A:
		c.A = c.asl(c.A)
	case 0x06, 0x16, 0x0E, 0x1E:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.asl(c.bus.Read8(addr)))
	case 0x4A:
		c.A = c.lsr(c.A)
	case 0x46, 0x56, 0x4E, 0x5E:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.lsr(c.bus.Read8(addr)))
	case 0x2A:
		c.A = c.rol(c.A)
	case 0x26, 0x36, 0x2E, 0x3E:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.rol(c.bus.Read8(addr)))
	case 0x6A:
		c.A = c.ror(c.A)
	case 0x66, 0x76, 0x6E, 0x7E:
		addr, _ := c.resolveAddr(inst.Mode)
		write(addr, c.ror(c.bus.Read8(addr)))

	case 0x4C, 0x6C:
		addr, _ := c.resolveAddr(inst.Mode)
		c.PC = addr
	case 0x20:
		addr, _ := c.resolveAddr(inst.Mode)
		push16(c.bus, &c.SP, c.PC-1)
		c.PC = addr
	case 0x60:
		c.PC = pop16(c.bus, &c.SP) + 1

	case 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0:
		extra += c.branch(op, inst.Mode, instrStart)

	case 0x18:
		c.setFlag(flagC, false)
	case 0x38:
		c.setFlag(flagC, true)
	case 0x58:
		c.setFlag(flagI, false)
	case 0x78:
		c.setFlag(flagI, true)
	case 0xB8:
		c.setFlag(flagV, false)
	case 0xD8:
		c.setFlag(flagD, false)
	case 0xF8:
		c.setFlag(flagD, true)

	case 0x00:
		c.brk()
	case 0xEA:
		// no effect
	case 0x40:
		c.setP(pop8(c.bus, &c.SP))
		c.PC = pop16(c.bus, &c.SP)
	case 0xDB:
		c.Halted = true

	default:
		return 0, newError(BadAddressing, "official opcode $%02X (%s) has no execute path", op, inst.Name)
	}

	if writeErr != nil {
		return 0, writeErr
	}
	return cycles + extra, nil
}

func (c *CPU) fetch8() byte {
	v := c.bus.Read8(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.bus.Read16(c.PC)
	c.PC += 2
	return v
}

func hiByte(addr uint16) byte {
	return byte(addr >> 8)
}

// resolveAddr advances pc past an instruction's operand bytes and returns
// the effective address plus whether resolving it crossed a page.
// Accumulator and Implied modes are never passed here — their opcodes
// operate on registers directly.
func (c *CPU) resolveAddr(mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++
	case ZeroPage:
		addr = uint16(c.fetch8())
	case ZeroPageX:
		addr = uint16(c.fetch8() + c.X)
	case ZeroPageY:
		addr = uint16(c.fetch8() + c.Y)
	case Absolute:
		addr = c.fetch16()
	case AbsoluteX:
		base := c.fetch16()
		addr = base + uint16(c.X)
		pageCrossed = hiByte(base) != hiByte(addr)
	case AbsoluteY:
		base := c.fetch16()
		addr = base + uint16(c.Y)
		pageCrossed = hiByte(base) != hiByte(addr)
	case Indirect:
		ptr := c.fetch16()
		addr = c.readIndirectBug(ptr)
	case IndirectX:
		zp := c.fetch8() + c.X
		lo := c.bus.Read8(uint16(zp))
		hi := c.bus.Read8(uint16(zp + 1))
		addr = uint16(hi)<<8 | uint16(lo)
	case IndirectY:
		zp := c.fetch8()
		lo := c.bus.Read8(uint16(zp))
		hi := c.bus.Read8(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		pageCrossed = hiByte(base) != hiByte(addr)
	case Relative:
		off := int8(c.fetch8())
		addr = uint16(int32(c.PC) + int32(off))
	}
	return addr, pageCrossed
}

// readIndirectBug reproduces the JMP ($xxFF) page-wrap bug: when ptr sits
// on a page boundary, the high byte is fetched from the start of the same
// page instead of the start of the next one.
func (c *CPU) readIndirectBug(ptr uint16) uint16 {
	lo := c.bus.Read8(ptr)
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi := c.bus.Read8(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) setZN(v byte) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

func (c *CPU) setFlag(mask byte, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) flag(mask byte) bool {
	return c.P&mask != 0
}

// setP loads the status register from a popped byte. B is never stored in
// the live register file — PLP and RTI both discard whatever B bit the
// stack carried and force the unused bit back to 1.
func (c *CPU) setP(v byte) {
	c.P = (v &^ flagB) | flagU
}

func (c *CPU) adc(operand byte) {
	carry := uint16(0)
	if c.flag(flagC) {
		carry = 1
	}
	t := uint16(c.A) + uint16(operand) + carry
	result := byte(t)
	c.setFlag(flagC, t > 0xFF)
	c.setFlag(flagV, (c.A^result)&(operand^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, operand byte) {
	t := uint16(reg) - uint16(operand)
	c.setFlag(flagC, reg >= operand)
	c.setFlag(flagZ, reg == operand)
	c.setFlag(flagN, byte(t)&0x80 != 0)
}

func (c *CPU) asl(v byte) byte {
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(v byte) byte {
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rol(v byte) byte {
	carryIn := byte(0)
	if c.flag(flagC) {
		carryIn = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = (v << 1) | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) ror(v byte) byte {
	carryIn := byte(0)
	if c.flag(flagC) {
		carryIn = 1
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = (v >> 1) | (carryIn << 7)
	c.setZN(v)
	return v
}

// branch evaluates the named branch's condition and, if taken, applies its
// cycle penalties. The page-cross penalty is measured against the address
// the branch opcode itself started at, not the pc value immediately after
// the operand byte.
func (c *CPU) branch(op byte, mode AddressingMode, instrStart uint16) byte {
	target, _ := c.resolveAddr(mode)

	var take bool
	switch op {
	case 0x10: // BPL
		take = !c.flag(flagN)
	case 0x30: // BMI
		take = c.flag(flagN)
	case 0x50: // BVC
		take = !c.flag(flagV)
	case 0x70: // BVS
		take = c.flag(flagV)
	case 0x90: // BCC
		take = !c.flag(flagC)
	case 0xB0: // BCS
		take = c.flag(flagC)
	case 0xD0: // BNE
		take = !c.flag(flagZ)
	case 0xF0: // BEQ
		take = c.flag(flagZ)
	}
	if !take {
		return 0
	}

	extra := byte(1)
	if hiByte(instrStart) != hiByte(target) {
		extra++
	}
	c.PC = target
	return extra
}

// brk implements the BRK/IRQ sequence. The byte after the opcode is
// conventionally a signature used by some test ROMs to report state; it
// is discarded from execution but retained for the harness to inspect.
func (c *CPU) brk() {
	c.LastBRKOperand = c.fetch8()
	push16(c.bus, &c.SP, c.PC)
	push8(c.bus, &c.SP, c.P|flagB|flagU)
	c.setFlag(flagI, true)
	c.PC = c.bus.Read16(0xFFFE)
}
