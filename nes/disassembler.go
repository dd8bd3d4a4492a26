package nes

import "fmt"

// operandFormats gives each addressing mode its conventional asm operand
// syntax; %02X/%04X verbs are filled in by Disassemble from the bytes
// following the opcode. Modes that take no operand are simply absent.
var operandFormats = map[AddressingMode]string{
	Immediate:   "#$%02X",
	ZeroPage:    "$%02X",
	ZeroPageX:   "$%02X,X",
	ZeroPageY:   "$%02X,Y",
	Absolute:    "$%04X",
	AbsoluteX:   "$%04X,X",
	AbsoluteY:   "$%04X,Y",
	Indirect:    "($%04X)",
	IndirectX:   "($%02X,X)",
	IndirectY:   "($%02X),Y",
	Relative:    "$%04X",
}

// Disassemble renders the instruction at addr as a single assembly line
// in the style nestest's log expects: address, the raw encoded bytes,
// then mnemonic and operand. It does not mutate the bus or advance any
// program counter; it peeks at addr and the bytes that follow it.
func Disassemble(b *Bus, addr uint16) string {
	op := b.Read8(addr)
	inst := instructions[op]

	raw := make([]byte, inst.Size)
	for i := byte(0); i < inst.Size; i++ {
		raw[i] = b.Read8(addr + uint16(i))
	}

	operand := ""
	if format, ok := operandFormats[inst.Mode]; ok && inst.Size > 1 {
		switch inst.Mode {
		case Relative:
			off := int8(raw[1])
			target := uint16(int32(addr) + 2 + int32(off))
			operand = fmt.Sprintf(format, target)
		case Absolute, AbsoluteX, AbsoluteY, Indirect:
			operand = fmt.Sprintf(format, uint16(raw[1])|uint16(raw[2])<<8)
		default:
			operand = fmt.Sprintf(format, raw[1])
		}
	} else if inst.Mode == Accumulator {
		operand = "A"
	}

	name := inst.Name
	if !inst.Official {
		name = "." + name
	}

	if operand == "" {
		return fmt.Sprintf("%04X  %-9s %3s", addr, hexBytes(raw), name)
	}
	return fmt.Sprintf("%04X  %-9s %s %s", addr, hexBytes(raw), name, operand)
}

func hexBytes(raw []byte) string {
	s := ""
	for i, b := range raw {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", b)
	}
	return s
}
