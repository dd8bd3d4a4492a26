package nes

// AddressingMode identifies how an instruction's operand is located.
// Accumulator and Implied carry no address; the rest resolve to a 16-bit
// effective address (or, for Relative, a branch target).
type AddressingMode byte

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Instruction is one row of the opcode table: its mnemonic, addressing
// mode, encoded size, and cycle accounting. Official is false for the
// illegal/unofficial 6502 opcodes, which this module declines to execute —
// their table entries exist only so decode can name them in
// UnsupportedInstruction errors instead of failing blind.
type Instruction struct {
	Name       string
	Mode       AddressingMode
	Size       byte
	Cycles     byte
	PageCycles byte // 1 if a page-crossing or taken-branch extra applies
	Official   bool
}

// instructions is the 256-entry opcode table, carrying the documented
// 6502 base-cycle counts. Opcode $DB is the one deliberate deviation from
// historical silicon: it is repurposed here as STP, a clean halt, rather
// than its real unofficial DCP encoding.
var instructions = [256]Instruction{
	0x00: {Name: "BRK", Mode: Implied, Size: 2, Cycles: 7, Official: true},
	0x01: {Name: "ORA", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0x02: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x03: {Name: "SLO", Mode: IndirectX, Size: 2, Cycles: 8},
	0x04: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x05: {Name: "ORA", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x06: {Name: "ASL", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0x07: {Name: "SLO", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x08: {Name: "PHP", Mode: Implied, Size: 1, Cycles: 3, Official: true},
	0x09: {Name: "ORA", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0x0A: {Name: "ASL", Mode: Accumulator, Size: 1, Cycles: 2, Official: true},
	0x0B: {Name: "ANC", Mode: Immediate, Size: 0, Cycles: 2},
	0x0C: {Name: "NOP", Mode: Absolute, Size: 3, Cycles: 4},
	0x0D: {Name: "ORA", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x0E: {Name: "ASL", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0x0F: {Name: "SLO", Mode: Absolute, Size: 3, Cycles: 6},
	0x10: {Name: "BPL", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0x11: {Name: "ORA", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0x12: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x13: {Name: "SLO", Mode: IndirectY, Size: 2, Cycles: 8},
	0x14: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0x15: {Name: "ORA", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x16: {Name: "ASL", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0x17: {Name: "SLO", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0x18: {Name: "CLC", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x19: {Name: "ORA", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x1A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0x1B: {Name: "SLO", Mode: AbsoluteY, Size: 3, Cycles: 7},
	0x1C: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x1D: {Name: "ORA", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x1E: {Name: "ASL", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0x1F: {Name: "SLO", Mode: AbsoluteX, Size: 3, Cycles: 7},
	0x20: {Name: "JSR", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0x21: {Name: "AND", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0x22: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x23: {Name: "RLA", Mode: IndirectX, Size: 2, Cycles: 8},
	0x24: {Name: "BIT", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x25: {Name: "AND", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x26: {Name: "ROL", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0x27: {Name: "RLA", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x28: {Name: "PLP", Mode: Implied, Size: 1, Cycles: 4, Official: true},
	0x29: {Name: "AND", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0x2A: {Name: "ROL", Mode: Accumulator, Size: 1, Cycles: 2, Official: true},
	0x2B: {Name: "ANC", Mode: Immediate, Size: 0, Cycles: 2},
	0x2C: {Name: "BIT", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x2D: {Name: "AND", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x2E: {Name: "ROL", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0x2F: {Name: "RLA", Mode: Absolute, Size: 3, Cycles: 6},
	0x30: {Name: "BMI", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0x31: {Name: "AND", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0x32: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x33: {Name: "RLA", Mode: IndirectY, Size: 2, Cycles: 8},
	0x34: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0x35: {Name: "AND", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x36: {Name: "ROL", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0x37: {Name: "RLA", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0x38: {Name: "SEC", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x39: {Name: "AND", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x3A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0x3B: {Name: "RLA", Mode: AbsoluteY, Size: 3, Cycles: 7},
	0x3C: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x3D: {Name: "AND", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x3E: {Name: "ROL", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0x3F: {Name: "RLA", Mode: AbsoluteX, Size: 3, Cycles: 7},
	0x40: {Name: "RTI", Mode: Implied, Size: 1, Cycles: 6, Official: true},
	0x41: {Name: "EOR", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0x42: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x43: {Name: "SRE", Mode: IndirectX, Size: 2, Cycles: 8},
	0x44: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x45: {Name: "EOR", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x46: {Name: "LSR", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0x47: {Name: "SRE", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x48: {Name: "PHA", Mode: Implied, Size: 1, Cycles: 3, Official: true},
	0x49: {Name: "EOR", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0x4A: {Name: "LSR", Mode: Accumulator, Size: 1, Cycles: 2, Official: true},
	0x4B: {Name: "ALR", Mode: Immediate, Size: 0, Cycles: 2},
	0x4C: {Name: "JMP", Mode: Absolute, Size: 3, Cycles: 3, Official: true},
	0x4D: {Name: "EOR", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x4E: {Name: "LSR", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0x4F: {Name: "SRE", Mode: Absolute, Size: 3, Cycles: 6},
	0x50: {Name: "BVC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0x51: {Name: "EOR", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0x52: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x53: {Name: "SRE", Mode: IndirectY, Size: 2, Cycles: 8},
	0x54: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0x55: {Name: "EOR", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x56: {Name: "LSR", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0x57: {Name: "SRE", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0x58: {Name: "CLI", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x59: {Name: "EOR", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x5A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0x5B: {Name: "SRE", Mode: AbsoluteY, Size: 3, Cycles: 7},
	0x5C: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x5D: {Name: "EOR", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x5E: {Name: "LSR", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0x5F: {Name: "SRE", Mode: AbsoluteX, Size: 3, Cycles: 7},
	0x60: {Name: "RTS", Mode: Implied, Size: 1, Cycles: 6, Official: true},
	0x61: {Name: "ADC", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0x62: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x63: {Name: "RRA", Mode: IndirectX, Size: 2, Cycles: 8},
	0x64: {Name: "NOP", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x65: {Name: "ADC", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x66: {Name: "ROR", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0x67: {Name: "RRA", Mode: ZeroPage, Size: 2, Cycles: 5},
	0x68: {Name: "PLA", Mode: Implied, Size: 1, Cycles: 4, Official: true},
	0x69: {Name: "ADC", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0x6A: {Name: "ROR", Mode: Accumulator, Size: 1, Cycles: 2, Official: true},
	0x6B: {Name: "ARR", Mode: Immediate, Size: 0, Cycles: 2},
	0x6C: {Name: "JMP", Mode: Indirect, Size: 3, Cycles: 5, Official: true},
	0x6D: {Name: "ADC", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x6E: {Name: "ROR", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0x6F: {Name: "RRA", Mode: Absolute, Size: 3, Cycles: 6},
	0x70: {Name: "BVS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0x71: {Name: "ADC", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0x72: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x73: {Name: "RRA", Mode: IndirectY, Size: 2, Cycles: 8},
	0x74: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0x75: {Name: "ADC", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x76: {Name: "ROR", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0x77: {Name: "RRA", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0x78: {Name: "SEI", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x79: {Name: "ADC", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x7A: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0x7B: {Name: "RRA", Mode: AbsoluteY, Size: 3, Cycles: 7},
	0x7C: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x7D: {Name: "ADC", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0x7E: {Name: "ROR", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0x7F: {Name: "RRA", Mode: AbsoluteX, Size: 3, Cycles: 7},
	0x80: {Name: "NOP", Mode: Immediate, Size: 2, Cycles: 2},
	0x81: {Name: "STA", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0x82: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2},
	0x83: {Name: "SAX", Mode: IndirectX, Size: 2, Cycles: 6},
	0x84: {Name: "STY", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x85: {Name: "STA", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x86: {Name: "STX", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0x87: {Name: "SAX", Mode: ZeroPage, Size: 2, Cycles: 3},
	0x88: {Name: "DEY", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x89: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2},
	0x8A: {Name: "TXA", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x8B: {Name: "XAA", Mode: Immediate, Size: 0, Cycles: 2},
	0x8C: {Name: "STY", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x8D: {Name: "STA", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x8E: {Name: "STX", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0x8F: {Name: "SAX", Mode: Absolute, Size: 3, Cycles: 4},
	0x90: {Name: "BCC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0x91: {Name: "STA", Mode: IndirectY, Size: 2, Cycles: 6, Official: true},
	0x92: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0x93: {Name: "AHX", Mode: IndirectY, Size: 0, Cycles: 6},
	0x94: {Name: "STY", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x95: {Name: "STA", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0x96: {Name: "STX", Mode: ZeroPageY, Size: 2, Cycles: 4, Official: true},
	0x97: {Name: "SAX", Mode: ZeroPageY, Size: 2, Cycles: 4},
	0x98: {Name: "TYA", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x99: {Name: "STA", Mode: AbsoluteY, Size: 3, Cycles: 5, Official: true},
	0x9A: {Name: "TXS", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0x9B: {Name: "TAS", Mode: AbsoluteY, Size: 0, Cycles: 5},
	0x9C: {Name: "SHY", Mode: AbsoluteX, Size: 0, Cycles: 5},
	0x9D: {Name: "STA", Mode: AbsoluteX, Size: 3, Cycles: 5, Official: true},
	0x9E: {Name: "SHX", Mode: AbsoluteY, Size: 0, Cycles: 5},
	0x9F: {Name: "AHX", Mode: AbsoluteY, Size: 0, Cycles: 5},
	0xA0: {Name: "LDY", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xA1: {Name: "LDA", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0xA2: {Name: "LDX", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xA3: {Name: "LAX", Mode: IndirectX, Size: 2, Cycles: 6},
	0xA4: {Name: "LDY", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xA5: {Name: "LDA", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xA6: {Name: "LDX", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xA7: {Name: "LAX", Mode: ZeroPage, Size: 2, Cycles: 3},
	0xA8: {Name: "TAY", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xA9: {Name: "LDA", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xAA: {Name: "TAX", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xAB: {Name: "LAX", Mode: Immediate, Size: 0, Cycles: 2},
	0xAC: {Name: "LDY", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xAD: {Name: "LDA", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xAE: {Name: "LDX", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xAF: {Name: "LAX", Mode: Absolute, Size: 3, Cycles: 4},
	0xB0: {Name: "BCS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0xB1: {Name: "LDA", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0xB2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0xB3: {Name: "LAX", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0xB4: {Name: "LDY", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0xB5: {Name: "LDA", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0xB6: {Name: "LDX", Mode: ZeroPageY, Size: 2, Cycles: 4, Official: true},
	0xB7: {Name: "LAX", Mode: ZeroPageY, Size: 2, Cycles: 4},
	0xB8: {Name: "CLV", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xB9: {Name: "LDA", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xBA: {Name: "TSX", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xBB: {Name: "LAS", Mode: AbsoluteY, Size: 0, Cycles: 4, PageCycles: 1},
	0xBC: {Name: "LDY", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xBD: {Name: "LDA", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xBE: {Name: "LDX", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xBF: {Name: "LAX", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0xC0: {Name: "CPY", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xC1: {Name: "CMP", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0xC2: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2},
	0xC3: {Name: "DCP", Mode: IndirectX, Size: 2, Cycles: 8},
	0xC4: {Name: "CPY", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xC5: {Name: "CMP", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xC6: {Name: "DEC", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0xC7: {Name: "DCP", Mode: ZeroPage, Size: 2, Cycles: 5},
	0xC8: {Name: "INY", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xC9: {Name: "CMP", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xCA: {Name: "DEX", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xCB: {Name: "AXS", Mode: Immediate, Size: 0, Cycles: 2},
	0xCC: {Name: "CPY", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xCD: {Name: "CMP", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xCE: {Name: "DEC", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0xCF: {Name: "DCP", Mode: Absolute, Size: 3, Cycles: 6},
	0xD0: {Name: "BNE", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0xD1: {Name: "CMP", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0xD2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0xD3: {Name: "DCP", Mode: IndirectY, Size: 2, Cycles: 8},
	0xD4: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0xD5: {Name: "CMP", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0xD6: {Name: "DEC", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0xD7: {Name: "DCP", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0xD8: {Name: "CLD", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xD9: {Name: "CMP", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xDA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0xDB: {Name: "STP", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xDC: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xDD: {Name: "CMP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xDE: {Name: "DEC", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0xDF: {Name: "DCP", Mode: AbsoluteX, Size: 3, Cycles: 7},
	0xE0: {Name: "CPX", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xE1: {Name: "SBC", Mode: IndirectX, Size: 2, Cycles: 6, Official: true},
	0xE2: {Name: "NOP", Mode: Immediate, Size: 0, Cycles: 2},
	0xE3: {Name: "ISB", Mode: IndirectX, Size: 2, Cycles: 8},
	0xE4: {Name: "CPX", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xE5: {Name: "SBC", Mode: ZeroPage, Size: 2, Cycles: 3, Official: true},
	0xE6: {Name: "INC", Mode: ZeroPage, Size: 2, Cycles: 5, Official: true},
	0xE7: {Name: "ISB", Mode: ZeroPage, Size: 2, Cycles: 5},
	0xE8: {Name: "INX", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xE9: {Name: "SBC", Mode: Immediate, Size: 2, Cycles: 2, Official: true},
	0xEA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xEB: {Name: "SBC", Mode: Immediate, Size: 2, Cycles: 2},
	0xEC: {Name: "CPX", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xED: {Name: "SBC", Mode: Absolute, Size: 3, Cycles: 4, Official: true},
	0xEE: {Name: "INC", Mode: Absolute, Size: 3, Cycles: 6, Official: true},
	0xEF: {Name: "ISB", Mode: Absolute, Size: 3, Cycles: 6},
	0xF0: {Name: "BEQ", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1, Official: true},
	0xF1: {Name: "SBC", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1, Official: true},
	0xF2: {Name: "KIL", Mode: Implied, Size: 0, Cycles: 2},
	0xF3: {Name: "ISB", Mode: IndirectY, Size: 2, Cycles: 8},
	0xF4: {Name: "NOP", Mode: ZeroPageX, Size: 2, Cycles: 4},
	0xF5: {Name: "SBC", Mode: ZeroPageX, Size: 2, Cycles: 4, Official: true},
	0xF6: {Name: "INC", Mode: ZeroPageX, Size: 2, Cycles: 6, Official: true},
	0xF7: {Name: "ISB", Mode: ZeroPageX, Size: 2, Cycles: 6},
	0xF8: {Name: "SED", Mode: Implied, Size: 1, Cycles: 2, Official: true},
	0xF9: {Name: "SBC", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xFA: {Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0xFB: {Name: "ISB", Mode: AbsoluteY, Size: 3, Cycles: 7},
	0xFC: {Name: "NOP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xFD: {Name: "SBC", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Official: true},
	0xFE: {Name: "INC", Mode: AbsoluteX, Size: 3, Cycles: 7, Official: true},
	0xFF: {Name: "ISB", Mode: AbsoluteX, Size: 3, Cycles: 7},
}
