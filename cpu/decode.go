package cpu

// Mnemonic identifies one of the 56 legal 6502 instructions.
type Mnemonic int

const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonicNames = [...]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

// Instruction is the decode table's payload: an operation kind paired with
// the addressing-mode template it is fetched with.
type Instruction struct {
	Kind Mnemonic
	Mode AddressingMode
}

// decodeTable maps every opcode byte to its instruction template. Entries
// not explicitly listed below default to {BRK, Implied}: any byte outside
// the 151 published opcodes halts the machine the same way a deliberate
// BRK would, rather than simulating undocumented-opcode behavior.
var decodeTable [256]Instruction

// Decode looks up the instruction template for an opcode byte, for callers
// outside the package that need to inspect the decode table without
// executing it (the disassembler, the debugger).
func Decode(opcode byte) Instruction {
	return decodeTable[opcode]
}

func init() {
	for i := range decodeTable {
		decodeTable[i] = Instruction{BRK, Implied}
	}

	// ADC
	decodeTable[0x69] = Instruction{ADC, Immediate}
	decodeTable[0x65] = Instruction{ADC, ZeroPage}
	decodeTable[0x75] = Instruction{ADC, ZeroPageX}
	decodeTable[0x6D] = Instruction{ADC, Absolute}
	decodeTable[0x7D] = Instruction{ADC, AbsoluteX}
	decodeTable[0x79] = Instruction{ADC, AbsoluteY}
	decodeTable[0x61] = Instruction{ADC, IndirectX}
	decodeTable[0x71] = Instruction{ADC, IndirectY}

	// AND
	decodeTable[0x29] = Instruction{AND, Immediate}
	decodeTable[0x25] = Instruction{AND, ZeroPage}
	decodeTable[0x35] = Instruction{AND, ZeroPageX}
	decodeTable[0x2D] = Instruction{AND, Absolute}
	decodeTable[0x3D] = Instruction{AND, AbsoluteX}
	decodeTable[0x39] = Instruction{AND, AbsoluteY}
	decodeTable[0x21] = Instruction{AND, IndirectX}
	decodeTable[0x31] = Instruction{AND, IndirectY}

	// ASL
	decodeTable[0x0A] = Instruction{ASL, Accumulator}
	decodeTable[0x06] = Instruction{ASL, ZeroPage}
	decodeTable[0x16] = Instruction{ASL, ZeroPageX}
	decodeTable[0x0E] = Instruction{ASL, Absolute}
	decodeTable[0x1E] = Instruction{ASL, AbsoluteX}

	// branch
	decodeTable[0x90] = Instruction{BCC, Relative}
	decodeTable[0xB0] = Instruction{BCS, Relative}
	decodeTable[0xF0] = Instruction{BEQ, Relative}
	decodeTable[0x30] = Instruction{BMI, Relative}
	decodeTable[0xD0] = Instruction{BNE, Relative}
	decodeTable[0x10] = Instruction{BPL, Relative}
	decodeTable[0x50] = Instruction{BVC, Relative}
	decodeTable[0x70] = Instruction{BVS, Relative}

	// BIT
	decodeTable[0x24] = Instruction{BIT, ZeroPage}
	decodeTable[0x2C] = Instruction{BIT, Absolute}

	// BRK
	decodeTable[0x00] = Instruction{BRK, Implied}

	// clear, set
	decodeTable[0x18] = Instruction{CLC, Implied}
	decodeTable[0xD8] = Instruction{CLD, Implied}
	decodeTable[0x58] = Instruction{CLI, Implied}
	decodeTable[0xB8] = Instruction{CLV, Implied}
	decodeTable[0x38] = Instruction{SEC, Implied}
	decodeTable[0xF8] = Instruction{SED, Implied}
	decodeTable[0x78] = Instruction{SEI, Implied}

	// compare
	decodeTable[0xC9] = Instruction{CMP, Immediate}
	decodeTable[0xC5] = Instruction{CMP, ZeroPage}
	decodeTable[0xD5] = Instruction{CMP, ZeroPageX}
	decodeTable[0xCD] = Instruction{CMP, Absolute}
	decodeTable[0xDD] = Instruction{CMP, AbsoluteX}
	decodeTable[0xD9] = Instruction{CMP, AbsoluteY}
	decodeTable[0xC1] = Instruction{CMP, IndirectX}
	decodeTable[0xD1] = Instruction{CMP, IndirectY}
	decodeTable[0xE0] = Instruction{CPX, Immediate}
	decodeTable[0xE4] = Instruction{CPX, ZeroPage}
	decodeTable[0xEC] = Instruction{CPX, Absolute}
	decodeTable[0xC0] = Instruction{CPY, Immediate}
	decodeTable[0xC4] = Instruction{CPY, ZeroPage}
	decodeTable[0xCC] = Instruction{CPY, Absolute}

	// increment, decrement, transfer
	decodeTable[0xC6] = Instruction{DEC, ZeroPage}
	decodeTable[0xD6] = Instruction{DEC, ZeroPageX}
	decodeTable[0xCE] = Instruction{DEC, Absolute}
	decodeTable[0xDE] = Instruction{DEC, AbsoluteX}
	decodeTable[0xCA] = Instruction{DEX, Implied}
	decodeTable[0x88] = Instruction{DEY, Implied}
	decodeTable[0xE6] = Instruction{INC, ZeroPage}
	decodeTable[0xF6] = Instruction{INC, ZeroPageX}
	decodeTable[0xEE] = Instruction{INC, Absolute}
	decodeTable[0xFE] = Instruction{INC, AbsoluteX}
	decodeTable[0xE8] = Instruction{INX, Implied}
	decodeTable[0xC8] = Instruction{INY, Implied}
	decodeTable[0xAA] = Instruction{TAX, Implied}
	decodeTable[0xA8] = Instruction{TAY, Implied}
	decodeTable[0xBA] = Instruction{TSX, Implied}
	decodeTable[0x8A] = Instruction{TXA, Implied}
	decodeTable[0x9A] = Instruction{TXS, Implied}
	decodeTable[0x98] = Instruction{TYA, Implied}

	// EOR
	decodeTable[0x49] = Instruction{EOR, Immediate}
	decodeTable[0x45] = Instruction{EOR, ZeroPage}
	decodeTable[0x55] = Instruction{EOR, ZeroPageX}
	decodeTable[0x4D] = Instruction{EOR, Absolute}
	decodeTable[0x5D] = Instruction{EOR, AbsoluteX}
	decodeTable[0x59] = Instruction{EOR, AbsoluteY}
	decodeTable[0x41] = Instruction{EOR, IndirectX}
	decodeTable[0x51] = Instruction{EOR, IndirectY}

	// jump, call, return
	decodeTable[0x4C] = Instruction{JMP, Absolute}
	decodeTable[0x6C] = Instruction{JMP, Indirect}
	decodeTable[0x20] = Instruction{JSR, Absolute}
	decodeTable[0x40] = Instruction{RTI, Implied}
	decodeTable[0x60] = Instruction{RTS, Implied}

	// LDA/LDX/LDY
	decodeTable[0xA9] = Instruction{LDA, Immediate}
	decodeTable[0xA5] = Instruction{LDA, ZeroPage}
	decodeTable[0xB5] = Instruction{LDA, ZeroPageX}
	decodeTable[0xAD] = Instruction{LDA, Absolute}
	decodeTable[0xBD] = Instruction{LDA, AbsoluteX}
	decodeTable[0xB9] = Instruction{LDA, AbsoluteY}
	decodeTable[0xA1] = Instruction{LDA, IndirectX}
	decodeTable[0xB1] = Instruction{LDA, IndirectY}
	decodeTable[0xA2] = Instruction{LDX, Immediate}
	decodeTable[0xA6] = Instruction{LDX, ZeroPage}
	decodeTable[0xB6] = Instruction{LDX, ZeroPageY}
	decodeTable[0xAE] = Instruction{LDX, Absolute}
	decodeTable[0xBE] = Instruction{LDX, AbsoluteY}
	decodeTable[0xA0] = Instruction{LDY, Immediate}
	decodeTable[0xA4] = Instruction{LDY, ZeroPage}
	decodeTable[0xB4] = Instruction{LDY, ZeroPageX}
	decodeTable[0xAC] = Instruction{LDY, Absolute}
	decodeTable[0xBC] = Instruction{LDY, AbsoluteX}

	// LSR
	decodeTable[0x4A] = Instruction{LSR, Accumulator}
	decodeTable[0x46] = Instruction{LSR, ZeroPage}
	decodeTable[0x56] = Instruction{LSR, ZeroPageX}
	decodeTable[0x4E] = Instruction{LSR, Absolute}
	decodeTable[0x5E] = Instruction{LSR, AbsoluteX}

	// NOP
	decodeTable[0xEA] = Instruction{NOP, Implied}

	// ORA
	decodeTable[0x09] = Instruction{ORA, Immediate}
	decodeTable[0x05] = Instruction{ORA, ZeroPage}
	decodeTable[0x15] = Instruction{ORA, ZeroPageX}
	decodeTable[0x0D] = Instruction{ORA, Absolute}
	decodeTable[0x1D] = Instruction{ORA, AbsoluteX}
	decodeTable[0x19] = Instruction{ORA, AbsoluteY}
	decodeTable[0x01] = Instruction{ORA, IndirectX}
	decodeTable[0x11] = Instruction{ORA, IndirectY}

	// stack
	decodeTable[0x48] = Instruction{PHA, Implied}
	decodeTable[0x08] = Instruction{PHP, Implied}
	decodeTable[0x68] = Instruction{PLA, Implied}
	decodeTable[0x28] = Instruction{PLP, Implied}

	// ROL, ROR
	decodeTable[0x2A] = Instruction{ROL, Accumulator}
	decodeTable[0x26] = Instruction{ROL, ZeroPage}
	decodeTable[0x36] = Instruction{ROL, ZeroPageX}
	decodeTable[0x2E] = Instruction{ROL, Absolute}
	decodeTable[0x3E] = Instruction{ROL, AbsoluteX}
	decodeTable[0x6A] = Instruction{ROR, Accumulator}
	decodeTable[0x66] = Instruction{ROR, ZeroPage}
	decodeTable[0x76] = Instruction{ROR, ZeroPageX}
	decodeTable[0x6E] = Instruction{ROR, Absolute}
	decodeTable[0x7E] = Instruction{ROR, AbsoluteX}

	// SBC
	decodeTable[0xE9] = Instruction{SBC, Immediate}
	decodeTable[0xE5] = Instruction{SBC, ZeroPage}
	decodeTable[0xF5] = Instruction{SBC, ZeroPageX}
	decodeTable[0xED] = Instruction{SBC, Absolute}
	decodeTable[0xFD] = Instruction{SBC, AbsoluteX}
	decodeTable[0xF9] = Instruction{SBC, AbsoluteY}
	decodeTable[0xE1] = Instruction{SBC, IndirectX}
	decodeTable[0xF1] = Instruction{SBC, IndirectY}

	// STA/STX/STY
	decodeTable[0x85] = Instruction{STA, ZeroPage}
	decodeTable[0x95] = Instruction{STA, ZeroPageX}
	decodeTable[0x8D] = Instruction{STA, Absolute}
	decodeTable[0x9D] = Instruction{STA, AbsoluteX}
	decodeTable[0x99] = Instruction{STA, AbsoluteY}
	decodeTable[0x81] = Instruction{STA, IndirectX}
	decodeTable[0x91] = Instruction{STA, IndirectY}
	decodeTable[0x86] = Instruction{STX, ZeroPage}
	decodeTable[0x96] = Instruction{STX, ZeroPageY}
	decodeTable[0x8E] = Instruction{STX, Absolute}
	decodeTable[0x84] = Instruction{STY, ZeroPage}
	decodeTable[0x94] = Instruction{STY, ZeroPageX}
	decodeTable[0x8C] = Instruction{STY, Absolute}
}
