// Package disasm renders 6502 instructions back to assembly text, for the
// interactive debugger and the CLI's optional trace output. It only knows
// about the 56 legal mnemonics and 13 addressing modes; it does not
// interpret instructions, so a JMP target is printed as an address, not
// followed.
package disasm

import (
	"fmt"

	"github.com/vaelen/v6502/cpu"
)

// Reader is the narrow view of a memory bus disassembly needs.
type Reader interface {
	Read(addr uint16) byte
}

// Step disassembles the instruction at pc and returns its text plus the
// number of bytes (opcode + operand) it occupies.
func Step(pc uint16, r Reader) (string, int) {
	opcode := r.Read(pc)
	inst := cpu.Decode(opcode)
	mode := inst.Mode

	width := 1 + mode.OperandWidth()

	switch mode.OperandWidth() {
	case 0:
		return inst.Kind.String(), width
	case 1:
		operand := r.Read(pc + 1)
		return fmt.Sprintf("%s %s", inst.Kind, formatByteOperand(mode, operand)), width
	case 2:
		lo := r.Read(pc + 1)
		hi := r.Read(pc + 2)
		addr := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%s %s", inst.Kind, formatWordOperand(mode, addr)), width
	default:
		return inst.Kind.String(), width
	}
}

func formatByteOperand(mode cpu.AddressingMode, v byte) string {
	switch mode {
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", v)
	case cpu.Relative:
		return fmt.Sprintf("$%02X", v)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", v)
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", v)
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", v)
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", v)
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", v)
	default:
		return fmt.Sprintf("$%02X", v)
	}
}

func formatWordOperand(mode cpu.AddressingMode, v uint16) string {
	switch mode {
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", v)
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", v)
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", v)
	default:
		return fmt.Sprintf("$%04X", v)
	}
}
