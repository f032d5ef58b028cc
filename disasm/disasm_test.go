package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRAM [64 * 1024]byte

func (r *fakeRAM) Read(addr uint16) byte {
	return r[addr]
}

func TestStepImplied(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xEA // NOP

	text, width := Step(0x0000, r)
	assert.Equal(t, "NOP", text)
	assert.Equal(t, 1, width)
}

func TestStepImmediate(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xA9 // LDA
	r[0x0001] = 0xFF

	text, width := Step(0x0000, r)
	assert.Equal(t, "LDA #$FF", text)
	assert.Equal(t, 2, width)
}

func TestStepZeroPage(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xA5 // LDA zp
	r[0x0001] = 0x10

	text, width := Step(0x0000, r)
	assert.Equal(t, "LDA $10", text)
	assert.Equal(t, 2, width)
}

func TestStepZeroPageX(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xB5 // LDA zp,X
	r[0x0001] = 0x10

	text, _ := Step(0x0000, r)
	assert.Equal(t, "LDA $10,X", text)
}

func TestStepAbsolute(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xAD // LDA abs
	r[0x0001] = 0x10
	r[0x0002] = 0x20

	text, width := Step(0x0000, r)
	assert.Equal(t, "LDA $2010", text)
	assert.Equal(t, 3, width)
}

func TestStepAbsoluteX(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xBD // LDA abs,X
	r[0x0001] = 0x10
	r[0x0002] = 0x20

	text, _ := Step(0x0000, r)
	assert.Equal(t, "LDA $2010,X", text)
}

func TestStepIndirect(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0x6C // JMP (abs)
	r[0x0001] = 0xFF
	r[0x0002] = 0x00

	text, _ := Step(0x0000, r)
	assert.Equal(t, "JMP ($00FF)", text)
}

func TestStepIndirectX(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0x61 // ADC (zp,X)
	r[0x0001] = 0x80

	text, _ := Step(0x0000, r)
	assert.Equal(t, "ADC ($80,X)", text)
}

func TestStepIndirectY(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0x71 // ADC (zp),Y
	r[0x0001] = 0x80

	text, _ := Step(0x0000, r)
	assert.Equal(t, "ADC ($80),Y", text)
}

func TestStepRelative(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0xF0 // BEQ
	r[0x0001] = 0xFE

	text, width := Step(0x0000, r)
	assert.Equal(t, "BEQ $FE", text)
	assert.Equal(t, 2, width)
}

func TestStepAccumulator(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0x0A // ASL A

	text, width := Step(0x0000, r)
	assert.Equal(t, "ASL", text)
	assert.Equal(t, 1, width)
}

func TestStepUnknownOpcodeDisassemblesAsBRK(t *testing.T) {
	r := &fakeRAM{}
	r[0x0000] = 0x02 // not a legal opcode

	text, width := Step(0x0000, r)
	assert.Equal(t, "BRK", text)
	assert.Equal(t, 1, width)
}
