package hexload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBus struct {
	mem [1 << 16]byte
}

func (b *fakeBus) Write(addr uint16, data byte) {
	b.mem[addr] = data
}

func TestLoadSingleLine(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("8000: A2 0A 8E 00 00"))
	assert.NoError(t, err)
	assert.Equal(t, byte(0xA2), b.mem[0x8000])
	assert.Equal(t, byte(0x0A), b.mem[0x8001])
	assert.Equal(t, byte(0x8E), b.mem[0x8002])
	assert.Equal(t, byte(0x00), b.mem[0x8003])
	assert.Equal(t, byte(0x00), b.mem[0x8004])
}

func TestLoadMultipleLinesEachResetsOffset(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("0000: A9 01\nFFFC: 00 80"))
	assert.NoError(t, err)
	assert.Equal(t, byte(0xA9), b.mem[0x0000])
	assert.Equal(t, byte(0x01), b.mem[0x0001])
	assert.Equal(t, byte(0x00), b.mem[0xFFFC])
	assert.Equal(t, byte(0x80), b.mem[0xFFFD])
}

func TestLoadSkipsBlankLinesAndExtraSpaces(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("\n8000:  A2   0A \n\n"))
	assert.NoError(t, err)
	assert.Equal(t, byte(0xA2), b.mem[0x8000])
	assert.Equal(t, byte(0x0A), b.mem[0x8001])
}

func TestLoadLowercaseHexIsAccepted(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("00fd: ea"))
	assert.NoError(t, err)
	assert.Equal(t, byte(0xEA), b.mem[0x00FD])
}

func TestLoadRejectsMissingColon(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("8000 A2"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadRejectsBadOffset(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("ZZZZ: A2"))
	assert.Error(t, err)
}

func TestLoadRejectsBadByte(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("8000: ZZ"))
	assert.Error(t, err)
}

func TestLoadReportsOneIndexedLineNumberOfFailure(t *testing.T) {
	b := &fakeBus{}
	err := Load(b, strings.NewReader("8000: A2\n8001: ZZ"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
