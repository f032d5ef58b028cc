package bus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainRAMRoundTrips(t *testing.T) {
	b := &Bus{}
	b.Write(0x1234, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x1234))
}

func TestLoadAndSlice(t *testing.T) {
	b := &Bus{}
	b.Load(0x8000, []byte{0xA9, 0x01, 0x00})
	assert.Equal(t, []byte{0xA9, 0x01, 0x00}, b.Slice(0x8000, 3))
}

func TestTerminalReadsOneByteAndLatchesCount(t *testing.T) {
	b := &Bus{}
	b.SetInput(strings.NewReader("A"))

	assert.Equal(t, byte('A'), b.Read(TerminalRead))
	assert.Equal(t, byte(1), b.Read(TerminalReadCount))

	// second read hits EOF
	assert.Equal(t, byte(0), b.Read(TerminalRead))
	assert.Equal(t, byte(0), b.Read(TerminalReadCount))
}

func TestTerminalWithNoInputIsImmediateEOF(t *testing.T) {
	b := &Bus{}
	assert.Equal(t, byte(0), b.Read(TerminalRead))
	assert.Equal(t, byte(0), b.Read(TerminalReadCount))
}

func TestWritesToDeviceCellsAreIgnored(t *testing.T) {
	b := &Bus{}
	b.Write(TerminalRead, 0xFF)
	b.Write(TerminalReadCount, 0xFF)
	b.Write(Random, 0xFF)
	assert.Equal(t, byte(0), b.ram[TerminalRead])
	assert.Equal(t, byte(0), b.ram[TerminalReadCount])
	assert.Equal(t, byte(0), b.ram[Random])
}

func TestRandomIsDeterministicForAFixedSeed(t *testing.T) {
	a := &Bus{}
	a.SeedRandom(1)
	b := &Bus{}
	b.SeedRandom(1)

	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Read(Random), b.Read(Random))
	}
}

func TestRandomVariesAcrossReads(t *testing.T) {
	b := &Bus{}
	b.SeedRandom(42)
	seen := map[byte]bool{}
	for i := 0; i < 16; i++ {
		seen[b.Read(Random)] = true
	}
	assert.True(t, len(seen) > 1, "expected the random stream to vary")
}

func TestBufferInputSource(t *testing.T) {
	b := &Bus{}
	b.SetInput(bytes.NewBufferString("xy"))
	assert.Equal(t, byte('x'), b.Read(TerminalRead))
	assert.Equal(t, byte('y'), b.Read(TerminalRead))
}
