// Package bus implements the 16-bit-addressed, 8-bit memory space the CPU
// reads and writes through. Every address is backed by RAM except for three
// cells in zero page, which are multiplexed onto devices: a blocking
// terminal reader, a latch reporting how many bytes that reader last
// returned, and a pseudo-random byte source.
package bus

import (
	"io"
	"os"
	"time"
)

const (
	// TerminalRead is the address a blocking, single-byte read from the
	// configured input stream is performed on.
	TerminalRead uint16 = 0x00FD
	// TerminalReadCount reports how many bytes the previous TerminalRead
	// actually returned (0 or 1).
	TerminalReadCount uint16 = 0x00FE
	// Random returns the next pseudo-random byte on every read.
	Random uint16 = 0x00FF
)

// Bus is the central object the CPU reads and writes through. It owns the
// full 64 KiB address space plus the two devices multiplexed onto it.
type Bus struct {
	ram [64 * 1024]byte

	in       io.Reader
	lastRead byte // 0 or 1, bytes returned by the previous terminal read

	rng rand
}

// New returns a Bus with terminal input wired to stdin and the random
// device seeded from the current wall-clock time, matching the device's
// real-construction behavior. Tests that need deterministic I/O should build
// a Bus{} directly and call SetInput/SeedRandom themselves.
func New() *Bus {
	b := &Bus{in: os.Stdin}
	b.SeedRandom(uint32(time.Now().UnixMilli()))
	return b
}

// SetInput replaces the terminal's input stream.
func (b *Bus) SetInput(in io.Reader) {
	b.in = in
}

// SeedRandom reseeds the xorshift128 random byte source.
func (b *Bus) SeedRandom(seed uint32) {
	b.rng = newRand(seed)
}

// Read returns the byte at addr, routing the three mapped device cells and
// falling through to RAM everywhere else. Reads never fail: an unconfigured
// terminal reader (nil input) behaves as an immediate EOF.
func (b *Bus) Read(addr uint16) byte {
	switch addr {
	case TerminalRead:
		return b.readTerminal()
	case TerminalReadCount:
		return b.lastRead
	case Random:
		return b.rng.next()
	default:
		return b.ram[addr]
	}
}

// Write stores data at addr. Writes to the three mapped device cells are
// silently dropped; every other address writes through to RAM.
func (b *Bus) Write(addr uint16, data byte) {
	switch addr {
	case TerminalRead, TerminalReadCount, Random:
		return
	default:
		b.ram[addr] = data
	}
}

// Load copies program into RAM starting at offset, for tests and loaders
// that already have the bytes in hand.
func (b *Bus) Load(offset uint16, program []byte) {
	for i, v := range program {
		b.ram[offset+uint16(i)] = v
	}
}

// Slice returns the num bytes of RAM starting at start, for formatted dumps
// (zero page, the stack page, disassembly windows). The slice aliases RAM
// rather than copying it, so writes through it change memory.
func (b *Bus) Slice(start uint16, num int) []byte {
	return b.ram[start : int(start)+num]
}

func (b *Bus) readTerminal() byte {
	if b.in == nil {
		b.lastRead = 0
		return 0
	}
	var buf [1]byte
	n, err := b.in.Read(buf[:])
	if err != nil || n == 0 {
		b.lastRead = 0
		return 0
	}
	b.lastRead = 1
	return buf[0]
}
