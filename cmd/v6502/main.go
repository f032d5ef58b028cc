// Command v6502 loads a hex program into a fresh 6502 and runs it to
// completion, printing a register and memory dump to standard error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/vaelen/v6502/bus"
	"github.com/vaelen/v6502/cpu"
	"github.com/vaelen/v6502/disasm"
	"github.com/vaelen/v6502/hexload"
)

func main() {
	program := flag.String("program", "program.hex", "path to the hex program image")
	seed := flag.Uint64("seed", 1, "seed for the memory-mapped RNG device")
	debug := flag.Bool("debug", false, "launch the interactive single-step debugger instead of running to completion")
	trace := flag.Bool("trace", false, "print each instruction's disassembly to stderr before executing it")
	flag.Parse()

	fmt.Fprint(os.Stderr, "Initializing...")
	b := bus.New()
	b.SetInput(os.Stdin)
	b.SeedRandom(uint32(*seed))
	fmt.Fprintln(os.Stderr, "Done")

	fmt.Fprint(os.Stderr, "Loading Program...")
	f, err := os.Open(*program)
	if err != nil {
		log.Fatalf("v6502: couldn't open %s: %v", *program, err)
	}
	defer f.Close()
	if err := hexload.Load(b, f); err != nil {
		log.Fatalf("v6502: %v", err)
	}
	fmt.Fprintln(os.Stderr, "Done")

	p := cpu.New(b)
	fmt.Fprintf(os.Stderr, "Initial PC: %04X\n", p.PC)

	if *debug {
		cpu.Debug(p, b, func(pc uint16) (string, int) { return disasm.Step(pc, b) })
		return
	}

	fmt.Fprint(os.Stderr, "Running...")
	start := time.Now()
	if *trace {
		runTraced(p, b)
	} else {
		p.Run()
	}
	elapsed := time.Since(start)
	fmt.Fprintln(os.Stderr, "Done")

	switch {
	case elapsed >= time.Second:
		fmt.Fprintf(os.Stderr, "Runtime: %.3f s\n", elapsed.Seconds())
	case elapsed >= time.Millisecond:
		fmt.Fprintf(os.Stderr, "Runtime: %d ms\n", elapsed.Milliseconds())
	default:
		fmt.Fprintf(os.Stderr, "Runtime: %d μs\n", elapsed.Microseconds())
	}

	fmt.Fprintln(os.Stderr)
	dump(os.Stderr, p, b)
}

// runTraced steps p to completion one instruction at a time, printing each
// instruction's disassembly to stderr before it executes.
func runTraced(p *cpu.Processor, b *bus.Bus) {
	for !p.Flag(cpu.FlagBreak) {
		text, _ := disasm.Step(p.PC, b)
		fmt.Fprintf(os.Stderr, "\n%04X: %s", p.PC, text)
		p.Step()
	}
}

func dump(w io.Writer, p *cpu.Processor, b *bus.Bus) {
	fmt.Fprintf(w, "Registers: {A: %02X, X: %02X, Y: %02X, PC: %04X, SR: %02X, SP: %02X}\n",
		p.A, p.X, p.Y, p.PC, p.SR, p.SP)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Zero Page:")
	dumpPage(w, b.Slice(0x0000, 256), 0x0000)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stack:")
	dumpPage(w, b.Slice(0x0100, 256), 0x0100)
}

func dumpPage(w io.Writer, data []byte, offset uint16) {
	const chunkSize = 16
	fmt.Fprint(w, "       ")
	for i := 0; i < chunkSize; i++ {
		fmt.Fprintf(w, "%2X ", i)
	}
	fmt.Fprintln(w)

	row := offset
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(w, "%04X : ", row)
		for _, b := range data[i:end] {
			fmt.Fprintf(w, "%02X ", b)
		}
		fmt.Fprintln(w)
		row += chunkSize
	}
}
