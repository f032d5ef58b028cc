package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/vaelen/v6502/mask"
)

// model is the bubbletea model backing the interactive single-step
// debugger. It drives a *Processor directly so it can render pages of RAM
// by address rather than through the bus's general Read/Write surface.
type model struct {
	cpu         *Processor
	ram         ramSlicer
	prevPC      uint16
	disassemble func(pc uint16) (string, int)
}

// ramSlicer is the narrow view the debugger needs from a memory bus: a way
// to read a contiguous run of bytes for display. bus.Bus satisfies this
// directly via its Slice method.
type ramSlicer interface {
	Slice(start uint16, num int) []byte
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Step()
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of RAM as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.ram.Slice(start, 16) {
		if start+uint16(i) == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

// status renders the register file plus the eight status-flag letters, in
// the canonical N V _ B D I Z C display order.
func (m model) status() string {
	var flags strings.Builder
	for _, set := range []bool{
		mask.IsSet(m.cpu.SR, mask.I1), // N
		mask.IsSet(m.cpu.SR, mask.I2), // V
		mask.IsSet(m.cpu.SR, mask.I3), // _
		mask.IsSet(m.cpu.SR, mask.I4), // B
		mask.IsSet(m.cpu.SR, mask.I5), // D
		mask.IsSet(m.cpu.SR, mask.I6), // I
		mask.IsSet(m.cpu.SR, mask.I7), // Z
		mask.IsSet(m.cpu.SR, mask.I8), // C
	} {
		if set {
			flags.WriteString("/ ")
		} else {
			flags.WriteString("  ")
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
%s`,
		m.cpu.PC, m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
		flags.String(),
	)
}

// pageTable renders three stacked 16-byte hex rows: the first row of the
// zero page, the first row of the stack page, and the row containing PC.
func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	pc := m.cpu.PC &^ 0x0F
	for _, start := range []uint16{0x0000, 0x0100, pc} {
		rows = append(rows, m.renderPage(start))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table, the status line, the disassembled
// instruction about to execute, and a spew dump of the full Processor
// state.
func (m model) View() string {
	text, _ := m.disassemble(m.cpu.PC)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		fmt.Sprintf("%04x: %s", m.cpu.PC, text),
		"",
		spew.Sdump(*m.cpu),
	)
}

// Debug starts an interactive TUI over an already-loaded Processor: space
// or j single-steps, q quits. disassemble renders the instruction at a
// given PC as assembly text, for the line shown above the raw struct
// dump; callers typically pass disasm.Step bound to their memory bus.
func Debug(p *Processor, ram ramSlicer, disassemble func(pc uint16) (string, int)) {
	_, err := tea.NewProgram(model{cpu: p, ram: ram, disassemble: disassemble}).Run()
	if err != nil {
		panic(err)
	}
}
