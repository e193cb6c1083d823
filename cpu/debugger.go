package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu     *CPU
	program []byte
	offset  uint16

	prevPC uint16
	error  error
}

// Init loads the program into memory at offset and points PC at it.
func (m model) Init() tea.Cmd {
	ram, ok := m.cpu.Mem.(interface {
		Load(program []byte, addr uint16)
	})
	if ok {
		ram.Load(m.program, m.offset)
	}
	m.cpu.PC = m.offset
	return nil
}

// Update is called when a message is received. " " and "j" single-step
// the CPU; "q" quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(); err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.ReadByte(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.FlagE(), m.cpu.FlagF(), m.cpu.FlagH(), m.cpu.FlagI(),
		m.cpu.FlagN(), m.cpu.FlagZ(), m.cpu.FlagV(), m.cpu.FlagC(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x  B: %02x  D: %04x
 X: %04x Y: %04x
 U: %04x S: %04x
DP: %02x  CC: %02x  cycles: %d
E F H I N Z V C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.B, m.cpu.D(),
		m.cpu.X, m.cpu.Y,
		m.cpu.U, m.cpu.S,
		m.cpu.DP, m.cpu.CC, m.cpu.Cycles,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	base := m.cpu.PC - (m.cpu.PC % 16)
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int32(base)+int32(i)*16)))
	}
	return strings.Join(rows, "\n")
}

// listing renders the next few instructions starting at PC, the way a
// monitor ROM's disassembly window would.
func (m model) listing() string {
	var rows []string
	addr := m.cpu.PC
	for i := 0; i < 4; i++ {
		text, next := Disassemble(m.cpu.Mem, addr)
		rows = append(rows, fmt.Sprintf("%04x  %s", addr, text))
		addr = next
	}
	return strings.Join(rows, "\n")
}

// View renders the program's UI: a window of memory around PC, the
// register/flag panel, a short disassembly of what runs next, and a
// go-spew dump of the currently-pointed-at descriptor.
func (m model) View() string {
	b := m.cpu.ReadByte(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.listing(),
		"",
		spew.Sdump(primaryTable[b]),
	)
}

// Debug loads program into memory at offset, then starts an interactive
// terminal debugger that single-steps the CPU on each keypress.
func (c *CPU) Debug(program []byte, offset uint16) {
	m, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
