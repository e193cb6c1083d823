package cpu

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Snapshot is a self-contained copy of everything Restore needs to put a
// CPU back exactly where Snapshot found it: registers, CC, cycle count,
// and the full 64K address space. Used by tests that want to save/replay
// a machine state.
type Snapshot struct {
	A, B         byte
	DP, CC       byte
	X, Y, U, S   uint16
	PC           uint16
	Cycles       uint64
	RAM          [65536]byte
}

// Snapshot copies the CPU's register file and full address space. Mem
// exposes its bytes one at a time through ReadByte; the Memory interface
// has no bulk-copy escape hatch.
func (c *CPU) Snapshot() Snapshot {
	s := Snapshot{
		A: c.A, B: c.B, DP: c.DP, CC: c.CC,
		X: c.X, Y: c.Y, U: c.U, S: c.S, PC: c.PC,
		Cycles: c.Cycles,
	}
	for addr := 0; addr < 65536; addr++ {
		s.RAM[addr] = c.ReadByte(uint16(addr))
	}
	return s
}

// Restore writes a snapshot's registers and memory contents back onto c.
func (c *CPU) Restore(s Snapshot) {
	c.A, c.B, c.DP, c.CC = s.A, s.B, s.DP, s.CC
	c.X, c.Y, c.U, c.S, c.PC = s.X, s.Y, s.U, s.S, s.PC
	c.Cycles = s.Cycles
	for addr := 0; addr < 65536; addr++ {
		c.WriteByte(uint16(addr), s.RAM[addr])
	}
}

// String renders the register file with fmt and the CCR flags with
// go-spew, the same tool the debugger's dump pane uses.
func (c *CPU) String() string {
	cfg := spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerAddresses: true}
	var b strings.Builder
	fmt.Fprintf(&b, "A=%#02x B=%#02x D=%#04x DP=%#02x CC=%#02x\n", c.A, c.B, c.D(), c.DP, c.CC)
	fmt.Fprintf(&b, "X=%#04x Y=%#04x U=%#04x S=%#04x PC=%#04x\n", c.X, c.Y, c.U, c.S, c.PC)
	fmt.Fprintf(&b, "cycles=%d\n", c.Cycles)
	b.WriteString(cfg.Sdump(struct {
		E, F, H, I, N, Z, V, C bool
	}{c.FlagE(), c.FlagF(), c.FlagH(), c.FlagI(), c.FlagN(), c.FlagZ(), c.FlagV(), c.FlagC()}))
	return b.String()
}
