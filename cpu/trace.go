package cpu

import (
	"fmt"
	"io"
)

// A Tracer receives one record per dispatched instruction. The hook fires
// after the instruction completes, so register values and the cycle
// counter reflect its effects; Text and Addr describe the instruction
// that just ran (Addr is the prefix byte's address for paged opcodes).
type Tracer interface {
	Trace(rec TraceRecord)
}

// TraceRecord is one line of execution history.
type TraceRecord struct {
	Addr   uint16
	Opcode uint16
	Text   string // disassembly of the instruction
	State  string // register summary after execution
	Cycles uint64 // counter after execution
}

// regState renders the register file in the fixed key=value layout
// reference 6809 emulators log between instructions, which makes two
// implementations' traces line up under diff.
func (c *CPU) regState() string {
	return fmt.Sprintf("cc=%02x a=%02x b=%02x dp=%02x x=%04x y=%04x u=%04x s=%04x",
		c.CC, c.A, c.B, c.DP, c.X, c.Y, c.U, c.S)
}

// WriterTracer streams trace lines to w, one instruction per line.
type WriterTracer struct {
	W io.Writer
}

func (t WriterTracer) Trace(rec TraceRecord) {
	fmt.Fprintf(t.W, "%04x| %-14s %s cycles=%d\n", rec.Addr, rec.Text, rec.State, rec.Cycles)
}
