package cpu

import (
	"context"
	"time"
)

// ControlChannel lets a host poll for a request to stop a running burst
// loop (debugger pause, shutdown) without the core importing anything
// about how that host is built. timeout bounds how long Poll may block;
// a host with nothing to report should return promptly.
type ControlChannel interface {
	Poll(timeout time.Duration) (quit bool)
}

// Step executes exactly one instruction: fetch the opcode (resolving the
// 0x10/0x11 page prefixes), resolve its operand, invoke its handler, and
// apply the declared write-back. It returns IllegalOpcodeError for any
// opcode with no descriptor, and propagates whatever the handler itself
// returns otherwise.
func (c *CPU) Step() error {
	startPC := c.PC
	var traceText string
	if c.Tracer != nil {
		// Disassemble up front: self-modifying code could rewrite its own
		// operand bytes before the record is emitted.
		traceText, _ = Disassemble(c.Mem, startPC)
	}
	b := c.fetchByte()

	table := &primaryTable
	opcode := uint16(b)
	if b == 0x10 || b == 0x11 {
		page := b
		b = c.fetchByte()
		if page == 0x10 {
			table = &page1Table
			opcode = 0x1000 | uint16(b)
		} else {
			table = &page2Table
			opcode = 0x1100 | uint16(b)
		}
	}

	d := table[b]
	if d == nil {
		return &IllegalOpcodeError{PC: startPC, Opcode: opcode}
	}

	op := c.resolveOperand(d.Mode, d.Width, d.ReadsM)
	result, err := d.Handler(c, op)
	if err != nil {
		return err
	}

	switch d.WritesTo {
	case WriteByte:
		c.WriteByte(result.EA, byte(result.M))
	case WriteWord:
		c.WriteWord(result.EA, result.M)
	}

	c.Cycles += uint64(d.Cycles + op.IndexedExtra)

	if c.Tracer != nil {
		c.Tracer.Trace(TraceRecord{
			Addr:   startPC,
			Opcode: opcode,
			Text:   traceText,
			State:  c.regState(),
			Cycles: c.Cycles,
		})
	}
	return nil
}

// Run steps the CPU in bursts of Cfg.BurstCount instructions, polling
// control between bursts so a host can request a stop without pausing
// mid-instruction. It returns when ctx is cancelled, control asks to
// quit, Cfg.MaxCPUCycles is reached, or Step returns an error (including
// the first illegal opcode or fatal trap it hits).
func (c *CPU) Run(ctx context.Context, control ControlChannel) error {
	burst := c.Cfg.BurstCount
	if burst == 0 {
		burst = 1
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for i := uint32(0); i < burst; i++ {
			if c.Cfg.MaxCPUCycles != 0 && c.Cycles >= c.Cfg.MaxCPUCycles {
				return nil
			}
			if err := c.Step(); err != nil {
				return err
			}
		}

		if control != nil && control.Poll(0) {
			return nil
		}
	}
}
