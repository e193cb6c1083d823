// Package cpu implements the Motorola 6809 microprocessor: register file,
// condition-code register, addressing-mode engine, instruction semantics,
// and the fetch-decode-execute step, as used in Dragon/CoCo-class machines.
package cpu

import (
	"m6809/mem"
)

// A Profile selects the CC value Reset establishes, matching the
// divergence between stock 6809 firmware (which expects F and I masked on
// reset) and the SBC09 reference monitor (which expects a clean CC).
type Profile int

const (
	ProfileDefault Profile = iota
	ProfileSBC09
)

// Config carries the parameters external to the instruction set itself:
// where Reset loads PC from, how many instructions a Run burst executes
// before polling its control channel, an optional cycle budget, and the
// reset CC profile. There is no file or flag parsing here -- the host
// front end that would populate this from a config file is out of scope
// for the core; Config is a plain struct a caller constructs directly.
type Config struct {
	ResetVector  uint16
	BurstCount   uint32
	MaxCPUCycles uint64 // 0 means unbounded
	Profile      Profile
}

// CPU holds all 6809 register state plus the bookkeeping (memory handle,
// cycle counter, configuration) a single fetch-decode-execute step needs.
// A and B are the only storage for the 8-bit accumulators; D is always
// computed from them (see regs.go Get/Set), never stored separately.
type CPU struct {
	A, B   byte
	X, Y   uint16
	U, S   uint16
	PC     uint16
	DP     byte
	CC     byte
	Cycles uint64

	Mem mem.Memory
	Cfg Config

	// Tracer, when non-nil, receives a TraceRecord after every completed
	// instruction. Nil costs one branch per Step.
	Tracer Tracer
}

// NewCPU constructs a CPU wired to mem and configured per cfg. Registers
// start zeroed; call Reset to establish the CC profile and load PC from
// the reset vector.
func NewCPU(m mem.Memory, cfg Config) *CPU {
	return &CPU{Mem: m, Cfg: cfg}
}

// D returns the 16-bit accumulator, a view over A:B.
func (c *CPU) D() uint16 {
	return uint16(c.A)<<8 | uint16(c.B)
}

// SetD writes v to D, decomposing it into A and B atomically -- the two
// are never observed in a half-written state by any other operation,
// since Go's single-goroutine execution here already guarantees that, but
// the decomposition itself must split high/low correctly every time.
func (c *CPU) SetD(v uint16) {
	c.A = byte(v >> 8)
	c.B = byte(v)
}

// Reset establishes the CC profile and loads PC from the big-endian word
// at Cfg.ResetVector. Registers and the cycle counter otherwise persist
// from whatever state the CPU was already in -- only CC and PC are
// touched.
func (c *CPU) Reset() {
	switch c.Cfg.Profile {
	case ProfileSBC09:
		c.CC = 0
	default:
		c.CC = 0
		c.SetFlagF(true)
		c.SetFlagI(true)
	}
	c.PC = c.Mem.ReadWord(c.Cfg.ResetVector)
}

// ReadByte and WriteByte delegate to the memory interface -- the core
// never touches memory any other way, so an external agent that peeks
// or pokes between Step calls sees only whole-instruction effects.
func (c *CPU) ReadByte(addr uint16) byte { return c.Mem.ReadByte(addr) }
func (c *CPU) WriteByte(addr uint16, v byte) { c.Mem.WriteByte(addr, v) }
func (c *CPU) ReadWord(addr uint16) uint16 { return c.Mem.ReadWord(addr) }
func (c *CPU) WriteWord(addr uint16, v uint16) { c.Mem.WriteWord(addr, v) }

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() byte {
	b := c.ReadByte(c.PC)
	c.PC++
	return b
}

// fetchWord reads the big-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	w := c.ReadWord(c.PC)
	c.PC += 2
	return w
}

// pushByte pre-decrements sp by one and writes v. The byte pair
// (pushByte/pullByte) serves PSH/PUL's 8-bit registers; the word pair
// (pushWord/pullWord) serves their 16-bit registers and the return
// address JSR/BSR push and RTS pulls.
func (c *CPU) pushByte(sp *uint16, v byte) {
	*sp--
	c.WriteByte(*sp, v)
}

func (c *CPU) pullByte(sp *uint16) byte {
	v := c.ReadByte(*sp)
	*sp++
	return v
}

func (c *CPU) pushWord(sp *uint16, v uint16) {
	*sp -= 2
	c.WriteWord(*sp, v)
}

func (c *CPU) pullWord(sp *uint16) uint16 {
	v := c.ReadWord(*sp)
	*sp += 2
	return v
}
