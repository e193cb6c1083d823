package cpu

// A RegID names one of the 6809's registers. Representing the selectable
// registers as a small enum (rather than duplicating getter/setter logic
// per field) keeps auto-increment/decrement, TFR/EXG, and PSH/PUL close to
// a single accessor pair instead of spread across a switch per call site.
type RegID int

const (
	RegA RegID = iota
	RegB
	RegD // computed: hi=A, lo=B
	RegX
	RegY
	RegU
	RegS
	RegPC
	RegDP
	RegCC
	RegUndefined // sentinel: reserved TFR/EXG post-byte codes read 0, write is a no-op
)

// Width reports the register's natural width in bits: 8 or 16.
func (r RegID) Width() int {
	switch r {
	case RegA, RegB, RegDP, RegCC:
		return 8
	case RegD, RegX, RegY, RegU, RegS, RegPC:
		return 16
	default:
		return 8
	}
}

// RegisterByName maps assembler mnemonics to RegID, for TFR/EXG diagnostics
// and debugger display.
var RegisterByName = map[string]RegID{
	"A": RegA, "B": RegB, "D": RegD,
	"X": RegX, "Y": RegY, "U": RegU, "S": RegS,
	"PC": RegPC, "DP": RegDP, "CC": RegCC,
}

// indexedReg names the four registers selectable by the indexed
// addressing-mode post-byte's rr field (bits 6-5).
type indexedReg byte

const (
	idxX indexedReg = iota
	idxY
	idxU
	idxS
)

func (c *CPU) indexedRegValue(r indexedReg) uint16 {
	switch r {
	case idxX:
		return c.X
	case idxY:
		return c.Y
	case idxU:
		return c.U
	default:
		return c.S
	}
}

func (c *CPU) setIndexedReg(r indexedReg, v uint16) {
	switch r {
	case idxX:
		c.X = v
	case idxY:
		c.Y = v
	case idxU:
		c.U = v
	default:
		c.S = v
	}
}

// tfrRegTable implements the TFR/EXG post-byte register table:
// 0=D 1=X 2=Y 3=U 4=S 5=PC 6,7=undef 8=A 9=B A=CC B=DP C..F=undef.
var tfrRegTable = [16]RegID{
	RegD, RegX, RegY, RegU, RegS, RegPC, RegUndefined, RegUndefined,
	RegA, RegB, RegCC, RegDP, RegUndefined, RegUndefined, RegUndefined, RegUndefined,
}

// Get reads a register's full-width value, irrespective of its natural
// byte/word split (8-bit registers are returned zero-extended).
func (c *CPU) Get(r RegID) uint16 {
	switch r {
	case RegA:
		return uint16(c.A)
	case RegB:
		return uint16(c.B)
	case RegD:
		return uint16(c.A)<<8 | uint16(c.B)
	case RegX:
		return c.X
	case RegY:
		return c.Y
	case RegU:
		return c.U
	case RegS:
		return c.S
	case RegPC:
		return c.PC
	case RegDP:
		return uint16(c.DP)
	case RegCC:
		return uint16(c.CC)
	default:
		return 0
	}
}

// Set writes v to a register, truncating to its natural width. Writing
// RegD decomposes atomically into A and B, the only storage D ever has.
func (c *CPU) Set(r RegID, v uint16) {
	switch r {
	case RegA:
		c.A = byte(v)
	case RegB:
		c.B = byte(v)
	case RegD:
		c.A = byte(v >> 8)
		c.B = byte(v)
	case RegX:
		c.X = v
	case RegY:
		c.Y = v
	case RegU:
		c.U = v
	case RegS:
		c.S = v
	case RegPC:
		c.PC = v
	case RegDP:
		c.DP = byte(v)
	case RegCC:
		c.CC = byte(v)
	case RegUndefined:
		// writes to the sentinel go nowhere
	}
}
