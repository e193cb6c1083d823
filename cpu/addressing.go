package cpu

import (
	"log"

	"m6809/mask"
)

// AddrMode names one of the 6809's addressing modes. Each mode is a fetch
// contract: it may produce an effective address (EA), a value (M), or
// both, consuming zero or more bytes from PC along the way.
type AddrMode int

const (
	AddrInherent AddrMode = iota
	AddrImmediate
	AddrDirect
	AddrExtended
	AddrIndexed
	AddrRelative8
	AddrRelative16
)

// Width is an operand's natural size, independent of its addressing mode.
type Width int

const (
	Byte Width = iota
	Word
)

// Operand is what the addressing engine hands to an instruction handler:
// an optional effective address and an optional fetched value. EA and M
// are tracked independently so LEA (wants EA, no M) and TST (wants M,
// doesn't care about EA) both get exactly what they ask for.
type Operand struct {
	EA           uint16
	HasEA        bool
	M            uint16 // low 8 bits significant when the descriptor's width is Byte
	HasM         bool
	IndexedExtra int // extra cycles contributed by indexed-mode decode
}

// resolveOperand fetches the operand for one instruction, per the mode and
// width its descriptor declares. readsM controls whether a value is
// loaded from the computed EA (STA and friends want the EA only; LDA
// wants the value too).
func (c *CPU) resolveOperand(mode AddrMode, width Width, readsM bool) Operand {
	switch mode {
	case AddrInherent:
		return Operand{}

	case AddrImmediate:
		if width == Word {
			return Operand{M: c.fetchWord(), HasM: true}
		}
		return Operand{M: uint16(c.fetchByte()), HasM: true}

	case AddrDirect:
		lo := c.fetchByte()
		ea := uint16(c.DP)<<8 | uint16(lo)
		return c.loadAt(ea, width, readsM)

	case AddrExtended:
		ea := c.fetchWord()
		return c.loadAt(ea, width, readsM)

	case AddrIndexed:
		ea, extra := c.decodeIndexed()
		op := c.loadAt(ea, width, readsM)
		op.IndexedExtra = extra
		return op

	case AddrRelative8:
		rel := mask.Signed8(c.fetchByte())
		return Operand{EA: uint16(int32(c.PC) + int32(rel)), HasEA: true}

	case AddrRelative16:
		rel := mask.Signed16(c.fetchWord())
		return Operand{EA: uint16(int32(c.PC) + int32(rel)), HasEA: true}
	}
	return Operand{}
}

func (c *CPU) loadAt(ea uint16, width Width, readsM bool) Operand {
	op := Operand{EA: ea, HasEA: true}
	if readsM {
		if width == Word {
			op.M = c.ReadWord(ea)
		} else {
			op.M = uint16(c.ReadByte(ea))
		}
		op.HasM = true
	}
	return op
}

// decodeIndexed implements the full indexed post-byte table: the
// register field (bits 6-5), the 5-bit-signed fast path (bit 7=0), and
// the sixteen extended sub-modes (bit 7=1), including the
// additional-indirection flag (bit 4) and the two reserved codes.
func (c *CPU) decodeIndexed() (ea uint16, extraCycles int) {
	postbyte := c.fetchByte()
	reg := indexedReg((postbyte >> 5) & 0x03)

	if postbyte&0x80 == 0 {
		offset := mask.Signed5(postbyte & 0x1F)
		ea = uint16(int32(c.indexedRegValue(reg)) + int32(offset))
		return ea, 0
	}

	indirect := postbyte&0x10 != 0
	code := postbyte & 0x0F
	r := c.indexedRegValue(reg)

	switch code {
	case 0x0: // ,R+
		ea = r
		c.setIndexedReg(reg, r+1)
	case 0x1: // ,R++
		ea = r
		c.setIndexedReg(reg, r+2)
		extraCycles = 1
	case 0x2: // ,R-
		r--
		c.setIndexedReg(reg, r)
		ea = r
	case 0x3: // ,R--
		r -= 2
		c.setIndexedReg(reg, r)
		ea = r
		extraCycles = 1
	case 0x4: // ,R
		ea = r
	case 0x5: // B,R
		ea = uint16(int32(r) + int32(mask.Signed8(c.B)))
	case 0x6: // A,R
		ea = uint16(int32(r) + int32(mask.Signed8(c.A)))
	case 0x8: // n,R (8-bit)
		n := c.fetchByte()
		ea = uint16(int32(r) + int32(mask.Signed8(n)))
	case 0x9: // n,R (16-bit)
		n := c.fetchWord()
		ea = uint16(int32(r) + int32(mask.Signed16(n)))
		extraCycles = 1
	case 0xA: // reserved mode; EA=0, logged not faulted
		log.Println("decodeIndexed: reserved postbyte code 0xA, EA forced to 0")
		ea = 0
	case 0xB: // D,R
		ea = uint16(int32(r) + int32(mask.Signed16(c.D())))
		extraCycles = 1
	case 0xC: // n,PCR (8-bit)
		n := c.fetchByte()
		ea = uint16(int32(c.PC) + int32(mask.Signed8(n)))
	case 0xD: // n,PCR (16-bit)
		n := c.fetchWord()
		ea = uint16(int32(c.PC) + int32(mask.Signed16(n)))
		extraCycles = 1
	case 0xE: // reserved mode; EA=0xFFFF, logged not faulted
		log.Println("decodeIndexed: reserved postbyte code 0xE, EA forced to 0xFFFF")
		ea = 0xFFFF
	case 0xF: // [n] extended indirect: fetch absolute word as EA
		ea = c.fetchWord()
	}

	if indirect {
		ea = c.ReadWord(ea)
	}
	return ea, extraCycles
}
