package cpu

import (
	"fmt"

	"m6809/mask"
	"m6809/mem"
)

// Disassemble decodes the instruction at addr and renders it in
// conventional 6809 assembler syntax, returning the text and the address
// of the next instruction. It reads through the Memory interface only and
// never touches CPU state, so the debugger can show upcoming instructions
// without perturbing the machine. Unknown opcodes render as an FCB
// directive so a listing never aborts mid-page.
func Disassemble(m mem.Memory, addr uint16) (string, uint16) {
	pc := addr
	fetch := func() byte {
		b := m.ReadByte(pc)
		pc++
		return b
	}
	fetchWord := func() uint16 {
		w := m.ReadWord(pc)
		pc += 2
		return w
	}

	b := fetch()
	table := &primaryTable
	if b == 0x10 || b == 0x11 {
		if b == 0x10 {
			table = &page1Table
		} else {
			table = &page2Table
		}
		b = fetch()
	}

	d := table[b]
	if d == nil {
		return fmt.Sprintf("FCB $%02X", m.ReadByte(addr)), addr + 1
	}

	switch d.Mode {
	case AddrInherent:
		return d.Mnemonic, pc

	case AddrImmediate:
		if d.Width == Word {
			return fmt.Sprintf("%s #$%04X", d.Mnemonic, fetchWord()), pc
		}
		return fmt.Sprintf("%s #$%02X", d.Mnemonic, fetch()), pc

	case AddrDirect:
		return fmt.Sprintf("%s <$%02X", d.Mnemonic, fetch()), pc

	case AddrExtended:
		return fmt.Sprintf("%s $%04X", d.Mnemonic, fetchWord()), pc

	case AddrRelative8:
		rel := mask.Signed8(fetch())
		return fmt.Sprintf("%s $%04X", d.Mnemonic, uint16(int32(pc)+int32(rel))), pc

	case AddrRelative16:
		rel := mask.Signed16(fetchWord())
		return fmt.Sprintf("%s $%04X", d.Mnemonic, uint16(int32(pc)+int32(rel))), pc

	case AddrIndexed:
		operand, next := disasmIndexed(m, pc)
		return d.Mnemonic + " " + operand, next
	}
	return d.Mnemonic, pc
}

var indexedRegNames = [4]string{"X", "Y", "U", "S"}

// disasmIndexed renders one indexed post-byte (and any offset bytes it
// consumes) in assembler syntax, bracketing the whole operand when the
// post-byte's indirection bit is set.
func disasmIndexed(m mem.Memory, addr uint16) (string, uint16) {
	pc := addr
	postbyte := m.ReadByte(pc)
	pc++
	reg := indexedRegNames[(postbyte>>5)&0x03]

	if postbyte&0x80 == 0 {
		off := mask.Signed5(postbyte & 0x1F)
		return fmt.Sprintf("%d,%s", off, reg), pc
	}

	var s string
	switch postbyte & 0x0F {
	case 0x0:
		s = "," + reg + "+"
	case 0x1:
		s = "," + reg + "++"
	case 0x2:
		s = ",-" + reg
	case 0x3:
		s = ",--" + reg
	case 0x4:
		s = "," + reg
	case 0x5:
		s = "B," + reg
	case 0x6:
		s = "A," + reg
	case 0x8:
		s = fmt.Sprintf("%d,%s", mask.Signed8(m.ReadByte(pc)), reg)
		pc++
	case 0x9:
		s = fmt.Sprintf("%d,%s", mask.Signed16(m.ReadWord(pc)), reg)
		pc += 2
	case 0xB:
		s = "D," + reg
	case 0xC:
		s = fmt.Sprintf("%d,PCR", mask.Signed8(m.ReadByte(pc)))
		pc++
	case 0xD:
		s = fmt.Sprintf("%d,PCR", mask.Signed16(m.ReadWord(pc)))
		pc += 2
	case 0xF:
		s = fmt.Sprintf("$%04X", m.ReadWord(pc))
		pc += 2
	default: // 0xA, 0xE: reserved
		s = "?," + reg
	}

	if postbyte&0x10 != 0 {
		s = "[" + s + "]"
	}
	return s, pc
}
