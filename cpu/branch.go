package cpu

// Branch conditions and the short/long branch, BSR, JSR/RTS family.
// Short branches (AddrRelative8) and their long counterparts
// (AddrRelative16, page-1 prefixed except BRA/BSR's own long forms)
// share one condition-evaluation core per mnemonic.

type condFunc func(c *CPU) bool

func condAlways(c *CPU) bool { return true }
func condNever(c *CPU) bool { return false }
func condHi(c *CPU) bool { return !c.FlagC() && !c.FlagZ() }
func condLs(c *CPU) bool { return c.FlagC() || c.FlagZ() }
func condCc(c *CPU) bool { return !c.FlagC() }
func condCs(c *CPU) bool { return c.FlagC() }
func condNe(c *CPU) bool { return !c.FlagZ() }
func condEq(c *CPU) bool { return c.FlagZ() }
func condVc(c *CPU) bool { return !c.FlagV() }
func condVs(c *CPU) bool { return c.FlagV() }
func condPl(c *CPU) bool { return !c.FlagN() }
func condMi(c *CPU) bool { return c.FlagN() }
func condGe(c *CPU) bool { return c.FlagN() == c.FlagV() }
func condLt(c *CPU) bool { return c.FlagN() != c.FlagV() }
func condGt(c *CPU) bool { return !c.FlagZ() && (c.FlagN() == c.FlagV()) }
func condLe(c *CPU) bool { return c.FlagZ() || (c.FlagN() != c.FlagV()) }

// genBranch builds a handler that jumps to the addressing engine's
// resolved EA (already PC-relative) if cond holds.
func genBranch(cond condFunc) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		if cond(c) {
			c.PC = op.EA
		}
		return Operand{}, nil
	}
}

// opBSR and opLBSR push the return address (already past the branch's
// own operand bytes, per fetchByte/fetchWord having advanced PC) before
// jumping, same as JSR.
func opBSR(c *CPU, op Operand) (Operand, error) {
	c.pushWord(&c.S, c.PC)
	c.PC = op.EA
	return Operand{}, nil
}

func opJSR(c *CPU, op Operand) (Operand, error) {
	c.pushWord(&c.S, c.PC)
	c.PC = op.EA
	return Operand{}, nil
}

func opRTS(c *CPU, op Operand) (Operand, error) {
	c.PC = c.pullWord(&c.S)
	return Operand{}, nil
}

type branchDef struct {
	mnemonic    string
	cond        condFunc
	shortCode   byte
	shortCycles int
	longCode    byte // in page1Table; 0 for BRA/BSR, which have their own long primary opcodes
	longCycles  int
}

func init() {
	branches := []branchDef{
		{"BRA", condAlways, 0x20, 3, 0, 0},
		{"BRN", condNever, 0x21, 3, 0x21, 5},
		{"BHI", condHi, 0x22, 3, 0x22, 5},
		{"BLS", condLs, 0x23, 3, 0x23, 5},
		{"BCC", condCc, 0x24, 3, 0x24, 5},
		{"BCS", condCs, 0x25, 3, 0x25, 5},
		{"BNE", condNe, 0x26, 3, 0x26, 5},
		{"BEQ", condEq, 0x27, 3, 0x27, 5},
		{"BVC", condVc, 0x28, 3, 0x28, 5},
		{"BVS", condVs, 0x29, 3, 0x29, 5},
		{"BPL", condPl, 0x2A, 3, 0x2A, 5},
		{"BMI", condMi, 0x2B, 3, 0x2B, 5},
		{"BGE", condGe, 0x2C, 3, 0x2C, 5},
		{"BLT", condLt, 0x2D, 3, 0x2D, 5},
		{"BGT", condGt, 0x2E, 3, 0x2E, 5},
		{"BLE", condLe, 0x2F, 3, 0x2F, 5},
	}

	for _, b := range branches {
		def(&primaryTable, b.shortCode, Descriptor{
			Mnemonic: b.mnemonic, Mode: AddrRelative8, Cycles: b.shortCycles, Handler: genBranch(b.cond),
		})
		if b.mnemonic != "BRA" {
			def(&page1Table, b.longCode, Descriptor{
				Mnemonic: "L" + b.mnemonic, Mode: AddrRelative16, Cycles: b.longCycles, Handler: genBranch(b.cond),
			})
		}
	}

	// BRA and BSR's long forms are unprefixed primary opcodes.
	def(&primaryTable, 0x16, Descriptor{Mnemonic: "LBRA", Mode: AddrRelative16, Cycles: 5, Handler: genBranch(condAlways)})
	def(&primaryTable, 0x17, Descriptor{Mnemonic: "LBSR", Mode: AddrRelative16, Cycles: 9, Handler: opBSR})
	def(&primaryTable, 0x8D, Descriptor{Mnemonic: "BSR", Mode: AddrRelative8, Cycles: 7, Handler: opBSR})

	def(&primaryTable, 0x9D, Descriptor{Mnemonic: "JSR", Mode: AddrDirect, Cycles: 7, Handler: opJSR})
	def(&primaryTable, 0xAD, Descriptor{Mnemonic: "JSR", Mode: AddrIndexed, Cycles: 7, Handler: opJSR})
	def(&primaryTable, 0xBD, Descriptor{Mnemonic: "JSR", Mode: AddrExtended, Cycles: 8, Handler: opJSR})

	def(&primaryTable, 0x39, Descriptor{Mnemonic: "RTS", Mode: AddrInherent, Cycles: 5, Handler: opRTS})
}
