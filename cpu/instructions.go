package cpu

// Instruction semantics grouped by family: loads/stores, arithmetic,
// logic, the read-modify-write memory/accumulator ops, shifts/rotates,
// and the inherent miscellany (DAA, SEX, MUL, ABX, LEA, ANDCC/ORCC).
// Each family is one value-computing core (parameterized by register or
// operating directly on op.M) plus an init() that wires it into the
// opcode tables via regVariants/def.

// ---- loads and stores --------------------------------------------------

// genLoad builds the handler for LDA/LDB/LDD/LDX/LDY/LDU/LDS: load reg
// from the fetched operand, update N/Z, clear V.
func genLoad(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		c.Set(reg, op.M)
		if reg.Width() == 16 {
			c.updateNZ16(op.M)
		} else {
			c.updateNZ8(byte(op.M))
		}
		c.SetFlagV(false)
		return Operand{}, nil
	}
}

// genStore builds the handler for STA/STB/STD/STX/STY/STU/STS: write reg
// to the descriptor-declared EA, update N/Z, clear V.
func genStore(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		v := c.Get(reg)
		if reg.Width() == 16 {
			c.updateNZ16(v)
		} else {
			c.updateNZ8(byte(v))
		}
		c.SetFlagV(false)
		return Operand{EA: op.EA, M: v}, nil
	}
}

// ---- 8-bit arithmetic ---------------------------------------------------

func genAdd8(reg RegID, withCarry bool) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		var cin byte
		if withCarry && c.FlagC() {
			cin = 1
		}
		a := byte(c.Get(reg))
		r := c.addFlags8(a, byte(op.M), cin, true)
		c.Set(reg, uint16(r))
		return Operand{}, nil
	}
}

func genSub8(reg RegID, withCarry bool) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		var cin byte
		if withCarry && c.FlagC() {
			cin = 1
		}
		a := byte(c.Get(reg))
		r := c.subFlags8(a, byte(op.M), cin)
		c.Set(reg, uint16(r))
		return Operand{}, nil
	}
}

// genCmp8 computes a-m for flags only; the register is left untouched.
func genCmp8(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		a := byte(c.Get(reg))
		c.subFlags8(a, byte(op.M), 0)
		return Operand{}, nil
	}
}

func genAnd8(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		r := byte(c.Get(reg)) & byte(op.M)
		c.Set(reg, uint16(r))
		c.updateNZ8(r)
		c.SetFlagV(false)
		return Operand{}, nil
	}
}

func genOr8(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		r := byte(c.Get(reg)) | byte(op.M)
		c.Set(reg, uint16(r))
		c.updateNZ8(r)
		c.SetFlagV(false)
		return Operand{}, nil
	}
}

func genEor8(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		r := byte(c.Get(reg)) ^ byte(op.M)
		c.Set(reg, uint16(r))
		c.updateNZ8(r)
		c.SetFlagV(false)
		return Operand{}, nil
	}
}

// genBit8 computes reg&m for flags only, neither operand is written.
func genBit8(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		r := byte(c.Get(reg)) & byte(op.M)
		c.updateNZ8(r)
		c.SetFlagV(false)
		return Operand{}, nil
	}
}

// ---- 16-bit arithmetic ---------------------------------------------------

func genAdd16(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		a := c.Get(reg)
		r := c.addFlags16(a, op.M)
		c.Set(reg, r)
		return Operand{}, nil
	}
}

func genSub16(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		a := c.Get(reg)
		r := c.subFlags16(a, op.M)
		c.Set(reg, r)
		return Operand{}, nil
	}
}

func genCmp16(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		a := c.Get(reg)
		c.subFlags16(a, op.M)
		return Operand{}, nil
	}
}

// ---- read-modify-write memory/accumulator family -----------------------

// negValue computes 0-m. The data sheet leaves H undefined after NEG;
// this core clears it so every run leaves CC in a reproducible state.
func (c *CPU) negValue(m byte) byte {
	r := byte(0) - m
	c.updateNZ8(r)
	c.SetFlagV(m == 0x80)
	c.SetFlagC(m != 0)
	c.SetFlagH(false)
	return r
}

func (c *CPU) comValue(m byte) byte {
	r := ^m
	c.updateNZ8(r)
	c.SetFlagV(false)
	c.SetFlagC(true)
	return r
}

func (c *CPU) clrValue() byte {
	c.SetFlagN(false)
	c.SetFlagZ(true)
	c.SetFlagV(false)
	c.SetFlagC(false)
	return 0
}

// incValue and decValue never touch C, unlike the add/sub family.
func (c *CPU) incValue(m byte) byte {
	r := m + 1
	c.updateNZ8(r)
	c.SetFlagV(m == 0x7F)
	return r
}

func (c *CPU) decValue(m byte) byte {
	r := m - 1
	c.updateNZ8(r)
	c.SetFlagV(m == 0x80)
	return r
}

func (c *CPU) tstValue(m byte) {
	c.updateNZ8(m)
	c.SetFlagV(false)
}

// genMemOp wraps a value function as a memory-operand handler: it reads
// op.M, computes the new value, and asks the dispatcher to write it back
// to op.EA (the descriptor's WritesTo declares the width).
func genMemOp(fn func(c *CPU, m byte) byte) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		r := fn(c, byte(op.M))
		return Operand{EA: op.EA, M: uint16(r)}, nil
	}
}

// genRegOp wraps the same value function as an accumulator-inherent
// handler: reads/writes reg directly, no memory access.
func genRegOp(reg RegID, fn func(c *CPU, m byte) byte) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		cur := byte(c.Get(reg))
		r := fn(c, cur)
		c.Set(reg, uint16(r))
		return Operand{}, nil
	}
}

func genMemTst() Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		c.tstValue(byte(op.M))
		return Operand{}, nil
	}
}

func genRegTst(reg RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		c.tstValue(byte(c.Get(reg)))
		return Operand{}, nil
	}
}

// ---- shifts and rotates --------------------------------------------------

func (c *CPU) lslValue(m byte) byte {
	carry := m&0x80 != 0
	r := m << 1
	return c.applyShift(shiftResult{
		value: r, negative: r&0x80 != 0, zero: r == 0,
		overflow: (m^(m<<1))&0x80 != 0, hasOverflow: true, carry: carry,
	})
}

func (c *CPU) lsrValue(m byte) byte {
	carry := m&0x01 != 0
	r := m >> 1
	return c.applyShift(shiftResult{
		value: r, negative: false, zero: r == 0, hasOverflow: false, carry: carry,
	})
}

func (c *CPU) asrValue(m byte) byte {
	carry := m&0x01 != 0
	r := (m >> 1) | (m & 0x80)
	return c.applyShift(shiftResult{
		value: r, negative: r&0x80 != 0, zero: r == 0, hasOverflow: false, carry: carry,
	})
}

func (c *CPU) rolValue(m byte) byte {
	var cin byte
	if c.FlagC() {
		cin = 1
	}
	carry := m&0x80 != 0
	r := (m << 1) | cin
	return c.applyShift(shiftResult{
		value: r, negative: r&0x80 != 0, zero: r == 0,
		overflow: (m^(m<<1))&0x80 != 0, hasOverflow: true, carry: carry,
	})
}

func (c *CPU) rorValue(m byte) byte {
	var cin byte
	if c.FlagC() {
		cin = 0x80
	}
	carry := m&0x01 != 0
	r := (m >> 1) | cin
	return c.applyShift(shiftResult{
		value: r, negative: r&0x80 != 0, zero: r == 0, hasOverflow: false, carry: carry,
	})
}

// ---- inherent miscellany -------------------------------------------------

// opDAA implements decimal adjust: it inspects A and the H/C flags left
// by the preceding add and corrects A to valid BCD. The data sheet
// leaves V undefined after DAA; this core clears it.
func opDAA(c *CPU, op Operand) (Operand, error) {
	a := c.A
	var correction byte
	carry := c.FlagC()

	lo := a & 0x0F
	hi := a >> 4

	if c.FlagH() || lo > 9 {
		correction |= 0x06
	}
	if carry || hi > 9 || (hi >= 9 && lo > 9) {
		correction |= 0x60
		carry = true
	}

	r := a + correction
	c.A = r
	c.updateNZ8(r)
	c.SetFlagV(false)
	c.SetFlagC(carry)
	return Operand{}, nil
}

// opSEX sign-extends B into A, forming D.
func opSEX(c *CPU, op Operand) (Operand, error) {
	if c.B&0x80 != 0 {
		c.A = 0xFF
	} else {
		c.A = 0
	}
	c.updateNZ16(c.D())
	return Operand{}, nil
}

// opMUL multiplies A*B into D as an unsigned 8x8->16 product; C takes bit
// 7 of the result (the rounding bit for the common MUL-then-take-high-byte
// idiom), Z reflects the 16-bit result. No other flag is touched.
func opMUL(c *CPU, op Operand) (Operand, error) {
	r := uint16(c.A) * uint16(c.B)
	c.SetD(r)
	c.SetFlagZ(r == 0)
	c.SetFlagC(r&0x80 != 0)
	return Operand{}, nil
}

// opABX adds B, unsigned and zero-extended, into X. No flags are touched.
func opABX(c *CPU, op Operand) (Operand, error) {
	c.X += uint16(c.B)
	return Operand{}, nil
}

// genLEA builds LEAX/LEAY/LEAS/LEAU: load the computed EA into reg.
// LEAX/LEAY additionally update Z (a documented quirk); LEAS/LEAU never
// touch flags at all.
func genLEA(reg RegID, touchesZ bool) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		c.Set(reg, op.EA)
		if touchesZ {
			c.SetFlagZ(op.EA == 0)
		}
		return Operand{}, nil
	}
}

// opANDCC ANDs the fetched immediate mask into CC directly -- no NZ/V/C
// side effects, since CC itself is the thing being written.
func opANDCC(c *CPU, op Operand) (Operand, error) {
	c.CC &= byte(op.M)
	return Operand{}, nil
}

func opORCC(c *CPU, op Operand) (Operand, error) {
	c.CC |= byte(op.M)
	return Operand{}, nil
}

func opNOP(c *CPU, op Operand) (Operand, error) {
	return Operand{}, nil
}

// opJMP sets PC to the descriptor's resolved EA.
func opJMP(c *CPU, op Operand) (Operand, error) {
	c.PC = op.EA
	return Operand{}, nil
}

func init() {
	// --- accumulator A, 8-bit family: immediate/direct/indexed/extended
	regVariants(&primaryTable, "SUBA", RegA, Byte, true, WriteNone, genSub8(RegA, false), []variant{
		{AddrImmediate, 0x80, 2}, {AddrDirect, 0x90, 4}, {AddrIndexed, 0xA0, 4}, {AddrExtended, 0xB0, 5},
	})
	regVariants(&primaryTable, "CMPA", RegA, Byte, true, WriteNone, genCmp8(RegA), []variant{
		{AddrImmediate, 0x81, 2}, {AddrDirect, 0x91, 4}, {AddrIndexed, 0xA1, 4}, {AddrExtended, 0xB1, 5},
	})
	regVariants(&primaryTable, "SBCA", RegA, Byte, true, WriteNone, genSub8(RegA, true), []variant{
		{AddrImmediate, 0x82, 2}, {AddrDirect, 0x92, 4}, {AddrIndexed, 0xA2, 4}, {AddrExtended, 0xB2, 5},
	})
	regVariants(&primaryTable, "ANDA", RegA, Byte, true, WriteNone, genAnd8(RegA), []variant{
		{AddrImmediate, 0x84, 2}, {AddrDirect, 0x94, 4}, {AddrIndexed, 0xA4, 4}, {AddrExtended, 0xB4, 5},
	})
	regVariants(&primaryTable, "BITA", RegA, Byte, true, WriteNone, genBit8(RegA), []variant{
		{AddrImmediate, 0x85, 2}, {AddrDirect, 0x95, 4}, {AddrIndexed, 0xA5, 4}, {AddrExtended, 0xB5, 5},
	})
	regVariants(&primaryTable, "LDA", RegA, Byte, true, WriteNone, genLoad(RegA), []variant{
		{AddrImmediate, 0x86, 2}, {AddrDirect, 0x96, 4}, {AddrIndexed, 0xA6, 4}, {AddrExtended, 0xB6, 5},
	})
	regVariants(&primaryTable, "STA", RegA, Byte, false, WriteByte, genStore(RegA), []variant{
		{AddrDirect, 0x97, 4}, {AddrIndexed, 0xA7, 4}, {AddrExtended, 0xB7, 5},
	})
	regVariants(&primaryTable, "EORA", RegA, Byte, true, WriteNone, genEor8(RegA), []variant{
		{AddrImmediate, 0x88, 2}, {AddrDirect, 0x98, 4}, {AddrIndexed, 0xA8, 4}, {AddrExtended, 0xB8, 5},
	})
	regVariants(&primaryTable, "ADCA", RegA, Byte, true, WriteNone, genAdd8(RegA, true), []variant{
		{AddrImmediate, 0x89, 2}, {AddrDirect, 0x99, 4}, {AddrIndexed, 0xA9, 4}, {AddrExtended, 0xB9, 5},
	})
	regVariants(&primaryTable, "ORA", RegA, Byte, true, WriteNone, genOr8(RegA), []variant{
		{AddrImmediate, 0x8A, 2}, {AddrDirect, 0x9A, 4}, {AddrIndexed, 0xAA, 4}, {AddrExtended, 0xBA, 5},
	})
	regVariants(&primaryTable, "ADDA", RegA, Byte, true, WriteNone, genAdd8(RegA, false), []variant{
		{AddrImmediate, 0x8B, 2}, {AddrDirect, 0x9B, 4}, {AddrIndexed, 0xAB, 4}, {AddrExtended, 0xBB, 5},
	})

	// --- accumulator B, 8-bit family
	regVariants(&primaryTable, "SUBB", RegB, Byte, true, WriteNone, genSub8(RegB, false), []variant{
		{AddrImmediate, 0xC0, 2}, {AddrDirect, 0xD0, 4}, {AddrIndexed, 0xE0, 4}, {AddrExtended, 0xF0, 5},
	})
	regVariants(&primaryTable, "CMPB", RegB, Byte, true, WriteNone, genCmp8(RegB), []variant{
		{AddrImmediate, 0xC1, 2}, {AddrDirect, 0xD1, 4}, {AddrIndexed, 0xE1, 4}, {AddrExtended, 0xF1, 5},
	})
	regVariants(&primaryTable, "SBCB", RegB, Byte, true, WriteNone, genSub8(RegB, true), []variant{
		{AddrImmediate, 0xC2, 2}, {AddrDirect, 0xD2, 4}, {AddrIndexed, 0xE2, 4}, {AddrExtended, 0xF2, 5},
	})
	regVariants(&primaryTable, "ANDB", RegB, Byte, true, WriteNone, genAnd8(RegB), []variant{
		{AddrImmediate, 0xC4, 2}, {AddrDirect, 0xD4, 4}, {AddrIndexed, 0xE4, 4}, {AddrExtended, 0xF4, 5},
	})
	regVariants(&primaryTable, "BITB", RegB, Byte, true, WriteNone, genBit8(RegB), []variant{
		{AddrImmediate, 0xC5, 2}, {AddrDirect, 0xD5, 4}, {AddrIndexed, 0xE5, 4}, {AddrExtended, 0xF5, 5},
	})
	regVariants(&primaryTable, "LDB", RegB, Byte, true, WriteNone, genLoad(RegB), []variant{
		{AddrImmediate, 0xC6, 2}, {AddrDirect, 0xD6, 4}, {AddrIndexed, 0xE6, 4}, {AddrExtended, 0xF6, 5},
	})
	regVariants(&primaryTable, "STB", RegB, Byte, false, WriteByte, genStore(RegB), []variant{
		{AddrDirect, 0xD7, 4}, {AddrIndexed, 0xE7, 4}, {AddrExtended, 0xF7, 5},
	})
	regVariants(&primaryTable, "EORB", RegB, Byte, true, WriteNone, genEor8(RegB), []variant{
		{AddrImmediate, 0xC8, 2}, {AddrDirect, 0xD8, 4}, {AddrIndexed, 0xE8, 4}, {AddrExtended, 0xF8, 5},
	})
	regVariants(&primaryTable, "ADCB", RegB, Byte, true, WriteNone, genAdd8(RegB, true), []variant{
		{AddrImmediate, 0xC9, 2}, {AddrDirect, 0xD9, 4}, {AddrIndexed, 0xE9, 4}, {AddrExtended, 0xF9, 5},
	})
	regVariants(&primaryTable, "ORB", RegB, Byte, true, WriteNone, genOr8(RegB), []variant{
		{AddrImmediate, 0xCA, 2}, {AddrDirect, 0xDA, 4}, {AddrIndexed, 0xEA, 4}, {AddrExtended, 0xFA, 5},
	})
	regVariants(&primaryTable, "ADDB", RegB, Byte, true, WriteNone, genAdd8(RegB, false), []variant{
		{AddrImmediate, 0xCB, 2}, {AddrDirect, 0xDB, 4}, {AddrIndexed, 0xEB, 4}, {AddrExtended, 0xFB, 5},
	})

	// --- 16-bit families: D, X, Y, U, S
	regVariants(&primaryTable, "SUBD", RegD, Word, true, WriteNone, genSub16(RegD), []variant{
		{AddrImmediate, 0x83, 4}, {AddrDirect, 0x93, 6}, {AddrIndexed, 0xA3, 6}, {AddrExtended, 0xB3, 7},
	})
	regVariants(&primaryTable, "CMPX", RegX, Word, true, WriteNone, genCmp16(RegX), []variant{
		{AddrImmediate, 0x8C, 4}, {AddrDirect, 0x9C, 6}, {AddrIndexed, 0xAC, 6}, {AddrExtended, 0xBC, 7},
	})
	regVariants(&primaryTable, "LDX", RegX, Word, true, WriteNone, genLoad(RegX), []variant{
		{AddrImmediate, 0x8E, 3}, {AddrDirect, 0x9E, 5}, {AddrIndexed, 0xAE, 5}, {AddrExtended, 0xBE, 6},
	})
	regVariants(&primaryTable, "STX", RegX, Word, false, WriteWord, genStore(RegX), []variant{
		{AddrDirect, 0x9F, 5}, {AddrIndexed, 0xAF, 5}, {AddrExtended, 0xBF, 6},
	})
	regVariants(&primaryTable, "ADDD", RegD, Word, true, WriteNone, genAdd16(RegD), []variant{
		{AddrImmediate, 0xC3, 4}, {AddrDirect, 0xD3, 6}, {AddrIndexed, 0xE3, 6}, {AddrExtended, 0xF3, 7},
	})
	regVariants(&primaryTable, "LDD", RegD, Word, true, WriteNone, genLoad(RegD), []variant{
		{AddrImmediate, 0xCC, 3}, {AddrDirect, 0xDC, 5}, {AddrIndexed, 0xEC, 5}, {AddrExtended, 0xFC, 6},
	})
	regVariants(&primaryTable, "STD", RegD, Word, false, WriteWord, genStore(RegD), []variant{
		{AddrDirect, 0xDD, 5}, {AddrIndexed, 0xED, 5}, {AddrExtended, 0xFD, 6},
	})
	regVariants(&primaryTable, "LDU", RegU, Word, true, WriteNone, genLoad(RegU), []variant{
		{AddrImmediate, 0xCE, 3}, {AddrDirect, 0xDE, 5}, {AddrIndexed, 0xEE, 5}, {AddrExtended, 0xFE, 6},
	})
	regVariants(&primaryTable, "STU", RegU, Word, false, WriteWord, genStore(RegU), []variant{
		{AddrDirect, 0xDF, 5}, {AddrIndexed, 0xEF, 5}, {AddrExtended, 0xFF, 6},
	})

	// page 1 (0x10 prefix): Y and S families, plus CMPD
	regVariants(&page1Table, "CMPD", RegD, Word, true, WriteNone, genCmp16(RegD), []variant{
		{AddrImmediate, 0x83, 5}, {AddrDirect, 0x93, 7}, {AddrIndexed, 0xA3, 7}, {AddrExtended, 0xB3, 8},
	})
	regVariants(&page1Table, "CMPY", RegY, Word, true, WriteNone, genCmp16(RegY), []variant{
		{AddrImmediate, 0x8C, 5}, {AddrDirect, 0x9C, 7}, {AddrIndexed, 0xAC, 7}, {AddrExtended, 0xBC, 8},
	})
	regVariants(&page1Table, "LDY", RegY, Word, true, WriteNone, genLoad(RegY), []variant{
		{AddrImmediate, 0x8E, 4}, {AddrDirect, 0x9E, 6}, {AddrIndexed, 0xAE, 6}, {AddrExtended, 0xBE, 7},
	})
	regVariants(&page1Table, "STY", RegY, Word, false, WriteWord, genStore(RegY), []variant{
		{AddrDirect, 0x9F, 6}, {AddrIndexed, 0xAF, 6}, {AddrExtended, 0xBF, 7},
	})
	regVariants(&page1Table, "LDS", RegS, Word, true, WriteNone, genLoad(RegS), []variant{
		{AddrImmediate, 0xCE, 4}, {AddrDirect, 0xDE, 6}, {AddrIndexed, 0xEE, 6}, {AddrExtended, 0xFE, 7},
	})
	regVariants(&page1Table, "STS", RegS, Word, false, WriteWord, genStore(RegS), []variant{
		{AddrDirect, 0xDF, 6}, {AddrIndexed, 0xEF, 6}, {AddrExtended, 0xFF, 7},
	})

	// page 2 (0x11 prefix): CMPU, CMPS
	regVariants(&page2Table, "CMPU", RegU, Word, true, WriteNone, genCmp16(RegU), []variant{
		{AddrImmediate, 0x83, 5}, {AddrDirect, 0x93, 7}, {AddrIndexed, 0xA3, 7}, {AddrExtended, 0xB3, 8},
	})
	regVariants(&page2Table, "CMPS", RegS, Word, true, WriteNone, genCmp16(RegS), []variant{
		{AddrImmediate, 0x8C, 5}, {AddrDirect, 0x9C, 7}, {AddrIndexed, 0xAC, 7}, {AddrExtended, 0xBC, 8},
	})

	// --- read-modify-write: direct/indexed/extended (memory) plus the
	// A/B accumulator-inherent forms, sharing one value function per op.
	type rmwOp struct {
		mnemonic                  string
		fn                        func(c *CPU, m byte) byte
		direct, indexed, extended byte
		regA, regB                byte
	}
	rmw := []rmwOp{
		{"NEG", (*CPU).negValue, 0x00, 0x60, 0x70, 0x40, 0x50},
		{"COM", (*CPU).comValue, 0x03, 0x63, 0x73, 0x43, 0x53},
		{"LSR", (*CPU).lsrValue, 0x04, 0x64, 0x74, 0x44, 0x54},
		{"ROR", (*CPU).rorValue, 0x06, 0x66, 0x76, 0x46, 0x56},
		{"ASR", (*CPU).asrValue, 0x07, 0x67, 0x77, 0x47, 0x57},
		{"ASL", (*CPU).lslValue, 0x08, 0x68, 0x78, 0x48, 0x58},
		{"ROL", (*CPU).rolValue, 0x09, 0x69, 0x79, 0x49, 0x59},
		{"DEC", (*CPU).decValue, 0x0A, 0x6A, 0x7A, 0x4A, 0x5A},
		{"INC", (*CPU).incValue, 0x0C, 0x6C, 0x7C, 0x4C, 0x5C},
	}
	for _, o := range rmw {
		regVariants(&primaryTable, o.mnemonic, RegUndefined, Byte, true, WriteByte, genMemOp(o.fn), []variant{
			{AddrDirect, o.direct, 6}, {AddrIndexed, o.indexed, 6}, {AddrExtended, o.extended, 7},
		})
		def(&primaryTable, o.regA, Descriptor{Mnemonic: o.mnemonic + "A", Mode: AddrInherent, Width: Byte, Register: RegA, Cycles: 2, Handler: genRegOp(RegA, o.fn)})
		def(&primaryTable, o.regB, Descriptor{Mnemonic: o.mnemonic + "B", Mode: AddrInherent, Width: Byte, Register: RegB, Cycles: 2, Handler: genRegOp(RegB, o.fn)})
	}

	// CLR and TST: CLR never reads M, TST never writes it.
	regVariants(&primaryTable, "CLR", RegUndefined, Byte, false, WriteByte, func(c *CPU, op Operand) (Operand, error) {
		return Operand{EA: op.EA, M: uint16(c.clrValue())}, nil
	}, []variant{
		{AddrDirect, 0x0F, 6}, {AddrIndexed, 0x6F, 6}, {AddrExtended, 0x7F, 7},
	})
	def(&primaryTable, 0x4F, Descriptor{Mnemonic: "CLRA", Mode: AddrInherent, Width: Byte, Register: RegA, Cycles: 2,
		Handler: func(c *CPU, op Operand) (Operand, error) { c.A = c.clrValue(); return Operand{}, nil }})
	def(&primaryTable, 0x5F, Descriptor{Mnemonic: "CLRB", Mode: AddrInherent, Width: Byte, Register: RegB, Cycles: 2,
		Handler: func(c *CPU, op Operand) (Operand, error) { c.B = c.clrValue(); return Operand{}, nil }})

	regVariants(&primaryTable, "TST", RegUndefined, Byte, true, WriteNone, genMemTst(), []variant{
		{AddrDirect, 0x0D, 6}, {AddrIndexed, 0x6D, 6}, {AddrExtended, 0x7D, 7},
	})
	def(&primaryTable, 0x4D, Descriptor{Mnemonic: "TSTA", Mode: AddrInherent, Width: Byte, Register: RegA, Cycles: 2, Handler: genRegTst(RegA)})
	def(&primaryTable, 0x5D, Descriptor{Mnemonic: "TSTB", Mode: AddrInherent, Width: Byte, Register: RegB, Cycles: 2, Handler: genRegTst(RegB)})

	// JMP: direct/indexed/extended, PC <- EA, no flags.
	for _, v := range []variant{{AddrDirect, 0x0E, 3}, {AddrIndexed, 0x6E, 3}, {AddrExtended, 0x7E, 4}} {
		def(&primaryTable, v.Code, Descriptor{Mnemonic: "JMP", Mode: v.Mode, Width: Word, Cycles: v.Cycles, Handler: opJMP})
	}

	// --- inherent miscellany
	def(&primaryTable, 0x12, Descriptor{Mnemonic: "NOP", Mode: AddrInherent, Cycles: 2, Handler: opNOP})
	def(&primaryTable, 0x19, Descriptor{Mnemonic: "DAA", Mode: AddrInherent, Cycles: 2, Handler: opDAA})
	def(&primaryTable, 0x1D, Descriptor{Mnemonic: "SEX", Mode: AddrInherent, Cycles: 2, Handler: opSEX})
	def(&primaryTable, 0x3A, Descriptor{Mnemonic: "ABX", Mode: AddrInherent, Cycles: 3, Handler: opABX})
	def(&primaryTable, 0x3D, Descriptor{Mnemonic: "MUL", Mode: AddrInherent, Cycles: 11, Handler: opMUL})

	def(&primaryTable, 0x1A, Descriptor{Mnemonic: "ORCC", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 3, Handler: opORCC})
	def(&primaryTable, 0x1C, Descriptor{Mnemonic: "ANDCC", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 3, Handler: opANDCC})

	def(&primaryTable, 0x30, Descriptor{Mnemonic: "LEAX", Mode: AddrIndexed, Cycles: 4, Register: RegX, Handler: genLEA(RegX, true)})
	def(&primaryTable, 0x31, Descriptor{Mnemonic: "LEAY", Mode: AddrIndexed, Cycles: 4, Register: RegY, Handler: genLEA(RegY, true)})
	def(&primaryTable, 0x32, Descriptor{Mnemonic: "LEAS", Mode: AddrIndexed, Cycles: 4, Register: RegS, Handler: genLEA(RegS, false)})
	def(&primaryTable, 0x33, Descriptor{Mnemonic: "LEAU", Mode: AddrIndexed, Cycles: 4, Register: RegU, Handler: genLEA(RegU, false)})
}
