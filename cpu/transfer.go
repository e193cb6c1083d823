package cpu

// TFR and EXG share the post-byte register-pair encoding: high nibble
// names the source (TFR) or first register (EXG), low nibble the
// destination/second register, via tfrRegTable. A reserved nibble
// resolves to RegUndefined, whose Get/Set are the documented
// read-0/write-nop sentinel rather than a fatal error --
// ReservedRegisterError exists for a caller that wants strict-mode
// diagnostics instead.

// widen forces the high byte of an 8-bit source value to 0xFF when the
// destination is wider than the source. This is not sign extension; the
// high byte is set regardless of the source's bit 7, matching the
// silicon's 0xFF00|src8 behavior.
func widen(v uint16, srcWidth int) uint16 {
	if srcWidth == 8 {
		return v | 0xFF00
	}
	return v
}

func opTFR(c *CPU, op Operand) (Operand, error) {
	pb := byte(op.M)
	src := tfrRegTable[pb>>4]
	dst := tfrRegTable[pb&0x0F]
	v := c.Get(src)
	if dst.Width() > src.Width() {
		v = widen(v, src.Width())
	}
	c.Set(dst, v)
	return Operand{}, nil
}

func opEXG(c *CPU, op Operand) (Operand, error) {
	pb := byte(op.M)
	r1 := tfrRegTable[pb>>4]
	r2 := tfrRegTable[pb&0x0F]
	v1 := c.Get(r1)
	v2 := c.Get(r2)
	if r2.Width() > r1.Width() {
		v1 = widen(v1, r1.Width())
	}
	if r1.Width() > r2.Width() {
		v2 = widen(v2, r2.Width())
	}
	c.Set(r1, v2)
	c.Set(r2, v1)
	return Operand{}, nil
}

func init() {
	def(&primaryTable, 0x1E, Descriptor{Mnemonic: "EXG", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 8, Handler: opEXG})
	def(&primaryTable, 0x1F, Descriptor{Mnemonic: "TFR", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 6, Handler: opTFR})
}
