package cpu

// PSHS/PULS/PSHU/PULU: the post-byte register mask is fetched as if it
// were an ordinary immediate byte operand (the addressing engine's
// AddrImmediate path already does the right fetch/advance), so these
// handlers read it from op.M rather than decoding it themselves.
//
// Bit layout, high to low: PC, U-or-S, Y, X, DP, B, A, CC. Push walks the
// mask from PC down to CC (so CC ends up on top of the stack); pull walks
// it back from CC up to PC.

func genPush(useU bool, other RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		sp := &c.S
		if useU {
			sp = &c.U
		}
		m := byte(op.M)
		if m&0x80 != 0 {
			c.pushWord(sp, c.PC)
		}
		if m&0x40 != 0 {
			c.pushWord(sp, c.Get(other))
		}
		if m&0x20 != 0 {
			c.pushWord(sp, c.Y)
		}
		if m&0x10 != 0 {
			c.pushWord(sp, c.X)
		}
		if m&0x08 != 0 {
			c.pushByte(sp, c.DP)
		}
		if m&0x04 != 0 {
			c.pushByte(sp, c.B)
		}
		if m&0x02 != 0 {
			c.pushByte(sp, c.A)
		}
		if m&0x01 != 0 {
			c.pushByte(sp, c.CC)
		}
		return Operand{}, nil
	}
}

func genPull(useU bool, other RegID) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		sp := &c.S
		if useU {
			sp = &c.U
		}
		m := byte(op.M)
		if m&0x01 != 0 {
			c.CC = c.pullByte(sp)
		}
		if m&0x02 != 0 {
			c.A = c.pullByte(sp)
		}
		if m&0x04 != 0 {
			c.B = c.pullByte(sp)
		}
		if m&0x08 != 0 {
			c.DP = c.pullByte(sp)
		}
		if m&0x10 != 0 {
			c.X = c.pullWord(sp)
		}
		if m&0x20 != 0 {
			c.Y = c.pullWord(sp)
		}
		if m&0x40 != 0 {
			c.Set(other, c.pullWord(sp))
		}
		if m&0x80 != 0 {
			c.PC = c.pullWord(sp)
		}
		return Operand{}, nil
	}
}

func init() {
	def(&primaryTable, 0x34, Descriptor{Mnemonic: "PSHS", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 5, Handler: genPush(false, RegU)})
	def(&primaryTable, 0x35, Descriptor{Mnemonic: "PULS", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 5, Handler: genPull(false, RegU)})
	def(&primaryTable, 0x36, Descriptor{Mnemonic: "PSHU", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 5, Handler: genPush(true, RegS)})
	def(&primaryTable, 0x37, Descriptor{Mnemonic: "PULU", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 5, Handler: genPull(true, RegS)})
}
