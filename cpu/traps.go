package cpu

// The interrupt-related opcodes have real descriptors (so dispatch
// doesn't report them as illegal) but fault with UnimplementedError at
// execution -- interrupt injection is out of scope for this core, which
// models only the synchronous fetch-decode-execute path.

func genUnimplemented(mnemonic string, opcode uint16) Handler {
	return func(c *CPU, op Operand) (Operand, error) {
		return Operand{}, &UnimplementedError{PC: c.PC, Opcode: opcode, Mnemonic: mnemonic}
	}
}

func init() {
	def(&primaryTable, 0x13, Descriptor{Mnemonic: "SYNC", Mode: AddrInherent, Cycles: 2, Handler: genUnimplemented("SYNC", 0x13)})
	def(&primaryTable, 0x3C, Descriptor{Mnemonic: "CWAI", Mode: AddrImmediate, Width: Byte, ReadsM: true, Cycles: 20, Handler: genUnimplemented("CWAI", 0x3C)})
	def(&primaryTable, 0x3B, Descriptor{Mnemonic: "RTI", Mode: AddrInherent, Cycles: 6, Handler: genUnimplemented("RTI", 0x3B)})
	def(&primaryTable, 0x3E, Descriptor{Mnemonic: "RESET", Mode: AddrInherent, Cycles: 19, Handler: genUnimplemented("RESET", 0x3E)})
	def(&primaryTable, 0x3F, Descriptor{Mnemonic: "SWI", Mode: AddrInherent, Cycles: 19, Handler: genUnimplemented("SWI", 0x3F)})
	def(&page1Table, 0x3F, Descriptor{Mnemonic: "SWI2", Mode: AddrInherent, Cycles: 20, Handler: genUnimplemented("SWI2", 0x103F)})
	def(&page2Table, 0x3F, Descriptor{Mnemonic: "SWI3", Mode: AddrInherent, Cycles: 20, Handler: genUnimplemented("SWI3", 0x113F)})
}
