package cpu

// WriteTarget tells the dispatcher whether a handler's return value must
// be written back to memory, and at what width.
type WriteTarget int

const (
	WriteNone WriteTarget = iota
	WriteByte
	WriteWord
)

// Handler is the unified signature every instruction implementation
// uses: one operand struct in, one optional (EA, value) pair out for the
// descriptor-declared memory write.
type Handler func(c *CPU, op Operand) (Operand, error)

// A Descriptor is the static metadata the dispatcher needs for one
// opcode: its mnemonic, how its operand is fetched, and how its result
// (if any) is written back. The three flat arrays (primary, page-1,
// page-2) give O(1) lookup across the whole prefixed opcode space.
type Descriptor struct {
	Mnemonic string
	Mode     AddrMode
	Width    Width
	ReadsM   bool
	WritesTo WriteTarget
	Register RegID
	Cycles   int
	Handler  Handler
}

// The three opcode spaces: primary (single byte), and the two page
// prefixes (0x10, 0x11) that extend it. A nil entry means the opcode is
// illegal -- dispatch reports IllegalOpcodeError rather than guessing.
var (
	primaryTable [256]*Descriptor
	page1Table   [256]*Descriptor
	page2Table   [256]*Descriptor
)

// def registers one descriptor at code in table. Building the tables as a
// sequence of def calls (rather than one giant composite literal) lets
// each instruction family's file own its own slice of the opcode space.
func def(table *[256]*Descriptor, code byte, d Descriptor) {
	dd := d
	table[code] = &dd
}

// variant names one addressing-mode encoding of an instruction family:
// which opcode byte selects it, and how many base cycles it costs.
type variant struct {
	Mode   AddrMode
	Code   byte
	Cycles int
}

// regVariants registers the same mnemonic/handler under several opcodes,
// one per addressing mode it supports -- most 6809 instructions repeat
// across immediate/direct/indexed/extended with only the opcode and cycle
// count changing, so the family files call this once per instruction
// instead of repeating def four times each.
func regVariants(table *[256]*Descriptor, mnemonic string, reg RegID, width Width, readsM bool, writesTo WriteTarget, handler Handler, variants []variant) {
	for _, v := range variants {
		def(table, v.Code, Descriptor{
			Mnemonic: mnemonic,
			Mode:     v.Mode,
			Width:    width,
			ReadsM:   readsM,
			WritesTo: writesTo,
			Register: reg,
			Cycles:   v.Cycles,
			Handler:  handler,
		})
	}
}
