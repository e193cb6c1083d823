package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The dispatch tables are populated by init() calls spread across the
// instruction-family files; these tests pin down the cross-file
// consistency a reviewer would otherwise have to check by hand.

func TestEveryDescriptorIsWellFormed(t *testing.T) {
	for name, table := range map[string]*[256]*Descriptor{
		"primary": &primaryTable, "page1": &page1Table, "page2": &page2Table,
	} {
		for code, d := range table {
			if d == nil {
				continue
			}
			assert.NotEmpty(t, d.Mnemonic, "%s[%#02x]", name, code)
			assert.NotNil(t, d.Handler, "%s[%#02x] %s", name, code, d.Mnemonic)
			assert.Greater(t, d.Cycles, 0, "%s[%#02x] %s", name, code, d.Mnemonic)
			if d.WritesTo != WriteNone {
				// A memory write needs an EA-producing mode to write to.
				assert.NotEqual(t, AddrInherent, d.Mode, "%s[%#02x] %s", name, code, d.Mnemonic)
				assert.NotEqual(t, AddrImmediate, d.Mode, "%s[%#02x] %s", name, code, d.Mnemonic)
			}
		}
	}
}

func TestPrefixBytesHaveNoPrimaryDescriptor(t *testing.T) {
	// 0x10 and 0x11 are page prefixes, resolved by Step before table
	// lookup; a descriptor at either slot would be unreachable.
	assert.Nil(t, primaryTable[0x10])
	assert.Nil(t, primaryTable[0x11])
}

func TestAllShortBranchesPopulated(t *testing.T) {
	for code := 0x20; code <= 0x2F; code++ {
		assert.NotNil(t, primaryTable[code], "opcode %#02x", code)
		assert.Equal(t, AddrRelative8, primaryTable[code].Mode)
	}
	// Every short branch except BRA has its long form behind the 0x10
	// prefix at the same low byte; LBRA is the unprefixed 0x16.
	for code := 0x21; code <= 0x2F; code++ {
		assert.NotNil(t, page1Table[code], "long branch %#04x", 0x1000|code)
		assert.Equal(t, AddrRelative16, page1Table[code].Mode)
	}
	assert.Nil(t, page1Table[0x20])
	assert.Equal(t, "LBRA", primaryTable[0x16].Mnemonic)
}

func TestInterruptOpcodesAreDescribedNotIllegal(t *testing.T) {
	for _, tc := range []struct {
		table    *[256]*Descriptor
		code     byte
		mnemonic string
	}{
		{&primaryTable, 0x13, "SYNC"},
		{&primaryTable, 0x3B, "RTI"},
		{&primaryTable, 0x3C, "CWAI"},
		{&primaryTable, 0x3E, "RESET"},
		{&primaryTable, 0x3F, "SWI"},
		{&page1Table, 0x3F, "SWI2"},
		{&page2Table, 0x3F, "SWI3"},
	} {
		d := tc.table[tc.code]
		assert.NotNil(t, d, tc.mnemonic)
		assert.Equal(t, tc.mnemonic, d.Mnemonic)
	}
}

func TestRegisterFamiliesShareCodesAcrossPages(t *testing.T) {
	// The page-1 Y/S families reuse the primary X/U family's opcode
	// bytes; a typo in one family file would break this symmetry.
	assert.Equal(t, "LDX", primaryTable[0x8E].Mnemonic)
	assert.Equal(t, "LDY", page1Table[0x8E].Mnemonic)
	assert.Equal(t, "LDU", primaryTable[0xCE].Mnemonic)
	assert.Equal(t, "LDS", page1Table[0xCE].Mnemonic)
	assert.Equal(t, "CMPX", primaryTable[0x8C].Mnemonic)
	assert.Equal(t, "CMPY", page1Table[0x8C].Mnemonic)
	assert.Equal(t, "CMPU", page2Table[0x83].Mnemonic)
	assert.Equal(t, "CMPS", page2Table[0x8C].Mnemonic)
}
