package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchConditionsTakenAndNotTaken(t *testing.T) {
	cases := []struct {
		name   string
		opcode byte
		set    func(c *CPU)
		taken  bool
	}{
		{"BEQ taken", 0x27, func(c *CPU) { c.SetFlagZ(true) }, true},
		{"BEQ not taken", 0x27, func(c *CPU) { c.SetFlagZ(false) }, false},
		{"BCC taken", 0x24, func(c *CPU) { c.SetFlagC(false) }, true},
		{"BCS taken", 0x25, func(c *CPU) { c.SetFlagC(true) }, true},
		{"BGT taken (N==V, Z clear)", 0x2E, func(c *CPU) {}, true},
		{"BLE taken on Z", 0x2F, func(c *CPU) { c.SetFlagZ(true) }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCPU(t, hexProgram(tc.opcode, 0x02), 0x10)
			tc.set(c)
			require.NoError(t, c.Step())
			if tc.taken {
				assert.Equal(t, uint16(0x10+2+2), c.PC)
			} else {
				assert.Equal(t, uint16(0x12), c.PC)
			}
		})
	}
}

func TestBsrPushesReturnAddressAndRts(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x8D, 0x02, 0x12, 0x12, 0x39), 0)
	c.S = 0x8000
	require.NoError(t, c.Step()) // BSR +2 -> PC jumps to 4 (RTS), pushes return addr 2
	assert.Equal(t, uint16(4), c.PC)
	assert.Equal(t, uint16(0x7FFE), c.S)
	require.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(2), c.PC)
}

func TestJmpExtended(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x7E, 0x40, 0x00), 0)
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x4000), c.PC)
}

func TestJsrAndRtsRoundTrip(t *testing.T) {
	c := newTestCPU(t, hexProgram(0xBD, 0x00, 0x05, 0x12, 0x12, 0x39), 0)
	c.S = 0x8000
	require.NoError(t, c.Step()) // JSR $0005
	assert.Equal(t, uint16(5), c.PC)
	require.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(3), c.PC)
}
