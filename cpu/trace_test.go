package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectingTracer struct {
	records []TraceRecord
}

func (t *collectingTracer) Trace(rec TraceRecord) {
	t.records = append(t.records, rec)
}

func TestTracerReceivesOneRecordPerInstruction(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x86, 0x55, 0x4A), 0x4000) // LDA #$55; DECA
	tr := &collectingTracer{}
	c.Tracer = tr

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())

	require.Len(t, tr.records, 2)
	assert.Equal(t, uint16(0x4000), tr.records[0].Addr)
	assert.Equal(t, "LDA #$55", tr.records[0].Text)
	assert.Equal(t, uint16(0x4002), tr.records[1].Addr)
	assert.Equal(t, "DECA", tr.records[1].Text)
	assert.Contains(t, tr.records[1].State, "a=54")
	assert.Equal(t, c.Cycles, tr.records[1].Cycles)
}

func TestTracerReportsPrefixAddressForPagedOpcodes(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x10, 0x8E, 0x12, 0x34), 0x2000) // LDY #$1234
	tr := &collectingTracer{}
	c.Tracer = tr

	require.NoError(t, c.Step())
	require.Len(t, tr.records, 1)
	assert.Equal(t, uint16(0x2000), tr.records[0].Addr)
	assert.Equal(t, uint16(0x108E), tr.records[0].Opcode)
	assert.Equal(t, "LDY #$1234", tr.records[0].Text)
}

func TestTracerNotCalledOnFault(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x01), 0) // illegal
	tr := &collectingTracer{}
	c.Tracer = tr
	require.Error(t, c.Step())
	assert.Empty(t, tr.records)
}

func TestWriterTracerLineFormat(t *testing.T) {
	c := newTestCPU(t, hexProgram(0x86, 0x55), 0x4000)
	var sb strings.Builder
	c.Tracer = WriterTracer{W: &sb}

	require.NoError(t, c.Step())
	line := sb.String()
	assert.True(t, strings.HasPrefix(line, "4000| LDA #$55"), line)
	assert.Contains(t, line, "a=55")
	assert.Contains(t, line, "cycles=2")
	assert.True(t, strings.HasSuffix(line, "\n"))
}
