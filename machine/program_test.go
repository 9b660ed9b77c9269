package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramSteps(t *testing.T) {
	assert := assert.New(t)

	prog := mustCompile(t, "a:\nINBOX\nOUTBOX\nJUMP a")

	pcs := []int{}
	ops := []Op{}
	for pc, in := range prog.Steps() {
		pcs = append(pcs, pc)
		ops = append(ops, in.Op)
	}

	assert.Equal([]int{0, 1, 2}, pcs)
	assert.Equal([]Op{OP_INBOX, OP_OUTBOX, OP_JUMP}, ops)
}

func TestProgramStepsEarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := mustCompile(t, "INBOX\nOUTBOX")

	count := 0
	for range prog.Steps() {
		count++
		break
	}

	assert.Equal(1, count)
}

func TestProgramDisassemble(t *testing.T) {
	assert := assert.New(t)

	prog := mustCompile(t, "a:\nINBOX\nCOPYTO [14]\nJUMPZ a")

	out := &strings.Builder{}
	err := prog.Disassemble(out)
	assert.NoError(err)

	expected := strings.Join([]string{
		"a:",
		"    INBOX",
		"    COPYTO [14]",
		"    JUMPZ a",
		"",
	}, "\n")
	assert.Equal(expected, out.String())
}

func TestProgramDisassembleTrailingLabel(t *testing.T) {
	assert := assert.New(t)

	prog := mustCompile(t, "JUMP b\nb:")

	out := &strings.Builder{}
	err := prog.Disassemble(out)
	assert.NoError(err)

	assert.Equal("    JUMP b\nb:\n", out.String())
}

func TestProgramDisassembleRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog := mustCompile(t, `
		a:
		b:
		    INBOX
		    JUMPZ    b
		    OUTBOX
		    JUMP     a
	`)

	out := &strings.Builder{}
	assert.NoError(prog.Disassemble(out))

	again, err := Compile(out.String())
	assert.NoError(err)
	assert.Equal(prog.Labels, again.Labels)
	if assert.Equal(len(prog.Instructions), len(again.Instructions)) {
		for n := range prog.Instructions {
			assert.Equal(prog.Instructions[n].Op, again.Instructions[n].Op)
			assert.Equal(prog.Instructions[n].Mode, again.Instructions[n].Mode)
			assert.Equal(prog.Instructions[n].Target, again.Instructions[n].Target)
		}
	}
}
