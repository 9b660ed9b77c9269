package machine

import (
	"fmt"
	"strings"
)

// Op is an instruction opcode.
type Op int

const (
	OP_INBOX    = Op(0)  // INBOX
	OP_OUTBOX   = Op(1)  // OUTBOX
	OP_COPYFROM = Op(2)  // COPYFROM
	OP_COPYTO   = Op(3)  // COPYTO
	OP_ADD      = Op(4)  // ADD
	OP_SUB      = Op(5)  // SUB
	OP_BUMPUP   = Op(6)  // BUMPUP
	OP_BUMPDN   = Op(7)  // BUMPDN
	OP_JUMP     = Op(8)  // JUMP
	OP_JUMPZ    = Op(9)  // JUMPZ
	OP_JUMPN    = Op(10) // JUMPN
)

// opMap maps lowered mnemonics to opcodes.
var opMap = map[string]Op{
	"inbox":    OP_INBOX,
	"outbox":   OP_OUTBOX,
	"copyfrom": OP_COPYFROM,
	"copyto":   OP_COPYTO,
	"add":      OP_ADD,
	"sub":      OP_SUB,
	"bumpup":   OP_BUMPUP,
	"bumpdn":   OP_BUMPDN,
	"jump":     OP_JUMP,
	"jumpz":    OP_JUMPZ,
	"jumpn":    OP_JUMPN,
}

// opName maps opcodes to their mnemonics.
var opName = map[Op]string{}

func init() {
	for name, op := range opMap {
		opName[op] = name
	}
}

// String returns the opcode's mnemonic.
func (op Op) String() (out string) {
	name, ok := opName[op]
	if !ok {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	out = strings.ToUpper(name)

	return
}

// NeedsTile returns true if the opcode takes a floor tile operand.
func (op Op) NeedsTile() bool {
	return op >= OP_COPYFROM && op <= OP_BUMPDN
}

// NeedsLabel returns true if the opcode takes a jump label operand.
func (op Op) NeedsLabel() bool {
	return op >= OP_JUMP && op <= OP_JUMPN
}

// AddrMode is the addressing mode of an instruction operand.
type AddrMode int

const (
	ADDR_NONE     = AddrMode(0) // no operand
	ADDR_DIRECT   = AddrMode(1) // floor tile index
	ADDR_INDIRECT = AddrMode(2) // pointer: tile holding the tile index
	ADDR_LABEL    = AddrMode(3) // jump label
)

// Instruction is a single decoded instruction with its source location.
type Instruction struct {
	LineNo int      // Line number of the source line.
	Words  []string // Source words of the line.
	Op     Op       // Decoded opcode.
	Mode   AddrMode // Addressing mode of the operand.
	Tile   int      // Floor tile index, for tile operands.
	Label  string   // Jump label name, for label operands.
	Target int      // Resolved jump address, linked after parsing.
}

// String returns the instruction in program text form.
func (in Instruction) String() (out string) {
	out = in.Op.String()

	switch in.Mode {
	case ADDR_DIRECT:
		out = fmt.Sprintf("%v %v", out, in.Tile)
	case ADDR_INDIRECT:
		out = fmt.Sprintf("%v [%v]", out, in.Tile)
	case ADDR_LABEL:
		out = fmt.Sprintf("%v %v", out, in.Label)
	}

	return
}
