package machine

import (
	"errors"
	"strings"

	"github.com/craigds/hrmclone/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))

	// Run errors
	ErrHandsEmpty   = errors.New(f("empty hands"))
	ErrTileEmpty    = errors.New(f("empty floor tile"))
	ErrTypeMismatch = errors.New(f("letter where a number is needed"))
	ErrLetterMath   = errors.New(f("arithmetic on a letter"))

	// Both: a tile operand at parse time, or a pointer tile at run time.
	ErrTileRange = errors.New(f("floor tile out of range"))
)

// ErrOpcodeUnknown is an unrecognized mnemonic.
type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("no such instruction '%v'", string(err))
}

func (err ErrOpcodeUnknown) Is(other error) (ok bool) {
	_, ok = other.(ErrOpcodeUnknown)
	return
}

// ErrLabelMissing is a jump target that was never defined.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelMissing) Is(other error) (ok bool) {
	_, ok = other.(ErrLabelMissing)
	return
}

// ErrOperandMalformed is an operand that is neither a floor tile,
// a pointer, nor a label.
type ErrOperandMalformed string

func (err ErrOperandMalformed) Error() string {
	return f("'%v' is not a valid operand", string(err))
}

func (err ErrOperandMalformed) Is(other error) (ok bool) {
	_, ok = other.(ErrOperandMalformed)
	return
}

// ErrSyntax indicates the location of a parse error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a run error.
type ErrRuntime struct {
	Pc          int
	Instruction Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d line %d '%v' %v", err.Pc, err.Instruction.LineNo,
		strings.Join(err.Instruction.Words, " "), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
