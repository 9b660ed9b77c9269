package machine

import (
	"log"
	"slices"
)

// Run is a single execution of a Program against an inbox. It owns all
// mutable machine state; once the run halts or fails, Outbox and Runtime
// are the observable result.
type Run struct {
	Verbose bool // If set, verbosely logs each executed instruction.

	Pc      int     // Current instruction address.
	Hands   Value   // The single value the worker is holding.
	Outbox  []Value // Delivered values, in emission order.
	Runtime int     // Count of instructions executed.
	Floor   Floor   // Floor tile memory.

	program *Program
	inbox   []Value
	cursor  int
	halted  bool
}

// NewRun binds the program to an inbox, ready to step. Floor tiles may be
// preset before the first Step.
func (prog *Program) NewRun(inbox []Value) (run *Run) {
	run = &Run{
		program: prog,
		inbox:   slices.Clone(inbox),
		Floor:   Floor{},
	}

	return
}

// Run executes the whole program against an inbox.
//
// The run is returned even on failure, so the partial outbox and runtime
// remain observable for diagnostics.
func (prog *Program) Run(inbox []Value) (run *Run, err error) {
	run = prog.NewRun(inbox)
	err = run.Execute()

	return
}

// Execute steps the run until it halts or fails. The engine imposes no
// step limit; callers wanting one drive Step directly under their own cap.
func (run *Run) Execute() (err error) {
	for done := false; !done; {
		done, err = run.Step()
		if err != nil {
			return
		}
	}

	return
}

// Halted returns true once the run has terminated, normally or not.
func (run *Run) Halted() bool {
	return run.halted
}

// Remaining returns the values still waiting in the inbox.
func (run *Run) Remaining() []Value {
	return slices.Clone(run.inbox[run.cursor:])
}

// Step executes a single instruction. done reports normal termination:
// an INBOX finding the inbox exhausted, or the program counter passing
// the end of the program. Any failure aborts the run.
func (run *Run) Step() (done bool, err error) {
	if run.halted {
		done = true
		return
	}
	if run.Pc >= len(run.program.Instructions) {
		run.halted = true
		done = true
		return
	}

	in := run.program.Instructions[run.Pc]

	if run.Verbose {
		log.Printf("%3d: %v", run.Pc, in)
	}

	defer func() {
		if err != nil {
			run.halted = true
			err = &ErrRuntime{Pc: run.Pc, Instruction: in, Err: err}
		}
	}()

	next := run.Pc + 1

	switch in.Op {
	case OP_INBOX:
		if run.cursor >= len(run.inbox) {
			// Normal termination; not counted in the runtime.
			run.halted = true
			done = true
			return
		}
		run.Hands = run.inbox[run.cursor]
		run.cursor += 1
	case OP_OUTBOX:
		if !run.Hands.IsSome() {
			err = ErrHandsEmpty
			return
		}
		run.Outbox = append(run.Outbox, run.Hands)
		run.Hands = Value{}
	case OP_COPYTO:
		if !run.Hands.IsSome() {
			err = ErrHandsEmpty
			return
		}
		var tile int
		tile, err = run.tileOf(in)
		if err != nil {
			return
		}
		err = run.Floor.Set(tile, run.Hands)
		if err != nil {
			return
		}
	case OP_COPYFROM:
		var value Value
		value, err = run.tileValue(in)
		if err != nil {
			return
		}
		run.Hands = value
	case OP_ADD, OP_SUB:
		if !run.Hands.IsSome() {
			err = ErrHandsEmpty
			return
		}
		var value Value
		value, err = run.tileValue(in)
		if err != nil {
			return
		}
		if !run.Hands.IsNumber() || !value.IsNumber() {
			err = ErrLetterMath
			return
		}
		n := value.Number
		if in.Op == OP_SUB {
			n = -n
		}
		run.Hands = Number(run.Hands.Number + n)
	case OP_BUMPUP, OP_BUMPDN:
		var tile int
		tile, err = run.tileOf(in)
		if err != nil {
			return
		}
		var value Value
		value, err = run.Floor.Get(tile)
		if err != nil {
			return
		}
		if !value.IsNumber() {
			err = ErrLetterMath
			return
		}
		n := 1
		if in.Op == OP_BUMPDN {
			n = -1
		}
		value = Number(value.Number + n)
		run.Floor[tile] = value
		run.Hands = value
	case OP_JUMP:
		next = in.Target
	case OP_JUMPZ:
		var zero bool
		zero, _, err = run.condition()
		if err != nil {
			return
		}
		if zero {
			next = in.Target
		}
	case OP_JUMPN:
		var negative bool
		_, negative, err = run.condition()
		if err != nil {
			return
		}
		if negative {
			next = in.Target
		}
	}

	run.Pc = next
	run.Runtime += 1

	return
}

// condition evaluates the hands for the conditional jumps.
func (run *Run) condition() (zero, negative bool, err error) {
	if !run.Hands.IsSome() {
		err = ErrHandsEmpty
		return
	}
	if !run.Hands.IsNumber() {
		err = ErrTypeMismatch
		return
	}

	zero = run.Hands.Number == 0
	negative = run.Hands.Number < 0

	return
}

// tileOf resolves the floor tile an instruction addresses, following the
// pointer tile when the operand is indirect. A pointer tile must hold a
// number inside the floor bounds.
func (run *Run) tileOf(in Instruction) (tile int, err error) {
	tile = in.Tile
	if in.Mode != ADDR_INDIRECT {
		return
	}

	var value Value
	value, err = run.Floor.Get(tile)
	if err != nil {
		return
	}
	if !value.IsNumber() {
		err = ErrTypeMismatch
		return
	}

	tile = value.Number
	if tile < 0 || tile >= FloorTiles {
		err = ErrTileRange
	}

	return
}

// tileValue reads the value the instruction's tile operand addresses.
func (run *Run) tileValue(in Instruction) (value Value, err error) {
	var tile int
	tile, err = run.tileOf(in)
	if err != nil {
		return
	}

	value, err = run.Floor.Get(tile)

	return
}
