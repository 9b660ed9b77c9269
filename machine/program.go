package machine

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Program is a parsed instruction sequence with resolved jump targets.
// It carries no run state; one Program may be shared by any number of
// concurrent runs.
type Program struct {
	Instructions []Instruction  // Ordered instructions; index is the address.
	Labels       map[string]int // Map of jump labels to instruction addresses.
}

// Steps returns an iterator over address/instruction pairs.
func (prog *Program) Steps() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, in Instruction) bool) {
		for n, in := range prog.Instructions {
			if !yield(n, in) {
				return
			}
		}
	}
}

// labelsAt maps instruction addresses back to the labels defined there.
func (prog *Program) labelsAt() (at map[int][]string) {
	at = map[int][]string{}
	for label, addr := range prog.Labels {
		at[addr] = append(at[addr], label)
	}
	for _, labels := range at {
		slices.Sort(labels)
	}

	return
}

// Disassemble writes a program listing, with labels reinserted ahead of
// the instructions they address.
func (prog *Program) Disassemble(output io.Writer) (err error) {
	at := prog.labelsAt()

	emit := func(addr int) {
		for _, label := range at[addr] {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(output, "%v:\n", label)
		}
	}

	for pc, in := range prog.Steps() {
		emit(pc)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(output, "    %v\n", in)
		if err != nil {
			return
		}
	}
	emit(len(prog.Instructions))

	return
}
