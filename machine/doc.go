// Package machine implements the program model and execution engine for the
// Human Resource Machine instruction set.
//
// The machine is an accumulator-free assembly language operating over a
// bounded floor of memory tiles, an inbox of input values, and an outbox of
// output values. The worker carries a single implicit value ("hands") that
// INBOX, COPYFROM, and arithmetic write, and that OUTBOX, COPYTO, and the
// conditional jumps read.
//
// The Assembler parses program text into an immutable Program with resolved
// jump targets. Each Run binds a Program to an inbox and owns all mutable
// state, so one Program may serve any number of concurrent runs.
package machine
