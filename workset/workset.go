// Package workset describes a single run setup: the inbox sequence, any
// preset floor tiles, and an optional step limit applied around the step
// loop. Worksets load from TOML files or are built programmatically.
package workset

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/craigds/hrmclone/machine"
	"github.com/craigds/hrmclone/tape"
)

// Workset is one run setup for a program.
type Workset struct {
	Inbox []machine.Value       // Input values, consumed in order.
	Floor map[int]machine.Value // Floor tiles preset before the run.
	Limit int                   // Step limit; 0 imposes none.
}

// document is the TOML shape of a workset file.
type document struct {
	Inbox []any          `toml:"inbox"`
	Floor map[string]any `toml:"floor"`
	Limit int            `toml:"limit"`
}

// decodeValue converts a TOML primitive into a machine value.
func decodeValue(raw any) (value machine.Value, err error) {
	switch v := raw.(type) {
	case int64:
		value = machine.Number(int(v))
	case string:
		value, err = tape.ParseValue(v)
	default:
		err = ErrValue(fmt.Sprintf("%v", raw))
	}

	return
}

// Load reads a TOML workset description.
func Load(input io.Reader) (ws *Workset, err error) {
	var doc document
	_, err = toml.NewDecoder(input).Decode(&doc)
	if err != nil {
		return
	}

	ws = &Workset{
		Floor: map[int]machine.Value{},
		Limit: doc.Limit,
	}
	defer func() {
		if err != nil {
			ws = nil
		}
	}()

	for _, raw := range doc.Inbox {
		var value machine.Value
		value, err = decodeValue(raw)
		if err != nil {
			return
		}
		ws.Inbox = append(ws.Inbox, value)
	}

	for key, raw := range doc.Floor {
		tile, aerr := strconv.Atoi(key)
		if aerr != nil || tile < 0 || tile >= machine.FloorTiles {
			err = ErrTile(key)
			return
		}
		var value machine.Value
		value, err = decodeValue(raw)
		if err != nil {
			return
		}
		ws.Floor[tile] = value
	}

	return
}

// LoadFile reads a TOML workset file.
func LoadFile(path string) (ws *Workset, err error) {
	input, err := os.Open(path)
	if err != nil {
		return
	}
	defer input.Close()

	return Load(input)
}

// Bind binds a run of the program with the workset's floor preset applied.
func (ws *Workset) Bind(prog *machine.Program) (run *machine.Run) {
	run = prog.NewRun(ws.Inbox)
	for tile, value := range ws.Floor {
		run.Floor[tile] = value
	}

	return
}

// Complete steps a bound run to termination under the workset's step limit.
func (ws *Workset) Complete(run *machine.Run) (err error) {
	for done := false; !done; {
		if ws.Limit > 0 && run.Runtime >= ws.Limit {
			err = ErrLimit(ws.Limit)
			return
		}
		done, err = run.Step()
		if err != nil {
			return
		}
	}

	return
}

// Execute runs the program against the workset.
//
// The run is returned even on failure, so the partial outbox and runtime
// remain observable.
func (ws *Workset) Execute(prog *machine.Program) (run *machine.Run, err error) {
	run = ws.Bind(prog)
	err = ws.Complete(run)

	return
}
