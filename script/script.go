// Package script evaluates Starlark workset generators. A script defines
// 'inbox' (a list of integers and single-letter strings) and may define
// 'floor' (a dict of tile index to value) and 'limit' (a step cap), which
// makes large or procedural worksets cheap to express.
package script

import (
	"io"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/craigds/hrmclone/machine"
	"github.com/craigds/hrmclone/tape"
	"github.com/craigds/hrmclone/workset"
)

// valueOf converts a Starlark value into a machine value.
func valueOf(item starlark.Value) (value machine.Value, err error) {
	switch v := item.(type) {
	case starlark.Int:
		i64, ok := v.Int64()
		if !ok {
			err = ErrValue(v.String())
			return
		}
		value = machine.Number(int(i64))
	case starlark.String:
		value, err = tape.ParseValue(string(v))
	default:
		err = ErrValue(item.String())
	}

	return
}

// tileOf converts a Starlark dict key into a floor tile index.
func tileOf(item starlark.Value) (tile int, err error) {
	st_int, ok := item.(starlark.Int)
	if !ok {
		err = ErrTile(item.String())
		return
	}
	i64, ok := st_int.Int64()
	if !ok || i64 < 0 || i64 >= machine.FloorTiles {
		err = ErrTile(item.String())
		return
	}

	tile = int(i64)

	return
}

// Eval runs a Starlark workset script and collects its globals.
func Eval(filename string, src io.Reader) (ws *workset.Workset, err error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return
	}

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, text, nil)
	if err != nil {
		return
	}

	ws = &workset.Workset{
		Floor: map[int]machine.Value{},
	}
	defer func() {
		if err != nil {
			ws = nil
		}
	}()

	st_inbox, ok := globals["inbox"]
	if !ok {
		err = ErrGlobalMissing("inbox")
		return
	}
	list, ok := st_inbox.(*starlark.List)
	if !ok {
		err = ErrGlobal("inbox")
		return
	}
	for n := range list.Len() {
		var value machine.Value
		value, err = valueOf(list.Index(n))
		if err != nil {
			return
		}
		ws.Inbox = append(ws.Inbox, value)
	}

	st_floor, ok := globals["floor"]
	if ok {
		dict, isDict := st_floor.(*starlark.Dict)
		if !isDict {
			err = ErrGlobal("floor")
			return
		}
		for _, item := range dict.Items() {
			var tile int
			tile, err = tileOf(item[0])
			if err != nil {
				return
			}
			var value machine.Value
			value, err = valueOf(item[1])
			if err != nil {
				return
			}
			ws.Floor[tile] = value
		}
	}

	st_limit, ok := globals["limit"]
	if ok {
		st_int, isInt := st_limit.(starlark.Int)
		if !isInt {
			err = ErrGlobal("limit")
			return
		}
		i64, fits := st_int.Int64()
		if !fits || i64 < 0 {
			err = ErrGlobal("limit")
			return
		}
		ws.Limit = int(i64)
	}

	return
}

// EvalFile runs a Starlark workset script from a file.
func EvalFile(path string) (ws *workset.Workset, err error) {
	input, err := os.Open(path)
	if err != nil {
		return
	}
	defer input.Close()

	return Eval(path, input)
}
