package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craigds/hrmclone/machine"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		`inbox = [3, "a", -2]`,
		`floor = {14: 0, 2: "A"}`,
		`limit = 500`,
	}, "\n")

	ws, err := Eval("test.star", strings.NewReader(src))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]machine.Value{
		machine.Number(3),
		machine.Letter('a'),
		machine.Number(-2),
	}, ws.Inbox)
	assert.Equal(map[int]machine.Value{
		14: machine.Number(0),
		2:  machine.Letter('A'),
	}, ws.Floor)
	assert.Equal(500, ws.Limit)
}

func TestEvalProcedural(t *testing.T) {
	assert := assert.New(t)

	src := "inbox = [x - 2 for x in range(5)]"

	ws, err := Eval("test.star", strings.NewReader(src))
	assert.NoError(err)
	assert.Equal([]machine.Value{
		machine.Number(-2),
		machine.Number(-1),
		machine.Number(0),
		machine.Number(1),
		machine.Number(2),
	}, ws.Inbox)
	assert.Equal(0, ws.Limit)
}

func TestEvalErrors(t *testing.T) {
	assert := assert.New(t)

	// Starlark syntax error.
	_, err := Eval("test.star", strings.NewReader("inbox = ("))
	assert.Error(err)

	// The inbox global is required.
	_, err = Eval("test.star", strings.NewReader("x = 1"))
	assert.ErrorIs(err, ErrGlobalMissing(""))

	// Wrong global shapes.
	_, err = Eval("test.star", strings.NewReader("inbox = 3"))
	assert.ErrorIs(err, ErrGlobal(""))

	_, err = Eval("test.star", strings.NewReader("inbox = []\nfloor = [1]"))
	assert.ErrorIs(err, ErrGlobal(""))

	_, err = Eval("test.star", strings.NewReader("inbox = []\nlimit = \"many\""))
	assert.ErrorIs(err, ErrGlobal(""))

	// Bad values.
	_, err = Eval("test.star", strings.NewReader("inbox = [True]"))
	assert.ErrorIs(err, ErrValue(""))

	_, err = Eval("test.star", strings.NewReader(`inbox = ["oops"]`))
	assert.Error(err)

	_, err = Eval("test.star", strings.NewReader("inbox = []\nfloor = {99: 1}"))
	assert.ErrorIs(err, ErrTile(""))

	_, err = Eval("test.star", strings.NewReader(`inbox = []`+"\n"+`floor = {"x": 1}`))
	assert.ErrorIs(err, ErrTile(""))
}
