package workset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craigds/hrmclone/machine"
	"github.com/craigds/hrmclone/tape"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	doc := `
inbox = ["b", "a", 3, -7]
limit = 10000

[floor]
14 = 0
2 = "A"
`

	ws, err := Load(strings.NewReader(doc))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]machine.Value{
		machine.Letter('b'),
		machine.Letter('a'),
		machine.Number(3),
		machine.Number(-7),
	}, ws.Inbox)
	assert.Equal(10000, ws.Limit)
	assert.Equal(map[int]machine.Value{
		14: machine.Number(0),
		2:  machine.Letter('A'),
	}, ws.Floor)
}

func TestLoadEmpty(t *testing.T) {
	assert := assert.New(t)

	ws, err := Load(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(ws.Inbox)
	assert.Empty(ws.Floor)
	assert.Equal(0, ws.Limit)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	// Malformed TOML.
	_, err := Load(strings.NewReader("inbox = ["))
	assert.Error(err)

	// An inbox value that is neither a number nor a letter.
	_, err = Load(strings.NewReader(`inbox = [true]`))
	assert.ErrorIs(err, ErrValue(""))

	_, err = Load(strings.NewReader(`inbox = ["oops"]`))
	assert.ErrorIs(err, tape.ErrToken(""))

	// Floor keys must be tile indexes on the floor.
	_, err = Load(strings.NewReader("[floor]\nx = 1"))
	assert.ErrorIs(err, ErrTile(""))

	_, err = Load(strings.NewReader("[floor]\n99 = 1"))
	assert.ErrorIs(err, ErrTile(""))
}

func TestBind(t *testing.T) {
	assert := assert.New(t)

	prog, err := machine.Compile("COPYFROM 14\nOUTBOX")
	assert.NoError(err)

	ws := &Workset{
		Floor: map[int]machine.Value{14: machine.Letter('Z')},
	}

	run := ws.Bind(prog)
	assert.NoError(run.Execute())
	assert.Equal([]machine.Value{machine.Letter('Z')}, run.Outbox)
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	prog, err := machine.Compile("a:\nINBOX\nOUTBOX\nJUMP a")
	assert.NoError(err)

	ws := &Workset{
		Inbox: []machine.Value{machine.Number(1), machine.Number(2)},
		Limit: 10000,
	}

	run, err := ws.Execute(prog)
	assert.NoError(err)
	assert.Equal(ws.Inbox, run.Outbox)
	assert.Equal(6, run.Runtime)
}

func TestExecuteLimit(t *testing.T) {
	assert := assert.New(t)

	prog, err := machine.Compile("a:\nJUMP a")
	assert.NoError(err)

	ws := &Workset{Limit: 100}

	run, err := ws.Execute(prog)
	assert.ErrorIs(err, ErrLimit(0))
	assert.Equal(100, run.Runtime)
	assert.False(run.Halted())
}
