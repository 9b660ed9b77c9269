package workset

import (
	"github.com/craigds/hrmclone/translate"
)

var f = translate.From

// ErrValue is a workset value that is neither an integer nor a letter.
type ErrValue string

func (err ErrValue) Error() string {
	return f("'%v' is not a number or letter", string(err))
}

func (err ErrValue) Is(other error) (ok bool) {
	_, ok = other.(ErrValue)
	return
}

// ErrTile is a floor key that is not a valid tile index.
type ErrTile string

func (err ErrTile) Error() string {
	return f("'%v' is not a floor tile", string(err))
}

func (err ErrTile) Is(other error) (ok bool) {
	_, ok = other.(ErrTile)
	return
}

// ErrLimit is a run that exceeded the workset's step limit.
type ErrLimit int

func (err ErrLimit) Error() string {
	return f("step limit %d exceeded", int(err))
}

func (err ErrLimit) Is(other error) (ok bool) {
	_, ok = other.(ErrLimit)
	return
}
