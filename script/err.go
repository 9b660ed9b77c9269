package script

import (
	"github.com/craigds/hrmclone/translate"
)

var f = translate.From

// ErrGlobalMissing is a required script global that was never assigned.
type ErrGlobalMissing string

func (err ErrGlobalMissing) Error() string {
	return f("script does not define '%v'", string(err))
}

func (err ErrGlobalMissing) Is(other error) (ok bool) {
	_, ok = other.(ErrGlobalMissing)
	return
}

// ErrGlobal is a script global of the wrong shape.
type ErrGlobal string

func (err ErrGlobal) Error() string {
	return f("script global '%v' has the wrong type", string(err))
}

func (err ErrGlobal) Is(other error) (ok bool) {
	_, ok = other.(ErrGlobal)
	return
}

// ErrValue is a script value that is neither an integer nor a letter.
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
