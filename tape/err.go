package tape

import (
	"github.com/craigds/hrmclone/translate"
)

var f = translate.From

// ErrToken is a token that is neither an integer nor a single letter.
type ErrToken string

func (err ErrToken) Error() string {
	return f("'%v' is not a number or letter", string(err))
}

func (err ErrToken) Is(other error) (ok bool) {
	_, ok = other.(ErrToken)
	return
}
