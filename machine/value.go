package machine

import (
	"strconv"
)

// ValueKind is the kind of item a value holds.
type ValueKind int

const (
	KIND_NONE   = ValueKind(0) // nothing
	KIND_NUMBER = ValueKind(1) // number
	KIND_LETTER = ValueKind(2) // letter
)

// Value is a single item the machine can carry: a whole number or a letter.
// The zero Value holds nothing (empty hands, empty floor tile).
type Value struct {
	Kind   ValueKind
	Number int
	Letter rune
}

// Number creates a number value.
func Number(n int) Value {
	return Value{Kind: KIND_NUMBER, Number: n}
}

// Letter creates a letter value.
func Letter(r rune) Value {
	return Value{Kind: KIND_LETTER, Letter: r}
}

// IsSome returns true if the value holds anything.
func (v Value) IsSome() bool {
	return v.Kind != KIND_NONE
}

// IsNumber returns true if the value holds a number.
func (v Value) IsNumber() bool {
	return v.Kind == KIND_NUMBER
}

// IsLetter returns true if the value holds a letter.
func (v Value) IsLetter() bool {
	return v.Kind == KIND_LETTER
}

// String returns the value in the game's text form.
func (v Value) String() (out string) {
	switch v.Kind {
	case KIND_NUMBER:
		out = strconv.Itoa(v.Number)
	case KIND_LETTER:
		out = string(v.Letter)
	default:
		out = "-"
	}

	return
}
