// Package tape converts between text streams and machine value sequences.
// It feeds inbox text into the machine and renders outbox results back out,
// the way the surrounding tooling talks to the core.
package tape

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/craigds/hrmclone/machine"
)

// ParseValue converts a single text token into a machine value.
// An integer token becomes a number; a single letter becomes a letter.
func ParseValue(token string) (value machine.Value, err error) {
	n, nerr := strconv.Atoi(token)
	if nerr == nil {
		value = machine.Number(n)
		return
	}

	r, size := utf8.DecodeRuneInString(token)
	if size == len(token) && unicode.IsLetter(r) {
		value = machine.Letter(r)
		return
	}

	err = ErrToken(token)

	return
}

// ReadValues reads whitespace separated value tokens until end of input.
func ReadValues(input io.Reader) (values []machine.Value, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		var value machine.Value
		value, err = ParseValue(scanner.Text())
		if err != nil {
			values = nil
			return
		}
		values = append(values, value)
	}
	err = scanner.Err()

	return
}

// ParseValues reads whitespace separated value tokens from a string.
func ParseValues(text string) ([]machine.Value, error) {
	return ReadValues(strings.NewReader(text))
}

// Write renders a value sequence, one value per line.
func Write(output io.Writer, values []machine.Value) (err error) {
	for _, value := range values {
		_, err = fmt.Fprintln(output, value.String())
		if err != nil {
			return
		}
	}

	return
}
