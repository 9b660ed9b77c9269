package machine

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
)

var labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var pointerRe = regexp.MustCompile(`^\[(.*)\]$`)

// Assembler is a single pass parser for Human Resource Machine program text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the parsed lines.

	Label map[string]int // Map of jump labels to instruction addresses.
}

// Compile parses program source text into a Program.
func Compile(text string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(text))
}

// Parse parses an input stream into a Program with linked jump targets.
//
// A line is blank, a comment ('--'), one or more label definitions
// ('name:', optionally followed by an instruction), or an instruction
// ('MNEMONIC [operand]'). Parsing touches no machine state.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	var instructions []Instruction

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line = strings.TrimSpace(text)
		if len(line) == 0 || strings.HasPrefix(line, "--") {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		words := strings.Fields(line)

		for len(words) > 0 && strings.HasSuffix(words[0], ":") {
			label := strings.TrimSuffix(words[0], ":")
			if !labelRe.MatchString(label) {
				err = ErrOperandMalformed(words[0])
				return
			}
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = len(instructions)
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}

		var in Instruction
		in, err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
		instructions = append(instructions, in)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range instructions {
		in := &instructions[n]

		if in.Mode != ADDR_LABEL {
			continue
		}
		target, ok := asm.Label[in.Label]
		if !ok {
			lineno = in.LineNo
			line = strings.Join(in.Words, " ")
			err = ErrLabelMissing(in.Label)
			return
		}
		in.Target = target
	}

	prog = &Program{
		Instructions: instructions,
		Labels:       maps.Clone(asm.Label),
	}

	return
}

// parseWords decodes the words of a single instruction line.
func (asm *Assembler) parseWords(words []string, lineno int) (in Instruction, err error) {
	in = Instruction{LineNo: lineno, Words: words, Target: -1}

	op, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeUnknown(strings.ToUpper(words[0]))
		return
	}
	in.Op = op

	args := words[1:]

	switch {
	case op.NeedsTile():
		if len(args) < 1 {
			err = ErrOperandMissing
			return
		}
		if len(args) > 1 {
			err = ErrOperandExtra
			return
		}

		arg := args[0]
		in.Mode = ADDR_DIRECT
		match := pointerRe.FindStringSubmatch(arg)
		if match != nil {
			in.Mode = ADDR_INDIRECT
			arg = match[1]
		}

		tile, aerr := strconv.Atoi(arg)
		if aerr != nil {
			err = ErrOperandMalformed(args[0])
			return
		}
		if tile < 0 || tile >= FloorTiles {
			err = ErrTileRange
			return
		}
		in.Tile = tile
	case op.NeedsLabel():
		if len(args) < 1 {
			err = ErrOperandMissing
			return
		}
		if len(args) > 1 {
			err = ErrOperandExtra
			return
		}
		if !labelRe.MatchString(args[0]) {
			err = ErrOperandMalformed(args[0])
			return
		}
		in.Mode = ADDR_LABEL
		in.Label = args[0]
	default:
		if len(args) != 0 {
			err = ErrOperandExtra
			return
		}
	}

	return
}
