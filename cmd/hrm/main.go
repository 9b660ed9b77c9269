package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/craigds/hrmclone/machine"
	"github.com/craigds/hrmclone/script"
	"github.com/craigds/hrmclone/tape"
	"github.com/craigds/hrmclone/workset"
)

func main() {
	var program string
	var inbox string
	var worksheet string
	var generate string
	var limit int
	var listing bool
	var verbose bool

	flag.StringVar(&program, "c", "", ".hrm program file to run")
	flag.StringVar(&inbox, "i", "", "inbox values, whitespace separated")
	flag.StringVar(&worksheet, "w", "", ".toml workset file")
	flag.StringVar(&generate, "g", "", ".star workset generator script")
	flag.IntVar(&limit, "l", 0, "step limit (0 for no limit)")
	flag.BoolVar(&listing, "d", false, "print the program listing, do not run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}
	if len(program) == 0 {
		log.Fatalf("%v: no program file given (-c)", os.Args[0])
	}

	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	asm := &machine.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if listing {
		err = prog.Disassemble(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	ws := &workset.Workset{}
	switch {
	case len(worksheet) != 0:
		ws, err = workset.LoadFile(worksheet)
		if err != nil {
			log.Fatalf("%v: %v", worksheet, err)
		}
	case len(generate) != 0:
		ws, err = script.EvalFile(generate)
		if err != nil {
			log.Fatalf("%v: %v", generate, err)
		}
	}

	if len(inbox) != 0 {
		ws.Inbox, err = tape.ParseValues(inbox)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}
	if limit != 0 {
		ws.Limit = limit
	}

	run := ws.Bind(prog)
	run.Verbose = verbose

	err = ws.Complete(run)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	err = tape.Write(os.Stdout, run.Outbox)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("runtime: %v\n", run.Runtime)
}
