// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"
	"gitlab.com/efronlicht/enve"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/io"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	var list []string
	for name, value := range d {
		list = append(list, fmt.Sprintf("%v=%v", name, value))
	}
	return strings.Join(list, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("define %q is not NAME=VALUE", text)
	}
	d[name] = value
	return nil
}

func main() {
	var source string
	var output string
	var tickLimit int
	var verbose bool
	var check bool
	var dump bool
	predefine := defines{}

	flag.StringVar(&source, "f", enve.StringOr("REGVM_SOURCE", "asm.txt"), "program file to run")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.IntVar(&tickLimit, "n", enve.IntOr("REGVM_TICK_LIMIT", 0), "Maximum instructions to execute (0 is unlimited)")
	flag.BoolVar(&verbose, "v", enve.BoolOr("REGVM_VERBOSE", false), "Verbose mode")
	flag.BoolVar(&check, "c", false, "Check the program, do not execute")
	flag.BoolVar(&dump, "r", false, "Dump registers on halt")
	flag.Var(predefine, "D", "Define NAME=VALUE (repeatable)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Printf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		atexit.Exit(2)
	}

	ld := &cpu.Loader{Verbose: verbose}
	for name, value := range predefine {
		ld.Predefine(name, value)
	}

	prog, err := ld.Load(io.OpenFile(source))
	if err != nil {
		log.Printf("Error: could not open %q!", source)
		log.Printf("%v: %v", source, err)
		atexit.Exit(1)
	}

	if check {
		err = prog.Check()
		if err != nil {
			log.Printf("%v: %v", source, err)
			atexit.Exit(1)
		}
		atexit.Exit(0)
	}

	emu := emulator.NewEmulator()
	emu.Cpu.Program = prog
	emu.Verbose = verbose
	emu.TickLimit = tickLimit

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Printf("%v: %v", output, err)
			atexit.Exit(1)
		}
		atexit.Register(func() { ouf.Close() })
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	if dump {
		fmt.Fprint(os.Stderr, emu.Cpu.String())
	}

	if err != nil {
		log.Printf("Execution error!")
		log.Printf("%v: %v", source, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
