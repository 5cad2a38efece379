// Package monitor implements the interactive command loop for the
// stack processor emulator.
package monitor

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ezrec/stackproc/emulator"
	"github.com/ezrec/stackproc/translate"
)

var f = translate.Fprintf

// Monitor reads commands, and drives the emulator with them.
type Monitor struct {
	*emulator.Emulator // Emulator being driven.

	Output io.Writer // Command output.
	Prompt string    // Prompt printed before each interactive command.

	// Open opens a program for the LOAD command.
	Open func(name string) (io.ReadCloser, error)
}

// NewMonitor creates a monitor for an emulator, writing to output.
func NewMonitor(emu *emulator.Emulator, output io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Emulator: emu,
		Output:   output,
		Prompt:   "> ",
		Open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}

	return
}

// Help prints the command summary.
func (mon *Monitor) Help() {
	w := mon.Output
	f(w, "Commands:\n\n")
	f(w, "HELP\n\tShow this help information.\n\n")
	f(w, "QUIT\nEXIT\n\tExits the program.\n\n")
	f(w, "LOAD filename.sm\n\tLoad the instructions in the specified file.\n\n")
	f(w, "RESET\n\tClear the stacks, unload the program, and halt.\n\n")
	f(w, "DEBUG\n\tTurn on debug output during execution.\n\n")
	f(w, "NODEBUG\n\tTurn off debug output during execution.\n\n")
	f(w, "All stack processor instructions may be invoked as well, but\n")
	f(w, "CALL/JZ/JNZ/JMP/RET instructions won't work unless a program\n")
	f(w, "is loaded.\n")
}

// PrintState prints the emulator state, followed by a blank line.
func (mon *Monitor) PrintState() {
	f(mon.Output, "%v\n", mon.State(mon.Preview).String())
}

// Load loads a program, and lists it or its errors.
func (mon *Monitor) Load(name string) (err error) {
	inf, err := mon.Open(name)
	if err != nil {
		f(mon.Output, "ERROR:  Couldn't load file %v\n", name)
		f(mon.Output, "%v\n", err.Error())
		return
	}
	defer inf.Close()

	prog, err := mon.Emulator.Load(name, inf)
	switch {
	case err != nil && prog != nil && prog.HasErrors():
		f(mon.Output, "Program contains errors!\n")
		for _, syntax := range prog.Errors() {
			f(mon.Output, "%v\n", syntax.Error())
		}
	case err != nil:
		f(mon.Output, "ERROR:  Couldn't load file %v\n", name)
		f(mon.Output, "%v\n", err.Error())
	default:
		f(mon.Output, "Loaded program from %v\n", name)
		f(mon.Output, "%v\n", prog.String())
	}

	return
}

// Command performs a single command line, returning true when the
// monitor should exit.
func (mon *Monitor) Command(line string) (quit bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	switch strings.ToUpper(words[0]) {
	case "QUIT", "EXIT":
		quit = true
		return
	case "HELP":
		mon.Help()
		return
	case "DEBUG":
		f(mon.Output, "Turning on debug output\n")
		mon.Verbose = true
		return
	case "NODEBUG":
		f(mon.Output, "Turning off debug output\n")
		mon.Verbose = false
		return
	case "LOAD":
		if len(words) != 2 {
			f(mon.Output, "ERROR:  LOAD takes one file name\n")
		} else {
			_ = mon.Load(words[1])
		}
	case "RESET":
		f(mon.Output, "Resetting processor.\n")
		mon.Reset()
	case "CALL":
		err := mon.Call(line)
		if err != nil {
			f(mon.Output, "ERROR:  %v\n", err.Error())
			f(mon.Output, "(you may need to RESET the processor)\n")
		}
	default:
		err := mon.Execute(line)
		if err != nil {
			f(mon.Output, "ERROR:  %v\n", err.Error())
		}
	}

	mon.PrintState()

	return
}

// Batch loads a program, then performs each command. A program with
// errors is reported, and the commands are still performed.
func (mon *Monitor) Batch(program string, commands []string) {
	_ = mon.Load(program)

	for _, cmd := range commands {
		if mon.Command(cmd) {
			return
		}
	}
}

// Serve reads commands until end of input, or a QUIT command.
func (mon *Monitor) Serve(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	for {
		f(mon.Output, "%v", mon.Prompt)
		if !scanner.Scan() {
			break
		}
		if mon.Command(scanner.Text()) {
			break
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	f(mon.Output, "Goodbye!\n")

	return
}
