// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"io/fs"
	"log"

	"github.com/ezrec/stackproc/cpu"
)

// Emulator state. CPU + run loop.
type Emulator struct {
	Verbose   bool // If set, enables verbose logging.
	*cpu.Cpu       // Reference to the CPU simulation.
	StepLimit int  // If > 0, maximum instructions per Run.
	Preview   int  // Stack entries shown in verbose logging.

	Ticks int // Instructions executed since the last Reset or Run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Preview: cpu.PREVIEW_LIMIT,
	}

	return
}

// Load assembles a program and installs it. A program with syntax errors
// is returned for inspection, but not installed.
func (emu *Emulator) Load(name string, input io.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{}
	prog, err = asm.Parse(input)
	if err != nil {
		return
	}

	if prog.HasErrors() {
		err = &ErrProgram{Name: name, Errors: prog.Errors()}
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %v, %d instructions", name, prog.Len())
	}

	emu.Cpu.SetProgram(prog)

	return
}

// LoadFile loads a program from a file system.
func (emu *Emulator) LoadFile(filesys fs.FS, name string) (prog *cpu.Program, err error) {
	inf, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return emu.Load(name, inf)
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Cpu.Reset()
	emu.Ticks = 0
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	inst, ok := emu.Cpu.Current()
	if !ok {
		return 0
	}

	return inst.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.Pc().Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.StepLimit > 0 && emu.Ticks >= emu.StepLimit {
		err = ErrStepLimit
		return
	}

	if emu.Verbose {
		log.Printf("%v: %v", lineno, emu.Cpu.State(emu.Preview))
	}

	err = emu.Cpu.ExecuteNext()
	if err != nil {
		return
	}

	emu.Ticks++

	return
}

// Run ticks the emulator until the program counter halts.
func (emu *Emulator) Run() (err error) {
	emu.Ticks = 0

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

// Call executes an instruction, then runs the program if the
// instruction was a CALL.
func (emu *Emulator) Call(text string) (err error) {
	op, _, err := cpu.Decode(text)
	if err != nil {
		return
	}

	err = emu.Cpu.Execute(text)
	if err != nil {
		return
	}

	if op != cpu.OP_CALL {
		return
	}

	return emu.Run()
}
