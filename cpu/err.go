package cpu

import (
	"github.com/ezrec/stackproc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNoProgram      error = translate.Error("no program is loaded")
	ErrPcRange        error = translate.Error("program counter falls outside the loaded program")
	ErrStackUnderflow error = translate.Error("stack underflow")
	ErrHaltMarker     error = translate.Error("return stack holds the halt marker")

	// Instruction decode errors
	ErrOpcodeMissing      error = translate.Error("opcode missing")
	ErrOpcodeExtraArgs    error = translate.Error("excessive arguments")
	ErrOpcodeValueMissing error = translate.Error("value missing")
)

// Stack names used by ErrUnderflow.
const (
	DATA_STACK   = "data"
	RETURN_STACK = "return"
)

// ErrUnderflow reports which stack was too shallow for an instruction.
type ErrUnderflow struct {
	Stack string
	Need  int
}

func (err ErrUnderflow) Error() string {
	return f("%v stack must have at least %d values", err.Stack, err.Need)
}

func (err ErrUnderflow) Is(target error) bool {
	return target == ErrStackUnderflow
}

type ErrUnrecognized string

func (eu ErrUnrecognized) Error() string {
	return f("opcode %v is unrecognized", string(eu))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax is one assembly problem, located by its 1-based source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Opcode string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d: %v: %v", err.LineNo, err.Opcode, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
