package emulator

import (
	"strings"

	"github.com/ezrec/stackproc/cpu"
	"github.com/ezrec/stackproc/translate"
)

var f = translate.From

var (
	ErrStepLimit error = translate.Error("step limit reached")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return err.Err.Error()
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrProgram is returned when a loaded program has syntax errors.
type ErrProgram struct {
	Name   string
	Errors []cpu.ErrSyntax
}

func (err *ErrProgram) Error() string {
	lines := []string{f("%v: program contains errors", err.Name)}
	for _, syntax := range err.Errors {
		lines = append(lines, syntax.Error())
	}
	return strings.Join(lines, "\n")
}

func (err *ErrProgram) Unwrap() []error {
	errs := make([]error, len(err.Errors))
	for n, syntax := range err.Errors {
		errs[n] = syntax
	}
	return errs
}
