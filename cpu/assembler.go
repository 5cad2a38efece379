// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"maps"
	"slices"
	"strings"
)

// Assembler is a two pass assembler for the stack processor.
//
// The first pass binds labels to instruction indexes; the second checks
// every instruction, so forward references resolve against the final
// program.
type Assembler struct {
	Instruction []Instruction  // List of accepted instruction lines.
	Label       map[string]int // Map of jump labels to instruction indexes.
	Error       []ErrSyntax    // List of syntax errors.
}

// sourceLine is a comment-stripped, non-blank line of source.
type sourceLine struct {
	lineno int
	text   string
}

// stripLine removes any comment and surrounding whitespace.
func stripLine(text string) string {
	text, _, _ = strings.Cut(text, "#")
	return strings.TrimSpace(text)
}

// Parse assembles an input stream into a Program. The only error
// returned is from reading input; syntax errors are in the Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.Assemble(lines)

	return
}

// Assemble assembles source lines into a Program.
func (asm *Assembler) Assemble(lines []string) (prog *Program) {
	asm.Instruction = asm.Instruction[:0]
	asm.Error = asm.Error[:0]
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	var source []sourceLine
	for n, text := range lines {
		line := stripLine(text)
		if len(line) == 0 {
			continue
		}
		source = append(source, sourceLine{lineno: n + 1, text: line})
	}

	// Labels and instruction indexes.
	for _, line := range source {
		if label, ok := strings.CutSuffix(line.text, ":"); ok {
			asm.Label[strings.TrimSpace(label)] = len(asm.Instruction)
			continue
		}
		// Kept even if invalid, so later labels count it.
		asm.Instruction = append(asm.Instruction, Instruction{LineNo: line.lineno, Text: line.text})
	}

	// Validation.
	for _, inst := range asm.Instruction {
		err := asm.check(inst.Text)
		if err != nil {
			opcode := strings.ToUpper(strings.Fields(inst.Text)[0])
			asm.Error = append(asm.Error, ErrSyntax{LineNo: inst.LineNo, Line: inst.Text, Opcode: opcode, Err: err})
		}
	}

	prog = &Program{
		instructions: slices.Clone(asm.Instruction),
		labels:       maps.Clone(asm.Label),
		errors:       slices.Clone(asm.Error),
	}

	return
}

// check validates a single instruction against the labels found so far.
func (asm *Assembler) check(text string) (err error) {
	op, args, err := Decode(text)
	if err != nil {
		return
	}

	switch {
	case op == OP_LIT:
		_, err = ParseLiteral(args[0])
	case op.Labelled():
		if _, ok := asm.Label[args[0]]; !ok {
			err = ErrLabelMissing(args[0])
		}
	}

	return
}
