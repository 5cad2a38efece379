package cpu

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Instruction is a single source line holding one opcode and its operands.
type Instruction struct {
	LineNo int    // Source line number, 1-based.
	Text   string // Comment-stripped, trimmed instruction text.
}

// Program is an assembled, read-only instruction listing.
type Program struct {
	instructions []Instruction
	labels       map[string]int
	errors       []ErrSyntax
}

// Line is one entry of a program listing: the labels bound to an index,
// and the instruction at that index. Labels bound past the final
// instruction are listed with an empty Instruction.
type Line struct {
	Index  int
	Labels []string
	Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// Instruction returns the instruction at an index.
func (prog *Program) Instruction(index int) (inst Instruction, ok bool) {
	if index < 0 || index >= len(prog.instructions) {
		return
	}

	return prog.instructions[index], true
}

func (prog *Program) HasLabel(label string) bool {
	_, ok := prog.labels[label]
	return ok
}

// Label resolves a label to its instruction index.
func (prog *Program) Label(label string) (index int, ok bool) {
	index, ok = prog.labels[label]
	return
}

// Labels iterates the labels ordered by index, then by name.
func (prog *Program) Labels() iter.Seq2[string, int] {
	names := slices.SortedFunc(maps.Keys(prog.labels), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.labels[a], prog.labels[b]), strings.Compare(a, b))
	})

	return func(yield func(label string, index int) bool) {
		for _, name := range names {
			if !yield(name, prog.labels[name]) {
				return
			}
		}
	}
}

// Errors returns the assembly errors, in source order.
func (prog *Program) Errors() []ErrSyntax {
	return slices.Clone(prog.errors)
}

// HasErrors returns true if the program must not be executed.
func (prog *Program) HasErrors() bool {
	return len(prog.errors) > 0
}

// Lines iterates the program listing.
func (prog *Program) Lines() iter.Seq[Line] {
	bound := make(map[int][]string, len(prog.labels))
	for label, index := range prog.Labels() {
		bound[index] = append(bound[index], label)
	}

	return func(yield func(line Line) bool) {
		for n, inst := range prog.instructions {
			if !yield(Line{Index: n, Labels: bound[n], Instruction: inst}) {
				return
			}
		}

		end := len(prog.instructions)
		if len(bound[end]) != 0 {
			yield(Line{Index: end, Labels: bound[end]})
		}
	}
}

// String returns the program listing as assembly text.
func (prog *Program) String() string {
	var text strings.Builder

	for line := range prog.Lines() {
		for _, label := range line.Labels {
			text.WriteString(label + ":\n")
		}
		if len(line.Text) != 0 {
			text.WriteString("\t" + line.Text + "\n")
		}
	}

	return text.String()
}
