package cpu

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Cpu is the simulation context for the stack processor.
type Cpu struct {
	Data   Stack[starlark.Int] // Data stack.
	Return Stack[Pc]           // Return stack.

	program *Program // Loaded program, or nil.
	pc      Pc       // Program counter. Always Halted when program is nil.
}

// State is a snapshot of the processor for display.
type State struct {
	Data        string      // Data stack preview.
	Return      string      // Return stack preview.
	Pc          Pc          // Program counter.
	Instruction Instruction // Instruction at the program counter, if any.
	Fetchable   bool        // Set if Instruction is valid.
}

// NewCpu creates a new, halted CPU with no program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the data and return stacks.
// - Unloads the program.
// - Halts the program counter.
func (cpu *Cpu) Reset() {
	cpu.Data.Reset()
	cpu.Return.Reset()
	cpu.program = nil
	cpu.pc = Halted
}

// SetProgram installs a program and halts the CPU. The stacks are kept.
func (cpu *Cpu) SetProgram(prog *Program) {
	cpu.program = prog
	cpu.pc = Halted
}

// Program returns the loaded program, or nil.
func (cpu *Cpu) Program() *Program {
	return cpu.program
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() Pc {
	return cpu.pc
}

// SetPc assigns the program counter. Only Halted is allowed without a program.
func (cpu *Cpu) SetPc(pc Pc) (err error) {
	if cpu.program == nil && !pc.Halted() {
		err = ErrNoProgram
		return
	}

	cpu.pc = pc
	return
}

// Current returns the instruction at the program counter.
func (cpu *Cpu) Current() (inst Instruction, ok bool) {
	if cpu.program == nil {
		return
	}

	index, ok := cpu.pc.Index()
	if !ok {
		return
	}

	return cpu.program.Instruction(index)
}

// CanExecuteNext returns true if ExecuteNext has an instruction to run.
func (cpu *Cpu) CanExecuteNext() bool {
	_, ok := cpu.Current()
	return ok && !cpu.program.HasErrors()
}

// ExecuteNext executes the instruction at the program counter.
func (cpu *Cpu) ExecuteNext() (err error) {
	if cpu.program == nil {
		err = ErrNoProgram
		return
	}

	inst, ok := cpu.Current()
	if !ok {
		err = ErrPcRange
		return
	}

	return cpu.Execute(inst.Text)
}

// Execute executes a single instruction, which need not be part of the
// loaded program.
func (cpu *Cpu) Execute(text string) (err error) {
	return cpu.ExecuteReturnTo(text, cpu.pc.Next())
}

// ExecuteReturnTo executes a single instruction; a CALL saves next as
// its return address instead of the fall-through program counter.
func (cpu *Cpu) ExecuteReturnTo(text string, next Pc) (err error) {
	op, args, err := Decode(text)
	if err != nil {
		return
	}

	switch op {
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR:
		err = cpu.need(2, 0)
		if err != nil {
			return
		}
		a, _ := cpu.Data.Pop()
		b, _ := cpu.Data.Pop()
		cpu.Data.Push(doAlu(op, a, b))
	case OP_NOT, OP_SHL, OP_SHR:
		err = cpu.need(1, 0)
		if err != nil {
			return
		}
		a, _ := cpu.Data.Pop()
		cpu.Data.Push(doAlu(op, a, starlark.MakeInt(0)))
	case OP_DUP:
		err = cpu.need(1, 0)
		if err != nil {
			return
		}
		a, _ := cpu.Data.Peek()
		cpu.Data.Push(a)
	case OP_SWAP:
		err = cpu.need(2, 0)
		if err != nil {
			return
		}
		a, _ := cpu.Data.Pop()
		b, _ := cpu.Data.Pop()
		cpu.Data.Push(a)
		cpu.Data.Push(b)
	case OP_DROP:
		err = cpu.need(1, 0)
		if err != nil {
			return
		}
		cpu.Data.Pop()
	case OP_TO_RS:
		err = cpu.need(1, 0)
		if err != nil {
			return
		}
		a, _ := cpu.Data.Pop()
		cpu.Return.Push(Address(a))
	case OP_FROM_RS:
		err = cpu.need(0, 1)
		if err != nil {
			return
		}
		top, _ := cpu.Return.Peek()
		value, ok := top.Value()
		if !ok {
			err = ErrHaltMarker
			return
		}
		cpu.Return.Pop()
		cpu.Data.Push(value)
	case OP_LIT:
		var value starlark.Int
		value, err = ParseLiteral(args[0])
		if err != nil {
			return
		}
		cpu.Data.Push(value)
	case OP_JMP:
		var target int
		target, err = cpu.resolve(args[0])
		if err != nil {
			return
		}
		cpu.pc = At(target)
		return
	case OP_JZ, OP_JNZ:
		err = cpu.need(1, 0)
		if err != nil {
			return
		}
		var target int
		target, err = cpu.resolve(args[0])
		if err != nil {
			return
		}
		a, _ := cpu.Data.Pop()
		if (a.Sign() == 0) == (op == OP_JZ) {
			cpu.pc = At(target)
		} else {
			cpu.pc = cpu.pc.Next()
		}
		return
	case OP_CALL:
		var target int
		target, err = cpu.resolve(args[0])
		if err != nil {
			return
		}
		cpu.Return.Push(next)
		cpu.pc = At(target)
		return
	case OP_RET:
		if cpu.program == nil {
			err = ErrNoProgram
			return
		}
		err = cpu.need(0, 1)
		if err != nil {
			return
		}
		cpu.pc, _ = cpu.Return.Pop()
		return
	default:
		err = ErrUnrecognized(op.String())
		return
	}

	cpu.pc = cpu.pc.Next()

	return
}

// need checks the stack depths an instruction requires.
func (cpu *Cpu) need(data, ret int) (err error) {
	if cpu.Data.Len() < data {
		err = ErrUnderflow{Stack: DATA_STACK, Need: data}
		return
	}
	if cpu.Return.Len() < ret {
		err = ErrUnderflow{Stack: RETURN_STACK, Need: ret}
		return
	}

	return
}

// resolve looks up a jump label in the loaded program.
func (cpu *Cpu) resolve(label string) (index int, err error) {
	if cpu.program == nil {
		err = ErrNoProgram
		return
	}

	index, ok := cpu.program.Label(label)
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	return
}

// doAlu performs the arithmetic for an operation; a is the first value
// popped, b the second.
func doAlu(op Op, a, b starlark.Int) (output starlark.Int) {
	switch op {
	case OP_ADD:
		output = a.Add(b)
	case OP_SUB:
		output = b.Sub(a)
	case OP_AND:
		output = a.And(b)
	case OP_OR:
		output = a.Or(b)
	case OP_XOR:
		output = a.Xor(b)
	case OP_NOT:
		output = a.Not()
	case OP_SHL:
		output = a.Lsh(1)
	case OP_SHR:
		output = a.Rsh(1)
	}

	return
}

// State returns a snapshot of the CPU, previewing at most limit entries
// of each stack.
func (cpu *Cpu) State(limit int) (state State) {
	state = State{
		Data:   cpu.Data.Preview(limit),
		Return: cpu.Return.Preview(limit),
		Pc:     cpu.pc,
	}
	state.Instruction, state.Fetchable = cpu.Current()

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return cpu.State(PREVIEW_LIMIT).String()
}

func (state State) String() (text string) {
	text = fmt.Sprintf("Data Stack:    %v\n", state.Data)
	text += fmt.Sprintf("Return Stack:  %v\n", state.Return)
	if state.Fetchable {
		text += fmt.Sprintf("Program Counter:  %v\t\tInstruction:  %v\n", state.Pc, state.Instruction.Text)
	} else {
		text += fmt.Sprintf("Program Counter:  %v\n", state.Pc)
	}

	return
}
