package cpu

import (
	"go.starlark.net/starlark"
)

// Pc is a program counter: either Halted, or an address.
//
// An address is any integer, including ones outside the loaded program;
// only the processor decides whether it can be fetched from.
type Pc struct {
	at     starlark.Int
	active bool
}

// Halted is the program counter that will never execute an instruction.
var Halted = Pc{}

// At returns the program counter for an instruction index.
func At(index int) Pc {
	return Pc{at: starlark.MakeInt(index), active: true}
}

// Address returns the program counter for an arbitrary integer, as moved
// from the data stack to the return stack.
func Address(value starlark.Int) Pc {
	return Pc{at: value, active: true}
}

// Halted returns true if no further instruction will execute.
func (pc Pc) Halted() bool {
	return !pc.active
}

// Value returns the address of an active program counter.
func (pc Pc) Value() (value starlark.Int, ok bool) {
	if !pc.active {
		return
	}

	return pc.at, true
}

// Index returns the address as an int, if it is active and fits.
func (pc Pc) Index() (index int, ok bool) {
	if !pc.active {
		return
	}

	i64, ok := pc.at.Int64()
	if !ok || int64(int(i64)) != i64 {
		ok = false
		return
	}

	return int(i64), true
}

// Next returns the fall-through program counter. Halted stays halted.
func (pc Pc) Next() Pc {
	if !pc.active {
		return Halted
	}

	return Pc{at: pc.at.Add(starlark.MakeInt(1)), active: true}
}

func (pc Pc) String() string {
	if !pc.active {
		return "STOP"
	}

	return pc.at.String()
}
