package cpu

import (
	"math/big"
	"strings"

	"go.starlark.net/starlark"
)

// Op is a processor operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD     = Op(0)  // ADD
	OP_SUB     = Op(1)  // SUB
	OP_AND     = Op(2)  // AND
	OP_OR      = Op(3)  // OR
	OP_NOT     = Op(4)  // NOT
	OP_XOR     = Op(5)  // XOR
	OP_SHL     = Op(6)  // SHL
	OP_SHR     = Op(7)  // SHR
	OP_DUP     = Op(8)  // DUP
	OP_SWAP    = Op(9)  // SWAP
	OP_DROP    = Op(10) // DROP
	OP_TO_RS   = Op(11) // TO_RS
	OP_FROM_RS = Op(12) // FROM_RS
	OP_RET     = Op(13) // RET
	OP_LIT     = Op(14) // LIT
	OP_JMP     = Op(15) // JMP
	OP_JZ      = Op(16) // JZ
	OP_JNZ     = Op(17) // JNZ
	OP_CALL    = Op(18) // CALL

	OP_COUNT = 19 // Number of operations.
)

// opMap maps upper-case mnemonics to operations.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, OP_COUNT)
	for op := range Op(OP_COUNT) {
		ops[op.String()] = op
	}
	return ops
}()

// Arity returns the number of operands the operation takes.
func (op Op) Arity() int {
	if op >= OP_LIT {
		return 1
	}
	return 0
}

// Labelled returns true if the operand of the operation is a jump label.
func (op Op) Labelled() bool {
	switch op {
	case OP_JMP, OP_JZ, OP_JNZ, OP_CALL:
		return true
	}
	return false
}

// LookupOp finds an operation by mnemonic, ignoring case.
func LookupOp(name string) (op Op, ok bool) {
	op, ok = opMap[strings.ToUpper(name)]
	return
}

// Decode splits an instruction into its operation and operands, and
// checks the operand count.
func Decode(text string) (op Op, args []string, err error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := LookupOp(words[0])
	if !ok {
		err = ErrUnrecognized(strings.ToUpper(words[0]))
		return
	}

	args = words[1:]
	switch {
	case len(args) > op.Arity():
		err = ErrOpcodeExtraArgs
	case len(args) < op.Arity():
		err = ErrOpcodeValueMissing
	}

	return
}

// ParseLiteral parses a base-10 signed integer of any size.
func ParseLiteral(word string) (value starlark.Int, err error) {
	v, ok := new(big.Int).SetString(word, 10)
	if !ok {
		err = ErrParseNumber(word)
		return
	}

	value = starlark.MakeBigInt(v)
	return
}
