// Package cpu implements the stack processor and assembler for the stackproc system.
//
// The processor consists of a program counter (Pc), a data stack of
// arbitrary-precision integers, and a return stack of saved program
// counters. A halted counter is a distinct value, never an index.
//
// The assembler turns line-oriented source text into an immutable Program,
// resolving labels to instruction indexes and collecting, rather than
// stopping on, syntax errors.
package cpu
