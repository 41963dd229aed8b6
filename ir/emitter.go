package ir

import "pl0c/report"

// MsgCodeOverflow is the diagnostic raised when the code buffer is full.
const MsgCodeOverflow = "Internal error: code array overflow"

// Emitter is an append-only buffer of generated instructions.  The index of
// an instruction in the buffer is its address.  Patching the modifier of an
// already emitted jump is the only mutation it allows.
type Emitter struct {
	code     []Instruction
	capacity int
}

// NewEmitter creates a new emitter holding at most capacity instructions.
func NewEmitter(capacity int) *Emitter {
	return &Emitter{capacity: capacity}
}

// Emit appends an instruction and returns its address.
func (e *Emitter) Emit(op Opcode, l, m int) (int, error) {
	if len(e.code) >= e.capacity {
		return -1, report.RaiseLimit(MsgCodeOverflow)
	}

	e.code = append(e.code, Instruction{Op: op, L: l, M: m})
	return len(e.code) - 1, nil
}

// Patch overwrites the modifier of the instruction at ndx.  The index must
// have been returned by a prior call to Emit.
func (e *Emitter) Patch(ndx, m int) {
	e.code[ndx].M = m
}

// CurrentIndex returns the address the next emitted instruction will receive.
func (e *Emitter) CurrentIndex() int {
	return len(e.code)
}

// Code returns the emitted instructions.
func (e *Emitter) Code() []Instruction {
	return e.code
}
