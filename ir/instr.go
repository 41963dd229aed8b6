package ir

// Opcode is a PM/0 instruction opcode.
type Opcode int

// Enumeration of opcodes.  The numeric values are written to object files.
const (
	LIT Opcode = iota + 1 // Push the literal M.
	OPR                   // Arithmetic or relational operation selected by M.
	LOD                   // Push the data cell at offset M.
	STO                   // Pop into the data cell at offset M.
	CAL                   // Call the procedure at M.
	INC                   // Allocate M cells for the activation record.
	JMP                   // Jump to M.
	JPC                   // Pop and jump to M if the value is zero.
	SYS                   // System call selected by M.
)

var opNames = map[Opcode]string{
	LIT: "LIT",
	OPR: "OPR",
	LOD: "LOD",
	STO: "STO",
	CAL: "CAL",
	INC: "INC",
	JMP: "JMP",
	JPC: "JPC",
	SYS: "SYS",
}

// Mnemonic returns the listing mnemonic of the opcode or UNK if the opcode is
// not recognized.
func (op Opcode) Mnemonic() string {
	if name, ok := opNames[op]; ok {
		return name
	}

	return "UNK"
}

func (op Opcode) String() string {
	return op.Mnemonic()
}

// Enumeration of OPR modifiers.
const (
	OPR_RET = iota
	OPR_ADD
	OPR_SUB
	OPR_MUL
	OPR_DIV
	OPR_EQL
	OPR_NEQ
	OPR_LSS
	OPR_LEQ
	OPR_GTR
	OPR_GEQ
	OPR_EVEN
)

// Enumeration of SYS modifiers.
const (
	SYS_WRITE = iota + 1 // Pop and print the top of the stack.
	SYS_READ             // Read an integer and push it.
	SYS_HALT             // Stop the machine.
)

// DataStart is the offset of the first variable in an activation record: the
// cells below it are reserved for the runtime.
const DataStart = 3

// Instruction is a single PM/0 instruction.
type Instruction struct {
	Op Opcode

	// L is the lexical level delta.  Always 0 for code generated here.
	L int

	// M is the modifier: a literal, an address, an operation selector or a
	// jump target depending on the opcode.
	M int
}
