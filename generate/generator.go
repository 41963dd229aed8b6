package generate

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	pm "pl0c/ir"
)

// Names of the runtime functions the generated module expects to be linked
// against.
const (
	ReadFuncName  = "pl0_read"
	WriteFuncName = "pl0_write"
)

// stackSize is the number of cells in the operand stack of the generated
// program.
const stackSize = 500

// Generator lowers a PM/0 instruction list into an LLVM module.  Every
// instruction becomes its own basic block so that any instruction address can
// be the target of a jump.  The operand stack and the data area are arrays
// allocated in the entry block of `main`.
type Generator struct {
	// code is the PM/0 program being lowered.
	code []pm.Instruction

	// mod is the LLVM module being generated.
	mod *ir.Module

	// readFunc and writeFunc are the runtime I/O functions.
	readFunc, writeFunc *ir.Func

	// stackType and dataType are the types of the operand stack and data area.
	stackType, dataType types.Type

	// stack, sp and data are the storage allocated in `main`.
	stack, sp, data value.Value

	// blocks holds the block generated for each instruction.
	blocks []*ir.Block

	// exitBlock is the block that returns from `main`.
	exitBlock *ir.Block
}

// NewGenerator creates a new generator for the given program.
func NewGenerator(code []pm.Instruction) *Generator {
	return &Generator{
		code: code,
		mod:  ir.NewModule(),
	}
}

// Generate lowers the program and returns the resulting module.
func (g *Generator) Generate() (*ir.Module, error) {
	g.readFunc = g.mod.NewFunc(ReadFuncName, types.I64)
	g.writeFunc = g.mod.NewFunc(WriteFuncName, types.Void, ir.NewParam("v", types.I64))

	mainFunc := g.mod.NewFunc("main", types.I32)
	entry := mainFunc.NewBlock("entry")

	g.stackType = types.NewArray(stackSize, types.I64)
	g.dataType = types.NewArray(uint64(g.dataSize()), types.I64)

	g.stack = entry.NewAlloca(g.stackType)
	g.data = entry.NewAlloca(g.dataType)
	g.sp = entry.NewAlloca(types.I64)
	entry.NewStore(constant.NewInt(types.I64, 0), g.sp)

	g.blocks = make([]*ir.Block, len(g.code))
	for i := range g.code {
		g.blocks[i] = mainFunc.NewBlock(fmt.Sprintf("i%d", i))
	}

	g.exitBlock = mainFunc.NewBlock("exit")
	g.exitBlock.NewRet(constant.NewInt(types.I32, 0))

	entry.NewBr(g.target(0))

	for i, instr := range g.code {
		if err := g.genInstr(i, instr); err != nil {
			return nil, err
		}
	}

	return g.mod, nil
}

// dataSize computes the size of the data area: the largest activation record
// allocated by the program.
func (g *Generator) dataSize() int {
	size := pm.DataStart
	for _, instr := range g.code {
		if instr.Op == pm.INC && instr.M > size {
			size = instr.M
		}
	}

	return size
}

// target returns the block to branch to for a given instruction address.
// Addresses past the end of the program exit.
func (g *Generator) target(addr int) *ir.Block {
	if addr >= 0 && addr < len(g.blocks) {
		return g.blocks[addr]
	}

	return g.exitBlock
}

// -----------------------------------------------------------------------------

var one = constant.NewInt(types.I64, 1)

// push pushes v onto the operand stack.
func (g *Generator) push(block *ir.Block, v value.Value) {
	top := block.NewLoad(types.I64, g.sp)
	slot := block.NewGetElementPtr(g.stackType, g.stack, constant.NewInt(types.I64, 0), top)
	block.NewStore(v, slot)
	block.NewStore(block.NewAdd(top, one), g.sp)
}

// pop pops the operand stack and returns the popped value.
func (g *Generator) pop(block *ir.Block) value.Value {
	top := block.NewSub(block.NewLoad(types.I64, g.sp), one)
	block.NewStore(top, g.sp)
	slot := block.NewGetElementPtr(g.stackType, g.stack, constant.NewInt(types.I64, 0), top)
	return block.NewLoad(types.I64, slot)
}

// cell returns a pointer to the data cell at addr.
func (g *Generator) cell(block *ir.Block, addr int) value.Value {
	return block.NewGetElementPtr(
		g.dataType,
		g.data,
		constant.NewInt(types.I64, 0),
		constant.NewInt(types.I64, int64(addr)),
	)
}
