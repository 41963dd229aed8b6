package generate

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	pm "pl0c/ir"
)

// relPreds maps relational OPR modifiers to integer comparison predicates.
var relPreds = map[int]enum.IPred{
	pm.OPR_EQL: enum.IPredEQ,
	pm.OPR_NEQ: enum.IPredNE,
	pm.OPR_LSS: enum.IPredSLT,
	pm.OPR_LEQ: enum.IPredSLE,
	pm.OPR_GTR: enum.IPredSGT,
	pm.OPR_GEQ: enum.IPredSGE,
}

// genInstr generates the block for the instruction at addr.
func (g *Generator) genInstr(addr int, instr pm.Instruction) error {
	block := g.blocks[addr]
	next := g.target(addr + 1)

	switch instr.Op {
	case pm.LIT:
		g.push(block, constant.NewInt(types.I64, int64(instr.M)))
	case pm.OPR:
		if instr.M == pm.OPR_RET {
			block.NewBr(g.exitBlock)
			return nil
		}

		result, err := g.genOpr(addr, instr.M)
		if err != nil {
			return err
		}

		g.push(block, result)
	case pm.LOD:
		g.push(block, block.NewLoad(types.I64, g.cell(block, instr.M)))
	case pm.STO:
		block.NewStore(g.pop(block), g.cell(block, instr.M))
	case pm.INC:
		// the data area is allocated up front in the entry block
	case pm.JMP:
		block.NewBr(g.target(instr.M))
		return nil
	case pm.JPC:
		isZero := block.NewICmp(enum.IPredEQ, g.pop(block), constant.NewInt(types.I64, 0))
		block.NewCondBr(isZero, g.target(instr.M), next)
		return nil
	case pm.SYS:
		switch instr.M {
		case pm.SYS_WRITE:
			block.NewCall(g.writeFunc, g.pop(block))
		case pm.SYS_READ:
			g.push(block, block.NewCall(g.readFunc))
		case pm.SYS_HALT:
			block.NewBr(g.exitBlock)
			return nil
		default:
			return fmt.Errorf("instruction %d: unknown system call %d", addr, instr.M)
		}
	default:
		return fmt.Errorf("instruction %d: cannot lower %s", addr, instr.Op.Mnemonic())
	}

	block.NewBr(next)
	return nil
}

// genOpr generates an arithmetic or relational operation and returns its
// result.  The operands are popped from the operand stack.
func (g *Generator) genOpr(addr, oprMod int) (value.Value, error) {
	block := g.blocks[addr]

	if oprMod == pm.OPR_EVEN {
		rem := block.NewSRem(g.pop(block), constant.NewInt(types.I64, 2))
		isEven := block.NewICmp(enum.IPredEQ, rem, constant.NewInt(types.I64, 0))
		return block.NewZExt(isEven, types.I64), nil
	}

	rhs := g.pop(block)
	lhs := g.pop(block)

	switch oprMod {
	case pm.OPR_ADD:
		return block.NewAdd(lhs, rhs), nil
	case pm.OPR_SUB:
		return block.NewSub(lhs, rhs), nil
	case pm.OPR_MUL:
		return block.NewMul(lhs, rhs), nil
	case pm.OPR_DIV:
		return block.NewSDiv(lhs, rhs), nil
	}

	if pred, ok := relPreds[oprMod]; ok {
		return block.NewZExt(block.NewICmp(pred, lhs, rhs), types.I64), nil
	}

	return nil, fmt.Errorf("instruction %d: unknown operation %d", addr, oprMod)
}
