package syntax

import (
	"pl0c/ir"
	"pl0c/report"
	"pl0c/sem"
)

// relOps maps each relational operator to the OPR modifier implementing it.
var relOps = map[int]int{
	TOK_EQ:   ir.OPR_EQL,
	TOK_NEQ:  ir.OPR_NEQ,
	TOK_LT:   ir.OPR_LSS,
	TOK_LTEQ: ir.OPR_LEQ,
	TOK_GT:   ir.OPR_GTR,
	TOK_GTEQ: ir.OPR_GEQ,
}

// condition := 'even' expr | expr rel_op expr ;
// rel_op := '=' | '<>' | '<' | '<=' | '>' | '>=' ;
func (p *Parser) parseCondition() error {
	if p.got(TOK_EVEN) {
		p.cur.Advance()

		if err := p.parseExpr(); err != nil {
			return err
		}

		_, err := p.emit(ir.OPR, ir.OPR_EVEN)
		return err
	}

	if err := p.parseExpr(); err != nil {
		return err
	}

	oprMod, ok := relOps[p.cur.Peek()]
	if !ok {
		return p.fail(report.KindSyntax, MsgNeedsRelOp)
	}
	p.cur.Advance()

	if err := p.parseExpr(); err != nil {
		return err
	}

	_, err := p.emit(ir.OPR, oprMod)
	return err
}

// expr := ['+' | '-'] term {('+' | '-') term} ;
//
// A leading minus is generated as `0 - term`.
func (p *Parser) parseExpr() error {
	if p.gotOneOf(TOK_PLUS, TOK_MINUS) {
		sign := p.cur.Advance()

		if sign == TOK_MINUS {
			if _, err := p.emit(ir.LIT, 0); err != nil {
				return err
			}

			if err := p.parseTerm(); err != nil {
				return err
			}

			if _, err := p.emit(ir.OPR, ir.OPR_SUB); err != nil {
				return err
			}
		} else if err := p.parseTerm(); err != nil {
			return err
		}
	} else if err := p.parseTerm(); err != nil {
		return err
	}

	for p.gotOneOf(TOK_PLUS, TOK_MINUS) {
		op := p.cur.Advance()

		if err := p.parseTerm(); err != nil {
			return err
		}

		oprMod := ir.OPR_ADD
		if op == TOK_MINUS {
			oprMod = ir.OPR_SUB
		}

		if _, err := p.emit(ir.OPR, oprMod); err != nil {
			return err
		}
	}

	return nil
}

// term := factor {('*' | '/') factor} ;
func (p *Parser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}

	for p.gotOneOf(TOK_STAR, TOK_SLASH) {
		op := p.cur.Advance()

		if err := p.parseFactor(); err != nil {
			return err
		}

		oprMod := ir.OPR_MUL
		if op == TOK_SLASH {
			oprMod = ir.OPR_DIV
		}

		if _, err := p.emit(ir.OPR, oprMod); err != nil {
			return err
		}
	}

	return nil
}

// factor := 'IDENT' | 'NUMBER' | '(' expr ')' ;
//
// Constants are folded into a literal push at each use.
func (p *Parser) parseFactor() error {
	switch p.cur.Peek() {
	case TOK_IDENT:
		ndx, ok := p.symtab.Lookup(p.cur.PeekValue())
		if !ok {
			return p.fail(report.KindReference, MsgUndeclared)
		}
		p.cur.Advance()

		sym := p.symtab.Get(ndx)
		var err error
		if sym.Kind == sem.SymConst {
			_, err = p.emit(ir.LIT, sym.Value)
		} else {
			_, err = p.emit(ir.LOD, sym.Addr)
		}

		return err
	case TOK_NUMBER:
		value, err := p.parseNumber()
		if err != nil {
			return err
		}

		_, err = p.emit(ir.LIT, value)
		return err
	case TOK_LPAREN:
		p.cur.Advance()

		if err := p.parseExpr(); err != nil {
			return err
		}

		return p.want(TOK_RPAREN, MsgNeedsRParen)
	}

	return p.fail(report.KindSyntax, MsgNeedsOperand)
}
