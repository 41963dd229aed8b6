package syntax

import (
	"pl0c/ir"
	"pl0c/report"
)

// stmt := assign_stmt | begin_stmt | if_stmt | while_stmt | read_stmt
//       | write_stmt | empty ;
//
// Any lookahead that does not start a statement is taken as the empty
// statement: nothing is consumed and nothing is emitted.
func (p *Parser) parseStmt() error {
	switch p.cur.Peek() {
	case TOK_IDENT:
		return p.parseAssignStmt()
	case TOK_BEGIN:
		return p.parseBeginStmt()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_READ:
		return p.parseReadStmt()
	case TOK_WRITE:
		return p.parseWriteStmt()
	}

	return nil
}

// assign_stmt := 'IDENT' ':=' expr ;
func (p *Parser) parseAssignStmt() error {
	sym, err := p.lookupVar(p.cur.PeekValue())
	if err != nil {
		return err
	}
	p.cur.Advance()

	if err := p.want(TOK_BECOMES, MsgAssignNeedsBecomes); err != nil {
		return err
	}

	if err := p.parseExpr(); err != nil {
		return err
	}

	_, err = p.emit(ir.STO, sym.Addr)
	return err
}

// begin_stmt := 'begin' stmt {';' stmt} 'end' ;
func (p *Parser) parseBeginStmt() error {
	p.cur.Advance()

	if err := p.parseStmt(); err != nil {
		return err
	}

	for p.got(TOK_SEMI) {
		p.cur.Advance()

		if err := p.parseStmt(); err != nil {
			return err
		}
	}

	return p.want(TOK_END, MsgBeginNeedsEnd)
}

// if_stmt := 'if' condition 'then' stmt 'fi' ;
//
// The conditional jump emitted after the condition is patched to the first
// address after the statement once `fi` is reached.
func (p *Parser) parseIfStmt() error {
	p.cur.Advance()

	if err := p.parseCondition(); err != nil {
		return err
	}

	jpcNdx, err := p.emit(ir.JPC, 0)
	if err != nil {
		return err
	}

	if err := p.want(TOK_THEN, MsgIfNeedsThen); err != nil {
		return err
	}

	if err := p.parseStmt(); err != nil {
		return err
	}

	if err := p.want(TOK_FI, MsgThenNeedsFi); err != nil {
		return err
	}

	p.em.Patch(jpcNdx, p.em.CurrentIndex())
	return nil
}

// while_stmt := 'while' condition 'do' stmt ;
//
// The loop jumps back to the first instruction of the condition.  The
// conditional jump out of the loop is patched to the first address after the
// backward jump.
func (p *Parser) parseWhileStmt() error {
	p.cur.Advance()

	loopNdx := p.em.CurrentIndex()
	if err := p.parseCondition(); err != nil {
		return err
	}

	if err := p.want(TOK_DO, MsgWhileNeedsDo); err != nil {
		return err
	}

	jpcNdx, err := p.emit(ir.JPC, 0)
	if err != nil {
		return err
	}

	if err := p.parseStmt(); err != nil {
		return err
	}

	if _, err := p.emit(ir.JMP, loopNdx); err != nil {
		return err
	}

	p.em.Patch(jpcNdx, p.em.CurrentIndex())
	return nil
}

// read_stmt := 'read' 'IDENT' ;
func (p *Parser) parseReadStmt() error {
	p.cur.Advance()

	if !p.got(TOK_IDENT) {
		return p.fail(report.KindSyntax, MsgExpectedIdent)
	}

	sym, err := p.lookupVar(p.cur.PeekValue())
	if err != nil {
		return err
	}
	p.cur.Advance()

	if _, err := p.emit(ir.SYS, ir.SYS_READ); err != nil {
		return err
	}

	_, err = p.emit(ir.STO, sym.Addr)
	return err
}

// write_stmt := 'write' expr ;
func (p *Parser) parseWriteStmt() error {
	p.cur.Advance()

	if err := p.parseExpr(); err != nil {
		return err
	}

	_, err := p.emit(ir.SYS, ir.SYS_WRITE)
	return err
}
