package syntax

import (
	"strconv"

	"pl0c/ir"
	"pl0c/report"
)

// program := block '.' ;
func (p *Parser) parseProgram() error {
	if p.entryJump {
		jmpNdx, err := p.emit(ir.JMP, 0)
		if err != nil {
			return err
		}

		p.em.Patch(jmpNdx, p.em.CurrentIndex())
	}

	if err := p.parseBlock(); err != nil {
		return err
	}

	if err := p.want(TOK_PERIOD, MsgMissingPeriod); err != nil {
		return err
	}

	// the program block is the only scope: it closes here
	p.symtab.RetireAll()

	_, err := p.emit(ir.SYS, ir.SYS_HALT)
	return err
}

// block := [const_decl] [var_decl] stmt ;
func (p *Parser) parseBlock() error {
	if err := p.parseConstDecl(); err != nil {
		return err
	}

	nvars, err := p.parseVarDecl()
	if err != nil {
		return err
	}

	if _, err := p.emit(ir.INC, ir.DataStart+nvars); err != nil {
		return err
	}

	return p.parseStmt()
}

// const_decl := 'const' const_def {',' const_def} ';' ;
// const_def := 'IDENT' '=' 'NUMBER' ;
func (p *Parser) parseConstDecl() error {
	if !p.got(TOK_CONST) {
		return nil
	}
	p.cur.Advance()

	for {
		if !p.got(TOK_IDENT) {
			return p.fail(report.KindSyntax, MsgExpectedIdent)
		}
		p.cur.Advance()
		name := p.cur.LastValue()

		if _, ok := p.symtab.Lookup(name); ok {
			return p.fail(report.KindDeclaration, MsgAlreadyDeclared)
		}

		if err := p.want(TOK_EQ, MsgConstNeedsEq); err != nil {
			return err
		}

		if !p.got(TOK_NUMBER) {
			return p.fail(report.KindSyntax, MsgConstNeedsInt)
		}

		value, err := p.parseNumber()
		if err != nil {
			return err
		}

		if _, err := p.symtab.InsertConst(name, value); err != nil {
			return p.at(err)
		}

		if !p.got(TOK_COMMA) {
			break
		}
		p.cur.Advance()
	}

	return p.want(TOK_SEMI, MsgDeclNeedsSemi)
}

// var_decl := 'var' 'IDENT' {',' 'IDENT'} ';' ;
//
// Variables are given consecutive data addresses after the reserved cells, in
// declaration order.  The number of variables declared is returned.
func (p *Parser) parseVarDecl() (int, error) {
	if !p.got(TOK_VAR) {
		return 0, nil
	}
	p.cur.Advance()

	nvars := 0
	for {
		if !p.got(TOK_IDENT) {
			return 0, p.fail(report.KindSyntax, MsgExpectedIdent)
		}
		p.cur.Advance()
		name := p.cur.LastValue()

		if _, ok := p.symtab.Lookup(name); ok {
			return 0, p.fail(report.KindDeclaration, MsgAlreadyDeclared)
		}

		if _, err := p.symtab.InsertVar(name, ir.DataStart+nvars); err != nil {
			return 0, p.at(err)
		}
		nvars++

		if !p.got(TOK_COMMA) {
			break
		}
		p.cur.Advance()
	}

	return nvars, p.want(TOK_SEMI, MsgDeclNeedsSemi)
}

// parseNumber consumes a number token and returns its value.
func (p *Parser) parseNumber() (int, error) {
	ndx := p.cur.Index()
	p.cur.Advance()

	value, err := strconv.Atoi(p.cur.LastValue())
	if err != nil {
		return 0, report.Raise(report.KindLexical, ndx, MsgBadNumber)
	}

	return value, nil
}
