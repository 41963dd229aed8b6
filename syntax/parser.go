package syntax

import (
	"errors"

	"pl0c/common"
	"pl0c/ir"
	"pl0c/report"
	"pl0c/sem"
)

// NOTE: All parsing functions are commented with the EBNF notation of the
// grammar they parse.  Every parsing function assumes the cursor is positioned
// on the first token of its production and leaves it on the first token after
// the production.  Code is generated as the productions are recognized: there
// is no syntax tree.

// Diagnostics raised by the parser.
const (
	MsgSkipPresent        = "Error: Scanning error detected by lexer (skipsym present)"
	MsgBadNumber          = "Error: Scanning error detected by lexer (invalid number literal)"
	MsgMissingPeriod      = "Error: program must end with period"
	MsgExpectedIdent      = "Error: const, var, and read keywords must be followed by identifier"
	MsgAlreadyDeclared    = sem.MsgAlreadyDeclared
	MsgConstNeedsEq       = "Error: constants must be assigned with ="
	MsgConstNeedsInt      = "Error: constants must be assigned an integer value"
	MsgDeclNeedsSemi      = "Error: constant and variable declarations must be followed by a semicolon"
	MsgUndeclared         = "Error: undeclared identifier"
	MsgNotVariable        = "Error: only variable values may be altered"
	MsgAssignNeedsBecomes = "Error: assignment statements must use :="
	MsgBeginNeedsEnd      = "Error: begin must be followed by end"
	MsgIfNeedsThen        = "Error: if must be followed by then"
	MsgThenNeedsFi        = "Error: then must be followed by fi"
	MsgWhileNeedsDo       = "Error: while must be followed by do"
	MsgNeedsRelOp         = "Error: condition must contain comparison operator"
	MsgNeedsRParen        = "Error: right parenthesis must follow left parenthesis"
	MsgNeedsOperand       = "Error: arithmetic equations must contain operands, parentheses, numbers, or symbols"
)

// Parser is a single-pass recursive descent parser which generates PM/0 code
// as it recognizes the program.  It declares and looks up names in the symbol
// table as it goes.  The first violation of the grammar or of the naming rules
// ends the pass: parsing functions return it and every caller returns it
// unchanged.  A parser is used for one program.
type Parser struct {
	// cur is the cursor over the token stream being parsed.
	cur *Cursor

	// symtab is the table of declared names.
	symtab *sem.SymbolTable

	// em receives the generated instructions.
	em *ir.Emitter

	// entryJump indicates whether a jump to the program block is emitted
	// before the block itself.
	entryJump bool
}

// NewParser creates a new parser over toks which declares names in symtab and
// emits code into em.
func NewParser(toks []*Token, symtab *sem.SymbolTable, em *ir.Emitter) *Parser {
	return &Parser{
		cur:    NewCursor(toks),
		symtab: symtab,
		em:     em,
	}
}

// EnableEntryJump makes the parser emit a jump to the program block ahead of
// all other code.
func (p *Parser) EnableEntryJump() {
	p.entryJump = true
}

// Parse checks the token stream for scanning errors and then parses the whole
// program.  On success the symbol table holds every declared name (retired)
// and the emitter holds the complete program ending with a halt.
func (p *Parser) Parse() error {
	for i, tok := range p.cur.toks {
		if tok.Kind == TOK_SKIP {
			return report.Raise(report.KindLexical, i, MsgSkipPresent)
		}
	}

	return p.parseProgram()
}

// -----------------------------------------------------------------------------

// Options configures a compilation.
type Options struct {
	// The capacity of the symbol table.
	MaxSymbols int

	// The capacity of the code buffer.
	MaxCode int

	// Whether to emit a jump to the program block ahead of all other code.
	EntryJump bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxSymbols: common.DefaultMaxSymbols,
		MaxCode:    common.DefaultMaxCode,
	}
}

// Result is the output of a successful compilation.
type Result struct {
	Code    []ir.Instruction
	Symbols []*sem.Symbol
}

// Compile parses toks and returns the generated code and symbol table.  No
// partial result is returned on failure.
func Compile(toks []*Token, opts Options) (*Result, error) {
	symtab := sem.NewSymbolTable(opts.MaxSymbols)
	em := ir.NewEmitter(opts.MaxCode)

	p := NewParser(toks, symtab, em)
	if opts.EntryJump {
		p.EnableEntryJump()
	}

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return &Result{Code: em.Code(), Symbols: symtab.Symbols()}, nil
}

// -----------------------------------------------------------------------------

// got returns true if the next token is of the given kind.
func (p *Parser) got(kind int) bool {
	return p.cur.Peek() == kind
}

// gotOneOf returns true if the next token is one of the given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	next := p.cur.Peek()
	for _, kind := range kinds {
		if next == kind {
			return true
		}
	}

	return false
}

// want consumes the next token if it is of the given kind.  Otherwise it
// returns a syntax error with the given message.
func (p *Parser) want(kind int, msg string) error {
	if !p.got(kind) {
		return p.fail(report.KindSyntax, msg)
	}

	p.cur.Advance()
	return nil
}

// fail creates an error positioned on the next token.
func (p *Parser) fail(kind report.ErrorKind, msg string) error {
	return report.Raise(kind, p.cur.Index(), msg)
}

// at positions an error from another component on the next token.
func (p *Parser) at(err error) error {
	var cerr *report.CompileError
	if errors.As(err, &cerr) && cerr.TokenIndex < 0 && !cerr.IsInternal() {
		cerr.TokenIndex = p.cur.Index()
	}

	return err
}

// emit appends an instruction at lexical level 0 and returns its address.
func (p *Parser) emit(op ir.Opcode, m int) (int, error) {
	return p.em.Emit(op, 0, m)
}

// lookupVar looks up the name about to be stored into and checks that it
// denotes a variable.
func (p *Parser) lookupVar(name string) (*sem.Symbol, error) {
	ndx, ok := p.symtab.Lookup(name)
	if !ok {
		return nil, p.fail(report.KindReference, MsgUndeclared)
	}

	sym := p.symtab.Get(ndx)
	if sym.Kind != sem.SymVar {
		return nil, p.fail(report.KindReference, MsgNotVariable)
	}

	return sym, nil
}
