package sem

import (
	"unicode/utf8"

	"pl0c/common"
	"pl0c/report"
)

// Diagnostics raised by the symbol table.
const (
	MsgAlreadyDeclared = "Error: symbol name has already been declared"
	MsgTableOverflow   = "Symbol table overflow"
)

// SymbolTable is the flat, insertion-ordered table of every name declared in
// a program.  Entries are never removed: going out of scope only retires them.
// At most one active entry exists for any name.
type SymbolTable struct {
	// symbols is the list of entries in declaration order.
	symbols []*Symbol

	// capacity is the maximum number of entries the table may hold.
	capacity int
}

// NewSymbolTable creates a new symbol table holding at most capacity entries.
func NewSymbolTable(capacity int) *SymbolTable {
	return &SymbolTable{capacity: capacity}
}

// TruncateName cuts a name down to its significant bytes.  A multibyte
// character straddling the limit is dropped whole so the name stays valid
// UTF-8.
func TruncateName(name string) string {
	if len(name) <= common.MaxNameLength {
		return name
	}

	end := common.MaxNameLength
	for end > 0 && !utf8.RuneStart(name[end]) {
		end--
	}

	return name[:end]
}

// Lookup returns the index of the first active entry with the given name.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	name = TruncateName(name)

	for i, sym := range st.symbols {
		if !sym.Retired && sym.Name == name {
			return i, true
		}
	}

	return -1, false
}

// Get returns the entry at the given index.
func (st *SymbolTable) Get(ndx int) *Symbol {
	return st.symbols[ndx]
}

// InsertConst declares a new constant.
func (st *SymbolTable) InsertConst(name string, value int) (*Symbol, error) {
	return st.insert(&Symbol{Kind: SymConst, Name: TruncateName(name), Value: value})
}

// InsertVar declares a new variable stored at the given address.
func (st *SymbolTable) InsertVar(name string, addr int) (*Symbol, error) {
	return st.insert(&Symbol{Kind: SymVar, Name: TruncateName(name), Addr: addr})
}

func (st *SymbolTable) insert(sym *Symbol) (*Symbol, error) {
	if _, ok := st.Lookup(sym.Name); ok {
		return nil, report.Raise(report.KindDeclaration, -1, MsgAlreadyDeclared)
	}

	if len(st.symbols) >= st.capacity {
		return nil, report.RaiseLimit(MsgTableOverflow)
	}

	st.symbols = append(st.symbols, sym)
	return sym, nil
}

// RetireAll takes every entry out of scope.  Calling it again has no effect.
func (st *SymbolTable) RetireAll() {
	for _, sym := range st.symbols {
		sym.Retired = true
	}
}

// Symbols returns all entries in declaration order.
func (st *SymbolTable) Symbols() []*Symbol {
	return st.symbols
}

// Len returns the number of entries in the table.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
