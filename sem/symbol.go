package sem

// Symbol represents a declared name: a constant or a variable.
type Symbol struct {
	// The kind of the symbol.  This must be one of the enumerated symbol kinds.
	Kind int

	// The name of the symbol, truncated to the significant length.
	Name string

	// The value of a constant.  Zero for variables.
	Value int

	// The lexical level of the declaration.  Always 0: there are no nested
	// scopes.
	Level int

	// The data area offset of a variable.  Zero for constants.
	Addr int

	// Whether the symbol has gone out of scope.
	Retired bool
}

// Enumeration of symbol kinds.  The values are those shown in listings.
const (
	SymConst = iota + 1
	SymVar
	SymProc
)

// Mark returns the symbol's mark as shown in listings: 0 while the symbol is
// available and 1 once it has been retired.
func (s *Symbol) Mark() int {
	if s.Retired {
		return 1
	}

	return 0
}

// KindName returns a human readable name for the symbol's kind.
func (s *Symbol) KindName() string {
	switch s.Kind {
	case SymConst:
		return "const"
	case SymVar:
		return "var"
	case SymProc:
		return "procedure"
	default:
		return "unknown"
	}
}
