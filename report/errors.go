package report

import "fmt"

// ErrorKind classifies a compile error.  The kinds mirror the stage of the
// pipeline (or the part of the program) responsible for the violation.
type ErrorKind int

// Enumeration of compile error kinds.
const (
	KindLexical     ErrorKind = iota // An unrecognized token reached the parser.
	KindDeclaration                  // A name was declared twice.
	KindReference                    // An undeclared name or a misuse of a constant.
	KindSyntax                       // An expected terminal was missing.
	KindLimits                       // A fixed capacity of the compiler was exceeded.
)

var kindNames = map[ErrorKind]string{
	KindLexical:     "Lexical",
	KindDeclaration: "Declaration",
	KindReference:   "Reference",
	KindSyntax:      "Syntax",
	KindLimits:      "Internal Limits",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// -----------------------------------------------------------------------------

// CompileError is the single error value produced by a failed compilation
// pass.  There is never more than one: the first violation ends the pass.
type CompileError struct {
	// The kind of the error.
	Kind ErrorKind

	// The diagnostic text exactly as it should be shown to the user.
	Message string

	// The index of the token the parser was positioned on when the error was
	// detected.  This is -1 if the error is not tied to a token.
	TokenIndex int
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// IsInternal returns whether the error signals a limitation of the compiler
// rather than a problem with the input program.
func (ce *CompileError) IsInternal() bool {
	return ce.Kind == KindLimits
}

// Raise creates a new compile error positioned on the given token index.
func Raise(kind ErrorKind, tokIndex int, msg string, args ...interface{}) *CompileError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &CompileError{Kind: kind, Message: msg, TokenIndex: tokIndex}
}

// RaiseLimit creates a new internal-limits error.
func RaiseLimit(msg string) *CompileError {
	return &CompileError{Kind: KindLimits, Message: msg, TokenIndex: -1}
}
