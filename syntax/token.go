package syntax

// Token represents a single lexical token as delivered by the scanner.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The textual attribute of the token: the spelling of an identifier or the
	// decimal digits of a number.  It is empty for all other kinds.
	Value string
}

// Enumeration of token kinds.  The numeric values are the codes used in token
// files produced by the scanner and must not be reordered.
const (
	TOK_SKIP = iota + 1
	TOK_IDENT
	TOK_NUMBER
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ
	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_SEMI
	TOK_PERIOD
	TOK_BECOMES
	TOK_BEGIN
	TOK_END
	TOK_IF
	TOK_FI
	TOK_THEN
	TOK_WHILE
	TOK_DO
	TOK_CALL
	TOK_CONST
	TOK_VAR
	TOK_PROCEDURE
	TOK_WRITE
	TOK_READ
	TOK_ELSE
	TOK_EVEN
)

// TOK_EOF is the sentinel kind returned when the token stream is exhausted.
// It never appears in a token file.
const TOK_EOF = -1

// hasAttribute returns whether tokens of the given kind carry a text attribute.
func hasAttribute(kind int) bool {
	return kind == TOK_IDENT || kind == TOK_NUMBER
}

// tokenNames is used to display token kinds in diagnostics and tests.
var tokenNames = map[int]string{
	TOK_SKIP:      "skip",
	TOK_IDENT:     "identifier",
	TOK_NUMBER:    "number",
	TOK_PLUS:      "+",
	TOK_MINUS:     "-",
	TOK_STAR:      "*",
	TOK_SLASH:     "/",
	TOK_EQ:        "=",
	TOK_NEQ:       "<>",
	TOK_LT:        "<",
	TOK_LTEQ:      "<=",
	TOK_GT:        ">",
	TOK_GTEQ:      ">=",
	TOK_LPAREN:    "(",
	TOK_RPAREN:    ")",
	TOK_COMMA:     ",",
	TOK_SEMI:      ";",
	TOK_PERIOD:    ".",
	TOK_BECOMES:   ":=",
	TOK_BEGIN:     "begin",
	TOK_END:       "end",
	TOK_IF:        "if",
	TOK_FI:        "fi",
	TOK_THEN:      "then",
	TOK_WHILE:     "while",
	TOK_DO:        "do",
	TOK_CALL:      "call",
	TOK_CONST:     "const",
	TOK_VAR:       "var",
	TOK_PROCEDURE: "procedure",
	TOK_WRITE:     "write",
	TOK_READ:      "read",
	TOK_ELSE:      "else",
	TOK_EVEN:      "even",
	TOK_EOF:       "end of file",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "unknown"
}
