package syntax

import (
	"testing"
	"unicode"
)

var testKeywords = map[string]int{
	"begin": TOK_BEGIN,
	"end":   TOK_END,
	"if":    TOK_IF,
	"fi":    TOK_FI,
	"then":  TOK_THEN,
	"while": TOK_WHILE,
	"do":    TOK_DO,
	"call":  TOK_CALL,
	"const": TOK_CONST,
	"var":   TOK_VAR,
	"write": TOK_WRITE,
	"read":  TOK_READ,
	"else":  TOK_ELSE,
	"even":  TOK_EVEN,
}

var testSymbols = map[string]int{
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,
	"*":  TOK_STAR,
	"/":  TOK_SLASH,
	"=":  TOK_EQ,
	"<>": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,
	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	",":  TOK_COMMA,
	";":  TOK_SEMI,
	".":  TOK_PERIOD,
	":=": TOK_BECOMES,
	"?":  TOK_SKIP,
}

// scan is a minimal scanner used to write test programs as source text.
func scan(t *testing.T, src string) []*Token {
	t.Helper()

	var toks []*Token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case unicode.IsDigit(c):
			start := i
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			toks = append(toks, &Token{Kind: TOK_NUMBER, Value: string(rs[start:i])})
		case unicode.IsLetter(c):
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
				i++
			}
			word := string(rs[start:i])
			if kind, ok := testKeywords[word]; ok {
				toks = append(toks, &Token{Kind: kind})
			} else {
				toks = append(toks, &Token{Kind: TOK_IDENT, Value: word})
			}
		default:
			if i+1 < len(rs) {
				if kind, ok := testSymbols[string(rs[i:i+2])]; ok {
					toks = append(toks, &Token{Kind: kind})
					i += 2
					continue
				}
			}

			kind, ok := testSymbols[string(c)]
			if !ok {
				t.Fatalf("scan: unexpected character %q", c)
			}
			toks = append(toks, &Token{Kind: kind})
			i++
		}
	}

	return toks
}
