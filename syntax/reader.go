package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"pl0c/report"
)

// ReadTokens reads a token file: a whitespace-separated sequence of numeric
// token kinds, each identifier and number kind followed by its attribute.
// Reading stops at the first field that is not a token kind and a warning is
// reported.  A missing attribute at the end of the input leaves the attribute
// empty.
func ReadTokens(r io.Reader) ([]*Token, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var toks []*Token
	for sc.Scan() {
		kind, err := strconv.Atoi(sc.Text())
		if err != nil {
			report.ReportWarning("token file: stopped reading at `%s` after %d tokens", sc.Text(), len(toks))
			break
		}

		tok := &Token{Kind: kind}
		if hasAttribute(kind) && sc.Scan() {
			tok.Value = sc.Text()
		}

		toks = append(toks, tok)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	return toks, nil
}
