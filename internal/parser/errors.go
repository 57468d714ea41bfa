package parser

import (
	"fmt"

	"github.com/saibing/gors/internal/token"
)

// errUnexpected is the bare sentinel every internal production returns when
// it sees a token it cannot continue on. Parse, the single outermost catch
// site (spec §7), enriches it with the offending position/token/lexeme
// before it ever reaches a caller.
var errUnexpected = fmt.Errorf("unexpected token")

// errUnexpectedEOF is the bare sentinel a production returns when it runs
// out of input mid-construct.
var errUnexpectedEOF = fmt.Errorf("unexpected end of file")

// UnexpectedEndOfFile reports that the token stream ended while the parser
// still expected more input, e.g. an unclosed "{" (spec §7).
type UnexpectedEndOfFile struct {
	At      token.Position
	Context string
}

func (e *UnexpectedEndOfFile) Error() string {
	return fmt.Sprintf("%s: unexpected end of file while parsing %s", e.At, e.Context)
}

// UnexpectedTokenAt reports that the parser found a token it could not fit
// into the current production (spec §7).
type UnexpectedTokenAt struct {
	At      token.Position
	Tok     token.Token
	Lit     string
	Context string
}

func (e *UnexpectedTokenAt) Error() string {
	if e.Lit != "" {
		return fmt.Sprintf("%s: unexpected %s %q while parsing %s", e.At, e.Tok, e.Lit, e.Context)
	}
	return fmt.Sprintf("%s: unexpected %s while parsing %s", e.At, e.Tok, e.Context)
}
