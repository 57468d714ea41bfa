package scanner

import (
	"fmt"

	"github.com/saibing/gors/internal/token"
)

// IllegalToken is returned when the scanner encounters a code point that
// cannot begin any token (spec §4.2, §7).
type IllegalToken struct {
	At   token.Position
	Char rune
}

func (e *IllegalToken) Error() string {
	return fmt.Sprintf("scanner error: illegal character %q at %s", e.Char, e.At)
}

// UnterminatedLiteral is returned for an unclosed `"…"`, `` `…` ``, `'…'`, or
// `/* … */` (spec §4.2, §7).
type UnterminatedLiteral struct {
	At   token.Position
	Kind string // "string", "raw string", "rune", or "comment"
}

func (e *UnterminatedLiteral) Error() string {
	return fmt.Sprintf("scanner error: unterminated %s literal at %s", e.Kind, e.At)
}

// InvalidEscape is returned for a malformed escape sequence inside a string
// or rune literal (spec §7).
type InvalidEscape struct {
	At   token.Position
	Char rune
}

func (e *InvalidEscape) Error() string {
	return fmt.Sprintf("scanner error: invalid escape sequence %q at %s", e.Char, e.At)
}
