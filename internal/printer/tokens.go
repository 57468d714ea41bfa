package printer

import (
	"encoding/json"
	"io"

	"github.com/saibing/gors/internal/scanner"
)

// tokenJSON is the external wire shape of one scanned triple (spec §6):
// the position spelled out field by field rather than as a single string,
// so a consumer never has to re-parse it.
type tokenJSON struct {
	Position positionJSON `json:"position"`
	Kind     string       `json:"kind"`
	Lexeme   string       `json:"lexeme"`
}

type positionJSON struct {
	Filename string `json:"filename"`
	Offset   int    `json:"offset"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// FprintTokens writes one JSON object per scanned triple, one per line in
// scan order (spec §6 "tokens" CLI command / rpcserve method): a newline-
// delimited stream, not a single JSON array.
func FprintTokens(w io.Writer, triples []scanner.Triple) error {
	enc := json.NewEncoder(w)
	for _, t := range triples {
		obj := tokenJSON{
			Position: positionJSON{
				Filename: t.Pos.Filename(),
				Offset:   t.Pos.Offset,
				Line:     t.Pos.Line,
				Column:   t.Pos.Column,
			},
			Kind:   t.Tok.String(),
			Lexeme: t.Lit,
		}
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
