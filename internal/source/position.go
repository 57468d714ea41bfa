// Package source bridges internal/token positions and the wire shapes
// internal/rpcserve exchanges with a client, and drives the
// scan-parse-lower pipeline over a single in-memory file.
package source

import (
	"fmt"

	lsp "github.com/sourcegraph/go-lsp"

	"github.com/saibing/gors/internal/token"
)

// ToProtocolPosition converts a token.Position (1-based line/column) to the
// 0-based lsp.Position convention (spec §6, go-lsp's wire format).
func ToProtocolPosition(p token.Position) lsp.Position {
	if !p.IsValid() {
		return lsp.Position{Line: -1, Character: -1}
	}
	return lsp.Position{Line: p.Line - 1, Character: p.Column - 1}
}

// ToProtocolRange converts a [start, end) token.Position pair to an
// lsp.Range.
func ToProtocolRange(start, end token.Position) lsp.Range {
	return lsp.Range{Start: ToProtocolPosition(start), End: ToProtocolPosition(end)}
}

// OffsetForPosition converts a 0-based lsp.Position into a byte offset into
// contents, counting bytes rather than runes the same way the teacher's
// own offsetForPosition did — an LSP client addresses UTF-16 code units,
// but this front-end never claims exact UTF-16 fidelity (spec §1
// Non-goals).
func OffsetForPosition(contents []byte, p lsp.Position) (int, error) {
	line, col, offset := 0, 0, 0
	for _, b := range contents {
		if line == int(p.Line) && col == int(p.Character) {
			return offset, nil
		}
		if (line == int(p.Line) && col > int(p.Character)) || line > int(p.Line) {
			return 0, fmt.Errorf("character %d is beyond line %d boundary", p.Character, p.Line)
		}
		offset++
		if b == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	if line == int(p.Line) && col == int(p.Character) {
		return offset, nil
	}
	return 0, fmt.Errorf("position %d:%d is beyond file contents", p.Line, p.Character)
}
