package source

import (
	"testing"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/token"
)

func TestToProtocolPositionConvertsToZeroBased(t *testing.T) {
	p := token.Position{Line: 3, Column: 5}
	got := ToProtocolPosition(p)
	require.Equal(t, lsp.Position{Line: 2, Character: 4}, got)
}

func TestOffsetForPositionRoundTrips(t *testing.T) {
	contents := []byte("package p\n\nfunc f() {}\n")
	offset, err := OffsetForPosition(contents, lsp.Position{Line: 2, Character: 0})
	require.NoError(t, err)
	require.Equal(t, 11, offset)
}

func TestOffsetForPositionRejectsOutOfRange(t *testing.T) {
	_, err := OffsetForPosition([]byte("a\n"), lsp.Position{Line: 5, Character: 0})
	require.Error(t, err)
}
