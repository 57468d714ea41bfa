package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/parser"
	"github.com/saibing/gors/internal/scanner"
)

// diffStrings returns a unified diff between want and got, empty if they
// are identical. The harness's comparison primitive for every golden-file
// test in this package.
func diffStrings(t *testing.T, want, got string) string {
	t.Helper()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	return diff
}

func TestFprintTokensGolden(t *testing.T) {
	triples, err := scanner.Tokenize("x.go", []byte("package p\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FprintTokens(&buf, triples))

	require.True(t, strings.Contains(buf.String(), `"kind":"package"`))
	require.True(t, strings.Contains(buf.String(), `"kind":"IDENT"`))
	require.True(t, strings.Contains(buf.String(), `"kind":"EOF"`))
}

// TestFprintTokensIsNewlineDelimited checks the spec §6 requirement that
// FprintTokens emits one JSON object per line, not a single JSON array:
// every non-empty line must parse on its own as exactly one tokenJSON.
func TestFprintTokensIsNewlineDelimited(t *testing.T) {
	triples, err := scanner.Tokenize("x.go", []byte("package p\n"))
	require.NoError(t, err)
	require.True(t, len(triples) > 1, "need more than one token to tell a line-per-object stream apart from an array")

	var buf bytes.Buffer
	require.NoError(t, FprintTokens(&buf, triples))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(triples))
	for _, line := range lines {
		var tok tokenJSON
		require.NoError(t, json.Unmarshal([]byte(line), &tok), "line %q must parse as its own JSON object", line)
	}
}

func TestFprintASTLineNumbering(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte("package p\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, f))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	if diff := diffStrings(t, "     1  ", out[:8]); diff != "" {
		t.Errorf("unexpected line-number prefix:\n%s", diff)
	}
	for i, line := range lines {
		prefix := line[:8]
		require.Regexp(t, `^\s*\d+  $`, prefix, "line %d prefix %q", i+1, prefix)
	}
}

func TestFprintASTCycleBackreference(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

var v int
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, f))

	out := buf.String()
	require.True(t, strings.Contains(out, "*(obj @"), "expected a cycle backreference in:\n%s", out)
}
