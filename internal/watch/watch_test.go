package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDenylistedNoPathMeansNothingIsDenylisted(t *testing.T) {
	denylisted, err := isDenylisted("", "x.go")
	require.NoError(t, err)
	require.False(t, denylisted)
}

func TestIsDenylistedMatchesListedPath(t *testing.T) {
	dir := t.TempDir()
	denylistPath := filepath.Join(dir, "denylist.txt")
	require.NoError(t, os.WriteFile(denylistPath, []byte("a.go\nb.go\n"), 0o644))

	denylisted, err := isDenylisted(denylistPath, "b.go")
	require.NoError(t, err)
	require.True(t, denylisted)

	denylisted, err = isDenylisted(denylistPath, "c.go")
	require.NoError(t, err)
	require.False(t, denylisted)
}
