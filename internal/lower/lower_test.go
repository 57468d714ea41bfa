package lower

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/parser"
)

func TestFlattenBlockKeepsMultiStmtNestedBlock(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

func f() {
	{
		x := 1
		_ = x
	}
}
`))
	require.NoError(t, err)
	require.NoError(t, Lower(f, Options{}))

	fn := f.Decls[len(f.Decls)-1].(*ast.FuncDecl)
	require.Len(t, fn.Body.List, 1)
	_, ok := fn.Body.List[0].(*ast.BlockStmt)
	require.True(t, ok, "a two-statement nested block should not be collapsed")
}

func TestHoistImportsMovesImportsToFront(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

func f() {}

import "fmt"
`))
	require.NoError(t, err)
	require.NoError(t, Lower(f, Options{}))

	_, ok := f.Decls[0].(*ast.GenDecl)
	require.True(t, ok)
	require.Equal(t, `"fmt"`, f.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ImportSpec).Path.Value)
}

func TestSimplifyReturnDropsTrailingBareReturn(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

func f() {
	x := 1
	_ = x
	return
}
`))
	require.NoError(t, err)
	require.NoError(t, Lower(f, Options{}))

	fn := f.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.List, 2)
}
