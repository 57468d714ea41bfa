package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/parser"
)

func TestInspectVisitsEveryIdent(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

func add(a, b int) int {
	return a + b
}
`))
	require.NoError(t, err)

	var names []string
	ast.Inspect(f, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	require.Contains(t, names, "add")
	require.Contains(t, names, "a")
	require.Contains(t, names, "b")
}

func TestPathEnclosingIntervalFindsInnermostNode(t *testing.T) {
	f, err := parser.ParseFile("x.go", []byte(`package p

func f() int {
	return 1
}
`))
	require.NoError(t, err)

	fn := f.Decls[0].(*ast.FuncDecl)
	lit := fn.Body.List[0].(*ast.ReturnStmt).Results[0].(*ast.BasicLit)

	path, exact := ast.PathEnclosingInterval(f, lit.Pos().Offset, lit.End().Offset)
	require.True(t, exact)
	require.NotEmpty(t, path)
	require.Same(t, lit, path[0])
	require.Same(t, f, path[len(path)-1])
}
