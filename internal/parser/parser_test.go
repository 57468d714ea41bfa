package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := ParseFile("input.go", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

func TestParseMinimalFile(t *testing.T) {
	f := mustParse(t, "package main\n")
	require.Equal(t, "main", f.Name.Name)
	require.Empty(t, f.Decls)
}

func TestParseFuncDecl(t *testing.T) {
	f := mustParse(t, `package p

func add(a, b int) int {
	return a + b
}
`)
	require.Len(t, f.Decls, 1)
	fn, ok := f.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Type.Params.List, 1)
	require.Equal(t, []string{"a", "b"}, identNames(fn.Type.Params.List[0].Names))
	require.Len(t, fn.Body.List, 1)
	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Results[0].(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op.String())
}

func TestParseAnonymousParams(t *testing.T) {
	f := mustParse(t, `package p

func f(int, string) bool { return true }
`)
	fn := f.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Type.Params.List, 2)
	require.Nil(t, fn.Type.Params.List[0].Names)
	require.Nil(t, fn.Type.Params.List[1].Names)
}

func TestParseVariadicParam(t *testing.T) {
	f := mustParse(t, `package p

func f(xs ...int) {}
`)
	fn := f.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Type.Params.List, 1)
	_, ok := fn.Type.Params.List[0].Type.(*ast.Ellipsis)
	require.True(t, ok)
}

func TestBinaryExprPrecedence(t *testing.T) {
	f := mustParse(t, `package p

var x = 1 + 2 * 3
`)
	spec := f.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ValueSpec)
	top, ok := spec.Values[0].(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", top.Op.String())
	_, ok = top.X.(*ast.BasicLit)
	require.True(t, ok)
	mul, ok := top.Y.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", mul.Op.String())
}

func TestCompositeLiteralInIfHeaderRequiresParens(t *testing.T) {
	f := mustParse(t, `package p

type T struct{ X int }

func f() {
	if (T{X: 1}).X == 1 {
	}
}
`)
	require.Len(t, f.Decls, 2)
}

func TestIndexVsSliceExpr(t *testing.T) {
	f := mustParse(t, `package p

func f() {
	a := b[1]
	c := d[1:2]
	e := g[1:2:3]
	_ = a
	_ = c
	_ = e
}
`)
	fn := f.Decls[0].(*ast.FuncDecl)
	assignA := fn.Body.List[0].(*ast.AssignStmt)
	_, ok := assignA.Rhs[0].(*ast.IndexExpr)
	require.True(t, ok)

	assignC := fn.Body.List[1].(*ast.AssignStmt)
	sliceC, ok := assignC.Rhs[0].(*ast.SliceExpr)
	require.True(t, ok)
	require.False(t, sliceC.Slice3)

	assignE := fn.Body.List[2].(*ast.AssignStmt)
	sliceE, ok := assignE.Rhs[0].(*ast.SliceExpr)
	require.True(t, ok)
	require.True(t, sliceE.Slice3)
}

func TestSelectorVsTypeAssert(t *testing.T) {
	f := mustParse(t, `package p

func f() {
	a := x.Field
	b := y.(int)
	_ = a
	_ = b
}
`)
	fn := f.Decls[0].(*ast.FuncDecl)
	assignA := fn.Body.List[0].(*ast.AssignStmt)
	_, ok := assignA.Rhs[0].(*ast.SelectorExpr)
	require.True(t, ok)

	assignB := fn.Body.List[1].(*ast.AssignStmt)
	_, ok = assignB.Rhs[0].(*ast.TypeAssertExpr)
	require.True(t, ok)
}

func TestForStmtFiveShapes(t *testing.T) {
	f := mustParse(t, `package p

func f() {
	for {
	}
	for true {
	}
	for i := 0; i < 10; i++ {
	}
	for k, v := range m {
		_ = k
		_ = v
	}
	for range m {
	}
}
`)
	fn := f.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.List, 5)

	bare, ok := fn.Body.List[0].(*ast.ForStmt)
	require.True(t, ok)
	require.Nil(t, bare.Cond)

	condOnly, ok := fn.Body.List[1].(*ast.ForStmt)
	require.True(t, ok)
	require.NotNil(t, condOnly.Cond)
	require.Nil(t, condOnly.Init)

	threeClause, ok := fn.Body.List[2].(*ast.ForStmt)
	require.True(t, ok)
	require.NotNil(t, threeClause.Init)
	require.NotNil(t, threeClause.Cond)
	require.NotNil(t, threeClause.Post)

	kv, ok := fn.Body.List[3].(*ast.RangeStmt)
	require.True(t, ok)
	require.NotNil(t, kv.Key)
	require.NotNil(t, kv.Value)

	noKey, ok := fn.Body.List[4].(*ast.RangeStmt)
	require.True(t, ok)
	require.Nil(t, noKey.Key)
}

func TestImplicitSemicolonBeforeClosingBrace(t *testing.T) {
	f := mustParse(t, "package p\n\nfunc f() {\n\treturn\n}\n")
	fn := f.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.List, 1)
}

func TestFileScopeObjectTable(t *testing.T) {
	f := mustParse(t, `package p

const c = 1

var v int

func g() {}
`)
	require.NotNil(t, f.Scope.Lookup("c"))
	require.Equal(t, ast.Con, f.Scope.Lookup("c").Kind)
	require.NotNil(t, f.Scope.Lookup("v"))
	require.Equal(t, ast.Var, f.Scope.Lookup("v").Kind)
	require.NotNil(t, f.Scope.Lookup("g"))
	require.Equal(t, ast.Fun, f.Scope.Lookup("g").Kind)
}

func TestSyntaxErrorReportsPosition(t *testing.T) {
	_, err := ParseFile("bad.go", []byte("package p\n\nfunc f( {}\n"))
	require.Error(t, err)
	uerr, ok := err.(*UnexpectedTokenAt)
	require.True(t, ok)
	require.Equal(t, 3, uerr.At.Line)
}

func identNames(fields []*ast.Ident) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
