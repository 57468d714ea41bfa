// Package ast defines the syntax tree produced by internal/parser: a family
// of typed nodes shaped to match what go/parser + go/ast produce when
// pretty-printed with ast.Fprint (spec §1, §3). Nodes hold source positions
// and string copies of their lexemes. The parser does not modify a File
// after returning it; internal/lower rewrites a tree in place.
package ast

import "github.com/saibing/gors/internal/token"

// Node is implemented by every AST node. Pos returns the position of the
// node's first lexeme; End returns the position immediately after the
// node's last lexeme (token.Position{} / the zero Line for nodes with no
// extent of their own, e.g. an omitted FieldList).
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Expr is implemented by every expression node (spec §3).
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node (spec §3).
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every declaration node (spec §3).
type Decl interface {
	Node
	declNode()
}

// Spec is implemented by every specification node nested inside a GenDecl
// (spec §3): ImportSpec, TypeSpec, ValueSpec.
type Spec interface {
	Node
	specNode()
}
