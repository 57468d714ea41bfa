package ast

import "github.com/saibing/gors/internal/token"

func (*BasicLit) exprNode()      {}
func (*Ident) exprNode()         {}
func (*ParenExpr) exprNode()     {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*SelectorExpr) exprNode()  {}
func (*IndexExpr) exprNode()     {}
func (*SliceExpr) exprNode()     {}
func (*TypeAssertExpr) exprNode() {}
func (*CallExpr) exprNode()      {}
func (*CompositeLit) exprNode()  {}
func (*FuncLit) exprNode()       {}
func (*KeyValueExpr) exprNode()  {}
func (*Ellipsis) exprNode()      {}
func (*StarExpr) exprNode()      {}
func (*ChanType) exprNode()      {}
func (*FuncType) exprNode()      {}
func (*InterfaceType) exprNode() {}
func (*MapType) exprNode()       {}
func (*StructType) exprNode()    {}
func (*ArrayType) exprNode()     {}

// BasicLit is a literal of basic type: INT, FLOAT, IMAG, CHAR, or STRING.
type BasicLit struct {
	ValuePos token.Position
	Kind     token.Token
	Value    string
}

// Ident is an identifier. Obj is non-nil for an identifier that declares a
// name entered in the parser's scope table, and for a later identifier
// resolved against that table (spec §3).
type Ident struct {
	NamePos token.Position
	Name    string
	Obj     *Object
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Lparen token.Position
	X      Expr
	Rparen token.Position
}

// UnaryExpr is a unary (prefix) expression: "+ - ! ^ & <-", plus "*" via
// StarExpr (spec §4.1, §4.3).
type UnaryExpr struct {
	OpPos token.Position
	Op    token.Token
	X     Expr
}

// BinaryExpr is a binary expression produced by precedence climbing
// (spec §4.3).
type BinaryExpr struct {
	X     Expr
	OpPos token.Position
	Op    token.Token
	Y     Expr
}

// SelectorExpr is "X.Sel".
type SelectorExpr struct {
	X   Expr
	Sel *Ident
}

// IndexExpr is "X[Index]".
type IndexExpr struct {
	X      Expr
	Lbrack token.Position
	Index  Expr
	Rbrack token.Position
}

// SliceExpr is "X[Low:High]" or, when Slice3 is set, "X[Low:High:Max]"
// (spec §4.3).
type SliceExpr struct {
	X      Expr
	Lbrack token.Position
	Low    Expr
	High   Expr
	Max    Expr
	Slice3 bool
	Rbrack token.Position
}

// TypeAssertExpr is "X.(Type)".
type TypeAssertExpr struct {
	X      Expr
	Lparen token.Position
	Type   Expr
	Rparen token.Position
}

// CallExpr is "Fun(Args...)", optionally with a trailing "..." before the
// closing paren (spec §4.3).
type CallExpr struct {
	Fun      Expr
	Lparen   token.Position
	Args     []Expr
	Ellipsis token.Position // set if the call ends in "...", zero Position otherwise
	Rparen   token.Position
}

// CompositeLit is "Type{Elts...}". Type is nil when the literal type is
// elided because it is inherited from an enclosing composite literal
// (spec §9); Incomplete is never set by the parser itself but mirrors the
// go/ast field for tree-shape fidelity.
type CompositeLit struct {
	Type       Expr
	Lbrace     token.Position
	Elts       []Expr
	Rbrace     token.Position
	Incomplete bool
}

// FuncLit is a function literal: "func(...) ... { ... }".
type FuncLit struct {
	Type *FuncType
	Body *BlockStmt
}

// KeyValueExpr is "Key: Value" inside a composite literal.
type KeyValueExpr struct {
	Key   Expr
	Colon token.Position
	Value Expr
}

// Ellipsis is "...Elt" in a parameter list or array type.
type Ellipsis struct {
	Ellipsis token.Position
	Elt      Expr
}

// StarExpr is "*X": a pointer dereference in expression position, or a
// pointer type in type position (spec §3).
type StarExpr struct {
	Star token.Position
	X    Expr
}

// ChanDir is the set of communication directions a ChanType allows.
type ChanDir int

const (
	SEND ChanDir = 1 << iota
	RECV
)

// ChanType is "chan T", "chan<- T", or "<-chan T".
type ChanType struct {
	Begin token.Position
	Arrow token.Position // position of "<-", zero Position if none
	Dir   ChanDir
	Value Expr
}

// FuncType is a function signature: "func(Params) Results", or the bare
// "(Params) Results" of a method spec inside an interface (spec §3: Func may
// be a zero Position in that case).
type FuncType struct {
	Func    token.Position
	Params  *FieldList
	Results *FieldList
}

// InterfaceType is "interface{ Methods }".
type InterfaceType struct {
	Interface  token.Position
	Methods    *FieldList
	Incomplete bool
}

// MapType is "map[Key]Value".
type MapType struct {
	Map   token.Position
	Key   Expr
	Value Expr
}

// StructType is "struct{ Fields }".
type StructType struct {
	Struct     token.Position
	Fields     *FieldList
	Incomplete bool
}

// ArrayType is "[Len]Elt", or "[]Elt" (a slice type) when Len is nil.
type ArrayType struct {
	Lbrack token.Position
	Len    Expr
	Elt    Expr
}
