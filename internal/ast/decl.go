package ast

import "github.com/saibing/gors/internal/token"

func (*FuncDecl) declNode() {}
func (*GenDecl) declNode()  {}

// FuncDecl is a function declaration. Recv is non-nil for a method
// declaration, in which case Recv.List has exactly one Field.
type FuncDecl struct {
	Doc  *CommentGroup
	Recv *FieldList
	Name *Ident
	Type *FuncType
	Body *BlockStmt // nil for a forward declaration with no body
}

func (d *FuncDecl) Pos() token.Position { return d.Type.Pos() }
func (d *FuncDecl) End() token.Position {
	if d.Body != nil {
		return d.Body.End()
	}
	return d.Type.End()
}

// GenDecl is a generic declaration: "const|type|var (Specs)" or the
// unparenthesized single-spec form "const|type|var Spec" (spec §3, §4.3).
type GenDecl struct {
	Doc    *CommentGroup
	TokPos token.Position
	Tok    token.Token
	Lparen token.Position // zero Position if the declaration has no parentheses
	Specs  []Spec
	Rparen token.Position
}

func (d *GenDecl) Pos() token.Position { return d.TokPos }
func (d *GenDecl) End() token.Position {
	if d.Rparen.IsValid() {
		end := d.Rparen
		end.Offset++
		return end
	}
	if n := len(d.Specs); n > 0 {
		return d.Specs[n-1].End()
	}
	end := d.TokPos
	return end
}
