package ast

import "github.com/saibing/gors/internal/token"

func (*ImportSpec) specNode() {}
func (*ValueSpec) specNode()  {}
func (*TypeSpec) specNode()   {}

// ImportSpec is a single import declaration: `[Name] Path`.
type ImportSpec struct {
	Doc     *CommentGroup
	Name    *Ident // local package name, nil if not renamed/dot/blank
	Path    *BasicLit
	Comment *CommentGroup
	EndPos  token.Position // end of the spec if set; internal/parser leaves it zero, so End uses Path.End()
}

func (s *ImportSpec) Pos() token.Position {
	if s.Name != nil {
		return s.Name.Pos()
	}
	return s.Path.Pos()
}

func (s *ImportSpec) End() token.Position {
	if s.EndPos.IsValid() {
		return s.EndPos
	}
	return s.Path.End()
}

// ValueSpec is a const or var declaration: `Names [Type] [= Values]`.
type ValueSpec struct {
	Doc     *CommentGroup
	Names   []*Ident
	Type    Expr
	Values  []Expr
	Comment *CommentGroup
}

func (s *ValueSpec) Pos() token.Position { return s.Names[0].Pos() }
func (s *ValueSpec) End() token.Position {
	if n := len(s.Values); n > 0 {
		return s.Values[n-1].End()
	}
	if s.Type != nil {
		return s.Type.End()
	}
	return s.Names[len(s.Names)-1].End()
}

// TypeSpec is a type declaration: `Name [=] Type`. Assign is valid when the
// declaration is an alias ("type Name = Type").
type TypeSpec struct {
	Doc    *CommentGroup
	Name   *Ident
	Assign token.Position // zero Position if this is not an alias declaration
	Type   Expr
	Comment *CommentGroup
}

func (s *TypeSpec) Pos() token.Position { return s.Name.Pos() }
func (s *TypeSpec) End() token.Position { return s.Type.End() }
