package ast

import "github.com/saibing/gors/internal/token"

// advance returns p shifted n bytes forward on the same line, used to turn
// the position of a closing delimiter's first byte into the End() position
// immediately following it (spec §3: End is exclusive).
func advance(p token.Position, n int) token.Position {
	p.Offset += n
	p.Column += n
	return p
}

func (x *BasicLit) Pos() token.Position { return x.ValuePos }
func (x *BasicLit) End() token.Position { return advance(x.ValuePos, len(x.Value)) }

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return advance(x.NamePos, len(x.Name)) }

func (x *ParenExpr) Pos() token.Position { return x.Lparen }
func (x *ParenExpr) End() token.Position { return advance(x.Rparen, 1) }

func (x *UnaryExpr) Pos() token.Position { return x.OpPos }
func (x *UnaryExpr) End() token.Position { return x.X.End() }

func (x *BinaryExpr) Pos() token.Position { return x.X.Pos() }
func (x *BinaryExpr) End() token.Position { return x.Y.End() }

func (x *SelectorExpr) Pos() token.Position { return x.X.Pos() }
func (x *SelectorExpr) End() token.Position { return x.Sel.End() }

func (x *IndexExpr) Pos() token.Position { return x.X.Pos() }
func (x *IndexExpr) End() token.Position { return advance(x.Rbrack, 1) }

func (x *SliceExpr) Pos() token.Position { return x.X.Pos() }
func (x *SliceExpr) End() token.Position { return advance(x.Rbrack, 1) }

func (x *TypeAssertExpr) Pos() token.Position { return x.X.Pos() }
func (x *TypeAssertExpr) End() token.Position { return advance(x.Rparen, 1) }

func (x *CallExpr) Pos() token.Position { return x.Fun.Pos() }
func (x *CallExpr) End() token.Position { return advance(x.Rparen, 1) }

func (x *CompositeLit) Pos() token.Position {
	if x.Type != nil {
		return x.Type.Pos()
	}
	return x.Lbrace
}
func (x *CompositeLit) End() token.Position { return advance(x.Rbrace, 1) }

func (x *FuncLit) Pos() token.Position { return x.Type.Pos() }
func (x *FuncLit) End() token.Position { return x.Body.End() }

func (x *KeyValueExpr) Pos() token.Position { return x.Key.Pos() }
func (x *KeyValueExpr) End() token.Position { return x.Value.End() }

func (x *Ellipsis) Pos() token.Position { return x.Ellipsis }
func (x *Ellipsis) End() token.Position {
	if x.Elt != nil {
		return x.Elt.End()
	}
	return advance(x.Ellipsis, 3)
}

func (x *StarExpr) Pos() token.Position { return x.Star }
func (x *StarExpr) End() token.Position { return x.X.End() }

func (x *ChanType) Pos() token.Position { return x.Begin }
func (x *ChanType) End() token.Position { return x.Value.End() }

func (x *FuncType) Pos() token.Position {
	if x.Func.IsValid() {
		return x.Func
	}
	return x.Params.Pos()
}
func (x *FuncType) End() token.Position {
	if x.Results != nil {
		return x.Results.End()
	}
	return x.Params.End()
}

func (x *InterfaceType) Pos() token.Position { return x.Interface }
func (x *InterfaceType) End() token.Position { return x.Methods.End() }

func (x *MapType) Pos() token.Position { return x.Map }
func (x *MapType) End() token.Position { return x.Value.End() }

func (x *StructType) Pos() token.Position { return x.Struct }
func (x *StructType) End() token.Position { return x.Fields.End() }

func (x *ArrayType) Pos() token.Position { return x.Lbrack }
func (x *ArrayType) End() token.Position { return x.Elt.End() }

func (s *AssignStmt) Pos() token.Position { return s.Lhs[0].Pos() }
func (s *AssignStmt) End() token.Position { return s.Rhs[len(s.Rhs)-1].End() }

func (s *BlockStmt) Pos() token.Position { return s.Lbrace }
func (s *BlockStmt) End() token.Position { return advance(s.Rbrace, 1) }

func (s *DeclStmt) Pos() token.Position { return s.Decl.Pos() }
func (s *DeclStmt) End() token.Position { return s.Decl.End() }

func (s *EmptyStmt) Pos() token.Position { return s.Semicolon }
func (s *EmptyStmt) End() token.Position {
	if s.Implicit {
		return s.Semicolon
	}
	return advance(s.Semicolon, 1)
}

func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.X.End() }

func (s *ForStmt) Pos() token.Position { return s.For }
func (s *ForStmt) End() token.Position { return s.Body.End() }

func (s *RangeStmt) Pos() token.Position { return s.For }
func (s *RangeStmt) End() token.Position { return s.Body.End() }

func (s *GoStmt) Pos() token.Position { return s.Go }
func (s *GoStmt) End() token.Position { return s.Call.End() }

func (s *DeferStmt) Pos() token.Position { return s.Defer }
func (s *DeferStmt) End() token.Position { return s.Call.End() }

func (s *IfStmt) Pos() token.Position { return s.If }
func (s *IfStmt) End() token.Position {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Body.End()
}

func (s *IncDecStmt) Pos() token.Position { return s.X.Pos() }
func (s *IncDecStmt) End() token.Position { return advance(s.TokPos, 2) }

func (s *ReturnStmt) Pos() token.Position { return s.Return }
func (s *ReturnStmt) End() token.Position {
	if n := len(s.Results); n > 0 {
		return s.Results[n-1].End()
	}
	return advance(s.Return, len("return"))
}

func (s *SendStmt) Pos() token.Position { return s.Chan.Pos() }
func (s *SendStmt) End() token.Position { return s.Value.End() }
