package ast

import "github.com/saibing/gors/internal/token"

// Field represents a parameter/result declaration in a signature, a
// struct field declaration, or a method spec in an interface. Names is
// empty for anonymous parameters/results and for embedded struct fields
// and embedded interfaces (spec §4.3 parameter-list disambiguation).
type Field struct {
	Doc     *CommentGroup
	Names   []*Ident
	Type    Expr
	Tag     *BasicLit
	Comment *CommentGroup
}

func (f *Field) Pos() token.Position {
	if len(f.Names) > 0 {
		return f.Names[0].Pos()
	}
	return f.Type.Pos()
}

func (f *Field) End() token.Position {
	if f.Tag != nil {
		return f.Tag.End()
	}
	return f.Type.End()
}

// FieldList is a parenthesized or braced list of fields: a function's
// parameters, a function's results, a struct's fields, or an interface's
// methods. Opening and Closing are zero Position when the list has no
// delimiters of its own, e.g. a single unparenthesized result type
// (spec §3).
type FieldList struct {
	Opening token.Position
	List    []*Field
	Closing token.Position
}

func (l *FieldList) Pos() token.Position {
	if l.Opening.IsValid() {
		return l.Opening
	}
	if len(l.List) > 0 {
		return l.List[0].Pos()
	}
	return token.Position{}
}

func (l *FieldList) End() token.Position {
	if l.Closing.IsValid() {
		end := l.Closing
		end.Offset++
		return end
	}
	if n := len(l.List); n > 0 {
		return l.List[n-1].End()
	}
	return token.Position{}
}

// NumFields returns the number of parameters/results/fields/methods
// represented by l, expanding each Field's Names slice (or counting it as
// one when Names is empty, i.e. anonymous).
func (l *FieldList) NumFields() int {
	n := 0
	if l != nil {
		for _, f := range l.List {
			if m := len(f.Names); m > 0 {
				n += m
			} else {
				n++
			}
		}
	}
	return n
}
