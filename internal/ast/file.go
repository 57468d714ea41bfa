package ast

import "github.com/saibing/gors/internal/token"

// File is the root of the tree returned for one source file (spec §3).
// Scope holds the file-scope Object table; Unresolved lists identifiers
// the parser could not bind to a file-scope declaration (it does not
// attempt any resolution beyond that single scope, spec §1 Non-goals).
type File struct {
	Doc        *CommentGroup
	Package    token.Position
	Name       *Ident
	Decls      []Decl
	Scope      *Scope
	Unresolved []*Ident
	Comments   []*CommentGroup
}

func (f *File) Pos() token.Position { return f.Package }
func (f *File) End() token.Position {
	if n := len(f.Decls); n > 0 {
		return f.Decls[n-1].End()
	}
	return f.Name.End()
}

// Imports returns the import specs at the top of the file, in the order
// they were declared.
func (f *File) Imports() []*ImportSpec {
	var specs []*ImportSpec
	for _, decl := range f.Decls {
		gen, ok := decl.(*GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}
		for _, spec := range gen.Specs {
			specs = append(specs, spec.(*ImportSpec))
		}
	}
	return specs
}
