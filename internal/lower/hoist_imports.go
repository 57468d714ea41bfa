package lower

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

// hoistImportsPass moves every import declaration to the front of the
// file, preserving their relative order, the way gors' hoist_use pass
// collects path uses during a walk and reinserts them at the top.
type hoistImportsPass struct{}

func (hoistImportsPass) Name() string { return "hoist_imports" }

func (hoistImportsPass) Run(file *ast.File, _ Options) error {
	var imports, rest []ast.Decl
	for _, decl := range file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			imports = append(imports, decl)
			continue
		}
		rest = append(rest, decl)
	}
	file.Decls = append(imports, rest...)
	return nil
}
