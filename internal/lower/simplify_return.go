package lower

import "github.com/saibing/gors/internal/ast"

// simplifyReturnPass drops a trailing bare "return" from a function body
// whose signature declares no results, since it is always redundant
// there. Grounded on gors' simplify_return pass, which also trims a
// block's final return statement down to its bare value.
type simplifyReturnPass struct{}

func (simplifyReturnPass) Name() string { return "simplify_return" }

func (simplifyReturnPass) Run(file *ast.File, _ Options) error {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		if fn.Type.Results.NumFields() != 0 {
			continue
		}
		list := fn.Body.List
		if n := len(list); n > 0 {
			if ret, ok := list[n-1].(*ast.ReturnStmt); ok && len(ret.Results) == 0 {
				fn.Body.List = list[:n-1]
			}
		}
	}
	return nil
}
