package lower

import "github.com/saibing/gors/internal/ast"

// flattenBlockPass collapses a nested block that contains exactly one
// statement into that statement directly, the way gors' flatten_block
// pass collapses a single-expression nested block into its inner
// expression.
type flattenBlockPass struct{}

func (flattenBlockPass) Name() string { return "flatten_block" }

func (flattenBlockPass) Run(file *ast.File, _ Options) error {
	ast.Inspect(file, func(n ast.Node) bool {
		block, ok := n.(*ast.BlockStmt)
		if !ok {
			return true
		}
		for i, stmt := range block.List {
			inner, ok := stmt.(*ast.BlockStmt)
			if !ok || len(inner.List) != 1 {
				continue
			}
			block.List[i] = inner.List[0]
		}
		return true
	})
	return nil
}
