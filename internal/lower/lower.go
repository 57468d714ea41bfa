// Package lower implements a small, deliberately incomplete AST-to-AST
// lowering pipeline, modeled on gors' compiler::passes sequence of named
// passes run before code emission. Each pass rewrites only the constructs
// it recognises and leaves every other node as it is; none of the passes
// returned by Passes reports an error, so *UnsupportedConstruct is never
// produced by Lower.
package lower

import (
	"fmt"

	"github.com/saibing/gors/internal/ast"
)

// Options configures a Lower run. Release mirrors config.Config.Release: a
// hint carried through to whatever downstream consumes the lowered tree,
// with no effect on the lowering passes themselves.
type Options struct {
	Release bool
}

// UnsupportedConstruct reports a node outside the subset lower.Lower
// handles.
type UnsupportedConstruct struct {
	Pass string
	Kind string
}

func (e *UnsupportedConstruct) Error() string {
	return fmt.Sprintf("lower: pass %s: unsupported construct %s", e.Pass, e.Kind)
}

// Pass is one named, independently testable rewrite over a *ast.File.
type Pass interface {
	Name() string
	Run(*ast.File, Options) error
}

// Passes returns the pipeline in run order: flattening single-statement
// nested blocks, hoisting every import declaration to the front of the
// file, and dropping a trailing bare return from result-less functions.
func Passes() []Pass {
	return []Pass{
		flattenBlockPass{},
		hoistImportsPass{},
		simplifyReturnPass{},
	}
}

// Lower runs every pass in sequence over file, in place, stopping at the
// first error.
func Lower(file *ast.File, opts Options) error {
	for _, pass := range Passes() {
		if err := pass.Run(file, opts); err != nil {
			return err
		}
	}
	return nil
}
