package source

import (
	"sync"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/lower"
	"github.com/saibing/gors/internal/parser"
	"github.com/saibing/gors/internal/scanner"
)

// Pipeline runs the scan -> parse -> lower stages over one in-memory file.
// Tokens and AST memoize their own stage via sync.Once, so asking for both
// tokens and the tree (or the tree twice) on the same Pipeline only scans or
// parses once. Lowered always reparses instead of reusing AST's cached tree:
// lowering mutates its tree in place, and corrupting the cached AST would
// silently change what a later AST call returns.
type Pipeline struct {
	Filename string
	Contents []byte

	tokensOnce sync.Once
	tokens     []scanner.Triple
	tokensErr  error

	astOnce sync.Once
	file    *ast.File
	astErr  error
}

// Tokens runs the scanner to completion, caching the result.
func (p *Pipeline) Tokens() ([]scanner.Triple, error) {
	p.tokensOnce.Do(func() {
		p.tokens, p.tokensErr = scanner.Tokenize(p.Filename, p.Contents)
	})
	return p.tokens, p.tokensErr
}

// AST runs the scanner and parser, caching the result. Callers must treat
// the returned tree as read-only; Lower it via Lowered, not by mutating the
// tree AST returns.
func (p *Pipeline) AST() (*ast.File, error) {
	p.astOnce.Do(func() {
		p.file, p.astErr = parser.ParseFile(p.Filename, p.Contents)
	})
	return p.file, p.astErr
}

// Lowered reparses the file fresh and lowers that tree, returning it. The
// returned *ast.File is always distinct from AST's cached tree: lowering
// mutates in place, and reusing the cached tree here would make a later
// AST call return an already-lowered tree instead of the original.
func (p *Pipeline) Lowered(opts lower.Options) (*ast.File, error) {
	file, err := parser.ParseFile(p.Filename, p.Contents)
	if err != nil {
		return nil, err
	}
	if err := lower.Lower(file, opts); err != nil {
		return nil, err
	}
	return file, nil
}
