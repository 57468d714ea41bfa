// Package parser implements a recursive-descent, one-token-lookahead parser
// that turns a token stream from internal/scanner into an internal/ast
// tree shaped like go/ast's (spec §1, §4.3). It covers a syntactic subset
// of Go: switch, select, branch (break/continue/goto), and labeled
// statements are deliberately not part of the grammar (spec §9) and are
// reported as ordinary syntax errors.
package parser

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/scanner"
	"github.com/saibing/gors/internal/token"
)

// Parser holds all state for parsing a single file. A Parser is used once:
// ParseFile constructs one with New and parses the whole file with it.
type Parser struct {
	scan *scanner.Scanner

	pos token.Position
	tok token.Token
	lit string

	comments    []*ast.CommentGroup
	leadComment *ast.CommentGroup

	exprLev int // < 0 inside a control-clause header, disabling composite literals (spec §4.3)

	pkgScope   *ast.Scope
	unresolved []*ast.Ident
}

// New constructs a Parser over the named source buffer. It returns an error
// immediately if the very first token cannot be scanned.
func New(filename string, src []byte) (*Parser, error) {
	p := &Parser{scan: scanner.New(filename, src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseFile parses filename's contents as a complete Go source file (spec
// §6 "ast" CLI command, §4.3 top-level grammar) and returns its *ast.File.
func ParseFile(filename string, src []byte) (*ast.File, error) {
	p, err := New(filename, src)
	if err != nil {
		return nil, p.wrap(err, "file")
	}
	f, err := p.parseFile()
	if err != nil {
		return nil, p.wrap(err, "file")
	}
	return f, nil
}

// wrap is the single outermost catch site (spec §7): it turns a bare
// sentinel error from an internal production into a positioned,
// descriptive error. Errors that are already positioned (from the scanner,
// or a nested wrap) pass through unchanged.
func (p *Parser) wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	switch err {
	case errUnexpected:
		return &UnexpectedTokenAt{At: p.pos, Tok: p.tok, Lit: p.lit, Context: context}
	case errUnexpectedEOF:
		return &UnexpectedEndOfFile{At: p.pos, Context: context}
	default:
		return err
	}
}

// next advances to the next non-comment token, accumulating comment groups
// and tracking the lead comment of a still-unconsumed declaration.
func (p *Parser) next() error {
	var group *ast.CommentGroup
	endLine := p.pos.Line

	for {
		t, err := p.scan.Scan()
		if err != nil {
			return err
		}
		p.pos, p.tok, p.lit = t.Pos, t.Tok, t.Lit
		if p.tok != token.COMMENT {
			break
		}
		c := &ast.Comment{Slash: t.Pos, Text: t.Lit}
		if group != nil && t.Pos.Line > endLine+1 {
			p.comments = append(p.comments, group)
			group = nil
		}
		if group == nil {
			group = &ast.CommentGroup{}
		}
		group.List = append(group.List, c)
		endLine = t.Pos.Line
		if countNewlines(t.Lit) > 0 {
			endLine += countNewlines(t.Lit)
		}
	}

	if group != nil {
		p.comments = append(p.comments, group)
		if p.pos.Line <= endLine+1 {
			p.leadComment = group
		} else {
			p.leadComment = nil
		}
	} else {
		p.leadComment = nil
	}
	return nil
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// takeLeadComment returns and clears the comment group that immediately
// preceded the current token, if any.
func (p *Parser) takeLeadComment() *ast.CommentGroup {
	g := p.leadComment
	p.leadComment = nil
	return g
}

func (p *Parser) expect(tok token.Token) (token.Position, error) {
	pos := p.pos
	if p.tok != tok {
		return pos, errUnexpected
	}
	if err := p.next(); err != nil {
		return pos, err
	}
	return pos, nil
}

func (p *Parser) at(tok token.Token) bool { return p.tok == tok }

// expectSemi consumes the statement terminator: an explicit or ASI-inserted
// ";", or treats a following "}" / EOF as an implicit empty statement
// (spec §4.3).
func (p *Parser) expectSemi() error {
	if p.tok == token.RBRACE || p.tok == token.EOF {
		return nil
	}
	if p.tok != token.SEMICOLON {
		return errUnexpected
	}
	return p.next()
}

func (p *Parser) parseFile() (*ast.File, error) {
	doc := p.takeLeadComment()

	packagePos, err := p.expect(token.PACKAGE)
	if err != nil {
		return nil, err
	}
	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemi(); err != nil {
		return nil, err
	}

	p.pkgScope = ast.NewScope(nil)

	var decls []ast.Decl
	for p.tok != token.EOF {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return &ast.File{
		Doc:        doc,
		Package:    packagePos,
		Name:       ident,
		Decls:      decls,
		Scope:      p.pkgScope,
		Unresolved: p.unresolved,
		Comments:   p.comments,
	}, nil
}

func (p *Parser) parseIdent() (*ast.Ident, error) {
	if p.tok != token.IDENT {
		return nil, errUnexpected
	}
	id := &ast.Ident{NamePos: p.pos, Name: p.lit}
	if err := p.next(); err != nil {
		return nil, err
	}
	return id, nil
}

func (p *Parser) parseIdentList() ([]*ast.Ident, error) {
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	list := []*ast.Ident{id}
	for p.tok == token.COMMA {
		if err := p.next(); err != nil {
			return nil, err
		}
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		list = append(list, id)
	}
	return list, nil
}

// declare inserts name into the file scope under kind, recording the
// cyclic Ident<->Object link (spec §9) and attaching the object to ident.
func (p *Parser) declare(decl interface{}, kind ast.ObjKind, ident *ast.Ident) {
	obj := ast.NewObj(kind, ident.Name)
	obj.Decl = decl
	ident.Obj = obj
	p.pkgScope.Insert(obj)
}

func (p *Parser) resolve(ident *ast.Ident) {
	if obj := p.pkgScope.Lookup(ident.Name); obj != nil {
		ident.Obj = obj
		return
	}
	p.unresolved = append(p.unresolved, ident)
}
