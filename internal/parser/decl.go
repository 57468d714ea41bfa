package parser

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.tok {
	case token.CONST, token.VAR, token.TYPE:
		return p.parseGenDecl()
	case token.FUNC:
		return p.parseFuncDecl()
	case token.IMPORT:
		return p.parseGenDecl()
	}
	return nil, errUnexpected
}

func (p *Parser) parseGenDecl() (*ast.GenDecl, error) {
	doc := p.takeLeadComment()
	tok := p.tok
	pos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}

	var lparen, rparen token.Position
	var specs []ast.Spec

	parseOne := func(i int) (ast.Spec, error) {
		switch tok {
		case token.IMPORT:
			return p.parseImportSpec()
		case token.CONST, token.VAR:
			return p.parseValueSpec(tok, i)
		case token.TYPE:
			return p.parseTypeSpec()
		}
		return nil, errUnexpected
	}

	if p.tok == token.LPAREN {
		lparen = p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		for i := 0; p.tok != token.RPAREN && p.tok != token.EOF; i++ {
			spec, err := parseOne(i)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
			if err := p.expectSemi(); err != nil {
				return nil, err
			}
		}
		var err error
		rparen, err = p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
	} else {
		spec, err := parseOne(0)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
	}

	return &ast.GenDecl{Doc: doc, TokPos: pos, Tok: tok, Lparen: lparen, Specs: specs, Rparen: rparen}, nil
}

func (p *Parser) parseImportSpec() (*ast.ImportSpec, error) {
	doc := p.takeLeadComment()
	var name *ast.Ident
	if p.tok == token.IDENT || p.tok == token.PERIOD {
		if p.tok == token.PERIOD {
			name = &ast.Ident{NamePos: p.pos, Name: "."}
			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			name = id
		}
	}
	if p.tok != token.STRING {
		return nil, errUnexpected
	}
	path := &ast.BasicLit{ValuePos: p.pos, Kind: token.STRING, Value: p.lit}
	if err := p.next(); err != nil {
		return nil, err
	}
	return &ast.ImportSpec{Doc: doc, Name: name, Path: path}, nil
}

func (p *Parser) parseValueSpec(tok token.Token, _ int) (*ast.ValueSpec, error) {
	doc := p.takeLeadComment()
	names, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}

	var typ ast.Expr
	var values []ast.Expr

	if p.tok != token.ASSIGN && p.tok != token.SEMICOLON && p.tok != token.RPAREN {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if p.tok == token.ASSIGN {
		if err := p.next(); err != nil {
			return nil, err
		}
		values, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}

	kind := ast.Var
	if tok == token.CONST {
		kind = ast.Con
	}
	spec := &ast.ValueSpec{Doc: doc, Names: names, Type: typ, Values: values}
	for _, n := range names {
		p.declare(spec, kind, n)
	}
	return spec, nil
}

func (p *Parser) parseTypeSpec() (*ast.TypeSpec, error) {
	doc := p.takeLeadComment()
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	var assign token.Position
	if p.tok == token.ASSIGN {
		assign = p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	spec := &ast.TypeSpec{Doc: doc, Name: name, Assign: assign, Type: typ}
	p.declare(spec, ast.Var, name) // type names share the file-scope table; no dedicated ObjKind exists for them
	return spec, nil
}

func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	doc := p.takeLeadComment()
	funcPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}

	var recv *ast.FieldList
	if p.tok == token.LPAREN {
		var err error
		recv, err = p.parseParameters(false)
		if err != nil {
			return nil, err
		}
	}

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	params, err := p.parseParameters(true)
	if err != nil {
		return nil, err
	}
	results, err := p.parseResult()
	if err != nil {
		return nil, err
	}
	typ := &ast.FuncType{Func: funcPos, Params: params, Results: results}

	var body *ast.BlockStmt
	if p.tok == token.LBRACE {
		body, err = p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectSemi(); err != nil {
		return nil, err
	}

	decl := &ast.FuncDecl{Doc: doc, Recv: recv, Name: name, Type: typ, Body: body}
	if recv == nil {
		p.declare(decl, ast.Fun, name)
	}
	return decl, nil
}
