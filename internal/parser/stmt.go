package parser

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

// parseBlockStmt parses "{ StatementList }", where each statement is
// followed by its terminator (spec §4.2 ASI, §4.3).
func (p *Parser) parseBlockStmt() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	var list []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
	}
	rbrace, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Lbrace: lbrace, List: list, Rbrace: rbrace}, nil
}

// parseStmt dispatches on the current token. switch, select, branch
// (break/continue/goto), and labeled statements are not part of this
// grammar (spec §9) and fall through to parseSimpleStmt, which reports
// them as an ordinary syntax error.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok {
	case token.CONST, token.VAR, token.TYPE:
		decl, err := p.parseGenDecl()
		if err != nil {
			return nil, err
		}
		return &ast.DeclStmt{Decl: decl}, nil
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.GO:
		return p.parseGoStmt()
	case token.DEFER:
		return p.parseDeferStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.SEMICOLON:
		pos := p.pos
		implicit := p.lit != ";"
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.EmptyStmt{Semicolon: pos, Implicit: implicit}, nil
	default:
		return p.parseSimpleStmt(false)
	}
}

// parseSimpleStmt parses an expression, send, increment/decrement, or
// assignment statement. When inForHeader is set, a ":=" or "=" whose
// right-hand side is the single keyword "range" instead produces a
// *ast.RangeStmt with its For/Body left for parseForStmt to fill in
// (spec §4.3, for-statement shapes).
func (p *Parser) parseSimpleStmt(inForHeader bool) (ast.Stmt, error) {
	lhs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}

	switch p.tok {
	case token.ASSIGN, token.DEFINE,
		token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN, token.REM_ASSIGN,
		token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN, token.AND_NOT_ASSIGN:
		tok := p.tok
		tokPos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		if inForHeader && p.tok == token.RANGE && (tok == token.DEFINE || tok == token.ASSIGN) {
			if err := p.next(); err != nil {
				return nil, err
			}
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rs := &ast.RangeStmt{TokPos: tokPos, Tok: tok, X: x}
			switch len(lhs) {
			case 1:
				rs.Key = lhs[0]
			case 2:
				rs.Key, rs.Value = lhs[0], lhs[1]
			default:
				return nil, errUnexpected
			}
			return rs, nil
		}
		rhs, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Lhs: lhs, TokPos: tokPos, Tok: tok, Rhs: rhs}, nil

	case token.INC, token.DEC:
		if len(lhs) != 1 {
			return nil, errUnexpected
		}
		tok := p.tok
		tokPos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		return &ast.IncDecStmt{X: lhs[0], TokPos: tokPos, Tok: tok}, nil

	case token.ARROW:
		if len(lhs) != 1 {
			return nil, errUnexpected
		}
		arrow := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.SendStmt{Chan: lhs[0], Arrow: arrow, Value: value}, nil
	}

	if len(lhs) != 1 {
		return nil, errUnexpected
	}
	return &ast.ExprStmt{X: lhs[0]}, nil
}

func simpleStmtCond(s ast.Stmt) (ast.Expr, error) {
	if s == nil {
		return nil, nil
	}
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return nil, errUnexpected
	}
	return es.X, nil
}

// parseIfStmt parses "if [SimpleStmt;] Expr Block [else (IfStmt | Block)]"
// (spec §4.3). exprLev is set negative for the header so an unparenthesized
// "{" is read as the body, not the start of a composite literal (spec §4.3
// composite-literal disambiguation).
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	ifPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}

	prevLev := p.exprLev
	p.exprLev = -1
	s1, err := p.parseSimpleStmt(false)
	if err != nil {
		return nil, err
	}

	var init ast.Stmt
	var cond ast.Expr
	if p.tok == token.SEMICOLON {
		init = s1
		if err := p.next(); err != nil {
			return nil, err
		}
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	} else {
		cond, err = simpleStmtCond(s1)
		if err != nil {
			return nil, err
		}
	}
	p.exprLev = prevLev

	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Stmt
	if p.tok == token.ELSE {
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok == token.IF {
			elseStmt, err = p.parseIfStmt()
		} else {
			elseStmt, err = p.parseBlockStmt()
		}
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{If: ifPos, Init: init, Cond: cond, Body: body, Else: elseStmt}, nil
}

// parseForStmt disambiguates the five shapes spec §4.3 lists: "for {}",
// "for Cond {}", "for Init; Cond; Post {}", "for [Key[,Value]] := range X
// {}" (and the "=" variant), and "for range X {}".
func (p *Parser) parseForStmt() (ast.Stmt, error) {
	forPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}

	if p.tok == token.LBRACE {
		body, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{For: forPos, Body: body}, nil
	}

	prevLev := p.exprLev
	p.exprLev = -1

	if p.tok == token.RANGE {
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.exprLev = prevLev
		body, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		return &ast.RangeStmt{For: forPos, X: x, Body: body}, nil
	}

	var s1 ast.Stmt
	if p.tok != token.SEMICOLON {
		var err error
		s1, err = p.parseSimpleStmt(true)
		if err != nil {
			return nil, err
		}
		if rs, ok := s1.(*ast.RangeStmt); ok {
			rs.For = forPos
			p.exprLev = prevLev
			body, err := p.parseBlockStmt()
			if err != nil {
				return nil, err
			}
			rs.Body = body
			return rs, nil
		}
	}

	if p.tok == token.LBRACE {
		p.exprLev = prevLev
		cond, err := simpleStmtCond(s1)
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{For: forPos, Cond: cond, Body: body}, nil
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	var cond ast.Expr
	if p.tok != token.SEMICOLON {
		var err error
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	var s3 ast.Stmt
	if p.tok != token.LBRACE {
		var err error
		s3, err = p.parseSimpleStmt(false)
		if err != nil {
			return nil, err
		}
	}
	p.exprLev = prevLev
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{For: forPos, Init: s1, Cond: cond, Post: s3, Body: body}, nil
}

func (p *Parser) parseGoStmt() (*ast.GoStmt, error) {
	goPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	call, ok := x.(*ast.CallExpr)
	if !ok {
		return nil, errUnexpected
	}
	return &ast.GoStmt{Go: goPos, Call: call}, nil
}

func (p *Parser) parseDeferStmt() (*ast.DeferStmt, error) {
	deferPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	call, ok := x.(*ast.CallExpr)
	if !ok {
		return nil, errUnexpected
	}
	return &ast.DeferStmt{Defer: deferPos, Call: call}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	retPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	var results []ast.Expr
	if p.tok != token.SEMICOLON && p.tok != token.RBRACE {
		list, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		results = list
	}
	return &ast.ReturnStmt{Return: retPos, Results: results}, nil
}
