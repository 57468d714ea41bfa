package parser

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

func (p *Parser) parseExprList() ([]ast.Expr, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	list := []ast.Expr{x}
	for p.tok == token.COMMA {
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, x)
	}
	return list, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr implements precedence climbing over the five binary
// precedence levels (spec §4.1, §4.3).
func (p *Parser) parseBinaryExpr(prec1 int) (ast.Expr, error) {
	x, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		op := p.tok
		prec := op.Precedence()
		if prec < prec1 {
			return x, nil
		}
		opPos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		y, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		x = &ast.BinaryExpr{X: x, OpPos: opPos, Op: op, Y: y}
	}
}

// parseUnaryExpr handles the unary prefix operators "+ - ! ^ & <-" and the
// pointer-dereference "*" (spec §4.1, §4.3).
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	switch p.tok {
	case token.ADD, token.SUB, token.NOT, token.XOR, token.AND, token.ARROW:
		op := p.tok
		pos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{OpPos: pos, Op: op, X: x}, nil
	case token.MUL:
		pos := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: pos, X: x}, nil
	}
	return p.parsePrimaryExpr()
}

// parsePrimaryExpr parses an operand followed by any chain of selector,
// index, slice, type-assertion, and call suffixes (spec §4.3).
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	x, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok {
		case token.PERIOD:
			if err := p.next(); err != nil {
				return nil, err
			}
			if p.tok == token.LPAREN {
				lparen := p.pos
				if err := p.next(); err != nil {
					return nil, err
				}
				typ, err := p.parseType()
				if err != nil {
					return nil, err
				}
				rparen, err := p.expect(token.RPAREN)
				if err != nil {
					return nil, err
				}
				x = &ast.TypeAssertExpr{X: x, Lparen: lparen, Type: typ, Rparen: rparen}
				continue
			}
			sel, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			x = &ast.SelectorExpr{X: x, Sel: sel}
		case token.LBRACK:
			x, err = p.parseIndexOrSlice(x)
			if err != nil {
				return nil, err
			}
		case token.LPAREN:
			x, err = p.parseCall(x)
			if err != nil {
				return nil, err
			}
		case token.LBRACE:
			if p.exprLev < 0 || !isLiteralType(x) {
				return x, nil
			}
			x, err = p.parseCompositeLitRest(x)
			if err != nil {
				return nil, err
			}
		default:
			return x, nil
		}
	}
}

func isLiteralType(x ast.Expr) bool {
	switch x.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.ArrayType, *ast.StructType, *ast.MapType:
		return true
	}
	return false
}

// parseIndexOrSlice disambiguates "X[i]" from "X[lo:hi]"/"X[lo:hi:max]"
// (spec §4.3) by looking for a COLON before the closing "]".
func (p *Parser) parseIndexOrSlice(x ast.Expr) (ast.Expr, error) {
	lbrack := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	p.exprLev++

	var low, high, max ast.Expr
	var err error
	if p.tok != token.COLON {
		low, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if p.tok != token.COLON {
		p.exprLev--
		rbrack, err := p.expect(token.RBRACK)
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{X: x, Lbrack: lbrack, Index: low, Rbrack: rbrack}, nil
	}

	slice3 := false
	if err := p.next(); err != nil { // consume first ":"
		return nil, err
	}
	if p.tok != token.COLON && p.tok != token.RBRACK {
		high, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if p.tok == token.COLON {
		slice3 = true
		if err := p.next(); err != nil {
			return nil, err
		}
		max, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	p.exprLev--
	rbrack, err := p.expect(token.RBRACK)
	if err != nil {
		return nil, err
	}
	return &ast.SliceExpr{X: x, Lbrack: lbrack, Low: low, High: high, Max: max, Slice3: slice3, Rbrack: rbrack}, nil
}

func (p *Parser) parseCall(fun ast.Expr) (*ast.CallExpr, error) {
	lparen := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	p.exprLev++
	var args []ast.Expr
	var ellipsis token.Position
	for p.tok != token.RPAREN && p.tok != token.EOF {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok == token.ELLIPSIS {
			ellipsis = p.pos
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		if p.tok != token.COMMA {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	p.exprLev--
	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Fun: fun, Lparen: lparen, Args: args, Ellipsis: ellipsis, Rparen: rparen}, nil
}

// parseOperand parses a literal, identifier, parenthesized expression,
// function literal, or a type used as the head of a composite literal
// (spec §4.3).
func (p *Parser) parseOperand() (ast.Expr, error) {
	switch p.tok {
	case token.IDENT:
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		p.resolve(id)
		return id, nil
	case token.INT, token.FLOAT, token.IMAG, token.CHAR, token.STRING:
		lit := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		if err := p.next(); err != nil {
			return nil, err
		}
		return lit, nil
	case token.LPAREN:
		lparen := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		savedLev := p.exprLev
		p.exprLev = 0
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.exprLev = savedLev
		rparen, err := p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Lparen: lparen, X: x, Rparen: rparen}, nil
	case token.FUNC:
		funcPos := p.pos
		if err := p.next(); err != nil {
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
		body, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		return &ast.FuncLit{Type: &ast.FuncType{Func: funcPos, Params: params, Results: results}, Body: body}, nil
	case token.LBRACK, token.MAP, token.STRUCT, token.INTERFACE, token.CHAN, token.ARROW, token.MUL:
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.tok == token.LBRACE {
			return p.parseCompositeLitRest(typ)
		}
		return typ, nil
	}
	return nil, errUnexpected
}

// parseCompositeLitRest parses the "{Elts...}" suffix of a composite
// literal whose type has already been parsed (spec §4.3, §9: a nil Type
// elsewhere denotes an elided type inherited from the enclosing literal,
// but this entry point always has a concrete Type).
func (p *Parser) parseCompositeLitRest(typ ast.Expr) (*ast.CompositeLit, error) {
	lbrace := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	savedLev := p.exprLev
	p.exprLev = 0

	var elts []ast.Expr
	for p.tok != token.RBRACE && p.tok != token.EOF {
		elt, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
		if p.tok != token.COMMA {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	p.exprLev = savedLev
	rbrace, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.CompositeLit{Type: typ, Lbrace: lbrace, Elts: elts, Rbrace: rbrace}, nil
}

// parseElement parses one composite-literal element, either a bare value
// or a "Key: Value" pair. A nested literal may elide its own type
// (spec §9), in which case Value is itself a *CompositeLit with Type nil.
func (p *Parser) parseElement() (ast.Expr, error) {
	var x ast.Expr
	var err error
	if p.tok == token.LBRACE {
		x, err = p.parseLiteralValue()
	} else {
		x, err = p.parseExpr()
	}
	if err != nil {
		return nil, err
	}
	if p.tok == token.COLON {
		colon := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		var value ast.Expr
		if p.tok == token.LBRACE {
			value, err = p.parseLiteralValue()
		} else {
			value, err = p.parseExpr()
		}
		if err != nil {
			return nil, err
		}
		return &ast.KeyValueExpr{Key: x, Colon: colon, Value: value}, nil
	}
	return x, nil
}

func (p *Parser) parseLiteralValue() (*ast.CompositeLit, error) {
	return p.parseCompositeLitRest(nil)
}
