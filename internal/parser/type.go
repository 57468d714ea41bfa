package parser

import (
	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/token"
)

// parseType parses a type expression: a (possibly qualified) type name, or
// one of the composite type forms (spec §3, §4.3).
func (p *Parser) parseType() (ast.Expr, error) {
	switch p.tok {
	case token.IDENT:
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if p.tok == token.PERIOD {
			return p.parseQualifiedIdentRest(id)
		}
		p.resolve(id)
		return id, nil
	case token.MUL:
		star := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: star, X: x}, nil
	case token.ARROW:
		return p.parseChanType()
	case token.CHAN:
		return p.parseChanType()
	case token.LBRACK:
		return p.parseArrayType()
	case token.MAP:
		return p.parseMapType()
	case token.STRUCT:
		return p.parseStructType()
	case token.INTERFACE:
		return p.parseInterfaceType()
	case token.FUNC:
		return p.parseFuncType()
	case token.LPAREN:
		lparen := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RPAREN)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Lparen: lparen, X: x, Rparen: rparen}, nil
	}
	return nil, errUnexpected
}

func (p *Parser) parseQualifiedIdentRest(pkg *ast.Ident) (ast.Expr, error) {
	if err := p.next(); err != nil { // consume "."
		return nil, err
	}
	sel, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	p.resolve(pkg)
	return &ast.SelectorExpr{X: pkg, Sel: sel}, nil
}

func (p *Parser) parseChanType() (*ast.ChanType, error) {
	begin := p.pos
	dir := ast.SEND | ast.RECV
	var arrow token.Position

	if p.tok == token.ARROW {
		arrow = p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CHAN); err != nil {
			return nil, err
		}
		dir = ast.RECV
	} else {
		if err := p.next(); err != nil { // consume "chan"
			return nil, err
		}
		if p.tok == token.ARROW {
			arrow = p.pos
			if err := p.next(); err != nil {
				return nil, err
			}
			dir = ast.SEND
		}
	}

	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.ChanType{Begin: begin, Arrow: arrow, Dir: dir, Value: value}, nil
}

func (p *Parser) parseArrayType() (ast.Expr, error) {
	lbrack := p.pos
	if err := p.next(); err != nil { // consume "["
		return nil, err
	}
	var length ast.Expr
	if p.tok != token.RBRACK {
		var err error
		length, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	elt, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.ArrayType{Lbrack: lbrack, Len: length, Elt: elt}, nil
}

func (p *Parser) parseMapType() (*ast.MapType, error) {
	mapPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACK); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.MapType{Map: mapPos, Key: key, Value: value}, nil
}

func (p *Parser) parseFuncType() (*ast.FuncType, error) {
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
	return &ast.FuncType{Func: funcPos, Params: params, Results: results}, nil
}

func (p *Parser) parseStructType() (*ast.StructType, error) {
	structPos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	var fields []*ast.Field
	for p.tok != token.RBRACE && p.tok != token.EOF {
		f, err := p.parseFieldDecl()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
	}
	rbrace, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.StructType{Struct: structPos, Fields: &ast.FieldList{Opening: lbrace, List: fields, Closing: rbrace}}, nil
}

// parseFieldDecl parses one struct field: either "Names Type [Tag]" or an
// embedded field "[*]TypeName [Tag]" (spec §4.3).
func (p *Parser) parseFieldDecl() (*ast.Field, error) {
	doc := p.takeLeadComment()

	var names []*ast.Ident
	var typ ast.Expr

	if p.tok == token.MUL {
		star := p.pos
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseType()
		if err != nil {
			return nil, err
		}
		typ = &ast.StarExpr{Star: star, X: x}
	} else if p.tok == token.IDENT {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if p.tok == token.PERIOD {
			// embedded qualified type: pkg.Type
			sel, err := p.parseQualifiedIdentRest(id)
			if err != nil {
				return nil, err
			}
			typ = sel
		} else if p.tok == token.STRING || p.tok == token.SEMICOLON || p.tok == token.RBRACE {
			// embedded field: the ident itself is the type
			typ = id
		} else {
			names = []*ast.Ident{id}
			for p.tok == token.COMMA {
				if err := p.next(); err != nil {
					return nil, err
				}
				id, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				names = append(names, id)
			}
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			typ = t
		}
	} else {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		typ = t
	}

	var tag *ast.BasicLit
	if p.tok == token.STRING {
		tag = &ast.BasicLit{ValuePos: p.pos, Kind: token.STRING, Value: p.lit}
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	return &ast.Field{Doc: doc, Names: names, Type: typ, Tag: tag}, nil
}

func (p *Parser) parseInterfaceType() (*ast.InterfaceType, error) {
	ifacePos := p.pos
	if err := p.next(); err != nil {
		return nil, err
	}
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	var methods []*ast.Field
	for p.tok != token.RBRACE && p.tok != token.EOF {
		m, err := p.parseMethodSpec()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
	}
	rbrace, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceType{Interface: ifacePos, Methods: &ast.FieldList{Opening: lbrace, List: methods, Closing: rbrace}}, nil
}

// parseMethodSpec parses either an embedded interface name or a method
// signature "Name(Params) Results" (spec §4.3).
func (p *Parser) parseMethodSpec() (*ast.Field, error) {
	doc := p.takeLeadComment()
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if p.tok == token.PERIOD {
		sel, err := p.parseQualifiedIdentRest(id)
		if err != nil {
			return nil, err
		}
		return &ast.Field{Doc: doc, Type: sel}, nil
	}
	if p.tok != token.LPAREN {
		// embedded interface name
		return &ast.Field{Doc: doc, Type: id}, nil
	}
	params, err := p.parseParameters(true)
	if err != nil {
		return nil, err
	}
	results, err := p.parseResult()
	if err != nil {
		return nil, err
	}
	return &ast.Field{Doc: doc, Names: []*ast.Ident{id}, Type: &ast.FuncType{Params: params, Results: results}}, nil
}

// --- parameter list disambiguation (spec §4.3) ---

type rawParam struct {
	name *ast.Ident
	typ  ast.Expr
}

func (p *Parser) parseParamElement() (*ast.Ident, ast.Expr, error) {
	if p.tok == token.ELLIPSIS {
		pos := p.pos
		if err := p.next(); err != nil {
			return nil, nil, err
		}
		elt, err := p.parseType()
		if err != nil {
			return nil, nil, err
		}
		return nil, &ast.Ellipsis{Ellipsis: pos, Elt: elt}, nil
	}

	if p.tok == token.IDENT {
		id, err := p.parseIdent()
		if err != nil {
			return nil, nil, err
		}
		switch p.tok {
		case token.PERIOD:
			sel, err := p.parseQualifiedIdentRest(id)
			if err != nil {
				return nil, nil, err
			}
			return nil, sel, nil
		case token.COMMA, token.RPAREN:
			return nil, id, nil
		case token.ELLIPSIS:
			pos := p.pos
			if err := p.next(); err != nil {
				return nil, nil, err
			}
			elt, err := p.parseType()
			if err != nil {
				return nil, nil, err
			}
			return id, &ast.Ellipsis{Ellipsis: pos, Elt: elt}, nil
		default:
			typ, err := p.parseType()
			if err != nil {
				return nil, nil, err
			}
			return id, typ, nil
		}
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, nil, err
	}
	return nil, typ, nil
}

// parseParameters parses a parenthesized parameter list, disambiguating
// "Name Type" groups from bare unnamed types by the position at which a
// type finally appears after a run of bare identifiers (spec §4.3).
func (p *Parser) parseParameters(ellipsisOK bool) (*ast.FieldList, error) {
	_ = ellipsisOK
	lparen, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}

	var raw []rawParam
	for p.tok != token.RPAREN && p.tok != token.EOF {
		name, typ, err := p.parseParamElement()
		if err != nil {
			return nil, err
		}
		raw = append(raw, rawParam{name: name, typ: typ})
		if p.tok != token.COMMA {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}

	fields, err := groupParams(raw)
	if err != nil {
		return nil, err
	}
	return &ast.FieldList{Opening: lparen, List: fields, Closing: rparen}, nil
}

func groupParams(raw []rawParam) ([]*ast.Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	named := false
	for _, r := range raw {
		if r.name != nil {
			named = true
			break
		}
	}

	if !named {
		fields := make([]*ast.Field, len(raw))
		for i, r := range raw {
			fields[i] = &ast.Field{Type: r.typ}
		}
		return fields, nil
	}

	var fields []*ast.Field
	var pending []*ast.Ident
	for _, r := range raw {
		if r.name == nil {
			id, ok := r.typ.(*ast.Ident)
			if !ok {
				return nil, errUnexpected
			}
			pending = append(pending, id)
			continue
		}
		names := append(pending, r.name)
		fields = append(fields, &ast.Field{Names: names, Type: r.typ})
		pending = nil
	}
	if len(pending) > 0 {
		return nil, errUnexpected
	}
	return fields, nil
}

// parseResult parses a function's result type(s): nothing, a single
// unparenthesized type, or a parenthesized, possibly-named list
// (spec §4.3).
func (p *Parser) parseResult() (*ast.FieldList, error) {
	if p.tok == token.LPAREN {
		return p.parseParameters(false)
	}
	if isTypeStart(p.tok) {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.FieldList{List: []*ast.Field{{Type: typ}}}, nil
	}
	return nil, nil
}

func isTypeStart(tok token.Token) bool {
	switch tok {
	case token.IDENT, token.MUL, token.ARROW, token.CHAN, token.LBRACK,
		token.MAP, token.STRUCT, token.INTERFACE, token.FUNC, token.LPAREN:
		return true
	}
	return false
}
