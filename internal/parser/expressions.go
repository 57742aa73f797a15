package parser

import (
	"strconv"

	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/token"
)

func (p *Parser) parseExpression() (ast.Expression, *ierrors.Error) {
	return p.parseAssignment()
}

// parseAssignment implements assignment as an expression-level construct:
// IDENT '=' assignment, falling back to logic_or otherwise.
func (p *Parser) parseAssignment() (ast.Expression, *ierrors.Error) {
	expr, err := p.parseLogicOr()
	if err != nil {
		return nil, err
	}
	if p.check(token.EQ) {
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			tok := p.peek()
			return nil, syntaxErr(tok, "el lado izquierdo de '=' debe ser una variable")
		}
		eqTok := p.advance()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Token: eqTok, Name: ident, Value: value}, nil
	}
	return expr, nil
}

func (p *Parser) parseLogicOr() (ast.Expression, *ierrors.Error) {
	left, err := p.parseLogicAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.OR) {
		opTok := p.advance()
		right, err := p.parseLogicAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Token: opTok, Left: left, Operator: "o", Right: right}
	}
	return left, nil
}

func (p *Parser) parseLogicAnd() (ast.Expression, *ierrors.Error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(token.AND) {
		opTok := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Token: opTok, Left: left, Operator: "y", Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, *ierrors.Error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.EQ_EQ) || p.check(token.NEQ) {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: opTok.Lexeme, Right: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, *ierrors.Error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.check(token.GT) || p.check(token.LT) || p.check(token.GTE) || p.check(token.LTE) {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: opTok.Lexeme, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, *ierrors.Error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: opTok.Lexeme, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, *ierrors.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
			opTok := p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: opTok.Lexeme, Right: right}
			continue
		}
		// Implicit multiplication: a numeric literal immediately followed
		// by '(' with no explicit operator, e.g. 2(3 + 4).
		if isNumericLiteral(left) && p.check(token.PAREN_L) {
			opTok := p.peek()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: "*", Right: right}
			continue
		}
		break
	}
	return left, nil
}

func isNumericLiteral(e ast.Expression) bool {
	switch e.(type) {
	case *ast.IntegerLiteral, *ast.DecimalLiteral:
		return true
	default:
		return false
	}
}

func (p *Parser) parseUnary() (ast.Expression, *ierrors.Error) {
	if p.check(token.MINUS) || p.check(token.NOT) {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Token: opTok, Operator: opTok.Lexeme, Right: right}, nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (ast.Expression, *ierrors.Error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.check(token.CARET) {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Token: opTok, Left: left, Operator: "^", Right: right}, nil
	}
	return left, nil
}

// parsePostfix handles call and index chains: f(x)[0](y).
func (p *Parser) parsePostfix() (ast.Expression, *ierrors.Error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.PAREN_L) && !isNumericLiteral(expr):
			// A numeric literal before '(' is left to parseMultiplicative's
			// implicit multiplication instead of becoming a call.
			expr, err = p.parseCallArgs(expr)
			if err != nil {
				return nil, err
			}
		case p.check(token.BRACKET_L):
			tok := p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.BRACKET_R, "tras el índice"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Token: tok, Left: expr, Index: idx}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseCallArgs(callee ast.Expression) (ast.Expression, *ierrors.Error) {
	tok := p.advance() // '('
	var args []ast.Expression
	for !p.check(token.PAREN_R) {
		if len(args) > 0 {
			if _, err := p.expect(token.COMMA, "entre argumentos"); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(token.PAREN_R, "tras los argumentos"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Token: tok, Callee: callee, Args: args}, nil
}

func (p *Parser) parsePrimary() (ast.Expression, *ierrors.Error) {
	tok := p.peek()
	// opensAttrList reports whether the token after tok is a '{' that starts
	// an HTML attribute / CSS declaration list ('}' or IDENT ':' follows it)
	// rather than a block, as in para cada x en lista { ... }.
	opensAttrList := func() bool {
		if p.peekNext().Type != token.BRACE_L || p.pos+2 >= len(p.tokens) {
			return false
		}
		after := p.tokens[p.pos+2]
		return after.Type == token.BRACE_R ||
			(after.Type == token.IDENT && p.pos+3 < len(p.tokens) && p.tokens[p.pos+3].Type == token.COLON)
	}
	switch tok.Type {
	case token.INT:
		p.advance()
		v, convErr := strconv.ParseInt(tok.Lexeme, 10, 64)
		if convErr != nil {
			return nil, syntaxErr(tok, "literal entero inválido: %s", tok.Lexeme)
		}
		return &ast.IntegerLiteral{Token: tok, Value: v}, nil
	case token.FLOAT:
		p.advance()
		return &ast.DecimalLiteral{Token: tok, Value: tok.Lexeme}, nil
	case token.STRING:
		if opensAttrList() {
			return p.parseCssRule()
		}
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil
	case token.TRUE:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: false}, nil
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Token: tok}, nil
	case token.IDENT:
		if opensAttrList() {
			return p.parseHtmlElem()
		}
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}, nil
	case token.PAREN_L:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.PAREN_R, "tras la expresión agrupada"); err != nil {
			return nil, err
		}
		return &ast.GroupedExpr{Token: tok, Inner: inner}, nil
	case token.BRACKET_L:
		return p.parseListLiteral()
	case token.BRACE_L:
		return p.parseDictLiteral()
	case token.FUNC:
		return p.parseFuncExpr()
	default:
		return nil, syntaxErr(tok, "se esperaba una expresión, se encontró %q", tok.Lexeme)
	}
}

func (p *Parser) parseFuncExpr() (ast.Expression, *ierrors.Error) {
	stmt, err := p.parseFuncDecl()
	if err != nil {
		return nil, err
	}
	return stmt.(*ast.FuncDeclStmt), nil
}

func (p *Parser) parseListLiteral() (ast.Expression, *ierrors.Error) {
	tok := p.advance() // '['
	list := &ast.ListLiteral{Token: tok}
	for !p.check(token.BRACKET_R) {
		if len(list.Elements) > 0 {
			if _, err := p.expect(token.COMMA, "entre elementos de la lista"); err != nil {
				return nil, err
			}
		}
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, el)
	}
	if _, err := p.expect(token.BRACKET_R, "tras la lista"); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseDictLiteral() (ast.Expression, *ierrors.Error) {
	tok := p.advance() // '{'
	dict := &ast.DictLiteral{Token: tok}
	for !p.check(token.BRACE_R) {
		if len(dict.Pairs) > 0 {
			if _, err := p.expect(token.COMMA, "entre pares del diccionario"); err != nil {
				return nil, err
			}
		}
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON, "tras la clave del diccionario"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		dict.Pairs = append(dict.Pairs, ast.DictPair{Key: key, Value: val})
	}
	if _, err := p.expect(token.BRACE_R, "tras el diccionario"); err != nil {
		return nil, err
	}
	return dict, nil
}

// parseHtmlElem parses nombre{atributo: valor, ...}[hijo, ...].
func (p *Parser) parseHtmlElem() (ast.Expression, *ierrors.Error) {
	tagTok := p.advance() // tag IDENT
	if _, err := p.expect(token.BRACE_L, "tras la etiqueta HTML"); err != nil {
		return nil, err
	}
	elem := &ast.HtmlElemLiteral{Token: tagTok, Tag: tagTok.Lexeme}
	for !p.check(token.BRACE_R) {
		if len(elem.Attrs) > 0 {
			if _, err := p.expect(token.COMMA, "entre atributos HTML"); err != nil {
				return nil, err
			}
		}
		nameTok, err := p.expect(token.IDENT, "como nombre de atributo HTML")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON, "tras el nombre del atributo"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elem.Attrs = append(elem.Attrs, ast.HtmlAttr{Name: nameTok.Lexeme, Value: val})
	}
	if _, err := p.expect(token.BRACE_R, "tras los atributos HTML"); err != nil {
		return nil, err
	}
	if p.check(token.BRACKET_L) {
		p.advance()
		for !p.check(token.BRACKET_R) {
			if len(elem.Children) > 0 {
				if _, err := p.expect(token.COMMA, "entre hijos HTML"); err != nil {
					return nil, err
				}
			}
			child, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elem.Children = append(elem.Children, child)
		}
		if _, err := p.expect(token.BRACKET_R, "tras los hijos HTML"); err != nil {
			return nil, err
		}
	}
	return elem, nil
}

// parseCssRule parses "selector"{propiedad: "valor", ...}.
func (p *Parser) parseCssRule() (ast.Expression, *ierrors.Error) {
	selTok := p.advance() // selector STRING
	if _, err := p.expect(token.BRACE_L, "tras el selector CSS"); err != nil {
		return nil, err
	}
	rule := &ast.CssRuleLiteral{Token: selTok, Selector: selTok.Lexeme}
	for !p.check(token.BRACE_R) {
		if len(rule.Decls) > 0 {
			if _, err := p.expect(token.COMMA, "entre declaraciones CSS"); err != nil {
				return nil, err
			}
		}
		propTok, err := p.expect(token.IDENT, "como propiedad CSS")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON, "tras la propiedad CSS"); err != nil {
			return nil, err
		}
		valTok, err := p.expect(token.STRING, "como valor CSS")
		if err != nil {
			return nil, err
		}
		rule.Decls = append(rule.Decls, ast.CssDecl{Property: propTok.Lexeme, Value: valTok.Lexeme})
	}
	if _, err := p.expect(token.BRACE_R, "tras las declaraciones CSS"); err != nil {
		return nil, err
	}
	return rule, nil
}
