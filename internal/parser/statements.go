package parser

import (
	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/token"
)

func (p *Parser) parseStatement() (ast.Statement, *ierrors.Error) {
	switch p.peek().Type {
	case token.VAR:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FUNC:
		return p.parseFuncDecl()
	case token.RETURN:
		return p.parseReturn()
	case token.SHOW:
		return p.parseShow()
	case token.BRACE_L:
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarDecl() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'variable'
	nameTok, err := p.expect(token.IDENT, "tras 'variable'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ, "tras el nombre de la variable"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "tras la declaración de variable"); err != nil {
		return nil, err
	}
	return &ast.VarDeclStmt{
		Token: tok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme},
		Value: value,
	}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, *ierrors.Error) {
	tok, err := p.expect(token.BRACE_L, "para iniciar un bloque")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{Token: tok}
	for !p.check(token.BRACE_R) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.BRACE_R, "para cerrar el bloque"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseIf() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'si'
	if _, err := p.expect(token.PAREN_L, "tras 'si'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_R, "tras la condición de 'si'"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Token: tok, Condition: cond, Then: then}
	if p.match(token.ELSE) {
		if p.check(token.IF) {
			elseStmt, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseStmt
		} else {
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'mientras'
	if _, err := p.expect(token.PAREN_L, "tras 'mientras'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_R, "tras la condición de 'mientras'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'para'
	if p.check(token.EACH) {
		return p.parseForEach(tok)
	}
	if _, err := p.expect(token.PAREN_L, "tras 'para'"); err != nil {
		return nil, err
	}

	var init ast.Statement
	var err *ierrors.Error
	if !p.check(token.SEMI) {
		if p.check(token.VAR) {
			init, err = p.parseVarDecl()
		} else {
			init, err = p.parseExpressionStatement()
		}
		if err != nil {
			return nil, err
		}
	} else {
		p.advance() // bare ';'
	}

	var cond ast.Expression
	if !p.check(token.SEMI) {
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI, "tras la condición del bucle 'para'"); err != nil {
		return nil, err
	}

	var step ast.Statement
	if !p.check(token.PAREN_R) {
		stepTok := p.peek()
		stepExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		step = &ast.ExpressionStmt{Token: stepTok, Expr: stepExpr}
	}
	if _, err := p.expect(token.PAREN_R, "tras el bucle 'para'"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Token: tok, Init: init, Condition: cond, Step: step, Body: body}, nil
}

func (p *Parser) parseForEach(tok token.Token) (ast.Statement, *ierrors.Error) {
	p.advance() // 'cada'
	nameTok, err := p.expect(token.IDENT, "tras 'cada'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN, "tras el nombre de la variable de 'para cada'"); err != nil {
		return nil, err
	}
	coll, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForEachStmt{
		Token:      tok,
		Name:       &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme},
		Collection: coll,
		Body:       body,
	}, nil
}

func (p *Parser) parseFuncDecl() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'funcion'
	var name *ast.Identifier
	if p.check(token.IDENT) {
		nameTok := p.advance()
		name = &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme}
	}
	if _, err := p.expect(token.PAREN_L, "tras 'funcion'"); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	for !p.check(token.PAREN_R) {
		if len(params) > 0 {
			if _, err := p.expect(token.COMMA, "entre parámetros"); err != nil {
				return nil, err
			}
		}
		pTok, err := p.expect(token.IDENT, "como parámetro")
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Token: pTok, Value: pTok.Lexeme})
	}
	if _, err := p.expect(token.PAREN_R, "tras los parámetros"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDeclStmt{Token: tok, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'devolver'
	stmt := &ast.ReturnStmt{Token: tok}
	if !p.check(token.SEMI) {
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = val
	}
	if _, err := p.expect(token.SEMI, "tras 'devolver'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseShow() (ast.Statement, *ierrors.Error) {
	tok := p.advance() // 'mostrar'
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "tras 'mostrar'"); err != nil {
		return nil, err
	}
	return &ast.ShowStmt{Token: tok, Value: val}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, *ierrors.Error) {
	tok := p.peek()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "tras la expresión"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Token: tok, Expr: expr}, nil
}
