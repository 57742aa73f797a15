// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, building the internal/ast tree.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/lexer"
	"github.com/cwbudde/go-script/internal/token"
)

// Parser consumes a fully-scanned token slice and produces an *ast.Program.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New scans source completely and returns a Parser positioned at the first
// token, or a Lexical ierrors.Error if scanning fails.
func New(source string) (*Parser, *ierrors.Error) {
	l := lexer.New(source)
	toks, err := l.All()
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return nil, ierrors.New(ierrors.Lexical, lexErr.Line, lexErr.Column,
				"carácter inesperado %q", lexErr.Char)
		}
		return nil, ierrors.NewWithoutPos(ierrors.Lexical, err.Error())
	}
	return &Parser{tokens: toks}, nil
}

func (p *Parser) peek() token.Token  { return p.tokens[p.pos] }
func (p *Parser) peekNext() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}
func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(tt token.Type) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(tt token.Type, context string) (token.Token, *ierrors.Error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, ierrors.New(ierrors.Syntax, tok.Line, tok.Column,
		"se esperaba %s %s, se encontró %q", tt, context, tok.Lexeme)
}

func syntaxErr(tok token.Token, format string, args ...interface{}) *ierrors.Error {
	return ierrors.New(ierrors.Syntax, tok.Line, tok.Column, fmt.Sprintf(format, args...))
}

// ParseProgram parses the entire token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, *ierrors.Error) {
	prog := &ast.Program{}
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
