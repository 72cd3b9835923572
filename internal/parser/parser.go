package parser

import (
	"github.com/chachacollins/pseudo/internal/ast"
	"github.com/chachacollins/pseudo/internal/lexer"
)

// Parser consumes the token stream lazily with one token of lookahead and
// builds the program's statement list. Any syntactic error terminates the
// parse immediately with a *SyntaxError; recovery and batching belong to
// semantic analysis, not here.
type Parser struct {
	lex     *lexer.Lexer
	peekTok lexer.Token
}

// New creates a parser over the named source text
func New(filename, source string) *Parser {
	p := &Parser{lex: lexer.New(filename, source)}
	p.peekTok = p.lex.NextToken()
	return p
}

// Parse parses the whole input. It returns the program, or the first
// syntax error encountered.
func Parse(filename, source string) (prog *ast.Program, err error) {
	p := New(filename, source)
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog = nil
			err = b.err
		}
	}()

	stmts := p.parseStatements()
	if tok := p.peek(); tok.Kind != lexer.EOF {
		p.fail(tok.Pos, "unexpected %s at top level", tok)
	}
	return &ast.Program{Statements: stmts}, nil
}

// peek returns the next token without consuming it
func (p *Parser) peek() lexer.Token {
	return p.peekTok
}

// next consumes and returns the next token
func (p *Parser) next() lexer.Token {
	tok := p.peekTok
	if tok.Kind != lexer.EOF {
		p.peekTok = p.lex.NextToken()
	}
	return tok
}

// expect consumes the next token, failing unless it has the given kind
func (p *Parser) expect(kind lexer.TokenKind) lexer.Token {
	tok := p.next()
	if tok.Kind != kind {
		p.fail(tok.Pos, "expected %s but found %s", kind, tok)
	}
	return tok
}

// got consumes the next token if it has the given kind
func (p *Parser) got(kind lexer.TokenKind) bool {
	if p.peek().Kind == kind {
		p.next()
		return true
	}
	return false
}

// expectIdent consumes an identifier token and returns its name
func (p *Parser) expectIdent() string {
	tok := p.next()
	if tok.Kind != lexer.IDENT {
		p.fail(tok.Pos, "expected identifier but found %s", tok)
	}
	return tok.Literal
}

// parseStatements parses statements until a stop/end terminator or end of
// input. The terminator is left for the caller to consume.
func (p *Parser) parseStatements() []ast.Statement {
	var statements []ast.Statement
	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.STOP, lexer.END, lexer.EOF:
			return statements
		}
		statements = append(statements, p.parseStatement())
	}
}

// parseStatement dispatches on the leading keyword
func (p *Parser) parseStatement() ast.Statement {
	tok := p.next()
	switch tok.Kind {
	case lexer.WRITE:
		return p.parseWriteStmt(tok)
	case lexer.FUNC:
		return p.parseFuncStmt(tok)
	case lexer.PROC:
		return p.parseProcStmt(tok)
	case lexer.RETURN:
		return p.parseReturnStmt(tok)
	case lexer.IF:
		return p.parseIfStmt(tok)
	case lexer.ELSE:
		return p.parseElseStmt(tok)
	case lexer.SET:
		return p.parseSetStmt(tok)
	case lexer.IDENT:
		switch p.peek().Kind {
		case lexer.LPAREN:
			return p.parseCallStmt(tok)
		case lexer.ASSIGN:
			return p.parseAssignStmt(tok)
		default:
			p.fail(tok.Pos, "expected ( or = after %s", tok)
		}
	default:
		p.fail(tok.Pos, "unexpected %s", tok)
	}
	return nil // unreachable, fail panics
}

// parseWriteStmt parses: write(<expr>);
func (p *Parser) parseWriteStmt(tok lexer.Token) *ast.WriteStmt {
	p.expect(lexer.LPAREN)
	expr := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)
	return &ast.WriteStmt{Expr: expr, Position: tok.Pos}
}

// parseReturnStmt parses: return <expr>;
func (p *Parser) parseReturnStmt(tok lexer.Token) *ast.ReturnStmt {
	expr := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &ast.ReturnStmt{Expr: expr, Position: tok.Pos}
}

// parseIfStmt parses: if <expr> then <stmts> end
func (p *Parser) parseIfStmt(tok lexer.Token) *ast.IfStmt {
	cond := p.parseExpression()
	p.expect(lexer.THEN)
	body := p.parseStatements()
	p.expect(lexer.END)
	return &ast.IfStmt{Cond: cond, Body: body, Position: tok.Pos}
}

// parseElseStmt parses: else <stmts>
// The else branch has no terminator of its own: its body runs to the
// enclosing block's stop/end keyword.
func (p *Parser) parseElseStmt(tok lexer.Token) *ast.ElseStmt {
	body := p.parseStatements()
	return &ast.ElseStmt{Body: body, Position: tok.Pos}
}

// parseSetStmt parses: set [mut] <name> := <expr>;
// or the annotated form: set [mut] <name> : <type> = <expr>;
func (p *Parser) parseSetStmt(tok lexer.Token) *ast.SetStmt {
	mutable := p.got(lexer.MUT)
	name := p.expectIdent()
	varType := ast.TypeUnknown
	if !p.got(lexer.WALRUS) {
		p.expect(lexer.COLON)
		varType = p.parseType()
		p.expect(lexer.ASSIGN)
	}
	expr := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &ast.SetStmt{
		Name:     name,
		Mutable:  mutable,
		Type:     varType,
		Expr:     expr,
		Position: tok.Pos,
	}
}

// parseAssignStmt parses: <name> = <expr>;
func (p *Parser) parseAssignStmt(tok lexer.Token) *ast.AssignStmt {
	p.expect(lexer.ASSIGN)
	expr := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &ast.AssignStmt{Name: tok.Literal, Expr: expr, Position: tok.Pos}
}

// parseFuncStmt parses: func <name>(<params>) : <type> start <stmts> stop
func (p *Parser) parseFuncStmt(tok lexer.Token) *ast.SubprogramDef {
	name := p.expectIdent()
	p.expect(lexer.LPAREN)
	params := p.parseParams()
	p.expect(lexer.RPAREN)
	p.expect(lexer.COLON)
	returnType := p.parseType()
	p.expect(lexer.START)
	body := p.parseStatements()
	p.expect(lexer.STOP)
	return &ast.SubprogramDef{
		Name:       name,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
		Position:   tok.Pos,
	}
}

// parseProcStmt parses: proc <name>(<params>) start <stmts> stop
// Procedures have no return type annotation; it is fixed to void.
func (p *Parser) parseProcStmt(tok lexer.Token) *ast.SubprogramDef {
	name := p.expectIdent()
	p.expect(lexer.LPAREN)
	params := p.parseParams()
	p.expect(lexer.RPAREN)
	p.expect(lexer.START)
	body := p.parseStatements()
	p.expect(lexer.STOP)
	return &ast.SubprogramDef{
		Name:       name,
		ReturnType: ast.TypeVoid,
		Params:     params,
		Body:       body,
		Position:   tok.Pos,
	}
}

// parseCallStmt parses: <name>(<args>);
func (p *Parser) parseCallStmt(tok lexer.Token) *ast.CallStmt {
	p.expect(lexer.LPAREN)
	args := p.parseArgs()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)
	return &ast.CallStmt{Name: tok.Literal, Args: args, Position: tok.Pos}
}

// parseParams parses a comma-separated list of name : type pairs
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.RPAREN:
			return params
		case lexer.COMMA:
			p.next()
		case lexer.IDENT:
			name := p.expectIdent()
			p.expect(lexer.COLON)
			paramType := p.parseType()
			params = append(params, &ast.Param{Name: name, Type: paramType})
		default:
			p.fail(tok.Pos, "unexpected %s in parameter list", tok)
		}
	}
}

// parseArgs parses a comma-separated list of argument expressions
func (p *Parser) parseArgs() []ast.Expression {
	var args []ast.Expression
	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.RPAREN:
			return args
		case lexer.COMMA:
			p.next()
		default:
			args = append(args, p.parseExpression())
		}
	}
}

// parseType parses one of the four value type keywords
func (p *Parser) parseType() ast.Type {
	tok := p.next()
	switch tok.Kind {
	case lexer.INT_TYPE:
		return ast.TypeInt
	case lexer.NAT_TYPE:
		return ast.TypeNat
	case lexer.STRING_TYPE:
		return ast.TypeString
	case lexer.BOOL_TYPE:
		return ast.TypeBool
	default:
		p.fail(tok.Pos, "unknown type %s", tok)
	}
	return ast.TypeUnknown // unreachable
}

// binaryOps maps operator tokens to AST operators. There are no
// precedence levels: any trailing operator takes the entire remaining
// expression as its right-hand side, so trees come out right-associative.
var binaryOps = map[lexer.TokenKind]ast.Op{
	lexer.PLUS:    ast.OpAdd,
	lexer.MINUS:   ast.OpSub,
	lexer.STAR:    ast.OpMul,
	lexer.SLASH:   ast.OpDiv,
	lexer.PERCENT: ast.OpMod,
	lexer.EQ:      ast.OpEq,
	lexer.NEQ:     ast.OpNe,
	lexer.AND:     ast.OpAnd,
	lexer.OR:      ast.OpOr,
}

// parseExpression parses a primary followed by an optional binary tail
func (p *Parser) parseExpression() ast.Expression {
	lhs := p.parsePrimary()
	for {
		op, ok := binaryOps[p.peek().Kind]
		if !ok {
			return lhs
		}
		opTok := p.next()
		rhs := p.parseExpression()
		lhs = &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs, Position: opTok.Pos}
	}
}

// parsePrimary parses a literal, variable reference, or call
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.next()
	switch tok.Kind {
	case lexer.NUMBER:
		return &ast.NumberLit{Text: tok.Literal, Position: tok.Pos}
	case lexer.STRING_LIT:
		return &ast.StringLit{Value: tok.Literal, Position: tok.Pos}
	case lexer.TRUE:
		return &ast.BoolLit{Value: true, Position: tok.Pos}
	case lexer.FALSE:
		return &ast.BoolLit{Value: false, Position: tok.Pos}
	case lexer.IDENT:
		if p.peek().Kind == lexer.LPAREN {
			p.next()
			args := p.parseArgs()
			p.expect(lexer.RPAREN)
			return &ast.CallExpr{Name: tok.Literal, Args: args, Position: tok.Pos}
		}
		return &ast.VarRef{Name: tok.Literal, Position: tok.Pos}
	default:
		p.fail(tok.Pos, "could not parse %s as an expression", tok)
	}
	return nil // unreachable
}
