package lexer

import "github.com/chachacollins/pseudo/internal/diagnostic"

// Lexer scans pseudo source code and produces tokens one at a time.
// The scan is a single left-to-right pass with one character of lookahead.
type Lexer struct {
	input        string
	filename     string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	row          int  // current row number
	column       int  // current column number
}

// New creates a new Lexer for the named source text
func New(filename, input string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		row:      1,
		column:   0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// pos returns the position of the current character
func (l *Lexer) pos() diagnostic.Position {
	return diagnostic.Position{File: l.filename, Row: l.row, Col: l.column}
}

// skipWhitespace skips whitespace and // comments
func (l *Lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '\n':
			l.row++
			l.column = 0
			l.readChar()
		case '/':
			if l.peekChar() != '/' {
				return
			}
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a run of decimal digits. No sign, no decimal point;
// range checking happens during semantic analysis.
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString reads a string literal. There is no escape handling: the
// literal runs to the next '"', so an embedded quote or backslash cannot
// be expressed.
func (l *Lexer) readString() string {
	l.readChar() // consume opening quote
	position := l.position
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\n' {
			l.row++
			l.column = 0
		}
		l.readChar()
	}
	str := l.input[position:l.position]
	l.readChar() // consume closing quote
	return str
}

// NextToken returns the next token from the input. After end of input it
// returns EOF tokens forever.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos()

	switch l.ch {
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Kind: WALRUS, Pos: pos}
		}
		l.readChar()
		return Token{Kind: COLON, Pos: pos}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Kind: EQ, Pos: pos}
		}
		l.readChar()
		return Token{Kind: ASSIGN, Pos: pos}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Kind: NEQ, Pos: pos}
		}
		l.readChar()
		return Token{Kind: NOT, Pos: pos}
	case ';':
		l.readChar()
		return Token{Kind: SEMICOLON, Pos: pos}
	case ',':
		l.readChar()
		return Token{Kind: COMMA, Pos: pos}
	case '(':
		l.readChar()
		return Token{Kind: LPAREN, Pos: pos}
	case ')':
		l.readChar()
		return Token{Kind: RPAREN, Pos: pos}
	case '+':
		l.readChar()
		return Token{Kind: PLUS, Pos: pos}
	case '-':
		l.readChar()
		return Token{Kind: MINUS, Pos: pos}
	case '*':
		l.readChar()
		return Token{Kind: STAR, Pos: pos}
	case '/':
		l.readChar()
		return Token{Kind: SLASH, Pos: pos}
	case '%':
		l.readChar()
		return Token{Kind: PERCENT, Pos: pos}
	case '"':
		str := l.readString()
		return Token{Kind: STRING_LIT, Literal: str, Pos: pos}
	case 0:
		return Token{Kind: EOF, Pos: pos}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			kind := LookupIdent(ident)
			if kind != IDENT {
				return Token{Kind: kind, Pos: pos}
			}
			return Token{Kind: IDENT, Literal: ident, Pos: pos}
		}
		if isDigit(l.ch) {
			num := l.readNumber()
			return Token{Kind: NUMBER, Literal: num, Pos: pos}
		}
		ch := l.ch
		l.readChar()
		return Token{Kind: ILLEGAL, Literal: string(ch), Pos: pos}
	}
}

// Tokenize returns all tokens from the input, ending with EOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
