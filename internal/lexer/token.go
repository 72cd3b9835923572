package lexer

import (
	"fmt"

	"github.com/chachacollins/pseudo/internal/diagnostic"
)

// TokenKind represents the kind of a token
type TokenKind int

const (
	// Special tokens
	ILLEGAL TokenKind = iota
	EOF

	// Literals
	IDENT      // x, total
	NUMBER     // 123
	STRING_LIT // "hello"

	// Keywords
	FUNC
	PROC
	START
	STOP
	WRITE
	RETURN
	AND
	OR
	IF
	THEN
	ELSE
	END
	SET
	MUT
	TRUE
	FALSE

	// Type keywords
	INT_TYPE
	NAT_TYPE
	STRING_TYPE
	BOOL_TYPE

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	EQ      // ==
	NEQ     // !=
	NOT     // !
	ASSIGN  // =
	WALRUS  // :=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
)

// Token represents a lexical token. Tokens are never mutated after creation.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     diagnostic.Position
}

// String returns the token as it should appear in error messages.
// Payload-carrying kinds include their literal.
func (t Token) String() string {
	switch t.Kind {
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	case NUMBER:
		return fmt.Sprintf("number %q", t.Literal)
	case STRING_LIT:
		return fmt.Sprintf("string %q", t.Literal)
	case ILLEGAL:
		return fmt.Sprintf("illegal %s", t.Literal)
	default:
		return t.Kind.String()
	}
}

// String returns the source spelling of the token kind
func (k TokenKind) String() string {
	switch k {
	case ILLEGAL:
		return "illegal"
	case EOF:
		return "eof"
	case IDENT:
		return "identifier"
	case NUMBER:
		return "number"
	case STRING_LIT:
		return "string"
	case FUNC:
		return "func"
	case PROC:
		return "proc"
	case START:
		return "start"
	case STOP:
		return "stop"
	case WRITE:
		return "write"
	case RETURN:
		return "return"
	case AND:
		return "and"
	case OR:
		return "or"
	case IF:
		return "if"
	case THEN:
		return "then"
	case ELSE:
		return "else"
	case END:
		return "end"
	case SET:
		return "set"
	case MUT:
		return "mut"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case INT_TYPE:
		return "int"
	case NAT_TYPE:
		return "nat"
	case STRING_TYPE:
		return "string"
	case BOOL_TYPE:
		return "bool"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case NOT:
		return "!"
	case ASSIGN:
		return "="
	case WALRUS:
		return ":="
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case COMMA:
		return ","
	case COLON:
		return ":"
	case SEMICOLON:
		return ";"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// keywords maps keyword strings to their token kinds
var keywords = map[string]TokenKind{
	"func":   FUNC,
	"proc":   PROC,
	"start":  START,
	"stop":   STOP,
	"write":  WRITE,
	"return": RETURN,
	"and":    AND,
	"or":     OR,
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"end":    END,
	"set":    SET,
	"mut":    MUT,
	"true":   TRUE,
	"false":  FALSE,
	"int":    INT_TYPE,
	"nat":    NAT_TYPE,
	"string": STRING_TYPE,
	"bool":   BOOL_TYPE,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}
