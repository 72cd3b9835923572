package parser

import (
	"fmt"

	"github.com/chachacollins/pseudo/internal/diagnostic"
)

// SyntaxError is the single error a parse run can produce. Parsing is
// fail-fast: the first malformed construct aborts the whole parse.
type SyntaxError struct {
	Pos diagnostic.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Msg)
}

// bailout carries the syntax error up to Parse, which recovers it.
// Escaping library code via os.Exit is the driver's job, not ours.
type bailout struct {
	err *SyntaxError
}

// fail aborts the parse with a formatted syntax error
func (p *Parser) fail(pos diagnostic.Position, format string, args ...interface{}) {
	panic(bailout{err: &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}
