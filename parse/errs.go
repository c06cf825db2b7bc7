package parse

import (
	"errors"
	"fmt"

	"github.com/jot-format/go-jot/token"
)

// ErrSyntax is the base error for malformed input. Every problem
// reported by Parse wraps it.
var ErrSyntax = errors.New("syntax error")

// ErrMaxDepth reports container nesting beyond the configured limit.
// The subtree past the limit is dropped, not parsed.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// SyntaxErr is one problem found during a parse. Err is the
// underlying lexical or structural error, Pos is where it was found,
// and Source is the label given with the Source option, if any.
type SyntaxErr struct {
	Err    error
	Pos    token.Pos
	Source string
}

func (e *SyntaxErr) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Err)
}

func (e *SyntaxErr) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}
