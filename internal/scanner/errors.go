package scanner

import (
	"fmt"

	"github.com/abdolence/struct-path-go/internal/token"
)

// Kind identifies the class of a parse failure.
type Kind int

const (
	KindUnexpectedToken Kind = iota
	KindEmptyEntry
	KindEmptyGroup
	KindEmptyOutput
	KindUnknownOptionValue
	KindMissingStructName
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedToken:
		return "unexpected token"
	case KindEmptyEntry:
		return "empty entry"
	case KindEmptyGroup:
		return "empty group"
	case KindEmptyOutput:
		return "empty output"
	case KindUnknownOptionValue:
		return "unknown option value"
	case KindMissingStructName:
		return "missing struct name"
	default:
		return "parse error"
	}
}

// ParseError describes a failed scan: the failure class, the scanner
// state at failure, and the offending token (nil at end of input).
type ParseError struct {
	Kind   Kind
	State  string
	Token  *token.Token
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Token != nil {
		msg = fmt.Sprintf("%s: %s %q at offset %d", msg, e.Token.Kind, e.Token.Text, e.Token.Pos)
	} else if e.Kind == KindUnexpectedToken {
		msg += ": end of input"
	}
	if e.State != "" {
		msg += " (while " + e.State + ")"
	}
	return msg
}

func unexpected(st state, tok *token.Token) *ParseError {
	return &ParseError{Kind: KindUnexpectedToken, State: st.String(), Token: tok}
}
