package scanner

import (
	"github.com/abdolence/struct-path-go/internal/token"
)

// Config toggles grammar features that are deliberately explicit
// configuration rather than hardwired behavior.
type Config struct {
	// OptionalChain accepts '~' as a field-join operator. The segment is
	// tagged JoinOptional and formats exactly like '.'.
	OptionalChain bool
}

// DefaultConfig enables the optional-chain operator.
func DefaultConfig() Config {
	return Config{OptionalChain: true}
}

// Scanner turns a token sequence into a ParsedExpression in a single
// left-to-right pass with no backtracking.
type Scanner interface {
	Scan(tokens []token.Token) (*ParsedExpression, error)
}

// New creates a scanner for one output shape. Both shapes share every
// transition rule; the shape only matters once entries are assembled
// into output.
func New(shape OutputShape, cfg Config) Scanner {
	return &scannerImpl{shape: shape, cfg: cfg}
}

type scannerImpl struct {
	shape OutputShape
	cfg   Config
}

// state enumerates the scanner positions. The central subtlety of the
// grammar is the overloaded "::": after a field segment has been read,
// a second colon run turns that segment into a struct-reference
// extension (stateFieldColon1 -> stateFieldStart) instead of opening a
// new field.
type state int

const (
	stateRefIdent state = iota
	stateRefAfterIdent
	stateRefColon1
	stateFieldStart
	stateFieldIdent
	stateFieldJoin
	stateFieldColon1
	stateEntryClosed
	stateOptionKey
	stateOptionAssign
	stateOptionValue
	stateOptionNext
)

func (s state) String() string {
	switch s {
	case stateRefIdent:
		return "reading struct name"
	case stateRefAfterIdent:
		return "after struct name"
	case stateRefColon1, stateFieldColon1:
		return "after colon"
	case stateFieldStart:
		return "at field start"
	case stateFieldIdent:
		return "reading field path"
	case stateFieldJoin:
		return "after field join"
	case stateEntryClosed:
		return "after field group"
	case stateOptionKey:
		return "reading option name"
	case stateOptionAssign:
		return "awaiting option assignment"
	case stateOptionValue:
		return "reading option value"
	case stateOptionNext:
		return "after option value"
	default:
		return "unknown state"
	}
}

// run holds the mutable accumulators of a single scan.
type run struct {
	cfg   Config
	shape OutputShape

	st state

	ref       StructRef
	path      FieldPath
	nextJoin  Join
	paths     []FieldPath
	usedGroup bool

	entries []StructEntry

	optKey  string
	rawOpts map[string]string
}

func (s *scannerImpl) Scan(tokens []token.Token) (*ParsedExpression, error) {
	r := &run{cfg: s.cfg, shape: s.shape, st: stateRefIdent}
	for i := range tokens {
		if err := r.step(&tokens[i]); err != nil {
			return nil, err
		}
	}
	return r.finish()
}

func (r *run) step(tok *token.Token) error {
	switch r.st {
	case stateRefIdent:
		if tok.Kind != token.Ident {
			return &ParseError{Kind: KindMissingStructName, State: r.st.String(), Token: tok}
		}
		r.ref = append(r.ref, tok.Text)
		r.st = stateRefAfterIdent

	case stateRefAfterIdent, stateRefColon1, stateFieldColon1:
		if tok.Kind != token.Punct || tok.Text != ":" {
			return unexpected(r.st, tok)
		}
		switch r.st {
		case stateRefAfterIdent:
			r.st = stateRefColon1
		case stateRefColon1:
			r.st = stateFieldStart
		case stateFieldColon1:
			// Second colon after a field segment: the accumulated
			// segments extend the struct reference instead.
			for _, seg := range r.path {
				r.ref = append(r.ref, seg.Name)
			}
			r.path = nil
			r.st = stateFieldStart
		}

	case stateFieldStart:
		if tok.Kind == token.Punct && (tok.Text == "," || tok.Text == ";") {
			return &ParseError{Kind: KindEmptyEntry, State: r.st.String(), Token: tok, Detail: r.ref.String()}
		}
		switch tok.Kind {
		case token.Ident:
			r.path = append(r.path, Segment{Name: tok.Text, Join: JoinNone})
			r.st = stateFieldIdent
		case token.Group:
			if len(r.paths) > 0 {
				return unexpected(r.st, tok)
			}
			groupPaths, err := parseGroup(tok)
			if err != nil {
				return err
			}
			r.paths = groupPaths
			r.usedGroup = true
			r.st = stateEntryClosed
		default:
			return unexpected(r.st, tok)
		}

	case stateFieldIdent:
		if tok.Kind != token.Punct {
			return unexpected(r.st, tok)
		}
		switch tok.Text {
		case ".":
			r.nextJoin = JoinRequired
			r.st = stateFieldJoin
		case "~":
			if !r.cfg.OptionalChain {
				return unexpected(r.st, tok)
			}
			r.nextJoin = JoinOptional
			r.st = stateFieldJoin
		case ":":
			r.st = stateFieldColon1
		case ",":
			if err := r.commitEntry(tok); err != nil {
				return err
			}
			r.st = stateRefIdent
		case ";":
			if err := r.commitEntry(tok); err != nil {
				return err
			}
			r.st = stateOptionKey
		default:
			return unexpected(r.st, tok)
		}

	case stateFieldJoin:
		if tok.Kind != token.Ident {
			return unexpected(r.st, tok)
		}
		r.path = append(r.path, Segment{Name: tok.Text, Join: r.nextJoin})
		r.st = stateFieldIdent

	case stateEntryClosed:
		if tok.Kind != token.Punct {
			return unexpected(r.st, tok)
		}
		switch tok.Text {
		case ",":
			if err := r.commitEntry(tok); err != nil {
				return err
			}
			r.st = stateRefIdent
		case ";":
			if err := r.commitEntry(tok); err != nil {
				return err
			}
			r.st = stateOptionKey
		default:
			return unexpected(r.st, tok)
		}

	case stateOptionKey:
		if tok.Kind != token.Ident {
			return unexpected(r.st, tok)
		}
		r.optKey = tok.Text
		r.st = stateOptionAssign

	case stateOptionAssign:
		if tok.Kind != token.Punct || tok.Text != "=" {
			return unexpected(r.st, tok)
		}
		r.st = stateOptionValue

	case stateOptionValue:
		if tok.Kind != token.Ident && tok.Kind != token.Literal {
			return unexpected(r.st, tok)
		}
		if r.rawOpts == nil {
			r.rawOpts = map[string]string{}
		}
		r.rawOpts[r.optKey] = tok.Text
		r.optKey = ""
		r.st = stateOptionNext

	case stateOptionNext:
		if tok.Kind != token.Punct || tok.Text != "," {
			return unexpected(r.st, tok)
		}
		r.st = stateOptionKey
	}
	return nil
}

// commitEntry closes the current struct entry. tok is the separator
// that triggered the commit, nil at end of input.
func (r *run) commitEntry(tok *token.Token) error {
	if len(r.path) > 0 {
		r.paths = append(r.paths, r.path)
		r.path = nil
	}
	if len(r.ref) == 0 {
		return &ParseError{Kind: KindMissingStructName, State: r.st.String(), Token: tok}
	}
	if len(r.paths) == 0 {
		return &ParseError{Kind: KindEmptyEntry, State: r.st.String(), Token: tok, Detail: r.ref.String()}
	}
	r.entries = append(r.entries, StructEntry{Ref: r.ref, Paths: r.paths})
	r.ref = nil
	r.paths = nil
	return nil
}

func (r *run) finish() (*ParsedExpression, error) {
	switch r.st {
	case stateRefIdent:
		// Either nothing was ever read or the input ends right after a
		// comma; both leave no struct name for the pending entry.
		return nil, &ParseError{Kind: KindMissingStructName, State: r.st.String()}
	case stateFieldIdent, stateEntryClosed:
		if err := r.commitEntry(nil); err != nil {
			return nil, err
		}
	case stateFieldStart:
		return nil, &ParseError{Kind: KindEmptyEntry, State: r.st.String(), Detail: r.ref.String()}
	case stateOptionKey, stateOptionNext:
		// A trailing comma or a bare ';' with no options is accepted.
	default:
		return nil, unexpected(r.st, nil)
	}

	opts, err := r.freezeOptions()
	if err != nil {
		return nil, err
	}
	return &ParsedExpression{
		Entries:   r.entries,
		Opts:      opts,
		Shape:     r.shape,
		UsedGroup: r.usedGroup,
	}, nil
}

// freezeOptions validates the accumulated raw options and builds the
// immutable Options value handed to the formatter.
func (r *run) freezeOptions() (Options, error) {
	opts := DefaultOptions()
	for key, value := range r.rawOpts {
		switch key {
		case "delim":
			opts.Delim = value
		case "case":
			switch CaseMode(value) {
			case CaseCamel, CasePascal:
				opts.Case = CaseMode(value)
			case "none":
				opts.Case = CaseNone
			default:
				return Options{}, &ParseError{Kind: KindUnknownOptionValue, Detail: value}
			}
		default:
			if opts.Extra == nil {
				opts.Extra = map[string]string{}
			}
			opts.Extra[key] = value
		}
	}
	return opts, nil
}
