package token

// Kind classifies a lexical token of a path expression.
type Kind int

const (
	Ident Kind = iota
	Punct
	Literal
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "identifier"
	case Punct:
		return "punctuation"
	case Literal:
		return "literal"
	case Group:
		return "group"
	default:
		return "unknown"
	}
}

// Token is one element of the flat token sequence the scanner consumes.
// A Group token carries its already-lexed contents in Tokens; groups nest
// at most one level in the grammar, deeper nesting is rejected downstream.
type Token struct {
	Kind   Kind
	Text   string
	Pos    int
	Tokens []Token
}
