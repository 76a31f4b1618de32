package token

import (
	"fmt"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota + 1
	identifierToken
	groupBlockToken
	doubleQuotedToken
	singleQuotedToken
	punctToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
var groupBlockMatcher = parsly.NewToken(groupBlockToken, "GroupBlock", matcher.NewBlock('{', '}', '\\'))
var doubleQuotedMatcher = parsly.NewToken(doubleQuotedToken, "DoubleQuote", matcher.NewBlock('"', '"', '\\'))
var singleQuotedMatcher = parsly.NewToken(singleQuotedToken, "SingleQuote", matcher.NewBlock('\'', '\'', '\\'))
var punctMatcher = parsly.NewToken(punctToken, "Punct", &punctMatch{})

type identifierMatch struct{}

func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	if !isIdentifierStart(cursor.Input[cursor.Pos]) {
		return 0
	}
	pos := cursor.Pos + 1
	for pos < cursor.InputSize && isIdentifierPart(cursor.Input[pos]) {
		pos++
	}
	return pos - cursor.Pos
}

type punctMatch struct{}

func (p *punctMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	switch cursor.Input[cursor.Pos] {
	case ':', '.', ',', ';', '=', '~':
		return 1
	}
	return 0
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || (b >= '0' && b <= '9')
}

// Lex turns a path expression into its token sequence. Group blocks are
// lexed recursively; token positions are byte offsets into the original
// expression text.
func Lex(expr string) ([]Token, error) {
	return lex(expr, 0)
}

func lex(src string, base int) ([]Token, error) {
	cursor := parsly.NewCursor("", []byte(src), 0)
	var out []Token
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher,
			identifierMatcher,
			groupBlockMatcher,
			doubleQuotedMatcher,
			singleQuotedMatcher,
			punctMatcher,
		)
		switch matched.Code {
		case identifierToken:
			out = append(out, Token{Kind: Ident, Text: matched.Text(cursor), Pos: base + matched.Offset})
		case punctToken:
			out = append(out, Token{Kind: Punct, Text: matched.Text(cursor), Pos: base + matched.Offset})
		case doubleQuotedToken, singleQuotedToken:
			text := matched.Text(cursor)
			out = append(out, Token{Kind: Literal, Text: text[1 : len(text)-1], Pos: base + matched.Offset})
		case groupBlockToken:
			text := matched.Text(cursor)
			inner, err := lex(text[1:len(text)-1], base+matched.Offset+1)
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: Group, Text: text[1 : len(text)-1], Pos: base + matched.Offset, Tokens: inner})
		case parsly.EOF:
			return out, nil
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", src[cursor.Pos], base+cursor.Pos)
		}
	}
	return out, nil
}
