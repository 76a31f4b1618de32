package scanner

import (
	"github.com/abdolence/struct-path-go/internal/token"
)

type groupState int

const (
	groupMemberStart groupState = iota
	groupAfterIdent
	groupAfterDot
)

func (s groupState) String() string {
	switch s {
	case groupMemberStart:
		return "at group member start"
	case groupAfterIdent:
		return "reading group member"
	case groupAfterDot:
		return "after dot in group member"
	default:
		return "in group"
	}
}

// parseGroup reads the contents of a braced field list into sibling
// field paths, one per comma-separated member. Members may be dotted;
// any punctuation other than '.' or ',' is rejected.
func parseGroup(group *token.Token) ([]FieldPath, error) {
	var paths []FieldPath
	var path FieldPath

	st := groupMemberStart
	for i := range group.Tokens {
		tok := &group.Tokens[i]
		switch st {
		case groupMemberStart, groupAfterDot:
			if tok.Kind != token.Ident {
				return nil, &ParseError{Kind: KindUnexpectedToken, State: st.String(), Token: tok}
			}
			join := JoinNone
			if st == groupAfterDot {
				join = JoinRequired
			}
			path = append(path, Segment{Name: tok.Text, Join: join})
			st = groupAfterIdent

		case groupAfterIdent:
			if tok.Kind != token.Punct {
				return nil, &ParseError{Kind: KindUnexpectedToken, State: st.String(), Token: tok}
			}
			switch tok.Text {
			case ".":
				st = groupAfterDot
			case ",":
				paths = append(paths, path)
				path = nil
				st = groupMemberStart
			default:
				return nil, &ParseError{Kind: KindUnexpectedToken, State: st.String(), Token: tok}
			}
		}
	}

	switch st {
	case groupAfterIdent:
		paths = append(paths, path)
	case groupAfterDot:
		return nil, &ParseError{Kind: KindUnexpectedToken, State: st.String(), Token: group}
	}

	if len(paths) == 0 {
		return nil, &ParseError{Kind: KindEmptyGroup, State: groupMemberStart.String(), Token: group}
	}
	return paths, nil
}
