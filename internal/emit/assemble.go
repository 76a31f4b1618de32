package emit

import (
	"github.com/abdolence/struct-path-go/internal/format"
	"github.com/abdolence/struct-path-go/internal/scanner"
)

// Artifact is the fully assembled output of one directive: its checks
// plus either a single string constant or a fixed-length string array.
type Artifact struct {
	Name   string
	Checks []Check
	Scalar bool
	Value  string
	Values []string
}

// Assemble applies the output-arity contract to a parsed expression.
//
// Collection shape, and scalar shape when a grouped field list was
// used, produce one element per field path across every entry, in
// encounter order. Scalar shape otherwise joins the single path of
// every entry into one continued path and formats it as a whole, so the
// delimiter option also applies at entry boundaries.
func Assemble(name string, expr *scanner.ParsedExpression) (*Artifact, error) {
	artifact := &Artifact{Name: name, Checks: Checks(expr)}

	if expr.Shape == scanner.Collection || expr.UsedGroup {
		for _, entry := range expr.Entries {
			for _, path := range entry.Paths {
				value, err := format.Format(path, expr.Opts)
				if err != nil {
					return nil, err
				}
				artifact.Values = append(artifact.Values, value)
			}
		}
		if len(artifact.Values) == 0 {
			return nil, &scanner.ParseError{Kind: scanner.KindEmptyOutput, Detail: name}
		}
		return artifact, nil
	}

	var continued scanner.FieldPath
	for _, entry := range expr.Entries {
		for _, path := range entry.Paths {
			for i, seg := range path {
				if i == 0 && len(continued) > 0 {
					seg.Join = scanner.JoinRequired
				}
				continued = append(continued, seg)
			}
		}
	}
	if len(continued) == 0 {
		return nil, &scanner.ParseError{Kind: scanner.KindEmptyOutput, Detail: name}
	}

	value, err := format.Format(continued, expr.Opts)
	if err != nil {
		return nil, err
	}
	artifact.Scalar = true
	artifact.Value = value
	return artifact, nil
}
