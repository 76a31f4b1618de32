// Package format renders a scanned field path into its final string
// form, applying the delimiter and case options of the expression.
package format

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/abdolence/struct-path-go/internal/scanner"
)

// Format is a pure function from (path, options) to the output string.
// The case transform is applied to each segment independently; the
// delimiter is inserted between segments regardless of case mode.
//
// The case value is validated here as well as in the scanner, so that
// an unknown mode is rejected no matter which layer sees it first.
func Format(path scanner.FieldPath, opts scanner.Options) (string, error) {
	delim := opts.Delim
	if delim == "" {
		delim = "."
	}

	segments := make([]string, 0, len(path))
	for _, seg := range path {
		name := seg.Name
		switch opts.Case {
		case scanner.CaseNone, "none":
		case scanner.CaseCamel:
			name = strcase.ToLowerCamel(name)
		case scanner.CasePascal:
			name = strcase.ToCamel(name)
		default:
			return "", &scanner.ParseError{Kind: scanner.KindUnknownOptionValue, Detail: string(opts.Case)}
		}
		segments = append(segments, name)
	}
	return strings.Join(segments, delim), nil
}
