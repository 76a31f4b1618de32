package emit

import (
	"strings"

	"github.com/abdolence/struct-path-go/internal/scanner"
)

// Check is one never-executed accessor expression. Compiling it makes
// the host compiler verify that every segment of the path exists on the
// referenced type; nothing about it survives to runtime.
type Check struct {
	// Ref is the Go type reference, struct-reference segments joined
	// with dots. Whether the reference resolves is the compiler's call.
	Ref string
	// Path is the field path literally as written, before any delimiter
	// or case option is applied. Optional-chain joins render as plain
	// dots since a Go field access has no optional form.
	Path string
}

// Checks renders one check per (struct reference, field path) pair, in
// encounter order. Formatting options never influence checks.
func Checks(expr *scanner.ParsedExpression) []Check {
	var out []Check
	for _, entry := range expr.Entries {
		ref := strings.Join(entry.Ref, ".")
		for _, path := range entry.Paths {
			out = append(out, Check{Ref: ref, Path: path.String()})
		}
	}
	return out
}
