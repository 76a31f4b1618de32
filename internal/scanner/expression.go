package scanner

import "strings"

// Join is the operator that attached a field segment to its predecessor.
type Join int

const (
	JoinNone Join = iota
	JoinRequired
	JoinOptional
)

// Segment is one field name inside a field path.
type Segment struct {
	Name string
	Join Join
}

// FieldPath is an ordered, non-empty list of field segments. The first
// segment carries JoinNone, every subsequent one the operator that
// preceded it.
type FieldPath []Segment

// String renders the path literally as written, with the optional-chain
// operator normalized to a dot.
func (p FieldPath) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
	}
	return b.String()
}

// StructRef is the ordered, non-empty segment list of a struct reference.
type StructRef []string

func (r StructRef) String() string {
	return strings.Join(r, "::")
}

// StructEntry pairs a struct reference with the field paths read for it.
type StructEntry struct {
	Ref   StructRef
	Paths []FieldPath
}

// CaseMode selects the per-segment case transform applied by the formatter.
type CaseMode string

const (
	// CaseNone leaves segments untouched. It is the default and is also
	// selectable explicitly as case=none.
	CaseNone   CaseMode = ""
	CaseCamel  CaseMode = "camel"
	CasePascal CaseMode = "pascal"
)

// Options holds the formatting options of one expression. The value is
// frozen when the scan completes; the scanner never hands out a
// partially populated map.
type Options struct {
	Delim string
	Case  CaseMode
	// Extra keeps unrecognized option keys verbatim. They have no effect
	// but are accepted for forward compatibility.
	Extra map[string]string
}

// DefaultOptions returns the options in effect when no options section
// is present.
func DefaultOptions() Options {
	return Options{Delim: "."}
}

// OutputShape is the output-arity contract of the invoking form.
type OutputShape int

const (
	Scalar OutputShape = iota
	Collection
)

func (s OutputShape) String() string {
	if s == Collection {
		return "collection"
	}
	return "scalar"
}

// ParsedExpression is the validated result of one scan.
type ParsedExpression struct {
	Entries []StructEntry
	Opts    Options
	Shape   OutputShape
	// UsedGroup records that at least one entry took the grouped
	// field-list form, which switches the scalar form to a sequence
	// result.
	UsedGroup bool
}
