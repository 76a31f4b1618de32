package format

import (
	"errors"
	"testing"

	"github.com/abdolence/struct-path-go/internal/scanner"
)

func path(names ...string) scanner.FieldPath {
	p := make(scanner.FieldPath, 0, len(names))
	for i, name := range names {
		join := scanner.JoinNone
		if i > 0 {
			join = scanner.JoinRequired
		}
		p = append(p, scanner.Segment{Name: name, Join: join})
	}
	return p
}

func TestFormat_Identity(t *testing.T) {
	got, err := Format(path("value_child", "child_value_str"), scanner.DefaultOptions())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "value_child.child_value_str" {
		t.Fatalf("got %q, want identity formatting", got)
	}
}

func TestFormat_CamelWithDelim(t *testing.T) {
	opts := scanner.Options{Delim: "/", Case: scanner.CaseCamel}
	got, err := Format(path("value_child", "child_value_str"), opts)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "valueChild/childValueStr" {
		t.Fatalf("got %q, want valueChild/childValueStr", got)
	}
}

func TestFormat_Pascal(t *testing.T) {
	opts := scanner.Options{Delim: ".", Case: scanner.CasePascal}
	got, err := Format(path("value_child", "child_value_str"), opts)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "ValueChild.ChildValueStr" {
		t.Fatalf("got %q, want ValueChild.ChildValueStr", got)
	}
}

func TestFormat_CaseNeverCrossesSegments(t *testing.T) {
	// Each segment is transformed on its own; the delimiter goes between
	// segments even when the case mode removes internal separators.
	opts := scanner.Options{Delim: "_", Case: scanner.CaseCamel}
	got, err := Format(path("value_child", "child_value"), opts)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "valueChild_childValue" {
		t.Fatalf("got %q, want valueChild_childValue", got)
	}
}

func TestFormat_EmptyDelimDefaultsToDot(t *testing.T) {
	got, err := Format(path("a", "b"), scanner.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "a.b" {
		t.Fatalf("got %q, want a.b", got)
	}
}

func TestFormat_CaseNoneSpelledOut(t *testing.T) {
	got, err := Format(path("value_child", "child_value_str"), scanner.Options{Case: "none"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "value_child.child_value_str" {
		t.Fatalf("got %q, want identity formatting", got)
	}
}

func TestFormat_UnknownCaseMode(t *testing.T) {
	_, err := Format(path("a"), scanner.Options{Case: scanner.CaseMode("shout")})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var parseErr *scanner.ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != scanner.KindUnknownOptionValue {
		t.Fatalf("error = %v, want unknown option value", err)
	}
}

func TestFormat_DefaultOptionsMatchPathString(t *testing.T) {
	p := path("a", "b", "c")
	got, err := Format(p, scanner.DefaultOptions())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != p.String() {
		t.Fatalf("default formatting %q should equal raw path %q", got, p.String())
	}
}
