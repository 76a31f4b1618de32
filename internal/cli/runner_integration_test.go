package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdolence/struct-path-go/internal/emit"
	"github.com/abdolence/struct-path-go/internal/source"
)

func newTestRunner() Runner {
	return NewRunner(
		source.New(),
		emit.New(emit.NewGoimportsFormatter(), emit.NewFileWriter()),
	)
}

func TestRunner_Run_GeneratesPathDeclarations(t *testing.T) {
	out := filepath.Join(t.TempDir(), "paths_gen.go")

	cfg := &Config{
		PkgPath:       "github.com/abdolence/struct-path-go/testdata/profile",
		Filename:      out,
		OptionalChain: true,
	}
	if err := newTestRunner().Run(cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(content)

	checks := []string{
		"package profile",
		`const ValueStrPath = "value_str"`,
		`const ChildStrPath = "valueChild/childValueStr"`,
		`const MixedPath = "value_str.child_value_str"`,
		`const OptChildPath = "opt_value_child.child_value_str"`,
		"var ParentColumns = [...]string{",
		`"value_num",`,
		"var CrossColumns = [...]string{",
		`"child_value_str",`,
		"var _ = func(v *TestParent) {",
		"_ = v.value_child.child_value_str",
		"_ = v.opt_value_child.child_value_str",
		"var _ = func(v *TestChild) {",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Fatalf("generated code does not contain %q\n%s", check, got)
		}
	}
}

func TestRunner_Run_OptionalChainDisabled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "paths_gen.go")

	cfg := &Config{
		PkgPath:       "github.com/abdolence/struct-path-go/testdata/profile",
		Filename:      out,
		OptionalChain: false,
	}
	err := newTestRunner().Run(cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "OptChildPath") {
		t.Fatalf("error should name the failing directive: %v", err)
	}
	if !strings.Contains(err.Error(), "types.go:") {
		t.Fatalf("error should point at the call site: %v", err)
	}
}

func TestRunner_Run_DuplicateNames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "paths_gen.go")

	cfg := &Config{
		PkgPath:       "github.com/abdolence/struct-path-go/testdata/dupname",
		Filename:      out,
		OptionalChain: true,
	}
	err := newTestRunner().Run(cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate directive name") {
		t.Fatalf("unexpected error: %v", err)
	}
}
