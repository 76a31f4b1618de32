// Package source discovers structpath directive comments in a Go
// package. A directive has the form
//
//	//structpath:path  Name Parent::field.path; delim="/", case="camel"
//	//structpath:paths Name Parent::{field_a, field_b}
//
// where Name is the identifier declared in the generated file and the
// remainder is a path expression.
package source

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

const (
	pathPrefix  = "//structpath:path "
	pathsPrefix = "//structpath:paths "
)

// Form identifies which public entry point a directive invokes.
type Form int

const (
	FormPath Form = iota
	FormPaths
)

// Directive is one discovered invocation, with enough position
// information to attribute errors to the call site.
type Directive struct {
	Form Form
	Name string
	Expr string
	File string
	Line int
}

// Package holds the target package identity and its directives in
// file, then source order.
type Package struct {
	Name       string
	Path       string
	Directives []Directive
}

// Loader locates directives in a package.
type Loader interface {
	Load(pkgPath string, skipFile string) (*Package, error)
}

type loaderImpl struct{}

// New returns the default loader.
func New() Loader {
	return &loaderImpl{}
}

func (l *loaderImpl) Load(pkgPath string, skipFile string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has load errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	pkg := pkgs[0]

	out := &Package{Name: pkg.Name, Path: pkg.PkgPath}
	seen := map[string]string{}
	fset := token.NewFileSet()
	for _, file := range pkg.GoFiles {
		base := filepath.Base(file)
		// Generated files never carry directives; re-reading a stale
		// output file must not influence discovery.
		if strings.HasSuffix(base, "_gen.go") {
			continue
		}
		if skipFile != "" && base == skipFile {
			continue
		}
		directives, err := scanFile(fset, file)
		if err != nil {
			return nil, err
		}
		for _, d := range directives {
			if prev, ok := seen[d.Name]; ok {
				return nil, fmt.Errorf("%s:%d: duplicate directive name %q (first declared at %s)", d.File, d.Line, d.Name, prev)
			}
			seen[d.Name] = fmt.Sprintf("%s:%d", d.File, d.Line)
			out.Directives = append(out.Directives, d)
		}
	}
	return out, nil
}

func scanFile(fset *token.FileSet, filename string) ([]Directive, error) {
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var out []Directive
	for _, group := range f.Comments {
		for _, comment := range group.List {
			form := FormPath
			rest := ""
			switch {
			case strings.HasPrefix(comment.Text, pathPrefix):
				rest = comment.Text[len(pathPrefix):]
			case strings.HasPrefix(comment.Text, pathsPrefix):
				form = FormPaths
				rest = comment.Text[len(pathsPrefix):]
			default:
				continue
			}

			pos := fset.Position(comment.Pos())
			name, expr, err := splitDirective(rest)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", pos.Filename, pos.Line, err)
			}
			out = append(out, Directive{
				Form: form,
				Name: name,
				Expr: expr,
				File: pos.Filename,
				Line: pos.Line,
			})
		}
	}
	return out, nil
}

func splitDirective(rest string) (name string, expr string, err error) {
	rest = strings.TrimSpace(rest)
	name, expr, _ = strings.Cut(rest, " ")
	expr = strings.TrimSpace(expr)
	if name == "" || expr == "" {
		return "", "", fmt.Errorf("directive needs a name and an expression")
	}
	if !isGoIdentifier(name) {
		return "", "", fmt.Errorf("directive name %q is not a valid identifier", name)
	}
	return name, expr, nil
}

func isGoIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
