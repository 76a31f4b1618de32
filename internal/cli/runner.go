package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/abdolence/struct-path-go/internal/emit"
	"github.com/abdolence/struct-path-go/internal/scanner"
	"github.com/abdolence/struct-path-go/internal/source"
	"github.com/abdolence/struct-path-go/internal/token"
)

// Runner orchestrates the source/scanner/emit layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader    source.Loader
	generator emit.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(l source.Loader, g emit.Generator) Runner {
	return &runnerImpl{loader: l, generator: g}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	pkg, err := r.loader.Load(cfg.PkgPath, filepath.Base(cfg.Filename))
	if err != nil {
		return fmt.Errorf("discover directives: %w", err)
	}
	if len(pkg.Directives) == 0 {
		return fmt.Errorf("no structpath directives found in package %q", pkg.Path)
	}

	scanCfg := scanner.Config{OptionalChain: cfg.OptionalChain}
	artifacts := make([]emit.Artifact, 0, len(pkg.Directives))
	for _, d := range pkg.Directives {
		artifact, err := compile(d, scanCfg)
		if err != nil {
			return fmt.Errorf("%s:%d: directive %s: %w", d.File, d.Line, d.Name, err)
		}
		artifacts = append(artifacts, *artifact)
	}

	log.Printf("structpath: generating %d declaration(s) into %s", len(artifacts), cfg.Filename)
	return r.generator.Generate(cfg, pkg.Name, artifacts)
}

func compile(d source.Directive, scanCfg scanner.Config) (*emit.Artifact, error) {
	tokens, err := token.Lex(d.Expr)
	if err != nil {
		return nil, err
	}

	shape := scanner.Scalar
	if d.Form == source.FormPaths {
		shape = scanner.Collection
	}
	parsed, err := scanner.New(shape, scanCfg).Scan(tokens)
	if err != nil {
		return nil, err
	}
	return emit.Assemble(d.Name, parsed)
}
