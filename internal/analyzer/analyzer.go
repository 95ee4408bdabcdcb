package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pylens-dev/pylens/internal/annotation"
	"github.com/pylens-dev/pylens/internal/config"
	"github.com/pylens-dev/pylens/internal/linter"
)

// Analyzer turns one Python file into annotations by running the configured
// linters and normalizing their reports.
type Analyzer struct {
	cfg      *config.Config
	registry *linter.Registry
}

// New creates an analyzer using the global linter registry.
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		registry: linter.Global(),
	}
}

// AnalyzeFile analyzes a single file. Non-Python paths are skipped and
// return no annotations. The returned slice is fresh on every call;
// nothing is cached between invocations.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) ([]annotation.Annotation, error) {
	if !strings.HasSuffix(path, ".py") {
		return nil, nil
	}

	if a.cfg.Analyzer.StripWhitespace {
		if _, err := CleanupFile(path); err != nil {
			return nil, fmt.Errorf("whitespace cleanup failed: %w", err)
		}
	}

	if a.cfg.Flake8.Enabled() {
		return a.runFlake8(ctx, path)
	}
	return a.runDefault(ctx, path)
}

// runDefault runs pycodestyle and pyflakes concurrently and merges their
// findings. A tool that fails to run is logged and skipped so the other
// can still report.
func (a *Analyzer) runDefault(ctx context.Context, path string) ([]annotation.Annotation, error) {
	opts := linter.Options{
		MaxLineLength: a.cfg.Analyzer.MaxLineLength,
		Ignore:        a.cfg.Analyzer.Ignore,
	}

	var (
		mu   sync.Mutex
		anns []annotation.Annotation
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range []string{"pycodestyle", "pyflakes"} {
		g.Go(func() error {
			found, err := a.runOne(ctx, name, opts, path)
			if err != nil {
				log.Printf("warning: %s failed: %v", name, err)
				return nil
			}
			mu.Lock()
			anns = append(anns, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return annotation.Dedupe(anns), nil
}

// runFlake8 runs flake8 once per configured argument set and merges the
// results. A failing run is logged and skipped.
func (a *Analyzer) runFlake8(ctx context.Context, path string) ([]annotation.Annotation, error) {
	var anns []annotation.Annotation

	for _, args := range a.cfg.Flake8.Args {
		opts := linter.Options{
			Ignore:    a.cfg.Analyzer.Ignore,
			ExtraArgs: args,
		}
		found, err := a.runOne(ctx, "flake8", opts, path)
		if err != nil {
			log.Printf("warning: flake8 failed: %v", err)
			continue
		}
		anns = append(anns, found...)
	}

	return annotation.Dedupe(anns), nil
}

// runOne executes one registered linter and converts its report.
func (a *Analyzer) runOne(ctx context.Context, name string, opts linter.Options, path string) ([]annotation.Annotation, error) {
	l, err := a.registry.Get(name)
	if err != nil {
		return nil, err
	}

	output, err := l.Execute(ctx, opts, []string{path})
	if err != nil {
		return nil, err
	}

	violations, err := l.ParseOutput(output)
	if err != nil {
		return nil, fmt.Errorf("parse %s report: %w", name, err)
	}

	source := sourceFor(name)
	anns := make([]annotation.Annotation, 0, len(violations))
	for _, v := range violations {
		anns = append(anns, convert(source, v))
	}
	return anns, nil
}

// sourceFor maps a registry tool name to an annotation source.
func sourceFor(name string) annotation.Source {
	switch name {
	case "flake8":
		return annotation.SourceFlake8
	case "pycodestyle":
		return annotation.SourcePycodestyle
	default:
		return annotation.SourcePyflakes
	}
}

// convert builds the display annotation for one violation. pycodestyle
// reports are already line-scoped, so only pyflakes and flake8 findings
// carry the "Col N:" prefix.
func convert(source annotation.Source, v linter.Violation) annotation.Annotation {
	text := v.Message
	if v.Column > 0 && source != annotation.SourcePycodestyle {
		text = fmt.Sprintf("Col %d: %s", v.Column, v.Message)
	}

	style := annotation.StyleWarning
	if v.Severity == "error" {
		style = annotation.StyleError
	}

	return annotation.Annotation{
		Line:   v.Line,
		Text:   text,
		Source: source,
		Style:  style,
	}
}

// CollectFiles expands the given paths into the list of Python files to
// analyze. Directories are walked recursively; hidden directories and
// __pycache__ are skipped.
func CollectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			if strings.HasSuffix(path, ".py") {
				files = append(files, path)
			}
			continue
		}

		root := path
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// An explicitly named root is never skipped, even when
				// hidden (pylens analyze .myproj)
				if p == root {
					return nil
				}
				name := d.Name()
				if strings.HasPrefix(name, ".") || name == "__pycache__" {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(p, ".py") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
