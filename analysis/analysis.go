// Package analysis counts the attributes and methods of every Java class in
// a source tree.
package analysis

import (
	"context"
	"fmt"

	"github.com/heshanpadmasiri/codart/java"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ClassStats holds the counts for a single class declaration.
type ClassStats struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
	// PublicAttrs counts every field declaration that is not private.
	PublicAttrs  int `yaml:"public"`
	PrivateAttrs int `yaml:"private"`
	Methods      int `yaml:"methods"`
}

// Attrs is the total number of field declarations.
func (c ClassStats) Attrs() int {
	return c.PublicAttrs + c.PrivateAttrs
}

// Report is the result of analyzing a set of files.
type Report struct {
	Files   int          `yaml:"files"`
	Classes []ClassStats `yaml:"classes"`
}

// Classes returns the statistics of every class in f in document order.
// A field declaration counts once however many variables it declares.
func Classes(f *java.File) []ClassStats {
	stats := make([]ClassStats, 0, len(f.Classes))
	for _, class := range f.Classes {
		s := ClassStats{
			Path:    f.Path,
			Name:    class.Name,
			Methods: len(class.Methods),
		}
		for _, field := range class.Fields {
			if field.Modifiers.Has(java.PRIVATE) {
				s.PrivateAttrs++
			} else {
				s.PublicAttrs++
			}
		}
		stats = append(stats, s)
	}
	return stats
}

type Options struct {
	Workers int
	Strict  bool
	Exclude []string
}

type Analyzer struct {
	opts   Options
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Analyzer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{opts: opts, logger: logger}
}

// AnalyzeDir analyzes every Java file below dir.
func (a *Analyzer) AnalyzeDir(ctx context.Context, dir string) (Report, error) {
	files, err := java.FindFiles(dir, a.opts.Exclude)
	if err != nil {
		return Report{}, err
	}
	a.logger.Debug("found java files", zap.String("dir", dir), zap.Int("count", len(files)))
	return a.AnalyzeFiles(ctx, files)
}

// AnalyzeFiles parses files concurrently. The report keeps the order of
// files regardless of completion order.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, files []string) (Report, error) {
	results := make([][]ClassStats, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := java.ParseFile(path)
			if err != nil {
				return err
			}
			if f.HasErrors() {
				if a.opts.Strict {
					return fmt.Errorf("analyzing %s: %w", path, f.Err())
				}
				a.logger.Warn("syntax errors, counts may be incomplete",
					zap.String("file", path),
					zap.Error(f.Err()))
			}
			results[i] = Classes(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Files: len(files)}
	for _, stats := range results {
		report.Classes = append(report.Classes, stats...)
	}
	return report, nil
}
