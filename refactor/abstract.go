package refactor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heshanpadmasiri/codart/java"
	"go.uber.org/zap"
)

// Verdict is the outcome of checking a class for conversion.
type Verdict int

const (
	NotFullyAbstract Verdict = iota
	NotConvertible
	Convertible
)

// ClassResult is the verdict reached for one class declaration.
type ClassResult struct {
	Name    string
	Verdict Verdict
}

func (c ClassResult) Message() string {
	switch c.Verdict {
	case Convertible:
		return c.Name + " is fully abstract and convertable."
	case NotConvertible:
		return c.Name + " is fully abstract but not convertable."
	}
	return c.Name + " is not fully abstract."
}

// FileResult is the outcome of the refactoring on one file.
type FileResult struct {
	Path     string
	Source   []byte
	Classes  []ClassResult
	Messages []string
	Changed  bool
	// Skipped is set when the file had syntax errors and was left alone.
	Skipped bool
}

// FullyAbstract reports whether a class holds nothing an interface could
// not: it is abstract, every method is abstract, every field is
// initialized, and it has no constructors or initializer blocks.
func FullyAbstract(c *java.Class) bool {
	if !c.Modifiers.Has(java.ABSTRACT) || c.Constructors > 0 || c.Initializers > 0 {
		return false
	}
	for _, m := range c.Methods {
		if !m.Modifiers.Has(java.ABSTRACT) {
			return false
		}
	}
	for _, f := range c.Fields {
		for _, d := range f.Declarators {
			if !d.HasInitializer {
				return false
			}
		}
	}
	return true
}

// hasHiddenMembers reports private or protected members, which interfaces
// cannot declare.
func hasHiddenMembers(c *java.Class) bool {
	hidden := java.PRIVATE | java.PROTECTED
	for _, m := range c.Methods {
		if m.Modifiers.Has(hidden) {
			return true
		}
	}
	for _, f := range c.Fields {
		if f.Modifiers.Has(hidden) {
			return true
		}
	}
	return false
}

type Options struct {
	Strict  bool
	Exclude []string
}

// Refactorer converts fully abstract classes to interfaces and updates the
// classes extending them.
type Refactorer struct {
	opts   Options
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Refactorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refactorer{opts: opts, logger: logger}
}

// Run parses every Java file named by paths, directories included, and
// refactors them together.
func (r *Refactorer) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := java.ExpandPaths(paths, r.opts.Exclude)
	if err != nil {
		return nil, err
	}
	parsed := make([]*java.File, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := java.ParseFile(path)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, f)
	}
	return r.Convert(parsed)
}

// Convert decides over all files which classes become interfaces, then
// rewrites each file. A class extending another class is only converted
// when its superclass is converted too. Files are identified by path; a
// repeated path is handled once.
func (r *Refactorer) Convert(files []*java.File) ([]FileResult, error) {
	files = r.uniqueFiles(files)
	results := make([]FileResult, len(files))
	var usable []*java.File
	for i, f := range files {
		results[i] = FileResult{Path: f.Path, Source: f.Source}
		if !f.HasErrors() {
			usable = append(usable, f)
			continue
		}
		if r.opts.Strict {
			return nil, fmt.Errorf("converting %s: %w", f.Path, f.Err())
		}
		r.logger.Warn("skipping file with syntax errors",
			zap.String("file", f.Path),
			zap.Error(f.Err()))
		results[i].Skipped = true
	}

	p := plan{
		converted: r.decide(usable),
		classes:   map[string]*java.Class{},
	}
	for _, f := range usable {
		for i := range f.Classes {
			p.classes[f.Classes[i].Name] = &f.Classes[i]
		}
	}

	for i, f := range files {
		if results[i].Skipped {
			continue
		}
		if err := r.rewrite(f, p, &results[i]); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *Refactorer) uniqueFiles(files []*java.File) []*java.File {
	seen := map[string]bool{}
	unique := make([]*java.File, 0, len(files))
	for _, f := range files {
		key := filepath.Clean(f.Path)
		if seen[key] {
			r.logger.Debug("ignoring repeated file", zap.String("file", f.Path))
			continue
		}
		seen[key] = true
		unique = append(unique, f)
	}
	return unique
}

// plan is the set of decisions shared by every file of one run.
type plan struct {
	converted map[string]*java.Class
	// classes holds every parsed class by name, converted or not.
	classes map[string]*java.Class
}

// decide returns the classes to convert, keyed by name.
func (r *Refactorer) decide(files []*java.File) map[string]*java.Class {
	converted := map[string]*java.Class{}
	for _, f := range files {
		for i := range f.Classes {
			c := &f.Classes[i]
			if FullyAbstract(c) && !hasHiddenMembers(c) {
				converted[c.Name] = c
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for name, c := range converted {
			if c.Superclass == nil {
				continue
			}
			if _, ok := converted[c.Superclass.Type.Name]; !ok {
				r.logger.Debug("superclass is not converted",
					zap.String("class", name),
					zap.String("superclass", c.Superclass.Type.Name))
				delete(converted, name)
				changed = true
			}
		}
	}
	return converted
}

func (r *Refactorer) rewrite(f *java.File, p plan, result *FileResult) error {
	rw := NewRewriter(f.Source)
	for i := range f.Classes {
		c := &f.Classes[i]
		verdict := NotFullyAbstract
		if FullyAbstract(c) {
			verdict = NotConvertible
			if p.converted[c.Name] == c {
				verdict = Convertible
			}
		}
		class := ClassResult{Name: c.Name, Verdict: verdict}
		result.Classes = append(result.Classes, class)
		result.Messages = append(result.Messages, class.Message())

		if verdict == Convertible {
			convertClass(rw, c)
			continue
		}
		if c.Superclass == nil {
			continue
		}
		if base, ok := p.converted[c.Superclass.Type.Name]; ok {
			implementInterface(rw, f.Source, c)
			result.Messages = append(result.Messages, fmt.Sprintf("%s now implements %s.", c.Name, base.Name))
			r.logger.Debug("class now implements converted interface",
				zap.String("file", f.Path),
				zap.String("class", c.Name),
				zap.String("interface", base.Name))
		}
		widenMethods(rw, c, p.inheritedInterfaceMethods(c))
	}

	if !rw.Changed() {
		return nil
	}
	source, err := rw.Apply()
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", f.Path, err)
	}
	result.Source = source
	result.Changed = true
	return nil
}

// convertClass turns the declaration of c into an interface declaration.
// Annotations and the access modifier stay in place.
func convertClass(rw *Rewriter, c *java.Class) {
	if span, ok := c.Modifiers.Find(java.ABSTRACT); ok {
		rw.DeleteWord(span)
	}
	rw.Replace(c.Keyword, "interface")

	if c.Interfaces != nil {
		if c.Superclass != nil {
			// `extends A implements B` becomes `extends A, B`
			rw.Replace(java.Span{Start: c.Superclass.Span.End, End: c.Interfaces.Keyword.End}, ",")
		} else {
			rw.Replace(c.Interfaces.Keyword, "extends")
		}
	}

	for _, m := range c.Methods {
		for _, flag := range []java.Modifiers{java.PUBLIC, java.ABSTRACT} {
			if span, ok := m.Modifiers.Find(flag); ok {
				rw.DeleteWord(span)
			}
		}
	}
	for _, f := range c.Fields {
		if span, ok := f.Modifiers.Find(java.PUBLIC); ok {
			rw.DeleteWord(span)
		}
	}
}

// implementInterface makes c implement its superclass instead of
// extending it.
func implementInterface(rw *Rewriter, source []byte, c *java.Class) {
	typeText := c.Superclass.Type.Span.Text(source)
	if c.Interfaces == nil {
		rw.Replace(c.Superclass.Span, "implements "+typeText)
		return
	}
	rw.Delete(java.Span{Start: c.Superclass.Span.Start, End: c.Interfaces.Span.Start})
	rw.Insert(c.Interfaces.Span.End, ", "+typeText)
}

// widenMethods makes the methods of c named in names public. Private
// methods are left alone.
func widenMethods(rw *Rewriter, c *java.Class, names map[string]bool) {
	if len(names) == 0 {
		return
	}
	for _, m := range c.Methods {
		if !names[m.Name] || m.Modifiers.Has(java.PUBLIC|java.PRIVATE) {
			continue
		}
		if span, ok := m.Modifiers.Find(java.PROTECTED); ok {
			rw.Replace(span, "public")
			continue
		}
		rw.Insert(m.Span.Start, "public ")
	}
}

// inheritedInterfaceMethods walks up the extends chain of c through
// unconverted classes. The first converted ancestor found is an interface
// that c implements from then on, so its methods must be public in c.
func (p plan) inheritedInterfaceMethods(c *java.Class) map[string]bool {
	seen := map[*java.Class]bool{}
	for cur := c; cur != nil && cur.Superclass != nil && !seen[cur]; {
		seen[cur] = true
		name := cur.Superclass.Type.Name
		if base, ok := p.converted[name]; ok {
			return interfaceMethods(base, p.converted)
		}
		cur = p.classes[name]
	}
	return nil
}

// interfaceMethods collects the method names of base and of the converted
// classes it extends.
func interfaceMethods(base *java.Class, converted map[string]*java.Class) map[string]bool {
	names := map[string]bool{}
	seen := map[*java.Class]bool{}
	for c := base; c != nil && !seen[c]; {
		seen[c] = true
		for _, m := range c.Methods {
			names[m.Name] = true
		}
		if c.Superclass == nil {
			break
		}
		c = converted[c.Superclass.Type.Name]
	}
	return names
}

// WriteResults writes every changed file back in place, keeping its mode.
func WriteResults(results []FileResult) error {
	for _, result := range results {
		if !result.Changed {
			continue
		}
		info, err := os.Stat(result.Path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(result.Path, result.Source, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", result.Path, err)
		}
	}
	return nil
}
