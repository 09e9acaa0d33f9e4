// Package refactor implements source to source refactorings on Java code.
package refactor

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/heshanpadmasiri/codart/java"
)

var ErrOverlappingEdit = errors.New("overlapping edits")

// edit replaces span with text. Insertions have an empty span.
type edit struct {
	span java.Span
	text string
}

// Rewriter collects byte range edits against a source buffer and applies
// them in one pass. Offsets always refer to the original source.
type Rewriter struct {
	source []byte
	edits  []edit
}

func NewRewriter(source []byte) *Rewriter {
	return &Rewriter{source: source}
}

func (r *Rewriter) Replace(span java.Span, text string) {
	r.edits = append(r.edits, edit{span: span, text: text})
}

func (r *Rewriter) Delete(span java.Span) {
	r.Replace(span, "")
}

// DeleteWord deletes span together with the whitespace following it.
func (r *Rewriter) DeleteWord(span java.Span) {
	end := span.End
	for end < uint(len(r.source)) && isSpace(r.source[end]) {
		end++
	}
	r.Delete(java.Span{Start: span.Start, End: end})
}

// Insert adds text at offset. Insertions at the same offset keep their
// order.
func (r *Rewriter) Insert(offset uint, text string) {
	r.Replace(java.Span{Start: offset, End: offset}, text)
}

// Changed reports whether any edit was recorded.
func (r *Rewriter) Changed() bool {
	return len(r.edits) > 0
}

// Apply returns the rewritten source. The original buffer is not modified.
func (r *Rewriter) Apply() ([]byte, error) {
	edits := slices.Clone(r.edits)
	slices.SortStableFunc(edits, func(a, b edit) int {
		if a.span.Start != b.span.Start {
			return cmp.Compare(a.span.Start, b.span.Start)
		}
		return cmp.Compare(a.span.End, b.span.End)
	})

	var out bytes.Buffer
	out.Grow(len(r.source))
	var cursor uint
	for _, e := range edits {
		if e.span.End < e.span.Start || e.span.End > uint(len(r.source)) {
			return nil, fmt.Errorf("edit %d:%d outside of source of length %d", e.span.Start, e.span.End, len(r.source))
		}
		if e.span.Start < cursor {
			return nil, fmt.Errorf("%w at offset %d", ErrOverlappingEdit, e.span.Start)
		}
		out.Write(r.source[cursor:e.span.Start])
		out.WriteString(e.text)
		cursor = e.span.End
	}
	out.Write(r.source[cursor:])
	return out.Bytes(), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
