package java

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Modifier bit flags
const (
	PUBLIC Modifiers = 1 << iota
	PRIVATE
	PROTECTED
	STATIC
	FINAL
	ABSTRACT
	DEFAULT
	SYNCHRONIZED
	NATIVE
	TRANSIENT
	VOLATILE
	STRICTFP
	SEALED
	NON_SEALED
)

var modifierKeywords = []struct {
	flag    Modifiers
	keyword string
}{
	{PUBLIC, "public"},
	{PRIVATE, "private"},
	{PROTECTED, "protected"},
	{STATIC, "static"},
	{FINAL, "final"},
	{ABSTRACT, "abstract"},
	{DEFAULT, "default"},
	{SYNCHRONIZED, "synchronized"},
	{NATIVE, "native"},
	{TRANSIENT, "transient"},
	{VOLATILE, "volatile"},
	{STRICTFP, "strictfp"},
	{SEALED, "sealed"},
	{NON_SEALED, "non-sealed"},
}

// Modifiers represents Java modifiers as a bitmask
type Modifiers uint16

func (m Modifiers) String() string {
	var parts []string
	for _, each := range modifierKeywords {
		if m&each.flag != 0 {
			parts = append(parts, each.keyword)
		}
	}
	return strings.Join(parts, " ")
}

func (m Modifiers) IsPublic() bool {
	return m&PUBLIC != 0
}

// Access returns the access modifier keyword, or "" for package access.
func (m Modifiers) Access() string {
	switch {
	case m&PUBLIC != 0:
		return "public"
	case m&PROTECTED != 0:
		return "protected"
	case m&PRIVATE != 0:
		return "private"
	}
	return ""
}

func keywordModifier(keyword string) Modifiers {
	for _, each := range modifierKeywords {
		if each.keyword == keyword {
			return each.flag
		}
	}
	return 0
}

// ParseModifiers parses modifier string into a modifiers bitmask
func ParseModifiers(source string) Modifiers {
	var mods Modifiers
	for _, part := range strings.Fields(source) {
		mods |= keywordModifier(part)
	}
	return mods
}

// Keyword is a single modifier keyword and where it sits in the source.
type Keyword struct {
	Flag Modifiers
	Span Span
}

// ModifierSet is the modifier list of a declaration.
type ModifierSet struct {
	Flags    Modifiers
	Keywords []Keyword
}

func (s ModifierSet) Has(flag Modifiers) bool {
	return s.Flags&flag != 0
}

// Find returns the span of the keyword for flag.
func (s ModifierSet) Find(flag Modifiers) (Span, bool) {
	for _, kw := range s.Keywords {
		if kw.Flag == flag {
			return kw.Span, true
		}
	}
	return Span{}, false
}

// parseModifierSet reads a `modifiers` node. Annotations are skipped.
func parseModifierSet(node *tree_sitter.Node) ModifierSet {
	var set ModifierSet
	IterateChildren(node, func(child *tree_sitter.Node) {
		flag := keywordModifier(child.Kind())
		if flag == 0 {
			return
		}
		set.Flags |= flag
		set.Keywords = append(set.Keywords, Keyword{Flag: flag, Span: spanOf(child)})
	})
	return set
}
