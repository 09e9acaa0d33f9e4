package java

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Span is a half-open byte range in a source file.
type Span struct {
	Start uint
	End   uint
}

func (s Span) Text(source []byte) string {
	return string(source[s.Start:s.End])
}

func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Position is a 1-based row and column.
type Position struct {
	Row    uint
	Column uint
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// SyntaxError is an ERROR or MISSING node reported by the parser.
type SyntaxError struct {
	Path     string
	Position Position
	Message  string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: syntax error: %s", e.Path, e.Position, e.Message)
}

// File is the declaration model of one compilation unit.
type File struct {
	Path    string
	Source  []byte
	Classes []Class
	Errors  []SyntaxError
}

func (f *File) HasErrors() bool {
	return len(f.Errors) > 0
}

// Err returns the first syntax error, if any.
func (f *File) Err() error {
	if len(f.Errors) == 0 {
		return nil
	}
	return f.Errors[0]
}

// TypeRef is a reference to a named type. Name drops type arguments and
// package qualifiers.
type TypeRef struct {
	Name string
	Span Span
}

// Superclass is an `extends` clause of a class.
type Superclass struct {
	Type TypeRef
	Span Span
}

// TypeList is an `implements` clause of a class.
type TypeList struct {
	Keyword Span
	Types   []TypeRef
	Span    Span
}

type Declarator struct {
	Name           string
	HasInitializer bool
}

// Field is a field declaration. One declaration may declare several
// variables (`int x = 1, y = 2;`).
type Field struct {
	Modifiers   ModifierSet
	Declarators []Declarator
	Position    Position
}

type Method struct {
	Name      string
	Modifiers ModifierSet
	HasBody   bool
	Span      Span
	Position  Position
}

// Class is a class declaration and its direct members.
type Class struct {
	Name string
	// Outer is the name of the enclosing type for nested classes.
	Outer string
	Span  Span
	// Keyword is the `class` token.
	Keyword      Span
	Position     Position
	Modifiers    ModifierSet
	Superclass   *Superclass
	Interfaces   *TypeList
	Fields       []Field
	Methods      []Method
	Constructors int
	Initializers int
}

// Method returns the first method called name.
func (c *Class) Method(name string) (Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

func collectClasses(node *tree_sitter.Node, source []byte, out *[]Class) {
	collectClassesIn(node, source, "", out)
}

func collectClassesIn(node *tree_sitter.Node, source []byte, outer string, out *[]Class) {
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "class_declaration":
			class := parseClass(child, source)
			class.Outer = outer
			*out = append(*out, class)
			if body := child.ChildByFieldName("body"); body != nil {
				collectClassesIn(body, source, class.Name, out)
			}
		case "interface_declaration", "enum_declaration", "record_declaration":
			name := ""
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				name = nameNode.Utf8Text(source)
			}
			if body := child.ChildByFieldName("body"); body != nil {
				collectClassesIn(body, source, name, out)
			}
		case "enum_body_declarations":
			collectClassesIn(child, source, outer, out)
		}
	})
}

func parseClass(node *tree_sitter.Node, source []byte) Class {
	class := Class{
		Span:     spanOf(node),
		Position: positionOf(node),
	}
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "modifiers":
			class.Modifiers = parseModifierSet(child)
		case "class":
			class.Keyword = spanOf(child)
		case "identifier":
			class.Name = child.Utf8Text(source)
		case "superclass":
			class.Superclass = parseSuperclass(child, source)
		case "super_interfaces":
			class.Interfaces = parseSuperInterfaces(child, source)
		case "class_body":
			parseClassBody(&class, child, source)
		}
	})
	return class
}

func parseSuperclass(node *tree_sitter.Node, source []byte) *Superclass {
	var ref *TypeRef
	IterateChildren(node, func(child *tree_sitter.Node) {
		if ref != nil || !child.IsNamed() {
			return
		}
		ref = &TypeRef{Name: typeName(child, source), Span: spanOf(child)}
	})
	if ref == nil {
		return nil
	}
	return &Superclass{Type: *ref, Span: spanOf(node)}
}

func parseSuperInterfaces(node *tree_sitter.Node, source []byte) *TypeList {
	list := &TypeList{Span: spanOf(node)}
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "implements":
			list.Keyword = spanOf(child)
		case "type_list":
			IterateChildren(child, func(typeNode *tree_sitter.Node) {
				if !typeNode.IsNamed() {
					return
				}
				list.Types = append(list.Types, TypeRef{Name: typeName(typeNode, source), Span: spanOf(typeNode)})
			})
		}
	})
	return list
}

// typeName returns the simple name of a type node: `java.util.List<T>`
// gives `List`.
func typeName(node *tree_sitter.Node, source []byte) string {
	switch node.Kind() {
	case "generic_type":
		var name string
		IterateChildrenWhile(node, func(child *tree_sitter.Node) bool {
			switch child.Kind() {
			case "type_identifier", "scoped_type_identifier":
				name = typeName(child, source)
				return false
			}
			return true
		})
		return name
	case "scoped_type_identifier":
		var name string
		IterateChildren(node, func(child *tree_sitter.Node) {
			if child.Kind() == "type_identifier" {
				name = child.Utf8Text(source)
			}
		})
		return name
	}
	return node.Utf8Text(source)
}

func parseClassBody(class *Class, body *tree_sitter.Node, source []byte) {
	IterateChildren(body, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "field_declaration":
			class.Fields = append(class.Fields, parseField(child, source))
		case "method_declaration":
			class.Methods = append(class.Methods, parseMethod(child, source))
		case "constructor_declaration", "compact_constructor_declaration":
			class.Constructors++
		case "static_initializer", "block":
			class.Initializers++
		}
	})
}

func parseField(node *tree_sitter.Node, source []byte) Field {
	field := Field{Position: positionOf(node)}
	IterateChildren(node, func(child *tree_sitter.Node) {
		switch child.Kind() {
		case "modifiers":
			field.Modifiers = parseModifierSet(child)
		case "variable_declarator":
			decl := Declarator{HasInitializer: child.ChildByFieldName("value") != nil}
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				decl.Name = nameNode.Utf8Text(source)
			}
			field.Declarators = append(field.Declarators, decl)
		}
	})
	return field
}

func parseMethod(node *tree_sitter.Node, source []byte) Method {
	method := Method{
		Span:     spanOf(node),
		Position: positionOf(node),
		HasBody:  node.ChildByFieldName("body") != nil,
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		method.Name = nameNode.Utf8Text(source)
	}
	IterateChildrenWhile(node, func(child *tree_sitter.Node) bool {
		if child.Kind() == "modifiers" {
			method.Modifiers = parseModifierSet(child)
			return false
		}
		return true
	})
	return method
}
