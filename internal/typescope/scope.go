// Package typescope tracks the C/C++ tag and typedef names the parser
// needs to disambiguate a plain identifier from a type name while it
// parses, generalizing the single-map Scope the rest of this module's
// teacher uses into five separate name lists (one per tag namespace).
package typescope

// Scope holds names introduced at one compound-statement nesting level.
// A child scope shadows its parent's lookups without ever mutating it:
// names are never removed once added, only new scopes are pushed/popped
// (spec.md §4.4).
type Scope struct {
	parent *Scope

	classNames   map[string]bool
	structNames  map[string]bool
	unionNames   map[string]bool
	enumNames    map[string]bool
	typedefNames map[string]bool
}

func newScope(parent *Scope) *Scope {
	return &Scope{
		parent:       parent,
		classNames:   make(map[string]bool),
		structNames:  make(map[string]bool),
		unionNames:   make(map[string]bool),
		enumNames:    make(map[string]bool),
		typedefNames: make(map[string]bool),
	}
}

// has walks the scope chain from s to the root, applying pick to each
// ancestor to get at its version of one of the five name lists.
func (s *Scope) has(pick func(*Scope) map[string]bool, name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if pick(cur)[name] {
			return true
		}
	}
	return false
}

// Stack is a per-parse type-scope stack. The bottom scope is pushed once
// at parse start and never popped; nested compound statements push/pop
// above it.
type Stack struct {
	top *Scope
}

// NewStack returns a stack with a single root scope already pushed.
func NewStack() *Stack {
	return &Stack{top: newScope(nil)}
}

// Push enters a new nested scope (compound-statement entry).
func (s *Stack) Push() { s.top = newScope(s.top) }

// Pop leaves the current scope (compound-statement exit), on every exit
// path: success, failure, or rewind. Popping the root scope is a no-op
// guard against an unbalanced caller.
func (s *Stack) Pop() {
	if s.top.parent != nil {
		s.top = s.top.parent
	}
}

// Depth reports the current nesting depth, root scope counting as 0.
func (s *Stack) Depth() int {
	d := 0
	for cur := s.top; cur.parent != nil; cur = cur.parent {
		d++
	}
	return d
}

func (s *Stack) addTo(names map[string]bool, name string) { names[name] = true }

// AddClassName registers name as a class tag in the current scope.
func (s *Stack) AddClassName(name string) { s.addTo(s.top.classNames, name) }

// AddStructName registers name as a struct tag in the current scope.
func (s *Stack) AddStructName(name string) { s.addTo(s.top.structNames, name) }

// AddUnionName registers name as a union tag in the current scope.
func (s *Stack) AddUnionName(name string) { s.addTo(s.top.unionNames, name) }

// AddEnumName registers name as an enum tag in the current scope.
func (s *Stack) AddEnumName(name string) { s.addTo(s.top.enumNames, name) }

// AddTypedefName registers name as a typedef'd type name in the current
// scope. A typedef declaration's post-action calls this once per
// identifier extracted from its declarator list.
func (s *Stack) AddTypedefName(name string) { s.addTo(s.top.typedefNames, name) }

// HasClassType reports whether name is a registered class tag in the
// current scope or any ancestor.
func (s *Stack) HasClassType(name string) bool {
	return s.top.has(func(sc *Scope) map[string]bool { return sc.classNames }, name)
}

// HasStructType reports whether name is a registered struct tag.
func (s *Stack) HasStructType(name string) bool {
	return s.top.has(func(sc *Scope) map[string]bool { return sc.structNames }, name)
}

// HasUnionType reports whether name is a registered union tag.
func (s *Stack) HasUnionType(name string) bool {
	return s.top.has(func(sc *Scope) map[string]bool { return sc.unionNames }, name)
}

// HasEnumType reports whether name is a registered enum tag.
func (s *Stack) HasEnumType(name string) bool {
	return s.top.has(func(sc *Scope) map[string]bool { return sc.enumNames }, name)
}

// HasTypedefType reports whether name is a registered typedef name.
func (s *Stack) HasTypedefType(name string) bool {
	return s.top.has(func(sc *Scope) map[string]bool { return sc.typedefNames }, name)
}
