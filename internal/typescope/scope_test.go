package typescope_test

import (
	"testing"

	"github.com/matcheroni-go/matcheroni/internal/typescope"
)

func TestChildShadowsWithoutMutatingParent(t *testing.T) {
	s := typescope.NewStack()
	s.AddTypedefName("u32")

	s.Push()
	s.AddTypedefName("Local")
	if !s.HasTypedefType("u32") {
		t.Fatalf("expected child scope to see parent's typedef name")
	}
	if !s.HasTypedefType("Local") {
		t.Fatalf("expected child scope to see its own typedef name")
	}
	s.Pop()

	if s.HasTypedefType("Local") {
		t.Fatalf("did not expect the parent scope to see the popped child's typedef name")
	}
	if !s.HasTypedefType("u32") {
		t.Fatalf("expected the parent scope to retain its own typedef name after pop")
	}
}

func TestNamesAreNeverRemovedWithinAScope(t *testing.T) {
	s := typescope.NewStack()
	s.AddStructName("Point")
	s.Push()
	s.Push()
	if !s.HasStructType("Point") {
		t.Fatalf("expected a deeply nested scope to still see an ancestor's struct tag")
	}
	s.Pop()
	s.Pop()
	if !s.HasStructType("Point") {
		t.Fatalf("expected the struct tag to survive popping back to the root")
	}
}

func TestFiveNamespacesAreIndependent(t *testing.T) {
	s := typescope.NewStack()
	s.AddStructName("Foo")
	if s.HasUnionType("Foo") || s.HasEnumType("Foo") || s.HasClassType("Foo") || s.HasTypedefType("Foo") {
		t.Fatalf("expected a struct tag to be invisible to the other four namespaces")
	}
}

func TestPopAtRootIsANoop(t *testing.T) {
	s := typescope.NewStack()
	s.AddTypedefName("root_name")
	s.Pop()
	if !s.HasTypedefType("root_name") {
		t.Fatalf("popping the root scope should not discard its names")
	}
	if s.Depth() != 0 {
		t.Fatalf("expected depth 0 at root after a no-op pop, got %d", s.Depth())
	}
}
