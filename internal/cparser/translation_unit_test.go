package cparser_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

func kindsOf(nodes []*parsenode.Node) []parsenode.Kind {
	kinds := make([]parsenode.Kind, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind
	}
	return kinds
}

func TestParseMixedTopLevelItems(t *testing.T) {
	res := mustParse(t, `
struct Point;
typedef int Meters;
int global;
int add(int a, int b) { return a + b; }
`)
	got := kindsOf(res.Root.Children())
	want := []parsenode.Kind{
		parsenode.KindDeclaration,
		parsenode.KindTypedef,
		parsenode.KindDeclaration,
		parsenode.KindFunctionDefinition,
	}
	if diffs := deep.Equal(got, want); diffs != nil {
		t.Fatalf("top-level item kinds differ: %v", diffs)
	}
}

func TestParseBareSemicolonTopLevelItem(t *testing.T) {
	res := mustParse(t, "int x; ; int y;")
	children := res.Root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d top-level items, want 2 (bare ';' produces no node)", len(children))
	}
}

func TestParsePreprocessorLineIsOpaque(t *testing.T) {
	res := mustParse(t, "#include <stdio.h>\nint x;")
	children := res.Root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d top-level items, want 2", len(children))
	}
	if children[0].Kind != parsenode.KindPreprocLine {
		t.Fatalf("first item kind = %v, want KindPreprocLine", children[0].Kind)
	}
	if children[1].Kind != parsenode.KindDeclaration {
		t.Fatalf("second item kind = %v, want KindDeclaration", children[1].Kind)
	}
}

func TestParseEmptyTranslationUnit(t *testing.T) {
	res := mustParse(t, "")
	if res.Root.Kind != parsenode.KindTranslationUnit {
		t.Fatalf("root kind = %v, want KindTranslationUnit", res.Root.Kind)
	}
	if len(res.Root.Children()) != 0 {
		t.Fatalf("got %d top-level items, want 0", len(res.Root.Children()))
	}
}

func TestParseTemplateDeclarationIsRecognizedOpaquely(t *testing.T) {
	// templateDecl itself builds no node; the underlying FunctionDefinition
	// it dispatches to still does, spanning only from its own return type
	// onward, not the "template <typename T>" prefix.
	res := mustParse(t, "template <typename T> T identity(T x) { return x; }")
	children := res.Root.Children()
	if len(children) != 1 {
		t.Fatalf("got %d top-level items, want 1", len(children))
	}
	if children[0].Kind != parsenode.KindFunctionDefinition {
		t.Fatalf("item kind = %v, want KindFunctionDefinition", children[0].Kind)
	}
}
