package cparser_test

import (
	"testing"

	"github.com/matcheroni-go/matcheroni/internal/cparser"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

func mustParse(t *testing.T, src string) *cparser.Result {
	t.Helper()
	res, err := cparser.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return res
}

func TestParseSimpleDeclaration(t *testing.T) {
	res := mustParse(t, "int x = 1;")
	if res.Root.Kind != parsenode.KindTranslationUnit {
		t.Fatalf("root kind = %v, want KindTranslationUnit", res.Root.Kind)
	}
	children := res.Root.Children()
	if len(children) != 1 || children[0].Kind != parsenode.KindDeclaration {
		t.Fatalf("children = %v, want one KindDeclaration", children)
	}
}

func TestParseTypedefStructThenUseIt(t *testing.T) {
	res := mustParse(t, "typedef struct S { int x; int y; } S; S v;")
	children := res.Root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d top-level items, want 2", len(children))
	}
	if children[0].Kind != parsenode.KindTypedef {
		t.Fatalf("first item kind = %v, want KindTypedef", children[0].Kind)
	}
	if children[1].Kind != parsenode.KindDeclaration {
		t.Fatalf("second item kind = %v, want KindDeclaration (S v;)", children[1].Kind)
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	res := mustParse(t, "int add(int a, int b) { return a + b; }")
	children := res.Root.Children()
	if len(children) != 1 || children[0].Kind != parsenode.KindFunctionDefinition {
		t.Fatalf("children = %v, want one KindFunctionDefinition", children)
	}
}

func TestParseRightAssociativeAssignmentChain(t *testing.T) {
	res := mustParse(t, "int x; void f() { a = b = c; }")
	fn := res.Root.Children()[1]
	body := fn.Children()[len(fn.Children())-1]
	stmt := body.Children()[0]
	if stmt.Kind != parsenode.KindStatementExpression {
		t.Fatalf("statement kind = %v, want KindStatementExpression", stmt.Kind)
	}
	top := stmt.Children()[0]
	if top.Kind != parsenode.KindExpressionBinary || top.Assoc != parsenode.AssocRight {
		t.Fatalf("top = %+v, want right-assoc binary", top)
	}
	// a = (b = c): the right child must itself be the inner "b = c" binary.
	right := top.Children()[len(top.Children())-1]
	if right.Kind != parsenode.KindExpressionBinary {
		t.Fatalf("right child kind = %v, want KindExpressionBinary", right.Kind)
	}
}

func TestParseLeftAssociativeAdditionChain(t *testing.T) {
	res := mustParse(t, "void f() { a + b - c; }")
	fn := res.Root.Children()[0]
	body := fn.Children()[len(fn.Children())-1]
	stmt := body.Children()[0]
	top := stmt.Children()[0]
	if top.Kind != parsenode.KindExpressionBinary || top.Assoc != parsenode.AssocLeft {
		t.Fatalf("top = %+v, want left-assoc binary", top)
	}
	// (a + b) - c: the left child must itself be the inner "a + b" binary.
	left := top.Children()[0]
	if left.Kind != parsenode.KindExpressionBinary {
		t.Fatalf("left child kind = %v, want KindExpressionBinary", left.Kind)
	}
}

func TestParseNestedTernary(t *testing.T) {
	res := mustParse(t, "void f() { a ? b : c ? d : e; }")
	fn := res.Root.Children()[0]
	body := fn.Children()[len(fn.Children())-1]
	stmt := body.Children()[0]
	top := stmt.Children()[0]
	if top.Kind != parsenode.KindExpressionTernary {
		t.Fatalf("top kind = %v, want KindExpressionTernary", top.Kind)
	}
	kids := top.Children()
	last := kids[len(kids)-1]
	if last.Kind != parsenode.KindExpressionTernary {
		t.Fatalf("last child kind = %v, want nested KindExpressionTernary", last.Kind)
	}
}

func TestParseEndpointMismatchOnTrailingGarbage(t *testing.T) {
	// An unmatched closing brace can't be consumed by any top-level item.
	_, err := cparser.Parse([]byte("int x; }"))
	if err == nil {
		t.Fatalf("Parse succeeded, want endpoint mismatch error")
	}
}

func TestParseFailsOnLexError(t *testing.T) {
	_, err := cparser.Parse([]byte("int x = \"unterminated;"))
	if err == nil {
		t.Fatalf("Parse succeeded, want lex failure to propagate")
	}
}
