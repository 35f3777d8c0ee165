package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

// InitDeclarator is a Declarator with an optional "= initializer".
var InitDeclarator = c.Seq(Declarator, c.Opt(c.Seq(punct('='), ExpressionRef)))

var declaratorList = c.Seq(InitDeclarator, c.Any(c.Seq(punct(','), InitDeclarator)))

var declarationPattern = c.Seq(Specifier, c.Opt(declaratorList))

// Declaration: specifier then a declarator list, or a specifier alone
// (e.g. a forward tag declaration "struct Foo;").
var Declaration = node(parsenode.KindDeclaration, declarationPattern)

var krOldStyleParamDecl = c.Seq(declarationPattern, punct(';'))

// FunctionDefinition: specifier, a pointer run, the function's name, a
// parameter list, any K&R-style old-style parameter declarations, then
// the compound-statement body.
var FunctionDefinition = node(parsenode.KindFunctionDefinition, c.Seq(
	Specifier,
	pointerRun,
	identifier(),
	paramList,
	c.Any(krOldStyleParamDecl),
	CompoundStatementRef,
))

// typedefPattern reparses Declaration's shape after the "typedef"
// keyword, deliberately not routing through the Declaration node()
// wrapper: a typedef gets its own KindTypedef node instead.
var typedefPattern = c.Seq(keyword("typedef"), declarationPattern)

// Typedef parses a typedef declaration then walks every declared
// identifier and registers it in the current type scope, per spec.md
// §4.4's "a post-action walks the declarator list extracting every
// identifier."
func Typedef(ctx *parseCtx, a, b int) (int, bool) {
	end, ok := typedefPattern(ctx, a, b)
	if !ok || end == a {
		return a, false
	}
	for i := a + 1; i < end; i++ {
		if ctx.Atoms[i].Tag() != lexer.TagIdentifier {
			continue
		}
		if n, isNode := ctx.Atoms[i].Span.(*parsenode.Node); isNode && n != nil && n.Kind == parsenode.KindDeclarator {
			ctx.Data.scopes.AddTypedefName(text(ctx, i))
		}
	}
	ctx.Data.nodes.New(parsenode.KindTypedef, a, end-1)
	return end, true
}

// classStructUnionEnumDecl covers a tag's full definition with a body:
// "struct Point { int x; int y; };" — the tag name, if present, is
// registered in the current scope immediately, before the body is
// parsed, and stays registered if the body then fails to match.
func classStructUnionEnumDecl(ctx *parseCtx, a, b int) (int, bool) {
	if a >= b {
		return a, false
	}
	kwEnd, ok := anyKeyword("struct", "union", "enum", "class")(ctx, a, b)
	if !ok {
		return a, false
	}
	cur := kwEnd
	kwText := text(ctx, a)
	if end, ok := identifier()(ctx, cur, b); ok {
		registerTagName(ctx, kwText, text(ctx, cur))
		cur = end
	}
	// The body alternation covers both struct/union/class members
	// ("int x;") and enum enumerators ("RED = 1,"); whichever the tag
	// kind is, only one alternative will ever actually match a given
	// member.
	end, ok := c.Seq(
		punct('{'),
		c.Any(c.Oneof(
			c.Seq(Declaration, punct(';')),
			c.Seq(identifier(), c.Opt(c.Seq(punct('='), ExpressionRef)), c.Opt(punct(','))),
		)),
		punct('}'),
	)(ctx, cur, b)
	if !ok {
		return a, false
	}
	ctx.Data.nodes.New(parsenode.KindClassStructUnionEnum, a, end-1)
	return end, true
}

func registerTagName(ctx *parseCtx, kw, name string) {
	switch kw {
	case "struct":
		ctx.Data.scopes.AddStructName(name)
	case "union":
		ctx.Data.scopes.AddUnionName(name)
	case "enum":
		ctx.Data.scopes.AddEnumName(name)
	case "class":
		ctx.Data.scopes.AddClassName(name)
	}
}

// ClassStructUnionEnumDecl is the translation-unit-level form of a tag
// definition, used standalone ("struct Point { ... };") as opposed to the
// type-reference form in specifiers.go.
var ClassStructUnionEnumDecl matcher = classStructUnionEnumDecl
