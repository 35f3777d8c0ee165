package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

func preprocLineMatcher() matcher {
	return one(func(ctx *parseCtx, i int) bool { return ctx.Atoms[i].Tag() == lexer.TagPreproc })
}

var preprocLine = node(parsenode.KindPreprocLine, preprocLineMatcher())

// templateParams skips a template parameter list up to its closing '>',
// registering every identifier that follows "typename" or "class" as a
// typedef name in the current scope so the templated item can use it as a
// type.
func templateParams(ctx *parseCtx, a, b int) (int, bool) {
	end, ok := c.Until(punct('>'))(ctx, a, b)
	if !ok {
		return a, false
	}
	for i := a + 1; i < end; i++ {
		if prev := text(ctx, i-1); ctx.Atoms[i].Tag() == lexer.TagIdentifier && (prev == "typename" || prev == "class") {
			ctx.Data.scopes.AddTypedefName(text(ctx, i))
		}
	}
	return end, true
}

// templateDecl recognizes "template <...>" followed by the templated
// function definition, declaration, or tag definition, which are parsed
// as usual. The parameter list itself is skipped apart from its type
// parameter names; there is no template instantiation.
var templateDecl = c.Seq(
	keyword("template"),
	punct('<'), matcher(templateParams), punct('>'),
	c.Oneof(FunctionDefinition, c.Seq(Declaration, punct(';')), c.Seq(ClassStructUnionEnumDecl, punct(';'))),
)

var topLevelItem = c.Oneof(
	preprocLine,
	c.Seq(ClassStructUnionEnumDecl, punct(';')),
	c.Seq(Typedef, punct(';')),
	templateDecl,
	FunctionDefinition,
	c.Seq(Declaration, punct(';')),
	punct(';'),
)

// TranslationUnit is the grammar's root production: zero or more top-level
// items spanning the entire token range. It cannot go through node(), which
// treats any zero-length match as a hard failure: an empty source (or one
// containing only whitespace/comments) is a legitimate translation unit
// with zero top-level items, and must still report success. Parse's own
// fallback builds the root node for that zero-item case.
func TranslationUnit(ctx *parseCtx, a, b int) (int, bool) {
	end, ok := c.Any(topLevelItem)(ctx, a, b)
	if !ok {
		return a, false
	}
	if end > a {
		ctx.Data.nodes.New(parsenode.KindTranslationUnit, a, end-1)
	}
	return end, true
}
