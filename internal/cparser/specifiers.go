package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

func builtinTypeWord() matcher {
	return one(func(ctx *parseCtx, i int) bool {
		tag := ctx.Atoms[i].Tag()
		if tag != lexer.TagKeyword && tag != lexer.TagIdentifier {
			return false
		}
		return lexer.IsBuiltinType(text(ctx, i))
	})
}

// builtinType matches a run of one or more builtin-type words, since C
// combines several into a single type ("unsigned long long", "short int").
func builtinType() matcher {
	return c.Some(builtinTypeWord())
}

func qualifier() matcher {
	return one(func(ctx *parseCtx, i int) bool {
		tag := ctx.Atoms[i].Tag()
		if tag != lexer.TagKeyword && tag != lexer.TagIdentifier {
			return false
		}
		return lexer.IsQualifier(text(ctx, i))
	})
}

// structUnionEnumClassRef recognizes a struct/union/enum/class keyword
// with an optional tag name and no body, e.g. "struct Point" used as a
// type or in a forward declaration. It does not consult the type scope, so
// the tag need not have been declared. Introducing a tag with a body is
// handled in declarations.go, which also registers the name.
var structUnionEnumClassRef = node(parsenode.KindClassStructUnionEnum, c.Seq(
	anyKeyword("struct", "union", "enum", "class"),
	c.Opt(identifier()),
))

// atomicOrTypeofForm covers _Atomic(type) and typeof(expr)/decltype(expr)
// specifier forms; the parenthesised payload is skipped rather than
// recursively parsed as a nested type/expression, a deliberate scope
// reduction noted in DESIGN.md.
var atomicOrTypeofForm = c.Seq(
	anyKeyword("_Atomic", "typeof", "__typeof__", "decltype"),
	punct('('),
	c.Until(punct(')')),
	punct(')'),
)

// gnuAttributeForm covers GCC's __attribute__((...)): after the two
// opening parens, one Until skips the payload up to the first ')', then
// two ')' must follow. A payload that itself contains parentheses
// ("aligned(8)") is not matched.
var gnuAttributeForm = c.Seq(
	anyKeyword("__attribute__", "__attribute"),
	punct('('), punct('('),
	c.Until(punct(')')), punct(')'),
	punct(')'),
)

// cxxAttributeForm covers C++11's [[...]] attribute runs, recognized as a
// pair of single-'[' tokens (the lexer emits punctuation one byte at a
// time) up to the matching "]]".
var cxxAttributeForm = c.Seq(
	punct('['), punct('['),
	c.Until(c.Seq(punct(']'), punct(']'))),
	punct(']'), punct(']'),
)

// attributeRun recognizes a single GCC or C++11 attribute form, its
// contents skipped rather than parsed: like atomicOrTypeofForm's payload,
// this is recognition only, noted in DESIGN.md.
var attributeRun = c.Oneof(gnuAttributeForm, cxxAttributeForm)

// qualifierOrAttribute is what a Specifier's leading/trailing runs
// actually accept: any number of qualifiers and attribute runs in any
// order ("static __attribute__((unused)) const int x").
var qualifierOrAttribute = c.Oneof(qualifier(), attributeRun)

var specifierCore = c.Oneof(
	builtinType(),
	typedefName(),
	ClassStructUnionEnumDecl,
	structUnionEnumClassRef,
	atomicOrTypeofForm,
)

// Specifier recognizes builtin-type | typedef-type | struct/union/enum/
// class + name | _Atomic(...)/typeof(...), with leading and trailing
// qualifier-and-attribute runs (spec.md §4.5).
var Specifier = node(parsenode.KindSpecifier, c.Seq(
	c.Any(qualifierOrAttribute),
	specifierCore,
	c.Any(qualifierOrAttribute),
))
