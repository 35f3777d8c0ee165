package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

var pointerRun = c.Any(c.Seq(punct('*'), c.Any(qualifier())))

// paramList skips a parenthesised parameter list's contents rather than
// parsing each parameter as its own node: a deliberate scope reduction
// from the teacher's per-field AST, noted in DESIGN.md.
var paramList = node(parsenode.KindParameterList, c.Seq(
	punct('('),
	c.Until(punct(')')),
	punct(')'),
))

var arraySuffix = c.Seq(punct('['), c.Until(punct(']')), punct(']'))

var bitfieldSuffix = c.Seq(punct(':'), tagIs(lexer.TagInt))

// asmSuffix covers a trailing GNU asm label ("int x asm(\"myvar\");"), its
// string payload skipped like every other recognition-only form here.
var asmSuffix = c.Seq(
	anyKeyword("asm", "__asm__"),
	punct('('),
	c.Until(punct(')')),
	punct(')'),
)

var declaratorSuffix = c.Oneof(paramList, arraySuffix, bitfieldSuffix, attributeRun, asmSuffix)

// declaratorRef lets the nested-parenthesised-declarator case ("(*fp)()")
// recurse into Declarator before Declarator itself finishes being
// defined: Ref only calls the closure at match time.
var declaratorRef = c.Ref(func() matcher { return Declarator })

var directDeclaratorCore = c.Oneof(
	identifier(),
	c.Seq(punct('('), declaratorRef, punct(')')),
)

// Declarator: optional pointer run, a required identifier or
// parenthesised nested declarator, then any number of array/parameter-
// list/bitfield suffixes (spec.md §4.5).
var Declarator = node(parsenode.KindDeclarator, c.Seq(
	pointerRun,
	directDeclaratorCore,
	c.Any(declaratorSuffix),
))

var abstractDeclaratorRef = c.Ref(func() matcher { return AbstractDeclarator })

var abstractDirectCore = c.Seq(punct('('), abstractDeclaratorRef, punct(')'))

// AbstractDeclarator is Declarator without a required identifier: used in
// cast/typeof/sizeof(type) positions.
var AbstractDeclarator = node(parsenode.KindAbstractDeclarator, c.Seq(
	pointerRun,
	c.Opt(abstractDirectCore),
	c.Any(declaratorSuffix),
))
