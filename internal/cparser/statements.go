package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
)

var statementRef = c.Ref(func() matcher { return Statement })

// CompoundStatementRef lets earlier-defined productions (declarations.go's
// FunctionDefinition) refer to CompoundStatement before this file's var
// initializers run.
var CompoundStatementRef = c.Ref(func() matcher { return CompoundStatement })

var exprStatement = c.Seq(ExpressionRef, punct(';'))

var emptyStatement = punct(';')

var ifStatement = c.Seq(
	keyword("if"), punct('('), ExpressionRef, punct(')'), statementRef,
	c.Opt(c.Seq(keyword("else"), statementRef)),
)

// forHeader covers both the classic three-clause form and a C99
// declaration-as-init-clause form, e.g. "for (int i = 0; i < n; i++)".
var forHeader = c.Seq(
	punct('('),
	c.Oneof(c.Seq(Declaration, punct(';')), c.Seq(c.Opt(ExpressionRef), punct(';'))),
	c.Opt(ExpressionRef), punct(';'),
	c.Opt(ExpressionRef),
	punct(')'),
)

var forStatement = c.Seq(keyword("for"), forHeader, statementRef)

var whileStatement = c.Seq(keyword("while"), punct('('), ExpressionRef, punct(')'), statementRef)

var doWhileStatement = c.Seq(
	keyword("do"), statementRef,
	keyword("while"), punct('('), ExpressionRef, punct(')'), punct(';'),
)

// caseStatement supports GCC's ranged form, "case e1 ... e2:", alongside
// the ordinary single-value case.
var caseStatement = c.Seq(
	keyword("case"), ExpressionRef,
	c.Opt(c.Seq(puncts("..."), ExpressionRef)),
	punct(':'),
)

var defaultStatement = c.Seq(keyword("default"), punct(':'))

var switchStatement = c.Seq(keyword("switch"), punct('('), ExpressionRef, punct(')'), statementRef)

var returnStatement = c.Seq(keyword("return"), c.Opt(ExpressionRef), punct(';'))

var gotoStatement = c.Seq(keyword("goto"), identifier(), punct(';'))

var breakStatement = c.Seq(keyword("break"), punct(';'))

var continueStatement = c.Seq(keyword("continue"), punct(';'))

// labelStatement is tried ahead of declarations/expression-statements: an
// ordinary identifier followed by ':' is a label, not a typedef-name
// specifier or a bitfield-less declarator.
var labelStatement = c.Seq(identifier(), punct(':'), c.Not(punct(':')))

// asmStatement skips its parenthesised operand/clobber-list payload,
// recognition only: spec.md's non-goals exclude inline-asm semantics.
var asmStatement = c.Seq(
	anyKeyword("asm", "__asm__"),
	c.Any(qualifier()),
	punct('('), c.Until(punct(')')), punct(')'),
	punct(';'),
)

// compoundBodyItem is a statement or a declaration (including typedefs
// and tag definitions), matching C's "declarations and statements may be
// freely interleaved" block-scope rule.
var compoundBodyItem = c.Oneof(
	c.Seq(Typedef, punct(';')),
	c.Seq(ClassStructUnionEnumDecl, punct(';')),
	c.Seq(Declaration, punct(';')),
	statementRef,
)

// compoundStatementBody pushes a new type scope before its contents and
// always pops it afterward, on every exit path: success, failure, and any
// rewind a surrounding Oneof triggers (spec.md §4.4).
func compoundStatementBody(ctx *parseCtx, a, b int) (int, bool) {
	ctx.Data.scopes.Push()
	defer ctx.Data.scopes.Pop()

	end, ok := c.Seq(punct('{'), c.Any(compoundBodyItem), punct('}'))(ctx, a, b)
	if !ok {
		return a, false
	}
	return end, true
}

// CompoundStatement is a braced, scope-pushing block of statements and
// declarations.
var CompoundStatement = node(parsenode.KindStatementCompound, matcher(compoundStatementBody))

var statementCore = c.Oneof(
	node(parsenode.KindStatementLabel, labelStatement),
	node(parsenode.KindStatementIf, ifStatement),
	node(parsenode.KindStatementFor, forStatement),
	node(parsenode.KindStatementWhile, whileStatement),
	node(parsenode.KindStatementDoWhile, doWhileStatement),
	node(parsenode.KindStatementSwitch, switchStatement),
	node(parsenode.KindStatementCase, caseStatement),
	node(parsenode.KindStatementDefault, defaultStatement),
	node(parsenode.KindStatementReturn, returnStatement),
	node(parsenode.KindStatementGoto, gotoStatement),
	node(parsenode.KindStatementBreak, breakStatement),
	node(parsenode.KindStatementContinue, continueStatement),
	node(parsenode.KindStatementAsm, asmStatement),
	CompoundStatement,
	node(parsenode.KindStatementEmpty, emptyStatement),
	node(parsenode.KindStatementExpression, exprStatement),
)

// Statement is any recognized statement form, tried in an order that
// keeps labels and keyword-led forms from being shadowed by the
// catch-all expression-statement alternative.
var Statement matcher = statementCore
