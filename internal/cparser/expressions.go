package cparser

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
	"github.com/matcheroni-go/matcheroni/internal/token"
)

// ExpressionRef lets earlier-defined productions (declarators, statements)
// refer to Expression before this file's var initializers run.
var ExpressionRef = c.Ref(func() matcher { return matcher(Expression) })

// castForm recognizes a parenthesised simple type name used as a cast
// prefix: "(int)", "(Foo*)". Abstract declarators with array/function
// suffixes inside a cast are not supported, a scope reduction noted in
// DESIGN.md.
var castForm = c.Seq(
	punct('('),
	c.Any(qualifier()),
	c.Oneof(builtinType(), typedefName()),
	c.Any(qualifier()),
	pointerRun,
	punct(')'),
)

var prefixOpMatcher = c.Oneof(
	puncts("++"), puncts("--"),
	punct('-'), punct('+'), punct('!'), punct('~'), punct('*'), punct('&'),
	castForm,
)

// callArgs and subscript deliberately skip their contents with Until
// rather than parsing each argument/index as its own Expression node —
// nested parens/brackets inside an argument aren't balanced against this
// Until, a documented simplification (DESIGN.md).
var callArgs = c.Seq(punct('('), c.Until(punct(')')), punct(')'))
var subscript = c.Seq(punct('['), c.Until(punct(']')), punct(']'))

var suffixOpMatcher = c.Oneof(
	puncts("++"), puncts("--"), callArgs, subscript,
	c.Seq(puncts("->"), identifier()), c.Seq(punct('.'), identifier()),
)

var literalMatcher = c.Oneof(
	tagIs(lexer.TagInt), tagIs(lexer.TagFloat), tagIs(lexer.TagString), tagIs(lexer.TagChar),
)

// parseCore matches a literal, an identifier, or a fully parenthesised
// sub-expression, returning the node that already represents it (built by
// the recursive expressionNode call in the parenthesised case, so the
// parens themselves don't need their own wrapper node).
func parseCore(ctx *parseCtx, a, b int) (*parsenode.Node, int, bool) {
	if end, ok := literalMatcher(ctx, a, b); ok {
		return ctx.Data.nodes.New(parsenode.KindExpressionLiteral, a, end-1), end, true
	}
	if end, ok := identifier()(ctx, a, b); ok {
		return ctx.Data.nodes.New(parsenode.KindExpressionIdentifier, a, end-1), end, true
	}
	if pEnd, ok := punct('(')(ctx, a, b); ok {
		if inner, exprEnd, ok := expressionNode(ctx, pEnd, b); ok {
			if cEnd, ok := punct(')')(ctx, exprEnd, b); ok {
				return inner, cEnd, true
			}
		}
	}
	return nil, a, false
}

// unitPrecedence is the precedence this module assigns to any unary
// prefix/suffix wrapper node (cast shares the same slot spec.md §4.6
// assigns it explicitly: precedence 3).
const unitPrecedence = 3

// parseUnit matches "(any prefix-ops)* core (any suffix-ops)*" and, when
// prefix or suffix ops were present, wraps the whole span in a single
// KindExpressionPrefix/KindExpressionSuffix node (spec.md §4.6's phase 1;
// stacked unary operators collapse into one wrapper rather than one node
// per operator, a simplification noted in DESIGN.md).
func parseUnit(ctx *parseCtx, a, b int) (*parsenode.Node, int, bool) {
	prefEnd, _ := c.Any(prefixOpMatcher)(ctx, a, b)
	core, coreEnd, ok := parseCore(ctx, prefEnd, b)
	if !ok {
		return nil, a, false
	}
	sufEnd, _ := c.Any(suffixOpMatcher)(ctx, coreEnd, b)

	switch {
	case prefEnd > a:
		n := ctx.Data.nodes.New(parsenode.KindExpressionPrefix, a, sufEnd-1)
		n.Precedence = unitPrecedence
		n.Assoc = parsenode.AssocPrefix
		return n, sufEnd, true
	case sufEnd > coreEnd:
		n := ctx.Data.nodes.New(parsenode.KindExpressionSuffix, a, sufEnd-1)
		n.Precedence = unitPrecedence
		n.Assoc = parsenode.AssocSuffix
		return n, sufEnd, true
	default:
		return core, sufEnd, true
	}
}

type binOp struct {
	sym   string
	prec  int
	assoc parsenode.Assoc
	m     matcher
}

// binaryOps is ordered longest-symbol-first so a Oneof-style scan never
// commits to a shorter operator that is actually a prefix of a longer one
// (e.g. "<<=" must be tried before "<<" and "<=", which must be tried
// before "<"). This stands in for spec.md §4.6's first-character jump
// table: the table is a matching-order optimization, this preserves the
// same longest-match-first semantics directly.
var binaryOps = []binOp{
	{sym: "<<="}, {sym: ">>="},
	{sym: "->"},
	{sym: "<<"}, {sym: ">>"},
	{sym: "<="}, {sym: ">="},
	{sym: "=="}, {sym: "!="},
	{sym: "&&"}, {sym: "||"},
	{sym: "+="}, {sym: "-="}, {sym: "*="}, {sym: "/="},
	{sym: "%="}, {sym: "&="}, {sym: "|="}, {sym: "^="},
	{sym: "."},
	{sym: "<"}, {sym: ">"},
	{sym: "="},
	{sym: "|"}, {sym: "^"}, {sym: "&"},
	{sym: "+"}, {sym: "-"},
	{sym: "*"}, {sym: "/"}, {sym: "%"},
	{sym: ","},
}

// precAssoc gives each operator symbol its spec.md §4.6 precedence
// (lower binds tighter) and associativity.
var precAssoc = map[string]struct {
	prec  int
	assoc parsenode.Assoc
}{
	"<<=": {16, parsenode.AssocRight}, ">>=": {16, parsenode.AssocRight},
	"+=": {16, parsenode.AssocRight}, "-=": {16, parsenode.AssocRight},
	"*=": {16, parsenode.AssocRight}, "/=": {16, parsenode.AssocRight},
	"%=": {16, parsenode.AssocRight}, "&=": {16, parsenode.AssocRight},
	"|=": {16, parsenode.AssocRight}, "^=": {16, parsenode.AssocRight},
	"=":  {16, parsenode.AssocRight},
	",":  {17, parsenode.AssocLeft},
	"->": {2, parsenode.AssocLeft}, ".": {2, parsenode.AssocLeft},
	"*": {5, parsenode.AssocLeft}, "/": {5, parsenode.AssocLeft}, "%": {5, parsenode.AssocLeft},
	"+": {6, parsenode.AssocLeft}, "-": {6, parsenode.AssocLeft},
	"<<": {7, parsenode.AssocLeft}, ">>": {7, parsenode.AssocLeft},
	"<": {8, parsenode.AssocLeft}, ">": {8, parsenode.AssocLeft},
	"<=": {8, parsenode.AssocLeft}, ">=": {8, parsenode.AssocLeft},
	"==": {9, parsenode.AssocLeft}, "!=": {9, parsenode.AssocLeft},
	"&":  {10, parsenode.AssocLeft},
	"^":  {11, parsenode.AssocLeft},
	"|":  {12, parsenode.AssocLeft},
	"&&": {13, parsenode.AssocLeft},
	"||": {14, parsenode.AssocLeft},
}

func init() {
	for i := range binaryOps {
		sym := binaryOps[i].sym
		binaryOps[i].m = puncts(sym)
		pa := precAssoc[sym]
		binaryOps[i].prec = pa.prec
		binaryOps[i].assoc = pa.assoc
	}
}

func matchBinaryOp(ctx *parseCtx, a, b int) (binOp, int, bool) {
	for _, op := range binaryOps {
		if end, ok := op.m(ctx, a, b); ok {
			return op, end, true
		}
	}
	return binOp{}, a, false
}

// parseBinaryChain runs phase 1 (collect units and the binary operators
// between them) then phase 2 (fold by precedence/associativity) over
// [a, b), stopping before any token that isn't a recognized unit or
// binary operator — notably ')', ']', ';', and '?'/':' (ternary is
// handled one level up in expressionNode).
func parseBinaryChain(ctx *parseCtx, a, b int) (*parsenode.Node, int, bool) {
	first, end, ok := parseUnit(ctx, a, b)
	if !ok {
		return nil, a, false
	}
	units := []*parsenode.Node{first}
	var ops []binOp
	cur := end

	for {
		op, next, ok := matchBinaryOp(ctx, cur, b)
		if !ok {
			break
		}
		u, unitEnd, ok := parseUnit(ctx, next, b)
		if !ok {
			break
		}
		ops = append(ops, op)
		units = append(units, u)
		cur = unitEnd
	}

	return foldPrecedence(ctx, units, ops), cur, true
}

// foldPrecedence implements spec.md §4.6's fold rule via the standard
// precedence-climbing transformation: since lower numbers bind tighter
// here, each operator's effective (climbing) precedence is its negation.
func foldPrecedence(ctx *parseCtx, units []*parsenode.Node, ops []binOp) *parsenode.Node {
	unitIdx, opIdx := 0, 0

	var level func(minEff int) *parsenode.Node
	level = func(minEff int) *parsenode.Node {
		left := units[unitIdx]
		unitIdx++
		for opIdx < len(ops) {
			op := ops[opIdx]
			eff := -op.prec
			if eff < minEff {
				break
			}
			opIdx++
			nextMin := eff + 1
			if op.assoc == parsenode.AssocRight {
				nextMin = eff
			}
			right := level(nextMin)
			left = ctx.Data.nodes.NewOperator(parsenode.KindExpressionBinary, left.TokA, right.TokB, op.prec, op.assoc)
		}
		return left
	}
	return level(-1 << 30)
}

// expressionNode is Expression's node-returning core: a binary-fold
// chain, optionally followed by "? expr : conditional-expr" (spec.md
// §4.6's special ternary binary form, right-associative so "a?b:c?d:e"
// parses as "a?b:(c?d:e)").
func expressionNode(ctx *parseCtx, a, b int) (*parsenode.Node, int, bool) {
	left, end, ok := parseBinaryChain(ctx, a, b)
	if !ok {
		return nil, a, false
	}
	if qEnd, ok := punct('?')(ctx, end, b); ok {
		_, thenEnd, ok := expressionNode(ctx, qEnd, b)
		if !ok {
			return nil, a, false
		}
		colonEnd, ok := punct(':')(ctx, thenEnd, b)
		if !ok {
			return nil, a, false
		}
		_, elseEnd, ok := expressionNode(ctx, colonEnd, b)
		if !ok {
			return nil, a, false
		}
		n := ctx.Data.nodes.New(parsenode.KindExpressionTernary, a, elseEnd-1)
		n.Assoc = parsenode.AssocRight
		return n, elseEnd, true
	}
	return left, end, true
}

func expressionEntry(ctx *parseCtx, a, b int) (int, bool) {
	_, end, ok := expressionNode(ctx, a, b)
	if !ok {
		return a, false
	}
	return end, true
}

// Expression is the grammar's top-level entry point, traced under the
// CLI harness's --debug flag (cmd/mcheck): a ported debug hook from the
// original's Trace<NT> wrapper, never required for a successful parse.
var Expression matcher = c.Trace[*pstate, token.Token]("Expression", expressionEntry)
