package cparser

import (
	"fmt"

	"github.com/matcheroni-go/matcheroni/internal/arena"
	"github.com/matcheroni-go/matcheroni/internal/diag"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
	"github.com/matcheroni-go/matcheroni/internal/token"
)

// Result is one translation unit's parse: the root node, the filtered
// token vector its spans index into, the arena backing every node the
// parse allocated, and the rewind counter the combinator engine's
// Trace-adjacent bookkeeping accumulated along the way (spec.md §4.7's
// "total bytes-in-use tracked for stats" counterpart for match attempts).
type Result struct {
	Root    *parsenode.Node
	Toks    []token.Token
	Arena   *arena.Arena[parsenode.Node]
	Rewinds int
}

// TraceFunc is invoked around every matcher wrapped with combinator.Trace
// (currently just Expression) when passed to ParseTraced. See
// cmd/mcheck's --debug flag.
type TraceFunc = func(name string, a, b, end int, ok bool)

// Parse lexes and parses src as one translation unit. A lex failure or a
// parse that does not consume exactly the filtered token range
// [1, len(toks)-1) — i.e. everything between the BOF and EOF sentinels —
// aborts with a single diag.Diagnostic (spec.md §4.4, §7: no error
// recovery, a failed unit produces at most one diagnostic).
func Parse(src []byte) (*Result, error) {
	return ParseTraced(src, nil)
}

// ParseTraced is Parse with an optional matcher-trace callback wired onto
// the parse context's combinator.Context.Trace hook.
func ParseTraced(src []byte, trace TraceFunc) (*Result, error) {
	lexemes, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}

	toks := token.Filter(lexemes)
	ar := arena.New[parsenode.Node]()
	ctx := newParseCtx(src, toks, ar)
	ctx.Trace = trace

	a, b := 1, len(toks)-1
	end, ok := TranslationUnit(ctx, a, b)
	if !ok {
		return nil, diag.Diagnostic{
			Stage:    diag.StageParser,
			Severity: diag.SeverityError,
			Code:     diag.CodeParseTranslationUnit,
			Message:  "translation unit failed to parse",
			Span:     tokenSpan(toks, a),
		}
	}
	if end != b {
		return nil, diag.Diagnostic{
			Stage:    diag.StageParser,
			Severity: diag.SeverityError,
			Code:     diag.CodeParseEndpointMismatch,
			Message:  fmt.Sprintf("parse stopped at token %d, expected to reach %d", end, b),
			Span:     tokenSpan(toks, end),
		}
	}

	root, _ := toks[a].Span.(*parsenode.Node)
	if root == nil {
		root = ctx.Data.nodes.New(parsenode.KindTranslationUnit, a, b-1)
	}
	return &Result{Root: root, Toks: toks, Arena: ar, Rewinds: RewindCount(ctx)}, nil
}

func tokenSpan(toks []token.Token, i int) diag.Span {
	if i < 0 || i >= len(toks) {
		return diag.Span{}
	}
	lx := toks[i].Lexeme
	return diag.Span{Start: lx.Start, End: lx.End}
}
