// Package cparser implements a context-sensitive recursive-descent parser
// for a C99/partial-C++ superset grammar, built entirely out of
// internal/combinator matchers whose atom type is token.Token rather than
// byte: the same engine the lexer uses to match bytes matches tokens here.
package cparser

import (
	"github.com/matcheroni-go/matcheroni/internal/arena"
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
	"github.com/matcheroni-go/matcheroni/internal/lexer"
	"github.com/matcheroni-go/matcheroni/internal/parsenode"
	"github.com/matcheroni-go/matcheroni/internal/token"
	"github.com/matcheroni-go/matcheroni/internal/typescope"
)

// pstate is the combinator Context's Data: everything a production needs
// beyond the token vector itself (which combinator.Context.Atoms already
// carries).
type pstate struct {
	src    []byte
	scopes *typescope.Stack
	nodes  *parsenode.Builder
}

type parseCtx = c.Context[*pstate, token.Token]
type matcher = c.Matcher[*pstate, token.Token]

// RewindCount reports how many times Oneof retried an alternative behind
// the farthest token any production has consumed, exposing the
// combinator engine's Trace-adjacent bookkeeping to callers (a
// supplemented diagnostic, not required for correctness).
func RewindCount(ctx *parseCtx) int { return ctx.Rewinds }

// newParseCtx builds a combinator context over toks, sharing one type
// scope stack and one node builder across the whole parse.
func newParseCtx(src []byte, toks []token.Token, ar *arena.Arena[parsenode.Node]) *parseCtx {
	state := &pstate{
		src:    src,
		scopes: typescope.NewStack(),
		nodes:  parsenode.NewBuilder(toks, ar),
	}
	return c.NewContext[*pstate, token.Token](toks, state)
}

// text returns a token's source spelling, NFC-normalized so typedef/tag
// name registration and lookup agree regardless of how a non-ASCII
// identifier's bytes happened to be composed in the source file.
func text(ctx *parseCtx, i int) string {
	return lexer.NormalizeIdent(ctx.Atoms[i].Text(ctx.Data.src))
}

// one matches a single token satisfying pred, relying on the exported
// AnyAtom primitive to perform the actual consumption (and its
// GlobalCursor bookkeeping) once pred has been checked.
func one(pred func(ctx *parseCtx, i int) bool) matcher {
	any := c.AnyAtom[*pstate, token.Token]()
	return func(ctx *parseCtx, a, b int) (int, bool) {
		if a >= b || !pred(ctx, a) {
			return a, false
		}
		return any(ctx, a, b)
	}
}

func tagIs(want lexer.Tag) matcher {
	return one(func(ctx *parseCtx, i int) bool { return ctx.Atoms[i].Tag() == want })
}

func keyword(word string) matcher {
	return one(func(ctx *parseCtx, i int) bool {
		return ctx.Atoms[i].Tag() == lexer.TagKeyword && text(ctx, i) == word
	})
}

func anyKeyword(words ...string) matcher {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return one(func(ctx *parseCtx, i int) bool {
		return ctx.Atoms[i].Tag() == lexer.TagKeyword && set[text(ctx, i)]
	})
}

func punct(b byte) matcher {
	return one(func(ctx *parseCtx, i int) bool {
		a := ctx.Atoms[i]
		return a.Tag() == lexer.TagPunct && len(a.Text(ctx.Data.src)) == 1 && a.Text(ctx.Data.src)[0] == b
	})
}

// puncts matches a run of consecutive single-byte PUNCT tokens spelling
// out op exactly: the lexer emits punctuation one byte at a time, so a
// multi-char operator like "->" or "<<=" is matched here as a Seq of
// single-punct matchers. Gap lexemes are already filtered out, so source
// whitespace between the bytes is not detected ("+ =" matches "+=").
func puncts(op string) matcher {
	ms := make([]matcher, len(op))
	for i := 0; i < len(op); i++ {
		ms[i] = punct(op[i])
	}
	return c.Seq[*pstate, token.Token](ms...)
}

func identifier() matcher {
	return tagIs(lexer.TagIdentifier)
}

// typedefName matches an IDENTIFIER whose spelling is registered as a
// typedef name in the current type scope or an ancestor (spec.md §4.4).
func typedefName() matcher {
	return one(func(ctx *parseCtx, i int) bool {
		return ctx.Atoms[i].Tag() == lexer.TagIdentifier && ctx.Data.scopes.HasTypedefType(text(ctx, i))
	})
}

