package cparser

import "github.com/matcheroni-go/matcheroni/internal/parsenode"

// node wraps pattern so that, on a non-empty successful match, it builds a
// parsenode.Node of kind spanning the tokens just consumed — the Go
// rendition of spec.md §4.5's "every grammar production ... on successful
// match, a node of that kind is created". Nested productions run (and
// build their own nodes) before an enclosing node() wrapper runs, so the
// enclosing node's span-scan always finds them already spanned.
func node(kind parsenode.Kind, pattern matcher) matcher {
	return func(ctx *parseCtx, a, b int) (int, bool) {
		end, ok := pattern(ctx, a, b)
		if !ok || end == a {
			return a, false
		}
		ctx.Data.nodes.New(kind, a, end-1)
		return end, true
	}
}
