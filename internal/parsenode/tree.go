package parsenode

import (
	"github.com/matcheroni-go/matcheroni/internal/arena"
	"github.com/matcheroni-go/matcheroni/internal/token"
)

// Builder constructs Nodes over a shared token vector and arena, applying
// the span-marking invariant (tok_a.span == tok_b.span == n) and the
// left-to-right span-scan that discovers a node's children.
type Builder struct {
	Toks  []token.Token
	Arena *arena.Arena[Node]
}

// NewBuilder returns a Builder over toks, allocating from ar.
func NewBuilder(toks []token.Token, ar *arena.Arena[Node]) *Builder {
	return &Builder{Toks: toks, Arena: ar}
}

// New creates a node of kind spanning the inclusive token range
// [tokA, tokB], discovers its children by scanning that range, and marks
// tokA/tokB's Span fields to point at it.
func (b *Builder) New(kind Kind, tokA, tokB int) *Node {
	n := b.Arena.Alloc()
	*n = Node{Kind: kind, TokA: tokA, TokB: tokB}
	b.scanChildren(n)
	b.Toks[tokA].Span = n
	b.Toks[tokB].Span = n
	return n
}

// NewOperator is New plus the precedence/associativity an expression-fold
// node carries.
func (b *Builder) NewOperator(kind Kind, tokA, tokB int, precedence int, assoc Assoc) *Node {
	n := b.New(kind, tokA, tokB)
	n.Precedence = precedence
	n.Assoc = assoc
	return n
}

// scanChildren walks [n.TokA, n.TokB] left to right. Whenever a token
// already carries a *Node span from an earlier (necessarily nested)
// production, that node becomes a child and the scan jumps to just past
// its TokB; otherwise the scan advances one token at a time.
func (b *Builder) scanChildren(n *Node) {
	i := n.TokA
	for i <= n.TokB {
		if sub, ok := b.Toks[i].Span.(*Node); ok && sub != nil && sub != n {
			n.addChild(sub)
			i = sub.TokB + 1
			continue
		}
		i++
	}
}
