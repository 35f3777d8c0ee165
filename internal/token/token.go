// Package token filters a lexeme stream down to the tokens the parser
// actually consumes, dropping gap lexemes (whitespace, comments, splices,
// formfeeds) while leaving BOF/EOF in place as parse-boundary sentinels.
package token

import "github.com/matcheroni-go/matcheroni/internal/lexer"

// Token is a non-gap lexeme plus the parser's back-pointer into the node
// it currently belongs to, and a dirtiness flag a production can use to
// mark a token as already consumed by an enclosing match. Span starts nil
// and is set once a production spans this token (spec.md §3's
// tok_a.span == tok_b.span == node invariant); Span is an interface{} here
// to avoid an import cycle with internal/parsenode, which imports this
// package for its token vector. A token's identity is its index in the
// slice Filter returns, not any field on the struct itself.
type Token struct {
	Lexeme lexer.Lexeme
	Span   any
	Dirty  bool
}

// Tag is shorthand for the underlying lexeme's tag.
func (t Token) Tag() lexer.Tag { return t.Lexeme.Tag }

// Text returns the token's source text.
func (t Token) Text(src []byte) string { return t.Lexeme.Text(src) }

// Filter drops gap lexemes, keeping BOF/EOF and every semantically
// meaningful lexeme in order. Parsing must start at index 1 (past BOF)
// and end exactly at len(result)-1 (the EOF sentinel): any other endpoint
// is a parse failure (spec.md §4.4).
func Filter(lexemes []lexer.Lexeme) []Token {
	out := make([]Token, 0, len(lexemes))
	for _, l := range lexemes {
		if l.Tag.IsGap() {
			continue
		}
		out = append(out, Token{Lexeme: l})
	}
	return out
}
