// Package lexer turns a C translation unit's source bytes into a flat
// Lexeme sequence. It tries lexeme categories in a fixed priority order at
// every position and, unlike a recovering front-end, simply fails the whole
// unit the moment nothing matches: there is no synchronization point to
// resume from, matching the no-error-recovery design spec.md §7 calls for.
package lexer

import (
	"fmt"

	"github.com/matcheroni-go/matcheroni/internal/diag"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// category pairs a lexeme tag with the matcher that recognizes it. Lex
// tries categories in order and commits to the first one that matches at
// the current position — there is no longest-match comparison across
// categories, only within one (Any/Some are already greedy).
type category struct {
	tag Tag
	m   matcher
}

var categories = []category{
	{TagSpace, spaceMatcher},
	{TagNewline, newlineMatcher},
	{TagString, stringMatcher},
	{TagChar, charMatcher},
	{TagIdentifier, identifierMatcher},
	{TagComment, commentMatcher},
	{TagPreproc, preprocMatcher},
	{TagFloat, floatMatcher},
	{TagInt, intMatcher},
	{TagPunct, punctMatcher},
	{TagSplice, spliceMatcher},
	{TagFormfeed, formfeedMatcher},
}

// Lex scans src into [BOF, lexemes..., EOF]. On the first byte that no
// category matches, it returns the lexemes accumulated so far (ending in a
// synthetic TagInvalid lexeme covering that byte) alongside a
// diag.Diagnostic describing the failure. Callers must not continue lexing
// past a returned error: this lexer has no resynchronization point.
func Lex(src []byte) ([]Lexeme, error) {
	start := 0
	if len(src) >= len(bom) && string(src[:len(bom)]) == string(bom) {
		start = len(bom)
	}

	lexemes := make([]Lexeme, 0, len(src)/4+2)
	lexemes = append(lexemes, Lexeme{Tag: TagBOF, Start: 0, End: start})

	ctx := newMatchCtx(src)
	n := len(src)
	pos := start

	for pos < n {
		lx, ok := lexOne(ctx, pos, n)
		if !ok {
			lexemes = append(lexemes, Lexeme{Tag: TagInvalid, Start: pos, End: pos + 1})
			code, msg := classifyLexFailure(ctx, pos, n)
			return lexemes, diag.Diagnostic{
				Stage:    diag.StageLexer,
				Severity: diag.SeverityError,
				Code:     code,
				Message:  msg,
				Span:     diag.Span{Start: pos, End: pos + 1},
			}
		}
		lexemes = append(lexemes, lx)
		pos = lx.End
	}

	lexemes = append(lexemes, Lexeme{Tag: TagEOF, Start: n, End: n})
	return lexemes, nil
}

// lexOne tries every category in priority order at pos, reclassifying a
// matched identifier span into TagKeyword when the spelling is reserved.
func lexOne(ctx *matchCtx, pos, n int) (Lexeme, bool) {
	// A raw string prefix commits: once "R\"" is seen there is no falling
	// back to treating 'R' as an identifier. A malformed delimiter or a
	// backref mismatch against the closer is a hard lex failure here, not
	// a cue to retry as something else (spec.md's raw-string example).
	if pos+1 < n && ctx.Atoms[pos] == 'R' && ctx.Atoms[pos+1] == '"' {
		end, ok := rawString(ctx, pos, n)
		if !ok {
			return Lexeme{}, false
		}
		return Lexeme{Tag: TagString, Start: pos, End: end}, true
	}

	for _, cat := range categories {
		end, ok := cat.m(ctx, pos, n)
		if !ok || end == pos {
			continue
		}
		tag := cat.tag
		if tag == TagIdentifier && IsKeyword(string(ctx.Atoms[pos:end])) {
			tag = TagKeyword
		}
		return Lexeme{Tag: tag, Start: pos, End: end}, true
	}
	return Lexeme{}, false
}

// classifyLexFailure picks the diagnostic code and message for a lexOne
// failure at pos. An unterminated block comment is deliberately absent
// here: punctBytes includes both '/' and '*', so that case never reaches
// lexOne's failure path at all (TestLexUnterminatedBlockCommentIsNotACommentLexeme)
// — it falls back to stray PUNCT lexemes rather than failing the unit.
func classifyLexFailure(ctx *matchCtx, pos, n int) (diag.Code, string) {
	switch {
	case pos+1 < n && ctx.Atoms[pos] == 'R' && ctx.Atoms[pos+1] == '"':
		return diag.CodeLexBackrefMismatch, fmt.Sprintf("raw string delimiter at offset %d has no matching closer", pos)
	case ctx.Atoms[pos] == '"':
		return diag.CodeLexUnterminatedString, fmt.Sprintf("unterminated string literal starting at offset %d", pos)
	default:
		return diag.CodeLexInvalid, fmt.Sprintf("no lexeme matches byte 0x%02x at offset %d", ctx.Atoms[pos], pos)
	}
}
