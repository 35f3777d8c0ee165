package lexer

import (
	"testing"

	"github.com/matcheroni-go/matcheroni/internal/diag"
)

func tags(lexemes []Lexeme) []Tag {
	out := make([]Tag, len(lexemes))
	for i, l := range lexemes {
		out[i] = l.Tag
	}
	return out
}

func TestLexCoversEveryByte(t *testing.T) {
	src := []byte("int x = 1;\n")
	lexemes, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	for i := 0; i+1 < len(lexemes); i++ {
		if lexemes[i].End != lexemes[i+1].Start {
			t.Fatalf("coverage gap between lexeme %d (%+v) and %d (%+v)", i, lexemes[i], i+1, lexemes[i+1])
		}
	}
	if lexemes[0].Tag != TagBOF {
		t.Fatalf("expected first lexeme BOF, got %v", lexemes[0].Tag)
	}
	if last := lexemes[len(lexemes)-1]; last.Tag != TagEOF {
		t.Fatalf("expected last lexeme EOF, got %v", last.Tag)
	}
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	lexemes, err := Lex([]byte("int foo"))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var got []Tag
	for _, l := range lexemes {
		if !l.Tag.IsGap() && l.Tag != TagBOF && l.Tag != TagEOF {
			got = append(got, l.Tag)
		}
	}
	want := []Tag{TagKeyword, TagIdentifier}
	if len(got) != len(want) {
		t.Fatalf("got tags %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got tags %v, want %v", got, want)
		}
	}
}

func TestLexRawStringRoundTrip(t *testing.T) {
	lexemes, err := Lex([]byte(`R"xy(hello)xy"`))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var strs []Lexeme
	for _, l := range lexemes {
		if l.Tag == TagString {
			strs = append(strs, l)
		}
	}
	if len(strs) != 1 {
		t.Fatalf("expected exactly one STRING lexeme, got %d", len(strs))
	}
	if strs[0].Start != 0 || strs[0].End != len(`R"xy(hello)xy"`) {
		t.Fatalf("expected the raw string to span the whole literal, got %+v", strs[0])
	}
}

func TestLexRawStringBackrefMismatchFails(t *testing.T) {
	_, err := Lex([]byte(`R"xy(hello)yy"`))
	d, ok := err.(diag.Diagnostic)
	if !ok {
		t.Fatalf("expected a diag.Diagnostic on mismatched raw-string delimiters, got %v", err)
	}
	if d.Code != diag.CodeLexBackrefMismatch {
		t.Fatalf("Code = %v, want %v", d.Code, diag.CodeLexBackrefMismatch)
	}
}

func TestLexIntWithSuffixIsOneLexeme(t *testing.T) {
	src := []byte("0xFFull")
	lexemes, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var ints []Lexeme
	for _, l := range lexemes {
		if l.Tag == TagInt {
			ints = append(ints, l)
		}
	}
	if len(ints) != 1 {
		t.Fatalf("expected exactly one INT lexeme, got %d", len(ints))
	}
	if ints[0].Start != 0 || ints[0].End != len(src) {
		t.Fatalf("expected the INT lexeme to cover all of %q, got %+v", src, ints[0])
	}
}

func TestLexOctalDoesNotLoseToDecimalZero(t *testing.T) {
	lexemes, err := Lex([]byte("017"))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(lexemes) != 3 {
		t.Fatalf("expected [BOF, INT, EOF], got %v", tags(lexemes))
	}
	if lexemes[1].Tag != TagInt || lexemes[1].Start != 0 || lexemes[1].End != 3 {
		t.Fatalf("expected a single 3-byte INT lexeme, got %+v", lexemes[1])
	}
}

func TestLexHexFloatRequiresBinaryExponent(t *testing.T) {
	if _, ok := hexFloatCore(newMatchCtx([]byte("0x1.8")), 0, len("0x1.8")); ok {
		t.Fatalf("hex float without a p-exponent should not match")
	}
	if _, ok := hexFloatCore(newMatchCtx([]byte("0x1.8p3")), 0, len("0x1.8p3")); !ok {
		t.Fatalf("hex float with a p-exponent should match")
	}
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := Lex([]byte(`"hello`))
	d, ok := err.(diag.Diagnostic)
	if !ok {
		t.Fatalf("expected a diag.Diagnostic on an unterminated string, got %v", err)
	}
	if d.Code != diag.CodeLexUnterminatedString {
		t.Fatalf("Code = %v, want %v", d.Code, diag.CodeLexUnterminatedString)
	}
}

func TestLexUnterminatedBlockCommentIsNotACommentLexeme(t *testing.T) {
	// With no closing "*/" the comment matcher itself fails; "/" and "*"
	// then each fall through to PUNCT instead of forming a COMMENT, since
	// nothing here forces a synchronization point.
	lexemes, err := Lex([]byte("/* drifts"))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	for _, l := range lexemes {
		if l.Tag == TagComment {
			t.Fatalf("did not expect a COMMENT lexeme from an unterminated block comment, got %+v", lexemes)
		}
	}
}

func TestLexSpliceIsItsOwnLexeme(t *testing.T) {
	// "fo\<NEWLINE>o" lexes as IDENTIFIER "fo", SPLICE, IDENTIFIER "o": this
	// module performs no preprocessing, so a line splice inside a token
	// does not physically rejoin it (spec.md's lexer non-goals).
	src := []byte("fo\\\no")
	lexemes, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var idents, splices []Lexeme
	for _, l := range lexemes {
		switch l.Tag {
		case TagIdentifier:
			idents = append(idents, l)
		case TagSplice:
			splices = append(splices, l)
		}
	}
	if len(idents) != 2 || len(splices) != 1 {
		t.Fatalf("expected two IDENTIFIERs and one SPLICE, got %v", tags(lexemes))
	}
}

func TestLexCharLiteralBeforeIdentifier(t *testing.T) {
	// L'_' must lex as a single wide CHAR lexeme, not an identifier "L"
	// followed by an unterminated char.
	lexemes, err := Lex([]byte(`L'_'`))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(lexemes) != 3 || lexemes[1].Tag != TagChar {
		t.Fatalf("expected [BOF, CHAR, EOF], got %v", tags(lexemes))
	}
}

func TestLexInvalidByteTerminatesUnit(t *testing.T) {
	lexemes, err := Lex([]byte("int x `"))
	if err == nil {
		t.Fatalf("expected a lex failure on the stray backtick")
	}
	last := lexemes[len(lexemes)-1]
	if last.Tag != TagInvalid {
		t.Fatalf("expected the final lexeme to be INVALID, got %v", last.Tag)
	}
}
