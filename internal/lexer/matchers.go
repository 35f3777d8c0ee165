package lexer

import (
	c "github.com/matcheroni-go/matcheroni/internal/combinator"
)

// matchCtx is the combinator context type every lexeme matcher runs under.
// Lexing needs no mutable per-match data beyond the backref store the
// combinator.Context already carries for raw-string delimiters, so Data is
// the empty struct.
type matchCtx = c.Context[struct{}, byte]
type matcher = c.Matcher[struct{}, byte]

func newMatchCtx(src []byte) *matchCtx {
	return c.NewContext[struct{}, byte](src, struct{}{})
}

var (
	decDigit = c.Range[struct{}, byte]('0', '9')
	hexDigit = c.Oneof[struct{}, byte](decDigit, c.Range[struct{}, byte]('a', 'f'), c.Range[struct{}, byte]('A', 'F'))
	octDigit = c.Range[struct{}, byte]('0', '7')
	binDigit = c.Atom[struct{}, byte]('0', '1')

	utf8Cont  = c.Range[struct{}, byte](0x80, 0xBF)
	utf8Lead2 = c.Seq[struct{}, byte](c.Range[struct{}, byte](0xC2, 0xDF), utf8Cont)
	utf8Lead3 = c.Seq[struct{}, byte](c.Range[struct{}, byte](0xE0, 0xEF), utf8Cont, utf8Cont)
	utf8Lead4 = c.Seq[struct{}, byte](c.Range[struct{}, byte](0xF0, 0xF4), utf8Cont, utf8Cont, utf8Cont)
	utf8Multi = c.Oneof[struct{}, byte](utf8Lead4, utf8Lead3, utf8Lead2)

	asciiLower = c.Range[struct{}, byte]('a', 'z')
	asciiUpper = c.Range[struct{}, byte]('A', 'Z')
	underscore = c.Atom[struct{}, byte]('_')

	identStart = c.Oneof[struct{}, byte](asciiLower, asciiUpper, underscore, utf8Multi)
	identCont  = c.Oneof[struct{}, byte](asciiLower, asciiUpper, decDigit, underscore, utf8Multi)
	identifierMatcher = c.Seq[struct{}, byte](identStart, c.Any[struct{}, byte](identCont))

	spaceMatcher    = c.Some[struct{}, byte](c.Charset[struct{}](" \t\v"))
	newlineMatcher  = c.Oneof[struct{}, byte](c.Lit[struct{}]("\r\n"), c.Atom[struct{}, byte]('\n'), c.Atom[struct{}, byte]('\r'))
	formfeedMatcher = c.Atom[struct{}, byte]('\f')

	// spliceMatcher: backslash, optional spaces, optional CR, optional
	// spaces, then LF (spec.md §4.3).
	spliceMatcher = c.Seq[struct{}, byte](
		c.Atom[struct{}, byte]('\\'),
		c.Any[struct{}, byte](c.Charset[struct{}](" \t")),
		c.Opt[struct{}, byte](c.Atom[struct{}, byte]('\r')),
		c.Any[struct{}, byte](c.Charset[struct{}](" \t")),
		c.Atom[struct{}, byte]('\n'),
	)

	lineCommentMatcher  = c.Seq[struct{}, byte](c.Lit[struct{}]("//"), c.Any[struct{}, byte](c.NotAtom[struct{}, byte]('\n')))
	blockCommentMatcher = c.Seq[struct{}, byte](c.Lit[struct{}]("/*"), c.Until[struct{}, byte](c.Lit[struct{}]("*/")), c.Lit[struct{}]("*/"))
	commentMatcher      = c.Oneof[struct{}, byte](lineCommentMatcher, blockCommentMatcher)

	preprocMatcher = c.Seq[struct{}, byte](
		c.Atom[struct{}, byte]('#'),
		c.Any[struct{}, byte](c.Oneof[struct{}, byte](spliceMatcher, c.NotAtom[struct{}, byte]('\n'))),
	)

	encodingPrefix = c.Oneof[struct{}, byte](c.Lit[struct{}]("u8"), c.Lit[struct{}]("u"), c.Lit[struct{}]("U"), c.Lit[struct{}]("L"))

	stringEscape  = c.Seq[struct{}, byte](c.Atom[struct{}, byte]('\\'), c.AnyAtom[struct{}, byte]())
	cookedContent = c.Any[struct{}, byte](c.Oneof[struct{}, byte](spliceMatcher, stringEscape, c.NotAtom[struct{}, byte]('"', '\n')))
	cookedString  = c.Seq[struct{}, byte](c.Opt[struct{}, byte](encodingPrefix), c.Atom[struct{}, byte]('"'), cookedContent, c.Atom[struct{}, byte]('"'))

	rawDelimChar  = c.NotAtom[struct{}, byte]('(', ')', '\\', ' ', '\t', '\n')
	rawOpener     = c.Seq[struct{}, byte](c.Lit[struct{}](`R"`), c.StoreBackref[struct{}, byte]("raw-delim", c.Any[struct{}, byte](rawDelimChar)), c.Atom[struct{}, byte]('('))
	rawCloser     = c.Seq[struct{}, byte](c.Atom[struct{}, byte](')'), c.MatchBackref[struct{}, byte]("raw-delim"), c.Atom[struct{}, byte]('"'))
	rawStringBody = c.Until[struct{}, byte](rawCloser)
	rawString     = c.Seq[struct{}, byte](rawOpener, rawStringBody, rawCloser)

	// rawString is not part of this Oneof: lexer.go special-cases the
	// R" prefix so a malformed raw-string delimiter is a hard failure
	// rather than a fallback to cookedString or an identifier.
	stringMatcher = cookedString

	charContent = c.Any[struct{}, byte](c.Oneof[struct{}, byte](stringEscape, c.NotAtom[struct{}, byte]('\'', '\n')))
	charMatcher = c.Seq[struct{}, byte](c.Opt[struct{}, byte](encodingPrefix), c.Atom[struct{}, byte]('\''), c.Some[struct{}, byte](c.Oneof[struct{}, byte](stringEscape, c.NotAtom[struct{}, byte]('\'', '\n'))), c.Atom[struct{}, byte]('\''))

	// Backslash is deliberately absent: standalone it is only ever the
	// start of a line splice, tried separately in the lexer's priority
	// list, never a punctuator on its own.
	punctBytes   = "+-*/%=<>!&|^~?:;,.()[]{}#@$"
	punctMatcher = c.Charset[struct{}](punctBytes)
)

var _ = charContent // retained for documentation of the character-literal body shape
