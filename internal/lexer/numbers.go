package lexer

import c "github.com/matcheroni-go/matcheroni/internal/combinator"

// Integer literals are tried hex, binary, decimal, then octal last — octal
// and decimal both start with an optional '0', so decimal's bare-zero
// alternative explicitly refuses a following octal digit (via Not) to let
// the octal alternative claim "0"-prefixed runs instead.
var (
	hexPrefix = c.Oneof[struct{}, byte](c.Lit[struct{}]("0x"), c.Lit[struct{}]("0X"))
	hexInt    = c.Seq[struct{}, byte](hexPrefix, c.Some[struct{}, byte](hexDigit))

	binPrefix = c.Oneof[struct{}, byte](c.Lit[struct{}]("0b"), c.Lit[struct{}]("0B"))
	binInt    = c.Seq[struct{}, byte](binPrefix, c.Some[struct{}, byte](binDigit))

	decNonZero = c.Seq[struct{}, byte](c.Range[struct{}, byte]('1', '9'), c.Any[struct{}, byte](decDigit))
	decZero    = c.Seq[struct{}, byte](c.Atom[struct{}, byte]('0'), c.Not[struct{}, byte](octDigit))
	decInt     = c.Oneof[struct{}, byte](decNonZero, decZero)

	octInt = c.Seq[struct{}, byte](c.Atom[struct{}, byte]('0'), c.Some[struct{}, byte](octDigit))

	intCore = c.Oneof[struct{}, byte](hexInt, binInt, decInt, octInt)

	// Suffixes are tried longest-combination-first so "ull" is not left
	// truncated to "u" by a shorter alternative winning first.
	uSuf        = c.Charset[struct{}]("uU")
	llSuf       = c.Oneof[struct{}, byte](c.Lit[struct{}]("ll"), c.Lit[struct{}]("LL"))
	lSuf        = c.Charset[struct{}]("lL")
	wbSuf       = c.Oneof[struct{}, byte](c.Lit[struct{}]("wb"), c.Lit[struct{}]("WB"))
	complexSuf  = c.Charset[struct{}]("ijIJ")
	intSufCore  = c.Oneof[struct{}, byte](
		c.Seq[struct{}, byte](uSuf, llSuf),
		c.Seq[struct{}, byte](uSuf, lSuf),
		c.Seq[struct{}, byte](uSuf, wbSuf),
		uSuf,
		c.Seq[struct{}, byte](llSuf, c.Opt[struct{}, byte](uSuf)),
		c.Seq[struct{}, byte](lSuf, c.Opt[struct{}, byte](uSuf)),
		c.Seq[struct{}, byte](wbSuf, c.Opt[struct{}, byte](uSuf)),
	)
	intSuffix = c.Seq[struct{}, byte](
		c.Opt[struct{}, byte](complexSuf),
		c.Opt[struct{}, byte](intSufCore),
		c.Opt[struct{}, byte](complexSuf),
	)

	intMatcher = c.Seq[struct{}, byte](intCore, intSuffix)
)

// Float literals: decimal fractional/exponent forms, and hex-floats, which
// require a binary exponent (the 'p'/'P' suffix is not optional there —
// "0x1.8" alone is not a valid float).
var (
	fractional = c.Oneof[struct{}, byte](
		c.Seq[struct{}, byte](c.Some[struct{}, byte](decDigit), c.Atom[struct{}, byte]('.'), c.Any[struct{}, byte](decDigit)),
		c.Seq[struct{}, byte](c.Any[struct{}, byte](decDigit), c.Atom[struct{}, byte]('.'), c.Some[struct{}, byte](decDigit)),
	)
	decExponent = c.Seq[struct{}, byte](c.Charset[struct{}]("eE"), c.Opt[struct{}, byte](c.Charset[struct{}]("+-")), c.Some[struct{}, byte](decDigit))

	decimalFloatCore = c.Oneof[struct{}, byte](
		c.Seq[struct{}, byte](fractional, c.Opt[struct{}, byte](decExponent)),
		c.Seq[struct{}, byte](c.Some[struct{}, byte](decDigit), decExponent),
	)

	hexFrac = c.Oneof[struct{}, byte](
		c.Seq[struct{}, byte](c.Some[struct{}, byte](hexDigit), c.Atom[struct{}, byte]('.'), c.Any[struct{}, byte](hexDigit)),
		c.Seq[struct{}, byte](c.Any[struct{}, byte](hexDigit), c.Atom[struct{}, byte]('.'), c.Some[struct{}, byte](hexDigit)),
		c.Some[struct{}, byte](hexDigit),
	)
	binExponent  = c.Seq[struct{}, byte](c.Charset[struct{}]("pP"), c.Opt[struct{}, byte](c.Charset[struct{}]("+-")), c.Some[struct{}, byte](decDigit))
	hexFloatCore = c.Seq[struct{}, byte](hexPrefix, hexFrac, binExponent)

	floatCore = c.Oneof[struct{}, byte](hexFloatCore, decimalFloatCore)

	// GCC's decimal-float suffixes (df/dd/dl) are tried before the plain
	// f/l suffix set so they aren't truncated to a single byte.
	floatDecimalSuf = c.Oneof[struct{}, byte](
		c.Lit[struct{}]("df"), c.Lit[struct{}]("dd"), c.Lit[struct{}]("dl"),
		c.Lit[struct{}]("DF"), c.Lit[struct{}]("DD"), c.Lit[struct{}]("DL"),
	)
	floatSuffix = c.Opt[struct{}, byte](c.Oneof[struct{}, byte](floatDecimalSuf, c.Charset[struct{}]("fFlL")))

	floatMatcher = c.Seq[struct{}, byte](floatCore, floatSuffix)
)
