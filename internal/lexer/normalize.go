package lexer

import "golang.org/x/text/unicode/norm"

// NormalizeIdent canonicalizes an identifier spelling to NFC before it is
// looked up in a keyword/type/qualifier table or registered in a type
// scope, so a precomposed and a decomposed encoding of the same non-ASCII
// identifier (GCC permits non-ASCII bytes in identifiers, spec.md §6)
// compare equal. A no-op for the ASCII spellings every table in this
// package actually holds.
func NormalizeIdent(ident string) string {
	if norm.NFC.IsNormalString(ident) {
		return ident
	}
	return norm.NFC.String(ident)
}
