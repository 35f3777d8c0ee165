package lexer

import "github.com/matcheroni-go/matcheroni/internal/sst"

// keywordTable holds the C99 keyword set (without _Bool, _Complex and
// _Imaginary, which lex as identifiers) plus the partial-C++/GCC
// extension words this grammar also recognizes (class, asm, _Atomic,
// typeof/decltype, template), sorted as sst.Table requires. Grounded on
// matcheroni/c_constants.h's c99_keywords array.
var keywordTable = sst.New(
	"_Atomic", "__asm__", "__attribute", "__attribute__", "__typeof__",
	"asm", "auto", "break", "case", "char", "class", "const", "continue",
	"decltype", "default", "do", "double", "else", "enum", "extern",
	"float", "for", "goto", "if", "inline", "int",
	"long", "register", "restrict", "return", "short", "signed",
	"sizeof", "static", "struct", "switch", "template", "typedef", "typeof",
	"union", "unsigned", "void", "volatile", "while",
)

// builtinTypeTable holds builtin/GCC extension type-name atoms, grounded
// on c_constants.h's builtin_type_base.
var builtinTypeTable = sst.New(
	"__builtin_va_list", "__imag__", "__label__", "__real__",
	"bool", "char", "double", "float", "int",
	"long", "ptrdiff_t", "short", "signed", "size_t",
	"unsigned", "void", "wchar_t",
)

// qualifierTable holds storage-class/type qualifiers, grounded on
// c_constants.h's qualifiers array.
var qualifierTable = sst.New(
	"__const", "__extension__", "__inline", "__inline__",
	"__restrict", "__restrict__", "__stdcall", "__thread",
	"__volatile", "__volatile__", "auto", "const",
	"consteval", "constexpr", "constinit", "explicit",
	"extern", "inline", "mutable", "register", "restrict",
	"static", "thread_local", "virtual", "volatile",
)

// IsKeyword reports whether ident is a C99 reserved word.
func IsKeyword(ident string) bool { return keywordTable.Lookup(NormalizeIdent(ident)) }

// IsBuiltinType reports whether ident names a builtin/GCC extension type.
func IsBuiltinType(ident string) bool { return builtinTypeTable.Lookup(NormalizeIdent(ident)) }

// IsQualifier reports whether ident is a storage-class or type qualifier.
func IsQualifier(ident string) bool { return qualifierTable.Lookup(NormalizeIdent(ident)) }
