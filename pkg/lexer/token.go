package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent // x, my_struct
	TokenInt   // 42

	// Storage-class keywords
	TokenAuto     // auto
	TokenExtern   // extern
	TokenRegister // register
	TokenStatic   // static

	// cv-qualifier keywords
	TokenConst    // const
	TokenVolatile // volatile

	// Type keywords
	TokenVoid     // void
	TokenChar     // char
	TokenShort    // short
	TokenInt_     // int
	TokenLong     // long
	TokenFloat    // float
	TokenDouble   // double
	TokenSigned   // signed
	TokenUnsigned // unsigned
	TokenStruct   // struct
	TokenEnum     // enum

	// Punctuation
	TokenStar      // *
	TokenLParen    // (
	TokenRParen    // )
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenSemicolon // ;
	TokenComma     // ,
	TokenEllipsis  // ...
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIllegal:   "ILLEGAL",
	TokenIdent:     "IDENT",
	TokenInt:       "INT",
	TokenAuto:      "auto",
	TokenExtern:    "extern",
	TokenRegister:  "register",
	TokenStatic:    "static",
	TokenConst:     "const",
	TokenVolatile:  "volatile",
	TokenVoid:      "void",
	TokenChar:      "char",
	TokenShort:     "short",
	TokenInt_:      "int",
	TokenLong:      "long",
	TokenFloat:     "float",
	TokenDouble:    "double",
	TokenSigned:    "signed",
	TokenUnsigned:  "unsigned",
	TokenStruct:    "struct",
	TokenEnum:      "enum",
	TokenStar:      "*",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenSemicolon: ";",
	TokenComma:     ",",
	TokenEllipsis:  "...",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"auto":     TokenAuto,
	"extern":   TokenExtern,
	"register": TokenRegister,
	"static":   TokenStatic,
	"const":    TokenConst,
	"volatile": TokenVolatile,
	"void":     TokenVoid,
	"char":     TokenChar,
	"short":    TokenShort,
	"int":      TokenInt_,
	"long":     TokenLong,
	"float":    TokenFloat,
	"double":   TokenDouble,
	"signed":   TokenSigned,
	"unsigned": TokenUnsigned,
	"struct":   TokenStruct,
	"enum":     TokenEnum,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
