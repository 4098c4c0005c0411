package token

// Type is the type of a token.
type Type string

// Token represents one classified physical line of front matter.
type Token struct {
	Type    Type
	Literal string // the trimmed line content
	Key     string // key of a PAIR, HEADER or ITEM_PAIR
	Value   string // value of a PAIR or ITEM_PAIR, body of an ITEM
	Line    int
	Indent  int // leading whitespace, in runes
}

// Column returns the 1-based column of the first non-blank character.
func (t Token) Column() int { return t.Indent + 1 }

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A line the grammar has no form for
	EOF     Type = "EOF"     // End of input

	// Lines without content
	BLANK   Type = "BLANK"   // an empty or whitespace-only line
	COMMENT Type = "COMMENT" // # a comment

	// Mapping lines
	PAIR   Type = "PAIR"   // key: value
	HEADER Type = "HEADER" // key:

	// List lines
	ITEM      Type = "ITEM"      // - value
	ITEM_PAIR Type = "ITEM_PAIR" // - key: value

	// Scalar keywords
	IDENT Type = "IDENT"
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupIdent checks the keywords table for a bare scalar.
// If the scalar is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
