package frontmatter

import (
	"math"
	"strconv"

	"github.com/KimNorgaard/go-frontmatter/internal/lexer"
	"github.com/KimNorgaard/go-frontmatter/internal/token"
)

// ParseScalar converts a bare token into a typed value. The first matching
// rule wins:
//
//   - "true" and "false" become booleans
//   - "null" becomes null
//   - a complete, finite decimal literal becomes a number
//   - anything else is returned unchanged as a string
//
// The precedence is lossy on purpose: a string whose text is "true", "null"
// or a number cannot survive a round trip as a string.
func ParseScalar(s string) Value {
	switch token.LookupIdent(s) {
	case token.TRUE:
		return Bool(true)
	case token.FALSE:
		return Bool(false)
	case token.NULL:
		return Null()
	}
	if lexer.IsNumber(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
			return Number(f)
		}
	}
	return String(s)
}
