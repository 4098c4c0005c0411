package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-frontmatter/internal/token"
)

// Lexer holds the state for splitting front matter source into line tokens.
type Lexer struct {
	input string
	pos   int // start of the next physical line
	line  int // number of the line most recently returned
	done  bool
}

// New creates and returns a new Lexer.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken reads the next physical line and returns it classified.
// Lines end at "\n"; a single "\r" before it is dropped. Once the input is
// exhausted NextToken keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	if l.done {
		return token.Token{Type: token.EOF, Line: l.line}
	}
	l.line++

	var raw string
	if i := strings.IndexByte(l.input[l.pos:], '\n'); i >= 0 {
		raw = l.input[l.pos : l.pos+i]
		l.pos += i + 1
	} else {
		raw = l.input[l.pos:]
		l.pos = len(l.input)
		l.done = true
	}
	return Classify(strings.TrimSuffix(raw, "\r"), l.line)
}

// Tokenize returns every line token of input, without the trailing EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Classify turns a single physical line into a token.
func Classify(raw string, line int) token.Token {
	trimmed := strings.TrimSpace(raw)
	tok := token.Token{Literal: trimmed, Line: line, Indent: indentOf(raw)}

	switch {
	case trimmed == "":
		tok.Type = token.BLANK
	case trimmed[0] == '#':
		tok.Type = token.COMMENT
	case trimmed[0] == '-':
		body := strings.TrimSpace(trimmed[1:])
		if key, value, ok := splitInlinePair(body); ok {
			tok.Type = token.ITEM_PAIR
			tok.Key = key
			tok.Value = value
		} else {
			tok.Type = token.ITEM
			tok.Value = body
		}
	default:
		key, value, found := strings.Cut(trimmed, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch {
		case !found || key == "":
			tok.Type = token.ILLEGAL
		case value == "":
			tok.Type = token.HEADER
			tok.Key = key
		default:
			tok.Type = token.PAIR
			tok.Key = key
			tok.Value = value
		}
	}
	return tok
}

// splitInlinePair reports whether a list item body opens an inline object,
// i.e. has the form "key: rest" where key holds no whitespace and rest is
// not empty. Bodies with flow collection brackets are never split.
func splitInlinePair(body string) (key, rest string, ok bool) {
	if strings.ContainsAny(body, "{[") {
		return "", "", false
	}
	i := strings.IndexByte(body, ':')
	if i <= 0 {
		return "", "", false
	}
	key = body[:i]
	if strings.ContainsFunc(key, unicode.IsSpace) {
		return "", "", false
	}
	after := body[i+1:]
	if r, _ := utf8.DecodeRuneInString(after); !unicode.IsSpace(r) {
		return "", "", false
	}
	rest = strings.TrimSpace(after)
	if rest == "" {
		return "", "", false
	}
	return key, rest, true
}

func indentOf(raw string) int {
	n := 0
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func parseMantissa(s string, i int) (newIndex int, ok bool) {
	intStart := i
	i = consumeDigits(s, i)
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		i++ // Consume '.'.
		fracStart := i
		i = consumeDigits(s, i)
		digits += i - fracStart
	}
	return i, digits > 0
}

func parseExponentPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true
	}
	i++ // Consume 'e' or 'E'.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponentStart := i
	i = consumeDigits(s, i)
	if i == exponentStart {
		return i, false // No digits in exponent.
	}
	return i, true
}

// IsNumber reports whether s is a complete decimal numeric literal: an
// optional sign, digits with an optional fraction (either side of the '.'
// may be empty, not both), and an optional exponent.
func IsNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0

	// Optional sign.
	if s[i] == '-' || s[i] == '+' {
		i++
	}

	var ok bool
	i, ok = parseMantissa(s, i)
	if !ok {
		return false
	}

	i, ok = parseExponentPart(s, i)
	if !ok {
		return false
	}

	// Must consume the whole string.
	return i == len(s)
}
