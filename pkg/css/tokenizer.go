package css

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenIdent TokenType = iota
	TokenString
	TokenNumber
	TokenDimension
	TokenPercentage
	TokenHash
	TokenDelim
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenColon        // :
	TokenSemicolon    // ;
	TokenComma        // ,
	TokenWhitespace
	TokenComment
	TokenAtKeyword
	TokenURL
	TokenEOF
)

var tokenNames = [...]string{
	TokenIdent:        "Ident",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenDimension:    "Dimension",
	TokenPercentage:   "Percentage",
	TokenHash:         "Hash",
	TokenDelim:        "Delim",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenLeftBracket:  "LeftBracket",
	TokenRightBracket: "RightBracket",
	TokenColon:        "Colon",
	TokenSemicolon:    "Semicolon",
	TokenComma:        "Comma",
	TokenWhitespace:   "Whitespace",
	TokenComment:      "Comment",
	TokenAtKeyword:    "AtKeyword",
	TokenURL:          "URL",
	TokenEOF:          "EOF",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "Unknown"
}

// Token is a single CSS token. Value holds the token's text payload: the
// identifier, string content (escape sequences kept verbatim), hash or
// at-keyword name, comment interior, url body, delimiter, or the raw numeric
// text. Payloads are substrings of the tokenizer input, so tokenizing does
// not allocate. Number and Unit are set for numeric token types only.
type Token struct {
	Type   TokenType
	Value  string
	Number float64
	Unit   string
}

// Tokenizer splits CSS source into tokens on demand. It makes a single
// forward pass and cannot be restarted.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input: input,
		pos:   0,
	}
}

// Pos returns the current byte offset into the input.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// NextToken returns the next token, or a token of type TokenEOF once the
// input is exhausted. Malformed input never fails: unterminated strings,
// comments and url() literals run to the end of the input and are emitted
// anyway, and any character that fits nothing else becomes a Delim token.
func (t *Tokenizer) NextToken() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}

	ch := t.current()

	switch {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		return t.consumeWhitespace()
	case ch == '/' && t.peek() == '*':
		return t.consumeComment()
	case ch == '{':
		t.pos++
		return Token{Type: TokenLeftBrace, Value: "{"}
	case ch == '}':
		t.pos++
		return Token{Type: TokenRightBrace, Value: "}"}
	case ch == '(':
		t.pos++
		return Token{Type: TokenLeftParen, Value: "("}
	case ch == ')':
		t.pos++
		return Token{Type: TokenRightParen, Value: ")"}
	case ch == '[':
		t.pos++
		return Token{Type: TokenLeftBracket, Value: "["}
	case ch == ']':
		t.pos++
		return Token{Type: TokenRightBracket, Value: "]"}
	case ch == ':':
		t.pos++
		return Token{Type: TokenColon, Value: ":"}
	case ch == ';':
		t.pos++
		return Token{Type: TokenSemicolon, Value: ";"}
	case ch == ',':
		t.pos++
		return Token{Type: TokenComma, Value: ","}
	case ch == '"' || ch == '\'':
		return t.consumeString(ch)
	case ch == '#':
		return t.consumeHash()
	case ch == '@':
		return t.consumeAtKeyword()
	case isASCIIDigit(ch):
		return t.consumeNumeric()
	case ch == '.' && isASCIIDigit(t.peek()):
		return t.consumeNumeric()
	case ch == '-' && t.isNumberStart():
		return t.consumeNumeric()
	case isIdentStart(ch):
		return t.consumeIdentOrURL()
	default:
		start := t.pos
		t.advance()
		return Token{Type: TokenDelim, Value: t.input[start:t.pos]}
	}
}

// current returns the rune at the cursor, or -1 at the end of input.
func (t *Tokenizer) current() rune {
	if t.pos >= len(t.input) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
	return r
}

// peek returns the rune after the current one, or -1 at the end of input.
func (t *Tokenizer) peek() rune {
	_, size := utf8.DecodeRuneInString(t.input[t.pos:])
	if t.pos+size >= len(t.input) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos+size:])
	return r
}

// advance moves the cursor past the current rune.
func (t *Tokenizer) advance() {
	if t.pos < len(t.input) {
		_, size := utf8.DecodeRuneInString(t.input[t.pos:])
		t.pos += size
	}
}

func (t *Tokenizer) consumeWhitespace() Token {
	for t.pos < len(t.input) && unicode.IsSpace(t.current()) {
		t.advance()
	}
	return Token{Type: TokenWhitespace}
}

// consumeComment consumes a /* ... */ comment. Assumes pos is at the '/'.
func (t *Tokenizer) consumeComment() Token {
	t.pos += 2 // skip /*

	start := t.pos
	for t.pos+1 < len(t.input) {
		if t.input[t.pos] == '*' && t.input[t.pos+1] == '/' {
			content := t.input[start:t.pos]
			t.pos += 2
			return Token{Type: TokenComment, Value: content}
		}
		t.pos++
	}

	// Unterminated comment: the rest of the input is the content.
	content := t.input[start:]
	t.pos = len(t.input)
	return Token{Type: TokenComment, Value: content}
}

func (t *Tokenizer) consumeString(quote rune) Token {
	t.advance() // skip opening quote
	start := t.pos

	for t.pos < len(t.input) {
		ch := t.current()
		if ch == quote {
			content := t.input[start:t.pos]
			t.advance() // skip closing quote
			return Token{Type: TokenString, Value: content}
		}
		if ch == '\\' {
			t.advance()
			if t.pos < len(t.input) {
				t.advance() // escaped character stays in the payload
			}
			continue
		}
		t.advance()
	}

	// Unterminated string: the rest of the input is the content.
	return Token{Type: TokenString, Value: t.input[start:]}
}

func (t *Tokenizer) consumeHash() Token {
	t.advance() // skip '#'
	start := t.pos

	for t.pos < len(t.input) && isNameRune(t.current()) {
		t.advance()
	}

	if start == t.pos {
		return Token{Type: TokenDelim, Value: "#"}
	}
	return Token{Type: TokenHash, Value: t.input[start:t.pos]}
}

func (t *Tokenizer) consumeAtKeyword() Token {
	t.advance() // skip '@'
	start := t.pos

	for t.pos < len(t.input) && isNameRune(t.current()) {
		t.advance()
	}

	if start == t.pos {
		return Token{Type: TokenDelim, Value: "@"}
	}
	return Token{Type: TokenAtKeyword, Value: t.input[start:t.pos]}
}

// consumeNumeric reads a number and classifies it by its trailing marker:
// '%' makes a Percentage, a letter-initial alphanumeric run makes a
// Dimension, anything else leaves a plain Number.
func (t *Tokenizer) consumeNumeric() Token {
	start := t.pos
	hasDot := false

	if t.current() == '-' {
		t.advance()
	}
	for t.pos < len(t.input) {
		ch := t.current()
		if isASCIIDigit(ch) {
			t.advance()
		} else if ch == '.' && !hasDot {
			hasDot = true
			t.advance()
		} else {
			break
		}
	}

	// A run like "-." parses as zero rather than failing.
	value, _ := strconv.ParseFloat(t.input[start:t.pos], 64)

	if t.current() == '%' {
		t.advance()
		return Token{Type: TokenPercentage, Value: t.input[start:t.pos], Number: value}
	}
	if unicode.IsLetter(t.current()) {
		unitStart := t.pos
		for t.pos < len(t.input) && isAlphanumeric(t.current()) {
			t.advance()
		}
		return Token{
			Type:   TokenDimension,
			Value:  t.input[start:t.pos],
			Number: value,
			Unit:   t.input[unitStart:t.pos],
		}
	}
	return Token{Type: TokenNumber, Value: t.input[start:t.pos], Number: value}
}

func (t *Tokenizer) consumeIdentOrURL() Token {
	start := t.pos

	for t.pos < len(t.input) && isNameRune(t.current()) {
		t.advance()
	}

	ident := t.input[start:t.pos]
	if ident == "url" && t.current() == '(' {
		return t.consumeURL()
	}
	return Token{Type: TokenIdent, Value: ident}
}

// consumeURL reads the body of a url(...) literal. Assumes pos is at the
// opening paren. The body may be bare or quoted; a bare body is trimmed of
// surrounding whitespace, a quoted one is kept verbatim.
func (t *Tokenizer) consumeURL() Token {
	t.advance() // skip '('
	t.skipWhitespace()

	var quote rune
	if ch := t.current(); ch == '"' || ch == '\'' {
		quote = ch
		t.advance()
	}

	start := t.pos
	for t.pos < len(t.input) {
		ch := t.current()
		if quote != 0 {
			if ch == quote {
				url := t.input[start:t.pos]
				t.advance() // skip closing quote
				t.skipWhitespace()
				if t.current() == ')' {
					t.advance()
				}
				return Token{Type: TokenURL, Value: url}
			}
		} else if ch == ')' {
			url := strings.TrimSpace(t.input[start:t.pos])
			t.advance()
			return Token{Type: TokenURL, Value: url}
		}
		t.advance()
	}

	// Unterminated url: the rest of the input is the body.
	return Token{Type: TokenURL, Value: t.input[start:]}
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.current()) {
		t.advance()
	}
}

func (t *Tokenizer) isNumberStart() bool {
	next := t.peek()
	return isASCIIDigit(next) || next == '.'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '-'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isNameRune(r rune) bool {
	return isAlphanumeric(r) || r == '-' || r == '_'
}
