package html

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenComment
	TokenDoctype
	TokenEOF
)

var tokenNames = [...]string{
	TokenStartTag: "StartTag",
	TokenEndTag:   "EndTag",
	TokenText:     "Text",
	TokenComment:  "Comment",
	TokenDoctype:  "Doctype",
	TokenEOF:      "EOF",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "Unknown"
}

// Attribute is a single name/value pair from a start tag. The tokenizer
// reports attributes in source order and keeps duplicates; collapsing them
// is the parser's business, not the tokenizer's.
type Attribute struct {
	Name  string
	Value string
}

// Token is a single HTML token. TagName is set for start and end tags, Text
// for text runs, comment interiors and doctypes (a doctype's Text is the raw
// content between '<' and '>', including the leading '!'). All string fields
// are substrings of the tokenizer input, so tokenizing does not allocate
// payload copies. Tag and attribute names are reported as written: no
// lowercasing, and text is not entity-decoded.
type Token struct {
	Type        TokenType
	TagName     string
	Attributes  []Attribute
	Text        string
	SelfClosing bool // true for tags ending with />
}

// Tokenizer splits HTML source into tokens on demand. It makes a single
// forward pass and cannot be restarted. Whitespace ahead of a token is
// skipped and never emitted, so text tokens never start with whitespace.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, pos: 0}
}

// Pos returns the current byte offset into the input.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// NextToken returns the next token, or a token of type TokenEOF once the
// input is exhausted. Malformed input never fails: truncated tags are
// emitted with whatever was read before the input ran out, and unterminated
// comments, doctypes and attribute values run to the end of the input.
//
// One construct cuts iteration short: a '<' followed by no name characters
// (such as "<>" or "< b>") is not a tag, and the tokenizer rewinds to treat
// it as text. The text run stops at that same '<', consuming nothing, so
// the stream reports EOF with the remainder of the input unread.
func (t *Tokenizer) NextToken() Token {
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

func (t *Tokenizer) readTag() Token {
	start := t.pos
	t.pos++ // consume '<'

	rest := t.input[t.pos:]
	if strings.HasPrefix(rest, "!--") {
		return t.readComment()
	}
	if len(rest) >= len("!doctype") && strings.EqualFold(rest[:len("!doctype")], "!doctype") {
		return t.readDoctype()
	}

	isEndTag := t.pos < len(t.input) && t.input[t.pos] == '/'
	if isEndTag {
		t.pos++
	}

	name := t.readName()
	if name == "" {
		// Not a tag after all. Rewind to the '<' and let the text path
		// have it; it stops at '<' immediately, ending iteration.
		t.pos = start
		return t.readText()
	}

	if isEndTag {
		// Everything up to the '>' is discarded; attributes on end tags
		// carry no meaning.
		for t.pos < len(t.input) {
			if t.input[t.pos] == '>' {
				t.pos++
				break
			}
			t.advance()
		}
		return Token{Type: TokenEndTag, TagName: name}
	}

	tok := Token{Type: TokenStartTag, TagName: name}
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			break
		}
		if t.input[t.pos] == '>' {
			t.pos++
			break
		}
		if t.input[t.pos] == '/' {
			t.pos++
			if t.pos < len(t.input) && t.input[t.pos] == '>' {
				t.pos++
				tok.SelfClosing = true
				break
			}
			// A stray '/' inside a tag is dropped.
			continue
		}
		name, value, ok := t.readAttribute()
		if !ok {
			// A character that cannot start an attribute name would
			// wedge this loop. Close the tag out with what it has.
			break
		}
		tok.Attributes = append(tok.Attributes, Attribute{Name: name, Value: value})
	}
	return tok
}

// readComment consumes a <!-- ... --> comment. Assumes pos is at the '!'.
func (t *Tokenizer) readComment() Token {
	t.pos += 3 // skip "!--"

	start := t.pos
	for t.pos+2 < len(t.input) {
		if t.input[t.pos:t.pos+3] == "-->" {
			text := t.input[start:t.pos]
			t.pos += 3
			return Token{Type: TokenComment, Text: text}
		}
		t.advance()
	}

	// Unterminated comment: the rest of the input is the content.
	text := t.input[start:]
	t.pos = len(t.input)
	return Token{Type: TokenComment, Text: text}
}

// readDoctype consumes a doctype up to the next '>'. Assumes pos is at the
// '!', which stays in the token text.
func (t *Tokenizer) readDoctype() Token {
	start := t.pos
	for t.pos < len(t.input) {
		if t.input[t.pos] == '>' {
			text := t.input[start:t.pos]
			t.pos++
			return Token{Type: TokenDoctype, Text: text}
		}
		t.advance()
	}
	return Token{Type: TokenDoctype, Text: t.input[start:]}
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	if start == t.pos {
		return Token{Type: TokenEOF}
	}
	return Token{Type: TokenText, Text: t.input[start:t.pos]}
}

func (t *Tokenizer) readName() string {
	start := t.pos
	for t.pos < len(t.input) && isNameRune(t.current()) {
		t.advance()
	}
	return t.input[start:t.pos]
}

func (t *Tokenizer) readAttribute() (name, value string, ok bool) {
	name = t.readName()
	if name == "" {
		return "", "", false
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", true
	}
	t.pos++ // consume '='
	t.skipWhitespace()
	return name, t.readAttributeValue(), true
}

func (t *Tokenizer) readAttributeValue() string {
	if t.pos >= len(t.input) {
		return ""
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		value := t.input[start:t.pos]
		if t.pos < len(t.input) {
			t.pos++ // consume the closing quote
		}
		return value
	}
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.current()
		if unicode.IsSpace(ch) || ch == '>' || ch == '/' {
			break
		}
		t.advance()
	}
	return t.input[start:t.pos]
}

// current returns the rune at the cursor, or -1 at the end of input.
func (t *Tokenizer) current() rune {
	if t.pos >= len(t.input) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
	return r
}

// advance moves the cursor past the current rune.
func (t *Tokenizer) advance() {
	if t.pos < len(t.input) {
		_, size := utf8.DecodeRuneInString(t.input[t.pos:])
		t.pos += size
	}
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.current()) {
		t.advance()
	}
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_'
}
