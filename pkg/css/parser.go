package css

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrTooDeep reports a selector whose combinator chain exceeds the
// configured limit. It is the only error the parser can return; malformed
// input is skipped or repaired instead.
var ErrTooDeep = errors.New("selector too deeply nested")

// Rule is a single style rule: one or more selectors and the declaration
// block that applies to them. Duplicate properties keep the value seen
// last; declaration order is not preserved.
type Rule struct {
	Selectors    []Selector
	Declarations map[string]string
}

// String renders the rule as CSS text with the declarations sorted by
// property name.
func (r Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")

	props := make([]string, 0, len(r.Declarations))
	for prop := range r.Declarations {
		props = append(props, prop)
	}
	sort.Strings(props)
	for _, prop := range props {
		b.WriteString(" ")
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(r.Declarations[prop])
		b.WriteString(";")
	}

	b.WriteString(" }")
	return b.String()
}

// Parser builds rules from a stream of CSS tokens, holding one token of
// lookahead. Anything that does not form a rule is skipped token by token
// until parsing can resume.
type Parser struct {
	tokenizer *Tokenizer
	cur       Token
	maxDepth  int
}

func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		tokenizer: NewTokenizer(input),
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cur = p.tokenizer.NextToken()
	return p
}

// Parse consumes the whole input and returns the rules in source order.
// The only possible error is ErrTooDeep; every other kind of malformed
// input degrades to skipped tokens or partial rules.
func (p *Parser) Parse() ([]Rule, error) {
	var rules []Rule

	for p.cur.Type != TokenEOF {
		p.skipWhitespace()

		rule, ok, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		if ok {
			rules = append(rules, rule)
		} else {
			// Resynchronize: drop one token and try again.
			p.advance()
		}
	}

	return rules, nil
}

// Parse parses a stylesheet and returns its rules.
func Parse(input string, opts ...Option) ([]Rule, error) {
	return NewParser(input, opts...).Parse()
}

func (p *Parser) parseRule() (Rule, bool, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return Rule{}, false, err
	}
	if len(selectors) == 0 {
		return Rule{}, false, nil
	}

	p.skipWhitespace()

	if p.cur.Type != TokenLeftBrace {
		return Rule{}, false, nil
	}
	p.advance() // skip '{'

	declarations := p.parseDeclarations()

	// A missing close brace is tolerated at end of input.
	if p.cur.Type == TokenRightBrace {
		p.advance()
	}

	return Rule{Selectors: selectors, Declarations: declarations}, true, nil
}

func (p *Parser) parseSelectors() ([]Selector, error) {
	var selectors []Selector

	for {
		p.skipWhitespace()

		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		if sel == nil {
			break
		}
		selectors = append(selectors, sel)

		p.skipWhitespace()

		if p.cur.Type != TokenComma {
			break
		}
		p.advance() // skip ','
	}

	return selectors, nil
}

// parseSelector reads one full selector, growing combinators onto it
// left-associatively until a '{', ',' or the end of input. A combinator
// whose right side fails to parse is dropped and the chain keeps its left
// side.
func (p *Parser) parseSelector() (Selector, error) {
	p.skipWhitespace()

	selector := p.parseSimpleSelector()
	if selector == nil {
		return nil, nil
	}

	chain := 0
	for {
		p.skipWhitespace()

		if p.cur.Type == TokenLeftBrace || p.cur.Type == TokenComma || p.cur.Type == TokenEOF {
			break
		}

		if op, ok := combinatorDelim(p.cur); ok {
			p.advance() // skip the delimiter
			p.skipWhitespace()
			if right := p.parseSimpleSelector(); right != nil {
				selector = CombinatorSelector{Combinator: op, Left: selector, Right: right}
				chain++
			}
		} else {
			right := p.parseSimpleSelector()
			if right == nil {
				break
			}
			selector = CombinatorSelector{Combinator: DescendantCombinator, Left: selector, Right: right}
			chain++
		}

		if chain > p.maxDepth {
			return nil, fmt.Errorf("combinator chain longer than %d: %w", p.maxDepth, ErrTooDeep)
		}
	}

	return selector, nil
}

func (p *Parser) parseSimpleSelector() Selector {
	switch {
	case p.cur.Type == TokenIdent:
		sel := TypeSelector{Name: p.cur.Value}
		p.advance()
		return sel
	case p.cur.Type == TokenHash:
		sel := IDSelector{Name: p.cur.Value}
		p.advance()
		return sel
	case p.cur.Type == TokenDelim && p.cur.Value == ".":
		p.advance() // the '.' is consumed even when no class name follows
		if p.cur.Type == TokenIdent {
			sel := ClassSelector{Name: p.cur.Value}
			p.advance()
			return sel
		}
		return nil
	case p.cur.Type == TokenDelim && p.cur.Value == "*":
		p.advance()
		return UniversalSelector{}
	default:
		return nil
	}
}

// combinatorDelim maps a combinator delimiter token to its Combinator.
func combinatorDelim(tok Token) (Combinator, bool) {
	if tok.Type != TokenDelim {
		return 0, false
	}
	switch tok.Value {
	case ">":
		return ChildCombinator, true
	case "+":
		return AdjacentSiblingCombinator, true
	case "~":
		return GeneralSiblingCombinator, true
	}
	return 0, false
}

func (p *Parser) parseDeclarations() map[string]string {
	declarations := make(map[string]string)

	for {
		p.skipWhitespace()

		if p.cur.Type == TokenRightBrace || p.cur.Type == TokenEOF {
			break
		}

		// parseDeclaration consumes nothing unless a property name
		// starts here; drop the token so the loop always progresses.
		if p.cur.Type != TokenIdent {
			p.advance()
			continue
		}

		property, value, ok := p.parseDeclaration()
		if ok {
			declarations[property] = value
		}

		if p.cur.Type == TokenSemicolon {
			p.advance()
		}
	}

	return declarations
}

func (p *Parser) parseDeclaration() (property, value string, ok bool) {
	if p.cur.Type != TokenIdent {
		return "", "", false
	}
	property = p.cur.Value
	p.advance()

	p.skipWhitespace()

	if p.cur.Type != TokenColon {
		return "", "", false
	}
	p.advance() // skip ':'

	p.skipWhitespace()

	var parts []string
	for {
		if p.cur.Type == TokenSemicolon || p.cur.Type == TokenRightBrace || p.cur.Type == TokenEOF {
			break
		}
		if p.cur.Type == TokenWhitespace {
			// Interior whitespace collapses to a single space.
			if len(parts) > 0 {
				parts = append(parts, " ")
			}
			p.advance()
			continue
		}
		parts = append(parts, tokenText(p.cur))
		p.advance()
	}

	if len(parts) == 0 {
		return "", "", false
	}
	return property, strings.TrimSpace(strings.Join(parts, "")), true
}

// tokenText is the textual form a token contributes to a declaration
// value. Structural tokens, at-keywords and comments contribute nothing
// but still count as parts.
func tokenText(tok Token) string {
	switch tok.Type {
	case TokenIdent:
		return tok.Value
	case TokenString:
		return "\"" + tok.Value + "\""
	case TokenNumber:
		return strconv.FormatFloat(tok.Number, 'f', -1, 64)
	case TokenDimension:
		return strconv.FormatFloat(tok.Number, 'f', -1, 64) + tok.Unit
	case TokenPercentage:
		return strconv.FormatFloat(tok.Number, 'f', -1, 64) + "%"
	case TokenHash:
		return "#" + tok.Value
	case TokenDelim:
		return tok.Value
	case TokenURL:
		return "url(" + tok.Value + ")"
	default:
		return ""
	}
}

// skipWhitespace advances past whitespace and comment tokens.
func (p *Parser) skipWhitespace() {
	for p.cur.Type == TokenWhitespace || p.cur.Type == TokenComment {
		p.advance()
	}
}

func (p *Parser) advance() {
	p.cur = p.tokenizer.NextToken()
}
