package html

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooDeep reports element nesting beyond the configured limit. It is the
// only error the parser can return; malformed markup is absorbed instead.
var ErrTooDeep = errors.New("input too deeply nested")

// Parser builds node trees from a stream of HTML tokens, holding one token
// of lookahead. Elements close on a case-sensitive name match; nothing is
// auto-closed or reparented beyond that.
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

// Parse consumes the whole input and returns the top-level nodes in source
// order. The only possible error is ErrTooDeep; every other kind of
// malformed markup degrades to partial or extra nodes.
//
// An end tag at the top level has nothing to close and stops the parse;
// whatever was built up to that point is returned.
func (p *Parser) Parse() ([]*Node, error) {
	var nodes []*Node

	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenStartTag:
			node, err := p.parseElement(p.cur, 1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case TokenText:
			if strings.TrimSpace(p.cur.Text) != "" {
				nodes = append(nodes, &Node{Type: TextNode, Text: p.cur.Text})
			}
			p.advance()
		case TokenComment:
			nodes = append(nodes, &Node{Type: CommentNode, Text: p.cur.Text})
			p.advance()
		case TokenDoctype:
			p.advance()
		case TokenEndTag:
			return nodes, nil
		}
	}

	return nodes, nil
}

// Parse parses markup and returns its top-level nodes.
func Parse(input string, opts ...Option) ([]*Node, error) {
	return NewParser(input, opts...).Parse()
}

// parseElement builds the element for the start tag in tok, consuming
// tokens for its children until the matching end tag or end of input.
func (p *Parser) parseElement(tok Token, depth int) (*Node, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("element nested deeper than %d: %w", p.maxDepth, ErrTooDeep)
	}

	node := &Node{Type: ElementNode, TagName: tok.TagName}
	if len(tok.Attributes) > 0 {
		node.Attributes = make(map[string]string, len(tok.Attributes))
		for _, attr := range tok.Attributes {
			node.Attributes[attr.Name] = attr.Value
		}
	}

	p.advance() // past the start tag

	if tok.SelfClosing || isVoidElement(tok.TagName) {
		return node, nil
	}

	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenEndTag:
			if p.cur.TagName == node.TagName {
				p.advance() // consume the end tag
				return node, nil
			}
			// An end tag for some other element closes nothing here.
			// It is kept as literal text so no input is lost, and this
			// element stays open.
			node.Children = append(node.Children, &Node{
				Type: TextNode,
				Text: "</" + p.cur.TagName + ">",
			})
			p.advance()
		case TokenStartTag:
			child, err := p.parseElement(p.cur, depth+1)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case TokenText:
			if strings.TrimSpace(p.cur.Text) != "" {
				node.Children = append(node.Children, &Node{Type: TextNode, Text: p.cur.Text})
			}
			p.advance()
		case TokenComment:
			node.Children = append(node.Children, &Node{Type: CommentNode, Text: p.cur.Text})
			p.advance()
		case TokenDoctype:
			p.advance()
		}
	}

	// End of input with the element still open closes it silently.
	return node, nil
}

func (p *Parser) advance() {
	p.cur = p.tokenizer.NextToken()
}
