package html

// DefaultMaxDepth bounds how deeply elements may nest when no explicit
// limit is configured.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the element nesting limit. Values below one leave the
// default in place.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n >= 1 {
			p.maxDepth = n
		}
	}
}
