package css

// DefaultMaxDepth bounds how many combinators a single selector may chain
// when no explicit limit is configured.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the combinator chain limit for a single selector.
// Values below one leave the default in place.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n >= 1 {
			p.maxDepth = n
		}
	}
}
