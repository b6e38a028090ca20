package jasonify

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithMaxDepth limits container nesting. Zero disables the limit. Exceeding
// it fails the parse with ErrMaxDepth.
func WithMaxDepth(n int) ParserOption {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.maxDepth = n
	}
}
