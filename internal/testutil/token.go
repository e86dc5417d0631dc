package testutil

import "sync"

// DefaultRunToken is used when a scenario does not name its own token.
const DefaultRunToken = "test-run-default"

// FixedTokenGenerator returns the same run token every time, so repeated
// scenario runs produce byte-identical records.
//
// Thread-safety: stateless and safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed generator. An empty token falls back
// to DefaultRunToken.
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token. Implements token.Generator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}

// SequenceGenerator returns predetermined run tokens in order.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewSequenceGenerator creates a generator that returns tokens in order.
func NewSequenceGenerator(tokens ...string) *SequenceGenerator {
	return &SequenceGenerator{tokens: tokens}
}

// Generate returns the next predetermined token. Implements token.Generator.
// Panics once all tokens have been consumed.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("SequenceGenerator: all tokens exhausted")
	}
	tok := g.tokens[g.idx]
	g.idx++
	return tok
}
