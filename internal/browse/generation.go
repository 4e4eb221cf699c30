package browse

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Token identifies one fetch. Only the token handed out last is current.
type Token struct {
	gen       uint64
	RequestID string
}

// Generation hands out fetch tokens for one screen and tells whether a
// token is still the newest one. Closing it cancels in-flight requests and
// makes every token stale.
type Generation struct {
	mu      sync.Mutex
	current uint64
	closed  bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewGeneration creates a generation counter for a screen
func NewGeneration() *Generation {
	ctx, cancel := context.WithCancel(context.Background())
	return &Generation{ctx: ctx, cancel: cancel}
}

// Next returns a new current token and the context requests should use.
// ok is false once the generation is closed.
func (g *Generation) Next() (tok Token, ctx context.Context, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return Token{}, nil, false
	}
	g.current++
	return Token{gen: g.current, RequestID: uuid.NewString()}, g.ctx, true
}

// IsCurrent reports whether tok is the newest token and the generation is open
func (g *Generation) IsCurrent(tok Token) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.closed && tok.gen == g.current
}

// Close cancels in-flight requests. It is safe to call more than once.
func (g *Generation) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true
	g.cancel()
}

// isClosed reports whether Close was called
func (g *Generation) isClosed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}
