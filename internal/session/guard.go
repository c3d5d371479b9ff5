package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"kalasangha.client/pkg/logger"
)

// GuardState is the route guard's lifecycle state for one protected mount.
type GuardState int

const (
	Checking GuardState = iota
	Authorized
	Redirecting
)

func (s GuardState) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authorized:
		return "authorized"
	case Redirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Guard decides whether protected content may be shown. One Guard serves one
// protected mount: Evaluate runs at mount time, and Redirecting is terminal.
// Expiry is not re-checked on a timer; a session can lapse mid-use until the
// next guarded evaluation or a rejected mutating call trips Invalidate.
type Guard struct {
	store    TokenStore
	redirect func()
	classify func(string) Classification

	mu      sync.Mutex
	state   GuardState
	cleared bool
}

// NewGuard creates a guard over the given store. redirect is invoked once
// when the session is rejected, after the store is cleared.
func NewGuard(store TokenStore, redirect func()) *Guard {
	return &Guard{
		store:    store,
		redirect: redirect,
		classify: Classify,
		state:    Checking,
	}
}

// State returns the guard's current state.
func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Evaluate classifies the stored token and settles the guard into Authorized
// or Redirecting. Once Redirecting, the decision sticks for this mount.
func (g *Guard) Evaluate(ctx context.Context) GuardState {
	g.mu.Lock()
	if g.state == Redirecting {
		g.mu.Unlock()
		return Redirecting
	}
	g.state = Checking
	g.mu.Unlock()

	token, err := g.store.Load(ctx)
	if err != nil {
		// Absent and unreadable tokens take the same redirect path.
		token = ""
	}

	c := g.classify(token)
	if c.State == StateValid {
		g.mu.Lock()
		g.state = Authorized
		g.mu.Unlock()
		return Authorized
	}

	logger.Debug(ctx, "session rejected", zap.String("reason", c.State.String()))
	g.reject(ctx)
	return Redirecting
}

// Invalidate forces the clear-and-redirect path. Called when the backend
// rejects a mutating call with 401/403, so a mid-session expiry converges on
// the same behavior as a failed mount check.
func (g *Guard) Invalidate(ctx context.Context) {
	g.reject(ctx)
}

func (g *Guard) reject(ctx context.Context) {
	g.mu.Lock()
	alreadyRedirecting := g.state == Redirecting
	g.state = Redirecting
	doClear := !g.cleared
	g.cleared = true
	g.mu.Unlock()

	if doClear {
		if err := g.store.Clear(ctx); err != nil {
			logger.Warn(ctx, "failed to clear token store", zap.Error(err))
		}
	}
	if !alreadyRedirecting && g.redirect != nil {
		g.redirect()
	}
}
