package console

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/statestore"
)

// AuthStateKey is the fixed durable key holding the persisted flag as the
// strings "true"/"false".
const AuthStateKey = "admin_auth"

const persistTimeout = 2 * time.Second

// Gate is the process-wide authentication state machine. The PIN is a
// low-assurance convenience gate, not a security boundary: there is no
// lockout, retry counter, or expiry. Login and Logout are the only writers;
// any view may read IsAuthenticated concurrently.
type Gate struct {
	mu     sync.Mutex
	authed bool
	pin    string
	store  statestore.Store
	log    *logger.Logger
}

// NewGate seeds the flag from durable storage (default false when absent or
// unreadable).
func NewGate(pin string, store statestore.Store, log *logger.Logger) *Gate {
	g := &Gate{pin: pin, store: store, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	value, err := store.Get(ctx, AuthStateKey)
	switch {
	case err == nil:
		g.authed = value == "true"
	case errors.Is(err, statestore.ErrNotFound):
		// first run
	default:
		log.Warnw("session state unreadable, starting logged out", "err", err)
	}
	return g
}

// Login compares the supplied PIN in constant time. On match the flag flips
// to true and is persisted; on mismatch state is unchanged and false is
// returned (auth failure is a boolean, never an error).
func (g *Gate) Login(pin string) bool {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(g.pin)) != 1 {
		return false
	}
	g.mu.Lock()
	g.authed = true
	g.mu.Unlock()
	g.persist("true")
	return true
}

// Logout unconditionally clears the flag.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.authed = false
	g.mu.Unlock()
	g.persist("false")
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authed
}

// persist is best-effort: a write failure leaves the in-memory flag
// authoritative for this process and is logged, not surfaced.
func (g *Gate) persist(value string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := g.store.Set(ctx, AuthStateKey, value); err != nil {
		g.log.Warnw("persisting session state failed", "err", err)
	}
}
