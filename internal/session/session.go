package session

import (
	"sync"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
)

// Store persists the session between runs, standing in for the browser's
// local storage. Implementations must tolerate Load on an empty medium.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// State is the serialized session: the bearer token plus the authenticated
// user's profile.
type State struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user,omitempty"`
}

// Cell is the process-wide session value: a single-writer cell read before
// every request and cleared once on the first 401. All access goes through
// Set/Get/Clear so it stays testable without a real storage medium.
type Cell struct {
	mu    sync.RWMutex
	state State
	store Store
}

// NewCell creates a session cell backed by the given store, restoring any
// previously persisted state. A load failure starts an empty session rather
// than failing startup.
func NewCell(store Store) *Cell {
	c := &Cell{store: store}
	if store != nil {
		if state, err := store.Load(); err == nil && state != nil {
			c.state = *state
		}
	}
	return c
}

// Set replaces the session atomically and persists it.
func (c *Cell) Set(token string, user *entity.User) {
	c.mu.Lock()
	c.state = State{Token: token, User: user}
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Save(&State{Token: token, User: user})
	}
}

// Token returns the current bearer token, empty when signed out.
func (c *Cell) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Token
}

// User returns the authenticated profile, nil when signed out.
func (c *Cell) User() *entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.User
}

// Clear wipes the session and the persisted copy.
func (c *Cell) Clear() {
	c.mu.Lock()
	c.state = State{}
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Clear()
	}
}
