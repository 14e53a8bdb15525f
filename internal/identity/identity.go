package identity

import (
	"strings"
	"sync"
)

// User is the authenticated principal. Only the id matters to the stores.
type User struct {
	ID   string
	Plan string
}

// Session is what the identity provider exposes: a user (nil when signed out)
// and whether the provider is still resolving it.
type Session struct {
	User    *User
	Loading bool
}

// UserID returns the signed-in user id or "" when there is none.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return strings.TrimSpace(s.User.ID)
}

// Authenticated reports whether a usable owner context is present.
func (s Session) Authenticated() bool {
	return s.UserID() != ""
}

// Provider supplies the current session.
type Provider interface {
	Current() Session
}

// Static is a Provider whose session is set explicitly.
type Static struct {
	mu      sync.RWMutex
	session Session
}

// NewStatic returns a provider already holding session.
func NewStatic(session Session) *Static {
	return &Static{session: session}
}

// SignedIn is a shortcut for a resolved session of userID.
func SignedIn(userID string) *Static {
	return NewStatic(Session{User: &User{ID: userID}})
}

func (s *Static) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Set replaces the session.
func (s *Static) Set(session Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

var _ Provider = (*Static)(nil)
