// Package session tracks who is signed in and which screen they are on.
// Sessions are presentation plumbing: in-memory, per-process, and gone on
// restart. Sign-in is demo-grade — fields are presence-checked, nothing is
// verified against a backend.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fundlift/fundlift/internal/domain"
)

// Page names mirror the prototype's screens.
const (
	PageHome             = "home"
	PageProjects         = "projects"
	PageProjectDetail    = "project-detail"
	PageCreatorDashboard = "creator-dashboard"
	PageDonorDashboard   = "donor-dashboard"
	PageAdminDashboard   = "admin-dashboard"
	PageDonationFlow     = "donation-flow"
)

// Session is one signed-in browser session.
type Session struct {
	Token       string      `json:"token"`
	User        domain.User `json:"user"`
	CurrentPage string      `json:"currentPage"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Registry holds the live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// SignIn mints a session for a demo user. Name and a recognized role are
// the only requirements.
func (r *Registry) SignIn(name string, role domain.Role) (*Session, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "unrecognized role " + string(role)}
	}

	session := &Session{
		Token:       uuid.New().String(),
		User:        domain.User{ID: uuid.New().String(), Name: name, Role: role},
		CurrentPage: PageHome,
		CreatedAt:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Token] = session
	return session, nil
}

// Get returns the session for a token.
func (r *Registry) Get(token string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[token]
	if !exists {
		return nil, &domain.NotFoundError{Kind: "session", ID: token}
	}
	return session, nil
}

// Navigate records the session's current screen.
func (r *Registry) Navigate(token, page string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[token]
	if !exists {
		return &domain.NotFoundError{Kind: "session", ID: token}
	}
	session.CurrentPage = page
	return nil
}

// SignOut drops the session. Unknown tokens are a no-op.
func (r *Registry) SignOut(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}
