package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/models"
)

// SessionStore is the three-state auth gate for one gateway session:
// checking -> authenticated | not-authenticated. Login and register set
// checking, authenticate upstream, then fetch the profile; any failure
// lands on not-authenticated with no profile and no automatic retry.
type SessionStore struct {
	mu       sync.Mutex
	session  models.Session
	client   *backend.Client
	onChange func(models.Session)
}

func NewSessionStore(id string, client *backend.Client, onChange func(models.Session)) *SessionStore {
	return &SessionStore{
		session:  models.Session{ID: id, Status: models.StatusNotAuthenticated},
		client:   client,
		onChange: onChange,
	}
}

func (s *SessionStore) Login(ctx context.Context, email, password string) (models.Session, error) {
	return s.establish(ctx, func() (backend.Credentials, error) {
		return s.client.Authenticate(ctx, email, password)
	})
}

func (s *SessionStore) Register(ctx context.Context, fullName, email, password string) (models.Session, error) {
	return s.establish(ctx, func() (backend.Credentials, error) {
		return s.client.Register(ctx, fullName, email, password)
	})
}

func (s *SessionStore) establish(ctx context.Context, authenticate func() (backend.Credentials, error)) (models.Session, error) {
	s.transition(func(sess *models.Session) {
		sess.Status = models.StatusChecking
		sess.UserID = ""
		sess.Token = ""
		sess.Profile = nil
	})

	creds, err := authenticate()
	if err != nil {
		return s.clear(), err
	}

	profile, err := s.client.FetchProfile(ctx, creds.Token, creds.UserID)
	if err != nil {
		return s.clear(), err
	}

	return s.transition(func(sess *models.Session) {
		sess.Status = models.StatusAuthenticated
		sess.UserID = creds.UserID
		sess.Token = creds.Token
		sess.Profile = &profile
	}), nil
}

// Logout drops credentials and profile.
func (s *SessionStore) Logout() models.Session {
	return s.clear()
}

func (s *SessionStore) clear() models.Session {
	return s.transition(func(sess *models.Session) {
		sess.Status = models.StatusNotAuthenticated
		sess.UserID = ""
		sess.Token = ""
		sess.Profile = nil
	})
}

func (s *SessionStore) transition(apply func(*models.Session)) models.Session {
	s.mu.Lock()
	apply(&s.session)
	snapshot := s.session
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(snapshot)
	}
	return snapshot
}

// Snapshot returns the current session state.
func (s *SessionStore) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token returns the bearer token to attach to upstream requests, empty
// unless the session is authenticated.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Status != models.StatusAuthenticated {
		return ""
	}
	return s.session.Token
}

// IsAdmin reports whether the session carries an ADMIN profile.
func (s *SessionStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Status == models.StatusAuthenticated &&
		s.session.Profile != nil && s.session.Profile.Role == models.RoleAdmin
}

// Restore loads a persisted session at startup. A record without a
// usable token comes back as not-authenticated, the same way the SPA
// treated a missing local-storage entry.
func (s *SessionStore) Restore(rec models.SessionRecord) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.Token == "" || rec.Status != string(models.StatusAuthenticated) || tokenExpired(rec.Token) {
		s.session.Status = models.StatusNotAuthenticated
		return s.session
	}

	s.session.Status = models.StatusAuthenticated
	s.session.UserID = rec.UserID
	s.session.Token = rec.Token
	s.session.Profile = &models.Profile{
		FullName: rec.FullName,
		Email:    rec.Email,
		Role:     rec.Role,
	}
	return s.session
}

// tokenExpired checks the unverified exp claim. The gateway does not
// hold the backend's signing key; the claim is only used to avoid
// restoring a session that would immediately 401.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
