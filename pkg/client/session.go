package client

import (
	"context"
	"errors"
	"os"
	"strings"

	"portfolio/internal/domain"
)

// Session states. There are exactly two: no refresh, no intermediate
// handshake. An expired token simply surfaces as a 401 on next use.
const (
	StateLoggedOut = "logged_out"
	StateLoggedIn  = "logged_in"
)

// ErrLoggedOut reports that an inbox call was made with no active
// session.
var ErrLoggedOut = errors.New("not logged in")

// TokenStore persists the bearer token so a session survives restarts.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// Session drives the login state machine over a Backend. Any call that
// comes back unauthorized drops the token and transitions to
// StateLoggedOut; the caller is expected to prompt for a fresh login.
type Session struct {
	backend Backend
	tokens  TokenStore
	token   string
}

// NewSession builds a session and resumes from a previously persisted
// token when one exists.
func NewSession(backend Backend, tokens TokenStore) *Session {
	s := &Session{backend: backend, tokens: tokens}
	if token, err := tokens.Load(); err == nil && token != "" {
		s.token = token
	}
	return s
}

func (s *Session) State() string {
	if s.token == "" {
		return StateLoggedOut
	}
	return StateLoggedIn
}

func (s *Session) Login(ctx context.Context, username, password string) error {
	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return err
	}
	s.token = token
	return s.tokens.Save(token)
}

// Logout discards the token locally. The server keeps no session state,
// so there is nothing to revoke remotely.
func (s *Session) Logout() error {
	s.token = ""
	return s.tokens.Clear()
}

func (s *Session) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	if s.token == "" {
		return nil, ErrLoggedOut
	}
	messages, err := s.backend.ListMessages(ctx, s.token)
	if err != nil {
		return nil, s.checkAuth(err)
	}
	return messages, nil
}

func (s *Session) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	if s.token == "" {
		return nil, ErrLoggedOut
	}
	msg, err := s.backend.MarkRead(ctx, s.token, id)
	if err != nil {
		return nil, s.checkAuth(err)
	}
	return msg, nil
}

func (s *Session) DeleteMessage(ctx context.Context, id int64) error {
	if s.token == "" {
		return ErrLoggedOut
	}
	if err := s.backend.DeleteMessage(ctx, s.token, id); err != nil {
		return s.checkAuth(err)
	}
	return nil
}

func (s *Session) Stats(ctx context.Context) (*domain.MessageStats, error) {
	if s.token == "" {
		return nil, ErrLoggedOut
	}
	stats, err := s.backend.Stats(ctx, s.token)
	if err != nil {
		return nil, s.checkAuth(err)
	}
	return stats, nil
}

// checkAuth drops the session on an unauthorized response and passes
// every other error through untouched.
func (s *Session) checkAuth(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		s.token = ""
		s.tokens.Clear()
	}
	return err
}

// MemoryTokenStore keeps the token for the life of the process.
type MemoryTokenStore struct {
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

func (m *MemoryTokenStore) Save(token string) error { m.token = token; return nil }
func (m *MemoryTokenStore) Load() (string, error)   { return m.token, nil }
func (m *MemoryTokenStore) Clear() error            { m.token = ""; return nil }

// FileTokenStore persists the token to a file so the session survives
// restarts, mirroring a browser keeping it across reloads.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (f *FileTokenStore) Save(token string) error {
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
