// Package client is the admin-side adapter for the portfolio API. A
// Session holds the issued token, attaches it to every inbox call and
// drops it on any auth failure. The backend is chosen at construction:
// the remote HTTP API, or an on-device mirror for deployments without a
// reachable server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain"
)

var (
	// ErrUnauthorized reports that the backend rejected the bearer
	// credential. The session reacts by dropping the token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound reports that the addressed message does not exist.
	ErrNotFound = errors.New("message not found")
)

// Backend is the store-facing surface of the adapter: login plus the
// four inbox operations. Implemented by HTTPBackend and LocalBackend;
// the two are never blended.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListMessages(ctx context.Context, token string) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, token string, id int64) (*domain.ContactMessage, error)
	DeleteMessage(ctx context.Context, token string, id int64) error
	Stats(ctx context.Context, token string) (*domain.MessageStats, error)
}

// HTTPBackend talks to a running API server.
type HTTPBackend struct {
	baseURL string
	http    *http.Client
}

func NewHTTPBackend(baseURL string) *HTTPBackend {
	return &HTTPBackend{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) String() string {
	if e == nil {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// doRequest performs one API call and decodes the response envelope
// into out (when out is non-nil). Every request carries a fresh
// X-Request-ID for log correlation.
func (b *HTTPBackend) doRequest(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case !env.Success:
		return fmt.Errorf("api error: %s", env.Error.String())
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (b *HTTPBackend) Login(ctx context.Context, username, password string) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	err := b.doRequest(ctx, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &data)
	if err != nil {
		return "", err
	}
	return data.Token, nil
}

func (b *HTTPBackend) ListMessages(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	var data struct {
		Messages []domain.ContactMessage `json:"messages"`
	}
	if err := b.doRequest(ctx, http.MethodGet, "/api/admin/messages", token, nil, &data); err != nil {
		return nil, err
	}
	return data.Messages, nil
}

func (b *HTTPBackend) MarkRead(ctx context.Context, token string, id int64) (*domain.ContactMessage, error) {
	var data struct {
		Message domain.ContactMessage `json:"message"`
	}
	path := fmt.Sprintf("/api/admin/messages/%d/read", id)
	if err := b.doRequest(ctx, http.MethodPatch, path, token, nil, &data); err != nil {
		return nil, err
	}
	return &data.Message, nil
}

func (b *HTTPBackend) DeleteMessage(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/admin/messages/%d", id)
	return b.doRequest(ctx, http.MethodDelete, path, token, nil, nil)
}

func (b *HTTPBackend) Stats(ctx context.Context, token string) (*domain.MessageStats, error) {
	var stats domain.MessageStats
	if err := b.doRequest(ctx, http.MethodGet, "/api/admin/stats", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
