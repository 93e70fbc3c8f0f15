package contact

import (
	"context"
	"regexp"
	"strings"
	"time"

	"portfolio/internal/domain"
)

// The contract is a basic local@domain shape with a dotted domain, not
// full RFC address validation.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service handles public contact-form submissions. The only
// unauthenticated write path in the system: no dedup, no rate limiting.
type Service struct {
	messages MessageWriter
}

func NewService(messages MessageWriter) *Service {
	return &Service{messages: messages}
}

// Submit validates and persists a new message with read=false.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	body := strings.TrimSpace(req.Message)

	if name == "" || email == "" || body == "" {
		return nil, validationError("all fields are required")
	}
	if !emailShape.MatchString(email) {
		return nil, validationError("invalid email address")
	}

	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Body:      body,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
