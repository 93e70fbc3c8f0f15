package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
)

type mockMessageWriter struct {
	mock.Mock
}

func (m *mockMessageWriter) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestService_Submit_Success(t *testing.T) {
	writer := new(mockMessageWriter)
	writer.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(writer)

	before := time.Now()
	msg, err := service.Submit(context.Background(), SubmitRequest{
		Name:    "  Jane Doe  ",
		Email:   " jane@example.com ",
		Message: "Hi, I'd like to talk about a project.",
	})
	after := time.Now()

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", msg.Name)
	assert.Equal(t, "jane@example.com", msg.Email)
	assert.False(t, msg.Read)
	assert.False(t, msg.CreatedAt.Before(before))
	assert.False(t, msg.CreatedAt.After(after))
	writer.AssertExpectations(t)
}

func TestService_Submit_MissingFields(t *testing.T) {
	cases := []SubmitRequest{
		{Name: "", Email: "a@b.com", Message: "hi"},
		{Name: "Jane", Email: "", Message: "hi"},
		{Name: "Jane", Email: "a@b.com", Message: ""},
		{Name: "   ", Email: "a@b.com", Message: "hi"},
		{Name: "Jane", Email: "a@b.com", Message: "   "},
	}

	for _, req := range cases {
		writer := new(mockMessageWriter)
		service := NewService(writer)

		_, err := service.Submit(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
		writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestService_Submit_InvalidEmail(t *testing.T) {
	invalid := []string{
		"plainaddress",
		"no-at-sign.com",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"two@@example.com",
		"spaces in@example.com",
	}

	for _, email := range invalid {
		writer := new(mockMessageWriter)
		service := NewService(writer)

		_, err := service.Submit(context.Background(), SubmitRequest{
			Name:    "Jane",
			Email:   email,
			Message: "hi",
		})
		assert.ErrorIs(t, err, ErrValidation, "email %q should be rejected", email)
		writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestService_Submit_ValidEmails(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co",
		"x@y.z",
	}

	for _, email := range valid {
		writer := new(mockMessageWriter)
		writer.On("Create", mock.Anything, mock.Anything).Return(nil)
		service := NewService(writer)

		_, err := service.Submit(context.Background(), SubmitRequest{
			Name:    "Jane",
			Email:   email,
			Message: "hi",
		})
		assert.NoError(t, err, "email %q should be accepted", email)
	}
}
