package auth

import (
	"context"
	"errors"
	"net/http"

	"portfolio/internal/pkg/response"
	"portfolio/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// LoginService is satisfied by Service and by the local mode's token
// authority, so both storage modes share one transport binding.
type LoginService interface {
	Login(ctx context.Context, req LoginRequest) (string, error)
}

type Handler struct {
	service LoginService
}

func NewHandler(service LoginService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public login endpoint.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/admin/login", h.Login)
}

// Login handles POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password required", errs)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
	})
}
