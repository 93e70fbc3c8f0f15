package contact

import (
	"errors"
	"net/http"

	"portfolio/internal/pkg/response"
	"portfolio/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.Submit)
}

// Submit handles POST /api/contact (public)
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields are required", errs)
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Message sent successfully!",
	})
}
