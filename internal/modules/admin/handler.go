package admin

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the inbox endpoints on the bearer-guarded
// admin group.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/messages", h.ListMessages)
	admin.PATCH("/messages/:id/read", h.MarkRead)
	admin.DELETE("/messages/:id", h.DeleteMessage)
	admin.GET("/stats", h.GetStats)
}

// ListMessages handles GET /api/admin/messages
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"messages": messages,
	})
}

// MarkRead handles PATCH /api/admin/messages/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	msg, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, "MESSAGE_NOT_FOUND", "Message not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": msg,
	})
}

// DeleteMessage handles DELETE /api/admin/messages/:id
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, "MESSAGE_NOT_FOUND", "Message not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Message deleted successfully",
	})
}

// GetStats handles GET /api/admin/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable, please try again")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
