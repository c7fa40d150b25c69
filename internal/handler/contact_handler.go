package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
	"github.com/odionmurphy/Murphy-Portfolio/internal/service"
)

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	svc service.ContactService
	log *logger.Logger
}

func NewContactHandler(svc service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	res, err := h.svc.Submit(c.Request.Context(), service.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if errors.Is(err, service.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if err != nil {
		h.log.Error("contact submit failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.ID, "mail": res.Mail})
}

// List handles GET /api/contact (admin only).
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context(), adminCredential(c))
	if errors.Is(err, service.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err != nil {
		h.log.Error("contact list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Return [] not null for an empty store.
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// adminCredential extracts the admin secret from either an
// "Authorization: Bearer <token>" header or an "x-admin-token" header.
func adminCredential(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("x-admin-token")
}
