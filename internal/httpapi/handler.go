// Package httpapi exposes the service over HTTP. It is a thin transport:
// it deserializes requests, calls the services and maps the shared error
// taxonomy to status codes. No business decision lives here.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/alumnihub/alumnihub/internal/accounts"
	"github.com/alumnihub/alumnihub/internal/auth"
	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/alumnihub/alumnihub/internal/logging"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authService *auth.Service
	repo        accounts.Repository
	logger      logging.Logger
}

func NewHandler(authService *auth.Service, repo accounts.Repository, logger logging.Logger) *Handler {
	return &Handler{
		authService: authService,
		repo:        repo,
		logger:      logger.With("module", "httpapi"),
	}
}

type registerRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Organization   string `json:"organization"`
	Title          string `json:"title"`
	GraduationYear int    `json:"graduation_year"`
	Phone          string `json:"phone"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	view, err := h.authService.Register(c.Request.Context(), auth.RegisterParams{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		Organization:   req.Organization,
		Title:          req.Title,
		GraduationYear: req.GraduationYear,
		Phone:          req.Phone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, view, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"account": view,
	})
}

// respondError maps the shared error taxonomy to HTTP responses. Anything
// unlisted is logged and returned as an opaque 500 so internal detail
// never leaks to the caller.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, common.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
