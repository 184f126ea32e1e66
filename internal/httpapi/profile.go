package httpapi

import (
	"net/http"

	"github.com/alumnihub/alumnihub/internal/accounts"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the caller's own public view. Identity comes from
// the verified token only, never from the request body.
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	account, err := h.repo.GetByID(c.Request.Context(), id.AccountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account.Public())
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	Organization   *string `json:"organization"`
	Title          *string `json:"title"`
	GraduationYear *int    `json:"graduation_year"`
	Phone          *string `json:"phone"`
}

// UpdateProfile partially updates the caller's profile attributes. Email,
// role and the credential hash are not reachable through this path.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := h.repo.UpdateProfile(c.Request.Context(), id.AccountID, accounts.ProfileUpdate{
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

	c.JSON(http.StatusOK, account.Public())
}

// ListAlumni returns public views of all accounts, newest first.
func (h *Handler) ListAlumni(c *gin.Context) {
	all, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]accounts.PublicView, 0, len(all))
	for _, account := range all {
		views = append(views, account.Public())
	}

	c.JSON(http.StatusOK, gin.H{"alumni": views})
}
