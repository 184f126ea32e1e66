package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alumnihub/alumnihub/internal/auth"
	"github.com/alumnihub/alumnihub/internal/common"
	"github.com/alumnihub/alumnihub/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the verified identity attached by
// RequireAuth.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

const bearerPrefix = "Bearer "

// RequireAuth gates protected routes. It extracts the bearer token from
// the Authorization header, verifies it and attaches the resolved
// identity to the request context. Every rejection (missing, malformed,
// expired or tampered token) produces the same 401 body; the reason is
// kept for logs only.
func RequireAuth(tokens *auth.TokenManager, logger logging.Logger) gin.HandlerFunc {
	log := logger.With("module", "session_guard")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		id, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				log.Debug(c.Request.Context(), "rejected expired token", "path", c.FullPath())
			} else {
				log.Debug(c.Request.Context(), "rejected invalid token", "path", c.FullPath())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs one line per request with a generated request id.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	log := logger.With("module", "http")

	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()

		c.Next()

		log.Info(c.Request.Context(), "request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
