package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/identity"
	"careerai-backend/internal/shared/auth"
	"careerai-backend/internal/shared/server/respond"
)

const externalIDKey = "externalId"

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Auth verifies a bearer token when one is sent and stores the identity in
// the request context. Requests without an Authorization header pass through
// anonymously; services decide whether an identity is required.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(externalIDKey, claims.Subject)
		c.Request = c.Request.WithContext(identity.WithExternalID(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

// ExternalIDFromContext fetches the external identity set by the auth middleware.
func ExternalIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(externalIDKey)
}
