package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/pkg/jwt"
)

// SubjectKey is the context key holding the authenticated token subject.
const SubjectKey = "serviceSubject"

// ServiceTokenMiddleware requires a bearer token signed with secret and
// carrying the admin scope.
func ServiceTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		subject, err := jwt.ParseToken(secret, parts[1], jwt.ScopeAdmin)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "auth_failed_invalid_token",
				slog.String("path", c.Request.URL.Path), slog.Any("err", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
