//go:build unit

package api_test

import (
	"net/http"
	"time"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// mockAuth stands in for RequireAuth: any bearer token authenticates as id.
func mockAuth(id string, role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetSessionContext(c, auth.NewSessionContext(identity.MustParse(id), role))
		c.Next()
	}
}
