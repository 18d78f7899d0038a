package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionKey = "session_context"

var ErrTokenRequired = errs.New("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token into the caller's SessionContext.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrTokenRequired, "Access token required", nil)
			return
		}

		sc, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetSessionContext(c, sc)
		c.Next()
	}
}

func SetSessionContext(c *gin.Context, sc auth.SessionContext) {
	c.Set(ctxSessionKey, sc)
}

func GetSessionContext(c *gin.Context) (auth.SessionContext, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return auth.SessionContext{}, false
	}
	sc, ok := v.(auth.SessionContext)
	return sc, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
