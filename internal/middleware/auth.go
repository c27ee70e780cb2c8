package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/altikastudio/dashboard-api/internal/service/auth"
	"github.com/altikastudio/dashboard-api/internal/upstream"
	"github.com/altikastudio/dashboard-api/pkg/httputil"
)

const (
	ContextCredential = "upstream_credential"
	ContextSessionID  = "session_id"
)

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate validates the session token and puts the upstream
// credential and session id into the request context. Handlers below this
// middleware never deal with raw tokens.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "missing authorization header"},
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: "invalid authorization format"},
			})
			c.Abort()
			return
		}

		cred, sessionID, err := m.authService.Resolve(parts[1])
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextCredential, cred)
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// CredentialFrom reads the upstream credential the auth middleware stored.
func CredentialFrom(c *gin.Context) upstream.Credential {
	if v, ok := c.Get(ContextCredential); ok {
		if cred, ok := v.(upstream.Credential); ok {
			return cred
		}
	}
	return upstream.Credential{}
}

// SessionIDFrom reads the session id the auth middleware stored.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
