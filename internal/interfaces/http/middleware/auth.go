package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/auth"
	"github.com/beerworks/backend/internal/interfaces/http/dto"
)

// Context and header keys used by the authentication middleware
const (
	PrincipalKey  = "principal"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authentication validates a Bearer token when one is present and stores the
// resulting principal in the request context. Requests without an
// Authorization header proceed as anonymous; a malformed or invalid token is
// rejected with 401 rather than silently downgraded.
func Authentication(validator *auth.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			c.Set(PrincipalKey, shared.Anonymous)
			c.Next()
			return
		}

		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Authorization header must use the Bearer scheme")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
		if token == "" {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Bearer token is empty")
			return
		}

		principal, err := validator.Principal(token)
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Token validation failed")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless an authenticated principal is present.
// It must run after Authentication.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentPrincipal(c).Authenticated {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the principal stored by Authentication, or
// Anonymous when none is set.
func CurrentPrincipal(c *gin.Context) shared.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(shared.Principal); ok {
			return p
		}
	}
	return shared.Anonymous
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, requestID))
}
