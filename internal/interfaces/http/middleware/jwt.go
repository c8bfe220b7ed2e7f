package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meatkonnex/backend/internal/application/identity"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/infrastructure/logger"
	"github.com/meatkonnex/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys and header names
const (
	PrincipalKey  = "auth_principal"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authenticator verifies a bearer token and resolves the principal behind it
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*identity.Principal, error)
}

// RequireAuth admits any request carrying a valid, unrevoked bearer token.
// Every failure is answered with the same 401 so callers learn nothing about
// why a token was refused.
func RequireAuth(authenticator Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(AuthHeaderKey))
		if !ok {
			abortWith(c, shared.ErrUnauthorized)
			return
		}

		principal, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Debug("Authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			abortWith(c, shared.ErrUnauthorized)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Request = c.Request.WithContext(logger.WithSubject(c.Request.Context(), principal.Subject))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth and rejects principals that are
// not the configured admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			abortWith(c, shared.ErrUnauthorized)
			return
		}
		if !principal.IsAdmin {
			abortWith(c, shared.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil
func GetPrincipal(c *gin.Context) *identity.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(*identity.Principal); ok {
			return p
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(BearerPrefix):])
	return token, token != ""
}

func abortWith(c *gin.Context, err *shared.DomainError) {
	status := dto.GetHTTPStatus(err.Code)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(err.Code, err.Message, c.GetString(RequestIDKey)))
}
