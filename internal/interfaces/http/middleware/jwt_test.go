package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meatkonnex/backend/internal/application/identity"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/infrastructure/auth"
	"github.com/meatkonnex/backend/internal/infrastructure/config"
	"github.com/meatkonnex/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthenticator struct {
	principals map[string]*identity.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*identity.Principal, error) {
	if p, ok := s.principals[token]; ok {
		return p, nil
	}
	return nil, shared.ErrUnauthorized
}

func newAuthRouter(authenticator Authenticator) *gin.Engine {
	router := gin.New()
	authed := router.Group("", RequireAuth(authenticator, zap.NewNop()))
	authed.POST("/logout", func(c *gin.Context) {
		c.String(http.StatusOK, logger.GetSubject(c.Request.Context()))
	})
	authed.GET("/admin/orders", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, GetPrincipal(c).Subject)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter(stubAuthenticator{principals: map[string]*identity.Principal{
		"good": {Subject: "clerk"},
	}})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
				assert.Contains(t, w.Body.String(), "Invalid or expired token")
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Equal(t, "clerk", w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	router := newAuthRouter(stubAuthenticator{principals: map[string]*identity.Principal{
		"admin": {Subject: "admin", IsAdmin: true},
		"clerk": {Subject: "clerk"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set(AuthHeaderKey, "Bearer admin")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set(AuthHeaderKey, "Bearer clerk")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin privileges required")
}

func TestRequireAdmin_WithoutPrincipal(t *testing.T) {
	router := gin.New()
	router.GET("/admin/orders", RequireAdmin(), okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WithAuthService(t *testing.T) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "meatkonnex-test",
	})
	credentials, err := auth.NewAdminCredentials(config.AuthConfig{AdminUsername: "admin", AdminPassword: "s3cret"})
	require.NoError(t, err)
	blacklist := auth.NewInMemoryTokenBlacklist()
	svc := identity.NewAuthService(jwtService, credentials, blacklist, zap.NewNop())

	router := newAuthRouter(svc)

	result, err := svc.Login(context.Background(), identity.LoginInput{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+result.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	principal, err := svc.Authenticate(context.Background(), result.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), identity.LogoutInput{
		Subject:   principal.Subject,
		TokenJTI:  principal.TokenJTI,
		ExpiresAt: principal.ExpiresAt,
	}))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
