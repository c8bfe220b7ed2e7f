package identity

import (
	"context"
	"time"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles admin login, logout and token verification
type AuthService struct {
	jwtService  *auth.JWTService
	credentials *auth.AdminCredentials
	blacklist   auth.TokenBlacklist
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	jwtService *auth.JWTService,
	credentials *auth.AdminCredentials,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		jwtService:  jwtService,
		credentials: credentials,
		blacklist:   blacklist,
		logger:      logger,
	}
}

// Login checks the credentials against the configured admin and issues an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if !s.credentials.Verify(input.Username, input.Password) {
		s.logger.Warn("Invalid login attempt", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(input.Username)
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("username", input.Username))

	return &LoginResult{
		AccessToken: token.Token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(s.jwtService.AccessTokenExpiration() / time.Second),
		ExpiresAt:   token.ExpiresAt,
	}, nil
}

// Authenticate verifies a bearer token. Every failure maps to ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.jwtService.ValidateAccessToken(token)
	if err != nil {
		s.logger.Debug("Token validation failed", zap.Error(err))
		return nil, shared.ErrUnauthorized
	}

	if s.blacklist != nil && claims.ID != "" {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
			return nil, shared.ErrUnauthorized
		}
		if revoked {
			s.logger.Debug("Revoked token presented", zap.String("jti", claims.ID))
			return nil, shared.ErrUnauthorized
		}
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Principal{
		Subject:   claims.Subject,
		TokenJTI:  claims.ID,
		ExpiresAt: expiresAt,
		IsAdmin:   s.credentials.IsAdmin(claims.Subject),
	}, nil
}

// Logout revokes the presented token until it would have expired
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return shared.ErrUnauthorized
	}

	ttl := time.Until(input.ExpiresAt)
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Error("Failed to revoke token", zap.String("jti", input.TokenJTI), zap.Error(err))
		return err
	}

	s.logger.Info("User logged out", zap.String("username", input.Subject))
	return nil
}
