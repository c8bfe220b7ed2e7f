package identity

import "time"

// TokenTypeBearer is the token_type reported to clients
const TokenTypeBearer = "bearer"

// LoginInput contains the credentials presented at login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is a freshly issued access token
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	ExpiresAt   time.Time
}

// LogoutInput identifies the token being revoked
type LogoutInput struct {
	Subject   string
	TokenJTI  string
	ExpiresAt time.Time
}

// Principal is the verified identity behind a bearer token
type Principal struct {
	Subject   string
	TokenJTI  string
	ExpiresAt time.Time
	IsAdmin   bool
}
