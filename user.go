package coursegen

import (
	"context"
	"time"
)

// User represents an authenticated owner of courses and progress records.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenService resolves bearer tokens to users. Authentication itself is an
// external concern; the ingestion entry point only needs to know who is
// asking before any course row is touched.
type TokenService interface {
	// AuthenticateToken returns the user a token identifies.
	// Returns EUNAUTHORIZED if the token is empty or unknown.
	AuthenticateToken(ctx context.Context, token string) (*User, error)
}
