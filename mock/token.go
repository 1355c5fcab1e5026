package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.TokenService = (*TokenService)(nil)

// TokenService is a mock implementation of coursegen.TokenService.
type TokenService struct {
	AuthenticateTokenFn func(ctx context.Context, token string) (*coursegen.User, error)
}

func (s *TokenService) AuthenticateToken(ctx context.Context, token string) (*coursegen.User, error) {
	return s.AuthenticateTokenFn(ctx, token)
}
