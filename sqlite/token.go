package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/coursegen/coursegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursegen.TokenService = (*TokenService)(nil)

// TokenService implements coursegen.TokenService using SQLite.
type TokenService struct {
	db *DB
}

// NewTokenService creates a new TokenService.
func NewTokenService(db *DB) *TokenService {
	return &TokenService{db: db}
}

// AuthenticateToken returns the user a token identifies.
func (s *TokenService) AuthenticateToken(ctx context.Context, token string) (*coursegen.User, error) {
	if token == "" {
		return nil, coursegen.Errorf(coursegen.EUNAUTHORIZED, "authorization token required")
	}

	var user coursegen.User
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.email, u.created_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = ?
	`, token).Scan(&user.ID, &user.Email, &createdAt)

	if err == sql.ErrNoRows {
		return nil, coursegen.Errorf(coursegen.EUNAUTHORIZED, "invalid authorization token")
	}
	if err != nil {
		return nil, err
	}

	if user.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser inserts a user with a fresh ID. Used by the CLI and tests;
// real deployments provision users out of band.
func (s *TokenService) CreateUser(ctx context.Context, email string) (*coursegen.User, error) {
	if email == "" {
		return nil, coursegen.Errorf(coursegen.EINVALID, "email required")
	}

	user := &coursegen.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)
	`, user.ID, user.Email, user.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindUserByEmail retrieves a user by email.
// Returns ENOTFOUND if no user has the email.
func (s *TokenService) FindUserByEmail(ctx context.Context, email string) (*coursegen.User, error) {
	var user coursegen.User
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, created_at FROM users WHERE email = ?
	`, email).Scan(&user.ID, &user.Email, &createdAt)

	if err == sql.ErrNoRows {
		return nil, coursegen.Errorf(coursegen.ENOTFOUND, "user not found")
	}
	if err != nil {
		return nil, err
	}

	if user.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateToken issues a token for a user.
func (s *TokenService) CreateToken(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (token, user_id, created_at) VALUES (?, ?, ?)
	`, token, userID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}

	return token, nil
}
