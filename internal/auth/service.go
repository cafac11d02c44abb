// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelamos/realty/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type UserInfo struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	PhoneNumber  string
	Address      string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	Create(ctx context.Context, params CreateUserParams) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	RecordLogin(ctx context.Context, userID int64) error
}

// TokenIssuer signs session tokens for authenticated identities.
type TokenIssuer interface {
	Issue(email, role string, userID int64) (string, error)
}

type Service struct {
	users       UserProvider
	tokens      TokenIssuer
	tokenExpire time.Duration
}

func NewService(
	users UserProvider,
	tokens TokenIssuer,
	tokenExpire time.Duration,
) *Service {
	return &Service{
		users:       users,
		tokens:      tokens,
		tokenExpire: tokenExpire,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	//nolint:errcheck // login timestamp is informational
	_ = s.users.RecordLogin(ctx, user.ID)

	return s.createAuthResponse(user)
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createAuthResponse(user)
}

func (s *Service) GetMe(ctx context.Context, userID int64) (*UserInfo, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.Email, user.Role, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	expiresAt := time.Now().Add(s.tokenExpire)

	return &AuthResponse{
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Token: TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int(s.tokenExpire.Seconds()),
			ExpiresAt:   expiresAt,
		},
	}, nil
}
