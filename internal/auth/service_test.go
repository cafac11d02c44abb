// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/angelamos/realty/internal/core"
)

type fakeUserProvider struct {
	users      map[string]*UserInfo
	nextID     int64
	lastLogins map[int64]int
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{
		users:      make(map[string]*UserInfo),
		nextID:     1,
		lastLogins: make(map[int64]int),
	}
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id int64,
) (*UserInfo, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	params CreateUserParams,
) (*UserInfo, error) {
	if _, ok := f.users[params.Email]; ok {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	u := &UserInfo{
		ID:           f.nextID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
	}
	f.nextID++
	f.users[params.Email] = u

	copied := *u
	return &copied, nil
}

func (f *fakeUserProvider) UpdatePassword(
	_ context.Context,
	userID int64,
	passwordHash string,
) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeUserProvider) RecordLogin(_ context.Context, userID int64) error {
	f.lastLogins[userID]++
	return nil
}

type staticIssuer struct {
	err error
}

func (s staticIssuer) Issue(email, role string, userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("token-%s-%s-%d", email, role, userID), nil
}

func newTestService(users *fakeUserProvider) *Service {
	return NewService(users, staticIssuer{}, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserProvider()
	svc := newTestService(users)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct horse battery",
		Role:     "BUYER",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.User.Role != "BUYER" {
		t.Errorf("role = %q, want BUYER", resp.User.Role)
	}
	if resp.Token.AccessToken == "" {
		t.Error("register returned empty token")
	}
	if resp.Token.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.Token.TokenType)
	}
	if resp.Token.ExpiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", resp.Token.ExpiresIn)
	}

	login, err := svc.Login(ctx, LoginRequest{
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if login.User.ID != resp.User.ID {
		t.Errorf("login user id = %d, want %d", login.User.ID, resp.User.ID)
	}
	if users.lastLogins[resp.User.ID] != 1 {
		t.Errorf(
			"last login recorded %d times, want 1",
			users.lastLogins[resp.User.ID],
		)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserProvider())
	ctx := context.Background()

	req := RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct horse battery",
		Role:     "AGENT",
	}

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserProvider())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct horse battery",
		Role:     "BUYER",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong password entirely",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserProvider())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "does not matter 123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginTokenIssueFailure(t *testing.T) {
	users := newFakeUserProvider()
	svc := newTestService(users)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct horse battery",
		Role:     "BUYER",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	broken := NewService(users, staticIssuer{err: errors.New("boom")}, time.Hour)

	if _, err := broken.Login(ctx, LoginRequest{
		Email:    "dana@example.com",
		Password: "correct horse battery",
	}); err == nil {
		t.Error("expected error when token issuing fails")
	}
}
