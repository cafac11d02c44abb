// AngelaMos | 2026
// service.go

package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelamos/realty/internal/authz"
	"github.com/angelamos/realty/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Send records a message from the authenticated caller. The sender is
// always the caller's own identity, never a request field.
func (s *Service) Send(
	ctx context.Context,
	senderEmail string,
	req SendMessageRequest,
) (*Message, error) {
	m := &Message{
		Sender:    strings.ToLower(senderEmail),
		Recipient: strings.ToLower(req.Recipient),
		Content:   req.Content,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Inbox(
	ctx context.Context,
	email string,
) ([]Message, error) {
	return s.repo.ListForUser(ctx, strings.ToLower(email))
}

// Get returns a message only to its participants. Admins may read any
// message.
func (s *Service) Get(
	ctx context.Context,
	callerEmail, callerRole string,
	id int64,
) (*Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerRole != authz.RoleAdmin &&
		!m.Involves(strings.ToLower(callerEmail)) {
		return nil, fmt.Errorf("get message: %w", core.ErrForbidden)
	}

	return m, nil
}

func (s *Service) Conversation(
	ctx context.Context,
	callerEmail, otherEmail string,
) ([]Message, error) {
	return s.repo.ListConversation(
		ctx,
		strings.ToLower(callerEmail),
		strings.ToLower(otherEmail),
	)
}
