// AngelaMos | 2026
// service_test.go

package message

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/angelamos/realty/internal/core"
)

type fakeRepository struct {
	messages []Message
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, m *Message) error {
	m.ID = f.nextID
	m.Timestamp = time.Now()
	f.nextID++
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id int64,
) (*Message, error) {
	for i := range f.messages {
		if f.messages[i].ID == id {
			copied := f.messages[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get message: %w", core.ErrNotFound)
}

func (f *fakeRepository) ListForUser(
	_ context.Context,
	email string,
) ([]Message, error) {
	var out []Message
	for _, m := range f.messages {
		if m.Involves(email) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListConversation(
	_ context.Context,
	a, b string,
) ([]Message, error) {
	var out []Message
	for _, m := range f.messages {
		if (m.Sender == a && m.Recipient == b) ||
			(m.Sender == b && m.Recipient == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestSendUsesCallerAsSender(t *testing.T) {
	svc := NewService(newFakeRepository())

	m, err := svc.Send(context.Background(), "Buyer@Example.com", SendMessageRequest{
		Recipient: "agent@example.com",
		Content:   "Is the villa still available?",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if m.Sender != "buyer@example.com" {
		t.Errorf("sender = %q, want lowercased caller email", m.Sender)
	}
	if m.ID == 0 {
		t.Error("message id not assigned")
	}
}

func TestGetRestrictedToParticipants(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	m, err := svc.Send(ctx, "buyer@example.com", SendMessageRequest{
		Recipient: "agent@example.com",
		Content:   "hello",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if _, err := svc.Get(ctx, "agent@example.com", "AGENT", m.ID); err != nil {
		t.Errorf("recipient denied: %v", err)
	}
	if _, err := svc.Get(ctx, "buyer@example.com", "BUYER", m.ID); err != nil {
		t.Errorf("sender denied: %v", err)
	}

	_, err = svc.Get(ctx, "other@example.com", "BUYER", m.ID)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden for non-participant", err)
	}

	if _, err := svc.Get(ctx, "root@example.com", "ADMIN", m.ID); err != nil {
		t.Errorf("admin denied: %v", err)
	}
}

func TestGetMissingMessage(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Get(context.Background(), "a@example.com", "BUYER", 42)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestConversationCoversBothDirections(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	pairs := []struct{ from, to string }{
		{"buyer@example.com", "agent@example.com"},
		{"agent@example.com", "buyer@example.com"},
		{"buyer@example.com", "other@example.com"},
	}
	for _, p := range pairs {
		if _, err := svc.Send(ctx, p.from, SendMessageRequest{
			Recipient: p.to,
			Content:   "hi",
		}); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}

	conv, err := svc.Conversation(ctx, "buyer@example.com", "agent@example.com")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}

	if len(conv) != 2 {
		t.Errorf("got %d messages, want 2", len(conv))
	}
}
