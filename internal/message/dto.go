// AngelaMos | 2026
// dto.go

package message

import (
	"time"
)

type SendMessageRequest struct {
	Recipient string `json:"recipient" validate:"required,email,max=255"`
	Content   string `json:"content"   validate:"required,min=1,max=5000"`
}

type MessageResponse struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    m.Sender,
		Recipient: m.Recipient,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func ToMessageResponseList(messages []Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses
}
