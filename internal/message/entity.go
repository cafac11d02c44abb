// AngelaMos | 2026
// entity.go

package message

import (
	"time"
)

// Message is addressed by account email on both ends, matching how the
// token subject identifies the caller.
type Message struct {
	ID        int64     `db:"id"`
	Sender    string    `db:"sender"`
	Recipient string    `db:"recipient"`
	Content   string    `db:"content"`
	Timestamp time.Time `db:"timestamp"`
}

func (m *Message) Involves(email string) bool {
	return m.Sender == email || m.Recipient == email
}
