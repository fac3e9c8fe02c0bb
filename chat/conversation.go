package chat

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the placeholder title of a freshly created conversation.
// It is replaced asynchronously once the first exchange completes.
const DefaultTitle = "New chat"

// Conversation is an ordered transcript with metadata. Message order is
// chronological and significant.
type Conversation struct {
	ID        string
	Title     string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newConversation() Conversation {
	now := time.Now()
	return Conversation{
		ID:        uuid.New().String(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// clone returns a copy whose message slice does not alias the original.
func (c Conversation) clone() Conversation {
	out := c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}
