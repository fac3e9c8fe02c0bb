package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Status tracks the delivery state of a message. Messages are immutable once
// created except for status transitions (sending → sent | error).
type Status string

const (
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

// Message is one entry of a conversation transcript.
type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Timestamp time.Time
	Status    Status
	// Images holds user-attached inline images (data URLs), in attach order.
	Images []string
	// GeneratedImage is set when an image-generation model produced the reply.
	GeneratedImage string
	// OriginalPrompt is the prompt that produced GeneratedImage, retained for
	// re-generation and filename derivation.
	OriginalPrompt string
}

func newUserMessage(content string, images []string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: time.Now(),
		Status:    StatusSent,
		Images:    images,
	}
}

func newAssistantMessage(content string, status Status) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    SenderAssistant,
		Timestamp: time.Now(),
		Status:    status,
	}
}
