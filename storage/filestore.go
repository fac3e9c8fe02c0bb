package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/config"
)

// TimestampLayout is the persisted timestamp format: ISO-8601 with millisecond
// precision, UTC. Sub-millisecond precision is truncated on write, so a
// save/load round trip is stable only at millisecond granularity.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	conversationsFile = "conversations.json"
	activeIDFile      = "active_conversation.id"
)

// FileStore persists conversation state as two entries in the data directory:
// one JSON document holding the full conversation list, and one plain-text
// file holding the active-conversation id.
//
// Every operation is best-effort. Failures are logged to the debug log and
// swallowed; loads degrade to the empty state.
type FileStore struct {
	dataDir string
}

// NewFileStore creates a FileStore rooted at dataDir, creating the directory
// (0700, user-only) when absent.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// storedMessage is the on-disk message shape. Timestamps are strings so the
// persisted format stays byte-stable regardless of host time zone handling.
type storedMessage struct {
	ID             string   `json:"id"`
	Content        string   `json:"content"`
	Sender         string   `json:"sender"`
	Timestamp      string   `json:"timestamp"`
	Status         string   `json:"status,omitempty"`
	Images         []string `json:"images,omitempty"`
	GeneratedImage string   `json:"generatedImage,omitempty"`
	OriginalPrompt string   `json:"originalPrompt,omitempty"`
}

type storedConversation struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Messages  []storedMessage `json:"messages"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// SaveConversations replaces the persisted conversation set. An empty set
// removes the file entirely so the key reads as absent, not as an empty list.
func (s *FileStore) SaveConversations(conversations []chat.Conversation) {
	path := filepath.Join(s.dataDir, conversationsFile)

	if len(conversations) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logf("Failed to clear conversations file: %v", err)
		}
		return
	}

	stored := make([]storedConversation, len(conversations))
	for i, c := range conversations {
		stored[i] = encodeConversation(c)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		s.logf("Failed to marshal conversations: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		s.logf("Failed to write conversations file: %v", err)
	}
}

// LoadConversations returns the persisted set. A missing or unreadable file
// yields nil; so does a corrupt one, after logging.
func (s *FileStore) LoadConversations() []chat.Conversation {
	path := filepath.Join(s.dataDir, conversationsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logf("Failed to read conversations file: %v", err)
		}
		return nil
	}

	var stored []storedConversation
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logf("Failed to parse conversations file: %v", err)
		return nil
	}

	conversations := make([]chat.Conversation, len(stored))
	for i, sc := range stored {
		conversations[i] = decodeConversation(sc)
	}
	return conversations
}

// SaveActiveID persists the active-conversation pointer. An empty id clears
// the file.
func (s *FileStore) SaveActiveID(id string) {
	path := filepath.Join(s.dataDir, activeIDFile)

	if id == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logf("Failed to clear active conversation file: %v", err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(id), 0600); err != nil {
		s.logf("Failed to write active conversation file: %v", err)
	}
}

// LoadActiveID returns the persisted pointer, or "" when absent.
func (s *FileStore) LoadActiveID() string {
	data, err := os.ReadFile(filepath.Join(s.dataDir, activeIDFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logf("Failed to read active conversation file: %v", err)
		}
		return ""
	}
	return string(data)
}

func encodeConversation(c chat.Conversation) storedConversation {
	messages := make([]storedMessage, len(c.Messages))
	for i, m := range c.Messages {
		messages[i] = storedMessage{
			ID:             m.ID,
			Content:        m.Content,
			Sender:         string(m.Sender),
			Timestamp:      encodeTime(m.Timestamp),
			Status:         string(m.Status),
			Images:         m.Images,
			GeneratedImage: m.GeneratedImage,
			OriginalPrompt: m.OriginalPrompt,
		}
	}
	return storedConversation{
		ID:        c.ID,
		Title:     c.Title,
		Messages:  messages,
		CreatedAt: encodeTime(c.CreatedAt),
		UpdatedAt: encodeTime(c.UpdatedAt),
	}
}

func decodeConversation(sc storedConversation) chat.Conversation {
	messages := make([]chat.Message, len(sc.Messages))
	for i, sm := range sc.Messages {
		status := chat.Status(sm.Status)
		if status == "" {
			status = chat.StatusSent
		}
		messages[i] = chat.Message{
			ID:             sm.ID,
			Content:        sm.Content,
			Sender:         chat.Sender(sm.Sender),
			Timestamp:      decodeTime(sm.Timestamp),
			Status:         status,
			Images:         sm.Images,
			GeneratedImage: sm.GeneratedImage,
			OriginalPrompt: sm.OriginalPrompt,
		}
	}
	return chat.Conversation{
		ID:        sc.ID,
		Title:     sc.Title,
		Messages:  messages,
		CreatedAt: decodeTime(sc.CreatedAt),
		UpdatedAt: decodeTime(sc.UpdatedAt),
	}
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		// Tolerate timestamps written without the millisecond component.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

func (s *FileStore) logf(format string, args ...any) {
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Storage] "+format, args...)
	}
}
