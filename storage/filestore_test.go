package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, dir
}

func TestConversationsRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	// Millisecond precision: anything finer is lost by the persisted format.
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	conversations := []chat.Conversation{
		{
			ID:    "c1",
			Title: "Trip plan",
			Messages: []chat.Message{
				{
					ID:        "m1",
					Content:   "hello",
					Sender:    chat.SenderUser,
					Timestamp: ts,
					Status:    chat.StatusSent,
					Images:    []string{"data:image/png;base64,xx"},
				},
				{
					ID:             "m2",
					Sender:         chat.SenderAssistant,
					Timestamp:      ts.Add(time.Second),
					Status:         chat.StatusSent,
					GeneratedImage: "data:image/png;base64,yy",
					OriginalPrompt: "a cat",
				},
			},
			CreatedAt: ts,
			UpdatedAt: ts.Add(time.Minute),
		},
	}

	store.SaveConversations(conversations)
	loaded := store.LoadConversations()

	if len(loaded) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != "c1" || got.Title != "Trip plan" {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(ts) || !got.UpdatedAt.Equal(ts.Add(time.Minute)) {
		t.Errorf("timestamps did not round-trip: %v, %v", got.CreatedAt, got.UpdatedAt)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	m1 := got.Messages[0]
	if m1.Sender != chat.SenderUser || !m1.Timestamp.Equal(ts) || len(m1.Images) != 1 {
		t.Errorf("first message did not round-trip: %+v", m1)
	}
	m2 := got.Messages[1]
	if m2.GeneratedImage != "data:image/png;base64,yy" || m2.OriginalPrompt != "a cat" {
		t.Errorf("generated-image fields did not round-trip: %+v", m2)
	}
}

func TestTimestampTruncatesBelowMillisecond(t *testing.T) {
	store, _ := newTestStore(t)

	ts := time.Date(2026, 1, 2, 3, 4, 5, 123_456_789, time.UTC)
	store.SaveConversations([]chat.Conversation{{ID: "c1", CreatedAt: ts, UpdatedAt: ts}})

	loaded := store.LoadConversations()
	want := ts.Truncate(time.Millisecond)
	if !loaded[0].CreatedAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, loaded[0].CreatedAt)
	}
}

func TestSaveEmptyClearsFile(t *testing.T) {
	store, dir := newTestStore(t)

	store.SaveConversations([]chat.Conversation{{ID: "c1"}})
	path := filepath.Join(dir, conversationsFile)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected conversations file to exist: %v", err)
	}

	store.SaveConversations(nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("saving an empty set must remove the file")
	}
	if loaded := store.LoadConversations(); loaded != nil {
		t.Errorf("expected nil after clear, got %v", loaded)
	}
}

func TestLoadCorruptFileDegradesToEmpty(t *testing.T) {
	store, dir := newTestStore(t)

	path := filepath.Join(dir, conversationsFile)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if loaded := store.LoadConversations(); loaded != nil {
		t.Errorf("corrupt file must load as empty, got %v", loaded)
	}
}

func TestActiveIDRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	if id := store.LoadActiveID(); id != "" {
		t.Errorf("expected empty id before save, got %q", id)
	}

	store.SaveActiveID("c42")
	if id := store.LoadActiveID(); id != "c42" {
		t.Errorf("expected %q, got %q", "c42", id)
	}

	store.SaveActiveID("")
	if id := store.LoadActiveID(); id != "" {
		t.Errorf("empty save must clear the pointer, got %q", id)
	}
}

func TestMissingStatusDefaultsToSent(t *testing.T) {
	store, dir := newTestStore(t)

	raw := `[{"id":"c1","title":"t","messages":[{"id":"m1","content":"x","sender":"user","timestamp":"2026-01-02T03:04:05.000Z"}],"createdAt":"2026-01-02T03:04:05.000Z","updatedAt":"2026-01-02T03:04:05.000Z"}]`
	if err := os.WriteFile(filepath.Join(dir, conversationsFile), []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	loaded := store.LoadConversations()
	if loaded[0].Messages[0].Status != chat.StatusSent {
		t.Errorf("missing status must decode as sent, got %q", loaded[0].Messages[0].Status)
	}
}

func TestInstanceLock(t *testing.T) {
	store, _ := newTestStore(t)

	locked, _, err := store.CheckInstanceLock()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked {
		t.Fatal("fresh data dir must not be locked")
	}

	if err := store.LockInstance(); err != nil {
		t.Fatalf("failed to lock: %v", err)
	}
	locked, pid, err := store.CheckInstanceLock()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked || pid != os.Getpid() {
		t.Errorf("expected lock held by this process, got locked=%v pid=%d", locked, pid)
	}

	if err := store.UnlockInstance(); err != nil {
		t.Fatalf("failed to unlock: %v", err)
	}
	locked, _, _ = store.CheckInstanceLock()
	if locked {
		t.Error("lock must be released")
	}
	// Unlocking twice is fine.
	if err := store.UnlockInstance(); err != nil {
		t.Errorf("double unlock must be a no-op, got %v", err)
	}
}
