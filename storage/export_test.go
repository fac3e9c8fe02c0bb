package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

func TestExportConversation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	conv := chat.Conversation{
		ID:    "c1",
		Title: "Trip plan",
		Messages: []chat.Message{
			{ID: "m1", Content: "hello", Sender: chat.SenderUser, Timestamp: time.Now(), Status: chat.StatusSent},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := ExportConversation(conv, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var exported storedConversation
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if exported.ID != "c1" || exported.Title != "Trip plan" || len(exported.Messages) != 1 {
		t.Errorf("unexpected export content: %+v", exported)
	}

	if err := ExportConversation(conv, filepath.Join(t.TempDir(), "missing", "export.json")); err == nil {
		t.Error("exporting to a missing directory must fail")
	}
}
