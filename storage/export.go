package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

// ExportConversation writes a conversation to path as JSON, in the same shape
// the store persists. Unlike the best-effort store operations, export is
// user-initiated and reports failure.
func ExportConversation(conv chat.Conversation, path string) error {
	data, err := json.MarshalIndent(encodeConversation(conv), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// GenerateExportPath builds a collision-resistant path under ~/Downloads from
// the conversation title.
func GenerateExportPath(title string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	downloads := filepath.Join(home, "Downloads")
	if err := os.MkdirAll(downloads, 0755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory: %w", err)
	}

	name := sanitizeFilename(title)
	if name == "" {
		name = "conversation"
	}
	filename := fmt.Sprintf("%s_%s.json", name, time.Now().Format("20060102_150405"))
	return filepath.Join(downloads, filename), nil
}

// sanitizeFilename keeps letters, digits and dashes, mapping everything else
// to underscores and collapsing runs.
func sanitizeFilename(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
