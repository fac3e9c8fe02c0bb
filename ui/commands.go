package ui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/storage"
)

// sendCmd dispatches one turn. The manager appends the user message before
// the remote call, so the view re-reads state as soon as the command returns.
func (a *AppView) sendCmd(content string, images []string, modelID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.manager.SendMessage(context.Background(), content, images, modelID)
		return turnDoneMsg{reply: reply, err: err}
	}
}

func (a *AppView) regenerateCmd(messageID, modelID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.manager.RegenerateMessage(context.Background(), messageID, modelID)
		return turnDoneMsg{reply: reply, err: err}
	}
}

func (a *AppView) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		if a.usage == nil {
			return statsLoadedMsg{err: fmt.Errorf("usage tracking is not available")}
		}
		rows, err := a.usage.Totals()
		return statsLoadedMsg{rows: rows, err: err}
	}
}

func (a *AppView) exportCmd(conv chat.Conversation) tea.Cmd {
	return func() tea.Msg {
		path, err := storage.GenerateExportPath(conv.Title)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := storage.ExportConversation(conv, path); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (a *AppView) copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(text)}
	}
}

// attachCmd reads an image file and stages it as a data URL.
func (a *AppView) attachCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return attachDoneMsg{err: fmt.Errorf("failed to read image: %w", err)}
		}
		mediaType := mediaTypeForExt(filepath.Ext(path))
		dataURL := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
		return attachDoneMsg{dataURL: dataURL}
	}
}

// profileCmd sets the local display name. An empty name clears the profile.
func (a *AppView) profileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		if a.identity == nil {
			return profileDoneMsg{err: fmt.Errorf("profiles are not available")}
		}
		if name == "" {
			if err := a.identity.Clear(); err != nil {
				return profileDoneMsg{err: err}
			}
			return profileDoneMsg{cleared: true}
		}
		profile, _ := a.identity.CurrentUser()
		profile.DisplayName = name
		if err := a.identity.UpdateProfile(profile); err != nil {
			return profileDoneMsg{err: err}
		}
		return profileDoneMsg{name: name}
	}
}

// avatarCmd uploads an image file and records its URL on the profile.
func (a *AppView) avatarCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if a.identity == nil || a.blobs == nil {
			return profileDoneMsg{err: fmt.Errorf("profiles are not available")}
		}
		profile, ok := a.identity.CurrentUser()
		if !ok {
			return profileDoneMsg{err: fmt.Errorf("set a display name first (/profile <name>)")}
		}
		url, err := a.blobs.Upload(context.Background(), path)
		if err != nil {
			return profileDoneMsg{err: err}
		}
		profile.PhotoURL = url
		if err := a.identity.UpdateProfile(profile); err != nil {
			return profileDoneMsg{err: err}
		}
		return profileDoneMsg{name: profile.DisplayName}
	}
}

func mediaTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
