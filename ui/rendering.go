package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lollo21x/willpro-doot-inc/catalog"
	"github.com/lollo21x/willpro-doot-inc/chat"
)

// View implements tea.Model.
func (a *AppView) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.state {
	case stateConversationList:
		return a.renderConversationList()
	case stateModelPicker:
		return a.renderModelPicker()
	case stateStats:
		return a.renderStats()
	case stateTitleEdit:
		return a.renderTitleEdit()
	case stateConfirmDelete:
		return a.renderConfirmDelete()
	}

	return a.renderChat()
}

func (a *AppView) renderChat() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n")

	if a.loading {
		b.WriteString(a.loadingSpinner.View() + DimStyle.Render(" Thinking...") + "\n")
	} else {
		b.WriteString(a.textarea.View() + "\n")
	}

	footer := FormatFooter(
		"enter", "Send",
		"^n", "New",
		"^l", "Chats",
		"^p", "Model",
		"^r", "Retry",
		"^y", "Copy",
		"^u", "Stats",
		"^o", "Export",
		"^c", "Quit",
	)
	if a.statusMsg != "" {
		footer = HighlightStyle.Render(a.statusMsg) + "  " + footer
	}
	b.WriteString(StatusStyle.Render(truncate(footer, a.width)))

	return b.String()
}

func (a *AppView) renderHeader() string {
	title := chat.DefaultTitle
	if conv, ok := a.manager.Active(); ok {
		title = conv.Title
	}

	model := a.currentModel
	if info := catalog.ByID(a.currentModel); info != nil {
		model = info.Name
	}

	left := TitleStyle.Render(truncate(title, a.width/2))
	right := DimStyle.Render(model)
	if profile, ok := a.currentProfile(); ok {
		right += DimStyle.Render(" · " + profile)
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *AppView) currentProfile() (string, bool) {
	if a.identity == nil {
		return "", false
	}
	p, ok := a.identity.CurrentUser()
	if !ok {
		return "", false
	}
	return p.DisplayName, true
}

// refreshViewport rebuilds the transcript from manager state.
func (a *AppView) refreshViewport() {
	if !a.ready {
		return
	}

	conv, ok := a.manager.Active()
	if !ok || len(conv.Messages) == 0 {
		a.viewport.SetContent(DimStyle.Render("No messages yet. Say hello!"))
		return
	}

	width := a.viewport.Width
	wrap := lipgloss.NewStyle().Width(width)

	userLabel := "You"
	if name, ok := a.currentProfile(); ok {
		userLabel = name
	}

	var b strings.Builder
	for _, msg := range conv.Messages {
		ts := DimStyle.Render(msg.Timestamp.Local().Format("15:04"))

		switch {
		case msg.Sender == chat.SenderUser:
			b.WriteString(UserStyle.Render(userLabel) + " " + ts + "\n")
			b.WriteString(wrap.Render(msg.Content) + "\n")
			if len(msg.Images) > 0 {
				b.WriteString(DimStyle.Render(fmt.Sprintf("[%d image(s) attached]", len(msg.Images))) + "\n")
			}

		case msg.GeneratedImage != "":
			b.WriteString(AssistantStyle.Render("Assistant") + " " + ts + "\n")
			b.WriteString(DimStyle.Render("[generated image] ") + truncate(msg.GeneratedImage, width-20) + "\n")

		case msg.Status == chat.StatusError:
			b.WriteString(AssistantStyle.Render("Assistant") + " " + ts + "\n")
			b.WriteString(ErrorStyle.Render(wrap.Render(msg.Content)) + "\n")

		default:
			b.WriteString(AssistantStyle.Render("Assistant") + " " + ts + "\n")
			b.WriteString(wrap.Render(msg.Content) + "\n")
		}
		b.WriteString("\n")
	}

	a.viewport.SetContent(b.String())
}

func (a *AppView) renderConversationList() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Conversations") + "\n")
	if a.convFilterInput.Focused() || a.convFilterInput.Value() != "" {
		b.WriteString(a.convFilterInput.View() + "\n")
	}
	b.WriteString("\n")

	if len(a.filteredConvs) == 0 {
		b.WriteString(DimStyle.Render("No matching conversations.") + "\n")
	}

	activeID := a.manager.ActiveID()
	for i, conv := range a.filteredConvs {
		line := truncate(conv.Title, a.width-20)
		meta := DimStyle.Render(fmt.Sprintf(" (%d messages, %s)", len(conv.Messages), conv.UpdatedAt.Local().Format("Jan 2 15:04")))

		switch {
		case i == a.selectedConv:
			b.WriteString(SelectedStyle.Render("> "+line) + meta + "\n")
		case conv.ID == activeID:
			b.WriteString(HighlightStyle.Render("  "+line) + meta + "\n")
		default:
			b.WriteString("  " + line + meta + "\n")
		}
	}

	b.WriteString("\n" + FormatFooter(
		"j/k", "Navigate",
		"enter", "Open",
		"/", "Filter",
		"n", "New",
		"r", "Rename",
		"d", "Delete",
		"esc", "Close",
	))
	return b.String()
}

func (a *AppView) renderModelPicker() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Select model") + "\n")
	b.WriteString(a.filterInput.View() + "\n\n")

	for i, m := range a.filteredModels {
		line := truncate(m.Name, a.width-30)
		var tags []string
		if m.Multimodal {
			tags = append(tags, "vision")
		}
		if m.Reasoning {
			tags = append(tags, "reasoning")
		}
		if m.ImageGenerator {
			tags = append(tags, "image gen")
		}
		suffix := ""
		if len(tags) > 0 {
			suffix = DimStyle.Render(" [" + strings.Join(tags, ", ") + "]")
		}

		if i == a.selectedModel {
			b.WriteString(SelectedStyle.Render("> "+line) + suffix + "\n")
		} else {
			b.WriteString("  " + line + suffix + "\n")
		}
	}

	b.WriteString("\n" + FormatFooter("type", "Filter", "↑/↓", "Navigate", "enter", "Select", "esc", "Close"))
	return b.String()
}

func (a *AppView) renderStats() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Model usage") + "\n\n")

	if len(a.statsRows) == 0 {
		b.WriteString(DimStyle.Render("No turns recorded yet.") + "\n")
	}
	for _, row := range a.statsRows {
		name := row.Model
		if info := catalog.ByID(row.Model); info != nil {
			name = info.Name
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			truncate(name, a.width-30),
			DimStyle.Render(fmt.Sprintf("%d turn(s), last %s", row.Turns, row.LastUsed.Local().Format("Jan 2 15:04"))),
		))
	}

	b.WriteString("\n" + FormatFooter("esc", "Close"))
	return b.String()
}

func (a *AppView) renderTitleEdit() string {
	return TitleStyle.Render("Rename conversation") + "\n\n" +
		a.titleInput.View() + "\n\n" +
		FormatFooter("enter", "Save", "esc", "Cancel")
}

func (a *AppView) renderConfirmDelete() string {
	title := ""
	for _, c := range a.conversations {
		if c.ID == a.deleteTargetID {
			title = c.Title
			break
		}
	}
	return TitleStyle.Render("Delete conversation") + "\n\n" +
		"Delete " + HighlightStyle.Render(truncate(title, a.width-20)) + "? This cannot be undone.\n\n" +
		FormatFooter("y", "Delete", "n", "Cancel")
}

// truncate clamps a string to a display width, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
