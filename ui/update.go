package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lollo21x/willpro-doot-inc/chat"
)

// Update implements tea.Model.
func (a *AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		return a, cmd

	case RefreshMsg:
		a.refreshViewport()
		return a, nil

	case turnDoneMsg:
		a.loading = false
		if msg.err != nil {
			switch msg.err {
			case chat.ErrTurnInFlight:
				a.setStatus("A reply is still in progress")
			case chat.ErrMessageNotFound:
				a.setStatus("Message is gone, nothing to regenerate")
			default:
				a.setStatus(fmt.Sprintf("Error: %v", msg.err))
			}
		}
		a.refreshViewport()
		a.viewport.GotoBottom()
		return a, nil

	case statsLoadedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Stats unavailable: %v", msg.err))
			a.state = stateChat
			return a, nil
		}
		a.statsRows = msg.rows
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			a.setStatus("Exported to " + msg.path)
		}
		return a, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			a.setStatus("Reply copied to clipboard")
		}
		return a, nil

	case attachDoneMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Attach failed: %v", msg.err))
		} else {
			a.pendingImages = append(a.pendingImages, msg.dataURL)
			a.setStatus(fmt.Sprintf("%d image(s) staged for next message", len(a.pendingImages)))
		}
		return a, nil

	case profileDoneMsg:
		switch {
		case msg.err != nil:
			a.setStatus(fmt.Sprintf("Profile update failed: %v", msg.err))
		case msg.cleared:
			a.setStatus("Profile cleared")
		default:
			a.setStatus("Profile: " + msg.name)
		}
		// The display name tags user messages in the transcript.
		a.refreshViewport()
		return a, nil

	case modelSavedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Could not save default model: %v", msg.err))
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateComponents(msg)
}

func (a *AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.state {
	case stateConversationList:
		return a.handleConversationListKey(msg)
	case stateModelPicker:
		return a.handleModelPickerKey(msg)
	case stateStats:
		if msg.String() == "esc" || msg.String() == "q" {
			a.state = stateChat
		}
		return a, nil
	case stateTitleEdit:
		return a.handleTitleEditKey(msg)
	case stateConfirmDelete:
		return a.handleConfirmDeleteKey(msg)
	}

	return a.handleChatKey(msg)
}

func (a *AppView) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.submitInput()

	case "ctrl+n":
		a.manager.CreateNewConversation()
		a.pendingImages = nil
		a.setStatus("")
		a.refreshViewport()
		return a, nil

	case "ctrl+l":
		a.openConversationList()
		return a, nil

	case "ctrl+p":
		a.openModelPicker()
		return a, nil

	case "ctrl+r":
		return a.regenerateLast()

	case "ctrl+y":
		if conv, ok := a.manager.Active(); ok {
			for i := len(conv.Messages) - 1; i >= 0; i-- {
				if conv.Messages[i].Sender == chat.SenderAssistant {
					return a, a.copyCmd(conv.Messages[i].Content)
				}
			}
		}
		a.setStatus("No reply to copy")
		return a, nil

	case "ctrl+u":
		a.state = stateStats
		a.statsRows = nil
		return a, a.loadStatsCmd()

	case "ctrl+o":
		if conv, ok := a.manager.Active(); ok && len(conv.Messages) > 0 {
			return a, a.exportCmd(conv)
		}
		a.setStatus("Nothing to export")
		return a, nil
	}

	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// submitInput handles enter in the chat view: run a slash command ("/image",
// "/profile", "/avatar") or send the composed message.
func (a *AppView) submitInput() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(a.textarea.Value())

	if path, ok := strings.CutPrefix(input, "/image "); ok {
		a.textarea.Reset()
		return a, a.attachCmd(strings.TrimSpace(path))
	}

	if input == "/profile" || strings.HasPrefix(input, "/profile ") {
		a.textarea.Reset()
		return a, a.profileCmd(strings.TrimSpace(strings.TrimPrefix(input, "/profile")))
	}

	if path, ok := strings.CutPrefix(input, "/avatar "); ok {
		a.textarea.Reset()
		return a, a.avatarCmd(strings.TrimSpace(path))
	}

	if input == "" && len(a.pendingImages) == 0 {
		return a, nil
	}
	if a.loading {
		a.setStatus("A reply is still in progress")
		return a, nil
	}

	images := a.pendingImages
	a.pendingImages = nil
	a.textarea.Reset()
	a.loading = true
	a.setStatus("")

	cmd := a.sendCmd(input, images, a.currentModel)
	// Show the optimistic user message right away.
	return a, tea.Batch(cmd, func() tea.Msg { return RefreshMsg{} })
}

func (a *AppView) regenerateLast() (tea.Model, tea.Cmd) {
	conv, ok := a.manager.Active()
	if !ok {
		return a, nil
	}
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		if conv.Messages[i].Sender == chat.SenderAssistant {
			if a.loading {
				a.setStatus("A reply is still in progress")
				return a, nil
			}
			a.loading = true
			cmd := a.regenerateCmd(conv.Messages[i].ID, a.currentModel)
			return a, tea.Batch(cmd, func() tea.Msg { return RefreshMsg{} })
		}
	}
	a.setStatus("No reply to regenerate")
	return a, nil
}

func (a *AppView) handleConversationListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter is focused, most keys edit the query.
	if a.convFilterInput.Focused() {
		switch msg.String() {
		case "esc":
			a.convFilterInput.Blur()
			a.convFilterInput.SetValue("")
			a.applyConversationFilter()
			return a, nil
		case "enter", "up", "down":
			a.convFilterInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.convFilterInput, cmd = a.convFilterInput.Update(msg)
		a.applyConversationFilter()
		return a, cmd
	}

	switch msg.String() {
	case "esc", "q":
		a.state = stateChat

	case "/":
		a.convFilterInput.Focus()

	case "up", "k":
		if a.selectedConv > 0 {
			a.selectedConv--
		}

	case "down", "j":
		if a.selectedConv < len(a.filteredConvs)-1 {
			a.selectedConv++
		}

	case "enter":
		if a.selectedConv < len(a.filteredConvs) {
			a.manager.SelectConversation(a.filteredConvs[a.selectedConv].ID)
			a.state = stateChat
			a.refreshViewport()
			a.viewport.GotoBottom()
		}

	case "r":
		if a.selectedConv < len(a.filteredConvs) {
			target := a.filteredConvs[a.selectedConv]
			a.editTargetID = target.ID
			a.titleInput.SetValue(target.Title)
			a.titleInput.Focus()
			a.state = stateTitleEdit
		}

	case "d":
		if a.selectedConv < len(a.filteredConvs) {
			a.deleteTargetID = a.filteredConvs[a.selectedConv].ID
			a.state = stateConfirmDelete
		}

	case "n":
		a.manager.CreateNewConversation()
		a.state = stateChat
		a.refreshViewport()
	}
	return a, nil
}

func (a *AppView) handleTitleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.titleInput.Blur()
		a.state = stateConversationList
		return a, nil

	case "enter":
		title := strings.TrimSpace(a.titleInput.Value())
		if title != "" {
			a.manager.EditConversationTitle(a.editTargetID, title)
		}
		a.titleInput.Blur()
		a.conversations = a.manager.Conversations()
		a.applyConversationFilter()
		a.state = stateConversationList
		return a, nil
	}

	var cmd tea.Cmd
	a.titleInput, cmd = a.titleInput.Update(msg)
	return a, cmd
}

func (a *AppView) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		a.manager.DeleteConversation(a.deleteTargetID)
		a.deleteTargetID = ""
		a.conversations = a.manager.Conversations()
		a.applyConversationFilter()
		if a.selectedConv >= len(a.filteredConvs) && a.selectedConv > 0 {
			a.selectedConv--
		}
		a.state = stateConversationList
		a.refreshViewport()

	case "n", "N", "esc":
		a.deleteTargetID = ""
		a.state = stateConversationList
	}
	return a, nil
}

func (a *AppView) activeConversationIndex() int {
	activeID := a.manager.ActiveID()
	for i, c := range a.conversations {
		if c.ID == activeID {
			return i
		}
	}
	return 0
}

func (a *AppView) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.textarea, cmd = a.textarea.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a *AppView) resize(width, height int) {
	a.width = width
	a.height = height

	headerHeight := 2
	footerHeight := 2
	inputHeight := a.textarea.Height() + 1

	if !a.ready {
		a.viewport = viewport.New(width, height-headerHeight-footerHeight-inputHeight)
		a.ready = true
	} else {
		a.viewport.Width = width
		a.viewport.Height = height - headerHeight - footerHeight - inputHeight
	}
	a.textarea.SetWidth(width - 2)
	a.refreshViewport()
	a.viewport.GotoBottom()
}
