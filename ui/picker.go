package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/lollo21x/willpro-doot-inc/catalog"
	"github.com/lollo21x/willpro-doot-inc/chat"
)

// modelSource adapts the catalog to fuzzy's Source interface so matching runs
// over display names.
type modelSource []catalog.ModelInfo

func (s modelSource) String(i int) string { return s[i].Name + " " + s[i].ID }
func (s modelSource) Len() int            { return len(s) }

// convSource adapts the conversation list to fuzzy's Source interface.
type convSource []chat.Conversation

func (s convSource) String(i int) string { return s[i].Title }
func (s convSource) Len() int            { return len(s) }

func (a *AppView) openConversationList() {
	a.conversations = a.manager.Conversations()
	a.convFilterInput.Blur()
	a.convFilterInput.SetValue("")
	a.applyConversationFilter()
	a.selectedConv = 0
	activeID := a.manager.ActiveID()
	for i, c := range a.filteredConvs {
		if c.ID == activeID {
			a.selectedConv = i
			break
		}
	}
	a.state = stateConversationList
}

func (a *AppView) applyConversationFilter() {
	query := a.convFilterInput.Value()
	if query == "" {
		a.filteredConvs = a.conversations
	} else {
		matches := fuzzy.FindFrom(query, convSource(a.conversations))
		filtered := make([]chat.Conversation, len(matches))
		for i, m := range matches {
			filtered[i] = a.conversations[m.Index]
		}
		a.filteredConvs = filtered
	}
	if a.selectedConv >= len(a.filteredConvs) {
		a.selectedConv = 0
	}
}

func (a *AppView) openModelPicker() {
	a.filterInput.SetValue("")
	a.filterInput.Focus()
	a.filteredModels = catalog.Available
	a.selectedModel = 0
	for i, m := range a.filteredModels {
		if m.ID == a.currentModel {
			a.selectedModel = i
			break
		}
	}
	a.state = stateModelPicker
}

func (a *AppView) handleModelPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.filterInput.Blur()
		a.state = stateChat
		return a, nil

	case "up":
		if a.selectedModel > 0 {
			a.selectedModel--
		}
		return a, nil

	case "down":
		if a.selectedModel < len(a.filteredModels)-1 {
			a.selectedModel++
		}
		return a, nil

	case "enter":
		var cmd tea.Cmd
		if a.selectedModel < len(a.filteredModels) {
			picked := a.filteredModels[a.selectedModel]
			a.currentModel = picked.ID
			a.setStatus("Model: " + picked.Name)
			if a.persistModel != nil {
				fn := a.persistModel
				cmd = func() tea.Msg { return modelSavedMsg{err: fn(picked.ID)} }
			}
		}
		a.filterInput.Blur()
		a.state = stateChat
		return a, cmd
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.applyModelFilter()
	return a, cmd
}

func (a *AppView) applyModelFilter() {
	query := a.filterInput.Value()
	if query == "" {
		a.filteredModels = catalog.Available
	} else {
		matches := fuzzy.FindFrom(query, modelSource(catalog.Available))
		filtered := make([]catalog.ModelInfo, len(matches))
		for i, m := range matches {
			filtered[i] = catalog.Available[m.Index]
		}
		a.filteredModels = filtered
	}
	if a.selectedModel >= len(a.filteredModels) {
		a.selectedModel = 0
	}
}
