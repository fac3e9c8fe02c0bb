// Package ui is the terminal interface: a single bubbletea model rendering
// the active conversation with overlays for the conversation list, model
// picker, usage stats, title editing and delete confirmation.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lollo21x/willpro-doot-inc/account"
	"github.com/lollo21x/willpro-doot-inc/catalog"
	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/storage"
)

// viewState selects which surface owns keyboard input.
type viewState int

const (
	stateChat viewState = iota
	stateConversationList
	stateModelPicker
	stateStats
	stateTitleEdit
	stateConfirmDelete
)

type AppView struct {
	manager  *chat.Manager
	usage    *storage.UsageStore
	identity account.Identity
	blobs    account.BlobStore

	// persistModel, when set, saves a model selection as the new configured
	// default.
	persistModel func(modelID string) error

	// UI components
	viewport       viewport.Model
	textarea       textarea.Model
	loadingSpinner spinner.Model
	titleInput     textinput.Model
	filterInput    textinput.Model

	// Window state
	width  int
	height int
	ready  bool

	state viewState

	// Selected model for outgoing turns
	currentModel string

	// Staged image attachments (data URLs), consumed by the next send
	pendingImages []string

	// Conversation list overlay
	conversations   []chat.Conversation
	filteredConvs   []chat.Conversation
	selectedConv    int
	convFilterInput textinput.Model

	// Model picker overlay
	filteredModels []catalog.ModelInfo
	selectedModel  int

	// Usage stats overlay
	statsRows []storage.ModelUsage

	// Title edit / delete confirmation targets
	editTargetID   string
	deleteTargetID string

	// One-line transient feedback in the status bar
	statusMsg string

	loading bool
}

// NewAppView creates the root view. usage, identity and blobs may be nil; the
// related surfaces degrade gracefully. defaultModel seeds the model used for
// outgoing turns; an empty or unknown id falls back to the catalog default.
func NewAppView(manager *chat.Manager, usage *storage.UsageStore, identity account.Identity, blobs account.BlobStore, defaultModel string) *AppView {
	ta := textarea.New()
	ta.Placeholder = "Type a message... (/image, /profile, /avatar)"
	ta.Prompt = "│ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AssistantStyle

	ti := textinput.New()
	ti.CharLimit = 120

	fi := textinput.New()
	fi.Placeholder = "Filter models..."
	fi.CharLimit = 80

	cf := textinput.New()
	cf.Placeholder = "Filter conversations..."
	cf.CharLimit = 80

	return &AppView{
		manager:         manager,
		usage:           usage,
		identity:        identity,
		blobs:           blobs,
		textarea:        ta,
		loadingSpinner:  sp,
		titleInput:      ti,
		filterInput:     fi,
		convFilterInput: cf,
		currentModel:    resolveInitialModel(defaultModel),
	}
}

// resolveInitialModel maps the configured default model to a registry entry,
// falling back to the catalog default for empty or unknown ids.
func resolveInitialModel(id string) string {
	if catalog.ByID(id) != nil {
		return id
	}
	return catalog.DefaultModel
}

// SetModelPersister registers a callback that saves a picker selection as the
// configured default model.
func (a *AppView) SetModelPersister(fn func(modelID string) error) {
	a.persistModel = fn
}

// Init implements tea.Model.
func (a *AppView) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, a.loadingSpinner.Tick)
}

// CurrentModel returns the model id used for outgoing turns.
func (a *AppView) CurrentModel() string {
	return a.currentModel
}

func (a *AppView) setStatus(msg string) {
	a.statusMsg = msg
}
