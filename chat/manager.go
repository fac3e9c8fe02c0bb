// Package chat implements the conversation-management core: it owns the
// conversation list and the active-conversation pointer, assembles bounded
// request histories, and orchestrates the send/regenerate lifecycle against an
// injected completion backend.
//
// No error from a remote backend ever crosses the Manager boundary: every
// failed turn resolves into an error-status assistant message. The only errors
// the mutating operations return are precondition violations (see errors.go).
package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lollo21x/willpro-doot-inc/catalog"
)

// TitleGenerator produces a short conversation title from the first user
// message. Invoked fire-and-forget; failures are logged and the placeholder
// title is retained.
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, firstUserMessage string) (string, error)
}

// ImageGenerator turns a prompt into an image reference. Used as the alternate
// send path for models flagged as image generators.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt, modelID string) (string, error)
}

// UsageRecorder receives one event per successfully settled turn.
type UsageRecorder interface {
	RecordTurn(modelID string) error
}

// Manager owns all conversation state. All exported methods are safe for
// concurrent use; state transitions are atomic replacements under a single
// mutex, and persistence is a best-effort write after each transition.
type Manager struct {
	mu     sync.Mutex
	store  Store
	client CompletionClient
	titles TitleGenerator
	images ImageGenerator
	usage  UsageRecorder
	logger *log.Logger
	notify func()

	conversations []Conversation
	activeID      string
	loading       bool
	initialized   bool
}

// NewManager creates a Manager with its required collaborators. Optional
// collaborators are attached with the Set methods before Init.
func NewManager(store Store, client CompletionClient) *Manager {
	return &Manager{
		store:  store,
		client: client,
	}
}

func (m *Manager) SetTitleGenerator(t TitleGenerator) { m.titles = t }
func (m *Manager) SetImageGenerator(g ImageGenerator) { m.images = g }
func (m *Manager) SetUsageRecorder(u UsageRecorder)   { m.usage = u }
func (m *Manager) SetLogger(l *log.Logger)            { m.logger = l }

// SetNotify registers a callback invoked after state changes that happen
// outside a caller's control flow (background title generation). The callback
// runs without the manager lock held.
func (m *Manager) SetNotify(fn func()) { m.notify = fn }

// Init loads persisted state and enforces the startup selection rules: a
// still-valid saved active id is kept, otherwise the most-recently-updated
// conversation is promoted, otherwise a fresh empty conversation is created.
// Persistence only starts after Init, so a failed load cannot clobber the
// store with an empty state mid-initialization.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.conversations = m.store.LoadConversations()
	savedID := m.store.LoadActiveID()

	switch {
	case savedID != "" && m.findLocked(savedID) >= 0:
		m.activeID = savedID
	case len(m.conversations) > 0:
		m.activeID = m.conversations[m.mostRecentLocked()].ID
	default:
		conv := newConversation()
		m.conversations = []Conversation{conv}
		m.activeID = conv.ID
	}

	m.initialized = true
	m.persistLocked()
}

// Conversations returns a copy of the conversation list in storage order.
func (m *Manager) Conversations() []Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Conversation, len(m.conversations))
	for i, c := range m.conversations {
		out[i] = c.clone()
	}
	return out
}

// Active returns a copy of the active conversation.
func (m *Manager) Active() (Conversation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.findLocked(m.activeID); i >= 0 {
		return m.conversations[i].clone(), true
	}
	return Conversation{}, false
}

// ActiveID returns the active-conversation pointer.
func (m *Manager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// IsLoading reports whether a turn is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// CreateNewConversation inserts a fresh empty conversation at the head of the
// list and makes it active. Any other empty conversation is silently evicted:
// a zero-message conversation is disposable.
func (m *Manager) CreateNewConversation() Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.conversations[:0:0]
	for _, c := range m.conversations {
		if len(c.Messages) > 0 {
			kept = append(kept, c)
		}
	}

	conv := newConversation()
	m.conversations = append([]Conversation{conv}, kept...)
	m.activeID = conv.ID
	m.persistLocked()
	return conv.clone()
}

// SelectConversation sets the active-conversation pointer. The id is not
// validated here; callers select from the rendered list.
func (m *Manager) SelectConversation(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activeID = id
	m.persistLocked()
}

// EditConversationTitle overwrites a conversation's title.
func (m *Manager) EditConversationTitle(id, title string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.findLocked(id); i >= 0 {
		m.conversations[i].Title = title
		m.conversations[i].UpdatedAt = time.Now()
		m.persistLocked()
	}
}

// DeleteConversation removes a conversation. When the active one is deleted,
// the most-recently-updated survivor is promoted; when none remain, a fresh
// empty conversation is synthesized so an active conversation always exists.
func (m *Manager) DeleteConversation(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.conversations[:0:0]
	for _, c := range m.conversations {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.conversations = kept

	if m.activeID == id {
		if len(m.conversations) > 0 {
			m.activeID = m.conversations[m.mostRecentLocked()].ID
		} else {
			conv := newConversation()
			m.conversations = []Conversation{conv}
			m.activeID = conv.ID
		}
	}

	m.persistLocked()
}

// SendMessage runs one turn against the active conversation: the user message
// is appended synchronously (optimistic, never rolled back), title generation
// is kicked off in the background on the first message, and the bounded
// request history is dispatched. The settled result - the assistant reply or a
// classified error message - is appended and returned.
//
// A send while a previous turn is still in flight is rejected with
// ErrTurnInFlight.
func (m *Manager) SendMessage(ctx context.Context, content string, images []string, modelID string) (Message, error) {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return Message{}, ErrTurnInFlight
	}
	idx := m.findLocked(m.activeID)
	if idx < 0 {
		m.mu.Unlock()
		return Message{}, ErrNoActiveConversation
	}

	modelID, info := resolveModel(modelID)
	conv := &m.conversations[idx]
	first := len(conv.Messages) == 0
	convID := conv.ID

	userMsg := newUserMessage(content, images)

	// Build the history from the prior messages plus the provisional new one,
	// before the append becomes visible.
	combined := make([]Message, 0, len(conv.Messages)+1)
	combined = append(combined, conv.Messages...)
	combined = append(combined, userMsg)
	history := buildHistory(combined, info)

	conv.Messages = append(conv.Messages, userMsg)
	conv.UpdatedAt = time.Now()
	m.loading = true
	m.persistLocked()
	m.mu.Unlock()

	if first && m.titles != nil {
		seed := content
		if seed == "" {
			seed = "Image generation"
		}
		go m.generateTitle(convID, seed)
	}

	reply := m.dispatch(ctx, history, content, modelID, info, false)
	m.settle(convID, reply, modelID)
	return reply, nil
}

// RegenerateMessage discards the target message and everything after it, then
// dispatches a fresh turn from the remaining prefix. Regeneration is
// destructive: the dropped tail is replaced by exactly one new message.
func (m *Manager) RegenerateMessage(ctx context.Context, messageID, modelID string) (Message, error) {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return Message{}, ErrTurnInFlight
	}
	idx := m.findLocked(m.activeID)
	if idx < 0 {
		m.mu.Unlock()
		return Message{}, ErrNoActiveConversation
	}

	conv := &m.conversations[idx]
	k := -1
	for i, msg := range conv.Messages {
		if msg.ID == messageID {
			k = i
			break
		}
	}
	if k < 0 {
		m.mu.Unlock()
		return Message{}, ErrMessageNotFound
	}

	modelID, info := resolveModel(modelID)
	convID := conv.ID

	prefix := make([]Message, k)
	copy(prefix, conv.Messages[:k])
	conv.Messages = prefix
	conv.UpdatedAt = time.Now()
	history := buildHistory(prefix, info)

	m.loading = true
	m.persistLocked()
	m.mu.Unlock()

	reply := m.dispatch(ctx, history, "", modelID, info, true)
	m.settle(convID, reply, modelID)
	return reply, nil
}

// dispatch runs the remote call for a turn and converts the outcome into the
// assistant message to append. Image-generator models divert to the image
// generation path.
func (m *Manager) dispatch(ctx context.Context, history []PromptMessage, prompt, modelID string, info *catalog.ModelInfo, regenerating bool) Message {
	if info != nil && info.ImageGenerator && m.images != nil {
		imageURL, err := m.images.Generate(ctx, prompt, modelID)
		if err != nil {
			m.logf("[Chat] Image generation failed (model %s): %v", modelID, err)
			return newAssistantMessage(classifyError(err, regenerating), StatusError)
		}
		reply := newAssistantMessage("", StatusSent)
		reply.GeneratedImage = imageURL
		reply.OriginalPrompt = prompt
		return reply
	}

	text, err := m.client.Complete(ctx, history, modelID)
	if err != nil {
		m.logf("[Chat] Completion failed (model %s): %v", modelID, err)
		return newAssistantMessage(classifyError(err, regenerating), StatusError)
	}
	return newAssistantMessage(text, StatusSent)
}

// settle appends the turn result and lowers the loading flag. The conversation
// is looked up again by id: it may have been deleted while the call was in
// flight, in which case the result is dropped.
func (m *Manager) settle(convID string, reply Message, modelID string) {
	m.mu.Lock()
	if i := m.findLocked(convID); i >= 0 {
		m.conversations[i].Messages = append(m.conversations[i].Messages, reply)
		m.conversations[i].UpdatedAt = time.Now()
	} else {
		m.logf("[Chat] Conversation %s disappeared mid-turn, dropping reply", convID)
	}
	m.loading = false
	m.persistLocked()
	m.mu.Unlock()

	if reply.Status == StatusSent && m.usage != nil {
		if err := m.usage.RecordTurn(modelID); err != nil {
			m.logf("[Chat] Failed to record usage for %s: %v", modelID, err)
		}
	}
}

func (m *Manager) generateTitle(convID, seed string) {
	title, err := m.titles.GenerateTitle(context.Background(), seed)
	if err != nil {
		// Swallowed: the placeholder title is kept.
		m.logf("[Chat] Title generation failed: %v", err)
		return
	}

	m.mu.Lock()
	if i := m.findLocked(convID); i >= 0 {
		m.conversations[i].Title = title
		m.conversations[i].UpdatedAt = time.Now()
		m.persistLocked()
	}
	m.mu.Unlock()

	if m.notify != nil {
		m.notify()
	}
}

// resolveModel maps an empty or unknown model id to the catalog default.
func resolveModel(modelID string) (string, *catalog.ModelInfo) {
	if modelID == "" {
		modelID = catalog.DefaultModel
	}
	info := catalog.ByID(modelID)
	if info == nil {
		modelID = catalog.DefaultModel
		info = catalog.ByID(modelID)
	}
	return modelID, info
}

func (m *Manager) findLocked(id string) int {
	for i := range m.conversations {
		if m.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) mostRecentLocked() int {
	best := 0
	for i := range m.conversations {
		if m.conversations[i].UpdatedAt.After(m.conversations[best].UpdatedAt) {
			best = i
		}
	}
	return best
}

func (m *Manager) persistLocked() {
	if !m.initialized {
		return
	}
	snapshot := make([]Conversation, len(m.conversations))
	for i, c := range m.conversations {
		snapshot[i] = c.clone()
	}
	m.store.SaveConversations(snapshot)
	m.store.SaveActiveID(m.activeID)
}

func (m *Manager) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}
