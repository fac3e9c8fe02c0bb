package chat

// Store is the persistence contract for conversation state.
//
// The interface lives in this package (rather than in storage) so that storage
// backends can depend on the chat types without creating an import cycle.
//
// Implementations are expected to be best-effort: failures are logged on their
// side and never surfaced here. Loads degrade to the empty state, saves are
// swallowed. Saving an empty collection must clear the underlying key rather
// than write an empty-list marker, so "no conversations" stays distinguishable
// from "store never initialized".
type Store interface {
	// SaveConversations replaces the persisted conversation set.
	SaveConversations(conversations []Conversation)
	// LoadConversations returns the persisted set, or nil when absent/corrupt.
	LoadConversations() []Conversation
	// SaveActiveID persists the active-conversation pointer. An empty id
	// clears it.
	SaveActiveID(id string)
	// LoadActiveID returns the persisted pointer, or "" when absent.
	LoadActiveID() string
}
