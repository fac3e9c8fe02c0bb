package chat

import "errors"

// Precondition errors. These are the only errors SendMessage and
// RegenerateMessage may return; remote failures always resolve into
// error-status assistant messages instead.
var (
	// ErrTurnInFlight rejects a send/regenerate while a previous turn for the
	// active conversation has not settled.
	ErrTurnInFlight = errors.New("a turn is already in flight")
	// ErrNoActiveConversation signals a violated invariant: operations that
	// need an active conversation found none.
	ErrNoActiveConversation = errors.New("no active conversation")
	// ErrMessageNotFound is returned by RegenerateMessage for an unknown id.
	ErrMessageNotFound = errors.New("message not found in active conversation")
)

// User-facing texts for failed turns, keyed by HTTP status classification.
const (
	rateLimitedText  = "Too many requests have been sent to the AI. Please wait a moment before trying again, or check your API usage limits."
	upstreamDownText = "The AI provider is currently experiencing issues. Please try again in a moment."
	sendFailedText   = "Sorry, I encountered an error while processing your message. Please try again."
	regenFailedText  = "Sorry, I encountered an error while regenerating the message. Please try again."
)

// classifyError maps a completion failure to the text of the synthetic
// assistant error message. Rate limiting (429) and upstream unavailability
// (502) get specific wording; everything else, empty responses included, is
// generic.
func classifyError(err error, regenerating bool) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		switch remote.StatusCode {
		case 429:
			return rateLimitedText
		case 502:
			return upstreamDownText
		}
	}
	if regenerating {
		return regenFailedText
	}
	return sendFailedText
}
