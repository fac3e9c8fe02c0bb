package ui

import (
	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/storage"
)

// RefreshMsg asks the view to re-read manager state. Sent from outside the
// update loop when background work (title generation) lands.
type RefreshMsg struct{}

// turnDoneMsg reports a settled send or regenerate.
type turnDoneMsg struct {
	reply chat.Message
	err   error
}

// statsLoadedMsg delivers the usage ledger for the stats overlay.
type statsLoadedMsg struct {
	rows []storage.ModelUsage
	err  error
}

// exportDoneMsg reports a finished transcript export.
type exportDoneMsg struct {
	path string
	err  error
}

// clipboardDoneMsg reports a finished clipboard copy.
type clipboardDoneMsg struct {
	err error
}

// attachDoneMsg reports a staged image attachment.
type attachDoneMsg struct {
	dataURL string
	err     error
}

// profileDoneMsg reports a finished profile update or clear.
type profileDoneMsg struct {
	name    string
	cleared bool
	err     error
}

// modelSavedMsg reports whether a picker selection was persisted as the
// configured default.
type modelSavedMsg struct {
	err error
}
