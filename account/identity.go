// Package account manages the local user profile shown in the interface: a
// display name and an optional avatar image.
package account

import "context"

// Profile is the user-visible identity attached to the running instance.
type Profile struct {
	DisplayName string `toml:"display_name"`
	PhotoURL    string `toml:"photo_url,omitempty"`
}

// Identity is the contract of a profile backend.
type Identity interface {
	// CurrentUser returns the stored profile; ok is false when none exists.
	CurrentUser() (Profile, bool)
	// UpdateProfile replaces the stored profile.
	UpdateProfile(p Profile) error
	// Clear removes the stored profile.
	Clear() error
}

// BlobStore stores binary attachments (avatar images) and returns a stable
// URL for them.
type BlobStore interface {
	Upload(ctx context.Context, path string) (string, error)
}
