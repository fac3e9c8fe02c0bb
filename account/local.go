package account

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

const profileFile = "profile.toml"

// LocalIdentity keeps the profile in a TOML file inside the data directory.
// There is no remote account system; the profile exists purely for display.
type LocalIdentity struct {
	dataDir string
}

// NewLocalIdentity creates a profile backend rooted at dataDir.
func NewLocalIdentity(dataDir string) *LocalIdentity {
	return &LocalIdentity{dataDir: dataDir}
}

func (l *LocalIdentity) profilePath() string {
	return filepath.Join(l.dataDir, profileFile)
}

// CurrentUser implements Identity.
func (l *LocalIdentity) CurrentUser() (Profile, bool) {
	var p Profile
	if _, err := toml.DecodeFile(l.profilePath(), &p); err != nil {
		return Profile{}, false
	}
	if p.DisplayName == "" {
		return Profile{}, false
	}
	return p, true
}

// UpdateProfile implements Identity.
func (l *LocalIdentity) UpdateProfile(p Profile) error {
	file, err := os.OpenFile(l.profilePath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open profile file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return nil
}

// Clear implements Identity.
func (l *LocalIdentity) Clear() error {
	err := os.Remove(l.profilePath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// FileBlobStore implements BlobStore by copying files into an uploads
// directory under the data directory and handing back file:// URLs.
type FileBlobStore struct {
	uploadsDir string
}

// NewFileBlobStore creates the uploads directory (0700) when absent.
func NewFileBlobStore(dataDir string) (*FileBlobStore, error) {
	uploadsDir := filepath.Join(dataDir, "uploads")
	if err := os.MkdirAll(uploadsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &FileBlobStore{uploadsDir: uploadsDir}, nil
}

// Upload copies the file at path into the uploads directory under a fresh
// name, keeping the original extension.
func (f *FileBlobStore) Upload(ctx context.Context, path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(path)
	destPath := filepath.Join(f.uploadsDir, name)

	dest, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to copy upload: %w", err)
	}

	return "file://" + destPath, nil
}
