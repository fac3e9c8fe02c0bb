package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const instanceLockFile = "willpro.lock"

// LockInstance creates a global lock to ensure single-instance operation.
// Lock file: <data_dir>/willpro.lock, content: PID of the running instance.
// Two instances mutating the same conversation files would silently clobber
// each other's saves.
func (s *FileStore) LockInstance() error {
	lockPath := filepath.Join(s.dataDir, instanceLockFile)
	pid := os.Getpid()

	// Write PID to lock file (0600 - user-only access)
	return os.WriteFile(lockPath, []byte(fmt.Sprintf("%d", pid)), 0600)
}

// UnlockInstance removes the global instance lock.
func (s *FileStore) UnlockInstance() error {
	lockPath := filepath.Join(s.dataDir, instanceLockFile)

	// Ignore error if file doesn't exist
	err := os.Remove(lockPath)
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

// CheckInstanceLock checks if another instance is currently running.
// Returns (isLocked bool, runningPID int, err error).
func (s *FileStore) CheckInstanceLock() (bool, int, error) {
	lockPath := filepath.Join(s.dataDir, instanceLockFile)

	data, err := os.ReadFile(lockPath)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to read lock file: %w", err)
	}

	var pid int
	if _, err := fmt.Sscanf(string(data), "%d", &pid); err != nil {
		// Invalid lock file, clean it up
		_ = os.Remove(lockPath)
		return false, 0, nil
	}

	// os.FindProcess always succeeds on Unix; used here as a cross-platform
	// basic liveness check without signaling.
	if _, err := os.FindProcess(pid); err != nil {
		_ = os.Remove(lockPath)
		return false, 0, nil
	}

	return true, pid, nil
}
