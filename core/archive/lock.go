package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"
	"github.com/pkg/errors"
)

type archiveLock struct {
	mu *filemutex.FileMutex
}

// lockPath lives in the temp dir so lock files never end up in a project.
func lockPath(archivePath string) string {
	sum := sha256.Sum256([]byte(archivePath))
	return filepath.Join(os.TempDir(), "qumopa-"+hex.EncodeToString(sum[:8])+".lock")
}

// lockArchive fails immediately if another run is writing archivePath.
func lockArchive(archivePath string) (*archiveLock, error) {
	mu, err := filemutex.New(lockPath(archivePath))
	if err != nil {
		return nil, errors.Wrap(err, "error creating archive lock")
	}

	if err := mu.TryLock(); err != nil {
		_ = mu.Close()
		if errors.Is(err, filemutex.AlreadyLocked) {
			return nil, errors.Errorf("%s is being written by another process", filepath.Base(archivePath))
		}
		return nil, errors.Wrap(err, "error locking archive")
	}

	return &archiveLock{mu: mu}, nil
}

func (l *archiveLock) release() {
	_ = l.mu.Unlock()
	_ = l.mu.Close()
}
