package datalab

import (
	"fmt"
	"os"
	"path/filepath"

	"GuardianesDelFuego/internal/constants"

	"github.com/atotto/clipboard"
	"github.com/gofrs/flock"
)

// Clipboard copies text somewhere the user can paste it.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Saver stores a named blob and returns where it went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// FileExporter writes exports into Dir.
type FileExporter struct {
	Dir string
}

// Save writes data to Dir/name. Concurrent exporters (several SSH sessions
// sharing one folder) are serialized with a lock file, and the file appears
// atomically via rename.
func (e FileExporter) Save(name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid export name %q", name)
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export folder: %w", err)
	}

	lock := flock.New(filepath.Join(e.Dir, constants.ExportLockName))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("locking export folder: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(e.Dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	dest := filepath.Join(e.Dir, name)
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return dest, nil
}
