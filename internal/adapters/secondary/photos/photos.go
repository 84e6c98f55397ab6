// Package photos stores members' profile photos in the application's photo
// directory.
package photos

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Storage struct {
	dir string
	log *zap.SugaredLogger
}

func NewStorage(dir string, log *zap.SugaredLogger) *Storage {
	return &Storage{dir: dir, log: log}
}

// CopyPhoto copies the photo at sourcePath into the photo directory, named
// after the owning member, and returns the stored path. An existing photo for
// the same member is overwritten.
func (s *Storage) CopyPhoto(sourcePath string, name string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}

	target := filepath.Join(s.dir, name+filepath.Ext(sourcePath))
	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy photo: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	s.log.Infow("photo stored", "source", sourcePath, "target", target)
	return target, nil
}
