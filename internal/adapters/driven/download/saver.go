// Package download saves exported files on the local filesystem.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
)

// Ensure FileSaver implements the interface.
var _ driven.FileSaver = (*FileSaver)(nil)

// ErrInvalidName is returned for names that are empty or not a plain file name.
var ErrInvalidName = errors.New("invalid file name")

// FileSaver writes files into a single directory.
// Existing files with the same name are replaced.
type FileSaver struct {
	dir string
}

// NewFileSaver creates a saver writing into dir.
// An empty dir means the current working directory.
func NewFileSaver(dir string) *FileSaver {
	if dir == "" {
		dir = "."
	}
	return &FileSaver{dir: dir}
}

// Dir returns the target directory.
func (s *FileSaver) Dir() string {
	return s.dir
}

// Save writes data as name inside the target directory.
// The file is written under a temporary name and renamed into place so
// a failed write never leaves a truncated export behind.
func (s *FileSaver) Save(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}
