// Package media stores trip cover images as individual files on disk.
// Trips reference images by filename only; raw bytes never enter the JSON
// data file.
package media

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when opening an image that does not exist.
var ErrNotFound = errors.New("media: image not found")

// Store writes images into a single directory with generated names.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a fresh uuid-based filename and returns the name.
// The extension comes from sniffing the content, so a stored name is enough
// to serve the image back with the right content type.
func (s *Store) Save(data []byte) (string, error) {
	name := uuid.NewString() + extensionFor(http.DetectContentType(data))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("media: write image: %w", err)
	}
	return name, nil
}

// Open returns the image bytes and content type for a stored name.
func (s *Store) Open(name string) ([]byte, string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("media: read image: %w", err)
	}
	return data, http.DetectContentType(data), nil
}

// Remove deletes a stored image. Removing a name that is already gone is
// not an error: the caller's goal state is "file absent" either way.
func (s *Store) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("media: remove image: %w", err)
	}
	return nil
}

// extensionFor maps detected content types onto filename extensions.
// Unknown types get ".bin" rather than no extension.
func extensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/gif"):
		return ".gif"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	default:
		return ".bin"
	}
}
