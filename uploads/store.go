// Package uploads stores product images on the local filesystem.
package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cantina-api/models"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path under which stored images are served
const PublicPrefix = "/uploads/"

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store writes uploaded images into one directory
type Store struct {
	dir string
}

// NewStore creates dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Place picks a random name for an upload called filename and returns both
// its public path, e.g. /uploads/<uuid>.png, and the file to write it to.
func (s *Store) Place(filename string) (publicPath, diskPath string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", "", models.NewValidationError("imagen", "only .jpg, .jpeg, .png, .gif and .webp files are allowed")
	}
	name := uuid.NewString() + ext
	return PublicPrefix + name, filepath.Join(s.dir, name), nil
}

// Remove deletes the file behind a public path returned by Place. Paths
// outside the store and files already gone are ignored.
func (s *Store) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}
	name := filepath.Base(publicPath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
