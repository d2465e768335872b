package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

var _ domain.DocumentStore = (*FileStore)(nil)

// FileStore writes one PDF per pack into a directory, named
// <site>-<key>-pack.pdf. A document is written to a temporary file in the
// same directory and renamed into place, so a failed write never leaves a
// truncated file behind.
type FileStore struct {
	dir  string
	site string
	log  *logger.Logger
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir, site string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, site: site, log: log}
}

// Dir returns the output directory.
func (s *FileStore) Dir() string { return s.dir }

// Path returns where the document for packKey is written.
func (s *FileStore) Path(packKey string) string {
	return filepath.Join(s.dir, FileName(s.site, packKey))
}

// FileName builds the document file name for a pack.
func FileName(site, packKey string) string {
	if site == "" {
		return packKey + "-pack.pdf"
	}
	return fmt.Sprintf("%s-%s-pack.pdf", site, packKey)
}

// Save writes data for packKey and returns the final path.
func (s *FileStore) Save(ctx context.Context, packKey string, data []byte) (string, error) {
	if err := checkKey(packKey); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+packKey+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	// Cleared once the rename succeeds.
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", packKey, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", packKey, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", packKey, err)
	}

	path := s.Path(packKey)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("moving %s into place: %w", packKey, err)
	}
	tmpName = ""

	s.log.Debug("wrote %s (%d bytes)", path, len(data))
	return path, nil
}

// checkKey rejects keys that cannot be used as a file name component.
func checkKey(packKey string) error {
	if packKey == "" || strings.ContainsAny(packKey, `/\`) || packKey == "." || packKey == ".." {
		return fmt.Errorf("%w: bad key %q", domain.ErrInvalidPack, packKey)
	}
	return nil
}
