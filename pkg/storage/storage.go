package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// Store persists uploaded files. Keys follow the scheme
// "{folder}/{timestamp}_{originalFilename}".
type Store interface {
	// Save writes the content and returns the generated key.
	Save(folder, filename string, content io.Reader) (string, error)
	Delete(key string) error
	// URL resolves a stored key to a fetchable path.
	URL(key string) string
}

// DiskStore keeps objects on the local filesystem under a base directory.
// The directory is served statically by the HTTP layer.
type DiskStore struct {
	baseDir   string
	publicURL string
	now       func() time.Time
}

func NewDiskStore(baseDir, publicURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &DiskStore{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}, nil
}

func (s *DiskStore) Save(folder, filename string, content io.Reader) (string, error) {
	folder = sanitizeSegment(folder)
	filename = sanitizeSegment(filepath.Base(filename))
	if folder == "" || filename == "" {
		return "", errors.New("storage: folder and filename required")
	}

	key := fmt.Sprintf("%s/%d_%s", folder, s.now().UnixMilli(), filename)

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create folder: %w", err)
	}

	f, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil {
		return "", fmt.Errorf("storage: create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("storage: write object: %w", err)
	}
	return key, nil
}

func (s *DiskStore) Delete(key string) error {
	clean := path.Clean(key)
	if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return errors.New("storage: invalid key")
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
	if errors.Is(err, os.ErrNotExist) {
		return ErrObjectNotFound
	}
	return err
}

func (s *DiskStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicURL + "/" + key
}

// sanitizeSegment strips characters that would break the key scheme.
func sanitizeSegment(seg string) string {
	seg = strings.TrimSpace(seg)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	return replacer.Replace(seg)
}
