package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"remberify-backend/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a new local object store rooted at baseDir. baseURL, when
// non-empty, is prepended to storage keys to form public URLs.
func New(baseDir, baseURL string) object.ObjectStore {
	return &Store{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Put writes the reader to disk under an owner-scoped key.
func (s *Store) Put(ctx context.Context, ownerID string, fileName string, r io.Reader) (object.Object, error) {
	key, err := object.BuildKey(ownerID, fileName)
	if err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: err}
	}

	if err := ctx.Err(); err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: err}
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: fmt.Errorf("mkdir: %w", err)}
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: fmt.Errorf("open file: %w", err)}
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return object.Object{}, &object.StorageError{Op: "put", Err: fmt.Errorf("write body: %w", err)}
	}

	url := ""
	if s.baseURL != "" {
		url = s.baseURL + "/" + key
	}
	return object.Object{
		Key:       key,
		URL:       url,
		SizeBytes: written,
		MimeType:  object.ContentTypeByExtension(fileName),
	}, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, &object.StorageError{Op: "open", Err: err}
	}

	clean := filepath.Clean(filepath.FromSlash(storageKey))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, &object.StorageError{Op: "open", Err: fmt.Errorf("invalid storage key")}
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, &object.StorageError{Op: "open", Err: err}
	}
	return f, nil
}

var _ object.ObjectStore = (*Store)(nil)
