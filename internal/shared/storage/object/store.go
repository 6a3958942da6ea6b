package object

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Object describes a stored blob.
type Object struct {
	Key       string
	URL       string
	SizeBytes int64
	MimeType  string
}

// ObjectStore defines the contract for saving and retrieving binary objects.
// Ingestion treats this collaborator as optional: a failed Put degrades to
// local-only processing, it never fails the request.
type ObjectStore interface {
	// Put stores the reader contents under an owner-scoped key and returns
	// the stored object, including a public URL when the store can serve one.
	Put(ctx context.Context, ownerID string, fileName string, r io.Reader) (Object, error)
	// Open opens a stored object for reading.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// StorageError wraps a failed object-store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ContentTypeByExtension maps a file name to a MIME content type.
func ContentTypeByExtension(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// IsImageFile reports whether the file name carries an image extension.
func IsImageFile(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	default:
		return false
	}
}
