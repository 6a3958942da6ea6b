package ingest

import (
	"path/filepath"
	"strings"
	"time"

	"remberify-backend/internal/extract"
)

// RawUpload is one inbound payload to ingest.
type RawUpload struct {
	Content  []byte
	Kind     extract.Kind
	FileName string
	OwnerID  string
}

// Result is the outcome of a successful ingestion. BlobURL is empty when the
// payload was not persisted to the blob store.
type Result struct {
	Content         string    `json:"content"`
	Summary         string    `json:"summary"`
	KindDescription string    `json:"content_type"`
	FileName        string    `json:"file_name,omitempty"`
	BlobURL         string    `json:"file_url,omitempty"`
	Chars           int       `json:"character_count"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// KindFromFileName infers the upload kind from the file extension.
func KindFromFileName(name string) (extract.Kind, bool) {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".") {
	case "txt":
		return extract.KindText, true
	case "pdf":
		return extract.KindPDF, true
	case "png", "jpg", "jpeg":
		return extract.KindImage, true
	}
	return "", false
}
