package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"remberify-backend/internal/extract"
	"remberify-backend/internal/quiz"
	"remberify-backend/internal/shared/metrics"
	"remberify-backend/internal/shared/storage/object"
	"remberify-backend/internal/shared/telemetry"
)

// Service coordinates one upload end to end: validation, optional blob
// persistence, text extraction, and summarization. Blob store failures are
// non-fatal; validation and extraction failures abort the ingestion.
type Service struct {
	Extractor *extract.Extractor
	Synth     *quiz.Synthesizer
	Store     object.ObjectStore // nil disables blob persistence
}

// NewService constructs an ingestion Service.
func NewService(extractor *extract.Extractor, synth *quiz.Synthesizer, store object.ObjectStore) *Service {
	return &Service{Extractor: extractor, Synth: synth, Store: store}
}

// Ingest runs the full pipeline for one upload.
func (s *Service) Ingest(ctx context.Context, up RawUpload) (Result, error) {
	started := time.Now()
	metrics.IncIngestionStarted()

	res, err := s.ingest(ctx, up)
	metrics.ObserveIngestionDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncIngestionFailed()
		telemetry.Error("ingestion failed", map[string]any{
			"file_name": up.FileName,
			"kind":      string(up.Kind),
			"error":     err.Error(),
		})
		return Result{}, err
	}

	metrics.IncIngestionCompleted()
	telemetry.Info("ingestion completed", map[string]any{
		"file_name": up.FileName,
		"kind":      string(up.Kind),
		"chars":     res.Chars,
		"persisted": res.BlobURL != "",
		"preview":   telemetry.Preview(res.Content),
	})
	return res, nil
}

func (s *Service) ingest(ctx context.Context, up RawUpload) (Result, error) {
	if !up.Kind.Valid() {
		return Result{}, &extract.ValidationError{Reason: fmt.Sprintf("unsupported content kind: %s", up.Kind)}
	}

	if err := s.validate(up); err != nil {
		return Result{}, err
	}

	blobURL := s.persist(ctx, up)

	src := extract.Source{
		Data:     up.Content,
		Kind:     up.Kind,
		FileName: up.FileName,
	}
	if blobURL != "" && object.IsImageFile(up.FileName) {
		// OCR reads the stored copy instead of re-sending the bytes.
		src.URL = blobURL
	}
	content, err := s.Extractor.Extract(ctx, src)
	if err != nil {
		return Result{}, err
	}

	summary, _ := s.Synth.GenerateSummary(ctx, content.Text)

	return Result{
		Content:         content.Text,
		Summary:         summary,
		KindDescription: content.Description,
		FileName:        up.FileName,
		BlobURL:         blobURL,
		Chars:           content.Chars,
		ProcessedAt:     time.Now().UTC(),
	}, nil
}

// IngestText runs the pipeline for raw text pasted by the subject. No file
// validation and no blob persistence; the readability gate still applies.
func (s *Service) IngestText(ctx context.Context, text string) (Result, error) {
	started := time.Now()
	metrics.IncIngestionStarted()

	content, err := s.Extractor.Extract(ctx, extract.Source{
		Data: []byte(text),
		Kind: extract.KindText,
	})
	metrics.ObserveIngestionDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncIngestionFailed()
		telemetry.Error("text ingestion failed", map[string]any{"error": err.Error()})
		return Result{}, err
	}

	summary, _ := s.Synth.GenerateSummary(ctx, content.Text)

	metrics.IncIngestionCompleted()
	telemetry.Info("text ingestion completed", map[string]any{
		"chars":   content.Chars,
		"preview": telemetry.Preview(content.Text),
	})
	return Result{
		Content:         content.Text,
		Summary:         summary,
		KindDescription: "Text content",
		Chars:           content.Chars,
		ProcessedAt:     time.Now().UTC(),
	}, nil
}

// OpenBlob opens a stored blob for reading.
func (s *Service) OpenBlob(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.Store == nil {
		return nil, &object.StorageError{Op: "open", Err: errors.New("no blob store configured")}
	}
	return s.Store.Open(ctx, key)
}

// validate stages the payload in a temp file and runs the upload gate
// against it. The temp file never outlives the call.
func (s *Service) validate(up RawUpload) error {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(up.FileName))
	if err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	_, werr := tmp.Write(up.Content)
	cerr := tmp.Close()
	if werr != nil {
		return fmt.Errorf("stage upload: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("stage upload: %w", cerr)
	}

	if res := extract.ValidateFile(path, nil); !res.Valid {
		return &extract.ValidationError{Reason: res.Reason}
	}
	return nil
}

// persist writes the payload to the blob store. Storage failures are logged
// and swallowed; ingestion continues without a blob URL.
func (s *Service) persist(ctx context.Context, up RawUpload) string {
	if s.Store == nil {
		return ""
	}

	obj, err := s.Store.Put(ctx, up.OwnerID, up.FileName, bytes.NewReader(up.Content))
	if err != nil {
		var serr *object.StorageError
		if !errors.As(err, &serr) {
			serr = &object.StorageError{Op: "put", Err: err}
		}
		telemetry.Error("blob persistence failed, continuing without URL", map[string]any{
			"file_name": up.FileName,
			"op":        serr.Op,
			"error":     serr.Error(),
		})
		return ""
	}
	return obj.URL
}
