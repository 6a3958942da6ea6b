package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"remberify-backend/internal/llm"
	"remberify-backend/internal/shared/storage/object"
)

// Kind is the declared upload kind.
type Kind string

const (
	KindText  Kind = "text"
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// Description returns the human-readable kind description.
func (k Kind) Description() string {
	switch k {
	case KindText:
		return "Text file"
	case KindPDF:
		return "PDF document"
	case KindImage:
		return "Image with text"
	default:
		return "Unknown content"
	}
}

// Valid reports whether the kind belongs to the supported set.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindPDF, KindImage:
		return true
	}
	return false
}

// minReadableChars is the readability threshold: shorter trimmed output means
// extraction produced nothing usable.
const minReadableChars = 10

const ocrPrompt = "This image may contain text, diagrams, or educational content. " +
	"Please extract all visible text and describe any visual elements."

// ExtractionError means a well-formed file yielded no readable content.
// Not retryable without different input.
type ExtractionError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("extract %s: %s", e.Kind, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Source carries one raw payload for extraction. URL is set when the image
// already lives in the blob store; OCR then reads it from there instead of
// re-sending the bytes.
type Source struct {
	Data     []byte
	Kind     Kind
	FileName string
	URL      string
}

// Content is the extracted plain text plus its provenance.
type Content struct {
	Text        string
	Kind        Kind
	Description string
	Chars       int
}

// Extractor converts raw uploads into plain text. Image OCR delegates to the
// model gateway.
type Extractor struct {
	Gateway       *llm.Gateway
	VisionTimeout time.Duration
}

// Extract dispatches on the declared kind and enforces the readability
// post-condition shared by all strategies.
func (e *Extractor) Extract(ctx context.Context, src Source) (Content, error) {
	var text string
	var err error
	switch src.Kind {
	case KindText:
		text, err = extractText(src.Data)
	case KindPDF:
		text, err = extractPDF(src.Data)
	case KindImage:
		text, err = e.extractImage(ctx, src)
	default:
		return Content{}, &ValidationError{Reason: fmt.Sprintf("unsupported content kind: %s", src.Kind)}
	}
	if err != nil {
		return Content{}, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minReadableChars {
		return Content{}, &ExtractionError{Kind: src.Kind, Reason: "no readable content"}
	}

	return Content{
		Text:        text,
		Kind:        src.Kind,
		Description: src.Kind.Description(),
		Chars:       utf8.RuneCountInString(text),
	}, nil
}

// extractText passes UTF-8 text through unchanged.
func extractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &ExtractionError{Kind: KindText, Reason: "invalid UTF-8 encoding"}
	}
	return string(data), nil
}

// extractPDF pulls text page by page. Pages yielding no text are skipped;
// each non-empty page is prefixed with a page marker in page order.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindPDF, Reason: "parse pdf", Err: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n%s", i, text)
	}
	return strings.TrimSpace(b.String()), nil
}

func (e *Extractor) extractImage(ctx context.Context, src Source) (string, error) {
	if e.Gateway == nil {
		return "", &ExtractionError{Kind: KindImage, Reason: "no vision gateway configured"}
	}

	img := llm.ImageSource{
		URL:      src.URL,
		Data:     src.Data,
		MimeType: object.ContentTypeByExtension(src.FileName),
	}
	text, err := e.Gateway.InvokeVision(ctx, img, ocrPrompt, llm.Options{
		MaxTokens: 500,
		Timeout:   e.VisionTimeout,
	})
	if err != nil {
		return "", &ExtractionError{Kind: KindImage, Reason: "ocr failed", Err: err}
	}
	return strings.TrimSpace(text), nil
}
