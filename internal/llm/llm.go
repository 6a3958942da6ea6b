package llm

import (
	"context"
	"fmt"
	"time"
)

// Options bound a single model invocation. Timeout is mandatory: the gateway
// refuses unbounded waits.
type Options struct {
	MaxTokens   int
	Temperature float32
	TopP        float32
	Timeout     time.Duration
}

// ImageSource identifies an image for vision calls, either by URL or by raw
// bytes. Both must work: the image may already live in the blob store by the
// time OCR runs.
type ImageSource struct {
	URL      string
	Data     []byte
	MimeType string
}

// TextModel is the generative-model collaborator contract.
type TextModel interface {
	Complete(ctx context.Context, prompt string, opts Options) (Response, error)
}

// VisionModel is the vision-model collaborator contract.
type VisionModel interface {
	Describe(ctx context.Context, img ImageSource, prompt string, opts Options) (Response, error)
}

// ModelError wraps a provider or transport failure. The gateway never retries;
// retry policy belongs to the caller.
type ModelError struct {
	Op  string
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }
