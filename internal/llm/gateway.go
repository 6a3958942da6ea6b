package llm

import (
	"context"
	"errors"
	"time"

	"remberify-backend/internal/shared/metrics"
)

// Gateway is the single choke point for external model calls. It normalizes
// the provider response shapes into plain text and runs every call detached:
// an aborted request stops the wait, never the in-flight provider exchange.
type Gateway struct {
	text   TextModel
	vision VisionModel
}

// NewGateway wires the gateway with its model collaborators. Either may be
// nil; the corresponding invocations then fail with ModelError.
func NewGateway(text TextModel, vision VisionModel) *Gateway {
	return &Gateway{text: text, vision: vision}
}

var errNoTimeout = errors.New("options timeout is required")

// InvokeText runs a generative completion and returns the normalized text.
func (g *Gateway) InvokeText(ctx context.Context, prompt string, opts Options) (string, error) {
	if g.text == nil {
		return "", &ModelError{Op: "complete", Err: errors.New("no text model configured")}
	}
	return g.invoke(ctx, "complete", opts, func(callCtx context.Context) (Response, error) {
		return g.text.Complete(callCtx, prompt, opts)
	})
}

// InvokeVision runs a vision call against an image URL or byte payload and
// returns the normalized text.
func (g *Gateway) InvokeVision(ctx context.Context, img ImageSource, prompt string, opts Options) (string, error) {
	if g.vision == nil {
		return "", &ModelError{Op: "describe", Err: errors.New("no vision model configured")}
	}
	return g.invoke(ctx, "describe", opts, func(callCtx context.Context) (Response, error) {
		return g.vision.Describe(callCtx, img, prompt, opts)
	})
}

func (g *Gateway) invoke(ctx context.Context, op string, opts Options, call func(context.Context) (Response, error)) (string, error) {
	if opts.Timeout <= 0 {
		return "", &ModelError{Op: op, Err: errNoTimeout}
	}

	metrics.IncModelCall()
	text, err := runDetached(ctx, opts.Timeout, func(callCtx context.Context) (string, error) {
		resp, err := call(callCtx)
		if err != nil {
			return "", err
		}
		return resp.Text()
	})
	if err != nil {
		metrics.IncModelCallFailed()
		var modelErr *ModelError
		if errors.As(err, &modelErr) {
			return "", err
		}
		return "", &ModelError{Op: op, Err: err}
	}
	return text, nil
}

// runDetached executes fn on its own goroutine under an independent deadline.
// The parent context controls only how long the caller waits: once the parent
// is canceled the call keeps running to completion on its detached context,
// so a torn-down request can never corrupt a provider exchange mid-flight.
func runDetached(parent context.Context, timeout time.Duration, fn func(context.Context) (string, error)) (string, error) {
	callCtx, cancel := context.WithTimeout(context.Background(), timeout)

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		defer cancel()
		text, err := fn(callCtx)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-parent.Done():
		return "", parent.Err()
	}
}
