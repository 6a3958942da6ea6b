package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"remberify-backend/internal/llm"
)

// Client implements llm.TextModel and llm.VisionModel on OpenAI Chat
// Completions. With streaming enabled, completions surface as the Streamed
// response variant; otherwise they are Single.
type Client struct {
	client *openai.Client
	model  string
	stream bool
}

// NewClient constructs a provider client for the given model.
func NewClient(apiKey, model string, stream bool) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
		stream: stream,
	}, nil
}

// Complete runs a chat completion for the prompt.
func (c *Client) Complete(ctx context.Context, prompt string, opts llm.Options) (llm.Response, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	}

	if c.stream {
		stream, err := c.client.CreateChatCompletionStream(ctx, req)
		if err != nil {
			return llm.Response{}, fmt.Errorf("openai stream: %w", err)
		}
		return llm.Streamed(&chunkStream{stream: stream}), nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return llm.Response{}, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return llm.Response{}, fmt.Errorf("openai response missing choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return llm.Response{}, fmt.Errorf("openai response empty content")
	}
	return llm.Single(content), nil
}

// Describe runs a vision chat completion against an image URL or byte payload.
func (c *Client) Describe(ctx context.Context, img llm.ImageSource, prompt string, opts llm.Options) (llm.Response, error) {
	url := img.URL
	if url == "" {
		if len(img.Data) == 0 {
			return llm.Response{}, fmt.Errorf("image source has neither URL nor data")
		}
		mime := img.MimeType
		if mime == "" {
			mime = http.DetectContentType(img.Data)
		}
		url = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: url},
					},
				},
			},
		},
		MaxTokens: opts.MaxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return llm.Response{}, fmt.Errorf("openai vision: %w", err)
	}
	if len(resp.Choices) == 0 {
		return llm.Response{}, fmt.Errorf("openai response missing choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return llm.Response{}, fmt.Errorf("openai response empty content")
	}
	return llm.Single(content), nil
}

type chunkStream struct {
	stream *openai.ChatCompletionStream
}

func (s *chunkStream) Next() ([]byte, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			_ = s.stream.Close()
			return nil, io.EOF
		}
		if err != nil {
			_ = s.stream.Close()
			return nil, fmt.Errorf("openai stream recv: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		return []byte(delta), nil
	}
}

var (
	_ llm.TextModel   = (*Client)(nil)
	_ llm.VisionModel = (*Client)(nil)
)
