package llm

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

type responseKind int

const (
	kindSingle responseKind = iota + 1
	kindChunked
	kindStreamed
)

// ChunkStream yields response chunks in delivery order. Next returns io.EOF
// when the stream is exhausted.
type ChunkStream interface {
	Next() ([]byte, error)
}

// Response is the provider-shaped output of one model call: a single string,
// a finite chunk sequence, or a lazy stream. Callers normalize through Text.
type Response struct {
	kind   responseKind
	single string
	chunks [][]byte
	stream ChunkStream
}

// Single wraps a complete text response.
func Single(text string) Response {
	return Response{kind: kindSingle, single: text}
}

// Chunked wraps a finite sequence of response chunks.
func Chunked(chunks ...[]byte) Response {
	return Response{kind: kindChunked, chunks: chunks}
}

// Streamed wraps a lazy chunk stream.
func Streamed(stream ChunkStream) Response {
	return Response{kind: kindStreamed, stream: stream}
}

// Text concatenates the response in delivery order with no separator. A chunk
// that is not valid UTF-8 is converted best-effort rather than aborting the
// whole response.
func (r Response) Text() (string, error) {
	switch r.kind {
	case kindSingle:
		return r.single, nil
	case kindChunked:
		var b strings.Builder
		for _, chunk := range r.chunks {
			b.WriteString(decodeChunk(chunk))
		}
		return b.String(), nil
	case kindStreamed:
		var b strings.Builder
		for {
			chunk, err := r.stream.Next()
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			if err != nil {
				return "", err
			}
			b.WriteString(decodeChunk(chunk))
		}
	default:
		return "", errors.New("empty model response")
	}
}

func decodeChunk(chunk []byte) string {
	if utf8.Valid(chunk) {
		return string(chunk)
	}
	return strings.ToValidUTF8(string(chunk), "�")
}
