package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"remberify-backend/internal/shared/storage/object"
)

func TestPutAndOpen(t *testing.T) {
	store := New(t.TempDir(), "http://files.local")
	ctx := context.Background()

	obj, err := store.Put(ctx, "user-1", "notes.txt", strings.NewReader("hello notes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if obj.Key == "" {
		t.Fatalf("expected key assigned")
	}
	if !strings.HasPrefix(obj.URL, "http://files.local/") {
		t.Fatalf("expected URL from base, got %q", obj.URL)
	}
	if obj.SizeBytes != int64(len("hello notes")) {
		t.Fatalf("expected size recorded, got %d", obj.SizeBytes)
	}

	rc, err := store.Open(ctx, obj.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello notes" {
		t.Fatalf("round trip mismatch: %q", data)
	}
}

func TestPutWithoutBaseURL(t *testing.T) {
	store := New(t.TempDir(), "")

	obj, err := store.Put(context.Background(), "", "notes.txt", strings.NewReader("anonymous upload"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if obj.URL != "" {
		t.Fatalf("expected no URL without a base, got %q", obj.URL)
	}
	if !strings.HasPrefix(obj.Key, "uploads/") {
		t.Fatalf("expected anonymous key, got %q", obj.Key)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir(), "")

	_, err := store.Open(context.Background(), "../outside.txt")
	var serr *object.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestOpenMissingKey(t *testing.T) {
	store := New(t.TempDir(), "")

	_, err := store.Open(context.Background(), "users/none/missing.txt")
	var serr *object.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}
