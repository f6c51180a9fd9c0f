package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return store
}

func TestSave_KeyFollowsFolderTimestampNameScheme(t *testing.T) {
	store := newTestStore(t)

	key, err := store.Save("bundles", "foto.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	want := fmt.Sprintf("bundles/%d_foto.png", int64(1700000000000))
	if key != want {
		t.Fatalf("key: got %q, want %q", key, want)
	}

	data, err := os.ReadFile(filepath.Join(store.baseDir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("content: got %q", data)
	}
}

func TestSave_SanitizesPathSeparators(t *testing.T) {
	store := newTestStore(t)

	key, err := store.Save("products", "../evil/name.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(key, "..") {
		t.Fatalf("key escaped base dir: %q", key)
	}
	if !strings.HasPrefix(key, "products/") {
		t.Fatalf("key left its folder: %q", key)
	}
}

func TestDelete_RemovesObject(t *testing.T) {
	store := newTestStore(t)

	key, err := store.Save("packages", "a.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.baseDir, filepath.FromSlash(key))); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("object still exists: %v", err)
	}
}

func TestDelete_MissingObjectReportsNotFound(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete("products/123_nope.png"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestDelete_RejectsTraversalKeys(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete("../outside.png"); err == nil || errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("traversal key must be rejected outright, got %v", err)
	}
}

func TestURL_JoinsPublicPrefix(t *testing.T) {
	store := newTestStore(t)

	if got := store.URL("products/1_a.png"); got != "/uploads/products/1_a.png" {
		t.Fatalf("url: got %q", got)
	}
	if got := store.URL(""); got != "" {
		t.Fatalf("empty key must yield empty url, got %q", got)
	}
}
