package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func newTestLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	data := "fake video bytes"
	if err := s.Upload(ctx, "abc.mp4", strings.NewReader(data), int64(len(data)), "video/mp4"); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	ok, err := s.Exists(ctx, "abc.mp4")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v; want true", ok, err)
	}

	r, err := s.Open(ctx, "abc.mp4")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	got, _ := io.ReadAll(r)
	if string(got) != data {
		t.Errorf("read back %q, want %q", got, data)
	}

	if err := s.Delete(ctx, "abc.mp4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ok, err = s.Exists(ctx, "abc.mp4")
	if err != nil || ok {
		t.Fatalf("Exists after delete = %v, %v; want false", ok, err)
	}
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	s := newTestLocal(t)
	if err := s.Delete(context.Background(), "never-staged.mp4"); err != nil {
		t.Errorf("Delete of missing object: %v", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	for _, key := range []string{"../escape.mp4", "/etc/passwd", "a/../../b"} {
		if err := s.Upload(ctx, key, strings.NewReader("x"), 1, "video/mp4"); err == nil {
			t.Errorf("Upload(%q) accepted traversal key", key)
		}
	}
}

func TestLocalStorageGetURL(t *testing.T) {
	s := newTestLocal(t)
	if got := s.GetURL("abc.mp4"); got != "/media/abc.mp4" {
		t.Errorf("GetURL = %q", got)
	}
}
