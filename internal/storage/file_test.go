package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/recipepacks/internal/logger"
)

func TestFileStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "guides")
	store := NewFileStore(dir, "proteincookies", logger.New(logger.LevelOff, nil))

	path, err := store.Save(context.Background(), "no-bake", []byte("first"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	want := filepath.Join(dir, "proteincookies-no-bake-pack.pdf")
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}

	// Overwrite in place.
	if _, err := store.Save(context.Background(), "no-bake", []byte("second")); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("content = %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the document in %s, found %d entries", dir, len(entries))
	}
}

func TestFileStoreCancelled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store := NewFileStore(dir, "site", logger.New(logger.LevelOff, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "starter", []byte("x")); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("nothing should be created for a cancelled save")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		site, key, want string
	}{
		{"proteincookies", "starter", "proteincookies-starter-pack.pdf"},
		{"", "kids", "kids-pack.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.site, tt.key); got != tt.want {
			t.Fatalf("FileName(%q, %q) = %q, want %q", tt.site, tt.key, got, tt.want)
		}
	}
}
