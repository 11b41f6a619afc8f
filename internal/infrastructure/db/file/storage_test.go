package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStorage_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "storage.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetItem(ctx, "token", "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetItem(ctx, "lang", "es"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, found, err := reopened.GetItem(ctx, "token")
	if err != nil || !found || value != "abc" {
		t.Fatalf("unexpected get after reopen: %q %v %v", value, found, err)
	}

	if err := reopened.RemoveItem(ctx, "token"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	again, err := Open(path)
	if err != nil {
		t.Fatalf("open again: %v", err)
	}
	if _, found, _ := again.GetItem(ctx, "token"); found {
		t.Fatalf("expected token removed on disk")
	}
	if value, _, _ := again.GetItem(ctx, "lang"); value != "es" {
		t.Fatalf("expected other keys kept, got %q", value)
	}
}

func TestOpen_EmptyAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(empty); err != nil {
		t.Fatalf("empty file should open: %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(corrupt); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestStorage_Ping(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "storage.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
