package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failingCloser struct{ closed bool }

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("close failed")
}

func TestCloseOrWarn(t *testing.T) {
	c := &failingCloser{}
	CloseOrWarn(c)
	if !c.closed {
		t.Error("Expected Close to be called")
	}
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	removed, err := RemoveIfExists(path)
	if err != nil || !removed {
		t.Fatalf("Expected file to be removed, got removed=%v err=%v", removed, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be gone")
	}

	removed, err = RemoveIfExists(path)
	if err != nil || removed {
		t.Errorf("Expected no-op for missing file, got removed=%v err=%v", removed, err)
	}
}
