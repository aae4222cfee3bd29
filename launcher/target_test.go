package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestValidate_EmptyPath tests that an empty selection is refused
func TestValidate_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "   ", "\t"} {
		_, err := Validate(path)
		if !errors.Is(err, ErrNoTarget) {
			t.Errorf("Validate(%q) = %v, want ErrNoTarget", path, err)
		}
	}
}

// TestValidate_MissingFile tests that a nonexistent path is refused
func TestValidate_MissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "missing.exe"))
	if err == nil {
		t.Error("Validate should fail for a missing file")
	}
}

// TestValidate_Directory tests that a directory is not a valid target
func TestValidate_Directory(t *testing.T) {
	_, err := Validate(t.TempDir())
	if !errors.Is(err, ErrNotAFile) {
		t.Errorf("Validate(dir) = %v, want ErrNotAFile", err)
	}
}

// TestValidate_OK tests a valid selection
func TestValidate_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.exe")
	content := []byte("MZ fake executable")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	target, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if !filepath.IsAbs(target.Path) {
		t.Errorf("Target path should be absolute, got %s", target.Path)
	}
	if target.Kind != KindExecutable {
		t.Errorf("Kind = %s, want %s", target.Kind, KindExecutable)
	}
	if target.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", target.Size, len(content))
	}
}

// TestDetectKind tests extension classification
func TestDetectKind(t *testing.T) {
	tests := []struct {
		path string
		want TargetKind
	}{
		{"game.exe", KindExecutable},
		{"GAME.EXE", KindExecutable},
		{"setup.msi", KindInstaller},
		{"install.bat", KindBatch},
		{"install.cmd", KindBatch},
		{"bundle.zip", KindArchive},
		{"readme.txt", KindUnknown},
		{"noext", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectKind(tt.path); got != tt.want {
				t.Errorf("DetectKind(%s) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

// TestHasPEHeader tests the MZ magic check
func TestHasPEHeader(t *testing.T) {
	dir := t.TempDir()

	pePath := filepath.Join(dir, "real.exe")
	if err := os.WriteFile(pePath, []byte("MZ\x90\x00rest of the header"), 0644); err != nil {
		t.Fatal(err)
	}

	textPath := filepath.Join(dir, "fake.exe")
	if err := os.WriteFile(textPath, []byte("#!/bin/sh\necho hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok, err := HasPEHeader(pePath); err != nil || !ok {
		t.Errorf("HasPEHeader(MZ file) = %v, %v, want true", ok, err)
	}
	if ok, err := HasPEHeader(textPath); err != nil || ok {
		t.Errorf("HasPEHeader(script) = %v, %v, want false", ok, err)
	}
	if _, err := HasPEHeader(filepath.Join(dir, "missing.exe")); err == nil {
		t.Error("HasPEHeader should fail for a missing file")
	}
}
