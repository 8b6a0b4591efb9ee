package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestCopyFileVerifiedKeepsModeOnDisk(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.sh")
	dst := filepath.Join(dir, "dst.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(afero.NewOsFs(), src, dst); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	// Check executable bits are set (umask may clear some bits).
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected executable bits, got %o", info.Mode().Perm())
	}
}

func TestCopyFileVerified(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("verified copy content")
	if err := afero.WriteFile(fs, "/desk/src.bin", content, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/other", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(fs, "/desk/src.bin", "/other/dst.bin"); err != nil {
		t.Fatal(err)
	}

	got, err := afero.ReadFile(fs, "/other/dst.bin")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
	srcSum, _ := HashFile(fs, "/desk/src.bin")
	dstSum, _ := HashFile(fs, "/other/dst.bin")
	if string(srcSum) != string(dstSum) {
		t.Fatal("hash mismatch after verified copy")
	}
}

func TestCopyFileVerified_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := CopyFileVerified(fs, "/nonexistent", "/dst.bin"); err == nil {
		t.Fatal("expected error for missing source")
	}
	if exists, _ := afero.Exists(fs, "/dst.bin"); exists {
		t.Fatal("destination must not be created")
	}
}

func TestCopyFileVerified_ExistingTargetUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/src", []byte("new"), 0o644)
	_ = afero.WriteFile(fs, "/dst", []byte("old"), 0o644)

	if err := CopyFileVerified(fs, "/src", "/dst"); err == nil {
		t.Fatal("expected error for existing target")
	}
	got, err := afero.ReadFile(fs, "/dst")
	if err != nil || string(got) != "old" {
		t.Fatalf("existing target must survive, got %q err=%v", got, err)
	}
}
