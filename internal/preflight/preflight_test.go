package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"deskorg/internal/config"
	"deskorg/internal/faults"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess(afero.NewOsFs(), "test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "read/write ok") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess(afero.NewOsFs(), "test", filepath.Join(t.TempDir(), "nope"), false)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess(afero.NewOsFs(), "test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	result := CheckDirectoryAccess(afero.NewMemMapFs(), "test", "  ", false)
	if result.Passed {
		t.Fatal("expected failure for blank path")
	}
}

func TestCheckDirectoryAccess_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/me/Desktop", 0o755); err != nil {
		t.Fatal(err)
	}
	if result := Root(fs, "/home/me/Desktop", true); !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
}

func TestRunAll_DefaultConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/desk", 0o755)
	cfg := config.Default()

	results := RunAll(fs, &cfg, "/desk", false)
	if len(results) != 2 {
		t.Fatalf("expected root and reader checks, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if err := Err(results); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRunAll_IncludesLogDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/desk", 0o755)
	cfg := config.Default()
	cfg.Logging.Dir = t.TempDir()

	results := RunAll(fs, &cfg, "/desk", true)
	if len(results) != 3 || results[1].Name != "Log directory" || !results[1].Passed {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestErrIsConfiguration(t *testing.T) {
	results := RunAll(afero.NewMemMapFs(), nil, "/missing", false)
	err := Err(results)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, faults.ErrConfiguration) || !faults.IsFatal(err) {
		t.Fatalf("expected fatal configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "/missing") {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestCheckExtraction(t *testing.T) {
	cfg := config.Default().Extraction
	if r := CheckExtraction(cfg); !strings.Contains(r.Detail, "pdf (5 pages)") {
		t.Fatalf("unexpected detail %q", r.Detail)
	}
	cfg.DisablePDF, cfg.DisableDocx = true, true
	if r := CheckExtraction(cfg); !strings.HasPrefix(r.Detail, "text only") {
		t.Fatalf("unexpected detail %q", r.Detail)
	}
}
