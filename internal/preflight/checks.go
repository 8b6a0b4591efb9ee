package preflight

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"deskorg/internal/config"
)

// CheckDirectoryAccess verifies that the directory exists and is readable,
// and writable when needWrite is set. Permission bits are only consulted on
// the host filesystem.
func CheckDirectoryAccess(fs afero.Fs, name, path string, needWrite bool) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "path not configured"}
	}
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := "read"
	if needWrite {
		mode = "read/write"
	}
	if _, ok := fs.(*afero.OsFs); ok {
		if err := access(path, needWrite); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, mode)}
}

// CheckExtraction reports which rich content readers are enabled.
func CheckExtraction(cfg config.Extraction) Result {
	const name = "Content readers"
	var enabled []string
	if !cfg.DisablePDF {
		enabled = append(enabled, fmt.Sprintf("pdf (%d pages)", cfg.PDFPages))
	}
	if !cfg.DisableDocx {
		enabled = append(enabled, fmt.Sprintf("docx (%d paragraphs)", cfg.DocxParagraphs))
	}
	if len(enabled) == 0 {
		return Result{Name: name, Passed: true, Detail: "text only; pdf and word files are scored by name"}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(enabled, ", ")}
}
