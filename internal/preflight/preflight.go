package preflight

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"deskorg/internal/config"
	"deskorg/internal/faults"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Root checks the organizer root. Apply mode also requires write access.
func Root(fs afero.Fs, root string, apply bool) Result {
	return CheckDirectoryAccess(fs, "Root directory", root, apply)
}

// RunAll executes the checks that apply to cfg for a run against root.
func RunAll(fs afero.Fs, cfg *config.Config, root string, apply bool) []Result {
	results := []Result{Root(fs, root, apply)}
	if cfg == nil {
		return results
	}
	if dir := strings.TrimSpace(cfg.Logging.Dir); dir != "" {
		results = append(results, CheckDirectoryAccess(afero.NewOsFs(), "Log directory", dir, true))
	}
	results = append(results, CheckExtraction(cfg.Extraction))
	return results
}

// Err folds failed results into a single configuration error, or nil when
// every check passed.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return faults.Wrap(faults.ErrConfiguration, "preflight", "check directories", strings.Join(failed, "; "), nil)
}
