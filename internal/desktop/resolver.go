// Package desktop locates the user's desktop directory.
package desktop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"deskorg/internal/faults"
)

// Localized desktop folder names checked after the English one under cloud
// sync folders, and on their own under the home directory.
var localizedNames = []string{"سطح المكتب"}

// Resolver finds the directory to organize.
type Resolver struct {
	fs     afero.Fs
	home   string
	custom []string
}

// NewResolver builds a resolver rooted at home. custom paths are tried before
// the built-in candidates.
func NewResolver(fs afero.Fs, home string, custom []string) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{fs: fs, home: home, custom: custom}
}

// NewDefaultResolver uses the host filesystem and the current user's home.
func NewDefaultResolver(custom []string) (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "resolve desktop", "home directory", "", err)
	}
	return NewResolver(afero.NewOsFs(), home, custom), nil
}

// Resolve returns override when set, which must then be an existing
// directory. Otherwise it returns the first existing candidate.
func (r *Resolver) Resolve(override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		if r.isDir(override) {
			return override, nil
		}
		return "", faults.Wrap(faults.ErrConfiguration, "resolve desktop", "override", override+" is not a directory", nil)
	}
	candidates := r.Candidates()
	for _, candidate := range candidates {
		if r.isDir(candidate) {
			return candidate, nil
		}
	}
	return "", faults.Wrap(faults.ErrConfiguration, "resolve desktop", "check candidates",
		"no desktop found; tried "+strings.Join(candidates, ", "), errors.New("set paths.root or pass --root"))
}

// Candidates lists the checked paths in priority order.
func (r *Resolver) Candidates() []string {
	var out []string
	for _, path := range r.custom {
		if path = strings.TrimSpace(path); path != "" {
			out = append(out, path)
		}
	}
	if r.home == "" {
		return out
	}

	oneDrive := filepath.Join(r.home, "OneDrive")
	out = append(out, filepath.Join(oneDrive, "Desktop"))
	for _, name := range localizedNames {
		out = append(out, filepath.Join(oneDrive, name))
	}
	// Business accounts sync to "OneDrive - <Organization>".
	if matches, err := afero.Glob(r.fs, filepath.Join(r.home, "OneDrive - *")); err == nil {
		for _, match := range matches {
			out = append(out, filepath.Join(match, "Desktop"))
		}
	}
	for _, name := range localizedNames {
		out = append(out, filepath.Join(r.home, name))
	}
	return append(out, filepath.Join(r.home, "Desktop"))
}

func (r *Resolver) isDir(path string) bool {
	ok, err := afero.DirExists(r.fs, path)
	return err == nil && ok
}
