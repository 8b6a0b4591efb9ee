//go:build !unix

package preflight

// access is a no-op where POSIX access(2) is unavailable; the run surfaces
// permission problems per file instead.
func access(string, bool) error {
	return nil
}
