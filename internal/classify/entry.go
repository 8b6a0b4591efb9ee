package classify

import (
	"io/fs"
	"path/filepath"

	"deskorg/internal/textutil"
)

// FileEntry is an immutable snapshot of one directory entry taken at scan
// time.
type FileEntry struct {
	Path  string
	Name  string
	Ext   string
	Size  int64
	IsDir bool
}

// NewFileEntry builds a FileEntry for info located in dir.
func NewFileEntry(dir string, info fs.FileInfo) FileEntry {
	name := info.Name()
	return FileEntry{
		Path:  filepath.Join(dir, name),
		Name:  name,
		Ext:   textutil.Extension(name),
		Size:  info.Size(),
		IsDir: info.IsDir(),
	}
}
