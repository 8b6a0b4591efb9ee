package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// CopyFileVerified copies src to dst and then re-reads dst, comparing size
// and SHA256 with the source. dst is removed on any failure.
func CopyFileVerified(fs afero.Fs, src, dst string) error {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	srcSum, created, err := copyHashing(fs, src, dst, srcInfo.Mode().Perm())
	if err != nil {
		if created {
			_ = fs.Remove(dst)
		}
		return err
	}

	dstInfo, err := fs.Stat(dst)
	if err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("stat copy: %w", err)
	}
	if dstInfo.Size() != srcInfo.Size() {
		_ = fs.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), dstInfo.Size())
	}

	dstSum, err := HashFile(fs, dst)
	if err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("hash copy: %w", err)
	}
	if !bytes.Equal(srcSum, dstSum) {
		_ = fs.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}

// copyHashing reports whether dst was created so callers only clean up files
// they own.
func copyHashing(fs afero.Fs, src, dst string, mode os.FileMode) ([]byte, bool, error) {
	in, err := fs.Open(src)
	if err != nil {
		return nil, false, err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = out.Close()
	}()

	hasher := sha256.New()
	if _, err := io.Copy(out, io.TeeReader(in, hasher)); err != nil {
		return nil, true, err
	}
	if err := out.Sync(); err != nil {
		return nil, true, err
	}
	if err := out.Close(); err != nil {
		return nil, true, err
	}
	return hasher.Sum(nil), true, nil
}

// HashFile returns the SHA256 digest of path.
func HashFile(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}
