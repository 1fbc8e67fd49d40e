// Package fsx holds the filesystem primitives the stages use to publish artifacts
// all-or-nothing: readers of a final path see either the previous content or the
// complete new content, never a partial write
package fsx

import (
	"os"
	"path/filepath"

	perr "evalsnap/internal/platform/errors"
)

// seams for tests
var (
	rename   = os.Rename
	mkdirAll = os.MkdirAll
)

// TempSuffix marks in-flight files next to their final destination
const TempSuffix = ".part"

// Exists reports whether path names an existing regular file
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// EnsureDir creates the parent directory of path
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := mkdirAll(dir, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeFilesystem, "create directory %s", dir)
	}
	return nil
}

// Commit runs fill against a temp path beside dst and renames it into place on
// success. On any failure the temp file is removed and dst is left untouched.
func Commit(dst string, fill func(tmp string) error) error {
	if err := EnsureDir(dst); err != nil {
		return err
	}
	tmp := dst + TempSuffix
	_ = os.Remove(tmp)

	if err := fill(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return perr.Wrapf(err, perr.ErrorCodeFilesystem, "publish %s", dst)
	}
	return nil
}

// WriteFile writes data to dst atomically with perm 0644
func WriteFile(dst string, data []byte) error {
	return Commit(dst, func(tmp string) error {
		f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeFilesystem, "create %s", tmp)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return perr.Wrapf(err, perr.ErrorCodeFilesystem, "write %s", tmp)
		}
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return perr.Wrapf(err, perr.ErrorCodeFilesystem, "sync %s", tmp)
		}
		if err := f.Close(); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeFilesystem, "close %s", tmp)
		}
		return nil
	})
}
