// Package fileutil provides the filesystem primitives the organizer builds
// on: streaming copies, cross-device-safe moves, and collision-free
// destination path allocation.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// maxUniqueAttempts bounds the numeric suffix probe so a directory stuffed
// with numbered siblings fails loudly instead of spinning.
const maxUniqueAttempts = 10000

// ErrUniquePathExhausted is returned when no free numbered candidate exists
// within the probe bound.
var ErrUniquePathExhausted = errors.New("unique path candidates exhausted")

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile renames src to dst. When the rename fails because src and dst
// live on different filesystems it falls back to copy+remove, so callers
// see a plain move either way.
func MoveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return renameErr
	}

	if err := CopyFile(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		// Leave the copy in place; the destination is already valid.
		return fmt.Errorf("remove source after cross-device copy: %w", err)
	}
	return nil
}

// UniquePath returns path unchanged when nothing occupies it. Otherwise it
// probes stem_1.ext, stem_2.ext, ... and returns the first free candidate,
// always picking the smallest unused suffix. Paths without an extension get
// the suffix appended to the bare name.
func UniquePath(path string) (string, error) {
	if !exists(path) {
		return path, nil
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for n := 1; n <= maxUniqueAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUniquePathExhausted, path)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
