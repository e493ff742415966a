package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MoveMethod records how a file reached its destination.
type MoveMethod int

const (
	// MoveRenamed means a single rename succeeded.
	MoveRenamed MoveMethod = iota
	// MoveCopied means the rename failed and the file was copied then renamed into place.
	MoveCopied
)

func (m MoveMethod) String() string {
	if m == MoveCopied {
		return "copied"
	}
	return "renamed"
}

var rename = os.Rename

// Publish moves src into destDir as name. It tries a rename first; when that
// fails (typically across filesystems) it copies into a hidden partial file in
// destDir, renames that into place, and removes src. An existing file named
// name is replaced.
func Publish(src, destDir, name string) (string, MoveMethod, error) {
	info, err := os.Stat(destDir)
	if err != nil || !info.IsDir() {
		return "", MoveRenamed, fmt.Errorf("%w: %s", ErrDestinationMissing, destDir)
	}
	dst := filepath.Join(destDir, name)

	if err := rename(src, dst); err == nil {
		return dst, MoveRenamed, nil
	}

	partial := filepath.Join(destDir, "."+name+".partial")
	if err := copyFile(src, partial); err != nil {
		_ = os.Remove(partial)
		return "", MoveCopied, err
	}
	if err := os.Rename(partial, dst); err != nil {
		_ = os.Remove(partial)
		return "", MoveCopied, fmt.Errorf("%w: rename partial: %v", ErrPublishFailed, err)
	}
	_ = os.Remove(src)
	return dst, MoveCopied, nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrPublishFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create partial: %v", ErrPublishFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("%w: copy content: %v", ErrPublishFailed, err)
	}
	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %v", ErrPublishFailed, err)
	}
	return nil
}
