package adapters

import (
	"os"
	"path/filepath"

	"resolve-robotics-uri/internal/ports"
)

// OSFilesystemAdapter answers existence checks against the real filesystem.
type OSFilesystemAdapter struct{}

func NewOSFilesystemAdapter() OSFilesystemAdapter {
	return OSFilesystemAdapter{}
}

// Exists reports whether the path names a file or directory. A probe target
// may be either: the caller decides what to do with a directory hit.
func (a OSFilesystemAdapter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (a OSFilesystemAdapter) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

var _ ports.FilesystemPort = OSFilesystemAdapter{}
