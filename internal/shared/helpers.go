// Package shared provides common utility functions used across multiple
// packages in the resolve-robotics-uri codebase.
package shared

import (
	"os"
	"strings"
)

// SplitPathList splits a path-list value on the platform separator (colon on
// POSIX, semicolon on Windows), discarding empty entries produced by leading,
// trailing, or doubled separators.
func SplitPathList(value string) []string {
	if value == "" {
		return nil
	}
	var dirs []string
	for _, dir := range strings.Split(value, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// JoinPathList joins directories with the platform path-list separator.
func JoinPathList(dirs []string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}
