// Package fileutil provides small file and path probes.
package fileutil

import (
	"os"
	"strings"
)

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	return statIsDir(path, false)
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	return statIsDir(path, true)
}

func statIsDir(path string, wantDir bool) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir() == wantDir
}

// IsFilePath reports whether s looks like a file path rather than a bare
// name: any string containing a path separator (/ or \) is a path, so
// "default" is a name while "./docres.yaml" and "sub/dir" are paths.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
