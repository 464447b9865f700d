// Package media provides filename and container inspection for video files:
// extension filtering, directory listing, season/episode marker extraction
// and ffprobe-based subtitle stream discovery.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a directory entry that passed the video extension filter.
type File struct {
	Path string // directory-joined path as listed
	Name string // base name with extension
}

// Extension returns the file extension without the leading dot, with its
// original casing preserved.
func (f File) Extension() string {
	return strings.TrimPrefix(filepath.Ext(f.Name), ".")
}

// IsVideoFile reports whether name carries one of the allowed extensions.
// The membership check is case-sensitive: "clip.MP4" does not match "mp4".
func IsVideoFile(name string, extensions []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, allowed := range extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ListVideoFiles returns the immediate children of dir whose extension is in
// the allow-list, ordered lexicographically by name. Subdirectories are
// skipped. Filesystem errors propagate unchanged.
func ListVideoFiles(dir string, extensions []string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsVideoFile(entry.Name(), extensions) {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
		})
	}
	// os.ReadDir already sorts by name; files preserves that order.
	return files, nil
}
