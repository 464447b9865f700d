package media

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var testExtensions = []string{"m4v", "mp4", "mkv", "avi"}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"mp4", "episode.mp4", true},
		{"mkv", "episode.mkv", true},
		{"avi", "episode.avi", true},
		{"m4v", "episode.m4v", true},
		{"uppercase extension is rejected", "episode.MP4", false},
		{"mixed case extension is rejected", "episode.Mkv", false},
		{"unlisted extension", "episode.webm", false},
		{"subtitle file", "episode.en.srt", false},
		{"no extension", "episode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVideoFile(tt.path, testExtensions); got != tt.expected {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestListVideoFiles(t *testing.T) {
	dir := t.TempDir()

	// Created out of order on purpose: the listing must come back sorted.
	for _, name := range []string{
		"c.mkv",
		"a.mp4",
		"b.avi",
		"notes.txt",
		"clip.MP4", // wrong case, filtered out
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "season.mp4"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	files, err := ListVideoFiles(dir, testExtensions)
	if err != nil {
		t.Fatalf("ListVideoFiles() error = %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	want := []string{"a.mp4", "b.avi", "c.mkv"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListVideoFiles() names = %v, want %v", names, want)
	}

	for _, f := range files {
		if f.Path != filepath.Join(dir, f.Name) {
			t.Errorf("Path %q does not join dir and name %q", f.Path, f.Name)
		}
	}
}

func TestListVideoFilesIdempotent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.mp4", "two.mkv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	first, err := ListVideoFiles(dir, testExtensions)
	if err != nil {
		t.Fatalf("First listing error = %v", err)
	}
	second, err := ListVideoFiles(dir, testExtensions)
	if err != nil {
		t.Fatalf("Second listing error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Re-listing an unchanged directory differs: %v vs %v", first, second)
	}
}

func TestListVideoFilesMissingDirectory(t *testing.T) {
	if _, err := ListVideoFiles(filepath.Join(t.TempDir(), "missing"), testExtensions); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestListVideoFilesOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp4")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if _, err := ListVideoFiles(path, testExtensions); err == nil {
		t.Error("Expected error when listing a non-directory")
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		expected string
	}{
		{"plain", File{Name: "show.mp4"}, "mp4"},
		{"case preserved", File{Name: "show.MKV"}, "MKV"},
		{"multiple dots", File{Name: "show.s01e01.mkv"}, "mkv"},
		{"no extension", File{Name: "show"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.file.Extension(); got != tt.expected {
				t.Errorf("Extension() = %q, want %q", got, tt.expected)
			}
		})
	}
}
