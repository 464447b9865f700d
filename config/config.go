// Package config loads the optional mediatidy configuration file.
//
// Every value has a built-in default matching the historical behavior of
// the tools, so running without a config file is the normal case.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Files configures which directory entries count as video files.
type Files struct {
	// Extensions is the allow-list of video file extensions, without the
	// leading dot. Membership is checked case-sensitively.
	Extensions []string `toml:"extensions"`
}

// Rename configures the episode renamer.
type Rename struct {
	// SummaryFile is the name of the per-run summary written into the
	// destination directory.
	SummaryFile string `toml:"summary_file"`
}

// Extract configures subtitle extraction.
type Extract struct {
	// OutputDir is the subdirectory created for extracted .srt files.
	OutputDir string `toml:"output_dir"`
}

// Combine configures subtitle combination.
type Combine struct {
	// OutputDir is the subdirectory created for combined .ass files.
	OutputDir string `toml:"output_dir"`
}

// Config is the full mediatidy configuration.
type Config struct {
	Files   Files   `toml:"files"`
	Rename  Rename  `toml:"rename"`
	Extract Extract `toml:"extract"`
	Combine Combine `toml:"combine"`
}

const (
	defaultSummaryFile      = "Rename Summary.txt"
	defaultExtractOutputDir = "Extracted Subtitles"
	defaultCombineOutputDir = "Combined Subtitles"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Files: Files{
			Extensions: []string{"m4v", "mp4", "mkv", "avi"},
		},
		Rename: Rename{
			SummaryFile: defaultSummaryFile,
		},
		Extract: Extract{
			OutputDir: defaultExtractOutputDir,
		},
		Combine: Combine{
			OutputDir: defaultCombineOutputDir,
		},
	}
}

// DefaultPath returns the conventional config file location. The path is
// returned even if no file exists there.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "mediatidy", "config.toml")
}

// Load reads the TOML file at path on top of the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break the tools.
func (c *Config) Validate() error {
	if len(c.Files.Extensions) == 0 {
		return errors.New("files.extensions must not be empty")
	}
	for _, ext := range c.Files.Extensions {
		if ext == "" || strings.HasPrefix(ext, ".") {
			return fmt.Errorf("files.extensions entry %q must be a bare extension without the dot", ext)
		}
	}

	for _, name := range []struct {
		key   string
		value string
	}{
		{"rename.summary_file", c.Rename.SummaryFile},
		{"extract.output_dir", c.Extract.OutputDir},
		{"combine.output_dir", c.Combine.OutputDir},
	} {
		if strings.TrimSpace(name.value) == "" {
			return fmt.Errorf("%s must not be empty", name.key)
		}
		if strings.ContainsAny(name.value, `/\`) {
			return fmt.Errorf("%s must be a plain name, not a path: %q", name.key, name.value)
		}
	}
	return nil
}
