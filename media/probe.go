package media

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// SubtitleStream describes one subtitle stream inside a media container.
type SubtitleStream struct {
	Index int        `json:"index"`
	Tags  StreamTags `json:"tags"`
}

// StreamTags holds the container tags relevant to subtitle selection.
type StreamTags struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

// LanguageKey returns the label used to offer this stream to the operator:
// "language-title" when a title tag is present, the bare language code
// otherwise. Streams without a language tag return "".
func (s SubtitleStream) LanguageKey() string {
	if s.Tags.Language == "" {
		return ""
	}
	if s.Tags.Title != "" {
		return s.Tags.Language + "-" + s.Tags.Title
	}
	return s.Tags.Language
}

type probeResult struct {
	Streams []SubtitleStream `json:"streams"`
}

// SubtitleStreams runs ffprobe against path and returns its subtitle
// streams. ffprobe must be available in PATH.
func SubtitleStreams(path string) ([]SubtitleStream, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		"--", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return decodeSubtitleStreams(output)
}

// decodeSubtitleStreams parses ffprobe's -print_format json output.
func decodeSubtitleStreams(data []byte) ([]SubtitleStream, error) {
	var result probeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w: %s", err, firstLine(data))
	}
	return result.Streams, nil
}

func firstLine(data []byte) string {
	s := strings.TrimSpace(string(data))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
