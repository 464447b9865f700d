package subtitle

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lepinkainen/mediatidy/media"
)

// Source is a video file together with its probed subtitle streams.
type Source struct {
	File    media.File
	Streams []media.SubtitleStream
}

// Extraction is one planned ffmpeg invocation: a single subtitle stream
// pulled out of a container into an .srt file.
type Extraction struct {
	VideoPath   string
	StreamIndex int
	LanguageKey string // "eng" or "eng-Title" as shown to the operator
	BaseName    string // video base name without extension
	OutputName  string // "basename.<iso639-1>.srt"
	OutputPath  string
}

// ProbeSources inspects each file with ffprobe. A probe failure on any
// file fails the whole batch.
func ProbeSources(files []media.File) ([]Source, error) {
	sources := make([]Source, 0, len(files))
	for _, f := range files {
		streams, err := media.SubtitleStreams(f.Path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, Source{File: f, Streams: streams})
	}
	return sources, nil
}

// Languages returns the sorted set of language keys available across all
// sources. Streams without a language tag are skipped.
func Languages(sources []Source) []string {
	seen := make(map[string]struct{})
	for _, src := range sources {
		for _, stream := range src.Streams {
			if key := stream.LanguageKey(); key != "" {
				seen[key] = struct{}{}
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// PlanExtractions builds the extraction list for the selected language
// keys. Output files are named "basename.<iso639-1>.srt" inside outputDir;
// the short code comes from the stream's language tag.
func PlanExtractions(sources []Source, selected []string, outputDir string) []Extraction {
	want := make(map[string]struct{}, len(selected))
	for _, key := range selected {
		want[key] = struct{}{}
	}

	var items []Extraction
	for _, src := range sources {
		base := strings.TrimSuffix(src.File.Name, filepath.Ext(src.File.Name))
		for _, stream := range src.Streams {
			key := stream.LanguageKey()
			if key == "" {
				continue
			}
			if _, ok := want[key]; !ok {
				continue
			}
			outputName := fmt.Sprintf("%s.%s.srt", base, media.ShortLanguageCode(stream.Tags.Language))
			items = append(items, Extraction{
				VideoPath:   src.File.Path,
				StreamIndex: stream.Index,
				LanguageKey: key,
				BaseName:    base,
				OutputName:  outputName,
				OutputPath:  filepath.Join(outputDir, outputName),
			})
		}
	}
	return items
}

// Extract runs ffmpeg for one planned extraction.
func Extract(item Extraction) error {
	cmd := exec.Command("ffmpeg",
		"-i", item.VideoPath,
		"-map", fmt.Sprintf("0:%d", item.StreamIndex),
		"-y", "-nostats", "-loglevel", "0",
		item.OutputPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract %s from %s: %w: %s",
			item.LanguageKey, item.VideoPath, err, strings.TrimSpace(string(output)))
	}
	return nil
}
