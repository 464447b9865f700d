package subtitle

import (
	"fmt"
	"strings"

	"github.com/asticode/go-astisub"
)

// CombineJob describes one combination: two .srt tracks of the same
// episode merged into a single positioned .ass file.
type CombineJob struct {
	TopFile    string // path of the track shown top-center
	BottomFile string // path of the track shown bottom-center
	TopLang    string
	BottomLang string
	OutputPath string
}

// fontSizeFor picks the style font size. Japanese tracks get a slightly
// larger size so kanji stay legible alongside the latin track.
func fontSizeFor(lang string) int {
	if lang == "JP" {
		return 22
	}
	return 20
}

// Combine reads both subtitle tracks and writes the combined .ass file.
// The top track is restyled to top-center, the bottom track to
// bottom-center; text content and timing are preserved.
func Combine(job CombineJob) error {
	top, err := astisub.OpenFile(job.TopFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", job.TopFile, err)
	}
	bottom, err := astisub.OpenFile(job.BottomFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", job.BottomFile, err)
	}

	var doc Document
	doc.AddStyle(job.TopLang, AlignTopCenter, fontSizeFor(job.TopLang))
	doc.AddStyle(job.BottomLang, AlignBottomCenter, fontSizeFor(job.BottomLang))

	for _, item := range top.Items {
		doc.AddEvent(job.TopLang, item.StartAt, item.EndAt, eventText(item))
	}
	for _, item := range bottom.Items {
		doc.AddEvent(job.BottomLang, item.StartAt, item.EndAt, eventText(item))
	}

	return doc.WriteFile(job.OutputPath)
}

// eventText flattens a subtitle item into ASS dialogue text. Line breaks
// become the \N escape.
func eventText(item *astisub.Item) string {
	lines := make([]string, 0, len(item.Lines))
	for _, line := range item.Lines {
		parts := make([]string, 0, len(line.Items))
		for _, li := range line.Items {
			parts = append(parts, li.Text)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, `\N`)
}
