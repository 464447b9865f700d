// Package subtitle implements the two subtitle tools: extracting streams
// from video containers via ffmpeg and combining two .srt tracks into a
// positioned .ass file.
package subtitle

import (
	"sort"
	"strings"
)

// GroupSet holds .srt files grouped by episode base name. Filenames are
// expected in the form "basename.language.srt".
type GroupSet struct {
	// ByBase maps base name -> language -> filename.
	ByBase map[string]map[string]string
	// Languages is the sorted set of languages seen across all files.
	Languages []string
}

// GroupSubtitles groups the given filenames by base name and language.
// Non-.srt names are ignored. A name like "episode.en.srt" yields base
// "episode" and language "en"; a bare "episode.srt" yields base "" and
// language "episode", mirroring the historical split-on-dots behavior.
func GroupSubtitles(names []string) GroupSet {
	byBase := make(map[string]map[string]string)
	langSet := make(map[string]struct{})

	for _, name := range names {
		if !strings.HasSuffix(name, ".srt") {
			continue
		}
		parts := strings.Split(name, ".")
		base := strings.Join(parts[:len(parts)-2], ".")
		lang := parts[len(parts)-2]

		if byBase[base] == nil {
			byBase[base] = make(map[string]string)
		}
		byBase[base][lang] = name
		langSet[lang] = struct{}{}
	}

	languages := make([]string, 0, len(langSet))
	for lang := range langSet {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	return GroupSet{ByBase: byBase, Languages: languages}
}

// Bases returns the base names in sorted order.
func (g GroupSet) Bases() []string {
	bases := make([]string, 0, len(g.ByBase))
	for base := range g.ByBase {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}

// HasLanguage reports whether lang appears in the set.
func (g GroupSet) HasLanguage(lang string) bool {
	for _, l := range g.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
