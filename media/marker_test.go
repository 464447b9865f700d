package media

import "testing"

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSeason  string
		wantEpisode string
		wantFound   bool
	}{
		{
			name:        "lowercase marker",
			input:       "show.s01e02.mkv",
			wantSeason:  "01",
			wantEpisode: "02",
			wantFound:   true,
		},
		{
			name:        "uppercase marker",
			input:       "Show.S01E02.mkv",
			wantSeason:  "01",
			wantEpisode: "02",
			wantFound:   true,
		},
		{
			name:        "mixed case marker",
			input:       "Show.s03E11.mp4",
			wantSeason:  "03",
			wantEpisode: "11",
			wantFound:   true,
		},
		{
			name:        "unpadded digits are kept as written",
			input:       "show.s1e1.avi",
			wantSeason:  "1",
			wantEpisode: "1",
			wantFound:   true,
		},
		{
			name:        "first marker wins",
			input:       "s01e01 vs s02e02",
			wantSeason:  "01",
			wantEpisode: "01",
			wantFound:   true,
		},
		{
			name:        "marker embedded in surrounding text",
			input:       "/videos/My Show - wHaTs01E05extra.m4v",
			wantSeason:  "01",
			wantEpisode: "05",
			wantFound:   true,
		},
		{
			name:        "marker in directory component of a path",
			input:       "/downloads/s02e07/raw.mp4",
			wantSeason:  "02",
			wantEpisode: "07",
			wantFound:   true,
		},
		{
			name:      "no marker",
			input:     "holiday-video.mp4",
			wantFound: false,
		},
		{
			name:      "season without episode",
			input:     "show.s01.mkv",
			wantFound: false,
		},
		{
			name:      "letters between s and e",
			input:     "showcase.mp4",
			wantFound: false,
		},
		{
			name:      "empty string",
			input:     "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, found := ExtractMarker(tt.input)
			if found != tt.wantFound {
				t.Fatalf("ExtractMarker(%q) found = %v, want %v", tt.input, found, tt.wantFound)
			}
			if !found {
				if marker != (Marker{}) {
					t.Errorf("Expected zero marker when not found, got %+v", marker)
				}
				return
			}
			if marker.Season != tt.wantSeason {
				t.Errorf("Season = %q, want %q", marker.Season, tt.wantSeason)
			}
			if marker.Episode != tt.wantEpisode {
				t.Errorf("Episode = %q, want %q", marker.Episode, tt.wantEpisode)
			}
		})
	}
}

func TestMarkerTokensCompareAsStrings(t *testing.T) {
	// s1e1 and s01e01 must not be treated as the same marker.
	a, _ := ExtractMarker("show.s1e1.mkv")
	b, _ := ExtractMarker("show.s01e01.mkv")
	if a == b {
		t.Errorf("Markers %+v and %+v should differ: tokens are compared textually", a, b)
	}
}
