package media

import "testing"

func TestShortLanguageCode(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"eng", "en"},
		{"jpn", "ja"},
		{"spa", "es"},
		{"fre", "fr"},
		{"deu", "de"},
		{"ita", "it"},
		{"dut", "nl"},
		{"por", "pt"},
		{"rus", "ru"},
		{"kor", "ko"},
		{"chi", "zh"},
		// Unmapped codes fall back to the first two letters.
		{"fin", "fi"},
		{"swe", "sw"},
		// Short inputs come back unchanged.
		{"en", "en"},
		{"x", "x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ShortLanguageCode(tt.code); got != tt.expected {
				t.Errorf("ShortLanguageCode(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}
