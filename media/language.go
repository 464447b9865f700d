package media

// iso639Mapping maps the ISO 639-2 codes ffprobe reports to the ISO 639-1
// codes used in output filenames.
var iso639Mapping = map[string]string{
	"eng": "en",
	"jpn": "ja",
	"spa": "es",
	"fre": "fr",
	"deu": "de",
	"ita": "it",
	"dut": "nl",
	"por": "pt",
	"rus": "ru",
	"kor": "ko",
	"chi": "zh",
}

// ShortLanguageCode converts an ISO 639-2 code to ISO 639-1. Codes outside
// the mapping fall back to their first two letters.
func ShortLanguageCode(code string) string {
	if short, ok := iso639Mapping[code]; ok {
		return short
	}
	if len(code) > 2 {
		return code[:2]
	}
	return code
}
