package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

// ASS alignment values (numpad layout).
const (
	AlignBottomCenter = 2
	AlignTopCenter    = 8
)

// Style is one entry of the [V4+ Styles] section. Everything except name,
// size and alignment is fixed: white primary, black outline, outline
// width 1, no shadow.
type Style struct {
	Name      string
	FontSize  int
	Alignment int
}

// Event is one Dialogue line.
type Event struct {
	Style string
	Start time.Duration
	End   time.Duration
	Text  string
}

// Document is a minimal ASS script: fixed header, a style table and
// dialogue events.
type Document struct {
	Styles []Style
	Events []Event
}

// AddStyle appends a style to the document.
func (d *Document) AddStyle(name string, alignment, fontSize int) {
	d.Styles = append(d.Styles, Style{Name: name, FontSize: fontSize, Alignment: alignment})
}

// AddEvent appends a dialogue event using the named style.
func (d *Document) AddEvent(style string, start, end time.Duration, text string) {
	d.Events = append(d.Events, Event{Style: style, Start: start, End: end, Text: text})
}

const stylesFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, " +
	"OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, " +
	"Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

const eventsFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// Write serializes the document.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "[Script Info]")
	fmt.Fprintln(bw, "ScriptType: v4.00+")
	fmt.Fprintln(bw, "WrapStyle: 0")
	fmt.Fprintln(bw, "ScaledBorderAndShadow: yes")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "[V4+ Styles]")
	fmt.Fprintln(bw, stylesFormat)
	for _, s := range d.Styles {
		fmt.Fprintf(bw,
			"Style: %s,Arial,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,1,0,%d,10,10,10,1\n",
			s.Name, s.FontSize, s.Alignment)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "[Events]")
	fmt.Fprintln(bw, eventsFormat)
	for _, e := range d.Events {
		fmt.Fprintf(bw, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n",
			formatTimestamp(e.Start), formatTimestamp(e.End), e.Style, e.Text)
	}

	return bw.Flush()
}

// WriteFile serializes the document to path, truncating any existing file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// formatTimestamp renders a duration as the H:MM:SS.cc form ASS uses.
func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	centis := d / (10 * time.Millisecond)
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}
