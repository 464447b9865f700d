package rename

import (
	"fmt"
	"os"
)

// Execute performs the plan in order. The summary file is created (or
// truncated) at summaryPath before the first rename; one line is appended
// per completed rename. On failure the remaining entries are not executed
// and the summary reflects exactly the renames that happened; there is no
// rollback. Returns the number of completed renames.
func Execute(entries []Entry, summaryPath string) (int, error) {
	summary, err := os.Create(summaryPath)
	if err != nil {
		return 0, fmt.Errorf("create summary file: %w", err)
	}
	defer func() { _ = summary.Close() }()

	for i, entry := range entries {
		if err := os.Rename(entry.SourcePath, entry.TargetPath); err != nil {
			return i, fmt.Errorf("rename %s: %w", entry.OldName, err)
		}
		if _, err := fmt.Fprintf(summary, "Renamed: %s -> %s\n", entry.OldName, entry.NewName); err != nil {
			return i + 1, fmt.Errorf("write summary: %w", err)
		}
	}
	return len(entries), nil
}
