package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/mediatidy/media"
)

var workflowExtensions = []string{"m4v", "mp4", "mkv", "avi"}

// End-to-end over the real filesystem: list both directories, build the
// plan, execute it, check the renames and the summary.
func TestWorkflowRenamesAndWritesSummary(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	for _, name := range []string{"Show.S01E01.mp4", "Show.S01E02.mp4"} {
		writeFile(t, filepath.Join(dirA, name))
	}
	// Sorted order puts raw1 before raw2, lining up with the episodes.
	writeFile(t, filepath.Join(dirB, "raw1 s01e01.mp4"))
	writeFile(t, filepath.Join(dirB, "raw2 s01e02.mp4"))

	refs, err := media.ListVideoFiles(dirA, workflowExtensions)
	if err != nil {
		t.Fatalf("List dirA: %v", err)
	}
	cands, err := media.ListVideoFiles(dirB, workflowExtensions)
	if err != nil {
		t.Fatalf("List dirB: %v", err)
	}

	entries, err := BuildPlan(dirB, refs, cands)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 plan entries, got %d", len(entries))
	}

	summaryPath := filepath.Join(dirB, "Rename Summary.txt")
	done, err := Execute(entries, summaryPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if done != 2 {
		t.Errorf("Expected 2 renames, got %d", done)
	}

	for _, name := range []string{"Show.S01E01.mp4", "Show.S01E02.mp4"} {
		if _, err := os.Stat(filepath.Join(dirB, name)); err != nil {
			t.Errorf("Expected %s in dirB: %v", name, err)
		}
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("Read summary: %v", err)
	}
	want := "Renamed: raw1 s01e01.mp4 -> Show.S01E01.mp4\nRenamed: raw2 s01e02.mp4 -> Show.S01E02.mp4\n"
	if string(data) != want {
		t.Errorf("Summary = %q, want %q", string(data), want)
	}
}

// Extension mismatch in the second pair: planning aborts and the first,
// matching pair is not renamed either, because execution only ever runs a
// fully accepted plan.
func TestWorkflowExtensionMismatchLeavesEverythingUntouched(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	writeFile(t, filepath.Join(dirA, "Show.S01E01.mp4"))
	writeFile(t, filepath.Join(dirA, "Show.S01E02.mkv"))
	writeFile(t, filepath.Join(dirB, "raw1 s01e01.mp4"))
	writeFile(t, filepath.Join(dirB, "raw2 s01e02.mp4"))

	refs, err := media.ListVideoFiles(dirA, workflowExtensions)
	if err != nil {
		t.Fatalf("List dirA: %v", err)
	}
	cands, err := media.ListVideoFiles(dirB, workflowExtensions)
	if err != nil {
		t.Fatalf("List dirB: %v", err)
	}

	if _, err := BuildPlan(dirB, refs, cands); err == nil {
		t.Fatal("Expected planning to abort on the extension mismatch")
	}

	// Nothing was renamed, no summary exists.
	for _, name := range []string{"raw1 s01e01.mp4", "raw2 s01e02.mp4"} {
		if _, err := os.Stat(filepath.Join(dirB, name)); err != nil {
			t.Errorf("File %s must be untouched after an aborted plan: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dirB, "Rename Summary.txt")); !os.IsNotExist(err) {
		t.Error("No summary file may exist after an aborted plan")
	}
}
