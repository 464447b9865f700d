// Package rename builds and executes episode rename plans. A plan is
// constructed in full before any filesystem mutation happens; the first
// mismatched pair aborts planning and nothing is renamed.
package rename

import (
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/mediatidy/media"
)

// Entry is one accepted rename: the candidate file takes the reference
// file's name inside the candidate directory.
type Entry struct {
	SourcePath string
	TargetPath string
	OldName    string
	NewName    string
}

// MismatchError reports the first pair that failed validation during
// planning. No entries past the failing index are ever produced.
type MismatchError struct {
	Index     int
	Reference media.File
	Candidate media.File
	Reason    string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("pair %d: %s (%q vs %q)", e.Index+1, e.Reason, e.Reference.Name, e.Candidate.Name)
}

// BuildPlan pairs the reference and candidate listings by positional index
// and validates each pair. Pairing is index-aligned up to the length of the
// shorter listing; trailing entries of the longer listing are dropped.
//
// A pair is accepted when both files' season/episode marker tokens are
// textually equal (the marker is searched in the full path string) and
// both extensions are equal. The first failing pair aborts the whole plan
// with a *MismatchError.
func BuildPlan(candidateDir string, references, candidates []media.File) ([]Entry, error) {
	n := len(references)
	if len(candidates) < n {
		n = len(candidates)
	}

	var entries []Entry
	for i := 0; i < n; i++ {
		ref, cand := references[i], candidates[i]

		refMarker, _ := media.ExtractMarker(ref.Path)
		candMarker, _ := media.ExtractMarker(cand.Path)
		if refMarker != candMarker {
			return nil, &MismatchError{
				Index:     i,
				Reference: ref,
				Candidate: cand,
				Reason:    "season/episode markers differ",
			}
		}

		if ref.Extension() != cand.Extension() {
			return nil, &MismatchError{
				Index:     i,
				Reference: ref,
				Candidate: cand,
				Reason:    "extensions differ",
			}
		}

		entries = append(entries, Entry{
			SourcePath: cand.Path,
			TargetPath: filepath.Join(candidateDir, ref.Name),
			OldName:    cand.Name,
			NewName:    ref.Name,
		})
	}
	return entries, nil
}
