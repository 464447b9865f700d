// Package cmd contains the kong command implementations for mediatidy.
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/mediatidy/config"
	"github.com/lepinkainen/mediatidy/media"
	"github.com/lepinkainen/mediatidy/rename"
	"github.com/lepinkainen/mediatidy/types"
	"github.com/lepinkainen/mediatidy/ui"
)

// RenameCmd renames the files of one directory after the files of another
// by matching season/episode markers pair by pair.
type RenameCmd struct {
	Dir1   string `arg:"" optional:"" name:"dir1" help:"Directory with correctly named episodes" type:"path"`
	Dir2   string `arg:"" optional:"" name:"dir2" help:"Directory with files to rename" type:"path"`
	Review bool   `help:"Review the rename plan in an interactive screen instead of a plain prompt"`
}

func (cmd *RenameCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	cfg := config.Default()
	if appCtx != nil {
		version = appCtx.Version
		cfg = appCtx.Config
	}
	p := ui.NewPrompter()

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("mediatidy rename %s", version)))
	if !ui.StdinIsTerminal() {
		fmt.Println(ui.WarnStyle.Render("stdin is not a terminal; reading confirmations line by line"))
	}

	// Checkpoint 1: the directories themselves.
	dir1, dir2, err := cmd.resolveDirectories(p)
	if err != nil {
		return err
	}

	fmt.Printf("\nReference directory: %s\n", dir1)
	fmt.Printf("Directory to rename: %s\n\n", dir2)
	if !p.Confirm("Are these the correct directories? (y/n):") {
		fmt.Println("Aborted.")
		return nil
	}

	// Checkpoint 2: the filtered file listings.
	references, err := media.ListVideoFiles(dir1, cfg.Files.Extensions)
	if err != nil {
		return err
	}
	candidates, err := media.ListVideoFiles(dir2, cfg.Files.Extensions)
	if err != nil {
		return err
	}

	fmt.Printf("\nMedia files found: %d and %d\n", len(references), len(candidates))
	fmt.Println(ui.FileListing("Reference files", references))
	fmt.Println(ui.FileListing("Files to rename", candidates))
	fmt.Println()
	if !p.Confirm("Are these the correct media files? (y/n):") {
		fmt.Println("Aborted.")
		return nil
	}

	// Build the full plan before touching anything. The first mismatched
	// pair aborts the whole run.
	entries, err := rename.BuildPlan(dir2, references, candidates)
	if err != nil {
		var mismatch *rename.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Mismatch at pair %d:", mismatch.Index+1)))
			fmt.Printf("  %s\n  %s\n", mismatch.Reference.Name, mismatch.Candidate.Name)
		}
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Nothing to rename.")
		return nil
	}

	// Checkpoint 3: the plan itself.
	approved, err := cmd.confirmPlan(p, entries)
	if err != nil {
		return err
	}
	if !approved {
		fmt.Println("Aborted.")
		return nil
	}

	summaryPath := filepath.Join(dir2, cfg.Rename.SummaryFile)
	done, err := rename.Execute(entries, summaryPath)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Stopped after %d rename(s): %v", done, err)))
		return err
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("Renamed %d file(s).", done)))
	fmt.Printf("Summary written to %s\n", summaryPath)
	return nil
}

// resolveDirectories takes the directories from the arguments or, when
// absent, from interactive prompts (empty answer = current directory).
func (cmd *RenameCmd) resolveDirectories(p *ui.Prompter) (string, string, error) {
	dir1, dir2 := cmd.Dir1, cmd.Dir2
	var err error

	if dir1 == "" {
		dir1, err = p.AskPath("Enter the path to the reference directory (enter: current directory):")
		if err != nil {
			return "", "", err
		}
	}
	if dir2 == "" {
		dir2, err = p.AskPath("Enter the path to the directory to rename:")
		if err != nil {
			return "", "", err
		}
	}
	return dir1, dir2, nil
}

// confirmPlan shows the plan and collects the final approval, either via
// the interactive review screen or a plain prompt.
func (cmd *RenameCmd) confirmPlan(p *ui.Prompter, entries []rename.Entry) (bool, error) {
	if cmd.Review && ui.StdinIsTerminal() {
		items := make([]ui.PlanItem, len(entries))
		for i, entry := range entries {
			items[i] = ui.PlanItem{OldName: entry.OldName, NewName: entry.NewName}
		}
		final, err := tea.NewProgram(ui.NewPlanModel(items), tea.WithAltScreen()).Run()
		if err != nil {
			return false, fmt.Errorf("plan review: %w", err)
		}
		model, ok := final.(ui.PlanModel)
		return ok && model.Approved(), nil
	}

	fmt.Println()
	fmt.Println(ui.PlanTable(entries))
	fmt.Println()
	return p.Confirm("Apply these renames? (y/n):"), nil
}
