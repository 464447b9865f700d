package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/mediatidy/config"
	"github.com/lepinkainen/mediatidy/media"
	"github.com/lepinkainen/mediatidy/subtitle"
	"github.com/lepinkainen/mediatidy/types"
	"github.com/lepinkainen/mediatidy/ui"
	"github.com/lepinkainen/mediatidy/utils"
)

// ExtractCmd pulls subtitle streams out of video containers into .srt
// files, one per selected language.
type ExtractCmd struct {
	Directory string   `arg:"" optional:"" help:"Directory containing the video files" type:"path"`
	Languages []string `short:"l" help:"Languages to extract (skips the language prompt)"`
}

func (cmd *ExtractCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	cfg := config.Default()
	if appCtx != nil {
		version = appCtx.Version
		cfg = appCtx.Config
	}
	p := ui.NewPrompter()

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("mediatidy extract %s", version)))

	if err := utils.ValidateFFmpegDependencies(); err != nil {
		return err
	}

	dir := cmd.Directory
	if dir == "" {
		var err error
		dir, err = p.AskPath("Enter the path to your folder (enter: current directory):")
		if err != nil {
			return err
		}
	}

	files, err := media.ListVideoFiles(dir, cfg.Files.Extensions)
	if err != nil {
		return err
	}

	fmt.Printf("\nPath: %s\n\n", dir)
	fmt.Printf("Media files found: %d\n", len(files))
	fmt.Println(ui.FileListing("Media files", files))
	fmt.Println()
	if !p.Confirm("Are these the correct media files? (y/n):") {
		fmt.Println("Aborted.")
		return nil
	}

	sources, err := subtitle.ProbeSources(files)
	if err != nil {
		return err
	}
	languages := subtitle.Languages(sources)
	if len(languages) == 0 {
		fmt.Println("No tagged subtitle streams found.")
		return nil
	}

	fmt.Println()
	fmt.Println(ui.LanguageListing(languages))
	fmt.Println()

	selected, err := cmd.selectLanguages(p, languages)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(dir, cfg.Extract.OutputDir)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	items := subtitle.PlanExtractions(sources, selected, outputDir)
	if len(items) == 0 {
		fmt.Println("No streams match the selected languages.")
		return nil
	}

	bar := progressbar.Default(int64(len(items)), "extracting")
	for _, item := range items {
		if err := subtitle.Extract(item); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	fmt.Printf("\n%s\n\n", ui.SuccessStyle.Render("Subtitle extraction complete."))
	fmt.Printf("Saved %d subtitles to %s/.\n\n", len(items), outputDir)
	fmt.Println("Summary:")
	for _, item := range items {
		fmt.Printf("Subtitle '%s' from '%s'\n", item.LanguageKey, item.BaseName)
		fmt.Printf("    -> '%s'\n", item.OutputName)
	}
	return nil
}

// selectLanguages uses the --languages flag when given, the interactive
// prompt otherwise. Flag values must name languages that actually exist.
func (cmd *ExtractCmd) selectLanguages(p *ui.Prompter, available []string) ([]string, error) {
	if len(cmd.Languages) == 0 {
		return p.AskLanguages(available)
	}

	for _, lang := range cmd.Languages {
		found := false
		for _, a := range available {
			if a == lang {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("language %q not present in the media files (available: %v)", lang, available)
		}
	}
	return cmd.Languages, nil
}
