package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/mediatidy/config"
	"github.com/lepinkainen/mediatidy/subtitle"
	"github.com/lepinkainen/mediatidy/types"
	"github.com/lepinkainen/mediatidy/ui"
)

// CombineCmd merges two .srt language tracks per episode into a single
// .ass file with one track at the top and one at the bottom of the frame.
type CombineCmd struct {
	Directory string `arg:"" optional:"" help:"Directory containing the .srt files" type:"path"`
}

func (cmd *CombineCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	cfg := config.Default()
	if appCtx != nil {
		version = appCtx.Version
		cfg = appCtx.Config
	}
	p := ui.NewPrompter()

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("mediatidy combine %s", version)))

	dir := cmd.Directory
	if dir == "" {
		var err error
		dir, err = p.AskPath("Enter the path to your folder (enter: current directory):")
		if err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	groups := subtitle.GroupSubtitles(names)
	lang1, lang2, ok, err := chooseLanguagePair(p, groups)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	topLang, err := p.AskLine(fmt.Sprintf("Which language should be on top (%s/%s):", lang1, lang2))
	if err != nil {
		return err
	}
	if topLang != lang1 && topLang != lang2 {
		fmt.Println("Invalid input.")
		return nil
	}
	bottomLang := lang1
	if topLang == lang1 {
		bottomLang = lang2
	}

	// Only bases carrying both languages get combined.
	var jobs []subtitle.CombineJob
	outputDir := filepath.Join(dir, cfg.Combine.OutputDir)
	for _, base := range groups.Bases() {
		tracks := groups.ByBase[base]
		if tracks[lang1] == "" || tracks[lang2] == "" {
			continue
		}
		outputName := fmt.Sprintf("%s.%s-%s.ass", base, bottomLang, topLang)
		jobs = append(jobs, subtitle.CombineJob{
			TopFile:    filepath.Join(dir, tracks[topLang]),
			BottomFile: filepath.Join(dir, tracks[bottomLang]),
			TopLang:    topLang,
			BottomLang: bottomLang,
			OutputPath: filepath.Join(outputDir, outputName),
		})
	}
	if len(jobs) == 0 {
		fmt.Println("No file pairs share both languages.")
		return nil
	}

	fmt.Println("\nPreview of changes:")
	for _, job := range jobs {
		fmt.Printf("Combining\t%s\n", filepath.Base(job.TopFile))
		fmt.Printf("with\t\t%s\n", filepath.Base(job.BottomFile))
		fmt.Printf("%s\n\n", ui.InfoStyle.Render(fmt.Sprintf("into\t\t%s", filepath.Base(job.OutputPath))))
	}

	if !p.Confirm("Are these changes correct? (y/n):") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, job := range jobs {
		if err := subtitle.Combine(job); err != nil {
			return err
		}
	}

	fmt.Println(ui.SuccessStyle.Render("All changes made successfully."))
	return nil
}

// chooseLanguagePair picks the two languages to combine: automatically
// when exactly two exist, interactively when there are more. ok is false
// when the run should stop without doing anything.
func chooseLanguagePair(p *ui.Prompter, groups subtitle.GroupSet) (lang1, lang2 string, ok bool, err error) {
	languages := groups.Languages

	switch len(languages) {
	case 0:
		fmt.Println("No subtitle files found.")
		return "", "", false, nil

	case 1:
		fmt.Printf("\nLanguage found: %s\n", languages[0])
		fmt.Println("No more languages can be combined.")
		return "", "", false, nil

	case 2:
		fmt.Printf("\nLanguages found: %s, %s\n", languages[0], languages[1])
		fmt.Println("Automatically combining these two languages.")
		return languages[0], languages[1], true, nil

	default:
		fmt.Printf("\nLanguages found: %v\n", languages)
		lang1, err = p.AskLine("Enter the first language to combine:")
		if err != nil {
			return "", "", false, err
		}
		lang2, err = p.AskLine("Enter the second language to combine:")
		if err != nil {
			return "", "", false, err
		}
		if !groups.HasLanguage(lang1) || !groups.HasLanguage(lang2) {
			fmt.Println("One or both languages not found.")
			return "", "", false, nil
		}
		return lang1, lang2, true, nil
	}
}
