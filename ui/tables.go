package ui

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lepinkainen/mediatidy/media"
	"github.com/lepinkainen/mediatidy/rename"
)

// FileListing renders a numbered table of the files found in a directory.
func FileListing(title string, files []media.File) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Name"})
	for i, f := range files {
		t.AppendRow(table.Row{i + 1, f.Name})
	}
	return t.Render()
}

// PlanTable renders the rename plan, one old → new pair per row.
func PlanTable(entries []rename.Entry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Rename plan")
	t.AppendHeader(table.Row{"#", "Current name", "New name"})
	for i, entry := range entries {
		t.AppendRow(table.Row{i + 1, entry.OldName, entry.NewName})
	}
	return t.Render()
}

// LanguageListing renders the numbered language menu shown before the
// extraction selection prompt.
func LanguageListing(languages []string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Languages found")
	t.AppendHeader(table.Row{"#", "Language"})
	for i, lang := range languages {
		t.AppendRow(table.Row{i + 1, lang})
	}
	return t.Render()
}
