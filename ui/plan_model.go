package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// PlanItem is one rename shown in the review screen.
type PlanItem struct {
	OldName string
	NewName string
}

func (p PlanItem) FilterValue() string { return p.OldName }
func (p PlanItem) Title() string       { return p.OldName }
func (p PlanItem) Description() string { return fmt.Sprintf("→ %s", p.NewName) }

// PlanModel is the interactive review screen for a rename plan. It only
// collects an approve/cancel decision; the actual renames happen after the
// program exits.
type PlanModel struct {
	planList list.Model
	total    int

	approved bool
	quitting bool

	width  int
	height int
}

// NewPlanModel creates the review model for the given plan items.
func NewPlanModel(items []PlanItem) PlanModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	planList := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	planList.Title = "Rename plan"
	planList.SetShowStatusBar(false)
	planList.SetFilteringEnabled(false)

	return PlanModel{
		planList: planList,
		total:    len(items),
	}
}

// Approved reports whether the operator accepted the plan.
func (m PlanModel) Approved() bool { return m.approved }

// Init implements tea.Model
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.approved = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.approved = false
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.planList.SetSize(msg.Width-4, msg.Height-6)
	}

	var cmd tea.Cmd
	m.planList, cmd = m.planList.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m PlanModel) View() string {
	if m.quitting {
		if m.approved {
			return "Plan approved.\n"
		}
		return "Aborted.\n"
	}

	header := HeaderStyle.Render(fmt.Sprintf("Review rename plan (%d files)", m.total))
	controls := InfoStyle.Render("Controls: [y] Approve  [n] Cancel  [↑/↓] Scroll")

	return header + "\n" + m.planList.View() + "\n\n" + controls
}
