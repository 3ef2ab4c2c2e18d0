package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seriestidy/internal/engine"
	"seriestidy/internal/tui/theme"
)

// PreviewModel shows the computed rename plan in a scrollable viewport and
// drives the engine one operation per tick once the user confirms.
type PreviewModel struct {
	plan   *engine.Plan
	engine *engine.Engine
	theme  theme.Theme

	viewport viewport.Model
	ready    bool
	applying bool
	done     bool
	progress engine.OperationProgress
	result   *engine.RenameCompleteMsg

	width  int
	height int
}

// NewPreviewModel builds the preview for a plan. eng executes the plan when
// the user confirms; passing a plan with no pending operations simply shows
// an already-done state on confirm.
func NewPreviewModel(plan *engine.Plan, eng *engine.Engine, th theme.Theme) *PreviewModel {
	return &PreviewModel{
		plan:   plan,
		engine: eng,
		theme:  th,
	}
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		content := engine.Report(m.plan, m.theme, false)
		chrome := 2 // header + status bar
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter", "y":
			if m.applying || m.done {
				return m, nil
			}
			m.applying = true
			return m, m.engine.ProcessNextCmd()
		}

	case engine.OperationProgressMsg:
		m.progress = msg.Progress
		return m, m.engine.ProcessNextCmd()

	case engine.RenameCompleteMsg:
		m.applying = false
		m.done = true
		m.result = &msg
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PreviewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.theme.HeaderStyle().Width(m.width).Render("seriestidy rename preview")

	var status string
	switch {
	case m.done && m.result != nil:
		status = fmt.Sprintf("done: %d renamed, %d failed (q to quit)",
			m.result.SuccessCount(), m.result.ErrorCount())
	case m.applying:
		status = fmt.Sprintf("renaming %d/%d: %s",
			m.progress.OverallCompleted, m.progress.OverallTotal, m.progress.Current)
	default:
		status = "enter apply, q quit, arrows scroll"
	}
	statusBar := m.theme.StatusBarStyle().Width(m.width).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), statusBar)
}
