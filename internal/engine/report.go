package engine

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"seriestidy/internal/tui/theme"
)

// Report renders a plan as styled text, one season per section. The same
// rendering backs the interactive preview and the --dry-run output; only
// the heading differs.
func Report(plan *Plan, th theme.Theme, dryRun bool) string {
	colors := th.Colors()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colors.Primary)
	arrowStyle := lipgloss.NewStyle().Foreground(colors.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(colors.Muted)
	errStyle := lipgloss.NewStyle().Foreground(colors.Error)

	var b strings.Builder

	if dryRun {
		b.WriteString(headerStyle.Render("Dry run, no files will be changed"))
		b.WriteString("\n\n")
	}

	renames, unchanged, skipped := 0, 0, len(plan.Skips)

	for _, season := range plan.Seasons {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s Season %d", th.Icon("season"), season.Number)))
		b.WriteString("\n")

		width := 0
		for _, item := range season.Files {
			if w := runewidth.StringWidth(item.OldName); w > width {
				width = w
			}
		}
		if season.Dir != nil {
			if w := runewidth.StringWidth(season.Dir.OldName); w > width {
				width = w
			}
		}

		row := func(item *Item) {
			old := runewidth.FillRight(item.OldName, width)
			if item.NoOp {
				unchanged++
				b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s %s %s", th.Icon("nochange"), old, "(unchanged)")))
			} else {
				renames++
				b.WriteString(fmt.Sprintf("  %s %s %s %s",
					th.Icon("needrename"), old, arrowStyle.Render("->"), item.NewName))
			}
			b.WriteString("\n")
		}

		for _, item := range season.Files {
			row(item)
		}
		if season.Dir != nil {
			row(season.Dir)
		}
		for _, skip := range season.Skips {
			skipped++
			b.WriteString(errStyle.Render(fmt.Sprintf("  %s %s (skipped: %s)", th.Icon("error"), skip.Name, skip.Reason)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, skip := range plan.Skips {
		b.WriteString(errStyle.Render(fmt.Sprintf("%s %s (skipped: %s)", th.Icon("error"), skip.Name, skip.Reason)))
		b.WriteString("\n")
	}
	if len(plan.Skips) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d to rename, %d unchanged, %d skipped", renames, unchanged, skipped)))
	b.WriteString("\n")

	return b.String()
}
