package projects

import (
	"fmt"
	"strings"

	"folio/domain"
	"folio/tui/common"
)

// View renders the projects view as a string.
func (m Model) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Loading repositories...\n", m.spinner.View()))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(common.ErrorStyle.Render("  " + errorMessage(m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
		return b.String()
	}

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString("  No repositories to show.\n")
		return b.String()
	}

	if m.source == domain.RepoSourceFallback {
		b.WriteString(common.BadgeStyle.Render("⚠ showing local project data (GitHub unreachable)"))
		b.WriteString("\n")
	}

	width := m.width
	if width < 40 {
		width = 80
	}

	for i, repo := range vis {
		title := common.TitleStyle.Render(repo.Name)
		meta := common.MetaStyle.Render(fmt.Sprintf("★ %d  ⑂ %d  %s", repo.Stars, repo.Forks, repo.Language))

		desc := repo.Description
		if desc == "" {
			desc = "No description."
		}
		desc = common.ContentStyle.Render(common.Truncate(desc, width-8))

		box := title + "  " + meta + "\n" + desc
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Width(width - 4).Render(box))
		} else {
			b.WriteString(common.UnselectedStyle.Width(width - 4).Render(box))
		}
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render("  ↑/↓: select • o: open in browser • r: refresh"))
	b.WriteString("\n")

	return b.String()
}
