package resume

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/domain"
	"folio/infra/drive"
	"folio/tui/common"
)

// Model holds the state for the résumé view. Both URLs are derived once
// from the profile's source URL; derivation never fails, a parse miss
// just passes the source through.
type Model struct {
	profile domain.Profile
	links   drive.Links
	keys    common.KeyMap
}

// New creates a résumé model for the given profile.
func New(profile domain.Profile) Model {
	return Model{
		profile: profile,
		links:   drive.DeriveLinks(profile.ResumePDFURL),
		keys:    common.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the résumé view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Open):
			return m, common.OpenURL(m.links.Preview)
		case key.Matches(msg, m.keys.Download):
			return m, common.OpenURL(m.links.Download)
		}
	}
	return m, nil
}

// View renders the résumé panel.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("  " + common.TitleStyle.Render(m.profile.Name) + "\n\n")

	if m.profile.ResumePDFURL == "" {
		b.WriteString("  No résumé document configured.\n")
		return b.String()
	}

	b.WriteString("  " + common.LabelStyle.Render("Preview:") + "  " +
		common.ContentStyle.Render(m.links.Preview) + "\n")
	b.WriteString("  " + common.LabelStyle.Render("Download:") + " " +
		common.ContentStyle.Render(m.links.Download) + "\n")

	b.WriteString(common.StatusBarStyle.Render("  o: open preview • d: open download"))
	b.WriteString("\n")

	return b.String()
}

// Links exposes the derived URLs for the shell and tests.
func (m Model) Links() drive.Links {
	return m.links
}
