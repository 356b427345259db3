// Package docs renders the static about/documentation panel. No state,
// no messages — just prose derived from the portfolio record.
package docs

import (
	"fmt"
	"strings"

	"folio/domain"
	"folio/tui/common"
)

// View renders the documentation panel for the portfolio.
func View(p domain.Portfolio) string {
	var b strings.Builder

	if p.Summary != "" {
		b.WriteString("  " + common.LabelStyle.Render("About") + "\n")
		b.WriteString("  " + common.ContentStyle.Render(p.Summary) + "\n\n")
	}

	if len(p.Education) > 0 {
		b.WriteString("  " + common.LabelStyle.Render("Education") + "\n")
		for _, e := range p.Education {
			b.WriteString(fmt.Sprintf("  • %s — %s (%s)\n", e.Degree, e.Institution, e.Period))
		}
		b.WriteString("\n")
	}

	if len(p.Activities) > 0 {
		b.WriteString("  " + common.LabelStyle.Render("Activities") + "\n")
		for _, a := range p.Activities {
			b.WriteString("  • " + a + "\n")
		}
		b.WriteString("\n")
	}

	if socials := p.AdditionalInfo.SocialMedia; len(socials) > 0 {
		b.WriteString("  " + common.LabelStyle.Render("Elsewhere") + "\n")
		for _, s := range socials {
			b.WriteString("  • " + s.Platform + ": " + common.ContentStyle.Render(s.Handle) + "\n")
		}
	}

	if b.Len() == 0 {
		return "  Nothing documented yet.\n"
	}
	return b.String()
}
