package timeline

import (
	"fmt"
	"strings"

	"folio/domain"
	"folio/tui/common"
)

// View renders the timeline as a string.
func (m Model) View() string {
	var b strings.Builder

	if len(m.posts) == 0 {
		b.WriteString("  No posts yet. Press n to write the first one.\n")
		return b.String()
	}

	width := m.width
	if width < 40 {
		width = 80
	}

	for i, post := range m.posts {
		b.WriteString(m.renderPost(post, i == m.cursor, width))
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render("  ↑/↓: select • n: new post • e: edit • o: open link"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderPost(post domain.Post, selected bool, width int) string {
	title := post.Title
	if title == "" {
		title = common.FirstLine(post.Content)
	}
	header := common.TitleStyle.Render(common.Truncate(title, width-24)) +
		"  " + common.TimestampStyle.Render(post.CreatedAt.Format("Jan 02, 2006"))

	body := common.ContentStyle.Render(common.Truncate(common.FirstLine(post.Content), width-8))

	lines := []string{header, body}

	// Attachments split by kind; a missing group renders nothing.
	images, docs := splitAttachments(post.Attachments)
	if len(images) > 0 {
		lines = append(lines, common.MetaStyle.Render(fmt.Sprintf("🖼 %s", strings.Join(images, ", "))))
	}
	if len(docs) > 0 {
		lines = append(lines, common.MetaStyle.Render(fmt.Sprintf("📄 %s", strings.Join(docs, ", "))))
	}

	if len(post.Links) > 0 {
		titles := make([]string, 0, len(post.Links))
		for _, l := range post.Links {
			titles = append(titles, l.Title)
		}
		lines = append(lines, common.FieldDimStyle.Render("🔗 "+strings.Join(titles, " • ")))
	}

	box := strings.Join(lines, "\n")
	if selected {
		return common.SelectedStyle.Width(width - 4).Render(box)
	}
	return common.UnselectedStyle.Width(width - 4).Render(box)
}

// splitAttachments groups attachment names into image and document kinds
// for independent layout.
func splitAttachments(atts []domain.Attachment) (images, docs []string) {
	for _, a := range atts {
		switch a.Kind {
		case domain.AttachmentImage:
			images = append(images, a.Name)
		default:
			docs = append(docs, a.Name)
		}
	}
	return images, docs
}
