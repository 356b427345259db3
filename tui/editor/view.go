package editor

import (
	"fmt"
	"strings"

	"folio/domain"
	"folio/tui/common"
)

// View renders the editor form.
func (m Model) View() string {
	var b strings.Builder

	heading := "New Post"
	if m.mode == editMode {
		heading = "Edit Post"
	}
	b.WriteString(common.AppTitleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Title", m.title.View(), m.focus == focusTitle))
	b.WriteString(m.renderField("Content", m.content.View(), m.focus == focusContent))
	b.WriteString(m.renderField("Attach file", m.attachPath.View(), m.focus == focusAttachPath))
	b.WriteString(m.renderField("Link title", m.linkTitle.View(), m.focus == focusLinkTitle))
	b.WriteString(m.renderField("Link URL", m.linkURL.View(), m.focus == focusLinkURL))

	b.WriteString(m.renderItems())

	if m.status != "" {
		b.WriteString("\n" + common.StatusBarStyle.Render("  "+m.status))
	}

	save := "ctrl+s: save"
	if !m.CanSave() {
		save = common.FieldDimStyle.Render("ctrl+s: save (needs content)")
	}
	b.WriteString("\n" + common.StatusBarStyle.Render(
		fmt.Sprintf("  tab: next field • %s • esc: cancel", save)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderField(label, field string, focused bool) string {
	style := common.FieldDimStyle
	if focused {
		style = common.LabelStyle
	}
	return "  " + style.Render(label) + "\n  " + field + "\n"
}

// renderItems lists added attachments and links; the selected entry is
// the removal target while the item section has focus.
func (m Model) renderItems() string {
	if m.itemCount() == 0 {
		return ""
	}

	var b strings.Builder
	label := common.FieldDimStyle
	if m.focus == focusItems {
		label = common.LabelStyle
	}
	b.WriteString("  " + label.Render("Attached (ctrl+x removes)") + "\n")

	i := 0
	for _, a := range m.attachments {
		icon := "📄"
		if a.Kind == domain.AttachmentImage {
			icon = "🖼"
		}
		b.WriteString(m.renderItem(fmt.Sprintf("%s %s", icon, a.Name), i))
		i++
	}
	for _, l := range m.links {
		b.WriteString(m.renderItem(fmt.Sprintf("🔗 %s → %s", l.Title, l.URL), i))
		i++
	}
	return b.String()
}

func (m Model) renderItem(text string, idx int) string {
	cursor := "  "
	style := common.ContentStyle
	if m.focus == focusItems && idx == m.itemCursor {
		cursor = "> "
		style = common.TitleStyle
	}
	return "  " + cursor + style.Render(text) + "\n"
}
