package editor

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/domain"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func populatedPost() domain.Post {
	return domain.Post{
		ID:        "b1",
		Title:     "Existing",
		Content:   "existing content",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Attachments: []domain.Attachment{
			{ID: "a1", Name: "shot.png", Kind: domain.AttachmentImage, Data: "data:image/png;base64,"},
		},
		Links: []domain.Link{{ID: "l1", Title: "Repo", URL: "https://github.com/x"}},
	}
}

func TestNewCreate_AllFieldsEmpty(t *testing.T) {
	m := NewCreate(1)
	d := m.Draft()
	if d.ID != "" || d.Title != "" || d.Content != "" {
		t.Fatalf("create mode must start empty: %#v", d)
	}
	if len(d.Attachments) != 0 || len(d.Links) != 0 {
		t.Fatalf("create mode must start without items")
	}
	if m.linkTitle.Value() != "" || m.linkURL.Value() != "" {
		t.Fatalf("link inputs must start empty")
	}
}

func TestNewEdit_PopulatesFromPost(t *testing.T) {
	m := NewEdit(populatedPost(), 1)
	d := m.Draft()
	if d.ID != "b1" || d.Title != "Existing" || d.Content != "existing content" {
		t.Fatalf("edit mode must mirror the post: %#v", d)
	}
	if len(d.Attachments) != 1 || len(d.Links) != 1 {
		t.Fatalf("items must carry over: %#v", d)
	}
	// The in-progress link inputs reset on open regardless of mode.
	if m.linkTitle.Value() != "" || m.linkURL.Value() != "" {
		t.Fatalf("link inputs must reset on open")
	}
}

func TestSave_DisabledForBlankContent(t *testing.T) {
	m := NewCreate(1)
	m.content.SetValue("   \n\t  ")
	if m.CanSave() {
		t.Fatalf("blank content must disable save")
	}

	updated, cmd := m.save()
	if updated.Saving() || cmd != nil {
		t.Fatalf("save must be a no-op while disabled")
	}
}

func TestSave_HandsOffDraftThenSchedulesClose(t *testing.T) {
	m := NewEdit(populatedPost(), 1)
	m.content.SetValue("updated content")

	updated, cmd := m.Update(keyMsg("ctrl+s"))
	if !updated.Saving() {
		t.Fatalf("expected saving state")
	}
	if cmd == nil {
		t.Fatalf("expected hand-off command")
	}

	// The batch carries the DoneMsg and the delayed close tick; the
	// DoneMsg resolves immediately.
	found := false
	for _, c := range collectMsgs(cmd) {
		if done, ok := c.(DoneMsg); ok {
			found = true
			if done.Draft.ID != "b1" || done.Draft.Content != "updated content" {
				t.Fatalf("unexpected draft: %#v", done.Draft)
			}
		}
	}
	if !found {
		t.Fatalf("expected DoneMsg in batch")
	}

	// A second save while one is in flight is ignored.
	again, cmd2 := updated.Update(keyMsg("ctrl+s"))
	if cmd2 != nil || !again.Saving() {
		t.Fatalf("save must be ignored while saving")
	}

	// The close tick closes unconditionally.
	_, closeCmd := updated.Update(closeTickMsg{})
	if closeCmd == nil {
		t.Fatalf("expected close command")
	}
	if msg, ok := closeCmd().(ClosedMsg); !ok || msg.Cancelled {
		t.Fatalf("expected non-cancel close, got %#v", msg)
	}
}

// collectMsgs resolves a (possibly batched) command into its immediate
// messages, skipping timers.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestCancel_ClosesWithoutDraft(t *testing.T) {
	m := NewCreate(1)
	m.content.SetValue("unsaved")

	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatalf("expected close command")
	}
	if msg, ok := cmd().(ClosedMsg); !ok || !msg.Cancelled {
		t.Fatalf("expected cancelled close, got %#v", msg)
	}
}

func TestAttachmentRead_AppendsOnCompletion(t *testing.T) {
	m := NewCreate(7)
	att := domain.Attachment{ID: "a1", Name: "pic.png", Kind: domain.AttachmentImage}

	updated, _ := m.Update(AttachmentReadMsg{Session: 7, Attachment: att})
	if len(updated.attachments) != 1 || updated.attachments[0].ID != "a1" {
		t.Fatalf("completion must append: %#v", updated.attachments)
	}
}

func TestAttachmentRead_StaleSessionDropped(t *testing.T) {
	m := NewCreate(7)
	att := domain.Attachment{ID: "a1", Name: "pic.png"}

	updated, _ := m.Update(AttachmentReadMsg{Session: 6, Attachment: att})
	if len(updated.attachments) != 0 {
		t.Fatalf("stale session read must be dropped")
	}
}

func TestAttachmentRead_ErrorSurfacesWithoutAppending(t *testing.T) {
	m := NewCreate(7)
	updated, _ := m.Update(AttachmentReadMsg{Session: 7, Err: errors.New("boom")})
	if len(updated.attachments) != 0 {
		t.Fatalf("failed read must not append")
	}
	if updated.status == "" {
		t.Fatalf("failure must surface in status")
	}
}

func TestAddAttachment_FiresReadWithCurrentSession(t *testing.T) {
	m := NewCreate(3)
	m.readFile = func(path string) (domain.Attachment, error) {
		return domain.Attachment{ID: "x", Name: path}, nil
	}
	m = m.setFocus(focusAttachPath)
	m.attachPath.SetValue("notes.pdf")

	updated, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatalf("expected read command")
	}
	if updated.attachPath.Value() != "" {
		t.Fatalf("path input must clear on submit")
	}
	msg, ok := cmd().(AttachmentReadMsg)
	if !ok || msg.Session != 3 || msg.Attachment.Name != "notes.pdf" {
		t.Fatalf("unexpected read result: %#v", msg)
	}
}

func TestAddLink_RequiresBothFieldsAndClears(t *testing.T) {
	m := NewCreate(1)
	m = m.setFocus(focusLinkTitle)
	m.linkTitle.SetValue("  Docs  ")
	m.linkURL.SetValue("")

	m = m.addLink()
	if len(m.links) != 0 {
		t.Fatalf("blank url must reject the link")
	}

	m.linkURL.SetValue("https://example.com")
	m = m.addLink()
	if len(m.links) != 1 {
		t.Fatalf("expected link appended")
	}
	l := m.links[0]
	if l.Title != "Docs" || l.URL != "https://example.com" || l.ID == "" {
		t.Fatalf("unexpected link: %#v", l)
	}
	if m.linkTitle.Value() != "" || m.linkURL.Value() != "" {
		t.Fatalf("inputs must clear after append")
	}
}

func TestRemove_ByIdentitySurvivesConcurrentAppend(t *testing.T) {
	m := NewCreate(1)
	m.attachments = []domain.Attachment{
		{ID: "a0", Name: "zero"},
		{ID: "a1", Name: "one"},
		{ID: "a2", Name: "two"},
	}
	m = m.setFocus(focusItems)
	m.itemCursor = 1

	// A late async read lands before the removal is applied.
	m, _ = m.Update(AttachmentReadMsg{Session: 1, Attachment: domain.Attachment{ID: "a3", Name: "three"}})

	m = m.updateItems("ctrl+x")
	if len(m.attachments) != 3 {
		t.Fatalf("expected one removal, got %#v", m.attachments)
	}
	ids := []string{m.attachments[0].ID, m.attachments[1].ID, m.attachments[2].ID}
	if ids[0] != "a0" || ids[1] != "a2" || ids[2] != "a3" {
		t.Fatalf("removal must target a1 by identity: %v", ids)
	}
}

func TestRemove_MiddleIndexReindexesRemainder(t *testing.T) {
	m := NewCreate(1)
	m.attachments = []domain.Attachment{
		{ID: "a0", Name: "zero"},
		{ID: "a1", Name: "one"},
		{ID: "a2", Name: "two"},
	}
	m = m.setFocus(focusItems)
	m.itemCursor = 1

	m = m.updateItems("ctrl+x")
	if len(m.attachments) != 2 {
		t.Fatalf("expected 2 left")
	}
	if m.attachments[0].ID != "a0" || m.attachments[1].ID != "a2" {
		t.Fatalf("expected original 0 and 2 re-indexed: %#v", m.attachments)
	}
}

func TestRemove_LinkSelectionOffsetsPastAttachments(t *testing.T) {
	m := NewEdit(populatedPost(), 1)
	m = m.setFocus(focusItems)
	m.itemCursor = 1 // one attachment, then the link

	m = m.updateItems("ctrl+x")
	if len(m.links) != 0 {
		t.Fatalf("expected link removed: %#v", m.links)
	}
	if len(m.attachments) != 1 {
		t.Fatalf("attachment must survive: %#v", m.attachments)
	}
}
