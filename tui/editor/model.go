package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"folio/domain"
	"folio/infra/files"
)

// saveDelay is a fixed feedback pause between handing the draft off and
// closing, so the "Saving..." state is visible at all.
const saveDelay = 300 * time.Millisecond

// --- Mode ---

type mode int

const (
	createMode mode = iota
	editMode
)

// --- Focus ---

type focusField int

const (
	focusTitle focusField = iota
	focusContent
	focusAttachPath
	focusLinkTitle
	focusLinkURL
	focusItems // selection over added attachments and links
	focusCount
)

// --- Messages ---

// DoneMsg hands the completed draft to the caller. The editor does not
// observe what the caller does with it.
type DoneMsg struct {
	Draft domain.Draft
}

// ClosedMsg is sent when the editor is finished (saved or cancelled) and
// should be dismissed.
type ClosedMsg struct {
	Cancelled bool
}

// AttachmentReadMsg is the completion of one asynchronous file read.
// Session identifies the editor lifetime that started the read; stale
// completions are dropped.
type AttachmentReadMsg struct {
	Session    int
	Attachment domain.Attachment
	Err        error
}

type closeTickMsg struct{}

// --- Model ---

// Model holds the state of the post editor. Lifecycle: opened for create
// or edit, then saving, then closed; the shell drops the model entirely
// once ClosedMsg arrives.
type Model struct {
	mode   mode
	postID string

	title      textinput.Model
	content    textarea.Model
	attachPath textinput.Model
	linkTitle  textinput.Model
	linkURL    textinput.Model

	attachments []domain.Attachment
	links       []domain.Link

	focus      focusField
	itemCursor int
	saving     bool
	session    int // Lifetime token for in-flight file reads.
	status     string
	width      int

	readFile func(path string) (domain.Attachment, error)
}

// NewCreate opens the editor with every field empty.
func NewCreate(session int) Model {
	return newModel(createMode, domain.Post{}, session)
}

// NewEdit opens the editor populated from an existing post. The
// link-being-composed inputs always start empty, whatever the mode.
func NewEdit(post domain.Post, session int) Model {
	return newModel(editMode, post, session)
}

func newModel(md mode, post domain.Post, session int) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120
	title.SetValue(post.Title)
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.SetWidth(72)
	content.SetHeight(8)
	content.SetValue(post.Content)

	attachPath := textinput.New()
	attachPath.Placeholder = "Path to attach, then enter"

	linkTitle := textinput.New()
	linkTitle.Placeholder = "Link title"

	linkURL := textinput.New()
	linkURL.Placeholder = "https://..."

	return Model{
		mode:        md,
		postID:      post.ID,
		title:       title,
		content:     content,
		attachPath:  attachPath,
		linkTitle:   linkTitle,
		linkURL:     linkURL,
		attachments: append([]domain.Attachment(nil), post.Attachments...),
		links:       append([]domain.Link(nil), post.Links...),
		session:     session,
		readFile:    files.Encode,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case AttachmentReadMsg:
		// A read finishing after the editor was reopened belongs to a
		// previous lifetime; appending it would resurrect stale state.
		if msg.Session != m.session {
			return m, nil
		}
		if msg.Err != nil {
			m.status = "Attach failed: " + msg.Err.Error()
			return m, nil
		}
		m.attachments = append(m.attachments, msg.Attachment)
		m.status = "Attached " + msg.Attachment.Name
		return m, nil

	case closeTickMsg:
		return m, func() tea.Msg { return ClosedMsg{} }

	case tea.KeyMsg:
		if m.saving {
			// Saving is terminal; ignore input until the close tick.
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return ClosedMsg{Cancelled: true} }

		case "tab":
			m = m.setFocus((m.focus + 1) % focusCount)
			return m, nil

		case "shift+tab":
			m = m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil

		case "ctrl+s":
			return m.save()

		case "enter":
			switch m.focus {
			case focusAttachPath:
				return m.addAttachment()
			case focusLinkTitle, focusLinkURL:
				m = m.addLink()
				return m, nil
			}

		case "up", "down", "ctrl+x":
			if m.focus == focusItems {
				return m.updateItems(msg.String()), nil
			}
		}
	}

	return m.updateFocused(msg)
}

// updateFocused routes remaining messages to the focused input.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusContent:
		m.content, cmd = m.content.Update(msg)
	case focusAttachPath:
		m.attachPath, cmd = m.attachPath.Update(msg)
	case focusLinkTitle:
		m.linkTitle, cmd = m.linkTitle.Update(msg)
	case focusLinkURL:
		m.linkURL, cmd = m.linkURL.Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(f focusField) Model {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	m.attachPath.Blur()
	m.linkTitle.Blur()
	m.linkURL.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusContent:
		m.content.Focus()
	case focusAttachPath:
		m.attachPath.Focus()
	case focusLinkTitle:
		m.linkTitle.Focus()
	case focusLinkURL:
		m.linkURL.Focus()
	case focusItems:
		m.itemCursor = 0
	}
	return m
}

// --- Attachments ---

// addAttachment starts an asynchronous read of the typed path. Several
// reads may be in flight at once; each appends independently on
// completion, last to finish appends last.
func (m Model) addAttachment() (Model, tea.Cmd) {
	path := strings.TrimSpace(m.attachPath.Value())
	if path == "" {
		return m, nil
	}
	m.attachPath.SetValue("")
	m.status = "Reading " + path + "..."

	session := m.session
	read := m.readFile
	return m, func() tea.Msg {
		att, err := read(path)
		return AttachmentReadMsg{Session: session, Attachment: att, Err: err}
	}
}

// --- Links ---

// addLink appends the composed link when both fields are non-blank, then
// clears the inputs.
func (m Model) addLink() Model {
	title := strings.TrimSpace(m.linkTitle.Value())
	url := strings.TrimSpace(m.linkURL.Value())
	if title == "" || url == "" {
		m.status = "A link needs both a title and a URL."
		return m
	}
	m.links = append(m.links, domain.Link{ID: uuid.New().String(), Title: title, URL: url})
	m.linkTitle.SetValue("")
	m.linkURL.SetValue("")
	m.status = "Link added."
	return m
}

// --- Item selection and removal ---

// itemCount is attachments followed by links, in display order.
func (m Model) itemCount() int {
	return len(m.attachments) + len(m.links)
}

// updateItems moves the selection or removes the selected entry. Removal
// targets the entry's generated ID, so a concurrent append can never
// shift the target under the cursor.
func (m Model) updateItems(k string) Model {
	switch k {
	case "up":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down":
		if m.itemCursor < m.itemCount()-1 {
			m.itemCursor++
		}
	case "ctrl+x":
		if m.itemCursor < len(m.attachments) {
			m = m.removeAttachment(m.attachments[m.itemCursor].ID)
		} else if i := m.itemCursor - len(m.attachments); i < len(m.links) {
			m = m.removeLink(m.links[i].ID)
		}
		if m.itemCursor >= m.itemCount() && m.itemCursor > 0 {
			m.itemCursor--
		}
	}
	return m
}

func (m Model) removeAttachment(id string) Model {
	out := m.attachments[:0:0]
	for _, a := range m.attachments {
		if a.ID != id {
			out = append(out, a)
		}
	}
	m.attachments = out
	return m
}

func (m Model) removeLink(id string) Model {
	out := m.links[:0:0]
	for _, l := range m.links {
		if l.ID != id {
			out = append(out, l)
		}
	}
	m.links = out
	return m
}

// --- Save ---

// CanSave reports whether saving is currently allowed: content must be
// non-blank and no save may already be in progress.
func (m Model) CanSave() bool {
	return !m.saving && strings.TrimSpace(m.content.Value()) != ""
}

// save hands the draft off and schedules the unconditional close.
func (m Model) save() (Model, tea.Cmd) {
	if !m.CanSave() {
		m.status = "Nothing to save — content is empty."
		return m, nil
	}
	m.saving = true
	m.status = "Saving..."

	draft := m.Draft()
	return m, tea.Batch(
		func() tea.Msg { return DoneMsg{Draft: draft} },
		tea.Tick(saveDelay, func(time.Time) tea.Msg { return closeTickMsg{} }),
	)
}

// Draft packages the current form state. The ID is only carried when
// editing; timestamps are never the editor's to assign.
func (m Model) Draft() domain.Draft {
	d := domain.Draft{
		Title:       strings.TrimSpace(m.title.Value()),
		Content:     m.content.Value(),
		Attachments: append([]domain.Attachment(nil), m.attachments...),
		Links:       append([]domain.Link(nil), m.links...),
	}
	if m.mode == editMode {
		d.ID = m.postID
	}
	return d
}

// Saving reports whether the editor is in its closing feedback delay.
func (m Model) Saving() bool {
	return m.saving
}
