package timeline

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/domain"
	"folio/tui/common"
)

// --- Messages ---

// EditPostMsg is sent upward when the user asks to edit the selected post.
type EditPostMsg struct {
	Post domain.Post
}

// --- Model ---

// Model holds the state for the timeline (blog posts) view.
type Model struct {
	posts  []domain.Post
	cursor int
	keys   common.KeyMap
	width  int
	height int
}

// New creates a timeline model showing the given posts newest first.
func New(posts []domain.Post) Model {
	return Model{
		posts: sortByDateDesc(posts),
		keys:  common.DefaultKeyMap(),
	}
}

// SetPosts replaces the rendered collection, re-sorting it. Called by the
// shell after a save lands.
func (m Model) SetPosts(posts []domain.Post) Model {
	m.posts = sortByDateDesc(posts)
	if m.cursor >= len(m.posts) {
		m.cursor = 0
	}
	return m
}

// sortByDateDesc orders posts newest first without mutating the input.
// The sort is stable so same-timestamp posts keep their relative order.
func sortByDateDesc(posts []domain.Post) []domain.Post {
	out := append([]domain.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Init implements tea.Model; the timeline has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the timeline view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Edit):
			if post, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditPostMsg{Post: post} }
			}

		case key.Matches(msg, m.keys.Open):
			if post, ok := m.Selected(); ok && len(post.Links) > 0 {
				return m, common.OpenURL(post.Links[0].URL)
			}
		}
	}

	return m, nil
}

// Selected returns the currently highlighted post, if any.
func (m Model) Selected() (domain.Post, bool) {
	if len(m.posts) == 0 || m.cursor >= len(m.posts) {
		return domain.Post{}, false
	}
	return m.posts[m.cursor], true
}

// Posts returns the rendered order, newest first.
func (m Model) Posts() []domain.Post {
	return m.posts
}
