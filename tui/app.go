package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"folio/app"
	"folio/domain"
	"folio/infra/config"
	"folio/tui/common"
	"folio/tui/docs"
	"folio/tui/editor"
	"folio/tui/projects"
	"folio/tui/resume"
	"folio/tui/timeline"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI
// container.
type Deps struct {
	Repos     app.RepoService
	Store     app.PostStore
	Portfolio domain.Portfolio
	Username  string
	StatePath string
	View      string // Initial view name, usually from persisted UI state.
}

type activeView int

const (
	projectsView activeView = iota
	timelineView
	resumeView
	docsView
	viewCount
)

var viewNames = [viewCount]string{"projects", "timeline", "resume", "docs"}

func parseView(name string) activeView {
	for i, n := range viewNames {
		if n == name {
			return activeView(i)
		}
	}
	return projectsView
}

// --- Messages ---

// SaveResultMsg reports the outcome of persisting a draft.
type SaveResultMsg struct {
	Post domain.Post
	Err  error
}

type stateSavedMsg struct{ err error }

// --- Model ---

// App is the root Bubble Tea model. It routes between the four read-only
// views and overlays the post editor on demand. The portfolio record is
// read-only everywhere; edits come back up as messages.
type App struct {
	deps   Deps
	active activeView

	projects projects.Model
	timeline timeline.Model
	resume   resume.Model

	editing       bool
	editor        editor.Model
	editorSession int // Bumped on every open; stale editor reads die with it.

	keys   common.KeyMap
	status string
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:     deps,
		active:   parseView(deps.View),
		projects: projects.New(deps.Repos, deps.Username, deps.Portfolio.Projects),
		timeline: timeline.New(deps.Store.All()),
		resume:   resume.New(deps.Portfolio.Profile),
		keys:     common.DefaultKeyMap(),
	}
}

// Init delegates to the sub-models that do startup work.
func (a App) Init() tea.Cmd {
	return a.projects.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Every view tracks its own size.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.projects, cmd = a.projects.Update(msg)
		cmds = append(cmds, cmd)
		a.timeline, cmd = a.timeline.Update(msg)
		cmds = append(cmds, cmd)
		if a.editing {
			a.editor, cmd = a.editor.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.projects, cmd = a.projects.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.editing {
			break // The editor owns the keyboard while open.
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Sequence(a.persistUIState(), tea.Quit)

		case key.Matches(msg, a.keys.NextView):
			a.active = (a.active + 1) % viewCount
			a.status = ""
			return a, nil

		case key.Matches(msg, a.keys.PrevView):
			a.active = (a.active + viewCount - 1) % viewCount
			a.status = ""
			return a, nil

		case key.Matches(msg, a.keys.New):
			if a.active == timelineView {
				a.editorSession++
				a.editing = true
				a.status = ""
				a.editor = editor.NewCreate(a.editorSession)
				return a, a.editor.Init()
			}
		}

	case timeline.EditPostMsg:
		a.editorSession++
		a.editing = true
		a.status = ""
		a.editor = editor.NewEdit(msg.Post, a.editorSession)
		return a, a.editor.Init()

	case editor.DoneMsg:
		// Hand-off: persist in the background. The editor closes on its
		// own schedule regardless of this outcome.
		store := a.deps.Store
		draft := msg.Draft
		return a, func() tea.Msg {
			post, err := store.Save(draft)
			return SaveResultMsg{Post: post, Err: err}
		}

	case editor.ClosedMsg:
		a.editing = false
		if msg.Cancelled {
			a.status = "Cancelled."
		}
		return a, nil

	case SaveResultMsg:
		if msg.Err != nil {
			a.status = "Error saving: " + msg.Err.Error()
			return a, nil
		}
		a.timeline = a.timeline.SetPosts(a.deps.Store.All())
		a.status = "Post saved."
		return a, nil

	case stateSavedMsg:
		return a, nil
	}

	// Delegate to the editor overlay or the active sub-model.
	if a.editing {
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}

	switch a.active {
	case projectsView:
		var cmd tea.Cmd
		a.projects, cmd = a.projects.Update(msg)
		return a, cmd
	case timelineView:
		var cmd tea.Cmd
		a.timeline, cmd = a.timeline.Update(msg)
		return a, cmd
	case resumeView:
		var cmd tea.Cmd
		a.resume, cmd = a.resume.Update(msg)
		return a, cmd
	}

	return a, nil
}

// persistUIState remembers the active view for the next session. Failure
// is not worth surfacing on the way out.
func (a App) persistUIState() tea.Cmd {
	path := a.deps.StatePath
	st := config.UIState{ActiveView: viewNames[a.active]}
	return func() tea.Msg {
		return stateSavedMsg{err: config.SaveUIState(path, st)}
	}
}

// View renders the editor overlay or the active sub-model.
func (a App) View() string {
	var s string

	if a.editing {
		s = a.editor.View()
	} else {
		s = a.header() + a.activeBody()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render("  "+a.status)
	}

	return s
}

func (a App) header() string {
	title := common.AppTitleStyle.Render("folio")
	tagline := common.TaglineStyle.Render(a.deps.Portfolio.Name)

	tabs := ""
	for i, name := range viewNames {
		if activeView(i) == a.active {
			tabs += common.TabActiveStyle.Render(name)
		} else {
			tabs += common.TabInactiveStyle.Render(name)
		}
	}

	return title + "  " + tagline + "\n " + tabs + "\n\n"
}

func (a App) activeBody() string {
	switch a.active {
	case projectsView:
		return a.projects.View()
	case timelineView:
		return a.timeline.View()
	case resumeView:
		return a.resume.View()
	case docsView:
		return docs.View(a.deps.Portfolio)
	}
	return ""
}
