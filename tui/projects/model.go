package projects

import (
	"context"
	"errors"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/app"
	"folio/domain"
	"folio/tui/common"
)

// maxVisible caps how many ranked repositories the view shows, however
// many were fetched.
const maxVisible = 6

// --- Messages ---

// ReposLoadedMsg is sent when a fetch attempt ends in usable data, either
// live or synthesized from local fallback projects.
type ReposLoadedMsg struct {
	Repos  []domain.RepoSummary
	Source domain.RepoSource
	ReqSeq int
}

// ReposErrorMsg is sent when a fetch fails and no fallback candidate
// exists.
type ReposErrorMsg struct {
	Err    error
	ReqSeq int
}

// --- Model ---

// Model holds the state for the projects (repository list) view. A fetch
// attempt ends in exactly one of three terminal states: loaded, loaded
// from fallback, or error.
type Model struct {
	service  app.RepoService
	username string
	fallback []domain.Project

	repos   []domain.RepoSummary
	source  domain.RepoSource
	cursor  int
	loading bool
	err     error
	reqSeq  int // Stamped onto fetches; stale completions are dropped.

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a projects model with injected dependencies.
func New(service app.RepoService, username string, fallback []domain.Project) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	return Model{
		service:  service,
		username: username,
		fallback: fallback,
		loading:  true,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchRepos(m.reqSeq),
		m.spinner.Tick,
	)
}

// SetUsername switches the fetch target and restarts loading. Prior
// results and errors are cleared; any in-flight fetch becomes stale.
func (m Model) SetUsername(username string, fallback []domain.Project) (Model, tea.Cmd) {
	m.username = username
	m.fallback = fallback
	m.repos = nil
	m.err = nil
	m.cursor = 0
	m.loading = true
	m.reqSeq++
	return m, m.fetchRepos(m.reqSeq)
}

// Update handles messages for the projects view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ReposLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.repos = msg.Repos
		m.source = msg.Source
		m.loading = false
		m.err = nil
		m.cursor = 0
		return m, nil

	case ReposErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.repos = nil
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			m.reqSeq++
			return m, tea.Batch(m.fetchRepos(m.reqSeq), m.spinner.Tick)

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Open):
			if repo, ok := m.Selected(); ok {
				return m, common.OpenURL(repo.HTMLURL)
			}
		}
	}

	return m, nil
}

// fetchRepos issues one API request and routes every failure through the
// fallback decision. Fallback success is presented as a normal loaded
// state, never as an error.
func (m Model) fetchRepos(reqSeq int) tea.Cmd {
	service := m.service
	username := m.username
	fallback := append([]domain.Project(nil), m.fallback...)
	return func() tea.Msg {
		if username == "" {
			return ReposLoadedMsg{Source: domain.RepoSourceLive, ReqSeq: reqSeq}
		}

		repos, err := service.ListPublicRepos(context.Background(), username)
		if err != nil {
			if local := domain.ReposFromProjects(fallback); len(local) > 0 {
				return ReposLoadedMsg{Repos: local, Source: domain.RepoSourceFallback, ReqSeq: reqSeq}
			}
			return ReposErrorMsg{Err: err, ReqSeq: reqSeq}
		}

		return ReposLoadedMsg{Repos: rankRepos(repos), Source: domain.RepoSourceLive, ReqSeq: reqSeq}
	}
}

// rankRepos drops forks and orders the rest by star count descending.
// The sort is stable so equally starred repos keep the API's recency
// order.
func rankRepos(repos []domain.RepoSummary) []domain.RepoSummary {
	out := make([]domain.RepoSummary, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	return out
}

// visible returns the capped slice the view operates on.
func (m Model) visible() []domain.RepoSummary {
	if len(m.repos) > maxVisible {
		return m.repos[:maxVisible]
	}
	return m.repos
}

// Selected returns the currently highlighted repository, if any.
func (m Model) Selected() (domain.RepoSummary, bool) {
	vis := m.visible()
	if len(vis) == 0 || m.cursor >= len(vis) {
		return domain.RepoSummary{}, false
	}
	return vis[m.cursor], true
}

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// errorMessage maps the classified error to the inline panel text.
func errorMessage(err error) string {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "GitHub rate limit reached. Try again later."
	case errors.Is(err, domain.ErrUserNotFound):
		return "GitHub user not found."
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return "Could not reach GitHub: " + err.Error()
	}
}
