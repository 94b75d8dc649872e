package tui

import (
	"apilens/internal/catalog"
	"apilens/internal/index"
	"apilens/internal/query"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents which screen is active.
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewBrowse
	ViewDetail
)

// Config holds configuration passed from the CLI layer.
type Config struct {
	LibraryName string
}

// Model is the top-level Bubble Tea model.
type Model struct {
	state  ViewState
	config Config
	width  int
	height int

	loading loadingModel
	browse  browseModel
	detail  detailModel

	engine *query.Engine
	err    error
}

// New creates a new TUI model with the given config.
func New(cfg Config) Model {
	return Model{
		state:   ViewLoading,
		config:  cfg,
		loading: newLoadingModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, buildIndex())
}

// buildDoneMsg is sent when the index build completes.
type buildDoneMsg struct {
	engine *query.Engine
	err    error
}

func buildIndex() tea.Cmd {
	return func() tea.Msg {
		idx, err := index.FromLibrary(catalog.OpenReview())
		if err != nil {
			return buildDoneMsg{err: err}
		}
		return buildDoneMsg{engine: query.New(index.NewHolder(idx))}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == ViewDetail {
			var c tea.Cmd
			m.detail, c = m.detail.Update(msg)
			return m, c
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case buildDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.engine = msg.engine
		m.browse = newBrowseModel(m.engine)
		m.state = ViewBrowse
		return m, m.browse.input.Focus()
	}

	var cmd tea.Cmd

	switch m.state {
	case ViewLoading:
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case ViewBrowse:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				return m, tea.Quit
			case "enter":
				if rec := m.browse.selected(); rec != "" {
					m.detail = newDetailModel(m.engine, rec, m.width, m.height)
					m.state = ViewDetail
					return m, nil
				}
			}
		}
		m.browse, cmd = m.browse.Update(msg)
		return m, cmd

	case ViewDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "q":
				m.state = ViewBrowse
				return m, nil
			}
		}
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	switch m.state {
	case ViewLoading:
		return m.loading.View(m.config.LibraryName)
	case ViewBrowse:
		return m.browse.View(m.width, m.height)
	case ViewDetail:
		return m.detail.View(m.width, m.height)
	}
	return ""
}

// Run starts the TUI program.
func Run(cfg Config) error {
	model := New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
