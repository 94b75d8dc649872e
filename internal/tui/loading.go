package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle
	return loadingModel{spinner: sp}
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loadingModel) View(libraryName string) string {
	s := "\n"
	s += titleStyle.Render("  ◆ apilens") + "\n"
	s += subtitleStyle.Render("  API explorer for "+libraryName) + "\n\n"
	s += "  " + m.spinner.View() + " Building index...\n"
	return s
}
