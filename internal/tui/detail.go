package tui

import (
	"fmt"
	"strings"

	"apilens/internal/query"
	"apilens/internal/record"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type detailModel struct {
	path     string
	markdown string
	viewport viewport.Model
}

func newDetailModel(e *query.Engine, path string, width, height int) detailModel {
	m := detailModel{path: path, markdown: detailMarkdown(e, path)}
	m.initViewport(width, height)
	return m
}

func (m *detailModel) initViewport(width, height int) {
	vpHeight := height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	if width <= 0 {
		width = 80
	}

	m.viewport = viewport.New(width, vpHeight)

	// Render through glamour matched to the current width; fall back to
	// the raw markdown if the renderer cannot be built.
	content := m.markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err == nil {
		if out, rerr := r.Render(m.markdown); rerr == nil {
			content = out
		}
	}
	m.viewport.SetContent(content)
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.initViewport(sizeMsg.Width, sizeMsg.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("  "+m.path) + "\n")
	sb.WriteString(m.viewport.View() + "\n")
	sb.WriteString(helpStyle.Render("  ↑/↓ scroll · esc back") + "\n")
	return sb.String()
}

// detailMarkdown builds the markdown body for one record.
func detailMarkdown(e *query.Engine, path string) string {
	for _, f := range e.ListFunctions("") {
		if f.Path == path {
			return functionMarkdown(f)
		}
	}
	for _, c := range e.ListClasses(true) {
		if c.Path == path {
			return classMarkdown(c)
		}
	}
	return fmt.Sprintf("No record found for `%s`.", path)
}

func functionMarkdown(f record.FunctionRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", f.Path)
	fmt.Fprintf(&sb, "**Kind:** %s  \n**Module:** %s\n\n", f.Kind, f.Module)
	if f.Class != "" {
		fmt.Fprintf(&sb, "**Class:** %s\n\n", f.Class)
	}
	fmt.Fprintf(&sb, "```python\n%s\n```\n\n", f.Signature)
	if f.Doc != "" {
		sb.WriteString(f.Doc + "\n")
	} else {
		sb.WriteString("*No docstring.*\n")
	}
	return sb.String()
}

func classMarkdown(c record.ClassRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", c.Path)
	fmt.Fprintf(&sb, "**Kind:** class  \n**Module:** %s\n\n", c.Module)
	if len(c.Bases) > 0 {
		fmt.Fprintf(&sb, "**Bases:** %s\n\n", strings.Join(c.Bases, ", "))
	}
	if c.Doc != "" {
		sb.WriteString(c.Doc + "\n\n")
	} else {
		sb.WriteString("*No docstring.*\n\n")
	}
	if len(c.Methods) > 0 {
		sb.WriteString("### Methods\n\n")
		for _, m := range c.Methods {
			fmt.Fprintf(&sb, "- `%s`\n", m)
		}
	}
	return sb.String()
}
