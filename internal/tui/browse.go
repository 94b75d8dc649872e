package tui

import (
	"fmt"
	"strings"

	"apilens/internal/query"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// row is one entry in the browse list.
type row struct {
	path string
	kind string
}

type browseModel struct {
	engine *query.Engine
	input  textinput.Model

	rows    []row
	cursor  int
	offset  int
	queryOK bool
	errMsg  string
}

func newBrowseModel(e *query.Engine) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search the API (empty to browse everything)"
	ti.CharLimit = 200

	m := browseModel{engine: e, input: ti, queryOK: true}
	m.rows = m.allRows()
	return m
}

// allRows lists every record when no query is active.
func (m browseModel) allRows() []row {
	fns := m.engine.ListFunctions("")
	classes := m.engine.ListClasses(false)

	rows := make([]row, 0, len(fns)+len(classes))
	for _, c := range classes {
		rows = append(rows, row{path: c.Path, kind: "class"})
	}
	for _, f := range fns {
		rows = append(rows, row{path: f.Path, kind: f.Kind})
	}
	return rows
}

func (m *browseModel) runSearch() {
	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		m.rows = m.allRows()
		m.queryOK = true
		m.errMsg = ""
		m.cursor, m.offset = 0, 0
		return
	}

	matches, err := m.engine.Search(q)
	if err != nil {
		m.rows = nil
		m.queryOK = false
		m.errMsg = err.Error()
		m.cursor, m.offset = 0, 0
		return
	}

	rows := make([]row, len(matches))
	for i, match := range matches {
		kind := "class"
		if match.Function != nil {
			kind = match.Function.Kind
		}
		rows[i] = row{path: match.Path(), kind: kind}
	}
	m.rows = rows
	m.queryOK = true
	m.errMsg = ""
	m.cursor, m.offset = 0, 0
}

func (m browseModel) selected() string {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].path
}

func (m browseModel) Update(msg tea.Msg) (browseModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.runSearch()
	}
	return m, cmd
}

func (m browseModel) View(width, height int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("  ◆ apilens") + "  " + subtitleStyle.Render(m.statusLine()) + "\n\n")
	sb.WriteString("  " + m.input.View() + "\n\n")

	if !m.queryOK {
		sb.WriteString("  " + errorStyle.Render(m.errMsg) + "\n")
		return sb.String()
	}

	visible := height - 8
	if visible < 3 {
		visible = 3
	}

	// Keep the cursor inside the window.
	offset := m.offset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	end := offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := offset; i < end; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("%s  %s", r.path, kindStyle.Render("("+r.kind+")"))
		if i == m.cursor {
			sb.WriteString("  " + selectedStyle.Render("› "+line) + "\n")
		} else {
			sb.WriteString("    " + listItemStyle.Render(line) + "\n")
		}
	}
	if len(m.rows) == 0 {
		sb.WriteString("  " + dimStyle.Render("No matches.") + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("  ↑/↓ select · enter details · esc quit") + "\n")
	return sb.String()
}

func (m browseModel) statusLine() string {
	ov := m.engine.Overview()
	return fmt.Sprintf("%d functions · %d classes · %d modules",
		ov.TotalFunctions, ov.TotalClasses, len(ov.Modules))
}
