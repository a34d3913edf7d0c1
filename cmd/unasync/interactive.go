package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/unasync/generate"
	"github.com/wippyai/unasync/rewrite"
	"github.com/wippyai/unasync/syntax"
	"github.com/wippyai/unasync/textual"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	filename string
	opts     generate.Options
	source   string
	units    []unitInfo
	visible  []int
	filter   textinput.Model
	selected int
	result   string
	hazards  []textual.Hazard
	textual  bool
	state    modelState
}

type unitInfo struct {
	fn    *syntax.Func
	name  string
	line  int
	notes string
}

type modelState int

const (
	stateSelectUnit modelState = iota
	stateFilter
	stateShowRewrite
)

func newInteractiveModel(filename string, opts generate.Options) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "unit name"
	ti.Prompt = "/ "
	ti.Width = 40
	return &interactiveModel{
		filename: filename,
		opts:     opts,
		filter:   ti,
		state:    stateSelectUnit,
	}
}

type loadedMsg struct {
	err    error
	source string
	units  []unitInfo
}

type rewriteMsg struct {
	text    string
	hazards []textual.Hazard
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *interactiveModel) loadFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	src := string(data)
	file, err := syntax.ParseFile(src)
	if err != nil {
		return loadedMsg{err: err}
	}

	var units []unitInfo
	for _, fn := range file.Funcs {
		units = append(units, unitInfo{
			fn:    fn,
			name:  fn.Name(),
			line:  fn.Line,
			notes: strings.Join(unitNotes(fn), ", "),
		})
	}
	return loadedMsg{source: src, units: units}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectUnit && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectUnit && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateSelectUnit {
				m.state = stateFilter
				m.filter.Focus()
			}

		case "t":
			if m.state == stateShowRewrite {
				m.textual = !m.textual
				return m, m.renderRewrite
			}

		case "enter":
			switch m.state {
			case stateSelectUnit:
				if len(m.visible) == 0 {
					break
				}
				u := m.units[m.visible[m.selected]]
				m.textual = m.opts.Textual != nil && m.opts.Textual.MatchUnit(u.name)
				m.state = stateShowRewrite
				return m, m.renderRewrite

			case stateShowRewrite:
				m.state = stateSelectUnit
				m.result = ""
				m.hazards = nil
			}

		case "esc":
			if m.state == stateShowRewrite {
				m.state = stateSelectUnit
				m.result = ""
				m.hazards = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.source = msg.source
		m.units = msg.units
		m.applyFilter()

	case rewriteMsg:
		m.result = msg.text
		m.hazards = msg.hazards
	}

	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateSelectUnit
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filter.SetValue("")
		m.filter.Blur()
		m.state = stateSelectUnit
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes which units the menu shows and keeps the cursor
// on a valid row.
func (m *interactiveModel) applyFilter() {
	needle := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	for i, u := range m.units {
		if needle == "" || strings.Contains(u.name, needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) renderRewrite() tea.Msg {
	u := m.units[m.visible[m.selected]]
	unitSrc := m.source[u.fn.DocsPos:u.fn.Span.End]
	if m.textual {
		return rewriteMsg{
			text:    textual.Strip(unitSrc),
			hazards: textual.Audit(unitSrc),
		}
	}
	return rewriteMsg{text: rewrite.Func(u.fn).Text()}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.source == "" {
		return "Loading file..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("unasync"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	if m.opts.Mode == generate.ModeAsync {
		b.WriteString(noteStyle.Render("  (async mode: files pass through)"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectUnit, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString("No function units match.\n")
		}
		for row, idx := range m.visible {
			u := m.units[idx]
			line := fmt.Sprintf("%4d ", u.line) + m.formatUnit(u)
			if row == m.selected && m.state == stateSelectUnit {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter rewrite • / filter • q quit"))
		}

	case stateShowRewrite:
		u := m.units[m.visible[m.selected]]
		mode := "structural"
		if m.textual {
			mode = "textual"
		}
		b.WriteString(fmt.Sprintf("%s rewrite of %s\n\n", mode, unitStyle.Render(u.name)))
		b.WriteString("--- original\n")
		b.WriteString(m.source[u.fn.DocsPos:u.fn.Span.End])
		b.WriteString("\n\n--- rewritten\n")
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
		for _, h := range m.hazards {
			b.WriteString(errorStyle.Render("corrupts " + h.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("t toggle textual • enter/esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatUnit(u unitInfo) string {
	s := unitStyle.Render(u.name)
	if u.notes != "" {
		s += " " + noteStyle.Render(u.notes)
	}
	return s
}

func runInteractive(filename string, opts generate.Options) error {
	p := tea.NewProgram(newInteractiveModel(filename, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
