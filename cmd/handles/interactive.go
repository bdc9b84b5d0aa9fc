package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gowindowing/rawhandle"
	"github.com/gowindowing/rawhandle/descriptor"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	platformStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err      error
	filename string
	entries  []entry
	filter   textinput.Model
	selected int
	state    inspectorState
}

type entry struct {
	desc   descriptor.Descriptor
	handle rawhandle.RawWindowHandle
	err    error
}

type inspectorState int

const (
	stateList inspectorState = iota
	stateDetail
	stateFilter
)

type fixturesMsg struct {
	err     error
	entries []entry
}

func newInspectorModel(filename string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "platform"
	ti.Prompt = "/ "
	ti.Width = 20
	return &inspectorModel{filename: filename, filter: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadFixtures
}

func (m *inspectorModel) loadFixtures() tea.Msg {
	descs, err := descriptor.LoadFile(m.filename)
	if err != nil {
		return fixturesMsg{err: err}
	}
	entries := make([]entry, len(descs))
	for i, d := range descs {
		e := entry{desc: d}
		e.handle, e.err = d.Handle()
		entries[i] = e
	}
	return fixturesMsg{entries: entries}
}

// visible returns the indices of entries matching the current filter.
func (m *inspectorModel) visible() []int {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var out []int
	for i, e := range m.entries {
		if q == "" || strings.Contains(strings.ToLower(e.desc.Platform), q) {
			out = append(out, i)
		}
	}
	return out
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.state = stateList
				m.filter.Blur()
				m.selected = 0
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if v := m.visible(); m.state == stateList && m.selected < len(v)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				m.filter.Focus()
			}

		case "enter":
			if m.state == stateList && len(m.visible()) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}
		}

	case fixturesMsg:
		m.err = msg.err
		m.entries = msg.entries
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.entries == nil {
		return "Loading fixtures..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Handle Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		m.viewList(&b)
	case stateDetail:
		m.viewDetail(&b)
	}
	return b.String()
}

func (m *inspectorModel) viewList(b *strings.Builder) {
	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(emptyStyle.Render("no matching fixtures"))
		b.WriteString("\n")
	}
	for pos, i := range visible {
		e := m.entries[i]
		line := fmt.Sprintf("%3d  %s", i, m.summary(e))
		if pos == m.selected && m.state == stateList {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.state == stateFilter {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • / filter • q quit"))
	}
}

func (m *inspectorModel) summary(e entry) string {
	if e.err != nil {
		return errorStyle.Render(fmt.Sprintf("%-12s %v", e.desc.Platform, e.err))
	}
	set, total := 0, 0
	for _, r := range fieldRows(e.handle) {
		total++
		if r.set() {
			set++
		}
	}
	return fmt.Sprintf("%s  %d/%d fields set",
		platformStyle.Render(fmt.Sprintf("%-12s", rawhandle.PlatformName(e.handle))), set, total)
}

func (m *inspectorModel) viewDetail(b *strings.Builder) {
	visible := m.visible()
	if m.selected >= len(visible) {
		return
	}
	e := m.entries[visible[m.selected]]
	if e.err != nil {
		b.WriteString(errorStyle.Render(e.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(platformStyle.Render(rawhandle.PlatformName(e.handle)))
		b.WriteString("\n\n")
		for _, r := range fieldRows(e.handle) {
			if r.set() {
				b.WriteString(fmt.Sprintf("  %-20s %s\n", r.name, valueStyle.Render(fmt.Sprintf("%#x", r.value))))
			} else {
				b.WriteString(fmt.Sprintf("  %-20s %s\n", r.name, emptyStyle.Render("<empty>")))
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back • q quit"))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectorModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
