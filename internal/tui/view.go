package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.modal != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.viewDashboard()
	case tabSpeakers:
		body = m.viewSpeakers()
	case tabSchedule:
		body = m.viewSchedule()
	case tabPrograms:
		body = m.viewPrograms()
	}

	return strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderStatusBar(),
	}, "\n\n")
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, int(tabCount))
	for i := tab(0); i < tabCount; i++ {
		style := inactiveTabStyle
		if i == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tabLabels[i]))
	}

	session := okStyle.Render("unlocked")
	if m.locked() {
		session = glyphLocked + " " + warnStyle.Render("locked")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("soundctl"), "  ",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "  ",
		session,
	)
}

func (m Model) renderStatusBar() string {
	if m.flash != "" {
		if m.flashErr {
			return statusBarStyle.Render(errStyle.Render(m.flash))
		}
		return statusBarStyle.Render(okStyle.Render(m.flash))
	}
	return statusBarStyle.Render(m.helpLine())
}

func (m Model) helpLine() string {
	common := "tab/1-4: tabs  l: sign in  L: sign out  r: refresh  q: quit"
	switch m.tab {
	case tabDashboard:
		return "p: play  space: pause  f: fire show  g: group  m/b/o: quick run  -/+: master  enter: commit  " + common
	case tabSpeakers:
		return "↑/↓: speaker  -/+: adjust  enter: commit  a: all  g: group  " + common
	case tabSchedule:
		return "←/→: day  ↑/↓: cue  n: add  e: edit  t: toggle  d: delete  R: reset  " + common
	case tabPrograms:
		return "↑/↓: select  f: filter  enter: run  " + common
	}
	return common
}

// volumeBar renders a 0-100 level with the shared progress bar.
func (m Model) volumeBar(v int) string {
	return m.bar.ViewAs(float64(clamp(v, 0, 100)) / 100)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
