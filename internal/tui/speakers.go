package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"soundctl/internal/console"
)

func (m Model) viewSpeakers() string {
	snap := m.eng.Poller.Snapshot()
	if len(snap.Speakers) == 0 {
		return dimStyle.Render("waiting for speakers...")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Speakers"))
	b.WriteString("\n")
	for i, sp := range snap.Speakers {
		stage := m.eng.Stages.Channel(sp.ID)
		v := stage.Display()

		cursor := "  "
		if i == m.speakerCursor {
			cursor = selectedRowStyle.Render("> ")
		}
		online := glyphOK
		if !sp.IsOnline {
			online = glyphErr
		}
		grouped := " "
		if sp.IsGrouped {
			grouped = dimStyle.Render("g")
		}
		muted := " "
		if console.IsMuted(&v) {
			muted = glyphMuted
		}
		pending := " "
		if stage.Dirty() {
			pending = glyphPending
		}

		name := fmt.Sprintf("%-18s", sp.Name)
		if i == m.speakerCursor {
			name = selectedRowStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s%s%s %s %3d%% %s\n",
			cursor, online, grouped, muted, pending, name, v, m.volumeBar(v))
	}

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), m.layoutGrid())
}

// layoutGrid draws the physical venue grid so the operator can map names to
// positions.
func (m Model) layoutGrid() string {
	snap := m.eng.Poller.Snapshot()
	if snap.Layout == nil || len(snap.Layout.Layout) == 0 {
		return ""
	}

	cell := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(dimColor)).
		Padding(0, 1).
		Width(20).
		Align(lipgloss.Center)

	rows := make([]string, 0, len(snap.Layout.Layout))
	for _, row := range snap.Layout.Layout {
		cells := make([]string, 0, len(row))
		for _, name := range row {
			cells = append(cells, cell.Render(name))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
