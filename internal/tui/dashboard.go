package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"soundctl/internal/console"
)

const activityRows = 8

func (m Model) viewDashboard() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.nowPlayingCard(),
		m.masterVolumeCard(),
		m.fireShowCard(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.systemCard(),
		m.quickActionsCard(),
		m.activityCard(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) nowPlayingCard() string {
	snap := m.eng.Poller.Snapshot()
	lines := []string{
		headingStyle.Render("Now Playing"),
		console.NowPlayingLabel(snap.Playback),
	}
	if next := console.NextJobLabel(snap.System); next != "" {
		lines = append(lines, dimStyle.Render("Next: "+next))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) masterVolumeCard() string {
	stage := m.eng.Stages.Channel(console.MasterChannel)
	v := stage.Display()
	line := fmt.Sprintf("%s %3d%%", m.volumeBar(v), v)
	if stage.Dirty() {
		line += " " + glyphPending
	}
	return cardStyle.Render(headingStyle.Render("Master Volume") + "\n" + line)
}

func (m Model) fireShowCard() string {
	snap := m.eng.Poller.Snapshot()
	lines := []string{headingStyle.Render("Fire Show")}
	if console.FireShowEnabled(snap.System) {
		fs := snap.System.Scheduler.FireShowMode
		lines = append(lines, okStyle.Render("Enabled")+dimStyle.Render("  "+fs.Interval))
		lines = append(lines, console.ProgramDisplayName(fs.Program))
		if fs.NextReset != nil {
			lines = append(lines, dimStyle.Render("Resets: "+*fs.NextReset))
		}
	} else {
		lines = append(lines, dimStyle.Render("Disabled"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) systemCard() string {
	snap := m.eng.Poller.Snapshot()
	lines := []string{headingStyle.Render("System")}
	if snap.System == nil {
		lines = append(lines, dimStyle.Render("waiting for first poll..."))
		return cardStyle.Render(strings.Join(lines, "\n"))
	}
	st := snap.System

	health := glyphOK + " " + st.Status
	if st.Status != "healthy" {
		health = glyphErr + " " + st.Status
	}
	audio := glyphErr + " audio"
	if st.AudioConnected {
		audio = glyphOK + " audio"
	}
	sched := glyphErr + " scheduler"
	if st.Scheduler.IsRunning {
		sched = fmt.Sprintf("%s scheduler (%d jobs)", glyphOK, st.Scheduler.JobCount)
	}

	lines = append(lines,
		health,
		audio,
		sched,
		dimStyle.Render(st.CurrentTimeDisplay+"  "+st.Timezone),
	)
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) quickActionsCard() string {
	actions := []struct {
		key     string
		program string
	}{
		{"m", quickMusic},
		{"b", quickAd},
		{"o", quickParking},
	}
	lines := []string{headingStyle.Render("Quick Actions")}
	for _, a := range actions {
		line := fmt.Sprintf("%s  %s", warnStyle.Render(a.key), console.ProgramDisplayName(a.program))
		if m.eng.Catalog.JustLaunched(a.program) {
			line += "  " + okStyle.Render("launched")
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("%s  Pause All", warnStyle.Render("space")))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) activityCard() string {
	snap := m.eng.Poller.Snapshot()
	lines := []string{headingStyle.Render("Activity")}
	if len(snap.Logs) == 0 {
		lines = append(lines, dimStyle.Render("no recent runs"))
	}
	now := time.Now()
	for i, entry := range snap.Logs {
		if i >= activityRows {
			break
		}
		mark := glyphOK
		if entry.Status != "success" {
			mark = glyphErr
		}
		ago := entry.ExecutedAt
		if t, err := time.Parse(time.RFC3339, entry.ExecutedAt); err == nil {
			ago = console.TimeAgo(t, now)
		}
		lines = append(lines, fmt.Sprintf("%s %-28s %s",
			mark, console.ProgramDisplayName(entry.ProgramName), dimStyle.Render(ago)))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
