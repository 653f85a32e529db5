package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// snapshotMsg signals that the poller merged a new snapshot; the views
// re-read it on the next render.
type snapshotMsg struct{}

// scheduleRefreshedMsg and catalogRefreshedMsg report the outcome of a
// view re-fetch.
type scheduleRefreshedMsg struct{ err error }

type catalogRefreshedMsg struct{ err error }

// actionDoneMsg reports the outcome of a dispatched operator action.
type actionDoneMsg struct {
	action string
	err    error
}

// flashExpiredMsg clears the status-bar flash; seq guards against an old
// timer wiping a newer message.
type flashExpiredMsg struct{ seq int }

func waitForSnapshot(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return snapshotMsg{}
	}
}

func (m Model) refreshSchedule() tea.Cmd {
	return func() tea.Msg {
		return scheduleRefreshedMsg{err: m.eng.Schedule.Refresh(m.ctx)}
	}
}

func (m Model) refreshCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogRefreshedMsg{err: m.eng.Catalog.Refresh(m.ctx)}
	}
}

// dispatch runs one operator action off the update loop.
func (m Model) dispatch(action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(m.ctx)}
	}
}

func expireFlash(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
