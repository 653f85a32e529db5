package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"soundctl/internal/console"
	"soundctl/internal/models"
)

const volumeStep = 5

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clamp(m.width/3, 10, 40)
		return m, nil

	case snapshotMsg:
		m.clampCursors()
		return m, waitForSnapshot(m.eng.Poller.Updates())

	case scheduleRefreshedMsg:
		if msg.err != nil {
			return m, m.setFlash("schedule unavailable: "+msg.err.Error(), true)
		}
		m.clampCursors()
		return m, nil

	case catalogRefreshedMsg:
		if msg.err != nil {
			return m, m.setFlash("program catalog unavailable: "+msg.err.Error(), true)
		}
		m.clampCursors()
		return m, nil

	case actionDoneMsg:
		switch {
		case errors.Is(msg.err, console.ErrLocked):
			return m, m.setFlash("Locked. Press l to sign in.", true)
		case msg.err != nil:
			return m, m.setFlash(msg.action+" failed: "+msg.err.Error(), true)
		default:
			return m, m.setFlash(msg.action+" ✓", false)
		}

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashSeq++
	return expireFlash(m.flashSeq)
}

// clampCursors keeps the per-tab cursors inside the freshly merged data.
func (m *Model) clampCursors() {
	snap := m.eng.Poller.Snapshot()
	if n := len(snap.Speakers); n > 0 {
		m.speakerCursor = clamp(m.speakerCursor, 0, n-1)
	} else {
		m.speakerCursor = 0
	}
	if n := len(m.daySlots()); n > 0 {
		m.slotCursor = clamp(m.slotCursor, 0, n-1)
	} else {
		m.slotCursor = 0
	}
	if n := len(m.programRows()); n > 0 {
		m.listCursor = clamp(m.listCursor, 0, n-1)
	} else {
		m.listCursor = 0
	}
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(msg.String())
		m.tab = tab(n - 1)
		return m, nil

	case "l":
		if !m.locked() {
			return m, m.setFlash("Already signed in.", false)
		}
		m.modal = modalPIN
		m.pin = newPINInput()
		m.pin.Focus()
		m.pinErr = false
		return m, nil
	case "L":
		m.eng.Gate.Logout()
		return m, m.setFlash("Signed out.", false)

	case "r":
		return m, tea.Batch(
			func() tea.Msg { m.eng.Poller.Tick(m.ctx); return nil },
			m.refreshSchedule(),
			m.refreshCatalog(),
		)
	}

	switch m.tab {
	case tabDashboard:
		return m.updateDashboardKeys(msg)
	case tabSpeakers:
		return m.updateSpeakersKeys(msg)
	case tabSchedule:
		return m.updateScheduleKeys(msg)
	case tabPrograms:
		return m.updateProgramsKeys(msg)
	}
	return m, nil
}

func (m Model) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stage := m.eng.Stages.Channel(console.MasterChannel)
	switch msg.String() {
	case "p":
		return m, m.dispatch("play", m.eng.Dispatcher.Play)
	case " ":
		return m, m.dispatch("pause until midnight", m.eng.Dispatcher.Pause)
	case "f":
		return m, m.dispatch("fire show toggle", m.eng.Dispatcher.ToggleFireShow)
	case "g":
		return m, m.dispatch("group all", m.eng.Dispatcher.GroupAll)
	case "m":
		return m, m.runQuickAction(quickMusic)
	case "b":
		return m, m.runQuickAction(quickAd)
	case "o":
		return m, m.runQuickAction(quickParking)
	case "-", "_":
		stage.Set(clamp(stage.Display()-volumeStep, 0, 100))
		return m, nil
	case "+", "=":
		stage.Set(clamp(stage.Display()+volumeStep, 0, 100))
		return m, nil
	case "esc":
		stage.Cancel()
		return m, nil
	case "enter":
		if !stage.Dirty() {
			return m, nil
		}
		return m, m.dispatch("master volume", m.eng.Dispatcher.CommitMasterVolume)
	}
	return m, nil
}

// Quick action programs mirror the catalog's most common launches.
const (
	quickMusic   = "75fm.py"
	quickAd      = "85ad.py"
	quickParking = "75parking.py"
)

// runQuickAction launches a program through the catalog so quick actions
// share its run cooldown and launched marker.
func (m Model) runQuickAction(program string) tea.Cmd {
	if m.eng.Catalog.JustLaunched(program) {
		return nil
	}
	return m.dispatch("run "+program, func(ctx context.Context) error {
		return m.eng.Catalog.RunNow(ctx, program)
	})
}

func (m Model) updateSpeakersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	speakers := m.eng.Poller.Snapshot().Speakers
	switch msg.String() {
	case "up", "k":
		m.speakerCursor = clamp(m.speakerCursor-1, 0, maxIndex(len(speakers)))
		return m, nil
	case "down", "j":
		m.speakerCursor = clamp(m.speakerCursor+1, 0, maxIndex(len(speakers)))
		return m, nil
	case "g":
		return m, m.dispatch("group all", m.eng.Dispatcher.GroupAll)
	}

	if len(speakers) == 0 {
		return m, nil
	}
	sp := speakers[m.speakerCursor]
	stage := m.eng.Stages.Channel(sp.ID)

	switch msg.String() {
	case "-", "_":
		stage.Set(clamp(stage.Display()-volumeStep, 0, 100))
	case "+", "=":
		stage.Set(clamp(stage.Display()+volumeStep, 0, 100))
	case "esc":
		stage.Cancel()
	case "enter":
		if !stage.Dirty() {
			return m, nil
		}
		return m, m.dispatch(sp.Name+" volume", func(ctx context.Context) error {
			return m.eng.Dispatcher.CommitSpeakerVolume(ctx, sp.Name, sp.ID)
		})
	case "a":
		v := stage.Display()
		return m, m.dispatch(fmt.Sprintf("all speakers to %d%%", v), func(ctx context.Context) error {
			return m.eng.Dispatcher.SetAllSpeakerVolumes(ctx, v)
		})
	}
	return m, nil
}

func (m Model) updateScheduleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left":
		m.eng.Schedule.PrevDay()
		m.slotCursor = 0
		return m, nil
	case "right":
		m.eng.Schedule.NextDay()
		m.slotCursor = 0
		return m, nil
	case "up", "k":
		m.slotCursor = clamp(m.slotCursor-1, 0, maxIndex(len(m.daySlots())))
		return m, nil
	case "down", "j":
		m.slotCursor = clamp(m.slotCursor+1, 0, maxIndex(len(m.daySlots())))
		return m, nil

	case "n":
		if m.locked() {
			return m, m.setFlash("Locked. Press l to sign in.", true)
		}
		m.modal = modalSlot
		m.form = newSlotForm(false, models.ScheduleSlot{})
		return m, nil
	case "e":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		if m.locked() {
			return m, m.setFlash("Locked. Press l to sign in.", true)
		}
		m.modal = modalSlot
		m.form = newSlotForm(true, slot)
		return m, nil

	case "t":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		active := !slot.IsActive
		return m, m.dispatch("slot toggle", func(ctx context.Context) error {
			return m.eng.Schedule.UpdateSlot(ctx, slot.ID, models.ScheduleSlotUpdate{IsActive: &active})
		})

	case "d":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		if m.locked() {
			return m, m.setFlash("Locked. Press l to sign in.", true)
		}
		m.modal = modalConfirm
		m.confirm = confirmState{
			title: "Delete cue",
			body:  fmt.Sprintf("Delete %s at %s?", slot.ProgramName, slot.Time),
			action: m.dispatch("delete cue", func(ctx context.Context) error {
				return m.eng.Schedule.DeleteSlot(ctx, slot.ID)
			}),
		}
		return m, nil

	case "R":
		if m.locked() {
			return m, m.setFlash("Locked. Press l to sign in.", true)
		}
		m.modal = modalConfirm
		m.confirm = confirmState{
			title:  "Reset schedule",
			body:   "Replace the whole week with the factory schedule?",
			action: m.dispatch("schedule reset", m.eng.Schedule.Reset),
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateProgramsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.programRows()
	switch msg.String() {
	case "up", "k":
		m.listCursor = clamp(m.listCursor-1, 0, maxIndex(len(rows)))
		return m, nil
	case "down", "j":
		m.listCursor = clamp(m.listCursor+1, 0, maxIndex(len(rows)))
		return m, nil
	case "f":
		m.cycleFilter()
		m.listCursor = 0
		return m, nil
	case "enter":
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[m.listCursor]
		switch {
		case row.program != nil:
			name := row.program.Name
			if m.eng.Catalog.JustLaunched(name) {
				return m, nil
			}
			return m, m.dispatch("run "+name, func(ctx context.Context) error {
				return m.eng.Catalog.RunNow(ctx, name)
			})
		case row.favorite != nil:
			fav := *row.favorite
			return m, m.dispatch("play "+fav.Name, func(ctx context.Context) error {
				return m.eng.Dispatcher.PlayFavorite(ctx, fav.ID)
			})
		}
	}
	return m, nil
}

// cycleFilter advances all -> first type -> ... -> last type -> all.
func (m *Model) cycleFilter() {
	types := m.eng.Catalog.Types()
	if len(types) == 0 {
		m.eng.Catalog.SetFilter(console.FilterAll)
		return
	}
	cur := m.eng.Catalog.Filter()
	if cur == console.FilterAll {
		m.eng.Catalog.SetFilter(types[0])
		return
	}
	for i, t := range types {
		if t == cur {
			if i+1 < len(types) {
				m.eng.Catalog.SetFilter(types[i+1])
			} else {
				m.eng.Catalog.SetFilter(console.FilterAll)
			}
			return
		}
	}
	m.eng.Catalog.SetFilter(console.FilterAll)
}

func maxIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
