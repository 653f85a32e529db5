// Package tui renders the operator console with Bubble Tea. All state that
// matters lives in internal/console; this package only translates key
// presses into engine calls and snapshots into screens.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"soundctl/internal/console"
	"soundctl/internal/models"
)

var errNotADigit = errors.New("digits only")

type tab int

const (
	tabDashboard tab = iota
	tabSpeakers
	tabSchedule
	tabPrograms
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Speakers", "Schedule", "Programs"}

type modal int

const (
	modalNone modal = iota
	modalPIN
	modalConfirm
	modalSlot
)

// confirmState carries a pending destructive action through the modal.
type confirmState struct {
	title   string
	body    string
	focusOK bool
	action  tea.Cmd
}

// slotForm is the add/edit dialog for a schedule cue.
type slotForm struct {
	editing  bool
	slotID   int
	time     textinput.Model
	program  textinput.Model
	blockIdx int
	active   bool
	focus    int // 0 time, 1 program, 2 block, 3 active
	errText  string
}

const slotFormFields = 4

// Model is the Bubble Tea model for the whole console.
type Model struct {
	eng *console.Console
	ctx context.Context

	width  int
	height int

	tab tab

	speakerCursor int
	slotCursor    int
	listCursor    int // programs tab, spans catalog rows and favorites

	modal   modal
	pin     textinput.Model
	pinErr  bool
	confirm confirmState
	form    slotForm

	bar progress.Model

	flash    string
	flashErr bool
	flashSeq int
}

func newPINInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0000"
	ti.CharLimit = 4
	ti.Width = 6
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errNotADigit
			}
		}
		return nil
	}
	return ti
}

func newSlotForm(editing bool, slot models.ScheduleSlot) slotForm {
	timeIn := textinput.New()
	timeIn.Placeholder = "HH:MM"
	timeIn.CharLimit = 5
	timeIn.Width = 7

	programIn := textinput.New()
	programIn.Placeholder = "85adfire.py"
	programIn.CharLimit = 64
	programIn.Width = 24

	f := slotForm{
		editing: editing,
		slotID:  slot.ID,
		time:    timeIn,
		program: programIn,
		active:  true,
	}
	if editing {
		f.time.SetValue(slot.Time)
		f.program.SetValue(slot.ProgramName)
		f.active = slot.IsActive
		for i, bt := range models.BlockTypes {
			if bt == slot.BlockType {
				f.blockIdx = i
			}
		}
	}
	f.time.Focus()
	return f
}

// NewModel builds the initial model around a wired console engine. ctx
// bounds every outward request the UI dispatches.
func NewModel(ctx context.Context, eng *console.Console) Model {
	bar := progress.New(
		progress.WithGradient("#7C3AED", "#10B981"),
		progress.WithoutPercentage(),
	)
	bar.Width = 30

	return Model{
		eng:    eng,
		ctx:    ctx,
		tab:    tabDashboard,
		pin:    newPINInput(),
		bar:    bar,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.eng.Poller.Updates()),
		m.refreshSchedule(),
		m.refreshCatalog(),
	)
}

func (m Model) locked() bool {
	return !m.eng.Gate.IsAuthenticated()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
