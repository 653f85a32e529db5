package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"soundctl/internal/console"
	"soundctl/internal/logger"
	"soundctl/internal/models"
	"soundctl/internal/statestore"
)

// stubAPI satisfies console.ControlAPI with canned data and a call log.
type stubAPI struct {
	mu       sync.Mutex
	calls    []string
	speakers []models.Speaker
	week     models.WeekSchedule
	catalog  models.ProgramCatalog
	favs     []models.Favorite
}

func (s *stubAPI) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *stubAPI) called(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (s *stubAPI) GetSystemStatus(context.Context) (models.SystemStatus, error) {
	s.record("GetSystemStatus")
	return models.SystemStatus{Status: "healthy"}, nil
}

func (s *stubAPI) GetPlaybackStatus(context.Context) (models.PlaybackStatus, error) {
	s.record("GetPlaybackStatus")
	return models.PlaybackStatus{}, nil
}

func (s *stubAPI) GetSpeakers(context.Context) ([]models.Speaker, error) {
	s.record("GetSpeakers")
	return s.speakers, nil
}

func (s *stubAPI) GetSpeakerLayout(context.Context) (models.SpeakerLayout, error) {
	s.record("GetSpeakerLayout")
	return models.SpeakerLayout{}, nil
}

func (s *stubAPI) GetExecutionLogs(context.Context, int) ([]models.ExecutionLog, error) {
	s.record("GetExecutionLogs")
	return nil, nil
}

func (s *stubAPI) GetSchedule(context.Context) (models.WeekSchedule, error) {
	s.record("GetSchedule")
	return s.week, nil
}

func (s *stubAPI) GetPrograms(context.Context) (models.ProgramCatalog, error) {
	s.record("GetPrograms")
	return s.catalog, nil
}

func (s *stubAPI) GetKnownFavorites(context.Context) ([]models.Favorite, error) {
	s.record("GetKnownFavorites")
	return s.favs, nil
}

func (s *stubAPI) Play(context.Context, models.PlaybackCommand) error {
	s.record("Play")
	return nil
}

func (s *stubAPI) Pause(context.Context) error {
	s.record("Pause")
	return nil
}

func (s *stubAPI) SetVolume(context.Context, int) error {
	s.record("SetVolume")
	return nil
}

func (s *stubAPI) RunProgram(context.Context, string) error {
	s.record("RunProgram")
	return nil
}

func (s *stubAPI) ToggleFireShowMode(context.Context) error {
	s.record("ToggleFireShowMode")
	return nil
}

func (s *stubAPI) GroupAllSpeakers(context.Context) error {
	s.record("GroupAllSpeakers")
	return nil
}

func (s *stubAPI) SetSpeakerVolume(context.Context, string, string, int) error {
	s.record("SetSpeakerVolume")
	return nil
}

func (s *stubAPI) SetAllSpeakersVolume(context.Context, int) error {
	s.record("SetAllSpeakersVolume")
	return nil
}

func (s *stubAPI) AddScheduleSlot(_ context.Context, _ string, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	s.record("AddScheduleSlot")
	return models.ScheduleSlot{ID: 1, DayOfWeek: slot.DayOfWeek}, nil
}

func (s *stubAPI) UpdateScheduleSlot(context.Context, string, int, models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	s.record("UpdateScheduleSlot")
	return models.ScheduleSlot{}, nil
}

func (s *stubAPI) DeleteScheduleSlot(context.Context, string, int) error {
	s.record("DeleteScheduleSlot")
	return nil
}

func (s *stubAPI) ResetSchedule(context.Context) error {
	s.record("ResetSchedule")
	return nil
}

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", statestore.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func newTestModel(t *testing.T, authed bool) (Model, *stubAPI) {
	t.Helper()
	api := &stubAPI{
		speakers: []models.Speaker{
			{ID: "id-stage", Name: "STAGE", IsOnline: true},
			{ID: "id-pole", Name: "LEFT_POLE_01", IsOnline: true},
		},
		catalog: models.ProgramCatalog{AvailableScripts: []models.Program{
			{Name: "85adfire.py", Volume: 85, ProgramType: "adfire", ScriptExists: true},
			{Name: "60ad.py", Volume: 60, ProgramType: "ad", ScriptExists: true},
		}},
		favs: []models.Favorite{{ID: "28", Name: "Radio Paradise"}},
	}
	eng := console.New(api, &memStore{}, console.Options{PIN: "2026"}, logger.Nop())
	if authed {
		eng.Gate.Login("2026")
	}
	return NewModel(context.Background(), eng), api
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		m = next.(Model)
		// Resolve one level of command so dispatched actions land.
		if cmd != nil {
			if result := cmd(); result != nil {
				next, _ = m.Update(result)
				m = next.(Model)
			}
		}
	}
	return m
}

func TestTabCycling(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "tab")
	if m.tab != tabSpeakers {
		t.Fatalf("expected speakers tab, got %d", m.tab)
	}
	m = press(t, m, "4")
	if m.tab != tabPrograms {
		t.Fatalf("expected programs tab, got %d", m.tab)
	}
	m = press(t, m, "tab")
	if m.tab != tabDashboard {
		t.Fatalf("expected wrap to dashboard, got %d", m.tab)
	}
}

func TestPINModalSignsIn(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "l")
	if m.modal != modalPIN {
		t.Fatalf("expected PIN modal open")
	}
	m = press(t, m, "2", "0", "2", "6", "enter")
	if m.modal != modalNone {
		t.Fatalf("expected modal closed after correct PIN")
	}
	if m.locked() {
		t.Fatalf("expected session unlocked")
	}
}

func TestPINModalClearsOnFailure(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "l", "0", "0", "0", "0", "enter")
	if m.modal != modalPIN {
		t.Fatalf("expected modal to stay open on wrong PIN")
	}
	if !m.pinErr {
		t.Fatalf("expected error marker")
	}
	if m.pin.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.pin.Value())
	}
	if !m.locked() {
		t.Fatalf("expected session still locked")
	}
}

func TestLockedActionFlashesInsteadOfDispatching(t *testing.T) {
	m, api := newTestModel(t, false)
	m = press(t, m, "p")
	if api.called("Play") != 0 {
		t.Fatalf("locked session must not dispatch")
	}
	if !m.flashErr || !strings.Contains(m.flash, "Locked") {
		t.Fatalf("expected locked flash, got %q", m.flash)
	}
}

func TestUnlockedPlayDispatches(t *testing.T) {
	m, api := newTestModel(t, true)
	m = press(t, m, "p")
	if api.called("Play") != 1 {
		t.Fatalf("expected one Play dispatch, got %d", api.called("Play"))
	}
	if m.flashErr {
		t.Fatalf("unexpected error flash: %q", m.flash)
	}
}

func TestMasterVolumeStageAndCommit(t *testing.T) {
	m, api := newTestModel(t, true)
	stage := m.eng.Stages.Channel(console.MasterChannel)
	stage.MergeFromPoll(75)

	m = press(t, m, "-", "-")
	if got := stage.Display(); got != 65 {
		t.Fatalf("expected staged 65, got %d", got)
	}
	if api.called("SetVolume") != 0 {
		t.Fatalf("staging must not write")
	}

	m = press(t, m, "enter")
	if api.called("SetVolume") != 1 {
		t.Fatalf("expected one SetVolume write, got %d", api.called("SetVolume"))
	}
	if stage.Dirty() {
		t.Fatalf("expected pending cleared after commit")
	}
}

func TestEscCancelsStagedEdit(t *testing.T) {
	m, _ := newTestModel(t, true)
	stage := m.eng.Stages.Channel(console.MasterChannel)
	stage.MergeFromPoll(75)

	m = press(t, m, "+", "esc")
	if stage.Dirty() {
		t.Fatalf("expected staged edit discarded")
	}
	if got := stage.Display(); got != 75 {
		t.Fatalf("expected committed value back, got %d", got)
	}
}

func TestSpeakerVolumeCommitTargetsSelectedSpeaker(t *testing.T) {
	m, api := newTestModel(t, true)
	m.eng.Poller.Tick(context.Background())
	m = press(t, m, "2") // speakers tab
	m = press(t, m, "down", "+", "enter")
	if api.called("SetSpeakerVolume") != 1 {
		t.Fatalf("expected one speaker write, got %d", api.called("SetSpeakerVolume"))
	}
}

func TestDeleteCueNeedsConfirmation(t *testing.T) {
	m, api := newTestModel(t, true)
	api.week = models.WeekSchedule{
		m.eng.Schedule.Day(): {{ID: 7, Time: "10:00", ProgramName: "70fm.py", BlockType: models.BlockDay, IsActive: true}},
	}
	if err := m.eng.Schedule.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	m = press(t, m, "3", "d")
	if m.modal != modalConfirm {
		t.Fatalf("expected confirm modal")
	}
	m = press(t, m, "esc")
	if api.called("DeleteScheduleSlot") != 0 {
		t.Fatalf("cancel must not delete")
	}

	m = press(t, m, "d", "y")
	if api.called("DeleteScheduleSlot") != 1 {
		t.Fatalf("expected delete after confirm, got %d", api.called("DeleteScheduleSlot"))
	}
}

func TestLockedDeleteAndResetOpenNoConfirm(t *testing.T) {
	m, api := newTestModel(t, false)
	api.week = models.WeekSchedule{
		m.eng.Schedule.Day(): {{ID: 7, Time: "10:00", ProgramName: "70fm.py", BlockType: models.BlockDay, IsActive: true}},
	}
	if err := m.eng.Schedule.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	m = press(t, m, "3", "d")
	if m.modal != modalNone {
		t.Fatalf("locked delete must not prompt, got modal %d", m.modal)
	}
	if api.called("DeleteScheduleSlot") != 0 {
		t.Fatalf("locked delete must not dispatch")
	}
	if !m.flashErr || !strings.Contains(m.flash, "Locked") {
		t.Fatalf("expected locked flash, got %q", m.flash)
	}

	m = press(t, m, "R")
	if m.modal != modalNone {
		t.Fatalf("locked reset must not prompt, got modal %d", m.modal)
	}
	if api.called("ResetSchedule") != 0 {
		t.Fatalf("locked reset must not dispatch")
	}
}

func TestAddCueFormValidatesTime(t *testing.T) {
	m, api := newTestModel(t, true)
	m = press(t, m, "3", "n")
	if m.modal != modalSlot {
		t.Fatalf("expected slot form open")
	}
	m = press(t, m, "9", "9", ":", "9", "9", "enter")
	if m.modal != modalSlot {
		t.Fatalf("expected form to stay open on invalid time")
	}
	if m.form.errText == "" {
		t.Fatalf("expected validation error")
	}
	if api.called("AddScheduleSlot") != 0 {
		t.Fatalf("invalid form must not dispatch")
	}
}

func TestProgramFilterCycles(t *testing.T) {
	m, _ := newTestModel(t, true)
	if err := m.eng.Catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	m = press(t, m, "4")

	if got := m.eng.Catalog.Filter(); got != console.FilterAll {
		t.Fatalf("expected initial filter all, got %q", got)
	}
	m = press(t, m, "f")
	if got := m.eng.Catalog.Filter(); got != "ad" {
		t.Fatalf("expected first type code, got %q", got)
	}
	m = press(t, m, "f", "f")
	if got := m.eng.Catalog.Filter(); got != console.FilterAll {
		t.Fatalf("expected wrap back to all, got %q", got)
	}
}

func TestRunProgramFromCatalog(t *testing.T) {
	m, api := newTestModel(t, true)
	if err := m.eng.Catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	m = press(t, m, "4", "enter")
	if api.called("RunProgram") != 1 {
		t.Fatalf("expected one RunProgram, got %d", api.called("RunProgram"))
	}
	// The cooldown debounces an immediate second run.
	m = press(t, m, "enter")
	if api.called("RunProgram") != 1 {
		t.Fatalf("expected cooldown to swallow the second run, got %d", api.called("RunProgram"))
	}
}

func TestPlayFavoriteRow(t *testing.T) {
	m, api := newTestModel(t, true)
	if err := m.eng.Catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	m = press(t, m, "4")
	rows := m.programRows()
	// Move past the two programs onto the favorite.
	m = press(t, m, "down", "down", "enter")
	if api.called("Play") != 1 {
		t.Fatalf("expected PlayFavorite to hit Play, got %d (rows=%d)", api.called("Play"), len(rows))
	}
}

func TestValidCueTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:00", false},
		{"ab:cd", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := validCueTime(tc.in); got != tc.want {
			t.Fatalf("validCueTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDashboardQuickActionRunsProgram(t *testing.T) {
	m, api := newTestModel(t, true)
	m = press(t, m, "m")
	if api.called("RunProgram") != 1 {
		t.Fatalf("expected one RunProgram, got %d", api.called("RunProgram"))
	}
	if !m.eng.Catalog.JustLaunched(quickMusic) {
		t.Fatalf("expected launched marker for %s", quickMusic)
	}
	// The catalog cooldown debounces an immediate repeat.
	m = press(t, m, "m")
	if api.called("RunProgram") != 1 {
		t.Fatalf("expected cooldown to swallow the second run, got %d", api.called("RunProgram"))
	}
	m = press(t, m, "b", "o")
	if api.called("RunProgram") != 3 {
		t.Fatalf("expected each shortcut to run once, got %d", api.called("RunProgram"))
	}
}

func TestLockedQuickActionFlashesInsteadOfRunning(t *testing.T) {
	m, api := newTestModel(t, false)
	m = press(t, m, "m")
	if api.called("RunProgram") != 0 {
		t.Fatalf("locked quick action must not dispatch")
	}
	if !m.flashErr || !strings.Contains(m.flash, "Locked") {
		t.Fatalf("expected locked flash, got %q", m.flash)
	}
}

func TestDashboardShowsQuickActionsCard(t *testing.T) {
	m, _ := newTestModel(t, true)
	view := m.viewDashboard()
	for _, want := range []string{"Quick Actions", "Music @ 75%", "Business Ad @ 85%", "Parking Announcement @ 75%", "Pause All"} {
		if !strings.Contains(view, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}

func TestProgramsViewShowsVolumeGuide(t *testing.T) {
	m, _ := newTestModel(t, true)
	if err := m.eng.Catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	view := m.viewPrograms()
	for _, want := range []string{"Volume Guide", "Quiet - Late night", "Low - Background", "Medium - Default", "High - Announcements"} {
		if !strings.Contains(view, want) {
			t.Fatalf("programs view missing %q", want)
		}
	}
}

func TestViewShowsLockGlyphWhenLocked(t *testing.T) {
	m, _ := newTestModel(t, false)
	if !strings.Contains(m.View(), "locked") {
		t.Fatalf("expected locked marker in header")
	}
	m.eng.Gate.Login("2026")
	if !strings.Contains(m.View(), "unlocked") {
		t.Fatalf("expected unlocked marker after sign in")
	}
}
