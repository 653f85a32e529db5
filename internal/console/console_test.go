package console

import (
	"context"
	"sync"

	"soundctl/internal/logger"
	"soundctl/internal/models"
	"soundctl/internal/statestore"
)

// fakeAPI is a hand-rolled ControlAPI stub. Reads serve the configured
// snapshots; mutations record their name (and arguments where relevant) and
// return the error configured for that method, if any.
type fakeAPI struct {
	mu sync.Mutex

	system    models.SystemStatus
	playback  models.PlaybackStatus
	speakers  []models.Speaker
	layout    models.SpeakerLayout
	logs      []models.ExecutionLog
	week      models.WeekSchedule
	catalog   models.ProgramCatalog
	favorites []models.Favorite

	errs map[string]error

	calls          []string
	setVolumes     []int
	speakerWrites  []speakerWrite
	createdSlots   []models.ScheduleSlotCreate
	deletedSlotIDs []int
	runPrograms    []string
}

type speakerWrite struct {
	name   string
	id     string
	volume int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{errs: make(map[string]error), week: models.WeekSchedule{}}
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeAPI) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) GetSystemStatus(ctx context.Context) (models.SystemStatus, error) {
	if err := f.record("GetSystemStatus"); err != nil {
		return models.SystemStatus{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.system, nil
}

func (f *fakeAPI) GetPlaybackStatus(ctx context.Context) (models.PlaybackStatus, error) {
	if err := f.record("GetPlaybackStatus"); err != nil {
		return models.PlaybackStatus{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playback, nil
}

func (f *fakeAPI) GetSpeakers(ctx context.Context) ([]models.Speaker, error) {
	if err := f.record("GetSpeakers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speakers, nil
}

func (f *fakeAPI) GetSpeakerLayout(ctx context.Context) (models.SpeakerLayout, error) {
	if err := f.record("GetSpeakerLayout"); err != nil {
		return models.SpeakerLayout{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.layout, nil
}

func (f *fakeAPI) GetExecutionLogs(ctx context.Context, limit int) ([]models.ExecutionLog, error) {
	if err := f.record("GetExecutionLogs"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit < len(f.logs) {
		return f.logs[:limit], nil
	}
	return f.logs, nil
}

func (f *fakeAPI) GetSchedule(ctx context.Context) (models.WeekSchedule, error) {
	if err := f.record("GetSchedule"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.week, nil
}

func (f *fakeAPI) GetPrograms(ctx context.Context) (models.ProgramCatalog, error) {
	if err := f.record("GetPrograms"); err != nil {
		return models.ProgramCatalog{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.catalog, nil
}

func (f *fakeAPI) GetKnownFavorites(ctx context.Context) ([]models.Favorite, error) {
	if err := f.record("GetKnownFavorites"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites, nil
}

func (f *fakeAPI) Play(ctx context.Context, cmd models.PlaybackCommand) error {
	return f.record("Play")
}

func (f *fakeAPI) Pause(ctx context.Context) error {
	return f.record("Pause")
}

func (f *fakeAPI) SetVolume(ctx context.Context, volume int) error {
	err := f.record("SetVolume")
	f.mu.Lock()
	f.setVolumes = append(f.setVolumes, volume)
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) RunProgram(ctx context.Context, programName string) error {
	err := f.record("RunProgram")
	f.mu.Lock()
	f.runPrograms = append(f.runPrograms, programName)
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) ToggleFireShowMode(ctx context.Context) error {
	return f.record("ToggleFireShowMode")
}

func (f *fakeAPI) GroupAllSpeakers(ctx context.Context) error {
	return f.record("GroupAllSpeakers")
}

func (f *fakeAPI) SetSpeakerVolume(ctx context.Context, speakerName, speakerID string, volume int) error {
	err := f.record("SetSpeakerVolume")
	f.mu.Lock()
	f.speakerWrites = append(f.speakerWrites, speakerWrite{name: speakerName, id: speakerID, volume: volume})
	for i := range f.speakers {
		if f.speakers[i].ID == speakerID {
			v := volume
			f.speakers[i].Volume = &v
		}
	}
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) SetAllSpeakersVolume(ctx context.Context, volume int) error {
	return f.record("SetAllSpeakersVolume")
}

func (f *fakeAPI) AddScheduleSlot(ctx context.Context, day string, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	if err := f.record("AddScheduleSlot"); err != nil {
		return models.ScheduleSlot{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdSlots = append(f.createdSlots, slot)
	return models.ScheduleSlot{ID: len(f.createdSlots), DayOfWeek: day}, nil
}

func (f *fakeAPI) UpdateScheduleSlot(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	if err := f.record("UpdateScheduleSlot"); err != nil {
		return models.ScheduleSlot{}, err
	}
	return models.ScheduleSlot{ID: slotID, DayOfWeek: day}, nil
}

func (f *fakeAPI) DeleteScheduleSlot(ctx context.Context, day string, slotID int) error {
	err := f.record("DeleteScheduleSlot")
	f.mu.Lock()
	f.deletedSlotIDs = append(f.deletedSlotIDs, slotID)
	f.mu.Unlock()
	return err
}

func (f *fakeAPI) ResetSchedule(ctx context.Context) error {
	return f.record("ResetSchedule")
}

// memStore is an in-memory statestore.Store.
type memStore struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", statestore.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func intPtr(v int) *int { return &v }

func testLogger() *logger.Logger { return logger.Nop() }
