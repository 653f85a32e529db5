package simulator

import (
	"context"
	"sort"
	"sync"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
	"soundctl/internal/simulator/repository"
)

// memScheduleRepo is an in-memory ScheduleRepo for handler and engine tests.
type memScheduleRepo struct {
	mu     sync.Mutex
	nextID int
	slots  map[int]models.ScheduleSlot
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{nextID: 1, slots: make(map[int]models.ScheduleSlot)}
}

func (m *memScheduleRepo) sorted() []models.ScheduleSlot {
	out := make([]models.ScheduleSlot, 0, len(m.slots))
	for _, s := range m.slots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (m *memScheduleRepo) ListWeek(ctx context.Context) (models.WeekSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	week := models.WeekSchedule{
		"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
		"friday": {}, "saturday": {}, "sunday": {},
	}
	for _, s := range m.sorted() {
		week[s.DayOfWeek] = append(week[s.DayOfWeek], s)
	}
	return week, nil
}

func (m *memScheduleRepo) ListDay(ctx context.Context, day string) ([]models.ScheduleSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScheduleSlot
	for _, s := range m.sorted() {
		if s.DayOfWeek == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) ListActive(ctx context.Context) ([]models.ScheduleSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScheduleSlot
	for _, s := range m.sorted() {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) GetSlot(ctx context.Context, day string, slotID int) (models.ScheduleSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[slotID]
	if !ok || s.DayOfWeek != day {
		return models.ScheduleSlot{}, repository.ErrSlotNotFound
	}
	return s, nil
}

func (m *memScheduleRepo) Insert(ctx context.Context, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.ScheduleSlot{
		ID:          m.nextID,
		DayOfWeek:   slot.DayOfWeek,
		Time:        slot.Time,
		ProgramName: slot.ProgramName,
		BlockType:   slot.BlockType,
		IsActive:    slot.IsActive,
	}
	m.slots[m.nextID] = s
	m.nextID++
	return s, nil
}

func (m *memScheduleRepo) Update(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[slotID]
	if !ok || s.DayOfWeek != day {
		return models.ScheduleSlot{}, repository.ErrSlotNotFound
	}
	if upd.Time != nil {
		s.Time = *upd.Time
	}
	if upd.ProgramName != nil {
		s.ProgramName = *upd.ProgramName
	}
	if upd.BlockType != nil {
		s.BlockType = *upd.BlockType
	}
	if upd.IsActive != nil {
		s.IsActive = *upd.IsActive
	}
	m.slots[slotID] = s
	return s, nil
}

func (m *memScheduleRepo) Delete(ctx context.Context, day string, slotID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[slotID]
	if !ok || s.DayOfWeek != day {
		return repository.ErrSlotNotFound
	}
	delete(m.slots, slotID)
	return nil
}

func (m *memScheduleRepo) Replace(ctx context.Context, slots []models.ScheduleSlotCreate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = make(map[int]models.ScheduleSlot)
	m.nextID = 1
	for _, slot := range slots {
		m.slots[m.nextID] = models.ScheduleSlot{
			ID:          m.nextID,
			DayOfWeek:   slot.DayOfWeek,
			Time:        slot.Time,
			ProgramName: slot.ProgramName,
			BlockType:   slot.BlockType,
			IsActive:    slot.IsActive,
		}
		m.nextID++
	}
	return nil
}

func (m *memScheduleRepo) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots), nil
}

// memLogRepo is an in-memory ExecutionLogRepo.
type memLogRepo struct {
	mu      sync.Mutex
	entries []models.ExecutionLog
}

func (m *memLogRepo) Append(ctx context.Context, programName, status string, errorMessage *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, models.ExecutionLog{
		ID:           len(m.entries) + 1,
		ProgramName:  programName,
		ExecutedAt:   time.Now().UTC().Format(time.RFC3339),
		Status:       status,
		ErrorMessage: errorMessage,
	})
	return nil
}

func (m *memLogRepo) ListRecent(ctx context.Context, limit int) ([]models.ExecutionLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ExecutionLog, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func newTestService() (*Service, *memScheduleRepo, *memLogRepo) {
	sched := newMemScheduleRepo()
	logs := &memLogRepo{}
	repos := &repository.Repository{Schedule: sched, Logs: logs}
	svc := NewService(repos, time.UTC, logger.Nop())
	return svc, sched, logs
}
