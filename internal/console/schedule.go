package console

import (
	"context"
	"strings"
	"sync"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
)

// Days lists the weekday identifiers in cursor order.
var Days = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday",
}

// Block pairs a bucket heading with its slots for rendering.
type Block struct {
	Type  string
	Label string
	Slots []models.ScheduleSlot
}

// ScheduleView holds the cached week schedule and the day cursor. All
// mutations require an authenticated session and are followed by a full
// re-fetch; partial client-side patching of the cache is deliberately
// avoided because the server may renumber or re-order slots.
type ScheduleView struct {
	api  ControlAPI
	gate *Gate
	now  func() time.Time
	log  *logger.Logger

	mu   sync.Mutex
	week models.WeekSchedule
	day  string
}

func NewScheduleView(api ControlAPI, gate *Gate, now func() time.Time, log *logger.Logger) *ScheduleView {
	return &ScheduleView{
		api:  api,
		gate: gate,
		now:  now,
		log:  log,
		day:  currentWeekday(now()),
	}
}

func currentWeekday(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// Refresh replaces the cached week wholesale.
func (v *ScheduleView) Refresh(ctx context.Context) error {
	week, err := v.api.GetSchedule(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.week = week
	v.mu.Unlock()
	return nil
}

// Day returns the current cursor position.
func (v *ScheduleView) Day() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.day
}

// SelectDay jumps the cursor to an exact weekday. Unknown names are
// ignored.
func (v *ScheduleView) SelectDay(day string) {
	day = strings.ToLower(day)
	if dayIndex(day) < 0 {
		return
	}
	v.mu.Lock()
	v.day = day
	v.mu.Unlock()
}

// NextDay advances the cursor, wrapping sunday to monday.
func (v *ScheduleView) NextDay() string {
	return v.step(1)
}

// PrevDay retreats the cursor, wrapping monday to sunday.
func (v *ScheduleView) PrevDay() string {
	return v.step(-1)
}

func (v *ScheduleView) step(delta int) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := dayIndex(v.day)
	if i < 0 {
		i = 0
	}
	v.day = Days[(i+delta+len(Days))%len(Days)]
	return v.day
}

func dayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// Slots returns the cursor day's slots in server order.
func (v *ScheduleView) Slots() []models.ScheduleSlot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.week[v.day]
}

// Grouped buckets the cursor day's slots into the three fixed blocks, in
// canonical order, preserving the server's within-day ordering. Empty
// buckets are still returned so the rendering stays stable.
func (v *ScheduleView) Grouped() []Block {
	v.mu.Lock()
	slots := v.week[v.day]
	v.mu.Unlock()

	blocks := make([]Block, 0, len(models.BlockTypes))
	for _, bt := range models.BlockTypes {
		b := Block{Type: bt, Label: BlockTypeLabel(bt)}
		for _, slot := range slots {
			if slot.BlockType == bt {
				b.Slots = append(b.Slots, slot)
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// CreateSlot adds a cue to the cursor day and re-fetches the whole week.
func (v *ScheduleView) CreateSlot(ctx context.Context, slot models.ScheduleSlotCreate) error {
	if !v.gate.IsAuthenticated() {
		return ErrLocked
	}
	day := v.Day()
	slot.DayOfWeek = day
	if _, err := v.api.AddScheduleSlot(ctx, day, slot); err != nil {
		return err
	}
	v.log.Infow("schedule slot added", "day", day, "time", slot.Time, "program", slot.ProgramName)
	return v.Refresh(ctx)
}

// UpdateSlot patches a cue on the cursor day and re-fetches.
func (v *ScheduleView) UpdateSlot(ctx context.Context, slotID int, upd models.ScheduleSlotUpdate) error {
	if !v.gate.IsAuthenticated() {
		return ErrLocked
	}
	day := v.Day()
	if _, err := v.api.UpdateScheduleSlot(ctx, day, slotID, upd); err != nil {
		return err
	}
	v.log.Infow("schedule slot updated", "day", day, "slot", slotID)
	return v.Refresh(ctx)
}

// DeleteSlot removes a cue from the cursor day and re-fetches. When the
// session is locked no request is dispatched.
func (v *ScheduleView) DeleteSlot(ctx context.Context, slotID int) error {
	if !v.gate.IsAuthenticated() {
		return ErrLocked
	}
	day := v.Day()
	if err := v.api.DeleteScheduleSlot(ctx, day, slotID); err != nil {
		return err
	}
	v.log.Infow("schedule slot deleted", "day", day, "slot", slotID)
	return v.Refresh(ctx)
}

// Reset restores the server's default week and re-fetches.
func (v *ScheduleView) Reset(ctx context.Context) error {
	if !v.gate.IsAuthenticated() {
		return ErrLocked
	}
	if err := v.api.ResetSchedule(ctx); err != nil {
		return err
	}
	v.log.Infow("schedule reset to defaults")
	return v.Refresh(ctx)
}
