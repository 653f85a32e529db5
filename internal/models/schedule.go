package models

// Block types group slots by time-of-day purpose. The canonical display
// order is AM, DAY, PM_FIRE.
const (
	BlockAM     = "AM"
	BlockDay    = "DAY"
	BlockPMFire = "PM_FIRE"
)

// BlockTypes lists the three fixed buckets in canonical order.
var BlockTypes = []string{BlockAM, BlockDay, BlockPMFire}

// ScheduleSlot is one automated cue in the weekly schedule. The server owns
// slot identity and ordering; the console never re-sorts within a day.
type ScheduleSlot struct {
	ID          int    `json:"id"`
	DayOfWeek   string `json:"day_of_week"`
	Time        string `json:"time"` // HH:MM
	ProgramName string `json:"program_name"`
	BlockType   string `json:"block_type"` // AM | DAY | PM_FIRE
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ScheduleSlotCreate is the body for POST /schedule/{day}.
type ScheduleSlotCreate struct {
	DayOfWeek   string `json:"day_of_week"`
	Time        string `json:"time"`
	ProgramName string `json:"program_name"`
	BlockType   string `json:"block_type"`
	IsActive    bool   `json:"is_active"`
}

// ScheduleSlotUpdate is the body for PUT /schedule/{day}/{slotId}.
// Nil fields are left unchanged by the server.
type ScheduleSlotUpdate struct {
	Time        *string `json:"time,omitempty"`
	ProgramName *string `json:"program_name,omitempty"`
	BlockType   *string `json:"block_type,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// DaySchedule is the response of GET /schedule/{day}.
type DaySchedule struct {
	Day   string         `json:"day"`
	Slots []ScheduleSlot `json:"slots"`
}

// WeekSchedule maps lowercase weekday names to that day's slots,
// time-ascending as served.
type WeekSchedule map[string][]ScheduleSlot
