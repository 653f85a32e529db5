package models

// FireShowMode is the recurring override sub-record of the scheduler status.
type FireShowMode struct {
	Enabled   bool    `json:"enabled"`
	NextReset *string `json:"next_reset"`
	Program   string  `json:"program"`
	Interval  string  `json:"interval"`
}

// NextJob describes the next scheduled cue, if any.
type NextJob struct {
	Program     string `json:"program"`
	DisplayName string `json:"display_name"`
	Time        string `json:"time"`
	Day         string `json:"day"`
	DateTime    string `json:"datetime"`
}

// SchedulerStatus is the scheduler sub-record of the system status.
type SchedulerStatus struct {
	IsRunning      bool         `json:"is_running"`
	CurrentProgram *string      `json:"current_program"`
	JobCount       int          `json:"job_count"`
	NextJob        *NextJob     `json:"next_job"`
	FireShowMode   FireShowMode `json:"fire_show_mode"`
}

// SystemStatus is the aggregate health snapshot, replaced wholesale each
// poll tick.
type SystemStatus struct {
	Status             string          `json:"status"` // healthy | degraded
	AudioConnected     bool            `json:"audio_connected"`
	Scheduler          SchedulerStatus `json:"scheduler"`
	Timezone           string          `json:"timezone"`
	CurrentTime        string          `json:"current_time"`
	CurrentTimeDisplay string          `json:"current_time_display"`
}

// ExecutionLog is one recent activity entry.
type ExecutionLog struct {
	ID           int     `json:"id"`
	ProgramName  string  `json:"program_name"`
	ExecutedAt   string  `json:"executed_at"` // RFC 3339
	Status       string  `json:"status"`      // success | error
	ErrorMessage *string `json:"error_message,omitempty"`
}
