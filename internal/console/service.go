// Package console implements the control-plane engine behind the operator
// TUI: session gating, staged-vs-committed control values, the status
// poller, and the command dispatcher. Rendering lives elsewhere; everything
// here is testable without a terminal.
package console

import (
	"context"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
	"soundctl/internal/statestore"
)

// ControlAPI is the slice of the control-service client the engine uses.
// *client.Client satisfies it; tests substitute stubs.
type ControlAPI interface {
	GetSystemStatus(ctx context.Context) (models.SystemStatus, error)
	GetPlaybackStatus(ctx context.Context) (models.PlaybackStatus, error)
	GetSpeakers(ctx context.Context) ([]models.Speaker, error)
	GetSpeakerLayout(ctx context.Context) (models.SpeakerLayout, error)
	GetExecutionLogs(ctx context.Context, limit int) ([]models.ExecutionLog, error)
	GetSchedule(ctx context.Context) (models.WeekSchedule, error)
	GetPrograms(ctx context.Context) (models.ProgramCatalog, error)
	GetKnownFavorites(ctx context.Context) ([]models.Favorite, error)

	Play(ctx context.Context, cmd models.PlaybackCommand) error
	Pause(ctx context.Context) error
	SetVolume(ctx context.Context, volume int) error
	RunProgram(ctx context.Context, programName string) error
	ToggleFireShowMode(ctx context.Context) error
	GroupAllSpeakers(ctx context.Context) error
	SetSpeakerVolume(ctx context.Context, speakerName, speakerID string, volume int) error
	SetAllSpeakersVolume(ctx context.Context, volume int) error

	AddScheduleSlot(ctx context.Context, day string, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error)
	UpdateScheduleSlot(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error)
	DeleteScheduleSlot(ctx context.Context, day string, slotID int) error
	ResetSchedule(ctx context.Context) error
}

// Console aggregates the engine services, mirroring how the sub-services
// share the same client and session gate.
type Console struct {
	Gate       *Gate
	Stages     *StageSet
	Poller     *Poller
	Dispatcher *Dispatcher
	Schedule   *ScheduleView
	Catalog    *CatalogView
}

// Options carries the tunables the engine needs at construction.
type Options struct {
	PIN          string
	PollInterval time.Duration
	LogLimit     int
	Now          func() time.Time // defaults to time.Now
}

// New wires the engine. The state store seeds and persists the session flag.
func New(api ControlAPI, store statestore.Store, opts Options, log *logger.Logger) *Console {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LogLimit <= 0 {
		opts.LogLimit = defaultLogLimit
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	gate := NewGate(opts.PIN, store, log)
	stages := NewStageSet()
	poller := NewPoller(api, stages, opts.LogLimit, log)
	dispatcher := NewDispatcher(api, gate, stages, poller, log)
	schedule := NewScheduleView(api, gate, opts.Now, log)
	catalog := NewCatalogView(api, dispatcher, opts.Now, log)

	return &Console{
		Gate:       gate,
		Stages:     stages,
		Poller:     poller,
		Dispatcher: dispatcher,
		Schedule:   schedule,
		Catalog:    catalog,
	}
}
