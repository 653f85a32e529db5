// Package simulator is a local stand-in for the venue control service. It
// serves the same HTTP surface the console talks to, backed by SQLite for
// the schedule and execution log and an in-memory venue state, so the
// console can be exercised without the real audio backend.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
	"soundctl/internal/simulator/repository"
)

// fireShowProgram is the override cue that runs hourly while fire show mode
// is on.
const fireShowProgram = "85adfire.py"

// Service owns the simulated venue: schedule storage, execution logging,
// speaker/transport state, and the fire show override.
type Service struct {
	repos *repository.Repository
	state *VenueState
	tz    *time.Location
	log   *logger.Logger

	mu       sync.Mutex
	fireShow bool
}

func NewService(repos *repository.Repository, tz *time.Location, log *logger.Logger) *Service {
	return &Service{
		repos: repos,
		state: NewVenueState(),
		tz:    tz,
		log:   log,
	}
}

// Seed loads the factory schedule on first boot only.
func (s *Service) Seed(ctx context.Context) error {
	n, err := s.repos.Schedule.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	slots := DefaultScheduleSlots()
	if err := s.repos.Schedule.Replace(ctx, slots); err != nil {
		return err
	}
	s.log.Infow("seeded factory schedule", "slots", len(slots))
	return nil
}

// Schedule

func (s *Service) WeekSchedule(ctx context.Context) (models.WeekSchedule, error) {
	return s.repos.Schedule.ListWeek(ctx)
}

func (s *Service) DaySchedule(ctx context.Context, day string) (models.DaySchedule, error) {
	slots, err := s.repos.Schedule.ListDay(ctx, day)
	if err != nil {
		return models.DaySchedule{}, err
	}
	return models.DaySchedule{Day: day, Slots: slots}, nil
}

func (s *Service) AddSlot(ctx context.Context, day string, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	slot.DayOfWeek = day
	return s.repos.Schedule.Insert(ctx, slot)
}

func (s *Service) UpdateSlot(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	return s.repos.Schedule.Update(ctx, day, slotID, upd)
}

func (s *Service) DeleteSlot(ctx context.Context, day string, slotID int) error {
	return s.repos.Schedule.Delete(ctx, day, slotID)
}

func (s *Service) ResetSchedule(ctx context.Context) error {
	return s.repos.Schedule.Replace(ctx, DefaultScheduleSlots())
}

// Playback

func (s *Service) PlaybackStatus(ctx context.Context) (models.PlaybackStatus, error) {
	st := s.state.Playback()
	if nj, err := s.nextJob(ctx, time.Now().In(s.tz)); err == nil && nj != nil {
		st.NextScheduled = &nj.Program
		sched := fmt.Sprintf("%s %s", nj.Day, nj.Time)
		st.NextScheduledTime = &sched
	}
	return st, nil
}

func (s *Service) Play(ctx context.Context, cmd models.PlaybackCommand) error {
	switch {
	case cmd.ProgramName != "":
		return s.RunProgram(ctx, cmd.ProgramName)
	case cmd.FavoriteID != "":
		s.state.EnsureGroup()
		s.state.StartProgram("")
		s.log.Infow("playing favorite", "favorite", cmd.FavoriteID)
		return nil
	default:
		s.state.Resume()
		return nil
	}
}

func (s *Service) Pause(ctx context.Context) error {
	s.state.PauseUntilMidnight()
	return s.repos.Logs.Append(ctx, "pause.py", "success", nil)
}

func (s *Service) SetMasterVolume(volume int) error {
	if volume < 0 || volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	s.state.SetAllVolumes(volume)
	return nil
}

// RunProgram executes a cue immediately: pause cues stop the transport,
// everything else groups the fleet, pushes the cue's volume, and starts
// playing. Every execution lands in the log.
func (s *Service) RunProgram(ctx context.Context, programName string) error {
	if programName == "pause.py" || programName == "pause" {
		s.state.PauseUntilMidnight()
		return s.repos.Logs.Append(ctx, programName, "success", nil)
	}

	s.state.EnsureGroup()
	s.state.SetAllVolumes(extractVolume(programName))
	s.state.StartProgram(programName)
	s.log.Infow("running program", "program", programName)
	return s.repos.Logs.Append(ctx, programName, "success", nil)
}

// Speakers

func (s *Service) Speakers() []models.Speaker {
	return s.state.Speakers()
}

func (s *Service) Layout() models.SpeakerLayout {
	return models.SpeakerLayout{Layout: speakerGrid, Speakers: speakerIDs}
}

func (s *Service) GroupAll() string {
	return s.state.EnsureGroup()
}

func (s *Service) SetSpeakerVolume(name string, volume int) error {
	if !s.state.HasSpeaker(name) {
		return fmt.Errorf("speaker not found: %s", name)
	}
	if volume < 0 || volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	s.state.SetSpeakerVolume(name, volume)
	return nil
}

// Programs and favorites

func (s *Service) Programs() models.ProgramCatalog {
	catalog := programCatalog()
	return models.ProgramCatalog{Programs: catalog, AvailableScripts: catalog}
}

func (s *Service) Favorites() []models.Favorite {
	return knownFavorites
}

// System

func (s *Service) ExecutionLogs(ctx context.Context, limit int) ([]models.ExecutionLog, error) {
	return s.repos.Logs.ListRecent(ctx, limit)
}

func (s *Service) SystemStatus(ctx context.Context) (models.SystemStatus, error) {
	now := time.Now().In(s.tz)

	active, err := s.repos.Schedule.ListActive(ctx)
	if err != nil {
		return models.SystemStatus{}, err
	}
	nj, err := s.nextJob(ctx, now)
	if err != nil {
		return models.SystemStatus{}, err
	}

	scheduler := models.SchedulerStatus{
		IsRunning:    true,
		JobCount:     len(active),
		NextJob:      nj,
		FireShowMode: s.FireShowStatus(),
	}
	if cur := s.state.CurrentProgram(); cur != "" {
		scheduler.CurrentProgram = &cur
	}

	return models.SystemStatus{
		Status:             "healthy",
		AudioConnected:     true,
		Scheduler:          scheduler,
		Timezone:           s.tz.String(),
		CurrentTime:        now.Format(time.RFC3339),
		CurrentTimeDisplay: now.Format("Monday 3:04 PM"),
	}, nil
}

// Fire show mode

func (s *Service) FireShowStatus() models.FireShowMode {
	s.mu.Lock()
	enabled := s.fireShow
	s.mu.Unlock()

	mode := models.FireShowMode{
		Enabled:  enabled,
		Program:  fireShowProgram,
		Interval: "Every hour",
	}
	if enabled {
		reset := "Midnight (00:00)"
		mode.NextReset = &reset
	}
	return mode
}

func (s *Service) FireShowEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireShow
}

// EnableFireShow turns the override on and runs the cue immediately; the
// engine repeats it hourly until midnight.
func (s *Service) EnableFireShow(ctx context.Context) error {
	s.mu.Lock()
	s.fireShow = true
	s.mu.Unlock()
	s.log.Infow("fire show mode enabled")
	return s.RunProgram(ctx, fireShowProgram)
}

func (s *Service) DisableFireShow(ctx context.Context) error {
	s.mu.Lock()
	s.fireShow = false
	s.mu.Unlock()
	s.log.Infow("fire show mode disabled")
	return nil
}

func (s *Service) ToggleFireShow(ctx context.Context) error {
	if s.FireShowEnabled() {
		return s.DisableFireShow(ctx)
	}
	return s.EnableFireShow(ctx)
}

// nextJob scans the active slots for the earliest cue after now, wrapping
// into the following week when today has nothing left.
func (s *Service) nextJob(ctx context.Context, now time.Time) (*models.NextJob, error) {
	week, err := s.repos.Schedule.ListWeek(ctx)
	if err != nil {
		return nil, err
	}

	today := int(now.Weekday()) // Sunday = 0
	nowHM := now.Format("15:04")

	for offset := 0; offset < 8; offset++ {
		day := weekdayName((today + offset) % 7)
		for _, slot := range week[day] {
			if !slot.IsActive {
				continue
			}
			if offset == 0 && slot.Time <= nowHM {
				continue
			}
			runAt := now.AddDate(0, 0, offset)
			return &models.NextJob{
				Program:     slot.ProgramName,
				DisplayName: displayName(slot.ProgramName),
				Time:        slot.Time,
				Day:         runAt.Format("Monday"),
				DateTime:    fmt.Sprintf("%sT%s:00", runAt.Format("2006-01-02"), slot.Time),
			}, nil
		}
	}
	return nil, nil
}

func weekdayName(d int) string {
	// time.Weekday order, Sunday first
	names := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	return names[d]
}

// displayName renders "85adfire.py" as "Fire Show Ad @ 85%".
func displayName(programName string) string {
	typeNames := map[string]string{
		"sm":          "Social Media Ad",
		"ad":          "Business Ad",
		"fm":          "Music",
		"parking":     "Parking Announcement",
		"adfire":      "Fire Show Ad",
		"fireparking": "Fire Show Parking",
		"TIGS":        "Gift Shop Ad",
		"pause":       "Pause",
	}
	code := extractType(programName)
	name := code
	if label, ok := typeNames[code]; ok {
		name = label
	}
	return fmt.Sprintf("%s @ %d%%", name, extractVolume(programName))
}
