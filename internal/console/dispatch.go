package console

import (
	"context"
	"errors"

	"soundctl/internal/logger"
	"soundctl/internal/models"
)

// ErrLocked is returned when a mutating action is attempted without an
// authenticated session. Callers treat it as "action unavailable", not as a
// failure to retry.
var ErrLocked = errors.New("console: session not authenticated")

// Dispatcher translates an operator intent into exactly one outward
// request, then forces a poller tick so the next render reflects the
// mutation instead of waiting out the poll interval. Every mutation is
// gated on the session.
type Dispatcher struct {
	api    ControlAPI
	gate   *Gate
	stages *StageSet
	poller *Poller
	log    *logger.Logger
}

func NewDispatcher(api ControlAPI, gate *Gate, stages *StageSet, poller *Poller, log *logger.Logger) *Dispatcher {
	return &Dispatcher{api: api, gate: gate, stages: stages, poller: poller, log: log}
}

// run gates, executes, and reconciles on success.
func (d *Dispatcher) run(ctx context.Context, action string, fn func(context.Context) error) error {
	if !d.gate.IsAuthenticated() {
		return ErrLocked
	}
	if err := fn(ctx); err != nil {
		d.log.Warnw("action failed", "action", action, "err", err)
		return err
	}
	d.log.Infow("action dispatched", "action", action)
	d.poller.Tick(ctx)
	return nil
}

// Play resumes regular programming.
func (d *Dispatcher) Play(ctx context.Context) error {
	return d.run(ctx, "play", func(ctx context.Context) error {
		return d.api.Play(ctx, models.PlaybackCommand{})
	})
}

// PlayFavorite starts a named station or playlist.
func (d *Dispatcher) PlayFavorite(ctx context.Context, favoriteID string) error {
	return d.run(ctx, "play_favorite", func(ctx context.Context) error {
		return d.api.Play(ctx, models.PlaybackCommand{FavoriteID: favoriteID})
	})
}

// Pause halts playback until midnight.
func (d *Dispatcher) Pause(ctx context.Context) error {
	return d.run(ctx, "pause", d.api.Pause)
}

// RunProgram fires a one-shot program immediately, outside the schedule.
func (d *Dispatcher) RunProgram(ctx context.Context, programName string) error {
	return d.run(ctx, "run_program", func(ctx context.Context) error {
		return d.api.RunProgram(ctx, programName)
	})
}

// ToggleFireShow flips the hourly fire-show override.
func (d *Dispatcher) ToggleFireShow(ctx context.Context) error {
	return d.run(ctx, "toggle_fire_show", d.api.ToggleFireShowMode)
}

// GroupAll re-joins every speaker into the venue-wide group.
func (d *Dispatcher) GroupAll(ctx context.Context) error {
	return d.run(ctx, "group_all", d.api.GroupAllSpeakers)
}

// SetAllSpeakerVolumes pushes one volume to every speaker at once.
func (d *Dispatcher) SetAllSpeakerVolumes(ctx context.Context, volume int) error {
	return d.run(ctx, "set_all_speaker_volumes", func(ctx context.Context) error {
		return d.api.SetAllSpeakersVolume(ctx, volume)
	})
}

// CommitMasterVolume commits the staged master value: one write, then an
// unconditional reconciling tick, even when the write failed, so the UI
// converges on whatever the server actually holds.
func (d *Dispatcher) CommitMasterVolume(ctx context.Context) error {
	if !d.gate.IsAuthenticated() {
		return ErrLocked
	}
	stage := d.stages.Channel(MasterChannel)
	return stage.Commit(ctx,
		func(ctx context.Context, v int) error {
			return d.api.SetVolume(ctx, v)
		},
		d.poller.Tick,
	)
}

// CommitSpeakerVolume commits the staged value for one speaker channel.
// The control service addresses speakers by name with the id carried
// alongside.
func (d *Dispatcher) CommitSpeakerVolume(ctx context.Context, speakerName, speakerID string) error {
	if !d.gate.IsAuthenticated() {
		return ErrLocked
	}
	stage := d.stages.Channel(speakerID)
	return stage.Commit(ctx,
		func(ctx context.Context, v int) error {
			return d.api.SetSpeakerVolume(ctx, speakerName, speakerID, v)
		},
		d.poller.Tick,
	)
}
