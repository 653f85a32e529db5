package simulator

import (
	"context"
	"time"
)

// Engine drives the simulated scheduler clock. Each tick it fires cues
// whose (day, HH:MM) just became due, repeats the fire show cue at the top
// of each hour while the override is on, and handles the midnight rollover
// (override off, pause lifted). A minute fires at most once even when the
// tick interval is much shorter.
type Engine struct {
	svc *Service

	lastMinute string
	lastHour   int
	lastDay    int
}

func NewEngine(svc *Service) *Engine {
	return &Engine{svc: svc, lastHour: -1, lastDay: -1}
}

// Run ticks at the given interval until ctx is canceled.
func (e *Engine) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			e.step(ctx, now.In(e.svc.tz))
		}
	}
}

func (e *Engine) step(ctx context.Context, now time.Time) {
	minute := now.Format("15:04")
	if minute == e.lastMinute {
		return
	}
	e.lastMinute = minute

	// Midnight rollover
	if day := now.YearDay(); day != e.lastDay {
		if e.lastDay != -1 {
			e.rollover(ctx)
		}
		e.lastDay = day
	}

	// Hourly fire show cue
	if hour := now.Hour(); hour != e.lastHour {
		if e.lastHour != -1 && e.svc.FireShowEnabled() {
			if err := e.svc.RunProgram(ctx, fireShowProgram); err != nil {
				e.svc.log.Warnw("fire show cue failed", "err", err)
			}
		}
		e.lastHour = hour
	}

	e.fireDueSlots(ctx, now)
}

func (e *Engine) rollover(ctx context.Context) {
	if e.svc.FireShowEnabled() {
		e.svc.log.Infow("midnight reset, disabling fire show mode")
		_ = e.svc.DisableFireShow(ctx)
	}
	e.svc.state.ClearMidnightPause()
}

func (e *Engine) fireDueSlots(ctx context.Context, now time.Time) {
	day := weekdayName(int(now.Weekday()))
	hm := now.Format("15:04")

	slots, err := e.svc.repos.Schedule.ListDay(ctx, day)
	if err != nil {
		e.svc.log.Warnw("loading day schedule failed", "day", day, "err", err)
		return
	}
	for _, slot := range slots {
		if !slot.IsActive || slot.Time != hm {
			continue
		}
		e.svc.log.Infow("scheduled cue due", "day", day, "time", hm, "program", slot.ProgramName)
		if err := e.svc.RunProgram(ctx, slot.ProgramName); err != nil {
			e.svc.log.Warnw("scheduled cue failed", "program", slot.ProgramName, "err", err)
		}
	}
}
