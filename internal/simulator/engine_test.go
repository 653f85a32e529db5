package simulator

import (
	"context"
	"testing"
	"time"

	"soundctl/internal/models"
)

func TestEngine_FiresDueSlotOncePerMinute(t *testing.T) {
	svc, sched, logs := newTestService()
	_, _ = sched.Insert(context.Background(), models.ScheduleSlotCreate{
		DayOfWeek: "monday", Time: "10:30", ProgramName: "70fm.py", BlockType: models.BlockDay, IsActive: true,
	})

	e := NewEngine(svc)
	// 2026-03-02 is a Monday.
	at := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

	e.step(context.Background(), at)
	e.step(context.Background(), at.Add(time.Second)) // same minute, must not refire
	if len(logs.entries) != 1 || logs.entries[0].ProgramName != "70fm.py" {
		t.Fatalf("expected exactly one execution, got %+v", logs.entries)
	}

	e.step(context.Background(), at.Add(time.Minute))
	if len(logs.entries) != 1 {
		t.Fatalf("slot refired on a later minute: %+v", logs.entries)
	}
}

func TestEngine_SkipsInactiveSlots(t *testing.T) {
	svc, sched, logs := newTestService()
	_, _ = sched.Insert(context.Background(), models.ScheduleSlotCreate{
		DayOfWeek: "monday", Time: "10:30", ProgramName: "70fm.py", BlockType: models.BlockDay, IsActive: false,
	})

	e := NewEngine(svc)
	e.step(context.Background(), time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC))
	if len(logs.entries) != 0 {
		t.Fatalf("inactive slot fired: %+v", logs.entries)
	}
}

func TestEngine_HourlyFireShowCue(t *testing.T) {
	svc, _, logs := newTestService()
	if err := svc.EnableFireShow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("expected the immediate cue on enable, got %+v", logs.entries)
	}

	e := NewEngine(svc)
	e.step(context.Background(), time.Date(2026, time.March, 2, 18, 59, 0, 0, time.UTC))
	if len(logs.entries) != 1 {
		t.Fatalf("cue fired before the hour mark: %+v", logs.entries)
	}
	e.step(context.Background(), time.Date(2026, time.March, 2, 19, 0, 0, 0, time.UTC))
	if len(logs.entries) != 2 || logs.entries[1].ProgramName != fireShowProgram {
		t.Fatalf("expected the hourly cue at 19:00, got %+v", logs.entries)
	}
}

func TestEngine_MidnightDisablesFireShow(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.EnableFireShow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := NewEngine(svc)
	e.step(context.Background(), time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC))
	if !svc.FireShowEnabled() {
		t.Fatalf("fire show dropped before midnight")
	}
	e.step(context.Background(), time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	if svc.FireShowEnabled() {
		t.Fatalf("expected fire show disabled at midnight rollover")
	}
}

func TestEngine_MidnightLiftsPause(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.Pause(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.state.IsPausedUntilMidnight() {
		t.Fatalf("expected paused")
	}

	e := NewEngine(svc)
	e.step(context.Background(), time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC))
	e.step(context.Background(), time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	if svc.state.IsPausedUntilMidnight() {
		t.Fatalf("expected pause lifted at midnight")
	}
}

func TestExtractVolumeAndType(t *testing.T) {
	tests := []struct {
		name     string
		wantVol  int
		wantType string
	}{
		{"85adfire.py", 85, "adfire"},
		{"70fm.py", 70, "fm"},
		{"pause.py", 75, "pause"},
		{"75TIGS.py", 75, "TIGS"},
		{"100", 100, "fm"},
	}
	for _, tc := range tests {
		if got := extractVolume(tc.name); got != tc.wantVol {
			t.Fatalf("extractVolume(%q) = %d, want %d", tc.name, got, tc.wantVol)
		}
		if got := extractType(tc.name); got != tc.wantType {
			t.Fatalf("extractType(%q) = %q, want %q", tc.name, got, tc.wantType)
		}
	}
}

func TestNextJob_WrapsToNextDay(t *testing.T) {
	svc, sched, _ := newTestService()
	ctx := context.Background()
	_, _ = sched.Insert(ctx, models.ScheduleSlotCreate{
		DayOfWeek: "monday", Time: "09:00", ProgramName: "60sm.py", BlockType: models.BlockAM, IsActive: true,
	})
	_, _ = sched.Insert(ctx, models.ScheduleSlotCreate{
		DayOfWeek: "tuesday", Time: "11:00", ProgramName: "65fm.py", BlockType: models.BlockDay, IsActive: true,
	})

	// Monday 10:00, after the monday slot: next is tuesday's.
	nj, err := svc.nextJob(ctx, time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nj == nil || nj.Program != "65fm.py" || nj.Day != "Tuesday" {
		t.Fatalf("unexpected next job: %+v", nj)
	}

	// Monday 08:00, before the monday slot.
	nj, err = svc.nextJob(ctx, time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nj == nil || nj.Program != "60sm.py" || nj.Time != "09:00" {
		t.Fatalf("unexpected next job: %+v", nj)
	}
}
