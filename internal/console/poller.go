package console

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"soundctl/internal/logger"
	"soundctl/internal/models"
)

// DefaultPollInterval matches the reference dashboard refresh rate.
const DefaultPollInterval = 5 * time.Second

const defaultLogLimit = 20

// Snapshot is the merged read-only view of the last successful fetches.
// Slices that have never been fetched are nil; a failed fetch leaves the
// prior value in place.
type Snapshot struct {
	System   *models.SystemStatus
	Playback *models.PlaybackStatus
	Speakers []models.Speaker
	Layout   *models.SpeakerLayout
	Logs     []models.ExecutionLog
}

// slice identifiers for the per-slice sequence guard.
const (
	sliceSystem = iota
	slicePlayback
	sliceSpeakers
	sliceLayout
	sliceLogs
	sliceCount
)

// Poller pulls the status endpoints at a fixed interval and merges results
// into the committed state. Each tick's reads run concurrently and fail
// independently; responses carry the tick's monotonic sequence number and a
// response older than the last one applied to its slice is discarded, so a
// slow periodic poll can never overwrite the result of a later forced
// reconcile.
type Poller struct {
	api      ControlAPI
	stages   *StageSet
	log      *logger.Logger
	logLimit int

	nextSeq atomic.Uint64

	mu         sync.Mutex
	snap       Snapshot
	appliedSeq [sliceCount]uint64

	updates chan struct{}

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(api ControlAPI, stages *StageSet, logLimit int, log *logger.Logger) *Poller {
	if logLimit <= 0 {
		logLimit = defaultLogLimit
	}
	return &Poller{
		api:      api,
		stages:   stages,
		log:      log,
		logLimit: logLimit,
		updates:  make(chan struct{}, 1),
	}
}

// Start launches the periodic loop: one immediate tick, then one per
// interval until Stop or ctx cancellation. Forced Ticks do not reset the
// timer.
func (p *Poller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.cancel != nil {
		return // already running
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done

	go func() {
		defer close(done)
		p.Tick(ctx)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.Tick(ctx)
			}
		}
	}()
}

// Stop cancels the loop. In-flight requests finish against a dead context
// and their results are discarded by the transport.
func (p *Poller) Stop() {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}

// Tick performs one fetch-and-merge pass. Used by the loop and, out of
// band, after every mutating action to reconcile quickly. A failed read
// logs and leaves its slice stale; it never discards the other slices.
func (p *Poller) Tick(ctx context.Context) {
	seq := p.nextSeq.Add(1)

	var wg sync.WaitGroup
	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				p.log.Debugw("poll read failed", "slice", name, "seq", seq, "err", err)
			}
		}()
	}

	run("system", func() error {
		st, err := p.api.GetSystemStatus(ctx)
		if err != nil {
			return err
		}
		p.applySystem(seq, st)
		return nil
	})
	run("playback", func() error {
		st, err := p.api.GetPlaybackStatus(ctx)
		if err != nil {
			return err
		}
		p.applyPlayback(seq, st)
		return nil
	})
	run("speakers", func() error {
		speakers, err := p.api.GetSpeakers(ctx)
		if err != nil {
			return err
		}
		p.applySpeakers(seq, speakers)
		return nil
	})
	run("layout", func() error {
		layout, err := p.api.GetSpeakerLayout(ctx)
		if err != nil {
			return err
		}
		p.applyLayout(seq, layout)
		return nil
	})
	run("logs", func() error {
		logs, err := p.api.GetExecutionLogs(ctx, p.logLimit)
		if err != nil {
			return err
		}
		p.applyLogs(seq, logs)
		return nil
	})

	wg.Wait()
	p.notify()
}

// Snapshot returns a copy of the current merged view.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Updates signals after each completed tick. The channel has a buffer of
// one; a slow consumer simply coalesces signals.
func (p *Poller) Updates() <-chan struct{} {
	return p.updates
}

func (p *Poller) notify() {
	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// fresh reports whether seq may be applied to the slice, recording it when
// so. Callers must hold p.mu.
func (p *Poller) fresh(slice int, seq uint64) bool {
	if seq < p.appliedSeq[slice] {
		p.log.Debugw("stale poll response discarded", "slice", slice, "seq", seq, "applied", p.appliedSeq[slice])
		return false
	}
	p.appliedSeq[slice] = seq
	return true
}

func (p *Poller) applySystem(seq uint64, st models.SystemStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fresh(sliceSystem, seq) {
		return
	}
	p.snap.System = &st
}

func (p *Poller) applyPlayback(seq uint64, st models.PlaybackStatus) {
	p.mu.Lock()
	if !p.fresh(slicePlayback, seq) {
		p.mu.Unlock()
		return
	}
	p.snap.Playback = &st
	p.mu.Unlock()

	if st.CurrentVolume != nil {
		p.stages.MergeFromPoll(MasterChannel, *st.CurrentVolume)
	}
}

func (p *Poller) applySpeakers(seq uint64, speakers []models.Speaker) {
	p.mu.Lock()
	if !p.fresh(sliceSpeakers, seq) {
		p.mu.Unlock()
		return
	}
	p.snap.Speakers = speakers
	p.mu.Unlock()

	for _, sp := range speakers {
		if sp.Volume != nil {
			p.stages.MergeFromPoll(sp.ID, *sp.Volume)
		}
	}
}

func (p *Poller) applyLayout(seq uint64, layout models.SpeakerLayout) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fresh(sliceLayout, seq) {
		return
	}
	p.snap.Layout = &layout
}

func (p *Poller) applyLogs(seq uint64, logs []models.ExecutionLog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fresh(sliceLogs, seq) {
		return
	}
	p.snap.Logs = logs
}
