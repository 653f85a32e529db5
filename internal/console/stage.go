package console

import (
	"context"
	"sync"
	"time"
)

// MasterChannel is the stage id for the venue-wide volume; every speaker
// gets a channel keyed by its speaker id.
const MasterChannel = "master"

// Stage holds the staged-vs-committed value for one adjustable channel.
//
// committed only ever changes through MergeFromPoll; pending only ever
// changes through Stage/Cancel/commit completion. That separation is what
// keeps a slider from snapping back under the operator's finger when a
// poll lands mid-drag.
type Stage struct {
	mu              sync.Mutex
	committed       int
	pending         *int
	gen             uint64 // bumped by Stage; lets a commit detect a superseding edit
	lastCommitAt    time.Time
	commitMu        sync.Mutex // serializes commits on this channel
}

func NewStage(committed int) *Stage {
	return &Stage{committed: committed}
}

// Set stages a local edit. Cheap and side-effect-free; called on every
// intermediate drag step.
func (s *Stage) Set(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &v
	s.gen++
}

// Cancel discards any staged edit.
func (s *Stage) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.gen++
}

// MergeFromPoll records the last server-confirmed value. Never touches
// pending.
func (s *Stage) MergeFromPoll(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = v
}

// Display returns what the UI should show: the staged value when one
// exists, otherwise the last server truth.
func (s *Stage) Display() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return *s.pending
	}
	return s.committed
}

func (s *Stage) Committed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Pending reports the staged value and whether one exists.
func (s *Stage) Pending() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return 0, false
	}
	return *s.pending, true
}

func (s *Stage) Dirty() bool {
	_, ok := s.Pending()
	return ok
}

func (s *Stage) LastCommitAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommitAt
}

// Commit sends the staged value through write, then forces reconcile
// regardless of the write's outcome, then optimistically clears pending —
// unless a newer Set arrived while the commit was in flight, in which case
// the newer value survives for the next commit. Commits on the same channel
// are serialized; there is never more than one in-flight write per channel.
func (s *Stage) Commit(ctx context.Context, write func(context.Context, int) error, reconcile func(context.Context)) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return nil
	}
	v := *s.pending
	gen := s.gen
	s.lastCommitAt = time.Now()
	s.mu.Unlock()

	err := write(ctx, v)
	if reconcile != nil {
		reconcile(ctx)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.pending = nil
	}
	s.mu.Unlock()
	return err
}

// StageSet is the lazily-populated collection of channels. A channel is
// created the first time a poll sights it (a new speaker appearing) or the
// first time the UI stages a value for it.
type StageSet struct {
	mu     sync.Mutex
	stages map[string]*Stage
}

func NewStageSet() *StageSet {
	return &StageSet{stages: make(map[string]*Stage)}
}

// Channel returns the stage for id, creating it with a zero committed value
// if it does not exist yet.
func (set *StageSet) Channel(id string) *Stage {
	set.mu.Lock()
	defer set.mu.Unlock()
	st, ok := set.stages[id]
	if !ok {
		st = NewStage(0)
		set.stages[id] = st
	}
	return st
}

// Lookup returns the stage for id without creating one.
func (set *StageSet) Lookup(id string) (*Stage, bool) {
	set.mu.Lock()
	defer set.mu.Unlock()
	st, ok := set.stages[id]
	return st, ok
}

// MergeFromPoll commits a polled value into the channel, creating it on
// first sighting.
func (set *StageSet) MergeFromPoll(id string, v int) {
	set.Channel(id).MergeFromPoll(v)
}
