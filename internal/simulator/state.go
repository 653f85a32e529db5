package simulator

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"soundctl/internal/models"
)

// VenueState is the in-memory stand-in for the audio backend: per-speaker
// volumes, grouping, and the playback transport. It only exists inside the
// simulator; the real venue keeps this state in the speakers themselves.
type VenueState struct {
	mu sync.Mutex

	names   []string // fixed speaker names, stable order
	volumes map[string]int
	online  map[string]bool

	grouped bool
	groupID string

	masterVolume        int
	playing             bool
	currentProgram      string
	pausedUntilMidnight bool
}

const defaultVolume = 75

func NewVenueState() *VenueState {
	names := make([]string, 0, len(speakerIDs))
	for name := range speakerIDs {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &VenueState{
		names:        names,
		volumes:      make(map[string]int, len(names)),
		online:       make(map[string]bool, len(names)),
		masterVolume: defaultVolume,
	}
	for _, name := range names {
		s.volumes[name] = defaultVolume
		s.online[name] = true
	}
	return s
}

// Speakers renders the current fleet.
func (s *VenueState) Speakers() []models.Speaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Speaker, 0, len(s.names))
	for _, name := range s.names {
		v := s.volumes[name]
		out = append(out, models.Speaker{
			ID:        speakerIDs[name],
			Name:      name,
			IsOnline:  s.online[name],
			IsGrouped: s.grouped,
			Volume:    &v,
		})
	}
	return out
}

// HasSpeaker reports whether the name is part of the fleet.
func (s *VenueState) HasSpeaker(name string) bool {
	_, ok := speakerIDs[name]
	return ok
}

// SetSpeakerVolume sets one speaker's level.
func (s *VenueState) SetSpeakerVolume(name string, volume int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.volumes[name]; ok {
		s.volumes[name] = volume
	}
}

// SetAllVolumes sets every speaker and the master level at once.
func (s *VenueState) SetAllVolumes(volume int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range s.volumes {
		s.volumes[name] = volume
	}
	s.masterVolume = volume
}

// EnsureGroup joins all speakers into one group, minting an id on first use.
func (s *VenueState) EnsureGroup() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.grouped || s.groupID == "" {
		s.grouped = true
		s.groupID = uuid.NewString()
	}
	return s.groupID
}

// Playback renders the transport snapshot.
func (s *VenueState) Playback() models.PlaybackStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := models.PlaybackStatus{
		IsPlaying:             s.playing,
		CurrentVolume:         intCopy(s.masterVolume),
		IsPausedUntilMidnight: s.pausedUntilMidnight,
	}
	if s.currentProgram != "" {
		p := s.currentProgram
		st.CurrentProgram = &p
	}
	if s.groupID != "" {
		g := s.groupID
		st.GroupID = &g
	}
	return st
}

// StartProgram marks a program as playing.
func (s *VenueState) StartProgram(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
	s.currentProgram = name
	s.pausedUntilMidnight = false
}

// Resume restarts the transport without changing the program.
func (s *VenueState) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
	s.pausedUntilMidnight = false
}

// PauseUntilMidnight stops the transport; the schedule engine clears the
// flag at the next midnight rollover.
func (s *VenueState) PauseUntilMidnight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.currentProgram = ""
	s.pausedUntilMidnight = true
}

// ClearMidnightPause lifts the pause at day rollover.
func (s *VenueState) ClearMidnightPause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pausedUntilMidnight = false
}

// MasterVolume returns the venue-wide level.
func (s *VenueState) MasterVolume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.masterVolume
}

// CurrentProgram returns the running program name, empty when idle.
func (s *VenueState) CurrentProgram() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentProgram
}

// IsPausedUntilMidnight reports the pause flag.
func (s *VenueState) IsPausedUntilMidnight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pausedUntilMidnight
}

func intCopy(v int) *int { return &v }
