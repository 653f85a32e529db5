package models

// Speaker is one venue speaker as reported by the control service.
// Volume is the last-known level; nil when the service could not read it.
type Speaker struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsOnline  bool   `json:"is_online"`
	IsGrouped bool   `json:"is_grouped"`
	Volume    *int   `json:"volume,omitempty"`
}

// SpeakerVolume is the body for PUT /speakers/{name}/volume.
type SpeakerVolume struct {
	SpeakerID string `json:"speaker_id"`
	Volume    int    `json:"volume"` // 0-100
}

// AllSpeakersVolume is the body for POST /speakers/volume/all.
type AllSpeakersVolume struct {
	Volume int `json:"volume"` // 0-100
}

// SpeakerLayout describes the venue grid used for visual display, plus the
// name -> player-id mapping.
type SpeakerLayout struct {
	Layout   [][]string        `json:"layout"`
	Speakers map[string]string `json:"speakers"`
}
