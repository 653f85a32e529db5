package models

// PlaybackStatus is the wholesale playback snapshot from the control
// service, replaced on every poll tick.
type PlaybackStatus struct {
	IsPlaying             bool    `json:"is_playing"`
	CurrentProgram        *string `json:"current_program"`
	CurrentVolume         *int    `json:"current_volume"`
	GroupID               *string `json:"group_id"`
	NextScheduled         *string `json:"next_scheduled"`
	NextScheduledTime     *string `json:"next_scheduled_time"`
	TrackName             *string `json:"track_name"`
	Artist                *string `json:"artist"`
	Album                 *string `json:"album"`
	ImageURL              *string `json:"image_url"`
	Station               *string `json:"station"`
	IsPausedUntilMidnight bool    `json:"is_paused_until_midnight"`
	PausedUntil           *string `json:"paused_until"`
}

// PlaybackCommand is the body for POST /playback/play.
type PlaybackCommand struct {
	ProgramName string `json:"program_name,omitempty"`
	FavoriteID  string `json:"favorite_id,omitempty"`
}

// VolumeCommand is the body for POST /playback/volume.
type VolumeCommand struct {
	Volume int `json:"volume"` // 0-100
}
