package console

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"soundctl/internal/models"
)

// FireMuteThreshold is the volume percentage at or below which a speaker is
// treated as fire-muted. The backend exposes no real mute flag; the
// threshold heuristic is the contract.
const FireMuteThreshold = 5

// programTypeNames maps the type code embedded in a script name to its
// operator-facing label. Unknown codes display verbatim.
var programTypeNames = map[string]string{
	"sm":          "Social Media Ad",
	"ad":          "Business Ad",
	"fm":          "Music",
	"parking":     "Parking Announcement",
	"adfire":      "Fire Show Ad",
	"fireparking": "Fire Show Parking",
	"TIGS":        "Gift Shop Ad",
	"pause":       "Pause",
}

// blockTypeLabels are the headings for the three schedule buckets.
var blockTypeLabels = map[string]string{
	models.BlockAM:     "Morning",
	models.BlockDay:    "Day Program",
	models.BlockPMFire: "Fire Show",
}

// FireShowEnabled reads the override flag out of a system snapshot, false
// when the snapshot or its scheduler sub-record is absent.
func FireShowEnabled(st *models.SystemStatus) bool {
	if st == nil {
		return false
	}
	return st.Scheduler.FireShowMode.Enabled
}

// IsMuted reports whether a speaker is fire-muted. Only the effective
// volume matters; online and grouped flags are irrelevant. A speaker with
// no reported volume is not muted.
func IsMuted(volume *int) bool {
	if volume == nil {
		return false
	}
	return *volume <= FireMuteThreshold
}

// ProgramDisplayName renders a raw script name like "85adfire.py" as
// "Fire Show Ad @ 85%". The leading digits are the volume; the remainder is
// a type code resolved through programTypeNames. A name with no leading
// digits shows "??" for the volume, and an empty name means nothing is
// playing.
func ProgramDisplayName(rawName string) string {
	if rawName == "" {
		return "Idle"
	}
	cleaned := strings.TrimSuffix(rawName, ".py")

	i := 0
	for i < len(cleaned) && unicode.IsDigit(rune(cleaned[i])) {
		i++
	}

	volume := "??"
	code := cleaned
	if i > 0 {
		volume = cleaned[:i]
		if i < len(cleaned) {
			code = cleaned[i:]
		}
	}
	name := code
	if label, ok := programTypeNames[code]; ok {
		name = label
	}
	return fmt.Sprintf("%s @ %s%%", name, volume)
}

// ProgramTypeName resolves a bare type code, falling back to the code
// itself.
func ProgramTypeName(code string) string {
	if label, ok := programTypeNames[code]; ok {
		return label
	}
	return code
}

// BlockTypeLabel returns the heading for a schedule block type.
func BlockTypeLabel(blockType string) string {
	if label, ok := blockTypeLabels[blockType]; ok {
		return label
	}
	return blockType
}

// TimeAgo renders a timestamp relative to now.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}

// NowPlayingLabel summarizes the playback snapshot for the dashboard
// header.
func NowPlayingLabel(st *models.PlaybackStatus) string {
	if st == nil {
		return "Idle"
	}
	if st.IsPausedUntilMidnight {
		return "Paused until midnight"
	}
	if !st.IsPlaying {
		return "Idle"
	}
	if st.TrackName != nil && *st.TrackName != "" {
		if st.Artist != nil && *st.Artist != "" {
			return fmt.Sprintf("%s - %s", *st.Artist, *st.TrackName)
		}
		return *st.TrackName
	}
	program := ""
	if st.CurrentProgram != nil {
		program = *st.CurrentProgram
	}
	return ProgramDisplayName(program)
}

// NextJobLabel summarizes the scheduler's next job, empty when none is
// queued.
func NextJobLabel(st *models.SystemStatus) string {
	if st == nil || st.Scheduler.NextJob == nil {
		return ""
	}
	nj := st.Scheduler.NextJob
	label := ProgramDisplayName(nj.Program)
	if nj.Time != "" {
		return fmt.Sprintf("%s at %s", label, nj.Time)
	}
	return label
}
