package simulator

import (
	"sort"
	"strings"

	"soundctl/internal/models"
)

// speakerIDs maps speaker names to their fixed hardware identifiers.
var speakerIDs = map[string]string{
	"BATHROOM_DOORS": "RINCON_804AF2A48D2F01400",
	"STAGE":          "RINCON_804AF2AB699401400",
	"RIGHT_POLE_01":  "RINCON_804AF2A52DDC01400",
	"RIGHT_POLE_02":  "RINCON_804AF2A52D7901400",
	"RIGHT_POLE_03":  "RINCON_C4387580DC4101400",
	"LEFT_POLE_01":   "RINCON_347E5C0E7E1601400",
	"LEFT_POLE_02":   "RINCON_C4387557F99B01400",
	"LEFT_POLE_03":   "RINCON_C4387580DDA001400",
	"CENTER_POLE":    "RINCON_C43875560E2801400",
}

// speakerGrid is the venue floor plan, row by row, as the UI draws it.
var speakerGrid = [][]string{
	{"LEFT_POLE_01", "CENTER_POLE", "RIGHT_POLE_01"},
	{"LEFT_POLE_02", "STAGE", "RIGHT_POLE_02"},
	{"LEFT_POLE_03", "BATHROOM_DOORS", "RIGHT_POLE_03"},
}

// knownFavorites are the station/playlist ids the venue programs reference.
var knownFavorites = []models.Favorite{
	{ID: "28", Name: "Visitors Flea Market Commercial (English)", Type: "announcement"},
	{ID: "29", Name: "Visitors Flea Market Commercial (Spanish)", Type: "announcement"},
	{ID: "30", Name: "Parking Announcement", Type: "announcement"},
	{ID: "31", Name: "TIGS Program", Type: "announcement"},
	{ID: "33", Name: "Main Music Playlist", Type: "music"},
	{ID: "34", Name: "Fire Show Music", Type: "music"},
	{ID: "35", Name: "Secondary Announcement", Type: "announcement"},
}

type defaultSlot struct {
	time    string
	program string
}

// defaultWeek is the factory schedule, restored by POST /schedule/reset and
// seeded on first boot. Times are venue-local.
var defaultWeek = map[string]map[string][]defaultSlot{
	"monday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "pause.py"},
		},
		models.BlockDay: {
			{"12:00", "65fm.py"}, {"12:15", "65sm.py"}, {"12:30", "65fm.py"}, {"12:45", "65sm.py"},
			{"13:00", "75TIGS.py"}, {"13:15", "65sm.py"}, {"13:30", "70fm.py"}, {"13:45", "70sm.py"},
			{"14:00", "70parking.py"}, {"14:15", "75TIGS.py"}, {"14:30", "70fm.py"}, {"14:45", "70sm.py"},
			{"15:00", "75fm.py"}, {"15:15", "75sm.py"}, {"15:30", "75fm.py"}, {"15:45", "75TIGS.py"},
			{"16:00", "75parking.py"}, {"16:15", "75sm.py"}, {"16:30", "75fm.py"}, {"16:45", "75sm.py"},
			{"17:00", "75parking.py"}, {"17:15", "75sm.py"}, {"17:30", "75fm.py"},
		},
		models.BlockPMFire: {
			{"17:45", "75fireparking.py"}, {"18:00", "75fireparking.py"}, {"18:50", "75adfire.py"},
			{"19:00", "75fireparking.py"}, {"19:50", "75adfire.py"},
			{"20:00", "75fireparking.py"}, {"20:50", "75adfire.py"},
			{"21:00", "75fireparking.py"}, {"21:50", "75adfire.py"},
			{"22:00", "75fireparking.py"}, {"22:50", "75adfire.py"},
			{"23:00", "75fireparking.py"},
		},
	},
	"tuesday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "65fm.py"}, {"11:15", "65sm.py"}, {"11:30", "65fm.py"}, {"11:45", "65sm.py"},
			{"12:00", "65fm.py"}, {"12:15", "65sm.py"}, {"12:30", "65fm.py"}, {"12:45", "65sm.py"},
			{"13:00", "65parking.py"}, {"13:15", "75TIGS.py"}, {"13:30", "65fm.py"}, {"13:45", "65sm.py"},
			{"14:00", "65parking.py"}, {"14:15", "65sm.py"}, {"14:30", "70fm.py"}, {"14:45", "70sm.py"},
			{"15:00", "70parking.py"}, {"15:15", "70sm.py"}, {"15:30", "75TIGS.py"}, {"15:45", "70sm.py"},
			{"16:00", "75parking.py"}, {"16:15", "75sm.py"}, {"16:30", "75TIGS.py"}, {"16:45", "75sm.py"},
			{"17:00", "75parking.py"}, {"17:15", "75sm.py"}, {"17:30", "75TIGS.py"},
		},
		models.BlockPMFire: {
			{"17:45", "75fireparking.py"}, {"18:00", "75fireparking.py"}, {"18:50", "75adfire.py"},
			{"19:00", "75fireparking.py"}, {"19:50", "75adfire.py"},
			{"20:00", "75fireparking.py"}, {"20:50", "75adfire.py"},
			{"21:00", "75fireparking.py"}, {"21:50", "75adfire.py"},
			{"22:00", "75fireparking.py"}, {"22:50", "75adfire.py"},
			{"23:00", "75fireparking.py"},
		},
	},
	"wednesday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "65fm.py"}, {"11:15", "65sm.py"}, {"11:30", "75TIGS.py"}, {"11:45", "65sm.py"},
			{"12:00", "65fm.py"}, {"12:15", "65sm.py"}, {"12:30", "75TIGS.py"}, {"12:45", "65sm.py"},
			{"13:00", "65parking.py"}, {"13:15", "65sm.py"}, {"13:30", "65fm.py"}, {"13:45", "65sm.py"},
			{"14:00", "75TIGS.py"}, {"14:15", "65sm.py"}, {"14:30", "65fm.py"}, {"14:45", "70sm.py"},
			{"15:00", "70parking.py"}, {"15:15", "70sm.py"}, {"15:30", "75TIGS.py"}, {"15:45", "70sm.py"},
			{"16:00", "70parking.py"}, {"16:15", "70sm.py"}, {"16:30", "75TIGS.py"}, {"16:45", "75sm.py"},
			{"17:00", "80parking.py"}, {"17:15", "80sm.py"}, {"17:30", "80fm.py"},
		},
		models.BlockPMFire: {
			{"17:45", "75fireparking.py"}, {"18:00", "75fireparking.py"}, {"18:50", "75adfire.py"},
			{"19:00", "75fireparking.py"}, {"19:50", "75adfire.py"},
			{"20:00", "75fireparking.py"}, {"20:50", "75adfire.py"},
			{"21:00", "75fireparking.py"}, {"21:50", "75adfire.py"},
			{"22:00", "75fireparking.py"}, {"22:50", "75adfire.py"},
			{"23:00", "75fireparking.py"},
		},
	},
	"thursday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "75TIGS.py"}, {"11:15", "75sm.py"}, {"11:30", "75fm.py"}, {"11:45", "75sm.py"},
			{"12:00", "75parking.py"}, {"12:15", "75TIGS.py"}, {"12:30", "75fm.py"}, {"12:45", "75sm.py"},
			{"13:00", "75TIGS.py"}, {"13:15", "75sm.py"}, {"13:30", "75fm.py"}, {"13:45", "75sm.py"},
			{"14:00", "75parking.py"}, {"14:15", "75sm.py"}, {"14:30", "75TIGS.py"}, {"14:45", "75sm.py"},
			{"15:00", "80parking.py"}, {"15:15", "80sm.py"}, {"15:30", "80fm.py"}, {"15:45", "80sm.py"},
			{"16:00", "80parking.py"}, {"16:15", "80sm.py"}, {"16:30", "80fm.py"}, {"16:45", "80sm.py"},
			{"17:00", "80parking.py"}, {"17:15", "80ad.py"}, {"17:30", "80fm.py"},
		},
		models.BlockPMFire: {
			{"17:45", "85fireparking.py"}, {"18:00", "85fireparking.py"}, {"18:50", "85adfire.py"},
			{"19:00", "85fireparking.py"}, {"19:50", "85adfire.py"},
			{"20:00", "85fireparking.py"}, {"20:50", "85adfire.py"},
			{"21:00", "85fireparking.py"}, {"21:50", "85adfire.py"},
			{"22:00", "85fireparking.py"}, {"22:50", "85adfire.py"},
			{"23:00", "85fireparking.py"},
		},
	},
	"friday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "65parking.py"}, {"02:15", "50sm.py"}, {"02:30", "50sm.py"}, {"02:45", "50sm.py"},
			{"03:00", "65parking.py"}, {"03:15", "50sm.py"}, {"03:30", "50sm.py"}, {"03:45", "50sm.py"},
			{"04:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "75fm.py"}, {"11:15", "75sm.py"}, {"11:30", "75TIGS.py"}, {"11:45", "75sm.py"},
			{"12:00", "75fm.py"}, {"12:15", "75sm.py"}, {"12:30", "75fm.py"}, {"12:45", "75TIGS.py"},
			{"13:00", "75parking.py"}, {"13:15", "75sm.py"}, {"13:30", "75fm.py"}, {"13:45", "75sm.py"},
			{"14:00", "75parking.py"}, {"14:15", "75TIGS.py"}, {"14:30", "75fm.py"}, {"14:45", "75sm.py"},
			{"15:00", "80parking.py"}, {"15:15", "80sm.py"}, {"15:30", "80fm.py"}, {"15:45", "80sm.py"},
			{"16:00", "90parking.py"}, {"16:15", "90ad.py"}, {"16:30", "90fm.py"}, {"16:45", "90sm.py"},
			{"17:00", "90parking.py"}, {"17:15", "90ad.py"}, {"17:30", "90fm.py"},
		},
		models.BlockPMFire: {
			{"17:45", "85fireparking.py"}, {"18:00", "85fireparking.py"}, {"18:50", "85adfire.py"},
			{"19:00", "85fireparking.py"}, {"19:50", "85adfire.py"},
			{"20:00", "85fireparking.py"}, {"20:50", "85adfire.py"},
			{"21:00", "85fireparking.py"}, {"21:50", "85adfire.py"},
			{"22:00", "85fireparking.py"}, {"22:50", "85adfire.py"},
			{"23:00", "85fireparking.py"},
		},
	},
	"saturday": {
		models.BlockAM: {
			{"00:00", "70parking.py"},
			{"00:15", "70sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "65sm.py"}, {"02:15", "65sm.py"}, {"02:30", "65sm.py"}, {"02:45", "65sm.py"},
			{"03:00", "65parking.py"}, {"03:15", "65sm.py"}, {"03:30", "65sm.py"}, {"03:45", "65sm.py"},
			{"04:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "75fm.py"}, {"11:15", "75sm.py"}, {"11:30", "75parking.py"}, {"11:45", "75sm.py"},
			{"12:00", "75parking.py"}, {"12:15", "75sm.py"}, {"12:30", "75fm.py"}, {"12:45", "75sm.py"},
			{"13:00", "75parking.py"}, {"13:15", "75sm.py"}, {"13:30", "75fm.py"}, {"13:45", "75sm.py"},
			{"14:00", "75parking.py"}, {"14:15", "75sm.py"}, {"14:30", "75ad.py"}, {"14:45", "75sm.py"},
			{"15:00", "75parking.py"}, {"15:15", "75sm.py"}, {"15:30", "75ad.py"}, {"15:45", "75sm.py"},
		},
		models.BlockPMFire: {
			{"16:10", "85fireparking.py"}, {"18:00", "85fireparking.py"}, {"18:50", "85adfire.py"},
			{"19:00", "85fireparking.py"}, {"19:50", "85adfire.py"},
			{"20:00", "85fireparking.py"}, {"20:50", "85adfire.py"},
			{"21:00", "85fireparking.py"}, {"21:50", "85adfire.py"},
			{"22:00", "85fireparking.py"}, {"22:50", "85adfire.py"},
			{"23:00", "85fireparking.py"},
		},
	},
	"sunday": {
		models.BlockAM: {
			{"00:00", "65parking.py"}, {"00:15", "65sm.py"}, {"00:30", "65sm.py"}, {"00:45", "65sm.py"},
			{"01:00", "65parking.py"}, {"01:15", "65sm.py"}, {"01:30", "65sm.py"}, {"01:45", "65sm.py"},
			{"02:00", "pause.py"},
		},
		models.BlockDay: {
			{"11:00", "70fm.py"}, {"11:15", "70sm.py"}, {"11:30", "70parking.py"}, {"11:45", "70sm.py"},
			{"12:00", "70fm.py"}, {"12:15", "70sm.py"}, {"12:30", "70fm.py"}, {"12:45", "70sm.py"},
			{"13:00", "70parking.py"}, {"13:15", "75sm.py"}, {"13:30", "75fm.py"}, {"13:45", "75sm.py"},
			{"14:00", "75parking.py"}, {"14:15", "80sm.py"}, {"14:30", "80fm.py"}, {"14:45", "80sm.py"},
			{"15:00", "85parking.py"}, {"15:15", "85ad.py"}, {"15:30", "85fm.py"}, {"15:45", "85fm.py"},
			{"16:00", "85parking.py"}, {"16:15", "85sm.py"}, {"16:30", "85sm.py"}, {"16:45", "85ad.py"},
			{"17:00", "85parking.py"}, {"17:15", "85sm.py"}, {"17:30", "85sm.py"},
		},
		models.BlockPMFire: {
			{"17:45", "85fireparking.py"}, {"18:00", "85fireparking.py"}, {"18:50", "80adfire.py"},
			{"19:00", "85fireparking.py"}, {"19:50", "80adfire.py"},
			{"20:00", "75fireparking.py"}, {"20:50", "75adfire.py"},
			{"21:00", "75fireparking.py"}, {"21:50", "75adfire.py"},
			{"22:00", "75fireparking.py"}, {"22:50", "75adfire.py"},
			{"23:00", "75fireparking.py"},
		},
	},
}

// DefaultScheduleSlots flattens the factory schedule into insertable rows.
func DefaultScheduleSlots() []models.ScheduleSlotCreate {
	var out []models.ScheduleSlotCreate
	for _, day := range weekdays {
		blocks := defaultWeek[day]
		for _, bt := range models.BlockTypes {
			for _, s := range blocks[bt] {
				out = append(out, models.ScheduleSlotCreate{
					DayOfWeek:   day,
					Time:        s.time,
					ProgramName: s.program,
					BlockType:   bt,
					IsActive:    true,
				})
			}
		}
	}
	return out
}

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// programCatalog lists every distinct script the factory schedule and the
// fire show reference, parsed into catalog entries.
func programCatalog() []models.Program {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, blocks := range defaultWeek {
		for _, slots := range blocks {
			for _, s := range slots {
				add(s.program)
			}
		}
	}
	add(fireShowProgram)
	sort.Strings(names)

	out := make([]models.Program, 0, len(names))
	for _, name := range names {
		out = append(out, models.Program{
			Name:         name,
			Volume:       extractVolume(name),
			ProgramType:  extractType(name),
			ScriptExists: true,
		})
	}
	return out
}

// extractVolume parses the leading digits of a script name, defaulting to 75.
func extractVolume(name string) int {
	name = strings.TrimSuffix(name, ".py")
	v := 0
	found := false
	for _, c := range name {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		found = true
	}
	if !found {
		return 75
	}
	return v
}

// extractType parses the trailing type code of a script name, defaulting to
// "fm".
func extractType(name string) string {
	name = strings.TrimSuffix(name, ".py")
	for i, c := range name {
		if c < '0' || c > '9' {
			return name[i:]
		}
	}
	return "fm"
}
