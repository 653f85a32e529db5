package tui

import (
	"fmt"
	"strings"

	"soundctl/internal/console"
	"soundctl/internal/models"
)

// daySlots flattens the cursor day's blocks in canonical block order; the
// slot cursor indexes into this flattened list.
func (m Model) daySlots() []models.ScheduleSlot {
	var slots []models.ScheduleSlot
	for _, block := range m.eng.Schedule.Grouped() {
		slots = append(slots, block.Slots...)
	}
	return slots
}

func (m Model) selectedSlot() (models.ScheduleSlot, bool) {
	slots := m.daySlots()
	if len(slots) == 0 {
		return models.ScheduleSlot{}, false
	}
	return slots[clamp(m.slotCursor, 0, len(slots)-1)], true
}

func (m Model) viewSchedule() string {
	var b strings.Builder
	day := m.eng.Schedule.Day()
	fmt.Fprintf(&b, "%s %s %s\n",
		dimStyle.Render("←"),
		titleStyle.Render(capitalize(day)),
		dimStyle.Render("→"))

	row := 0
	for _, block := range m.eng.Schedule.Grouped() {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render(block.Label))
		b.WriteString("\n")
		if len(block.Slots) == 0 {
			b.WriteString(dimStyle.Render("  (no cues)"))
			b.WriteString("\n")
			continue
		}
		for _, slot := range block.Slots {
			cursor := "  "
			if row == m.slotCursor {
				cursor = selectedRowStyle.Render("> ")
			}
			active := glyphOK
			if !slot.IsActive {
				active = dimStyle.Render("○")
			}
			label := fmt.Sprintf("%s  %s", slot.Time, console.ProgramDisplayName(slot.ProgramName))
			if row == m.slotCursor {
				label = selectedRowStyle.Render(label)
			}
			b.WriteString(cursor + active + " " + label)
			b.WriteString("\n")
			row++
		}
	}
	return b.String()
}
