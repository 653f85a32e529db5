package tui

import (
	"fmt"
	"strings"

	"soundctl/internal/console"
	"soundctl/internal/models"
)

// programRow is one selectable line on the Programs tab: either a catalog
// entry or a favorite.
type programRow struct {
	program  *models.Program
	favorite *models.Favorite
}

// programRows flattens the filtered catalog groups plus the favorites into
// the cursor's row space, in display order.
func (m Model) programRows() []programRow {
	var rows []programRow
	for _, group := range m.eng.Catalog.Grouped() {
		for i := range group.Items {
			rows = append(rows, programRow{program: &group.Items[i]})
		}
	}
	favorites := m.eng.Catalog.Favorites()
	for i := range favorites {
		rows = append(rows, programRow{favorite: &favorites[i]})
	}
	return rows
}

func (m Model) viewPrograms() string {
	var b strings.Builder
	b.WriteString(m.filterBar())
	b.WriteString("\n")

	row := 0
	for _, group := range m.eng.Catalog.Grouped() {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render(group.Label))
		b.WriteString("\n")
		for _, p := range group.Items {
			cursor := "  "
			if row == m.listCursor {
				cursor = selectedRowStyle.Render("> ")
			}
			exists := glyphOK
			if !p.ScriptExists {
				exists = glyphErr
			}
			label := fmt.Sprintf("%-28s %s", console.ProgramDisplayName(p.Name), dimStyle.Render(p.Name))
			if row == m.listCursor {
				label = selectedRowStyle.Render(label)
			}
			line := cursor + exists + " " + label
			if m.eng.Catalog.JustLaunched(p.Name) {
				line += "  " + okStyle.Render("launched")
			}
			b.WriteString(line)
			b.WriteString("\n")
			row++
		}
	}

	favorites := m.eng.Catalog.Favorites()
	if len(favorites) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Favorites"))
		b.WriteString("\n")
		for _, fav := range favorites {
			cursor := "  "
			if row == m.listCursor {
				cursor = selectedRowStyle.Render("> ")
			}
			label := fav.Name
			if row == m.listCursor {
				label = selectedRowStyle.Render(label)
			}
			fmt.Fprintf(&b, "%s♪ %s\n", cursor, label)
			row++
		}
	}

	b.WriteString("\n")
	b.WriteString(m.volumeGuide())
	return b.String()
}

// volumeGuide is the static legend for picking a sensible volume level.
var volumeGuideRows = []struct {
	level int
	label string
}{
	{50, "Quiet - Late night"},
	{65, "Low - Background"},
	{75, "Medium - Default"},
	{85, "High - Announcements"},
}

func (m Model) volumeGuide() string {
	lines := []string{headingStyle.Render("Volume Guide")}
	for _, g := range volumeGuideRows {
		lines = append(lines, fmt.Sprintf("  %3d%%  %s", g.level, dimStyle.Render(g.label)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) filterBar() string {
	active := m.eng.Catalog.Filter()
	render := func(code, label string) string {
		if code == active {
			return activeTabStyle.Render(label)
		}
		return inactiveTabStyle.Render(label)
	}

	parts := []string{render(console.FilterAll, "All")}
	for _, t := range m.eng.Catalog.Types() {
		parts = append(parts, render(t, console.ProgramTypeName(t)))
	}
	return strings.Join(parts, " ")
}
