package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soundctl/internal/console"
	"soundctl/internal/models"
)

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalPIN:
		return m.updatePINModal(msg)
	case modalConfirm:
		return m.updateConfirmModal(msg)
	case modalSlot:
		return m.updateSlotModal(msg)
	}
	return m, nil
}

func (m Model) updatePINModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.modal = modalNone
		return m, nil
	case "enter":
		if m.eng.Gate.Login(m.pin.Value()) {
			m.modal = modalNone
			return m, m.setFlash("Signed in.", false)
		}
		// wrong PIN: clear and flash inside the modal
		m.pinErr = true
		m.pin.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.pin, cmd = m.pin.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n", "ctrl+c":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right":
		m.confirm.focusOK = !m.confirm.focusOK
		return m, nil
	case "y":
		m.modal = modalNone
		return m, m.confirm.action
	case "enter":
		m.modal = modalNone
		if m.confirm.focusOK {
			return m, m.confirm.action
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateSlotModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.modal = modalNone
		return m, nil

	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % slotFormFields)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + slotFormFields - 1) % slotFormFields)
		return m, nil

	case "enter":
		return m.submitSlotForm()
	}

	switch m.form.focus {
	case 2: // block type
		switch msg.String() {
		case "left":
			m.form.blockIdx = (m.form.blockIdx + len(models.BlockTypes) - 1) % len(models.BlockTypes)
		case "right", " ":
			m.form.blockIdx = (m.form.blockIdx + 1) % len(models.BlockTypes)
		}
		return m, nil
	case 3: // active flag
		if msg.String() == " " {
			m.form.active = !m.form.active
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.form.focus == 0 {
		m.form.time, cmd = m.form.time.Update(msg)
	} else {
		m.form.program, cmd = m.form.program.Update(msg)
	}
	return m, cmd
}

func (f *slotForm) setFocus(i int) {
	f.focus = i
	f.time.Blur()
	f.program.Blur()
	switch i {
	case 0:
		f.time.Focus()
	case 1:
		f.program.Focus()
	}
}

func (m Model) submitSlotForm() (tea.Model, tea.Cmd) {
	cueTime := strings.TrimSpace(m.form.time.Value())
	program := strings.TrimSpace(m.form.program.Value())
	if !validCueTime(cueTime) {
		m.form.errText = "time must be HH:MM"
		return m, nil
	}
	if program == "" {
		m.form.errText = "program name required"
		return m, nil
	}

	blockType := models.BlockTypes[m.form.blockIdx]
	active := m.form.active
	m.modal = modalNone

	if m.form.editing {
		slotID := m.form.slotID
		upd := models.ScheduleSlotUpdate{
			Time:        &cueTime,
			ProgramName: &program,
			BlockType:   &blockType,
			IsActive:    &active,
		}
		return m, m.dispatch("update cue", func(ctx context.Context) error {
			return m.eng.Schedule.UpdateSlot(ctx, slotID, upd)
		})
	}
	create := models.ScheduleSlotCreate{
		Time:        cueTime,
		ProgramName: program,
		BlockType:   blockType,
		IsActive:    active,
	}
	return m, m.dispatch("add cue", func(ctx context.Context) error {
		return m.eng.Schedule.CreateSlot(ctx, create)
	})
}

// validCueTime accepts 24-hour HH:MM.
func validCueTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour < 24 && minute < 60
}

func (m Model) renderModal() string {
	switch m.modal {
	case modalPIN:
		return m.renderPINModal()
	case modalConfirm:
		return m.renderConfirmModal()
	case modalSlot:
		return m.renderSlotModal()
	}
	return ""
}

func (m Model) renderPINModal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter PIN"))
	b.WriteString("\n\n")
	b.WriteString(m.pin.View())
	if m.pinErr {
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render("Wrong PIN, try again."))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter: sign in   esc: cancel"))
	return modalStyle.Render(b.String())
}

func (m Model) renderConfirmModal() string {
	okLabel := "[ Yes ]"
	cancelLabel := "[ No ]"
	if m.confirm.focusOK {
		okLabel = selectedRowStyle.Render(okLabel)
	} else {
		cancelLabel = selectedRowStyle.Render(cancelLabel)
	}
	body := strings.Join([]string{
		titleStyle.Render(m.confirm.title),
		"",
		m.confirm.body,
		"",
		okLabel + "  " + cancelLabel,
		"",
		dimStyle.Render("y: confirm   n/esc: cancel   tab: focus"),
	}, "\n")
	return modalStyle.Render(body)
}

func (m Model) renderSlotModal() string {
	title := "Add cue"
	if m.form.editing {
		title = "Edit cue"
	}

	label := func(i int, text string) string {
		if m.form.focus == i {
			return selectedRowStyle.Render("> " + text)
		}
		return "  " + text
	}
	activeMark := "off"
	if m.form.active {
		activeMark = "on"
	}

	lines := []string{
		titleStyle.Render(title),
		"",
		label(0, "Time    ") + m.form.time.View(),
		label(1, "Program ") + m.form.program.View(),
		label(2, "Block   ") + console.BlockTypeLabel(models.BlockTypes[m.form.blockIdx]) +
			dimStyle.Render("  (←/→)"),
		label(3, "Active  ") + activeMark + dimStyle.Render("  (space)"),
	}
	if m.form.errText != "" {
		lines = append(lines, "", errStyle.Render(m.form.errText))
	}
	lines = append(lines, "", dimStyle.Render("tab: next field   enter: save   esc: cancel"))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
