package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"coworkers/internal/draft"
	"coworkers/internal/schedule"
	"coworkers/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.SubmitResultMsg:
		m.statusMsg, m.statusLevel = m.notify.take()
		m.showErrors = msg.Outcome == draft.OutcomeBlocked
		if m.overlay.closed {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.store.Discard()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.store.ActivePicker() {
	case draft.PickerCalendar:
		return m.handleCalendarKey(msg)
	case draft.PickerTime:
		return m.handleTimeKey(msg)
	}

	return m.handleFormKey(msg)
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.store.ClosePickers()
	case "left":
		m.calendarCursor = m.calendarCursor.AddDate(0, 0, -1)
	case "right":
		m.calendarCursor = m.calendarCursor.AddDate(0, 0, 1)
	case "up":
		m.calendarCursor = m.calendarCursor.AddDate(0, 0, -7)
	case "down":
		m.calendarCursor = m.calendarCursor.AddDate(0, 0, 7)
	case "enter":
		m.store.SetDate(m.calendarCursor)
	}
	return m, nil
}

func (m Model) handleTimeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.store.Selection()
	slots := schedule.Slots(sel.Period)

	switch msg.String() {
	case "esc":
		m.store.ClosePickers()
	case "left", "right":
		next := schedule.PeriodAfternoon
		if sel.Period == schedule.PeriodAfternoon {
			next = schedule.PeriodMorning
		}
		m.store.SetPeriod(next)
		m.slotCursor = m.slotIndex()
	case "up":
		if m.slotCursor > 0 {
			m.slotCursor--
		}
	case "down":
		if m.slotCursor < len(slots)-1 {
			m.slotCursor++
		}
	case "enter":
		m.store.SetTimeOfDay(slots[m.slotCursor])
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.store.Discard()
		m.quitting = true
		return m, tea.Quit

	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.focus = m.nextField(m.focus)
		} else {
			m.focus = m.prevField(m.focus)
		}
		m.syncInputFocus()
		return m, nil

	case "up", "down":
		// Arrow navigation skips the text inputs' own handling only for
		// non-text fields; inside inputs the arrows move focus too.
		if msg.String() == "down" {
			m.focus = m.nextField(m.focus)
		} else {
			m.focus = m.prevField(m.focus)
		}
		m.syncInputFocus()
		return m, nil
	}

	switch m.focus {
	case FieldName, FieldDescription:
		return m.handleTextKey(msg)
	case FieldDate:
		if msg.String() == "enter" {
			m.calendarCursor = m.store.Draft().StartDate
			m.store.ToggleCalendar()
		}
	case FieldTime:
		if msg.String() == "enter" {
			m.store.ToggleTime()
			m.slotCursor = m.slotIndex()
		}
	case FieldFrequency:
		m.handleFrequencyKey(msg)
	case FieldWeekDays:
		m.handleWeekDaysKey(msg)
	case FieldSubmit:
		if msg.String() == "enter" && !m.store.Pending() {
			return m, commands.SubmitTask(m.ctl)
		}
	}

	return m, nil
}

func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FieldName {
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.store.SetName(m.nameInput.Value())
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
		m.store.SetDescription(m.descInput.Value())
	}
	return m, cmd
}

func (m *Model) handleFrequencyKey(msg tea.KeyMsg) {
	labels := schedule.FrequencyLabels()
	switch msg.String() {
	case "left":
		if m.freqIndex > 0 {
			m.freqIndex--
		}
	case "right":
		if m.freqIndex < len(labels)-1 {
			m.freqIndex++
		}
	default:
		return
	}
	m.store.StageFrequency(labels[m.freqIndex])
}

func (m *Model) handleWeekDaysKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left":
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case "right":
		if m.dayCursor < 6 {
			m.dayCursor++
		}
	case " ", "enter":
		m.store.ToggleWeekDay(m.dayCursor)
	}
}

// nextField returns the next focusable field, skipping fields the current
// draft state disables.
func (m Model) nextField(f Field) Field {
	for {
		if f == FieldSubmit {
			f = FieldName
		} else {
			f++
		}
		if m.focusable(f) {
			return f
		}
	}
}

func (m Model) prevField(f Field) Field {
	for {
		if f == FieldName {
			f = FieldSubmit
		} else {
			f--
		}
		if m.focusable(f) {
			return f
		}
	}
}

func (m Model) focusable(f Field) bool {
	switch f {
	case FieldDate, FieldTime:
		return !m.store.Locked()
	case FieldWeekDays:
		return m.store.IsWeekly()
	default:
		return true
	}
}

func (m *Model) syncInputFocus() {
	m.nameInput.Blur()
	m.descInput.Blur()
	switch m.focus {
	case FieldName:
		m.nameInput.Focus()
	case FieldDescription:
		m.descInput.Focus()
	}
}

// slotIndex finds the catalog index of the current selection.
func (m Model) slotIndex() int {
	sel := m.store.Selection()
	for i, slot := range schedule.Slots(sel.Period) {
		if slot == sel.TimeOfDay {
			return i
		}
	}
	return 0
}

// weekStart returns the Sunday opening the calendar row containing t.
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}
