package tui

import (
	"fmt"
	"strings"
	"time"

	"coworkers/internal/draft"
	"coworkers/internal/schedule"
)

var weekdayNames = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// View renders the editor form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "할 일 만들기"
	if m.IsEdit() {
		title = "할 일 수정하기"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderTextField(FieldName, "제목", m.nameInput.View()))
	if m.showErrors && m.store.Validate().NameMissing {
		b.WriteString(m.styles.Error.Render("  제목을 입력해주세요."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderTextField(FieldDescription, "설명", m.descInput.View()))
	if m.showErrors && m.store.Validate().DescriptionMissing {
		b.WriteString(m.styles.Error.Render("  설명을 입력해주세요."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderScheduleFields())
	b.WriteString(m.renderFrequencyField())

	if m.store.IsWeekly() {
		b.WriteString(m.renderWeekDaysField())
	}

	switch m.store.ActivePicker() {
	case draft.PickerCalendar:
		b.WriteString("\n")
		b.WriteString(m.styles.Popover.Render(m.renderCalendar()))
		b.WriteString("\n")
	case draft.PickerTime:
		b.WriteString("\n")
		b.WriteString(m.styles.Popover.Render(m.renderTimePicker()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSubmit())
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab 이동 · enter 선택 · esc 닫기"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTextField(f Field, label, input string) string {
	return m.fieldLabel(f, label) + " " + input + "\n"
}

func (m Model) renderScheduleFields() string {
	var b strings.Builder

	dateValue := m.styles.Value.Render(m.store.DateLabel())
	timeValue := m.styles.Value.Render(m.store.TimeLabel())
	if m.store.Locked() {
		dateValue = m.styles.Muted.Render(m.store.DateLabel() + " (반복 설정은 변경할 수 없습니다)")
		timeValue = m.styles.Muted.Render(m.store.TimeLabel())
	}

	b.WriteString(m.fieldLabel(FieldDate, "날짜"))
	b.WriteString(" ")
	b.WriteString(dateValue)
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(FieldTime, "시간"))
	b.WriteString(" ")
	b.WriteString(timeValue)
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFrequencyField() string {
	var parts []string
	for i, label := range schedule.FrequencyLabels() {
		s := m.styles.Muted
		if label == m.store.StagedLabel() {
			s = m.styles.Selected
		}
		text := label
		if m.focus == FieldFrequency && i == m.freqIndex {
			text = "[" + text + "]"
		}
		parts = append(parts, s.Render(text))
	}
	return m.fieldLabel(FieldFrequency, "반복") + " " + strings.Join(parts, "  ") + "\n"
}

func (m Model) renderWeekDaysField() string {
	days := m.store.Draft().WeekDays
	var parts []string
	for i, name := range weekdayNames {
		s := m.styles.Muted
		if schedule.ContainsDay(days, i) {
			s = m.styles.Selected
		}
		if m.focus == FieldWeekDays && i == m.dayCursor {
			s = s.Reverse(true)
		}
		parts = append(parts, s.Render(name))
	}
	return m.fieldLabel(FieldWeekDays, "요일") + " " + strings.Join(parts, " ") + "\n"
}

// renderCalendar draws the month containing the cursor as a week grid.
func (m Model) renderCalendar() string {
	cursor := m.calendarCursor
	selected := m.store.Draft().StartDate

	var b strings.Builder
	fmt.Fprintf(&b, "%d년 %02d월\n", cursor.Year(), int(cursor.Month()))
	b.WriteString(m.styles.Muted.Render(strings.Join(weekdayNames[:], " ")))
	b.WriteString("\n")

	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	day := weekStart(first)

	for week := 0; week < 6; week++ {
		var cells []string
		for i := 0; i < 7; i++ {
			cell := fmt.Sprintf("%2d", day.Day())
			style := m.styles.Value
			if day.Month() != cursor.Month() {
				style = m.styles.Muted
			}
			if sameDay(day, selected) {
				style = m.styles.Selected
			}
			if sameDay(day, cursor) {
				style = m.styles.Cursor
			}
			cells = append(cells, style.Render(cell))
			day = day.AddDate(0, 0, 1)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
		if day.Month() != cursor.Month() {
			break
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderTimePicker draws the period toggle and a window of slots around
// the cursor.
func (m Model) renderTimePicker() string {
	sel := m.store.Selection()
	slots := schedule.Slots(sel.Period)

	var b strings.Builder
	for _, p := range []schedule.Period{schedule.PeriodMorning, schedule.PeriodAfternoon} {
		s := m.styles.Muted
		if p == sel.Period {
			s = m.styles.Selected
		}
		b.WriteString(s.Render(string(p)))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	const window = 7
	start := m.slotCursor - window/2
	if start < 0 {
		start = 0
	}
	if start > len(slots)-window {
		start = len(slots) - window
	}
	for i := start; i < start+window && i < len(slots); i++ {
		style := m.styles.Value
		if slots[i] == sel.TimeOfDay {
			style = m.styles.Selected
		}
		if i == m.slotCursor {
			style = m.styles.Cursor
		}
		b.WriteString(style.Render(slots[i]))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderSubmit() string {
	label := "만들기"
	if m.IsEdit() {
		label = "수정하기"
	}
	if m.store.Pending() {
		return m.styles.Muted.Render("저장 중...")
	}
	style := m.styles.Button
	if m.focus != FieldSubmit {
		style = m.styles.Label.Padding(0, 2)
	}
	return style.Render(label)
}

func (m Model) renderStatus() string {
	switch m.statusLevel {
	case statusError:
		return m.styles.Error.Render(m.statusMsg)
	case statusSuccess:
		return m.styles.Success.Render(m.statusMsg)
	default:
		return m.styles.Info.Render(m.statusMsg)
	}
}

func (m Model) fieldLabel(f Field, label string) string {
	marker := "  "
	style := m.styles.Label
	if m.focus == f {
		marker = "> "
		style = m.styles.Focused
	}
	return style.Render(marker + label)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
