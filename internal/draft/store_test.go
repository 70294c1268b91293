package draft

import (
	"testing"
	"time"

	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", s, err)
	}
	return parsed
}

func TestNewStoreSnapsNow(t *testing.T) {
	now := mustTime(t, "2025-03-01 09:10:00")
	s := NewStore(now)

	sel := s.Selection()
	if sel.Period != schedule.PeriodMorning || sel.TimeOfDay != "09:00" {
		t.Errorf("initial selection = %v, want morning 09:00", sel)
	}
	if got := s.Draft().StartDate; !got.Equal(mustTime(t, "2025-03-01 09:00:00")) {
		t.Errorf("initial start date = %v", got)
	}
	if s.Draft().FrequencyType != schedule.FrequencyOnce {
		t.Errorf("initial frequency = %q, want ONCE", s.Draft().FrequencyType)
	}
}

func TestNewStoreForTaskWithRecurrenceLocks(t *testing.T) {
	start := mustTime(t, "2025-02-10 14:30:00")
	original := &task.Task{
		ID:          7,
		Name:        "A",
		Description: "B",
		Recurring: &task.Recurring{
			ID:            3,
			StartDate:     start,
			FrequencyType: schedule.FrequencyDaily,
		},
	}

	now := mustTime(t, "2025-03-01 09:00:00")
	s := NewStoreForTask(original, now)

	if !s.IsEdit() || !s.Locked() {
		t.Fatalf("expected locked edit store, got edit=%v locked=%v", s.IsEdit(), s.Locked())
	}
	if got := s.Draft().StartDate; !got.Equal(start) {
		t.Errorf("start date = %v, want %v", got, start)
	}
	if s.Draft().FrequencyType != schedule.FrequencyDaily {
		t.Errorf("frequency = %q, want DAILY", s.Draft().FrequencyType)
	}
	if sel := s.Selection(); sel.Period != schedule.PeriodAfternoon || sel.TimeOfDay != "14:30" {
		t.Errorf("selection = %v, want afternoon 14:30", sel)
	}

	// Locked stores ignore every reschedule path.
	s.SetDate(mustTime(t, "2025-06-01 00:00:00"))
	s.SetTimeOfDay("09:00")
	s.SetPeriod(schedule.PeriodMorning)
	s.ToggleCalendar()
	if got := s.Draft().StartDate; !got.Equal(start) {
		t.Errorf("locked start date moved to %v", got)
	}
	if s.ActivePicker() != PickerNone {
		t.Errorf("locked store opened a picker")
	}
}

func TestNewStoreForTaskWithoutRecurrence(t *testing.T) {
	original := &task.Task{ID: 7, Name: "A", Description: "B"}
	now := mustTime(t, "2025-03-01 09:00:00")
	s := NewStoreForTask(original, now)

	if !s.IsEdit() || s.Locked() {
		t.Fatalf("expected unlocked edit store, got edit=%v locked=%v", s.IsEdit(), s.Locked())
	}
	if s.Draft().Name != "A" || s.Draft().Description != "B" {
		t.Errorf("draft not hydrated: %+v", s.Draft())
	}
}

func TestPickersAreMutuallyExclusive(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))

	s.ToggleCalendar()
	if s.ActivePicker() != PickerCalendar {
		t.Fatalf("calendar did not open")
	}

	s.ToggleTime()
	if s.ActivePicker() != PickerTime {
		t.Fatalf("time picker did not open")
	}

	s.ToggleTime()
	if s.ActivePicker() != PickerNone {
		t.Fatalf("second toggle did not close the picker")
	}
}

func TestSetDateKeepsTimeHalf(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))
	s.ToggleCalendar()

	s.SetDate(mustTime(t, "2025-04-20 23:59:00"))

	got := s.Draft().StartDate
	if got.Year() != 2025 || got.Month() != time.April || got.Day() != 20 {
		t.Errorf("calendar half wrong: %v", got)
	}
	if got.Hour() != 9 || got.Minute() != 0 {
		t.Errorf("time half changed: %v", got)
	}
	if s.ActivePicker() != PickerNone {
		t.Errorf("calendar picker stayed open after picking a date")
	}
}

func TestSetTimeOfDayKeepsCalendarHalf(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))
	s.ToggleTime()

	s.SetTimeOfDay("11:30")

	got := s.Draft().StartDate
	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("calendar half changed: %v", got)
	}
	if got.Hour() != 11 || got.Minute() != 30 {
		t.Errorf("time half wrong: %v", got)
	}
	if s.ActivePicker() != PickerNone {
		t.Errorf("time picker stayed open after picking a slot")
	}
}

func TestSetPeriodSubstitutesFirstSlot(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))
	s.ToggleTime()

	s.SetPeriod(schedule.PeriodAfternoon)

	if sel := s.Selection(); sel.TimeOfDay != "12:00" {
		t.Errorf("selection = %v, want first afternoon slot", sel)
	}
	if got := s.Draft().StartDate.Hour(); got != 12 {
		t.Errorf("start date hour = %d, want 12", got)
	}
	// Only picking a concrete slot closes the time picker.
	if s.ActivePicker() != PickerTime {
		t.Errorf("period switch closed the time picker")
	}
}

func TestStageFrequency(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))

	s.StageFrequency(schedule.LabelWeekly)

	if s.StagedLabel() != schedule.LabelWeekly {
		t.Errorf("staged label = %q", s.StagedLabel())
	}
	if !s.IsWeekly() {
		t.Errorf("IsWeekly = false after staging weekly")
	}
	if s.Draft().FrequencyType != schedule.FrequencyWeekly {
		t.Errorf("frequency = %q, want WEEKLY", s.Draft().FrequencyType)
	}
}

func TestStageFrequencyUnknownLabel(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))
	s.StageFrequency("격주 반복")
	if s.Draft().FrequencyType != schedule.FrequencyOnce {
		t.Errorf("unknown label canonicalized to %q, want ONCE", s.Draft().FrequencyType)
	}
}

func TestToggleWeekDay(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))

	s.ToggleWeekDay(1)
	s.ToggleWeekDay(3)
	s.ToggleWeekDay(1)

	days := s.Draft().WeekDays
	if len(days) != 1 || days[0] != 3 {
		t.Errorf("week days = %v, want [3]", days)
	}
}

func TestDraftReturnsCopy(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))
	s.ToggleWeekDay(2)

	d := s.Draft()
	d.WeekDays[0] = 6

	if got := s.Draft().WeekDays[0]; got != 2 {
		t.Errorf("mutating the returned draft leaked into the store: %d", got)
	}
}

func TestLabels(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:10:00"))

	if got := s.DateLabel(); got != "2025년 03월 01일" {
		t.Errorf("DateLabel = %q", got)
	}
	if got := s.TimeLabel(); got != "오전 09:00" {
		t.Errorf("TimeLabel = %q", got)
	}
}

func TestBeginSubmitIsCheckThenSet(t *testing.T) {
	s := NewStore(mustTime(t, "2025-03-01 09:00:00"))

	if !s.BeginSubmit() {
		t.Fatal("first BeginSubmit should succeed")
	}
	if s.BeginSubmit() {
		t.Fatal("second BeginSubmit should fail while pending")
	}
	s.EndSubmit()
	if !s.BeginSubmit() {
		t.Fatal("BeginSubmit should succeed again after EndSubmit")
	}
}
