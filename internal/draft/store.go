// Package draft owns the in-progress editable copy of a task and the
// submission lifecycle around it. One Store belongs to exactly one open
// editor and is discarded when that editor closes.
package draft

import (
	"fmt"
	"time"

	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

// Picker identifies which popover of the editor is open.
// At most one can be open at a time.
type Picker int

const (
	PickerNone Picker = iota
	PickerCalendar
	PickerTime
)

// Draft is the mutable working copy of a task.
type Draft struct {
	Name          string
	Description   string
	StartDate     time.Time
	FrequencyType schedule.Frequency
	WeekDays      []int // meaningful only for FrequencyWeekly
}

// Store holds one Draft plus the transient picker state for an editor
// session. All mutations are synchronous; nothing here is shared across
// sessions.
type Store struct {
	draft       Draft
	selection   schedule.TimeSelection
	activePicker Picker
	stagedLabel string

	original *task.Task // non-nil in edit flow
	locked   bool       // existing recurrence: date/time frozen

	pending   bool
	discarded bool
}

// NewStore creates a fresh draft for the create flow. The time picker is
// initialized by snapping now to the catalog.
func NewStore(now time.Time) *Store {
	sel := schedule.Nearest(now)
	return &Store{
		draft: Draft{
			StartDate:     schedule.Compose(now, sel),
			FrequencyType: schedule.FrequencyOnce,
		},
		selection: sel,
	}
}

// NewStoreForTask hydrates a draft from an existing task for the edit flow.
// If the task already has a recurrence, its start date and frequency seed
// the draft and the date/time pickers are locked.
func NewStoreForTask(t *task.Task, now time.Time) *Store {
	s := NewStore(now)
	s.original = t
	s.draft.Name = t.Name
	s.draft.Description = t.Description

	if rec := t.Recurring; rec != nil {
		s.locked = true
		s.draft.StartDate = rec.StartDate
		s.draft.FrequencyType = rec.FrequencyType
		s.selection = schedule.Nearest(rec.StartDate)
	}
	return s
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() Draft {
	d := s.draft
	d.WeekDays = append([]int(nil), s.draft.WeekDays...)
	return d
}

// Selection returns the current time picker selection.
func (s *Store) Selection() schedule.TimeSelection {
	return s.selection
}

// Original returns the task being edited, or nil in the create flow.
func (s *Store) Original() *task.Task {
	return s.original
}

// IsEdit returns true if the draft was hydrated from an existing task.
func (s *Store) IsEdit() bool {
	return s.original != nil
}

// Locked returns true if date/time editing is disabled because the task
// already has a recurrence.
func (s *Store) Locked() bool {
	return s.locked
}

// SetName updates the task name. Validation never blocks keystrokes.
func (s *Store) SetName(name string) {
	s.draft.Name = name
}

// SetDescription updates the task description.
func (s *Store) SetDescription(desc string) {
	s.draft.Description = desc
}

// ActivePicker returns which popover is currently open.
func (s *Store) ActivePicker() Picker {
	return s.activePicker
}

// ToggleCalendar opens the calendar picker, closing the time picker.
// A second toggle closes it. No-op while locked.
func (s *Store) ToggleCalendar() {
	if s.locked {
		return
	}
	if s.activePicker == PickerCalendar {
		s.activePicker = PickerNone
	} else {
		s.activePicker = PickerCalendar
	}
}

// ToggleTime opens the time picker, closing the calendar picker.
// A second toggle closes it. No-op while locked.
func (s *Store) ToggleTime() {
	if s.locked {
		return
	}
	if s.activePicker == PickerTime {
		s.activePicker = PickerNone
	} else {
		s.activePicker = PickerTime
	}
}

// ClosePickers closes whichever popover is open.
func (s *Store) ClosePickers() {
	s.activePicker = PickerNone
}

// SetDate recomposes the start date from a newly picked calendar date and
// the current time selection, then closes the calendar picker.
// No-op while locked.
func (s *Store) SetDate(date time.Time) {
	if s.locked {
		return
	}
	s.draft.StartDate = schedule.Compose(date, s.selection)
	s.activePicker = PickerNone
}

// SetPeriod switches the selection between morning and afternoon, keeping
// the time of day when the new period's catalog has it. The time picker
// stays open so the user can still pick a slot. No-op while locked.
func (s *Store) SetPeriod(p schedule.Period) {
	if s.locked {
		return
	}
	s.selection = s.selection.WithPeriod(p)
	s.draft.StartDate = schedule.Compose(s.draft.StartDate, s.selection)
}

// SetTimeOfDay picks a slot from the current period's catalog, recomposes
// the start date and closes the time picker. No-op while locked.
func (s *Store) SetTimeOfDay(timeOfDay string) {
	if s.locked {
		return
	}
	s.selection = s.selection.WithTimeOfDay(timeOfDay)
	s.draft.StartDate = schedule.Compose(s.draft.StartDate, s.selection)
	s.activePicker = PickerNone
}

// StageFrequency records the picked frequency label and canonicalizes it
// onto the draft.
func (s *Store) StageFrequency(label string) {
	s.stagedLabel = label
	s.draft.FrequencyType = schedule.ParseLabel(label)
}

// StagedLabel returns the frequency label as picked, before canonicalization.
func (s *Store) StagedLabel() string {
	return s.stagedLabel
}

// IsWeekly returns true if the staged frequency repeats weekly.
func (s *Store) IsWeekly() bool {
	return s.draft.FrequencyType == schedule.FrequencyWeekly
}

// ToggleWeekDay flips one weekday in the weekly recurrence set.
func (s *Store) ToggleWeekDay(idx int) {
	s.draft.WeekDays = schedule.ToggleDay(s.draft.WeekDays, idx)
}

// DateLabel renders the picked date the way the date field shows it.
func (s *Store) DateLabel() string {
	d := s.draft.StartDate
	return fmt.Sprintf("%04d년 %02d월 %02d일", d.Year(), int(d.Month()), d.Day())
}

// TimeLabel renders the picked time the way the time field shows it.
func (s *Store) TimeLabel() string {
	return fmt.Sprintf("%s %s", s.selection.Period, s.selection.TimeOfDay)
}

// BeginSubmit sets the pending flag. It returns false when a submission is
// already in flight; the check and the set happen in one synchronous step.
func (s *Store) BeginSubmit() bool {
	if s.pending {
		return false
	}
	s.pending = true
	return true
}

// EndSubmit clears the pending flag regardless of outcome.
func (s *Store) EndSubmit() {
	s.pending = false
}

// Pending returns true while a submission is in flight.
func (s *Store) Pending() bool {
	return s.pending
}

// Discard marks the store as released. A submission completing after this
// must not drive any editor side effects.
func (s *Store) Discard() {
	s.discarded = true
}

// Discarded returns true once the owning editor has let go of the store.
func (s *Store) Discarded() bool {
	return s.discarded
}
