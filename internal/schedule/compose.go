package schedule

import (
	"slices"
	"time"
)

// Compose merges the calendar half of date with the time-of-day half of sel
// into one local timestamp. Seconds and sub-seconds are zeroed.
func Compose(date time.Time, sel TimeSelection) time.Time {
	h, m := splitTimeOfDay(sel.TimeOfDay)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// WithPeriod moves the selection to another period, keeping the time of day
// when it exists in that period's catalog and substituting the catalog's
// first entry when it does not.
func (s TimeSelection) WithPeriod(p Period) TimeSelection {
	slots := Slots(p)
	timeOfDay := s.TimeOfDay
	if !slices.Contains(slots, timeOfDay) {
		timeOfDay = slots[0]
	}
	return TimeSelection{Period: p, TimeOfDay: timeOfDay}
}

// WithTimeOfDay replaces the time of day, keeping the period.
func (s TimeSelection) WithTimeOfDay(timeOfDay string) TimeSelection {
	return TimeSelection{Period: s.Period, TimeOfDay: timeOfDay}
}
