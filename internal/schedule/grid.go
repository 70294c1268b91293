// Package schedule implements the recurring-task scheduling engine:
// the selectable time-of-day catalog, nearest-slot resolution, recurrence
// canonicalization and start-date composition.
package schedule

import "fmt"

// Period represents the half of the day a time slot belongs to.
type Period string

const (
	PeriodMorning   Period = "오전"
	PeriodAfternoon Period = "오후"
)

// Valid returns true if the period is a valid value.
func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon:
		return true
	default:
		return false
	}
}

// SlotStepMinutes is the spacing between selectable times of day.
const SlotStepMinutes = 30

const slotsPerPeriod = 12 * 60 / SlotStepMinutes

// MorningSlots returns the selectable morning times of day, in order,
// from "00:00" to "11:30".
func MorningSlots() []string {
	return periodSlots(0)
}

// AfternoonSlots returns the selectable afternoon times of day, in order,
// from "12:00" to "23:30".
func AfternoonSlots() []string {
	return periodSlots(12 * 60)
}

// Slots returns the catalog for the given period.
// Unknown periods fall back to the morning catalog.
func Slots(p Period) []string {
	if p == PeriodAfternoon {
		return AfternoonSlots()
	}
	return MorningSlots()
}

func periodSlots(startMinute int) []string {
	slots := make([]string, 0, slotsPerPeriod)
	for i := 0; i < slotsPerPeriod; i++ {
		m := startMinute + i*SlotStepMinutes
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}
