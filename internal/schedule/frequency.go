package schedule

import "time"

// Frequency represents how often a task repeats.
type Frequency string

const (
	FrequencyOnce    Frequency = "ONCE"
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// Valid returns true if the frequency is a valid value.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// Frequency labels as shown in the picker.
const (
	LabelOnce    = "한 번"
	LabelDaily   = "매일"
	LabelWeekly  = "주 반복"
	LabelMonthly = "월 반복"
)

// FrequencyLabels returns the picker labels in display order.
func FrequencyLabels() []string {
	return []string{LabelOnce, LabelDaily, LabelWeekly, LabelMonthly}
}

// ParseLabel canonicalizes a picker label into a Frequency.
// Unrecognized labels fall back to FrequencyOnce; the picker is the only
// producer of labels, so this is a safety net rather than an error path.
func ParseLabel(label string) Frequency {
	switch label {
	case LabelOnce:
		return FrequencyOnce
	case LabelDaily:
		return FrequencyDaily
	case LabelWeekly:
		return FrequencyWeekly
	case LabelMonthly:
		return FrequencyMonthly
	default:
		return FrequencyOnce
	}
}

// Label returns the picker label for the frequency.
func (f Frequency) Label() string {
	switch f {
	case FrequencyDaily:
		return LabelDaily
	case FrequencyWeekly:
		return LabelWeekly
	case FrequencyMonthly:
		return LabelMonthly
	default:
		return LabelOnce
	}
}

// ToggleDay adds idx to the weekday set if absent, removes it if present.
// Weekdays are 0 (Sunday) through 6 (Saturday).
func ToggleDay(days []int, idx int) []int {
	for i, d := range days {
		if d == idx {
			return append(days[:i:i], days[i+1:]...)
		}
	}
	return append(days, idx)
}

// ContainsDay reports whether idx is in the weekday set.
func ContainsDay(days []int, idx int) bool {
	for _, d := range days {
		if d == idx {
			return true
		}
	}
	return false
}

// MonthDay returns the day-of-month a monthly recurrence repeats on.
// It is always derived from the start date so the two cannot drift apart.
func MonthDay(startDate time.Time) int {
	return startDate.Day()
}
