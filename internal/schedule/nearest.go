package schedule

import "time"

// TimeSelection identifies one entry of the time-of-day catalog.
type TimeSelection struct {
	Period    Period
	TimeOfDay string // "HH:MM", a member of the period's catalog
}

// Nearest snaps an instant to the catalog entry closest to it within the
// instant's own half of the day. Ties resolve to the earlier catalog entry.
func Nearest(t time.Time) TimeSelection {
	period := PeriodMorning
	if t.Hour() >= 12 {
		period = PeriodAfternoon
	}

	slots := Slots(period)
	best := slots[0]
	bestDiff := slotDiffMinutes(t, slots[0])
	for _, slot := range slots[1:] {
		if d := slotDiffMinutes(t, slot); d < bestDiff {
			best = slot
			bestDiff = d
		}
	}

	return TimeSelection{Period: period, TimeOfDay: best}
}

// slotDiffMinutes returns the absolute distance in minutes between t and
// the slot applied to t's own date.
func slotDiffMinutes(t time.Time, slot string) int {
	h, m := splitTimeOfDay(slot)
	candidate := time.Date(t.Year(), t.Month(), t.Day(), h, m, 0, 0, t.Location())
	diff := int(candidate.Sub(t).Minutes())
	if diff < 0 {
		diff = -diff
	}
	return diff
}

func splitTimeOfDay(s string) (hour, minute int) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	return hour, minute
}
