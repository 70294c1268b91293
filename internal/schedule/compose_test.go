package schedule

import (
	"testing"
	"time"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		date string
		sel  TimeSelection
		want string
	}{
		{
			name: "morning slot",
			date: "2025-03-01 23:59:59",
			sel:  TimeSelection{Period: PeriodMorning, TimeOfDay: "09:00"},
			want: "2025-03-01 09:00:00",
		},
		{
			name: "afternoon slot",
			date: "2025-03-15 00:00:00",
			sel:  TimeSelection{Period: PeriodAfternoon, TimeOfDay: "14:30"},
			want: "2025-03-15 14:30:00",
		},
		{
			name: "seconds are zeroed",
			date: "2025-12-31 10:11:45",
			sel:  TimeSelection{Period: PeriodMorning, TimeOfDay: "10:00"},
			want: "2025-12-31 10:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(mustTime(t, tt.date), tt.sel)
			want := mustTime(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("Compose = %v, want %v", got, want)
			}
		})
	}
}

func TestComposeKeepsHalvesOrthogonal(t *testing.T) {
	date := mustTime(t, "2025-06-10 08:30:00")
	sel := TimeSelection{Period: PeriodAfternoon, TimeOfDay: "16:00"}

	got := Compose(date, sel)

	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 10 {
		t.Errorf("calendar half changed: %v", got)
	}
	if got.Hour() != 16 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("time half wrong: %v", got)
	}
}

func TestWithPeriod(t *testing.T) {
	tests := []struct {
		name string
		sel  TimeSelection
		to   Period
		want TimeSelection
	}{
		{
			name: "same period keeps time",
			sel:  TimeSelection{Period: PeriodMorning, TimeOfDay: "09:00"},
			to:   PeriodMorning,
			want: TimeSelection{Period: PeriodMorning, TimeOfDay: "09:00"},
		},
		{
			name: "time missing in new period gets first slot",
			sel:  TimeSelection{Period: PeriodMorning, TimeOfDay: "09:00"},
			to:   PeriodAfternoon,
			want: TimeSelection{Period: PeriodAfternoon, TimeOfDay: "12:00"},
		},
		{
			name: "afternoon to morning",
			sel:  TimeSelection{Period: PeriodAfternoon, TimeOfDay: "15:30"},
			to:   PeriodMorning,
			want: TimeSelection{Period: PeriodMorning, TimeOfDay: "00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.WithPeriod(tt.to); got != tt.want {
				t.Errorf("WithPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithTimeOfDay(t *testing.T) {
	sel := TimeSelection{Period: PeriodAfternoon, TimeOfDay: "12:00"}
	got := sel.WithTimeOfDay("18:30")
	want := TimeSelection{Period: PeriodAfternoon, TimeOfDay: "18:30"}
	if got != want {
		t.Errorf("WithTimeOfDay = %v, want %v", got, want)
	}
}
