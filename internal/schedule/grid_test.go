package schedule

import "testing"

func TestMorningSlots(t *testing.T) {
	slots := MorningSlots()

	if len(slots) != 24 {
		t.Fatalf("expected 24 morning slots, got %d", len(slots))
	}
	if slots[0] != "00:00" {
		t.Errorf("first morning slot = %q, want %q", slots[0], "00:00")
	}
	if slots[len(slots)-1] != "11:30" {
		t.Errorf("last morning slot = %q, want %q", slots[len(slots)-1], "11:30")
	}
}

func TestAfternoonSlots(t *testing.T) {
	slots := AfternoonSlots()

	if len(slots) != 24 {
		t.Fatalf("expected 24 afternoon slots, got %d", len(slots))
	}
	if slots[0] != "12:00" {
		t.Errorf("first afternoon slot = %q, want %q", slots[0], "12:00")
	}
	if slots[len(slots)-1] != "23:30" {
		t.Errorf("last afternoon slot = %q, want %q", slots[len(slots)-1], "23:30")
	}
}

func TestSlotsAreOrderedAndStepped(t *testing.T) {
	for _, period := range []Period{PeriodMorning, PeriodAfternoon} {
		slots := Slots(period)
		for i := 1; i < len(slots); i++ {
			prevH, prevM := splitTimeOfDay(slots[i-1])
			curH, curM := splitTimeOfDay(slots[i])
			if (curH*60 + curM) - (prevH*60 + prevM) != SlotStepMinutes {
				t.Errorf("%s: slot step %q -> %q is not %d minutes",
					period, slots[i-1], slots[i], SlotStepMinutes)
			}
		}
	}
}

func TestSlotsAreRestartable(t *testing.T) {
	// Callers may mutate the returned slice; a fresh call must not see it.
	first := MorningSlots()
	first[0] = "mutated"

	second := MorningSlots()
	if second[0] != "00:00" {
		t.Errorf("second call saw mutation: first slot = %q", second[0])
	}
}

func TestSlotsUnknownPeriodFallsBack(t *testing.T) {
	slots := Slots(Period("저녁"))
	if slots[0] != "00:00" {
		t.Errorf("unknown period should fall back to morning catalog, got first slot %q", slots[0])
	}
}
