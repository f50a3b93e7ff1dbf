package scheduling

import (
	"testing"
	"time"
)

func TestIsValidSlot(t *testing.T) {
	for _, s := range SlotTimes {
		if !IsValidSlot(s) {
			t.Fatalf("slot %s must be valid", s)
		}
	}
	for _, s := range []string{"12:30", "09:00", "", "noon"} {
		if IsValidSlot(s) {
			t.Fatalf("slot %q must be invalid", s)
		}
	}
}

func TestSlotDatetime(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	date := time.Date(2025, 1, 5, 0, 0, 0, 0, loc)
	got, err := SlotDatetime(date, "18:00", loc)
	if err != nil {
		t.Fatalf("SlotDatetime: %v", err)
	}

	want := time.Date(2025, 1, 5, 18, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestShiftSlot(t *testing.T) {
	tests := []struct {
		slot    string
		minutes int
		want    string
	}{
		{"18:00", 30, "18:30"},
		{"18:00", -30, "17:30"},
		{"18:00", 60, "19:00"},
		{"18:00", -60, "17:00"},
	}

	for _, tt := range tests {
		got, err := ShiftSlot(tt.slot, tt.minutes)
		if err != nil {
			t.Fatalf("ShiftSlot(%s, %d): %v", tt.slot, tt.minutes, err)
		}
		if got != tt.want {
			t.Fatalf("ShiftSlot(%s, %d) = %s, want %s", tt.slot, tt.minutes, got, tt.want)
		}
	}
}

func TestAdjacentSlots(t *testing.T) {
	if !AdjacentSlots("12:00", "15:00") {
		t.Fatalf("12:00 and 15:00 are adjacent on the grid")
	}
	if AdjacentSlots("12:00", "18:00") {
		t.Fatalf("12:00 and 18:00 are not adjacent")
	}
	if AdjacentSlots("12:00", "12:00") {
		t.Fatalf("a slot is not adjacent to itself")
	}
	if AdjacentSlots("12:00", "13:00") {
		t.Fatalf("off-grid time must not be adjacent")
	}
}
