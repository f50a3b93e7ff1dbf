package booking

import (
	"testing"
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

func TestRequestThenRejectRestoresPreviousStatus(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := RequestCancellation(b, now, "customer", "moved out"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if b.Status != string(StatusCancellationRequested) {
		t.Fatalf("status = %s, want cancellation_requested", b.Status)
	}
	if b.PreviousStatus == nil || *b.PreviousStatus != string(StatusConfirmed) {
		t.Fatalf("previous_status not captured")
	}

	if err := RejectCancellation(b, now.Add(time.Hour), "user:1", "keep it"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed restored", b.Status)
	}
	if b.PreviousStatus != nil {
		t.Fatalf("previous_status must be cleared after reject")
	}
}

func TestApproveCancellation(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := RequestCancellation(b, now, "customer", "rain"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := ApproveCancellation(b, now.Add(time.Hour), "user:2", "approved"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Fatalf("status = %s, want cancelled", b.Status)
	}
}

func TestRequestCancellation_Twice(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := RequestCancellation(b, now, "customer", "x"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	err := RequestCancellation(b, now.Add(time.Minute), "customer", "y")
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

func TestResolveWithoutRequestFails(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	err := ApproveCancellation(b, now, "user:1", "")
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

func TestCancellationRequestedStillOccupiesSlot(t *testing.T) {
	if !StatusCancellationRequested.OccupiesSlot() {
		t.Fatalf("cancellation_requested must keep the slot held")
	}
	if StatusCancelled.OccupiesSlot() {
		t.Fatalf("cancelled must release the slot")
	}
	if StatusNoShow.OccupiesSlot() {
		t.Fatalf("no_show must release the slot")
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		event time.Time
		want  int
	}{
		{
			"same day",
			time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"late evening to next morning is one day",
			time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"two weeks out",
			time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			14,
		},
		{
			"past event",
			time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			-5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.event, tt.now); got != tt.want {
				t.Fatalf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBookingWindowFor(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, WindowLastMinute},
		{2, WindowLastMinute},
		{3, WindowSameWeek},
		{7, WindowSameWeek},
		{8, WindowStandard},
		{30, WindowStandard},
		{31, WindowLongAdvance},
	}

	for _, tt := range tests {
		if got := BookingWindowFor(tt.days); got != tt.want {
			t.Fatalf("BookingWindowFor(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestRefreshUrgency(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Status:    string(StatusConfirmed),
		EventDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	if !RefreshUrgency(b, now, 7) {
		t.Fatalf("first refresh must report a change")
	}
	if !b.IsUrgent || b.DaysUntilEvent != 4 || b.BookingWindow != WindowSameWeek {
		t.Fatalf("unexpected flags: urgent=%v days=%d window=%s", b.IsUrgent, b.DaysUntilEvent, b.BookingWindow)
	}

	if RefreshUrgency(b, now, 7) {
		t.Fatalf("second refresh with same inputs must be a no-op")
	}
}
