package negotiation

import (
	"testing"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
)

func TestIncentiveForShift(t *testing.T) {
	tests := []struct {
		shift   int
		want    string
		wantErr bool
	}{
		{30, IncentiveFreeNoodles, false},
		{-30, IncentiveFreeNoodles, false},
		{60, IncentiveFreeAppetizer, false},
		{-60, IncentiveFreeAppetizer, false},
		{45, "", true},
		{90, "", true},
		{0, "", true},
	}

	for _, tt := range tests {
		got, err := IncentiveForShift(tt.shift)
		if tt.wantErr {
			if !httperr.IsBusiness(err, "invalid_shift") {
				t.Fatalf("shift %d: expected invalid_shift, got %v", tt.shift, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("shift %d: %v", tt.shift, err)
		}
		if got != tt.want {
			t.Fatalf("shift %d: incentive = %s, want %s", tt.shift, got, tt.want)
		}
	}
}

func TestFlexibilityScore(t *testing.T) {
	tests := []struct {
		accepted, total int
		want            float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{2, 4, 5},
		{4, 4, 10},
	}

	for _, tt := range tests {
		if got := FlexibilityScore(tt.accepted, tt.total); got != tt.want {
			t.Fatalf("FlexibilityScore(%d, %d) = %v, want %v", tt.accepted, tt.total, got, tt.want)
		}
	}
}

func TestCanRespond(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusSent} {
		if err := CanRespond(s); err != nil {
			t.Fatalf("CanRespond(%s): %v", s, err)
		}
	}
	for _, s := range []Status{StatusAccepted, StatusDeclined, StatusExpired, StatusCancelled} {
		if err := CanRespond(s); !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
			t.Fatalf("CanRespond(%s): expected invalid_transition, got %v", s, err)
		}
	}
}
