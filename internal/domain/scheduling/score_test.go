package scheduling

import "testing"

func TestScore_TravelPenaltyIsCapped(t *testing.T) {
	near := Score(Candidate{TravelMinutes: 10})
	far := Score(Candidate{TravelMinutes: 100})
	veryFar := Score(Candidate{TravelMinutes: 500})

	if near <= far {
		t.Fatalf("closer chef must score higher: near=%v far=%v", near, far)
	}
	if far != veryFar {
		t.Fatalf("travel penalty must cap: far=%v veryFar=%v", far, veryFar)
	}
}

func TestScore_CustomerRequestedDominates(t *testing.T) {
	plain := Score(Candidate{TravelMinutes: 20})
	requested := Score(Candidate{TravelMinutes: 40, CustomerRequested: true})

	if requested <= plain {
		t.Fatalf("requested chef at 2x travel must still win: plain=%v requested=%v", plain, requested)
	}
}

func TestScore_ChainBonus(t *testing.T) {
	without := Score(Candidate{TravelMinutes: 20, SameDayBookings: 1})
	with := Score(Candidate{TravelMinutes: 20, SameDayBookings: 1, ChainAdjacent: true})

	if with-without != 10 {
		t.Fatalf("chain bonus = %v, want 10", with-without)
	}
}

func TestScore_ClampedToRange(t *testing.T) {
	low := Score(Candidate{TravelMinutes: 500, SameDayBookings: 10})
	if low != 0 {
		t.Fatalf("score floor = %v, want 0", low)
	}

	high := Score(Candidate{ChainAdjacent: true, CustomerRequested: true})
	if high != 100 {
		t.Fatalf("score ceiling = %v, want 100", high)
	}
}
