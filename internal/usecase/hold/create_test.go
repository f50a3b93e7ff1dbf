package hold

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

// repo de slot configurável por cima do fakeRepo base
type slotFakeRepo struct {
	*fakeRepo

	station  *models.Station
	chefs    int
	holds    []models.SlotHold
	bookings []models.Booking

	hold             *models.SlotHold
	createdHold      *models.SlotHold
	createdBooking   *models.Booking
	createBookingErr error
}

func newSlotRepo() *slotFakeRepo {
	return &slotFakeRepo{
		fakeRepo: newFakeRepo(),
		station: &models.Station{
			ID:       1,
			Timezone: "America/Los_Angeles",
		},
		chefs: 3,
	}
}

func (f *slotFakeRepo) GetStationBySlug(context.Context, string) (*models.Station, error) {
	return f.station, nil
}

func (f *slotFakeRepo) CountAvailableChefs(context.Context, uint, int, string) (int, error) {
	return f.chefs, nil
}

func (f *slotFakeRepo) ListActiveHoldsForSlot(context.Context, uint, time.Time, string) ([]models.SlotHold, error) {
	return f.holds, nil
}

func (f *slotFakeRepo) ListActiveBookingsForSlot(context.Context, uint, time.Time, string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *slotFakeRepo) CreateHold(_ context.Context, h *models.SlotHold) error {
	f.createdHold = h
	return nil
}

func (f *slotFakeRepo) GetHoldByPublicID(context.Context, uuid.UUID) (*models.SlotHold, error) {
	return f.hold, nil
}

func (f *slotFakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.createBookingErr != nil {
		return f.createBookingErr
	}
	f.createdBooking = b
	return nil
}

func (f *slotFakeRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*slotFakeRepo)(nil)

type slotVarStore struct{}

func (slotVarStore) GetEffective(_ context.Context, category, key string, _ time.Time) (*models.DynamicVariable, error) {
	values := map[string]string{
		"scheduling/signing_window_hours":          "2",
		"scheduling/payment_window_hours":          "4",
		"scheduling/chef_availability_window_days": "14",
		"scheduling/long_advance_slot_capacity":    "1",
		"scheduling/urgent_threshold_days":         "7",
	}
	v, ok := values[category+"/"+key]
	if !ok {
		return nil, context.Canceled
	}
	return &models.DynamicVariable{Value: v}, nil
}

func holdInput(date string) CreateHoldInput {
	return CreateHoldInput{
		StationSlug:   "bay-area",
		Date:          date,
		Slot:          "18:00",
		CustomerName:  "Ana Souza",
		CustomerPhone: "5551234567",
		VenueAddress:  "123 Main St",
		Adults:        8,
	}
}

func nearDate() string {
	return time.Now().AddDate(0, 0, 3).Format("2006-01-02")
}

// ======================================================
// TESTS
// ======================================================

func TestCreateHold_BookingOnSlotIsConflict(t *testing.T) {
	repo := newSlotRepo()
	repo.bookings = []models.Booking{
		{ID: 7, Status: string(bookingDomain.StatusConfirmed), SlotTime: "18:00"},
	}

	uc := NewCreateHold(repo, dynvars.New(slotVarStore{}), nil)

	_, err := uc.Execute(context.Background(), holdInput(nearDate()))
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeSlotConflict)
	}
	if repo.createdHold != nil {
		t.Fatalf("hold criado num slot já ocupado por booking")
	}
}

func TestCreateHold_PendingHoldOnSlotIsConflict(t *testing.T) {
	repo := newSlotRepo()
	repo.holds = []models.SlotHold{
		{ID: 4, Status: string(domain.StatusPending), SlotTime: "18:00"},
	}

	uc := NewCreateHold(repo, dynvars.New(slotVarStore{}), nil)

	_, err := uc.Execute(context.Background(), holdInput(nearDate()))
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeSlotConflict)
	}
	if repo.createdHold != nil {
		t.Fatalf("hold criado num slot já ocupado por outro hold")
	}
}

func TestCreateHold_NoChefsNearTermIsSlotFull(t *testing.T) {
	repo := newSlotRepo()
	repo.chefs = 0

	uc := NewCreateHold(repo, dynvars.New(slotVarStore{}), nil)

	_, err := uc.Execute(context.Background(), holdInput(nearDate()))
	if !httperr.IsBusiness(err, httperr.CodeSlotFull) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeSlotFull)
	}
}

func TestCreateHold_FreeSlot(t *testing.T) {
	repo := newSlotRepo()

	uc := NewCreateHold(repo, dynvars.New(slotVarStore{}), nil)

	h, err := uc.Execute(context.Background(), holdInput(nearDate()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.createdHold == nil {
		t.Fatalf("hold não persistido")
	}
	if h.Status != string(domain.StatusPending) {
		t.Fatalf("status = %s, want pending", h.Status)
	}

	want := time.Now().Add(2 * time.Hour)
	if d := h.SigningDeadline.Sub(want); d < -time.Minute || d > time.Minute {
		t.Fatalf("signing_deadline = %v, want ~now+2h", h.SigningDeadline)
	}
}
