package negotiation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/suryadizhang/mh-scheduler/internal/domain/negotiation"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeNegRepo struct {
	booking *models.Booking

	open    *models.BookingNegotiation
	openErr error

	created *models.BookingNegotiation
	updated *models.BookingNegotiation
}

func (f *fakeNegRepo) GetBookingByPublicID(context.Context, uuid.UUID) (*models.Booking, error) {
	return f.booking, nil
}

func (f *fakeNegRepo) UpdateBooking(context.Context, *models.Booking) error { return nil }

func (f *fakeNegRepo) GetNegotiationByPublicID(context.Context, uuid.UUID) (*models.BookingNegotiation, error) {
	return nil, nil
}

func (f *fakeNegRepo) GetOpenNegotiationForBooking(context.Context, uint) (*models.BookingNegotiation, error) {
	return f.open, f.openErr
}

func (f *fakeNegRepo) CreateNegotiation(_ context.Context, n *models.BookingNegotiation) error {
	f.created = n
	return nil
}

func (f *fakeNegRepo) UpdateNegotiation(_ context.Context, n *models.BookingNegotiation) error {
	f.updated = n
	return nil
}

func (f *fakeNegRepo) ListByBooking(context.Context, uint) ([]models.BookingNegotiation, error) {
	return nil, nil
}

func (f *fakeNegRepo) ListExpireCandidates(context.Context, time.Time) ([]models.BookingNegotiation, error) {
	return nil, nil
}

func (f *fakeNegRepo) ExpireNegotiation(context.Context, uint) (bool, error) { return false, nil }

func (f *fakeNegRepo) GetOrCreateProfile(context.Context, string, string, string) (*models.CustomerProfile, error) {
	return &models.CustomerProfile{}, nil
}

func (f *fakeNegRepo) UpdateProfile(context.Context, *models.CustomerProfile) error { return nil }

var _ Repository = (*fakeNegRepo)(nil)

type negVarStore struct{}

func (negVarStore) GetEffective(_ context.Context, category, key string, _ time.Time) (*models.DynamicVariable, error) {
	if category == "negotiation" && key == "expiry_hours" {
		return &models.DynamicVariable{Value: "24"}, nil
	}
	return nil, context.Canceled
}

type okNotifier struct {
	sent int
}

func (n *okNotifier) Send(context.Context, string, string, string, map[string]any) error {
	n.sent++
	return nil
}

func negBooking() *models.Booking {
	return &models.Booking{
		ID:            9,
		PublicID:      uuid.New(),
		StationID:     1,
		SlotTime:      "18:00",
		CustomerPhone: "5551234567",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestPropose_ThirtyMinuteShift(t *testing.T) {
	repo := &fakeNegRepo{booking: negBooking()}
	uc := NewPropose(repo, dynvars.New(negVarStore{}), &okNotifier{}, nil)

	n, err := uc.Execute(context.Background(), ProposeInput{
		BookingPublicID: repo.booking.PublicID,
		ShiftMinutes:    30,
		Channel:         "sms",
	})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if n.Incentive != domain.IncentiveFreeNoodles {
		t.Fatalf("incentive = %s, want free_noodles", n.Incentive)
	}
	if n.ProposedSlotTime != "18:30" {
		t.Fatalf("proposed = %s, want 18:30", n.ProposedSlotTime)
	}
	if n.Status != string(domain.StatusSent) || n.SentAt == nil {
		t.Fatalf("proposta enviada deveria ficar sent, got %s", n.Status)
	}
}

func TestPropose_RejectsSecondOpenNegotiation(t *testing.T) {
	repo := &fakeNegRepo{
		booking: negBooking(),
		open:    &models.BookingNegotiation{ID: 1},
	}
	uc := NewPropose(repo, dynvars.New(negVarStore{}), &okNotifier{}, nil)

	_, err := uc.Execute(context.Background(), ProposeInput{
		BookingPublicID: repo.booking.PublicID,
		ShiftMinutes:    30,
		Channel:         "sms",
	})
	if !httperr.IsBusiness(err, "negotiation_already_open") {
		t.Fatalf("err = %v, want negotiation_already_open", err)
	}
	if repo.created != nil {
		t.Fatalf("segunda negociação aberta para o mesmo booking")
	}
}

// erro transitório na busca da negociação aberta não pode virar
// "não existe duplicata"
func TestPropose_OpenLookupErrorPropagates(t *testing.T) {
	dbDown := errors.New("db down")
	repo := &fakeNegRepo{booking: negBooking(), openErr: dbDown}
	uc := NewPropose(repo, dynvars.New(negVarStore{}), &okNotifier{}, nil)

	_, err := uc.Execute(context.Background(), ProposeInput{
		BookingPublicID: repo.booking.PublicID,
		ShiftMinutes:    30,
		Channel:         "sms",
	})
	if !errors.Is(err, dbDown) {
		t.Fatalf("err = %v, want erro do repositório", err)
	}
	if repo.created != nil {
		t.Fatalf("negociação criada com a checagem de duplicata falhando")
	}
}
