package hold

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/geo"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type failingGeocoder struct{}

func (failingGeocoder) Geocode(context.Context, string) (*geo.GeocodeResult, error) {
	return nil, context.Canceled
}

func signedHold(station *models.Station) *models.SlotHold {
	signedAt := time.Now().Add(-30 * time.Minute)
	deadline := signedAt.Add(4 * time.Hour)
	return &models.SlotHold{
		ID:                3,
		PublicID:          uuid.New(),
		StationID:         station.ID,
		Station:           *station,
		EventDate:         time.Now().AddDate(0, 0, 3),
		SlotTime:          "18:00",
		CustomerName:      "Ana Souza",
		CustomerPhone:     "5551234567",
		Adults:            8,
		Status:            string(domain.StatusPending),
		SigningDeadline:   signedAt.Add(time.Hour),
		AgreementSignedAt: &signedAt,
		PaymentDeadline:   &deadline,
	}
}

func TestPayDeposit_ConvertsHold(t *testing.T) {
	repo := newSlotRepo()
	repo.hold = signedHold(repo.station)

	notifier := &countingNotifier{}
	uc := NewPayDeposit(repo, dynvars.New(slotVarStore{}), failingGeocoder{}, notifier, nil)

	b, err := uc.Execute(context.Background(), repo.hold.PublicID)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if b.Status != string(bookingDomain.StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}
	if repo.createdBooking == nil {
		t.Fatalf("booking não persistido")
	}
	if repo.hold.Status != string(domain.StatusConverted) {
		t.Fatalf("hold status = %s, want converted", repo.hold.Status)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("confirmação enviada %d vezes, want 1", len(notifier.sent))
	}
}

// o perdedor da corrida no índice único de bookings recebe slot_conflict,
// nunca um erro interno cru
func TestPayDeposit_UniqueViolationIsSlotConflict(t *testing.T) {
	repo := newSlotRepo()
	repo.hold = signedHold(repo.station)
	repo.createBookingErr = &pgconn.PgError{Code: "23505"}

	uc := NewPayDeposit(repo, dynvars.New(slotVarStore{}), failingGeocoder{}, &countingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), repo.hold.PublicID)
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("err = %v, want %s", err, httperr.CodeSlotConflict)
	}
}
