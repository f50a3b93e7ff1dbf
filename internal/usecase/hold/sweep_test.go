package hold

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	holds map[uint]*models.SlotHold
}

func newFakeRepo(holds ...*models.SlotHold) *fakeRepo {
	m := make(map[uint]*models.SlotHold)
	for _, h := range holds {
		m[h.ID] = h
	}
	return &fakeRepo{holds: m}
}

func (f *fakeRepo) GetStationBySlug(context.Context, string) (*models.Station, error) {
	return nil, nil
}
func (f *fakeRepo) CreateHold(context.Context, *models.SlotHold) error { return nil }
func (f *fakeRepo) GetHoldByPublicID(context.Context, uuid.UUID) (*models.SlotHold, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateHold(context.Context, *models.SlotHold) error { return nil }
func (f *fakeRepo) CountAvailableChefs(context.Context, uint, int, string) (int, error) {
	return 0, nil
}
func (f *fakeRepo) ListActiveHoldsForSlot(context.Context, uint, time.Time, string) ([]models.SlotHold, error) {
	return nil, nil
}
func (f *fakeRepo) ListActiveBookingsForSlot(context.Context, uint, time.Time, string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeRepo) CreateAgreement(context.Context, *models.SignedAgreement) error { return nil }
func (f *fakeRepo) CreateBooking(context.Context, *models.Booking) error           { return nil }

func (f *fakeRepo) ListSigningWarningCandidates(_ context.Context, now time.Time, lead time.Duration) ([]models.SlotHold, error) {
	var out []models.SlotHold
	for _, h := range f.holds {
		if domain.NeedsSigningWarning(h, now, lead) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPaymentWarningCandidates(_ context.Context, now time.Time, lead time.Duration) ([]models.SlotHold, error) {
	var out []models.SlotHold
	for _, h := range f.holds {
		if domain.NeedsPaymentWarning(h, now, lead) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkSigningWarningSent(_ context.Context, holdID uint, at time.Time) (bool, error) {
	h := f.holds[holdID]
	if h == nil || h.SigningWarningSentAt != nil || h.Status != string(domain.StatusPending) {
		return false, nil
	}
	h.SigningWarningSentAt = &at
	return true, nil
}

func (f *fakeRepo) MarkPaymentWarningSent(_ context.Context, holdID uint, at time.Time) (bool, error) {
	h := f.holds[holdID]
	if h == nil || h.PaymentWarningSentAt != nil || h.Status != string(domain.StatusPending) {
		return false, nil
	}
	h.PaymentWarningSentAt = &at
	return true, nil
}

func (f *fakeRepo) ListExpireCandidates(_ context.Context, now time.Time) ([]models.SlotHold, error) {
	var out []models.SlotHold
	for _, h := range f.holds {
		if _, ok := domain.ExpireReason(h, now); ok {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ExpireHold(_ context.Context, holdID uint, reason string) (bool, error) {
	h := f.holds[holdID]
	if h == nil || h.Status != string(domain.StatusPending) {
		return false, nil
	}
	domain.MarkExpired(h, reason)
	return true, nil
}

func (f *fakeRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeVarStore struct{}

func (fakeVarStore) GetEffective(_ context.Context, category, key string, _ time.Time) (*models.DynamicVariable, error) {
	values := map[string]string{
		"scheduling/warning_lead_minutes": "60",
	}
	v, ok := values[category+"/"+key]
	if !ok {
		return nil, context.Canceled
	}
	return &models.DynamicVariable{Value: v}, nil
}

type countingNotifier struct {
	sent []string
}

func (n *countingNotifier) Send(_ context.Context, _, _, template string, _ map[string]any) error {
	n.sent = append(n.sent, template)
	return nil
}

// ======================================================
// TESTS
// ======================================================

func TestSweepWarnings_SendsOnce(t *testing.T) {
	created := time.Now().Add(-90 * time.Minute)
	h := &models.SlotHold{
		ID:              1,
		Status:          string(domain.StatusPending),
		SigningDeadline: created.Add(2 * time.Hour), // 30min restantes
		CustomerPhone:   "5551234567",
	}

	repo := newFakeRepo(h)
	notifier := &countingNotifier{}
	s := NewSweeper(repo, dynvars.New(fakeVarStore{}), notifier)

	processed, err := s.SweepWarnings(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if processed != 1 || len(notifier.sent) != 1 {
		t.Fatalf("processed=%d sent=%d, want 1/1", processed, len(notifier.sent))
	}

	// segunda rodada não reenvia
	processed, err = s.SweepWarnings(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if processed != 0 || len(notifier.sent) != 1 {
		t.Fatalf("re-run sent duplicates: processed=%d sent=%d", processed, len(notifier.sent))
	}
}

func TestSweepExpired_SigningTimeout(t *testing.T) {
	h := &models.SlotHold{
		ID:              1,
		Status:          string(domain.StatusPending),
		SigningDeadline: time.Now().Add(-time.Minute),
		CustomerPhone:   "5551234567",
	}

	repo := newFakeRepo(h)
	notifier := &countingNotifier{}
	s := NewSweeper(repo, dynvars.New(fakeVarStore{}), notifier)

	processed, err := s.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1", processed)
	}
	if h.Status != string(domain.StatusExpired) {
		t.Fatalf("status = %s, want expired", h.Status)
	}
	if h.CancellationReason == nil || *h.CancellationReason != domain.ReasonSigningTimeout {
		t.Fatalf("cancellation_reason = %v, want signing_timeout", h.CancellationReason)
	}

	// idempotente
	processed, err = s.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if processed != 0 {
		t.Fatalf("re-run expired again: processed = %d", processed)
	}
}

func TestSweepExpired_PaymentTimeout(t *testing.T) {
	signedAt := time.Now().Add(-5 * time.Hour)
	deadline := signedAt.Add(4 * time.Hour)
	h := &models.SlotHold{
		ID:                1,
		Status:            string(domain.StatusPending),
		SigningDeadline:   signedAt.Add(time.Hour),
		AgreementSignedAt: &signedAt,
		PaymentDeadline:   &deadline,
		CustomerPhone:     "5551234567",
	}

	repo := newFakeRepo(h)
	s := NewSweeper(repo, dynvars.New(fakeVarStore{}), &countingNotifier{})

	processed, err := s.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1", processed)
	}
	if h.CancellationReason == nil || *h.CancellationReason != domain.ReasonPaymentTimeout {
		t.Fatalf("cancellation_reason = %v, want payment_timeout", h.CancellationReason)
	}
}
