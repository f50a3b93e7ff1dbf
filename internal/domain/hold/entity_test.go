package hold

import (
	"testing"
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

func newPendingHold(created time.Time) *models.SlotHold {
	return &models.SlotHold{
		Status:          string(StatusPending),
		SigningDeadline: created.Add(2 * time.Hour),
	}
}

func TestSign_SetsPaymentDeadlineFromSignTime(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	signedAt := created.Add(time.Hour)
	if err := Sign(h, signedAt, 4*time.Hour); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if h.AgreementSignedAt == nil || !h.AgreementSignedAt.Equal(signedAt) {
		t.Fatalf("agreement_signed_at not set to sign time")
	}
	want := signedAt.Add(4 * time.Hour)
	if h.PaymentDeadline == nil || !h.PaymentDeadline.Equal(want) {
		t.Fatalf("payment_deadline = %v, want %v", h.PaymentDeadline, want)
	}
}

func TestSign_AfterDeadlineFails(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	late := created.Add(2*time.Hour + time.Minute)
	err := Sign(h, late, 4*time.Hour)
	if !httperr.IsBusiness(err, httperr.CodeDeadlineExceeded) {
		t.Fatalf("expected deadline_exceeded, got %v", err)
	}
	if h.AgreementSignedAt != nil {
		t.Fatalf("hold mutated on failed sign")
	}
}

func TestSign_TwiceFails(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	if err := Sign(h, created.Add(time.Hour), 4*time.Hour); err != nil {
		t.Fatalf("first sign: %v", err)
	}
	err := Sign(h, created.Add(90*time.Minute), 4*time.Hour)
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

func TestPay_ConvertsHold(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	signedAt := created.Add(time.Hour)
	if err := Sign(h, signedAt, 4*time.Hour); err != nil {
		t.Fatalf("sign: %v", err)
	}

	paidAt := signedAt.Add(3*time.Hour + 30*time.Minute)
	if err := Pay(h, paidAt); err != nil {
		t.Fatalf("pay: %v", err)
	}

	if h.Status != string(StatusConverted) {
		t.Fatalf("status = %s, want converted", h.Status)
	}
	if h.DepositPaidAt == nil || !h.DepositPaidAt.Equal(paidAt) {
		t.Fatalf("deposit_paid_at not recorded")
	}
}

func TestPay_WithoutSignatureFails(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	err := Pay(h, created.Add(time.Hour))
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

func TestPay_AfterPaymentDeadlineFails(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)

	signedAt := created.Add(time.Hour)
	if err := Sign(h, signedAt, 4*time.Hour); err != nil {
		t.Fatalf("sign: %v", err)
	}

	err := Pay(h, signedAt.Add(4*time.Hour+time.Minute))
	if !httperr.IsBusiness(err, httperr.CodeDeadlineExceeded) {
		t.Fatalf("expected deadline_exceeded, got %v", err)
	}
}

func TestExpireReason(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func() *models.SlotHold
		at         time.Time
		wantReason string
		wantOK     bool
	}{
		{
			name:  "unsigned before deadline",
			setup: func() *models.SlotHold { return newPendingHold(created) },
			at:    created.Add(time.Hour),
		},
		{
			name:       "unsigned past deadline",
			setup:      func() *models.SlotHold { return newPendingHold(created) },
			at:         created.Add(2*time.Hour + time.Minute),
			wantReason: ReasonSigningTimeout,
			wantOK:     true,
		},
		{
			name: "signed unpaid past payment deadline",
			setup: func() *models.SlotHold {
				h := newPendingHold(created)
				_ = Sign(h, created.Add(time.Hour), 4*time.Hour)
				return h
			},
			at:         created.Add(6 * time.Hour),
			wantReason: ReasonPaymentTimeout,
			wantOK:     true,
		},
		{
			name: "converted hold never expires",
			setup: func() *models.SlotHold {
				h := newPendingHold(created)
				_ = Sign(h, created.Add(time.Hour), 4*time.Hour)
				_ = Pay(h, created.Add(2*time.Hour))
				return h
			},
			at: created.Add(48 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.setup()
			reason, ok := ExpireReason(h, tt.at)
			if ok != tt.wantOK || reason != tt.wantReason {
				t.Fatalf("ExpireReason = (%q, %v), want (%q, %v)", reason, ok, tt.wantReason, tt.wantOK)
			}
		})
	}
}

func TestNeedsSigningWarning_WindowBounds(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	lead := time.Hour
	deadline := created.Add(2 * time.Hour)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", deadline.Add(-lead - time.Minute), false},
		{"window start", deadline.Add(-lead), true},
		{"inside window", deadline.Add(-30 * time.Minute), true},
		{"at deadline", deadline, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newPendingHold(created)
			if got := NeedsSigningWarning(h, tt.at, lead); got != tt.want {
				t.Fatalf("NeedsSigningWarning = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeedsSigningWarning_AlreadySent(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)
	sent := created.Add(time.Hour)
	h.SigningWarningSentAt = &sent

	if NeedsSigningWarning(h, created.Add(90*time.Minute), time.Hour) {
		t.Fatalf("warning must fire at most once")
	}
}

func TestNeedsPaymentWarning(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	h := newPendingHold(created)
	signedAt := created.Add(time.Hour)
	if err := Sign(h, signedAt, 4*time.Hour); err != nil {
		t.Fatalf("sign: %v", err)
	}

	inWindow := signedAt.Add(3*time.Hour + 30*time.Minute)
	if !NeedsPaymentWarning(h, inWindow, time.Hour) {
		t.Fatalf("expected payment warning inside window")
	}

	if NeedsPaymentWarning(h, signedAt.Add(time.Hour), time.Hour) {
		t.Fatalf("warning fired outside window")
	}
}
