package hold

import (
	"context"
	"log"
	"time"

	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/metrics"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/notify"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

// ======================================================
// SWEEPS: avisos de deadline e expiração de holds
// ======================================================
//
// Os sweeps selecionam por status+deadline, nunca por "desde a última
// execução": uma rodada perdida é recuperada na seguinte. A marcação
// condicional no repository garante no máximo um aviso por hold.

type Sweeper struct {
	repo     domain.Repository
	vars     *dynvars.Service
	notifier notify.Notifier
}

func NewSweeper(
	repo domain.Repository,
	vars *dynvars.Service,
	notifier notify.Notifier,
) *Sweeper {
	return &Sweeper{
		repo:     repo,
		vars:     vars,
		notifier: notifier,
	}
}

// SweepWarnings envia avisos de signing e payment deadline.
func (s *Sweeper) SweepWarnings(ctx context.Context) (int, error) {
	metrics.SweepRuns.WithLabelValues("hold_warnings").Inc()

	lead, err := s.vars.WarningLead(ctx)
	if err != nil {
		return 0, err
	}

	now := timezone.Now()
	processed := 0

	signing, err := s.repo.ListSigningWarningCandidates(ctx, now, lead)
	if err != nil {
		return processed, err
	}
	for i := range signing {
		h := &signing[i]
		if !domain.NeedsSigningWarning(h, now, lead) {
			continue
		}
		ok, err := s.repo.MarkSigningWarningSent(ctx, h.ID, now)
		if err != nil {
			metrics.SweepFailures.WithLabelValues("hold_warnings").Inc()
			log.Printf("sweep warnings: marcação falhou para hold %d: %v", h.ID, err)
			continue
		}
		if !ok {
			continue
		}
		s.send(ctx, h, notify.TemplateSigningWarning, h.SigningDeadline)
		processed++
	}

	payment, err := s.repo.ListPaymentWarningCandidates(ctx, now, lead)
	if err != nil {
		return processed, err
	}
	for i := range payment {
		h := &payment[i]
		if !domain.NeedsPaymentWarning(h, now, lead) {
			continue
		}
		ok, err := s.repo.MarkPaymentWarningSent(ctx, h.ID, now)
		if err != nil {
			metrics.SweepFailures.WithLabelValues("hold_warnings").Inc()
			log.Printf("sweep warnings: marcação falhou para hold %d: %v", h.ID, err)
			continue
		}
		if !ok {
			continue
		}
		s.send(ctx, h, notify.TemplatePaymentWarning, *h.PaymentDeadline)
		processed++
	}

	metrics.SweepProcessed.WithLabelValues("hold_warnings").Add(float64(processed))
	return processed, nil
}

// SweepExpired expira holds com deadline vencido e libera o slot.
func (s *Sweeper) SweepExpired(ctx context.Context) (int, error) {
	metrics.SweepRuns.WithLabelValues("hold_expiry").Inc()

	now := timezone.Now()
	processed := 0

	candidates, err := s.repo.ListExpireCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	for i := range candidates {
		h := &candidates[i]
		reason, ok := domain.ExpireReason(h, now)
		if !ok {
			continue
		}
		changed, err := s.repo.ExpireHold(ctx, h.ID, reason)
		if err != nil {
			metrics.SweepFailures.WithLabelValues("hold_expiry").Inc()
			log.Printf("sweep expiry: falha ao expirar hold %d: %v", h.ID, err)
			continue
		}
		if !changed {
			continue
		}
		s.send(ctx, h, notify.TemplateHoldExpired, now)
		processed++
	}

	metrics.SweepProcessed.WithLabelValues("hold_expiry").Add(float64(processed))
	return processed, nil
}

func (s *Sweeper) send(ctx context.Context, h *models.SlotHold, template string, deadline time.Time) {
	err := s.notifier.Send(ctx, notify.ChannelSMS, h.CustomerPhone, template, map[string]any{
		"hold_id":    h.PublicID.String(),
		"event_date": h.EventDate.Format("2006-01-02"),
		"slot_time":  h.SlotTime,
		"deadline":   deadline.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("notificação %s falhou para hold %d: %v", template, h.ID, err)
	}
}
