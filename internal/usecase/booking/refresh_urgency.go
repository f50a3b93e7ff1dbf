package booking

import (
	"context"
	"log"

	domain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/metrics"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type UrgencySweeper struct {
	repo domain.Repository
	vars *dynvars.Service
}

func NewUrgencySweeper(repo domain.Repository, vars *dynvars.Service) *UrgencySweeper {
	return &UrgencySweeper{repo: repo, vars: vars}
}

// SweepUrgency recalcula is_urgent/days_until_event/booking_window dos
// bookings ativos futuros. Só grava quem mudou.
func (s *UrgencySweeper) SweepUrgency(ctx context.Context) (int, error) {
	metrics.SweepRuns.WithLabelValues("booking_urgency").Inc()

	threshold, err := s.vars.UrgentThresholdDays(ctx)
	if err != nil {
		return 0, err
	}

	now := timezone.Now()
	bookings, err := s.repo.ListUpcomingActive(ctx, now)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i := range bookings {
		b := &bookings[i]
		if !domain.RefreshUrgency(b, now, threshold) {
			continue
		}
		if err := s.repo.Update(ctx, b); err != nil {
			metrics.SweepFailures.WithLabelValues("booking_urgency").Inc()
			log.Printf("sweep urgency: falha ao atualizar booking %d: %v", b.ID, err)
			continue
		}
		processed++
	}

	metrics.SweepProcessed.WithLabelValues("booking_urgency").Add(float64(processed))
	return processed, nil
}
