package negotiation

import (
	"context"
	"log"

	"github.com/suryadizhang/mh-scheduler/internal/metrics"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type Sweeper struct {
	repo Repository
}

func NewSweeper(repo Repository) *Sweeper {
	return &Sweeper{repo: repo}
}

// SweepExpired expira propostas sem resposta. O booking original não é
// tocado: expiração só fecha a negociação.
func (s *Sweeper) SweepExpired(ctx context.Context) (int, error) {
	metrics.SweepRuns.WithLabelValues("negotiation_expiry").Inc()

	now := timezone.Now()
	processed := 0

	candidates, err := s.repo.ListExpireCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	for i := range candidates {
		n := &candidates[i]
		changed, err := s.repo.ExpireNegotiation(ctx, n.ID)
		if err != nil {
			metrics.SweepFailures.WithLabelValues("negotiation_expiry").Inc()
			log.Printf("sweep negotiation: falha ao expirar %d: %v", n.ID, err)
			continue
		}
		if changed {
			processed++
		}
	}

	metrics.SweepProcessed.WithLabelValues("negotiation_expiry").Add(float64(processed))
	return processed, nil
}
