package worker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// SweepFunc é uma rodada de um sweep; devolve quantas linhas processou.
type SweepFunc func(ctx context.Context) (int, error)

type namedSweep struct {
	name string
	fn   SweepFunc
}

// Sweeper roda os sweeps registrados em intervalo fixo. Falha de um
// sweep não derruba a rodada dos demais.
type Sweeper struct {
	interval time.Duration
	sweeps   []namedSweep

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

func NewSweeper(interval time.Duration) *Sweeper {
	return &Sweeper{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Sweeper) Register(name string, fn SweepFunc) {
	s.sweeps = append(s.sweeps, namedSweep{name: name, fn: fn})
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("sweeper already running")
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// primeira rodada sem esperar o ticker
	s.runAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Sweeper) runAll(ctx context.Context) {
	for _, sw := range s.sweeps {
		processed, err := sw.fn(ctx)
		if err != nil {
			log.Printf("sweep %s falhou: %v", sw.name, err)
			continue
		}
		if processed > 0 {
			log.Printf("sweep %s processou %d linha(s)", sw.name, processed)
		}
	}
}
