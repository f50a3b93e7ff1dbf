package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores dos sweeps periódicos e do HTTP
var (
	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mh_sweep_runs_total",
		Help: "Total de execuções de cada sweep",
	}, []string{"sweep"})

	SweepProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mh_sweep_processed_total",
		Help: "Linhas processadas com sucesso por sweep",
	}, []string{"sweep"})

	SweepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mh_sweep_failures_total",
		Help: "Falhas isoladas por linha em cada sweep",
	}, []string{"sweep"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mh_http_requests_total",
		Help: "Requests HTTP por método/rota/status",
	}, []string{"method", "path", "status"})
)
