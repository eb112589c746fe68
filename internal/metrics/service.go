package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SchedulesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "americano_schedules_generated_total",
			Help: "The total number of tournament schedules generated.",
		}),
		MatchesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "americano_matches_scored_total",
			Help: "The total number of match results recorded.",
		}),
		SimulationsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "americano_simulations_run_total",
			Help: "The total number of tournament simulations run.",
		}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "americano_export_failures_total",
			Help: "The total number of standings exports that failed.",
		}),
		ScheduleGenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "americano_schedule_generation_duration_seconds",
			Help:    "The duration of schedule generation.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "americano_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SchedulesGenerated,
		s.MatchesScored,
		s.SimulationsRun,
		s.ExportFailures,
		s.ScheduleGenerationDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSchedulesGenerated() {
	s.SchedulesGenerated.Inc()
}

func (s *Service) IncMatchesScored() {
	s.MatchesScored.Inc()
}

func (s *Service) IncSimulationsRun() {
	s.SimulationsRun.Inc()
}

func (s *Service) IncExportFailures() {
	s.ExportFailures.Inc()
}

func (s *Service) ObserveScheduleGeneration(duration float64) {
	s.ScheduleGenerationDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
