package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/clubsanmartin/americano/internal/config"
	"github.com/clubsanmartin/americano/internal/metrics"
	"github.com/clubsanmartin/americano/internal/store"
)

func NewServer(st store.TournamentStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          st,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	// Resume the active tournament if a snapshot exists.
	if t, err := st.LoadTournament(cfg.Tournament.Name, server.tournamentOptions()...); err == nil {
		server.tournament = t
		log.Info("Resumed tournament from snapshot", "tournament", t.Name, "matches", len(t.Matches))
	} else {
		log.Info("No tournament snapshot to resume", "tournament", cfg.Tournament.Name)
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/setup", Chain(s.SetupTournamentHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.ScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/result", Chain(s.ResultHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/prizes", Chain(s.PrizesHandler(), paramsMiddleware))
	s.Router.Handle("/simulate", Chain(s.SimulateHandler(), paramsMiddleware))
	s.Router.Handle("/export", Chain(s.ExportHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
