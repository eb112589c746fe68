package http

import (
	"net/http"
	"sync"

	"github.com/clubsanmartin/americano/internal/config"
	"github.com/clubsanmartin/americano/internal/metrics"
	"github.com/clubsanmartin/americano/internal/store"
	"github.com/clubsanmartin/americano/internal/tournament"
)

type Server struct {
	Store          store.TournamentStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux

	// The active tournament is driven by one logical caller at a time; the
	// mutex serialises result entry against reads.
	mu         sync.Mutex
	tournament *tournament.Tournament
}

// matchJSON is the wire shape of a scheduled match.
type matchJSON struct {
	ID     string  `json:"id"`
	Court  int     `json:"court"`
	Team1  string  `json:"team1"`
	Team2  string  `json:"team2"`
	Winner string  `json:"winner,omitempty"`
	Score  float64 `json:"score"`
}

// roundJSON is one time slot of the schedule.
type roundJSON struct {
	Round     int         `json:"round"`
	StartTime string      `json:"start_time"`
	Matches   []matchJSON `json:"matches"`
}

type scheduleResponse struct {
	Tournament string      `json:"tournament"`
	NumCourts  int         `json:"num_courts"`
	Rounds     []roundJSON `json:"rounds"`
}

type setupResponse struct {
	Tournament string `json:"tournament"`
	Teams      int    `json:"teams"`
	Rounds     int    `json:"rounds"`
	Matches    int    `json:"matches"`
}

type resultResponse struct {
	Match  string  `json:"match"`
	Winner string  `json:"winner"`
	Score  float64 `json:"score"`
}

type prizeJSON struct {
	Team           string  `json:"team"`
	AverageRanking float64 `json:"average_ranking"`
	Points         float64 `json:"points"`
}
