package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clubsanmartin/americano/internal/export"
	"github.com/clubsanmartin/americano/internal/roster"
	"github.com/clubsanmartin/americano/internal/tournament"
)

// tournamentOptions translates the configured defaults into engine options.
func (s *Server) tournamentOptions() []tournament.Option {
	var opts []tournament.Option
	if s.Cfg.Tournament.FlatScoring {
		opts = append(opts, tournament.WithFlatScoring())
	}
	if s.Cfg.Tournament.SlotMinutes > 0 {
		opts = append(opts, tournament.WithSlotDuration(time.Duration(s.Cfg.Tournament.SlotMinutes)*time.Minute))
	}
	return opts
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// SetupTournamentHandler builds the roster into teams, generates the
// round-robin schedule and persists the snapshot. Query parameters:
// 'format' (balanced|mixed, default balanced), 'start' (RFC3339, default
// next 9:00), 'seed' (int64, for a reproducible draw).
func (s *Server) SetupTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		players, err := s.Store.GetAllPlayers()
		if err != nil {
			log.Error("Failed to load players", "error", err)
			http.Error(w, "Failed to load players", http.StatusInternalServerError)
			return
		}
		if len(players) == 0 {
			http.Error(w, "No players registered; run the seeder or register players first", http.StatusConflict)
			return
		}

		rng := rngFromRequest(r)

		var teams []*tournament.Team
		switch format := r.URL.Query().Get("format"); format {
		case "", "balanced":
			teams, err = roster.BalancedTeams(players)
		case "mixed":
			var men, women []*tournament.Player
			for _, p := range players {
				switch p.Gender {
				case tournament.GenderFemale:
					women = append(women, p)
				default:
					men = append(men, p)
				}
			}
			teams, err = roster.MixedTeams(men, women, rng)
		default:
			http.Error(w, fmt.Sprintf("Unknown team format %q", format), http.StatusBadRequest)
			return
		}
		if err != nil {
			writeEngineError(w, err)
			return
		}

		start, err := startFromRequest(r)
		if err != nil {
			http.Error(w, "Invalid 'start' parameter, want RFC3339", http.StatusBadRequest)
			return
		}

		t := tournament.New(s.Cfg.Tournament.Name, s.Cfg.Tournament.NumCourts, s.tournamentOptions()...)
		for _, team := range teams {
			if err := t.AddTeam(team); err != nil {
				writeEngineError(w, err)
				return
			}
		}

		genStart := time.Now()
		if err := t.GenerateSchedule(start, rng); err != nil {
			writeEngineError(w, err)
			return
		}
		s.Metrics.ObserveScheduleGeneration(time.Since(genStart).Seconds())

		if isDryRun {
			log.Info("[Dry Run] Would have installed new schedule", "teams", len(teams), "matches", len(t.Matches))
		} else {
			if err := s.Store.SaveTournament(t); err != nil {
				log.Error("Failed to save tournament", "error", err)
				http.Error(w, "Failed to save tournament", http.StatusInternalServerError)
				return
			}
			s.mu.Lock()
			s.tournament = t
			s.mu.Unlock()
			s.Metrics.IncSchedulesGenerated()
		}

		writeJSON(w, setupResponse{
			Tournament: t.Name,
			Teams:      len(t.Teams),
			Rounds:     len(t.SlotTimes),
			Matches:    len(t.Matches),
		})
	}
}

func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		resp := scheduleResponse{Tournament: t.Name, NumCourts: t.NumCourts}
		for i, slot := range t.SlotTimes {
			round := roundJSON{Round: i + 1, StartTime: slot.Format(time.RFC3339)}
			for _, m := range t.Schedule[slot] {
				round.Matches = append(round.Matches, matchToJSON(m))
			}
			resp.Rounds = append(resp.Rounds, round)
		}
		writeJSON(w, resp)
	}
}

// ResultHandler records a match outcome. Query parameters: 'match' and
// 'winner' (IDs), plus 'winner_games' and 'loser_games'. A margin of four
// games or more earns the dominant-win bonus on top of the match score.
// Results are write-once; submitting the same match twice is rejected.
func (s *Server) ResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		isDryRun := isDryRunFromContext(r)

		s.mu.Lock()
		defer s.mu.Unlock()

		m := t.MatchByID(r.URL.Query().Get("match"))
		if m == nil {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		if m.Winner != nil {
			http.Error(w, "Match already has a result", http.StatusConflict)
			return
		}
		winner := t.TeamByID(r.URL.Query().Get("winner"))
		if winner == nil {
			http.Error(w, "Winning team not found", http.StatusNotFound)
			return
		}

		winnerGames, loserGames, err := gamesFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := roster.ValidateGameScore(winnerGames, loserGames); err != nil {
			writeEngineError(w, err)
			return
		}
		if !m.HasTeam(winner) {
			http.Error(w, "Winning team is not a participant of this match", http.StatusBadRequest)
			return
		}

		if isDryRun {
			log.Info("[Dry Run] Result is valid, not recording", "match", m.ID, "winner", winner.Label())
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "Result is valid.")
			return
		}

		if err := t.PlayMatch(m, winner); err != nil {
			writeEngineError(w, err)
			return
		}
		// The dominant-win bonus is a post-hoc adjustment on the match score,
		// applied exactly once, right here.
		m.Score += roster.DominantWinBonus(winnerGames, loserGames)

		if err := s.Store.SaveResult(m); err != nil {
			log.Error("Failed to save result", "error", err, "match", m.ID)
			http.Error(w, "Failed to save result", http.StatusInternalServerError)
			return
		}
		s.Metrics.IncMatchesScored()

		log.Info("Result recorded", "match", m.ID, "winner", winner.Label(), "score", m.Score)
		writeJSON(w, resultResponse{Match: m.ID, Winner: winner.Label(), Score: m.Score})
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, t.Standings())
	}
}

func (s *Server) PrizesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		prizes, err := t.Prizes()
		if err != nil {
			writeEngineError(w, err)
			return
		}
		resp := make(map[string]prizeJSON, len(prizes))
		for category, team := range prizes {
			resp[category] = prizeJSON{
				Team:           team.Label(),
				AverageRanking: team.AverageRanking,
				Points:         team.Points,
			}
		}
		writeJSON(w, resp)
	}
}

// SimulateHandler plays out every remaining match with ranking-biased random
// results. Accepts 'seed' for reproducibility.
func (s *Server) SimulateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := t.Simulate(rngFromRequest(r)); err != nil {
			writeEngineError(w, err)
			return
		}
		if err := s.Store.SaveTournament(t); err != nil {
			log.Error("Failed to save simulated tournament", "error", err)
			http.Error(w, "Failed to save simulation", http.StatusInternalServerError)
			return
		}
		s.Metrics.IncSimulationsRun()

		writeJSON(w, t.Standings())
	}
}

func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.activeTournament(w)
		if !ok {
			return
		}
		s.mu.Lock()
		rows := t.Standings()
		name := t.Name
		s.mu.Unlock()

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(name)))
		if err := export.WriteStandings(w, rows); err != nil {
			s.Metrics.IncExportFailures()
			log.Error("Failed to write standings CSV", "error", err)
		}
	}
}

func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear tournament state")
		if err := s.Store.Clear(); err != nil {
			log.Error("Failed to clear store", "error", err)
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			return
		}
		s.mu.Lock()
		s.tournament = nil
		s.mu.Unlock()

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}

// activeTournament fetches the current tournament, writing a 409 when none
// has been set up yet.
func (s *Server) activeTournament(w http.ResponseWriter) (*tournament.Tournament, bool) {
	s.mu.Lock()
	t := s.tournament
	s.mu.Unlock()
	if t == nil {
		http.Error(w, "No tournament has been set up yet", http.StatusConflict)
		return nil, false
	}
	return t, true
}

func matchToJSON(m *tournament.Match) matchJSON {
	out := matchJSON{
		ID:    m.ID,
		Court: m.Court,
		Team1: m.Team1.Label(),
		Team2: m.Team2.Label(),
		Score: m.Score,
	}
	if m.Winner != nil {
		out.Winner = m.Winner.Label()
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}

// writeEngineError maps engine error types onto HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *tournament.ValidationError
	var ierr *tournament.InvalidArgumentError
	switch {
	case errors.As(err, &verr), errors.As(err, &ierr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func rngFromRequest(r *http.Request) *rand.Rand {
	seedStr := r.URL.Query().Get("seed")
	if seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			return rand.New(rand.NewSource(seed))
		}
		log.Warn("Invalid 'seed' parameter, using a random seed", "seed", seedStr)
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func startFromRequest(r *http.Request) (time.Time, error) {
	startStr := r.URL.Query().Get("start")
	if startStr == "" {
		// Default to tomorrow 9:00 local time.
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day()+1, 9, 0, 0, 0, now.Location()), nil
	}
	return time.Parse(time.RFC3339, startStr)
}

func gamesFromRequest(r *http.Request) (winnerGames, loserGames int, err error) {
	winnerGames, err = strconv.Atoi(r.URL.Query().Get("winner_games"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'winner_games' parameter")
	}
	loserGames, err = strconv.Atoi(r.URL.Query().Get("loser_games"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'loser_games' parameter")
	}
	return winnerGames, loserGames, nil
}
