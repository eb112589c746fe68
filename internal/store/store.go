package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/vmihailenco/msgpack/v5"
)

// store handles all database operations for tournament state.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new TournamentStore backed by the given database.
func New(db *sql.DB) TournamentStore {
	return &store{db: db}
}

// UpsertPlayers inserts or updates the given players.
func (s *store) UpsertPlayers(players []*tournament.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, ranking, gender)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			ranking = excluded.ranking,
			gender = excluded.gender;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare player upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.Ranking, string(p.Gender)); err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// GetAllPlayers returns every registered player, best ranking first.
func (s *store) GetAllPlayers() ([]*tournament.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, ranking, gender FROM players ORDER BY ranking ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []*tournament.Player
	for rows.Next() {
		var p tournament.Player
		var gender string
		if err := rows.Scan(&p.ID, &p.Name, &p.Ranking, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		p.Gender = tournament.Gender(gender)
		players = append(players, &p)
	}
	return players, rows.Err()
}

// SaveTournament persists the full tournament snapshot: the metadata row,
// the roster in order, and every scheduled match. Previous team and match
// rows are replaced so the database mirrors the in-memory state exactly.
func (s *store) SaveTournament(t *tournament.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM matches`); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM teams`); err != nil {
		return fmt.Errorf("failed to clear teams: %w", err)
	}

	for _, team := range t.Teams {
		for _, p := range team.Players {
			_, err := tx.Exec(`
				INSERT INTO players (id, name, ranking, gender)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					ranking = excluded.ranking,
					gender = excluded.gender;
			`, p.ID, p.Name, p.Ranking, string(p.Gender))
			if err != nil {
				return fmt.Errorf("failed to upsert player %s: %w", p.Name, err)
			}
		}
	}

	teamStmt, err := tx.Prepare(`
		INSERT INTO teams (id, roster_position, player1_id, player2_id, average_ranking, points, matches_played, matches_won)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare team insert: %w", err)
	}
	defer teamStmt.Close()

	for pos, team := range t.Teams {
		_, err := teamStmt.Exec(team.ID, pos, team.Players[0].ID, team.Players[1].ID,
			team.AverageRanking, team.Points, team.MatchesPlayed, team.MatchesWon)
		if err != nil {
			return fmt.Errorf("failed to insert team %s: %w", team.Label(), err)
		}
	}

	matchStmt, err := tx.Prepare(`
		INSERT INTO matches (id, team1_id, team2_id, court, start_time, end_time, winner_id, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare match insert: %w", err)
	}
	defer matchStmt.Close()

	for _, m := range t.Matches {
		var winnerID *string
		if m.Winner != nil {
			winnerID = &m.Winner.ID
		}
		_, err := matchStmt.Exec(m.ID, m.Team1.ID, m.Team2.ID, m.Court,
			m.StartTime.Unix(), m.EndTime.Unix(), winnerID, m.Score)
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", m.ID, err)
		}
	}

	slots := make([]int64, 0, len(t.SlotTimes))
	for _, slot := range t.SlotTimes {
		slots = append(slots, slot.Unix())
	}
	slotsBlob, err := msgpack.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal slot times: %w", err)
	}

	scheduled := 0
	if t.Scheduled() {
		scheduled = 1
	}
	_, err = tx.Exec(`
		INSERT INTO tournaments (name, num_courts, start_time, end_time, scheduled, slots_blob)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			num_courts = excluded.num_courts,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			scheduled = excluded.scheduled,
			slots_blob = excluded.slots_blob;
	`, t.Name, t.NumCourts, t.StartTime.Unix(), t.EndTime.Unix(), scheduled, slotsBlob)
	if err != nil {
		return fmt.Errorf("failed to upsert tournament %s: %w", t.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tournament snapshot: %w", err)
	}

	log.Info("Saved tournament snapshot", "tournament", t.Name, "teams", len(t.Teams), "matches", len(t.Matches))
	return nil
}

// LoadTournament reconstructs the engine state for the named tournament.
func (s *store) LoadTournament(name string, opts ...tournament.Option) (*tournament.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var numCourts, scheduled int
	var startUnix, endUnix int64
	var slotsBlob []byte
	err := s.db.QueryRow(`
		SELECT num_courts, start_time, end_time, scheduled, slots_blob
		FROM tournaments WHERE name = ?
	`, name).Scan(&numCourts, &startUnix, &endUnix, &scheduled, &slotsBlob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tournament not found: %s", name)
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", name, err)
	}

	players, err := s.playersByID()
	if err != nil {
		return nil, err
	}

	teams, teamsByID, err := s.loadTeams(players)
	if err != nil {
		return nil, err
	}

	matches, err := s.loadMatches(teamsByID)
	if err != nil {
		return nil, err
	}

	t := tournament.Restore(name, numCourts, teams, matches,
		time.Unix(startUnix, 0).UTC(), time.Unix(endUnix, 0).UTC(), opts...)

	var slots []int64
	if len(slotsBlob) > 0 {
		if err := msgpack.Unmarshal(slotsBlob, &slots); err != nil {
			log.Warn("Failed to unmarshal slot times blob", "error", err)
		} else if len(slots) != len(t.SlotTimes) {
			log.Warn("Slot count drift between snapshot and matches",
				"recorded", len(slots), "reconstructed", len(t.SlotTimes))
		}
	}

	return t, nil
}

func (s *store) playersByID() (map[string]*tournament.Player, error) {
	rows, err := s.db.Query(`SELECT id, name, ranking, gender FROM players`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make(map[string]*tournament.Player)
	for rows.Next() {
		var p tournament.Player
		var gender string
		if err := rows.Scan(&p.ID, &p.Name, &p.Ranking, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		p.Gender = tournament.Gender(gender)
		players[p.ID] = &p
	}
	return players, rows.Err()
}

func (s *store) loadTeams(players map[string]*tournament.Player) ([]*tournament.Team, map[string]*tournament.Team, error) {
	rows, err := s.db.Query(`
		SELECT id, player1_id, player2_id, average_ranking, points, matches_played, matches_won
		FROM teams ORDER BY roster_position ASC
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []*tournament.Team
	teamsByID := make(map[string]*tournament.Team)
	for rows.Next() {
		var team tournament.Team
		var p1ID, p2ID string
		if err := rows.Scan(&team.ID, &p1ID, &p2ID, &team.AverageRanking,
			&team.Points, &team.MatchesPlayed, &team.MatchesWon); err != nil {
			return nil, nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		p1, ok1 := players[p1ID]
		p2, ok2 := players[p2ID]
		if !ok1 || !ok2 {
			return nil, nil, fmt.Errorf("team %s references unknown players", team.ID)
		}
		team.Players = [2]*tournament.Player{p1, p2}
		teams = append(teams, &team)
		teamsByID[team.ID] = &team
	}
	return teams, teamsByID, rows.Err()
}

func (s *store) loadMatches(teams map[string]*tournament.Team) ([]*tournament.Match, error) {
	rows, err := s.db.Query(`
		SELECT id, team1_id, team2_id, court, start_time, end_time, winner_id, score
		FROM matches ORDER BY start_time ASC, court ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*tournament.Match
	for rows.Next() {
		var m tournament.Match
		var t1ID, t2ID string
		var winnerID sql.NullString
		var startUnix, endUnix int64
		if err := rows.Scan(&m.ID, &t1ID, &t2ID, &m.Court, &startUnix, &endUnix, &winnerID, &m.Score); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		t1, ok1 := teams[t1ID]
		t2, ok2 := teams[t2ID]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("match %s references unknown teams", m.ID)
		}
		m.Team1 = t1
		m.Team2 = t2
		m.StartTime = time.Unix(startUnix, 0).UTC()
		m.EndTime = time.Unix(endUnix, 0).UTC()
		if winnerID.Valid {
			winner, ok := teams[winnerID.String]
			if !ok {
				return nil, fmt.Errorf("match %s references unknown winner", m.ID)
			}
			m.Winner = winner
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

// SaveResult persists a played match and the updated counters of both
// participants.
func (s *store) SaveResult(m *tournament.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Winner == nil {
		return fmt.Errorf("match %s has no winner to save", m.ID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE matches SET winner_id = ?, score = ? WHERE id = ?`,
		m.Winner.ID, m.Score, m.ID); err != nil {
		return fmt.Errorf("failed to update match %s: %w", m.ID, err)
	}

	for _, team := range []*tournament.Team{m.Team1, m.Team2} {
		if _, err := tx.Exec(`
			UPDATE teams SET points = ?, matches_played = ?, matches_won = ? WHERE id = ?
		`, team.Points, team.MatchesPlayed, team.MatchesWon, team.ID); err != nil {
			return fmt.Errorf("failed to update team %s: %w", team.Label(), err)
		}
	}

	return tx.Commit()
}

// Clear wipes all tournament state.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"matches", "teams", "tournaments", "players"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info("Store cleared")
	return nil
}
