package store

import "github.com/clubsanmartin/americano/internal/tournament"

// TournamentStore persists engine state so it can be reconstructed
// losslessly across restarts. The engine itself never touches the store;
// callers save after mutating and load on startup.
type TournamentStore interface {
	UpsertPlayers(players []*tournament.Player) error
	GetAllPlayers() ([]*tournament.Player, error)
	SaveTournament(t *tournament.Tournament) error
	LoadTournament(name string, opts ...tournament.Option) (*tournament.Tournament, error)
	SaveResult(m *tournament.Match) error
	Clear() error
}
