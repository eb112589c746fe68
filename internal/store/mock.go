package store

import (
	"fmt"
	"sync"

	"github.com/clubsanmartin/americano/internal/tournament"
)

// MockStore is a mock implementation of the TournamentStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayersFunc  func(players []*tournament.Player) error
	GetAllPlayersFunc  func() ([]*tournament.Player, error)
	SaveTournamentFunc func(t *tournament.Tournament) error
	LoadTournamentFunc func(name string, opts ...tournament.Option) (*tournament.Tournament, error)
	SaveResultFunc     func(m *tournament.Match) error
	ClearFunc          func() error

	// Call records
	UpsertPlayersCalls  [][]*tournament.Player
	SaveTournamentCalls []*tournament.Tournament
	LoadTournamentCalls []string
	SaveResultCalls     []*tournament.Match
	ClearCalls          int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertPlayers(players []*tournament.Player) error {
	m.mu.Lock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetAllPlayers() ([]*tournament.Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SaveTournament(t *tournament.Tournament) error {
	m.mu.Lock()
	m.SaveTournamentCalls = append(m.SaveTournamentCalls, t)
	m.mu.Unlock()
	if m.SaveTournamentFunc != nil {
		return m.SaveTournamentFunc(t)
	}
	return nil
}

func (m *MockStore) LoadTournament(name string, opts ...tournament.Option) (*tournament.Tournament, error) {
	m.mu.Lock()
	m.LoadTournamentCalls = append(m.LoadTournamentCalls, name)
	m.mu.Unlock()
	if m.LoadTournamentFunc != nil {
		return m.LoadTournamentFunc(name, opts...)
	}
	return nil, fmt.Errorf("tournament not found: %s", name)
}

func (m *MockStore) SaveResult(match *tournament.Match) error {
	m.mu.Lock()
	m.SaveResultCalls = append(m.SaveResultCalls, match)
	m.mu.Unlock()
	if m.SaveResultFunc != nil {
		return m.SaveResultFunc(match)
	}
	return nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
