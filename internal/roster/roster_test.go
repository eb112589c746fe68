package roster_test

import (
	"math/rand"
	"testing"

	"github.com/clubsanmartin/americano/internal/roster"
	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalancedTeamsPairsNeighboursByRanking(t *testing.T) {
	players := []*tournament.Player{
		tournament.NewPlayer("D", 4),
		tournament.NewPlayer("A", 1),
		tournament.NewPlayer("C", 3),
		tournament.NewPlayer("B", 2),
	}

	teams, err := roster.BalancedTeams(players)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "A & B", teams[0].Label())
	assert.InDelta(t, 1.5, teams[0].AverageRanking, 1e-9)
	assert.Equal(t, "C & D", teams[1].Label())
	assert.InDelta(t, 3.5, teams[1].AverageRanking, 1e-9)
}

func TestBalancedTeamsRejectsOddCount(t *testing.T) {
	players := []*tournament.Player{
		tournament.NewPlayer("A", 1),
		tournament.NewPlayer("B", 2),
		tournament.NewPlayer("C", 3),
	}

	_, err := roster.BalancedTeams(players)
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBalancedTeamsRejectsEmpty(t *testing.T) {
	_, err := roster.BalancedTeams(nil)
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestMixedTeamsPairsAcrossGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	men, women := roster.DemoPlayers(rng)

	teams, err := roster.MixedTeams(men, women, rng)
	require.NoError(t, err)
	require.Len(t, teams, 20)

	for _, team := range teams {
		assert.Equal(t, tournament.GenderMale, team.Players[0].Gender)
		assert.Equal(t, tournament.GenderFemale, team.Players[1].Gender)
	}
}

func TestMixedTeamsRejectsUnevenGroups(t *testing.T) {
	men := []*tournament.Player{tournament.NewPlayer("A", 1)}

	_, err := roster.MixedTeams(men, nil, rand.New(rand.NewSource(1)))
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDemoPlayersRankingRanges(t *testing.T) {
	men, women := roster.DemoPlayers(rand.New(rand.NewSource(5)))
	require.Len(t, men, 20)
	require.Len(t, women, 20)

	seen := make(map[int]bool)
	for _, p := range men {
		assert.GreaterOrEqual(t, p.Ranking, 1)
		assert.LessOrEqual(t, p.Ranking, 20)
		seen[p.Ranking] = true
	}
	for _, p := range women {
		assert.GreaterOrEqual(t, p.Ranking, 21)
		assert.LessOrEqual(t, p.Ranking, 40)
		seen[p.Ranking] = true
	}
	assert.Len(t, seen, 40)
}

func TestValidateGameScore(t *testing.T) {
	testCases := []struct {
		name        string
		winner      int
		loser       int
		expectError bool
	}{
		{"regular win", 6, 3, false},
		{"tight win", 7, 5, false},
		{"bagel", 6, 0, false},
		{"margin too small", 6, 5, true},
		{"winner short of six", 5, 2, true},
		{"loser ahead", 3, 6, true},
		{"equal games", 6, 6, true},
		{"negative games", -1, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := roster.ValidateGameScore(tc.winner, tc.loser)
			if tc.expectError {
				var ierr *tournament.InvalidArgumentError
				require.ErrorAs(t, err, &ierr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDominantWinBonus(t *testing.T) {
	assert.InDelta(t, 0.5, roster.DominantWinBonus(6, 2), 1e-9)
	assert.InDelta(t, 0.5, roster.DominantWinBonus(6, 0), 1e-9)
	assert.Zero(t, roster.DominantWinBonus(6, 3))
	assert.Zero(t, roster.DominantWinBonus(7, 5))
}
