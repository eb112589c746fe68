package tournament_test

import (
	"math/rand"
	"testing"

	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstMatchBetween(t *testing.T, tt *tournament.Tournament, a, b *tournament.Team) *tournament.Match {
	t.Helper()

	for _, m := range tt.Matches {
		if (m.Team1 == a && m.Team2 == b) || (m.Team1 == b && m.Team2 == a) {
			return m
		}
	}
	t.Fatalf("no match between %s and %s", a.Label(), b.Label())
	return nil
}

func TestPlayMatchUpsetBonus(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)
	t1, t4 := tt.Teams[0], tt.Teams[3]
	m := firstMatchBetween(t, tt, t1, t4)

	// T4 (average ranking 4.0) beats T1 (1.0): 1 + 0.1*3 = 1.3 points.
	require.NoError(t, tt.PlayMatch(m, t4))

	assert.Equal(t, t4, m.Winner)
	assert.InDelta(t, 1.3, m.Score, 1e-9)
	assert.InDelta(t, 1.3, t4.Points, 1e-9)
	assert.Equal(t, 1, t4.MatchesWon)
	assert.Equal(t, 1, t4.MatchesPlayed)
	assert.Equal(t, 1, t1.MatchesPlayed)
	assert.Equal(t, 0, t1.MatchesWon)
	assert.Zero(t, t1.Points)
}

func TestPlayMatchFavouriteWinsBase(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)
	t1, t4 := tt.Teams[0], tt.Teams[3]
	m := firstMatchBetween(t, tt, t1, t4)

	require.NoError(t, tt.PlayMatch(m, t1))

	assert.InDelta(t, 1.0, m.Score, 1e-9)
	assert.InDelta(t, 1.0, t1.Points, 1e-9)
}

func TestPlayMatchFlatScoring(t *testing.T) {
	tt := tournament.New("flat", 2, tournament.WithFlatScoring())
	for _, team := range makeTeams(t, 4) {
		require.NoError(t, tt.AddTeam(team))
	}
	require.NoError(t, tt.GenerateSchedule(testStart, rand.New(rand.NewSource(1))))

	t1, t4 := tt.Teams[0], tt.Teams[3]
	m := firstMatchBetween(t, tt, t1, t4)
	require.NoError(t, tt.PlayMatch(m, t4))

	assert.InDelta(t, 1.0, m.Score, 1e-9)
}

func TestPlayMatchRejectsNonParticipant(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)
	m := tt.Matches[0]

	outsider := tournament.NewTeam(tournament.NewPlayer("X", 9), tournament.NewPlayer("Y", 10))
	err := tt.PlayMatch(m, outsider)

	var ierr *tournament.InvalidArgumentError
	require.ErrorAs(t, err, &ierr)

	// Rejected calls leave the match and counters untouched.
	assert.Nil(t, m.Winner)
	assert.Zero(t, m.Score)
	assert.Equal(t, 0, m.Team1.MatchesPlayed)
	assert.Equal(t, 0, m.Team2.MatchesPlayed)
}

// Playing the same match twice double counts everything. That is the
// documented contract: result entry is write-once and the engine does not
// guard against a second call.
func TestPlayMatchTwiceDoubleCounts(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)
	t1, t4 := tt.Teams[0], tt.Teams[3]
	m := firstMatchBetween(t, tt, t1, t4)

	require.NoError(t, tt.PlayMatch(m, t4))
	require.NoError(t, tt.PlayMatch(m, t4))

	assert.Equal(t, 2, t4.MatchesWon)
	assert.Equal(t, 2, t4.MatchesPlayed)
	assert.Equal(t, 2, t1.MatchesPlayed)
	assert.InDelta(t, 2.6, t4.Points, 1e-9)
}

// Score stays writable after PlayMatch so the result-entry layer can add the
// dominant-win adjustment.
func TestMatchScoreAdjustableAfterPlay(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)
	m := tt.Matches[0]

	require.NoError(t, tt.PlayMatch(m, m.Team1))
	m.Score += 0.5

	assert.InDelta(t, 1.5, m.Score, 1e-9)
}
