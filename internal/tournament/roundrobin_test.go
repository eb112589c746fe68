package tournament_test

import (
	"fmt"
	"testing"

	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTeams builds n teams where team i (1-based) has an average ranking of
// exactly i, so scoring expectations stay easy to read.
func makeTeams(t *testing.T, n int) []*tournament.Team {
	t.Helper()

	teams := make([]*tournament.Team, 0, n)
	for i := 1; i <= n; i++ {
		p1 := tournament.NewPlayer(fmt.Sprintf("P%d-a", i), i)
		p2 := tournament.NewPlayer(fmt.Sprintf("P%d-b", i), i)
		teams = append(teams, tournament.NewTeam(p1, p2))
	}
	return teams
}

func pairKey(p tournament.Pairing) [2]string {
	a, b := p.Team1.ID, p.Team2.ID
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func TestGenerateRoundRobinGoldenFourTeams(t *testing.T) {
	teams := makeTeams(t, 4)
	t1, t2, t3, t4 := teams[0], teams[1], teams[2], teams[3]

	rounds, err := tournament.GenerateRoundRobin(teams)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	// Round 1: (T1,T4), (T2,T3). After rotating the last team to position 1,
	// round 2 pairs (T1,T3), (T4,T2) and round 3 pairs (T1,T2), (T3,T4).
	assert.Equal(t, tournament.Pairing{Team1: t1, Team2: t4}, rounds[0][0])
	assert.Equal(t, tournament.Pairing{Team1: t2, Team2: t3}, rounds[0][1])

	assert.Equal(t, pairKey(tournament.Pairing{Team1: t1, Team2: t3}), pairKey(rounds[1][0]))
	assert.Equal(t, pairKey(tournament.Pairing{Team1: t2, Team2: t4}), pairKey(rounds[1][1]))

	assert.Equal(t, pairKey(tournament.Pairing{Team1: t1, Team2: t2}), pairKey(rounds[2][0]))
	assert.Equal(t, pairKey(tournament.Pairing{Team1: t3, Team2: t4}), pairKey(rounds[2][1]))
}

func TestGenerateRoundRobinEveryPairExactlyOnce(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8, 12, 20} {
		t.Run(fmt.Sprintf("%d_teams", n), func(t *testing.T) {
			teams := makeTeams(t, n)

			rounds, err := tournament.GenerateRoundRobin(teams)
			require.NoError(t, err)
			require.Len(t, rounds, n-1)

			seen := make(map[[2]string]int)
			for _, round := range rounds {
				require.Len(t, round, n/2)
				for _, p := range round {
					require.NotEqual(t, p.Team1.ID, p.Team2.ID, "team paired with itself")
					seen[pairKey(p)]++
				}
			}

			assert.Len(t, seen, n*(n-1)/2)
			for key, count := range seen {
				assert.Equal(t, 1, count, "pair %v generated more than once", key)
			}
		})
	}
}

func TestGenerateRoundRobinIsDeterministic(t *testing.T) {
	teams := makeTeams(t, 8)

	first, err := tournament.GenerateRoundRobin(teams)
	require.NoError(t, err)
	second, err := tournament.GenerateRoundRobin(teams)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRoundRobinRejectsOddRoster(t *testing.T) {
	teams := makeTeams(t, 5)

	_, err := tournament.GenerateRoundRobin(teams)
	require.Error(t, err)

	var verr *tournament.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGenerateRoundRobinRejectsEmptyRoster(t *testing.T) {
	_, err := tournament.GenerateRoundRobin(nil)
	require.Error(t, err)

	var verr *tournament.ValidationError
	assert.ErrorAs(t, err, &verr)
}
