// Package roster builds tournament teams out of registered players and
// validates result entry before it reaches the scoring engine.
package roster

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/clubsanmartin/americano/internal/tournament"
)

// BalancedTeams sorts the players by ranking and pairs neighbours, so each
// team holds two players of similar strength. The player count must be even.
func BalancedTeams(players []*tournament.Player) ([]*tournament.Team, error) {
	if len(players) == 0 {
		return nil, &tournament.ValidationError{Reason: "no players registered"}
	}
	if len(players)%2 != 0 {
		return nil, &tournament.ValidationError{Reason: "player count must be even to form teams"}
	}

	sorted := make([]*tournament.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Ranking < sorted[j].Ranking
	})

	teams := make([]*tournament.Team, 0, len(sorted)/2)
	for i := 0; i < len(sorted); i += 2 {
		team := tournament.NewTeam(sorted[i], sorted[i+1])
		teams = append(teams, team)
		log.Debug("team formed", "team", team.Label(), "avg_ranking", team.AverageRanking)
	}
	return teams, nil
}

// MixedTeams shuffles the men and women independently and pairs one of each,
// producing the club's mixed doubles format. Both sides must be the same
// size.
func MixedTeams(men, women []*tournament.Player, rng *rand.Rand) ([]*tournament.Team, error) {
	if len(men) != len(women) {
		return nil, &tournament.ValidationError{
			Reason: fmt.Sprintf("mixed teams need equal counts, got %d men and %d women", len(men), len(women)),
		}
	}
	if len(men) == 0 {
		return nil, &tournament.ValidationError{Reason: "no players registered"}
	}

	shuffledMen := shuffled(men, rng)
	shuffledWomen := shuffled(women, rng)

	teams := make([]*tournament.Team, 0, len(shuffledMen))
	for i := range shuffledMen {
		teams = append(teams, tournament.NewTeam(shuffledMen[i], shuffledWomen[i]))
	}
	return teams, nil
}

func shuffled(players []*tournament.Player, rng *rand.Rand) []*tournament.Player {
	out := make([]*tournament.Player, len(players))
	copy(out, players)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ValidateGameScore checks a submitted game count: the winner needs at least
// six games and a margin of two.
func ValidateGameScore(winnerGames, loserGames int) error {
	if winnerGames < 0 || loserGames < 0 {
		return &tournament.InvalidArgumentError{Reason: "game counts cannot be negative"}
	}
	if winnerGames <= loserGames {
		return &tournament.InvalidArgumentError{Reason: "winner must have more games than the loser"}
	}
	if winnerGames < 6 {
		return &tournament.InvalidArgumentError{Reason: "winner must reach at least 6 games"}
	}
	if winnerGames-loserGames < 2 {
		return &tournament.InvalidArgumentError{Reason: "winning margin must be at least 2 games"}
	}
	return nil
}

// DominantWinBonus returns the flat bonus awarded on top of the match score
// for a win by four or more games. Applied by the result-entry layer, exactly
// once per match.
func DominantWinBonus(winnerGames, loserGames int) float64 {
	if winnerGames-loserGames >= 4 {
		return 0.5
	}
	return 0
}
