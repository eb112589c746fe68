package tournament

import "sort"

// StandingsRow is one team's line in the ranking table.
type StandingsRow struct {
	Team          string  `json:"team"`
	Points        float64 `json:"points"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	WinRate       float64 `json:"win_rate"`
}

// Prize categories awarded by Prizes.
const (
	PrizeChampion     = "Champion"
	PrizeRunnerUp     = "Runner-up"
	PrizeThirdPlace   = "Third Place"
	PrizeMostImproved = "Most Improved"
	PrizeBestUnderdog = "Best Underdog"
)

// Standings projects the current team state into a table sorted by points,
// highest first. The sort is stable, so tied teams keep their roster order.
// Reads are consistent with whatever matches have been scored so far.
func (t *Tournament) Standings() []StandingsRow {
	rows := make([]StandingsRow, 0, len(t.Teams))
	for _, team := range t.Teams {
		rows = append(rows, StandingsRow{
			Team:          team.Label(),
			Points:        team.Points,
			MatchesPlayed: team.MatchesPlayed,
			MatchesWon:    team.MatchesWon,
			WinRate:       team.WinRate(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}

// Prizes derives the award categories from the current state. The podium
// follows the points standings (stable on ties), Most Improved goes to the
// pre-tournament favourite (lowest average ranking) and Best Underdog to the
// team with the highest win rate, ties broken by roster order. Needs at
// least three teams on the roster.
func (t *Tournament) Prizes() (map[string]*Team, error) {
	if len(t.Teams) < 3 {
		return nil, &ValidationError{Reason: "prizes require at least three teams"}
	}

	ranked := t.rankedTeams()

	favourite := t.Teams[0]
	underdog := t.Teams[0]
	for _, team := range t.Teams[1:] {
		if team.AverageRanking < favourite.AverageRanking {
			favourite = team
		}
		if team.WinRate() > underdog.WinRate() {
			underdog = team
		}
	}

	return map[string]*Team{
		PrizeChampion:     ranked[0],
		PrizeRunnerUp:     ranked[1],
		PrizeThirdPlace:   ranked[2],
		PrizeMostImproved: favourite,
		PrizeBestUnderdog: underdog,
	}, nil
}

// rankedTeams returns the roster sorted by points, highest first, stable on
// ties so roster order decides.
func (t *Tournament) rankedTeams() []*Team {
	ranked := make([]*Team, len(t.Teams))
	copy(ranked, t.Teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}
