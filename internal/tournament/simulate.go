package tournament

import "math/rand"

// Simulate plays every unplayed match with a ranking-biased coin flip: the
// better-ranked team's win probability grows by 5% per point of average
// ranking gap. Useful for demos and load seeding; already-played matches are
// left alone.
func (t *Tournament) Simulate(rng *rand.Rand) error {
	for _, m := range t.Matches {
		if m.Winner != nil {
			continue
		}
		team1Prob := 0.5 + 0.05*(m.Team2.AverageRanking-m.Team1.AverageRanking)
		winner := m.Team2
		if rng.Float64() < team1Prob {
			winner = m.Team1
		}
		if err := t.PlayMatch(m, winner); err != nil {
			return err
		}
	}
	return nil
}
