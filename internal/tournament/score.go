package tournament

// PlayMatch records the outcome of a match. The winner must be one of the
// match's two teams. The winner's match score is computed, its counters and
// points are updated, and both teams' played counts are incremented.
//
// PlayMatch must be called at most once per match: a second call double
// counts every counter. Validation is repeatable but the effects are not.
func (t *Tournament) PlayMatch(m *Match, winner *Team) error {
	if !m.HasTeam(winner) {
		return &InvalidArgumentError{Reason: "winning team is not a participant of this match"}
	}

	m.Winner = winner
	m.Score = t.computeScore(m)

	winner.MatchesWon++
	winner.Points += m.Score
	m.Team1.MatchesPlayed++
	m.Team2.MatchesPlayed++

	return nil
}

// computeScore values a played match. The base is 1.0. When the winner's
// average ranking is numerically higher (i.e. the nominally weaker team beat
// the stronger one) the base is multiplied by 1 + 0.1 per ranking point of
// the gap, rewarding upsets proportionally. Flat-scoring tournaments always
// return the base.
func (t *Tournament) computeScore(m *Match) float64 {
	const basePoints = 1.0

	if t.flatScoring {
		return basePoints
	}

	loser := m.Team1
	if m.Winner == m.Team1 {
		loser = m.Team2
	}

	if loser.AverageRanking < m.Winner.AverageRanking {
		rankingDifference := m.Winner.AverageRanking - loser.AverageRanking
		return basePoints * (1 + 0.1*rankingDifference)
	}
	return basePoints
}
