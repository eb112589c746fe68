package tournament

import "slices"

// Pairing is a single generated team matchup before it has been bound to a
// court and time slot.
type Pairing struct {
	Team1 *Team
	Team2 *Team
}

// GenerateRoundRobin produces the rounds of a complete single round robin
// using the circle method: the team in position 0 stays fixed while the rest
// of the circle rotates one step between rounds. For an even roster of N
// teams it yields N-1 rounds of N/2 pairings each, with every unordered pair
// of teams appearing exactly once.
//
// Odd rosters are rejected; byes are not supported.
func GenerateRoundRobin(teams []*Team) ([][]Pairing, error) {
	if len(teams) == 0 {
		return nil, &ValidationError{Reason: "no teams registered"}
	}
	if len(teams)%2 != 0 {
		return nil, &ValidationError{Reason: "round robin requires an even number of teams"}
	}

	circle := slices.Clone(teams)
	n := len(circle)

	rounds := make([][]Pairing, 0, n-1)
	for range n - 1 {
		round := make([]Pairing, 0, n/2)
		for i := range n / 2 {
			round = append(round, Pairing{Team1: circle[i], Team2: circle[n-1-i]})
		}
		rounds = append(rounds, round)
		circle = rotate(circle)
	}

	return rounds, nil
}

// rotate moves the last element of the circle to position 1, keeping the
// fixed team in position 0.
func rotate(circle []*Team) []*Team {
	if len(circle) <= 2 {
		return circle
	}
	rotated := make([]*Team, 0, len(circle))
	rotated = append(rotated, circle[0], circle[len(circle)-1])
	rotated = append(rotated, circle[1:len(circle)-1]...)
	return rotated
}
