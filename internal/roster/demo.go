package roster

import (
	"math/rand"

	"github.com/clubsanmartin/americano/internal/tournament"
)

var demoMaleNames = []string{
	"Juan", "Carlos", "Pedro", "Miguel", "David", "Jorge", "Pablo", "Antonio",
	"Fernando", "Javier", "Manuel", "José", "Francisco", "Ángel", "Alberto", "Sergio",
	"Diego", "Raúl", "Rubén", "Adrián",
}

var demoFemaleNames = []string{
	"María", "Ana", "Laura", "Sofía", "Elena", "Marta", "Lucía", "Isabel",
	"Carmen", "Rosa", "Teresa", "Patricia", "Silvia", "Cristina", "Nuria", "Marina",
	"Beatriz", "Victoria", "Claudia", "Natalia",
}

// DemoPlayers generates the club's demo roster: 20 men ranked 1-20 and 20
// women ranked 21-40, rankings shuffled within each group.
func DemoPlayers(rng *rand.Rand) (men, women []*tournament.Player) {
	maleRankings := shuffledRankings(1, len(demoMaleNames), rng)
	femaleRankings := shuffledRankings(len(demoMaleNames)+1, len(demoFemaleNames), rng)

	for i, name := range demoMaleNames {
		p := tournament.NewPlayer(name, maleRankings[i])
		p.Gender = tournament.GenderMale
		men = append(men, p)
	}
	for i, name := range demoFemaleNames {
		p := tournament.NewPlayer(name, femaleRankings[i])
		p.Gender = tournament.GenderFemale
		women = append(women, p)
	}
	return men, women
}

func shuffledRankings(start, count int, rng *rand.Rand) []int {
	rankings := make([]int, count)
	for i := range rankings {
		rankings[i] = start + i
	}
	rng.Shuffle(len(rankings), func(i, j int) {
		rankings[i], rankings[j] = rankings[j], rankings[i]
	})
	return rankings
}
