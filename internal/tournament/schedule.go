package tournament

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// GenerateSchedule lays the round-robin rounds out onto courts and one-hour
// time slots, starting at start. Pairings within a round are shuffled with
// rng before courts are assigned, so court draw is random but reproducible
// under a seeded source; a nil rng falls back to a time-seeded one.
//
// If a round holds more pairings than there are courts, the overflow pairings
// are dropped from the tournament entirely: callers must provision
// numCourts >= teamCount/2 or accept losing matches. Dropped pairings are
// logged, never scheduled and never scored.
//
// The tournament is left untouched on error.
func (t *Tournament) GenerateSchedule(start time.Time, rng *rand.Rand) error {
	if t.scheduled {
		return &ValidationError{Reason: "schedule has already been generated"}
	}

	rounds, err := GenerateRoundRobin(t.Teams)
	if err != nil {
		return err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t.StartTime = start
	currentTime := start

	for roundNum, round := range rounds {
		rng.Shuffle(len(round), func(i, j int) {
			round[i], round[j] = round[j], round[i]
		})

		courts := min(t.NumCourts, len(round))
		if courts < len(round) {
			log.Warn("not enough courts, dropping pairings from round",
				"round", roundNum+1, "pairings", len(round), "courts", t.NumCourts,
				"dropped", len(round)-courts)
		}

		slot := make([]*Match, 0, courts)
		for court := range courts {
			pairing := round[court]
			match := &Match{
				ID:        uuid.NewString(),
				Team1:     pairing.Team1,
				Team2:     pairing.Team2,
				Court:     court,
				StartTime: currentTime,
				EndTime:   currentTime.Add(t.slotDuration),
			}
			slot = append(slot, match)
			t.Matches = append(t.Matches, match)
		}

		t.Schedule[currentTime] = slot
		t.SlotTimes = append(t.SlotTimes, currentTime)
		currentTime = currentTime.Add(t.slotDuration)
	}

	t.EndTime = currentTime
	t.scheduled = true

	log.Info("schedule generated", "tournament", t.Name, "teams", len(t.Teams),
		"rounds", len(rounds), "matches", len(t.Matches))
	return nil
}
