package tournament_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, time.June, 6, 9, 0, 0, 0, time.UTC)

func newScheduled(t *testing.T, numTeams, numCourts int, seed int64) *tournament.Tournament {
	t.Helper()

	tt := tournament.New("Club San Martin Americano", numCourts)
	for _, team := range makeTeams(t, numTeams) {
		require.NoError(t, tt.AddTeam(team))
	}
	require.NoError(t, tt.GenerateSchedule(testStart, rand.New(rand.NewSource(seed))))
	return tt
}

func TestGenerateScheduleEnoughCourts(t *testing.T) {
	tt := newScheduled(t, 8, 4, 1)

	// 8 teams: 7 rounds of 4 matches.
	assert.Len(t, tt.Matches, 28)
	require.Len(t, tt.SlotTimes, 7)

	seen := make(map[string]bool)
	for i, slot := range tt.SlotTimes {
		assert.Equal(t, testStart.Add(time.Duration(i)*time.Hour), slot)
		matches := tt.Schedule[slot]
		require.Len(t, matches, 4)
		for court, m := range matches {
			assert.Equal(t, court, m.Court)
			assert.Equal(t, slot, m.StartTime)
			assert.Equal(t, slot.Add(time.Hour), m.EndTime)
			assert.False(t, seen[m.ID], "match appears in more than one slot")
			seen[m.ID] = true
		}
	}

	// Every match in the flat list is in the schedule and vice versa.
	assert.Len(t, seen, len(tt.Matches))
	for _, m := range tt.Matches {
		assert.True(t, seen[m.ID])
	}

	assert.Equal(t, testStart, tt.StartTime)
	assert.Equal(t, testStart.Add(7*time.Hour), tt.EndTime)
}

func TestGenerateScheduleDropsOverflowPairings(t *testing.T) {
	// 8 teams need 4 courts per round; with 2 courts the remaining two
	// pairings of every round are silently lost.
	tt := newScheduled(t, 8, 2, 1)

	assert.Len(t, tt.Matches, 7*2)
	for _, slot := range tt.SlotTimes {
		matches := tt.Schedule[slot]
		require.Len(t, matches, 2)
		for court, m := range matches {
			assert.Equal(t, court, m.Court)
		}
	}
}

func TestGenerateScheduleSeededShuffleIsReproducible(t *testing.T) {
	a := newScheduled(t, 6, 3, 42)
	b := newScheduled(t, 6, 3, 42)

	require.Len(t, b.Matches, len(a.Matches))
	for i := range a.Matches {
		assert.Equal(t, a.Matches[i].Team1.Label(), b.Matches[i].Team1.Label())
		assert.Equal(t, a.Matches[i].Team2.Label(), b.Matches[i].Team2.Label())
		assert.Equal(t, a.Matches[i].Court, b.Matches[i].Court)
		assert.Equal(t, a.Matches[i].StartTime, b.Matches[i].StartTime)
	}
}

func TestGenerateScheduleRejectsOddRoster(t *testing.T) {
	tt := tournament.New("odd", 4)
	for _, team := range makeTeams(t, 5) {
		require.NoError(t, tt.AddTeam(team))
	}

	err := tt.GenerateSchedule(testStart, rand.New(rand.NewSource(1)))
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)

	// Failure leaves no partial schedule behind.
	assert.Empty(t, tt.Matches)
	assert.Empty(t, tt.Schedule)
	assert.False(t, tt.Scheduled())
}

func TestGenerateScheduleRejectsEmptyRoster(t *testing.T) {
	tt := tournament.New("empty", 4)

	err := tt.GenerateSchedule(testStart, rand.New(rand.NewSource(1)))
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGenerateScheduleRejectsSecondRun(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)

	err := tt.GenerateSchedule(testStart, rand.New(rand.NewSource(2)))
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestAddTeamAfterSchedulingFails(t *testing.T) {
	tt := newScheduled(t, 4, 2, 1)

	err := tt.AddTeam(makeTeams(t, 2)[0])
	var verr *tournament.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, tt.Teams, 4)
}

func TestGenerateScheduleCustomSlotDuration(t *testing.T) {
	tt := tournament.New("short slots", 2, tournament.WithSlotDuration(30*time.Minute))
	for _, team := range makeTeams(t, 4) {
		require.NoError(t, tt.AddTeam(team))
	}
	require.NoError(t, tt.GenerateSchedule(testStart, rand.New(rand.NewSource(1))))

	require.Len(t, tt.SlotTimes, 3)
	assert.Equal(t, testStart.Add(30*time.Minute), tt.SlotTimes[1])
	assert.Equal(t, testStart.Add(90*time.Minute), tt.EndTime)
}
