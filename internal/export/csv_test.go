package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/clubsanmartin/americano/internal/export"
	"github.com/clubsanmartin/americano/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStandings(t *testing.T) {
	rows := []tournament.StandingsRow{
		{Team: "Juan & María", Points: 2.6, MatchesPlayed: 2, MatchesWon: 2, WinRate: 1},
		{Team: "Carlos & Ana", Points: 0, MatchesPlayed: 2, MatchesWon: 0, WinRate: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteStandings(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Team", "Points", "Matches Played", "Matches Won", "Win Rate"}, records[0])
	assert.Equal(t, []string{"Juan & María", "2.60", "2", "2", "1.00"}, records[1])
	assert.Equal(t, []string{"Carlos & Ana", "0.00", "2", "0", "0.00"}, records[2])
}

func TestWriteStandingsEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteStandings(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Torneo_San_Martín_resultados.csv", export.Filename("Torneo San Martín"))
}
