// Package export writes tournament standings to CSV for spreadsheets and
// archiving.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/clubsanmartin/americano/internal/tournament"
)

var header = []string{"Team", "Points", "Matches Played", "Matches Won", "Win Rate"}

// WriteStandings writes the standings table as CSV to w.
func WriteStandings(w io.Writer, rows []tournament.StandingsRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Team,
			strconv.FormatFloat(row.Points, 'f', 2, 64),
			strconv.Itoa(row.MatchesPlayed),
			strconv.Itoa(row.MatchesWon),
			strconv.FormatFloat(row.WinRate, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.Team, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// Filename derives the export filename from the tournament name, replacing
// spaces the same way the club's old spreadsheet exports did.
func Filename(tournamentName string) string {
	name := make([]rune, 0, len(tournamentName))
	for _, r := range tournamentName {
		if r == ' ' {
			r = '_'
		}
		name = append(name, r)
	}
	return string(name) + "_resultados.csv"
}
