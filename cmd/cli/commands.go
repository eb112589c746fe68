package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	teamFormat  string
	startTime   string
	seed        string
	matchID     string
	winnerID    string
	winnerGames string
	loserGames  string
)

func init() {
	setupCmd.Flags().StringVar(&teamFormat, "format", "balanced", "Team format: balanced or mixed")
	setupCmd.Flags().StringVar(&startTime, "start", "", "Tournament start time (RFC3339)")
	setupCmd.Flags().StringVar(&seed, "seed", "", "Seed for a reproducible draw")
	simulateCmd.Flags().StringVar(&seed, "seed", "", "Seed for reproducible results")
	resultCmd.Flags().StringVar(&matchID, "match", "", "Match ID")
	resultCmd.Flags().StringVar(&winnerID, "winner", "", "Winning team ID")
	resultCmd.Flags().StringVar(&winnerGames, "winner-games", "", "Games won by the winner")
	resultCmd.Flags().StringVar(&loserGames, "loser-games", "", "Games won by the loser")
	resultCmd.MarkFlagRequired("match")
	resultCmd.MarkFlagRequired("winner")
	resultCmd.MarkFlagRequired("winner-games")
	resultCmd.MarkFlagRequired("loser-games")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(prizesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pair the roster into teams and generate the schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if teamFormat != "" {
			params.Set("format", teamFormat)
		}
		if startTime != "" {
			params.Set("start", startTime)
		}
		if seed != "" {
			params.Set("seed", seed)
		}
		return performGetRequest("/setup", params)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the round-by-round schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/schedule", nil)
	},
}

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Record a match result",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("match", matchID)
		params.Set("winner", winnerID)
		params.Set("winner_games", winnerGames)
		params.Set("loser_games", loserGames)
		return performGetRequest("/result", params)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings", nil)
	},
}

var prizesCmd = &cobra.Command{
	Use:   "prizes",
	Short: "Show the prize assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/prizes", nil)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate all remaining matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if seed != "" {
			params.Set("seed", seed)
		}
		return performGetRequest("/simulate", params)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the standings as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/export", nil)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the tournament state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/clear", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func performGetRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target = fmt.Sprintf("%s?%s", target, params.Encode())
	}
	fmt.Printf("Making request to %s\n", target)

	resp, err := http.Get(target)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
